package codec

// Kind tags one node of the wire value tree. Kinds are stored as strings so
// every format stays self-describing.
type Kind string

const (
	KindNil      Kind = "nil"
	KindBool     Kind = "bool"
	KindInt      Kind = "int"
	KindUint     Kind = "uint"
	KindFloat    Kind = "float"
	KindString   Kind = "string"
	KindBytes    Kind = "bytes"
	KindTime     Kind = "time"
	KindDuration Kind = "duration"
	KindList     Kind = "list"
	KindMap      Kind = "map"
	KindObject   Kind = "object"
)

// Value is one node of the kind-tagged wire tree. Exactly the field
// matching Kind carries data; all others stay at their zero value and are
// omitted on the wire. Zero payloads (0, "", false) round-trip through the
// omission because the kind alone restores them.
type Value struct {
	Kind Kind `json:"kind" yaml:"kind" cbor:"kind"`

	Bool  bool    `json:"bool,omitempty" yaml:"bool,omitempty" cbor:"bool,omitempty"`
	Int   int64   `json:"int,omitempty" yaml:"int,omitempty" cbor:"int,omitempty"`
	Uint  uint64  `json:"uint,omitempty" yaml:"uint,omitempty" cbor:"uint,omitempty"`
	Float float64 `json:"float,omitempty" yaml:"float,omitempty" cbor:"float,omitempty"`
	Str   string  `json:"str,omitempty" yaml:"str,omitempty" cbor:"str,omitempty"`
	Bytes []byte  `json:"bytes,omitempty" yaml:"bytes,omitempty" cbor:"bytes,omitempty"`

	// Time holds an RFC 3339 timestamp with nanoseconds, Dur nanoseconds.
	Time string `json:"time,omitempty" yaml:"time,omitempty" cbor:"time,omitempty"`
	Dur  int64  `json:"dur,omitempty" yaml:"dur,omitempty" cbor:"dur,omitempty"`

	Elems   []Value          `json:"elems,omitempty" yaml:"elems,omitempty" cbor:"elems,omitempty"`
	Entries map[string]Value `json:"entries,omitempty" yaml:"entries,omitempty" cbor:"entries,omitempty"`

	// Type names a registered object type; empty for anonymous objects.
	Type   string           `json:"type,omitempty" yaml:"type,omitempty" cbor:"type,omitempty"`
	Fields map[string]Value `json:"fields,omitempty" yaml:"fields,omitempty" cbor:"fields,omitempty"`
}

// Nil is the wire form of an absent value.
func Nil() Value {
	return Value{Kind: KindNil}
}

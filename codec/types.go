package codec

import (
	"reflect"

	"go.trai.ch/zerr"
)

// Types is the deserialization context: an explicit registry binding wire
// object type names to Go struct types. Decoding an object into an `any`
// slot consults it; there is no fallback resolution. Register everything
// during setup, the registry is not safe for concurrent mutation.
type Types struct {
	byName map[string]typeEntry
	names  map[reflect.Type]string
}

type typeEntry struct {
	rt  reflect.Type
	ptr bool
}

// NewTypes returns an empty registry.
func NewTypes() *Types {
	return &Types{
		byName: make(map[string]typeEntry),
		names:  make(map[reflect.Type]string),
	}
}

// Register binds name to the type of prototype, which must be a struct or
// a pointer to one. A pointer prototype makes `any`-slot decoding produce a
// pointer. Registering an empty name, a non-struct prototype, or a name or
// type twice is an error.
func (t *Types) Register(name string, prototype any) error {
	if name == "" {
		return zerr.New("type name is empty")
	}
	rt := reflect.TypeOf(prototype)
	ptr := false
	if rt != nil && rt.Kind() == reflect.Pointer {
		rt = rt.Elem()
		ptr = true
	}
	if rt == nil || rt.Kind() != reflect.Struct {
		return zerr.With(zerr.New("prototype must be a struct or pointer to struct"), "name", name)
	}
	if _, ok := t.byName[name]; ok {
		return zerr.With(zerr.New("type name already registered"), "name", name)
	}
	if prev, ok := t.names[rt]; ok {
		return zerr.With(zerr.With(zerr.New("type already registered"), "type", rt.String()), "as", prev)
	}
	t.byName[name] = typeEntry{rt: rt, ptr: ptr}
	t.names[rt] = name
	return nil
}

// MustRegister is Register that panics on error, for setup blocks.
func (t *Types) MustRegister(name string, prototype any) *Types {
	if err := t.Register(name, prototype); err != nil {
		panic("codec: " + err.Error())
	}
	return t
}

// Lookup resolves a registered name.
func (t *Types) Lookup(name string) (reflect.Type, bool) {
	if t == nil {
		return nil, false
	}
	e, ok := t.byName[name]
	if !ok {
		return nil, false
	}
	return e.rt, true
}

// NameOf reports the registered name of a struct type.
func (t *Types) NameOf(rt reflect.Type) (string, bool) {
	if t == nil {
		return "", false
	}
	name, ok := t.names[rt]
	return name, ok
}

func (t *Types) entry(name string) (typeEntry, bool) {
	if t == nil {
		return typeEntry{}, false
	}
	e, ok := t.byName[name]
	return e, ok
}

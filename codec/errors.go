package codec

import "go.trai.ch/zerr"

var (
	// ErrUnsupportedFormat is returned when a location's suffix matches no registered format.
	ErrUnsupportedFormat = zerr.New("unsupported artifact format")

	// ErrDecode is returned when artifact bytes cannot be decoded: truncated input,
	// a different codec's output, a missing required field, or a value that does not
	// fit the requested type.
	ErrDecode = zerr.New("failed to decode artifact")

	// ErrUnsupportedValue is returned when a Go value has no wire representation,
	// such as a function, channel or complex number.
	ErrUnsupportedValue = zerr.New("value cannot be represented")

	// ErrUnknownType is returned when decoding meets an object type name the
	// supplied Types registry does not bind.
	ErrUnknownType = zerr.New("unknown object type")
)

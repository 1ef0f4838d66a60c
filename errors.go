package memo

import (
	"go.trai.ch/memo/block"
	"go.trai.ch/memo/codec"
	"go.trai.ch/zerr"
)

var (
	// ErrNilThunk is returned when a computation is scheduled without a thunk.
	ErrNilThunk = zerr.New("nil thunk")

	// ErrNilBlock is returned when CacheBlock is invoked without a block.
	ErrNilBlock = block.ErrNilBlock

	// ErrNilEnv is returned when CacheBlock is invoked without an environment.
	ErrNilEnv = block.ErrNilEnv

	// ErrUnsupportedFormat is returned when a location's suffix matches no
	// registered artifact format. It is raised before any store access.
	ErrUnsupportedFormat = codec.ErrUnsupportedFormat

	// ErrDecode is returned when an existing artifact cannot be loaded:
	// unreadable bytes, a truncated or foreign payload, a missing envelope
	// field, or a value that does not fit the requested type. A decode
	// failure is never masked by recomputing.
	ErrDecode = codec.ErrDecode
)

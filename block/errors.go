package block

import "go.trai.ch/zerr"

var (
	// ErrNilBlock is returned when analysis or execution is invoked on a nil block.
	ErrNilBlock = zerr.New("block is nil")

	// ErrNilEnv is returned when a block is run against a nil environment.
	ErrNilEnv = zerr.New("environment is nil")

	// ErrNilExpr is returned when a statement carries no expression to evaluate.
	ErrNilExpr = zerr.New("expression is nil")

	// ErrUnboundName is returned when an expression reads a name the scope does not bind.
	ErrUnboundName = zerr.New("name is not bound")

	// ErrDestructureMismatch is returned when a destructured value does not cover the target names.
	ErrDestructureMismatch = zerr.New("value does not match destructuring targets")
)

func unbound(name string) error {
	return zerr.With(ErrUnboundName, "name", name)
}

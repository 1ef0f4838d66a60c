package block

import (
	"fmt"
	"reflect"

	"go.trai.ch/zerr"
)

// Run executes the block's statements in order against env and returns the
// value of the last one, or nil for an empty block. Expression errors
// propagate exactly as the expression produced them.
//
// Assignments follow the scope rule of Env.Set, so a Scoped statement only
// leaks an assignment outward when the name was bound outside it before the
// statement ran. AssignedNames reports such names regardless; callers that
// depend on the reported set must account for the difference.
func (b *Block) Run(env *Env) (any, error) {
	if b == nil {
		return nil, ErrNilBlock
	}
	if env == nil {
		return nil, ErrNilEnv
	}
	return runStmts(b.Stmts, env)
}

func runStmts(stmts []Stmt, env *Env) (any, error) {
	var last any
	for _, s := range stmts {
		v, err := runStmt(s, env)
		if err != nil {
			return nil, err
		}
		last = v
	}
	return last, nil
}

func runStmt(s Stmt, env *Env) (any, error) {
	switch s := s.(type) {
	case Assign:
		v, err := eval(s.X, env)
		if err != nil {
			return nil, err
		}
		env.Set(s.Name, v)
		return v, nil
	case Destructure:
		v, err := eval(s.X, env)
		if err != nil {
			return nil, err
		}
		if err := destructure(s.Names, v, env); err != nil {
			return nil, err
		}
		return v, nil
	case Seq:
		return runStmts(s.Body, env)
	case Scoped:
		return runStmts(s.Body, newChild(env))
	case Call:
		if s.Arg == nil {
			return nil, nil
		}
		return runStmt(s.Arg, env)
	case ExprStmt:
		return eval(s.X, env)
	default:
		return nil, zerr.New(fmt.Sprintf("unsupported statement %T", s))
	}
}

func eval(x Expr, env *Env) (any, error) {
	if x == nil {
		return nil, ErrNilExpr
	}
	return x(env)
}

func destructure(names []string, v any, env *Env) error {
	if m, ok := v.(map[string]any); ok {
		for _, name := range names {
			mv, ok := m[name]
			if !ok {
				return zerr.With(ErrDestructureMismatch, "missing", name)
			}
			env.Set(name, mv)
		}
		return nil
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return zerr.With(ErrDestructureMismatch, "got", fmt.Sprintf("%T", v))
	}
	if rv.Len() != len(names) {
		return zerr.With(zerr.With(ErrDestructureMismatch, "want", len(names)), "got", rv.Len())
	}
	for i, name := range names {
		env.Set(name, rv.Index(i).Interface())
	}
	return nil
}

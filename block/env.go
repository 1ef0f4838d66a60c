package block

// Env is a lexical scope: a set of name bindings with an optional parent.
// Reads fall through to the parent chain; writes update the closest
// binding of the name, or create one in the local scope when no scope in
// the chain binds it yet.
type Env struct {
	parent *Env
	vars   map[string]any
}

// NewEnv returns an empty root scope.
func NewEnv() *Env {
	return &Env{vars: make(map[string]any)}
}

func newChild(parent *Env) *Env {
	return &Env{parent: parent, vars: make(map[string]any)}
}

// Get reads name, walking the parent chain.
func (e *Env) Get(name string) (any, bool) {
	for s := e; s != nil; s = s.parent {
		if v, ok := s.vars[name]; ok {
			return v, true
		}
	}
	return nil, false
}

// Has reports whether name is bound in this scope or any parent.
func (e *Env) Has(name string) bool {
	_, ok := e.Get(name)
	return ok
}

// Set writes name. When a scope in the chain already binds it, that
// binding is updated in place; otherwise the name is bound locally.
func (e *Env) Set(name string, v any) {
	for s := e; s != nil; s = s.parent {
		if _, ok := s.vars[name]; ok {
			s.vars[name] = v
			return
		}
	}
	e.vars[name] = v
}

// Len counts the bindings of this scope alone, parents excluded.
func (e *Env) Len() int {
	return len(e.vars)
}

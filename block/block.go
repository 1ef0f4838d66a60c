// Package block models executable statement blocks: a small typed syntax
// tree, a static analysis that reports the names a block assigns, and an
// interpreter that runs a block against a lexical environment.
//
// Blocks exist so that a computation's intermediate bindings, not just its
// final value, can be captured into a persisted artifact and restored later.
// The analysis is purely syntactic and deliberately reports a superset of
// what execution may bind; see AssignedNames for the exact rule.
package block

// Block is a sequence of statements executed in order. The zero value is an
// empty block; Run on it yields nil.
type Block struct {
	Stmts []Stmt
}

// New builds a block from the given statements.
func New(stmts ...Stmt) *Block {
	return &Block{Stmts: stmts}
}

// Stmt is one statement of a block. The set of implementations is closed:
// Assign, Destructure, Seq, Scoped, Call and ExprStmt.
type Stmt interface {
	stmt()
}

// Assign binds the value of X to Name in the enclosing scope.
type Assign struct {
	Name string
	X    Expr
}

// Destructure evaluates X once and binds each element to the corresponding
// name. A slice or array is unpacked positionally and must have exactly
// len(Names) elements; a map[string]any is unpacked by key and must contain
// every name, extra keys are ignored.
type Destructure struct {
	Names []string
	X     Expr
}

// Seq is plain sequencing. It introduces no scope of its own: assignments
// inside it land in the enclosing scope regardless of nesting depth.
type Seq struct {
	Body []Stmt
}

// Scoped runs its body in a fresh child scope. An assignment inside it only
// reaches the enclosing scope when the name was already bound there before
// the scoped body ran; otherwise the binding is dropped on exit.
type Scoped struct {
	Body []Stmt
}

// Call is a named annotation wrapping a single statement. The name is
// informational; execution just runs the wrapped statement.
type Call struct {
	Name string
	Arg  Stmt
}

// ExprStmt evaluates X for its value and binds nothing.
type ExprStmt struct {
	X Expr
}

func (Assign) stmt()      {}
func (Destructure) stmt() {}
func (Seq) stmt()         {}
func (Scoped) stmt()      {}
func (Call) stmt()        {}
func (ExprStmt) stmt()    {}

// Expr is a deferred computation evaluated against a scope.
type Expr func(*Env) (any, error)

// Lit returns an expression that always yields v.
func Lit(v any) Expr {
	return func(*Env) (any, error) {
		return v, nil
	}
}

// Var returns an expression that reads name from the scope, failing with
// ErrUnboundName when it is not bound.
func Var(name string) Expr {
	return func(env *Env) (any, error) {
		v, ok := env.Get(name)
		if !ok {
			return nil, unbound(name)
		}
		return v, nil
	}
}

// Do lifts a scope-independent computation into an expression.
func Do(fn func() (any, error)) Expr {
	return func(*Env) (any, error) {
		return fn()
	}
}

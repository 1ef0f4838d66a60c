package block_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/memo/block"
)

func TestBlockRun_LastValueAndBindings(t *testing.T) {
	t.Parallel()

	blk := block.New(
		block.Assign{Name: "x", X: block.Lit([]int{1, 2, 3})},
		block.Assign{Name: "y", X: block.Lit(4)},
		block.ExprStmt{X: block.Lit("final")},
	)

	env := block.NewEnv()
	got, err := blk.Run(env)
	require.NoError(t, err)
	assert.Equal(t, "final", got)

	x, ok := env.Get("x")
	require.True(t, ok)
	assert.Equal(t, []int{1, 2, 3}, x)

	y, ok := env.Get("y")
	require.True(t, ok)
	assert.Equal(t, 4, y)
}

func TestBlockRun_ScopedAssignments(t *testing.T) {
	t.Parallel()

	// The analyzer reports both names, execution binds only the one that
	// pre-existed outside the scoped body. Both halves are pinned here.
	blk := block.New(
		block.Assign{Name: "a", X: block.Lit(1)},
		block.Scoped{Body: []block.Stmt{
			block.Assign{Name: "b", X: block.Lit(2)},
			block.Assign{Name: "a", X: block.Lit(3)},
		}},
	)

	names, err := block.AssignedNames(blk)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, names)

	env := block.NewEnv()
	_, err = blk.Run(env)
	require.NoError(t, err)

	a, ok := env.Get("a")
	require.True(t, ok)
	assert.Equal(t, 3, a)

	assert.False(t, env.Has("b"), "scoped-only name must not leak into the outer scope")
}

func TestBlockRun_ScopedReadsOuter(t *testing.T) {
	t.Parallel()

	blk := block.New(
		block.Assign{Name: "base", X: block.Lit(10)},
		block.Scoped{Body: []block.Stmt{
			block.ExprStmt{X: block.Var("base")},
		}},
	)

	got, err := blk.Run(block.NewEnv())
	require.NoError(t, err)
	assert.Equal(t, 10, got)
}

func TestBlockRun_Destructure(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		stmt        block.Stmt
		wantErr     error
		errContains string
		check       func(t *testing.T, env *block.Env)
	}{
		{
			name: "slice by position",
			stmt: block.Destructure{Names: []string{"a", "b"}, X: block.Lit([]any{1, "two"})},
			check: func(t *testing.T, env *block.Env) {
				a, _ := env.Get("a")
				b, _ := env.Get("b")
				assert.Equal(t, 1, a)
				assert.Equal(t, "two", b)
			},
		},
		{
			name: "typed slice by position",
			stmt: block.Destructure{Names: []string{"lo", "hi"}, X: block.Lit([]float64{0.5, 2.5})},
			check: func(t *testing.T, env *block.Env) {
				lo, _ := env.Get("lo")
				hi, _ := env.Get("hi")
				assert.Equal(t, 0.5, lo)
				assert.Equal(t, 2.5, hi)
			},
		},
		{
			name: "map by key ignores extras",
			stmt: block.Destructure{Names: []string{"mean"}, X: block.Lit(map[string]any{"mean": 1.5, "sd": 0.1})},
			check: func(t *testing.T, env *block.Env) {
				mean, _ := env.Get("mean")
				assert.Equal(t, 1.5, mean)
				assert.False(t, env.Has("sd"))
			},
		},
		{
			name:    "length mismatch",
			stmt:    block.Destructure{Names: []string{"a", "b", "c"}, X: block.Lit([]any{1, 2})},
			wantErr: block.ErrDestructureMismatch,
		},
		{
			name:    "missing map key",
			stmt:    block.Destructure{Names: []string{"absent"}, X: block.Lit(map[string]any{"present": 1})},
			wantErr: block.ErrDestructureMismatch,
		},
		{
			name:    "scalar value",
			stmt:    block.Destructure{Names: []string{"a"}, X: block.Lit(42)},
			wantErr: block.ErrDestructureMismatch,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			env := block.NewEnv()
			_, err := block.New(tt.stmt).Run(env)
			if tt.wantErr != nil {
				require.Error(t, err)
				require.ErrorContains(t, err, tt.wantErr.Error())
				return
			}
			require.NoError(t, err)
			tt.check(t, env)
		})
	}
}

func TestBlockRun_ExpressionErrorsPropagateVerbatim(t *testing.T) {
	t.Parallel()

	boom := errors.New("simulated computation failure")
	blk := block.New(
		block.Assign{Name: "x", X: block.Do(func() (any, error) { return nil, boom })},
	)

	env := block.NewEnv()
	_, err := blk.Run(env)
	require.ErrorIs(t, err, boom)
	assert.False(t, env.Has("x"), "failed assignment must not bind")
}

func TestBlockRun_VarUnbound(t *testing.T) {
	t.Parallel()

	_, err := block.New(block.ExprStmt{X: block.Var("ghost")}).Run(block.NewEnv())
	require.Error(t, err)
	require.ErrorContains(t, err, block.ErrUnboundName.Error())
}

func TestBlockRun_AnnotationRunsWrappedStatement(t *testing.T) {
	t.Parallel()

	env := block.NewEnv()
	got, err := block.New(
		block.Call{Name: "timed", Arg: block.Assign{Name: "n", X: block.Lit(7)}},
	).Run(env)
	require.NoError(t, err)
	assert.Equal(t, 7, got)

	n, ok := env.Get("n")
	require.True(t, ok)
	assert.Equal(t, 7, n)
}

func TestBlockRun_EmptyBlock(t *testing.T) {
	t.Parallel()

	got, err := block.New().Run(block.NewEnv())
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestBlockRun_NilArguments(t *testing.T) {
	t.Parallel()

	var nilBlock *block.Block
	_, err := nilBlock.Run(block.NewEnv())
	require.ErrorIs(t, err, block.ErrNilBlock)

	_, err = block.New().Run(nil)
	require.ErrorIs(t, err, block.ErrNilEnv)

	_, err = block.New(block.Assign{Name: "x"}).Run(block.NewEnv())
	require.ErrorIs(t, err, block.ErrNilExpr)
}

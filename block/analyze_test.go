package block_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/memo/block"
)

func TestAssignedNames(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		block *block.Block
		want  []string
	}{
		{
			name:  "empty block",
			block: block.New(),
			want:  nil,
		},
		{
			name: "simple assignments in order",
			block: block.New(
				block.Assign{Name: "x", X: block.Lit(1)},
				block.Assign{Name: "y", X: block.Lit(2)},
			),
			want: []string{"x", "y"},
		},
		{
			name: "duplicates keep first position",
			block: block.New(
				block.Assign{Name: "x", X: block.Lit(1)},
				block.Assign{Name: "y", X: block.Lit(2)},
				block.Assign{Name: "x", X: block.Lit(3)},
			),
			want: []string{"x", "y"},
		},
		{
			name: "destructure contributes every target",
			block: block.New(
				block.Destructure{Names: []string{"a", "b"}, X: block.Lit([]any{1, 2})},
			),
			want: []string{"a", "b"},
		},
		{
			name: "nested sequences flatten",
			block: block.New(
				block.Seq{Body: []block.Stmt{
					block.Assign{Name: "x", X: block.Lit(1)},
					block.Seq{Body: []block.Stmt{
						block.Assign{Name: "y", X: block.Lit(2)},
					}},
				}},
			),
			want: []string{"x", "y"},
		},
		{
			name: "scoped bodies are reported as if they leaked",
			block: block.New(
				block.Assign{Name: "a", X: block.Lit(1)},
				block.Scoped{Body: []block.Stmt{
					block.Assign{Name: "b", X: block.Lit(2)},
					block.Assign{Name: "a", X: block.Lit(3)},
				}},
			),
			want: []string{"a", "b"},
		},
		{
			name: "annotation over an assignment contributes its target",
			block: block.New(
				block.Call{Name: "timed", Arg: block.Assign{Name: "z", X: block.Lit(9)}},
			),
			want: []string{"z"},
		},
		{
			name: "annotation over anything else contributes nothing",
			block: block.New(
				block.Call{Name: "timed", Arg: block.Seq{Body: []block.Stmt{
					block.Assign{Name: "hidden", X: block.Lit(1)},
				}}},
			),
			want: nil,
		},
		{
			name: "bare expressions contribute nothing",
			block: block.New(
				block.ExprStmt{X: block.Lit("value")},
			),
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := block.AssignedNames(tt.block)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAssignedNames_NilBlock(t *testing.T) {
	t.Parallel()

	_, err := block.AssignedNames(nil)
	require.ErrorIs(t, err, block.ErrNilBlock)
}

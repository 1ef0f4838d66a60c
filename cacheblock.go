package memo

import (
	"context"

	"go.trai.ch/memo/block"
	"go.trai.ch/memo/codec"
)

// BlockResult is the persisted product of a cached block run: the
// assigned bindings worth keeping plus the block's final value.
type BlockResult struct {
	Bindings map[string]any
	Final    any
}

// CacheBlock runs blk against env and persists both its final value and
// the bindings its statements assign, or loads them from the artifact at
// location without running anything. On every outcome the stored bindings
// are written back into env, so code after the call sees the same names
// bound whether the block ran or not. An empty location runs the block
// directly.
//
// The binding set comes from block.AssignedNames, which reports scoped
// assignments as if they leaked; a name the block assigns only inside a
// scoped region is absent from env after the run and is therefore not
// captured. When the block runs, the captured values are passed through
// the artifact value model before returning, so a fresh run and a replay
// of its artifact observe identical representations.
func CacheBlock(ctx context.Context, e *Engine, location string, blk *block.Block, env *block.Env, opts ...RunOption) (any, error) {
	if blk == nil {
		return nil, block.ErrNilBlock
	}
	if env == nil {
		return nil, block.ErrNilEnv
	}
	if location == "" {
		return blk.Run(env)
	}

	names, err := block.AssignedNames(blk)
	if err != nil {
		return nil, err
	}

	thunk := func(context.Context) (BlockResult, error) {
		final, err := blk.Run(env)
		if err != nil {
			return BlockResult{}, err
		}
		bindings := make(map[string]any, len(names))
		for _, name := range names {
			if v, ok := env.Get(name); ok {
				bindings[name] = v
			}
		}
		return normalize(BlockResult{Bindings: bindings, Final: final}, e.types)
	}

	res, err := RunOrLoad(ctx, e, location, thunk, opts...)
	if err != nil {
		return nil, err
	}
	for name, v := range res.Bindings {
		env.Set(name, v)
	}
	return res.Final, nil
}

// normalize rounds a result through the wire value model, collapsing Go
// types to the forms a decode would produce.
func normalize(res BlockResult, types *codec.Types) (BlockResult, error) {
	wire, err := codec.FromGo(res, types)
	if err != nil {
		return BlockResult{}, err
	}
	return codec.As[BlockResult](wire, types)
}

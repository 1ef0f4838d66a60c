// Package formats provides the Graft node for the artifact codec registry.
package formats

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/memo/codec"
)

const NodeID graft.ID = "adapter.codecs"

func init() {
	graft.Register(graft.Node[*codec.Registry]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (*codec.Registry, error) {
			return codec.Default(), nil
		},
	})
}

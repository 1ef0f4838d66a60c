// Package diskstore provides the Graft node for the on-disk artifact store.
package diskstore

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/memo/store"
)

const NodeID graft.ID = "adapter.store"

func init() {
	graft.Register(graft.Node[store.Store]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (store.Store, error) {
			return store.OS(), nil
		},
	})
}

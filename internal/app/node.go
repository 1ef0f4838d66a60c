package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/memo/codec"
	"go.trai.ch/memo/internal/adapters/diskstore"
	"go.trai.ch/memo/internal/adapters/formats"
	"go.trai.ch/memo/store"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

// Components bundles the resolved App with the ports it was wired from.
type Components struct {
	App    *App
	Codecs *codec.Registry
	Store  store.Store
}

func init() {
	// App node
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			formats.NodeID,
			diskstore.NodeID,
		},
		Run: func(ctx context.Context) (*App, error) {
			codecs, err := graft.Dep[*codec.Registry](ctx)
			if err != nil {
				return nil, err
			}

			st, err := graft.Dep[store.Store](ctx)
			if err != nil {
				return nil, err
			}

			return New(codecs, st), nil
		},
	})

	// Components node
	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			formats.NodeID,
			diskstore.NodeID,
		},
		Run: runComponentsNode,
	})
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	application, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

	codecs, err := graft.Dep[*codec.Registry](ctx)
	if err != nil {
		return nil, err
	}

	st, err := graft.Dep[store.Store](ctx)
	if err != nil {
		return nil, err
	}

	return &Components{
		App:    application,
		Codecs: codecs,
		Store:  st,
	}, nil
}

package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/blackcheck/internal/adapters/cachedir" //nolint:depguard // Wired in app layer
	"go.trai.ch/blackcheck/internal/adapters/config"   //nolint:depguard // Wired in app layer
	"go.trai.ch/blackcheck/internal/adapters/fs"       //nolint:depguard // Wired in app layer
	"go.trai.ch/blackcheck/internal/adapters/logger"   //nolint:depguard // Wired in app layer
	"go.trai.ch/blackcheck/internal/adapters/shell"    //nolint:depguard // Wired in app layer
	"go.trai.ch/blackcheck/internal/core/ports"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			fs.CollectorNodeID,
			shell.NodeID,
			cachedir.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*App, error) {
			loader, err := graft.Dep[ports.ConfigLoader](ctx)
			if err != nil {
				return nil, err
			}

			collector, err := graft.Dep[ports.Collector](ctx)
			if err != nil {
				return nil, err
			}

			formatter, err := graft.Dep[ports.Formatter](ctx)
			if err != nil {
				return nil, err
			}

			store, err := graft.Dep[ports.CacheStore](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return New(loader, collector, formatter, store, log), nil
		},
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			app, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return NewComponents(app, log), nil
		},
	})
}

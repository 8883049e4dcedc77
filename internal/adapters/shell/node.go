package shell

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/blackcheck/internal/adapters/logger"
	"go.trai.ch/blackcheck/internal/core/ports"
)

// NodeID is the unique identifier for the formatter Graft node.
const NodeID graft.ID = "adapter.formatter"

func init() {
	graft.Register(graft.Node[ports.Formatter]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.Formatter, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewExecutor(log), nil
		},
	})
}

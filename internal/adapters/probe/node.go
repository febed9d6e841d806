package probe

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/ouroinstall/internal/adapters/shell"
	"go.trai.ch/ouroinstall/internal/core/ports"
)

// NodeID is the unique identifier for the environment probe Graft node.
const NodeID graft.ID = "adapter.probe"

func init() {
	graft.Register(graft.Node[ports.EnvironmentProbe]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{shell.NodeID},
		Run: func(ctx context.Context) (ports.EnvironmentProbe, error) {
			runner, err := graft.Dep[ports.ProcessRunner](ctx)
			if err != nil {
				return nil, err
			}
			return New(runner), nil
		},
	})
}

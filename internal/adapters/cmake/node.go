package cmake

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/ouroinstall/internal/core/ports"
)

// NodeID is the unique identifier for the build system Graft node.
const NodeID graft.ID = "adapter.buildsystem"

func init() {
	graft.Register(graft.Node[ports.BuildSystem]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{},
		Run: func(_ context.Context) (ports.BuildSystem, error) {
			return New(), nil
		},
	})
}

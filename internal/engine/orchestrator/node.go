package orchestrator

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/ouroinstall/internal/adapters/cmake"
	"go.trai.ch/ouroinstall/internal/adapters/fs"
	"go.trai.ch/ouroinstall/internal/adapters/logger"
	"go.trai.ch/ouroinstall/internal/adapters/probe"
	"go.trai.ch/ouroinstall/internal/adapters/shell"
	"go.trai.ch/ouroinstall/internal/adapters/telemetry"
	"go.trai.ch/ouroinstall/internal/core/ports"
)

// NodeID is the unique identifier for the orchestrator Graft node.
const NodeID graft.ID = "engine.orchestrator"

func init() {
	graft.Register(graft.Node[*Orchestrator]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			probe.NodeID,
			shell.NodeID,
			cmake.NodeID,
			fs.NodeID,
			logger.NodeID,
			telemetry.NodeID,
		},
		Run: func(ctx context.Context) (*Orchestrator, error) {
			p, err := graft.Dep[ports.EnvironmentProbe](ctx)
			if err != nil {
				return nil, err
			}
			runner, err := graft.Dep[ports.ProcessRunner](ctx)
			if err != nil {
				return nil, err
			}
			buildSystem, err := graft.Dep[ports.BuildSystem](ctx)
			if err != nil {
				return nil, err
			}
			fsys, err := graft.Dep[ports.FileSystem](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			tracer, err := graft.Dep[ports.Tracer](ctx)
			if err != nil {
				return nil, err
			}
			return New(p, runner, buildSystem, fsys, log, tracer), nil
		},
	})
}

package jobs

import (
	"context"
	"os"

	"github.com/SalimYassine/Minishell/internal/adapters/logger"    //nolint:depguard // Wired in engine wiring
	"github.com/SalimYassine/Minishell/internal/adapters/process"   //nolint:depguard // Wired in engine wiring
	"github.com/SalimYassine/Minishell/internal/adapters/telemetry" //nolint:depguard // Wired in engine wiring
	"github.com/SalimYassine/Minishell/internal/core/ports"
	"github.com/grindlemire/graft"
)

const (
	// ControllerNodeID is the unique identifier for the job controller Graft node.
	ControllerNodeID graft.ID = "engine.jobs.controller"
	// ExecutorNodeID is the unique identifier for the executor Graft node.
	ExecutorNodeID graft.ID = "engine.jobs.executor"
)

func init() {
	graft.Register(graft.Node[*Controller]{
		ID:        ControllerNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			process.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Controller, error) {
			table, err := graft.Dep[ports.ProcessTable](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return NewController(table, NewReporter(os.Stdout), log), nil
		},
	})

	graft.Register(graft.Node[ports.Executor]{
		ID:        ExecutorNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			ControllerNodeID,
			telemetry.TracerNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (ports.Executor, error) {
			controller, err := graft.Dep[*Controller](ctx)
			if err != nil {
				return nil, err
			}

			tracer, err := graft.Dep[ports.Tracer](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return NewExecutor(controller, tracer, log), nil
		},
	})
}

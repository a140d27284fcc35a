package app

import (
	"context"

	"github.com/SalimYassine/Minishell/internal/adapters/config"  //nolint:depguard // Wired in app layer
	"github.com/SalimYassine/Minishell/internal/adapters/logger"  //nolint:depguard // Wired in app layer
	"github.com/SalimYassine/Minishell/internal/adapters/parser"  //nolint:depguard // Wired in app layer
	"github.com/SalimYassine/Minishell/internal/adapters/signals" //nolint:depguard // Wired in app layer
	"github.com/SalimYassine/Minishell/internal/core/ports"
	"github.com/SalimYassine/Minishell/internal/engine/jobs"
	"github.com/grindlemire/graft"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	// App Node
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			config.WatcherNodeID,
			parser.NodeID,
			jobs.ExecutorNodeID,
			jobs.ControllerNodeID,
			signals.NodeID,
			logger.NodeID,
		},
		Run: runAppNode,
	})

	// Components Node
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

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	watcher, err := graft.Dep[ports.ConfigWatcher](ctx)
	if err != nil {
		return nil, err
	}

	p, err := graft.Dep[ports.Parser](ctx)
	if err != nil {
		return nil, err
	}

	executor, err := graft.Dep[ports.Executor](ctx)
	if err != nil {
		return nil, err
	}

	controller, err := graft.Dep[*jobs.Controller](ctx)
	if err != nil {
		return nil, err
	}

	sig, err := graft.Dep[ports.SignalManager](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, p, executor, sig, log, controller.HandleChildSignal).WithConfigWatcher(watcher), nil
}

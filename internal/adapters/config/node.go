package config

import (
	"context"

	"github.com/SalimYassine/Minishell/internal/core/ports"
	"github.com/grindlemire/graft"
)

const (
	// NodeID is the unique identifier for the config loader Graft node.
	NodeID graft.ID = "adapter.config_loader"
	// WatcherNodeID is the unique identifier for the config watcher Graft node.
	WatcherNodeID graft.ID = "adapter.config_watcher"
)

func init() {
	graft.Register(graft.Node[ports.ConfigLoader]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{},
		Run: func(_ context.Context) (ports.ConfigLoader, error) {
			return NewLoader(), nil
		},
	})

	graft.Register(graft.Node[ports.ConfigWatcher]{
		ID:        WatcherNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{},
		Run: func(_ context.Context) (ports.ConfigWatcher, error) {
			return NewWatcher(NewLoader()), nil
		},
	})
}

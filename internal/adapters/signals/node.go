package signals

import (
	"context"

	"github.com/SalimYassine/Minishell/internal/core/ports"
	"github.com/grindlemire/graft"
)

// NodeID is the unique identifier for the signal manager Graft node.
const NodeID graft.ID = "adapter.signals"

func init() {
	graft.Register(graft.Node[ports.SignalManager]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{},
		Run: func(_ context.Context) (ports.SignalManager, error) {
			return NewManager(), nil
		},
	})
}

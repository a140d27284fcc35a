package process

import (
	"context"

	"github.com/SalimYassine/Minishell/internal/core/ports"
	"github.com/grindlemire/graft"
)

// NodeID is the unique identifier for the process table Graft node.
const NodeID graft.ID = "adapter.process"

func init() {
	graft.Register(graft.Node[ports.ProcessTable]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{},
		Run: func(_ context.Context) (ports.ProcessTable, error) {
			return NewTable(), nil
		},
	})
}

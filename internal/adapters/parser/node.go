package parser

import (
	"context"

	"github.com/SalimYassine/Minishell/internal/core/ports"
	"github.com/grindlemire/graft"
)

// NodeID is the unique identifier for the parser Graft node.
const NodeID graft.ID = "adapter.parser"

func init() {
	graft.Register(graft.Node[ports.Parser]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{},
		Run: func(_ context.Context) (ports.Parser, error) {
			return New(), nil
		},
	})
}

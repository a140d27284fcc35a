// Package ports defines the core interfaces for the application.
package ports

import (
	"context"

	"github.com/SalimYassine/Minishell/internal/core/domain"
)

// Executor defines the interface for executing parsed command lines.
//
//go:generate mockgen -source=executor.go -destination=mocks/mock_executor.go -package=mocks
type Executor interface {
	// Execute runs the pipeline, blocking until it finishes unless it was
	// requested in the background.
	//
	// Exit statuses of the spawned programs are never reported as errors. The
	// returned error covers pipelines that must not run (parse errors, empty
	// pipelines) and failures of the shell itself to create pipes or processes.
	Execute(ctx context.Context, p *domain.Pipeline) error
}

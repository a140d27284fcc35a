package jobs

import (
	"context"
	"fmt"

	"github.com/SalimYassine/Minishell/internal/core/domain"
	"github.com/SalimYassine/Minishell/internal/core/ports"
)

// Executor implements ports.Executor on top of a Controller.
type Executor struct {
	controller *Controller
	tracer     ports.Tracer
	logger     ports.Logger
}

var _ ports.Executor = (*Executor)(nil)

// NewExecutor creates a new Executor.
func NewExecutor(controller *Controller, tracer ports.Tracer, logger ports.Logger) *Executor {
	return &Executor{
		controller: controller,
		tracer:     tracer,
		logger:     logger,
	}
}

// Execute runs p. Single commands may run in the background; pipelines always
// run in the foreground.
func (e *Executor) Execute(ctx context.Context, p *domain.Pipeline) error {
	if err := p.Validate(); err != nil {
		return err
	}

	background := p.Background
	if background && p.Stages() > 1 {
		e.logger.Warn("pipelines cannot run in the background, running in the foreground")
		background = false
	}

	var opts []ports.SpanOption
	if background {
		opts = append(opts, ports.WithBackground())
	}
	ctx, span := e.tracer.Start(ctx, "execute", opts...)
	defer span.End()

	span.SetAttribute("pipeline", p.String())
	span.SetAttribute("pipeline.stages", p.Stages())

	redir := Redirects{Input: p.Input, Output: p.Output}

	var jobs []*domain.Job
	var err error
	switch {
	case p.Stages() > 1:
		jobs, err = e.controller.RunPipeline(ctx, p)
	case background:
		var job *domain.Job
		job, err = e.controller.RunBackground(p.Seq[0], redir)
		jobs = append(jobs, job)
	default:
		var job *domain.Job
		job, err = e.controller.RunForeground(ctx, p.Seq[0], redir)
		jobs = append(jobs, job)
	}

	for i, job := range jobs {
		if job == nil {
			continue
		}
		span.SetAttribute(fmt.Sprintf("stage.%d.pid", i), job.Handle().Pid)
		span.SetAttribute(fmt.Sprintf("stage.%d.state", i), job.State().String())
	}

	if err != nil {
		span.RecordError(err)
		return err
	}
	return nil
}

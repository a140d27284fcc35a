// Package jobs starts commands and pipelines as child processes and tracks
// them until the shell stops waiting for them.
package jobs

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/SalimYassine/Minishell/internal/core/domain"
	"github.com/SalimYassine/Minishell/internal/core/ports"
)

// Controller owns the foreground slot and the blocking-wait contract.
type Controller struct {
	table    ports.ProcessTable
	launcher *Launcher
	reporter *Reporter
	logger   ports.Logger

	busy atomic.Bool
	slot atomic.Int64
}

// NewController creates a Controller.
func NewController(table ports.ProcessTable, reporter *Reporter, logger ports.Logger) *Controller {
	return &Controller{
		table:    table,
		launcher: NewLauncher(table, logger),
		reporter: reporter,
		logger:   logger,
	}
}

// Foreground returns the pid the shell is currently blocked on, or 0.
func (c *Controller) Foreground() int {
	return int(c.slot.Load())
}

// HandleChildSignal drains every pending child state change. Changes nobody
// waits for are reported as status lines.
func (c *Controller) HandleChildSignal() {
	for _, st := range c.table.Reap() {
		c.reporter.Status(st)
	}
}

// RunForeground starts cmd and blocks until it exits, is killed or is stopped.
// A stop is reported with a status line. When ctx ends first, ctx.Err() is
// returned and the process is left running; its later changes are reported.
func (c *Controller) RunForeground(ctx context.Context, cmd domain.Command, redir Redirects) (*domain.Job, error) {
	if err := c.acquire(); err != nil {
		return nil, err
	}
	defer c.release()

	job := domain.NewJob(false)
	w := newWaiter(job, c.reporter, true)

	handle, code, err := c.launcher.start(stageRequest{
		cmd:   cmd,
		redir: redir,
		watch: w.deliver,
	})
	if err != nil {
		return nil, err
	}
	if code != 0 {
		return domain.NewFailedJob(0, code), nil
	}

	job.Attach(handle)
	c.slot.Store(int64(handle.Pid))

	return job, w.wait(ctx)
}

// RunBackground starts cmd in its own process group and returns at once.
// Every later state change of the process is reported.
func (c *Controller) RunBackground(cmd domain.Command, redir Redirects) (*domain.Job, error) {
	job := domain.NewJob(true)
	watch := func(st domain.ProcessStatus) bool {
		if _, err := job.Observe(st); err != nil {
			c.logger.Error(err)
			return true
		}
		c.reporter.Status(st)
		return st.Terminated()
	}

	// The notice goes out before any status line of the new process.
	c.reporter.mu.Lock()
	handle, code, err := c.launcher.start(stageRequest{
		cmd:    cmd,
		redir:  redir,
		detach: true,
		watch:  watch,
	})
	if err == nil && code == 0 {
		job.Attach(handle)
		c.reporter.background(handle)
	}
	c.reporter.mu.Unlock()

	if err != nil {
		return nil, err
	}
	if code != 0 {
		return domain.NewFailedJob(0, code), nil
	}
	return job, nil
}

func (c *Controller) acquire() error {
	if !c.busy.CompareAndSwap(false, true) {
		return domain.ErrForegroundBusy
	}
	return nil
}

func (c *Controller) release() {
	c.slot.Store(0)
	c.busy.Store(false)
}

// waiter connects a process watcher with the goroutine blocked on it.
type waiter struct {
	job      *domain.Job
	reporter *Reporter
	// stopEnds makes a stop end the wait, as for a single foreground command.
	stopEnds bool
	events   chan domain.ProcessStatus

	mu        sync.Mutex
	abandoned bool
}

func newWaiter(job *domain.Job, reporter *Reporter, stopEnds bool) *waiter {
	return &waiter{
		job:      job,
		reporter: reporter,
		stopEnds: stopEnds,
		events:   make(chan domain.ProcessStatus, 1),
	}
}

// deliver is the watcher registered with the process table. At most one
// status is ever sent on events, so it never blocks.
func (w *waiter) deliver(st domain.ProcessStatus) bool {
	if _, err := w.job.Observe(st); err != nil {
		return true
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	if w.abandoned {
		w.reporter.Status(st)
		return st.Terminated()
	}

	switch {
	case st.Terminated():
		w.events <- st
		return true
	case st.State == domain.StateStopped:
		w.reporter.Status(st)
		if w.stopEnds {
			w.events <- st
			return true
		}
	}
	return false
}

func (w *waiter) wait(ctx context.Context) error {
	select {
	case <-w.events:
		return nil
	case <-ctx.Done():
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	w.abandoned = true
	select {
	case <-w.events:
		return nil
	default:
		return ctx.Err()
	}
}

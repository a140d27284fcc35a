package jobs

import (
	"context"
	"os"

	"github.com/SalimYassine/Minishell/internal/core/domain"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

type pipe struct {
	r, w *os.File
}

// RunPipeline connects the stages of p with pipes and blocks until every
// started stage has terminated. Stops of individual stages are reported but do
// not end the wait. The foreground slot holds the pid of the last started stage.
//
// The returned jobs are indexed by stage. When the system refuses to create a
// process, the remaining stages are abandoned and only the started ones are
// waited for.
func (c *Controller) RunPipeline(ctx context.Context, p *domain.Pipeline) ([]*domain.Job, error) {
	if err := c.acquire(); err != nil {
		return nil, err
	}
	defer c.release()

	n := p.Stages()
	pipes, err := openPipes(n - 1)
	if err != nil {
		return nil, err
	}
	defer closePipes(pipes)

	jobs := make([]*domain.Job, 0, n)
	waiters := make([]*waiter, 0, n)
	var spawnErr error

	for i, cmd := range p.Seq {
		req := stageRequest{cmd: cmd, stage: i}
		if i > 0 {
			req.stdin = pipes[i-1].r
		}
		if i < n-1 {
			req.stdout = pipes[i].w
		}
		if i == 0 {
			req.redir.Input = p.Input
		}
		if i == n-1 {
			req.redir.Output = p.Output
		}

		job := domain.NewJob(false)
		w := newWaiter(job, c.reporter, false)
		req.watch = w.deliver

		handle, code, err := c.launcher.start(req)
		if err != nil {
			spawnErr = err
			break
		}
		if code != 0 {
			jobs = append(jobs, domain.NewFailedJob(i, code))
			continue
		}

		job.Attach(handle)
		jobs = append(jobs, job)
		waiters = append(waiters, w)
		c.slot.Store(int64(handle.Pid))
	}

	// Children hold their own copies; the shell's ends must go for EOF and
	// SIGPIPE to propagate.
	closePipes(pipes)

	var g errgroup.Group
	for _, w := range waiters {
		g.Go(func() error {
			return w.wait(ctx)
		})
	}
	waitErr := g.Wait()

	if spawnErr != nil {
		return jobs, spawnErr
	}
	return jobs, waitErr
}

func openPipes(count int) ([]pipe, error) {
	pipes := make([]pipe, 0, count)
	for range count {
		r, w, err := os.Pipe()
		if err != nil {
			closePipes(pipes)
			return nil, zerr.With(zerr.Wrap(domain.ErrPipeFailed, err.Error()), "pipes", count)
		}
		pipes = append(pipes, pipe{r: r, w: w})
	}
	return pipes, nil
}

func closePipes(pipes []pipe) {
	for _, p := range pipes {
		_ = p.r.Close()
		_ = p.w.Close()
	}
}

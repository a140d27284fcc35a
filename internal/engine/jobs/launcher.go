package jobs

import (
	"errors"
	"os"

	"github.com/SalimYassine/Minishell/internal/core/domain"
	"github.com/SalimYassine/Minishell/internal/core/ports"
	"go.trai.ch/zerr"
)

const outputFlags = os.O_WRONLY | os.O_CREATE | os.O_TRUNC

// Redirects names the files replacing a command's stdin and stdout.
// Empty paths leave the descriptor untouched.
type Redirects struct {
	Input  string
	Output string
}

// stageRequest describes one process to start.
type stageRequest struct {
	cmd   domain.Command
	stage int
	// stdin and stdout are pipe ends; nil selects the shell's own descriptor.
	stdin  *os.File
	stdout *os.File
	redir  Redirects
	detach bool
	watch  ports.StatusFunc
}

// Launcher opens redirections, resolves the executable and spawns it.
type Launcher struct {
	table  ports.ProcessTable
	logger ports.Logger
}

// NewLauncher creates a Launcher on top of the given process table.
func NewLauncher(table ports.ProcessTable, logger ports.Logger) *Launcher {
	return &Launcher{table: table, logger: logger}
}

// start spawns the stage described by req. Failures that belong to the stage
// (redirection, lookup, exec) are logged and returned as a distinguished exit
// code with a nil error. A non-nil error means the shell could not create the
// process at all.
func (l *Launcher) start(req stageRequest) (domain.ProcessHandle, int, error) {
	stdin, stdout := req.stdin, req.stdout

	if req.redir.Input != "" {
		f, err := os.Open(req.redir.Input)
		if err != nil {
			l.logger.Error(redirectError(req, req.redir.Input, err))
			return domain.ProcessHandle{}, domain.ExitRedirectFailed, nil
		}
		defer func() { _ = f.Close() }()
		stdin = f
	}

	if req.redir.Output != "" {
		f, err := os.OpenFile(req.redir.Output, outputFlags, 0o644) //nolint:gosec // user provided path
		if err != nil {
			l.logger.Error(redirectError(req, req.redir.Output, err))
			return domain.ProcessHandle{}, domain.ExitRedirectFailed, nil
		}
		defer func() { _ = f.Close() }()
		stdout = f
	}

	path, err := l.table.LookPath(req.cmd.Name())
	if err != nil {
		l.logger.Error(zerr.With(err, "stage", req.stage))
		return domain.ProcessHandle{}, domain.ExitLaunchFailed, nil
	}

	handle, err := l.table.Spawn(ports.SpawnSpec{
		Path:   path,
		Argv:   req.cmd,
		Stdin:  stdin,
		Stdout: stdout,
		Detach: req.detach,
		Stage:  req.stage,
	}, req.watch)
	if err != nil {
		if errors.Is(err, domain.ErrExecFailed) {
			l.logger.Error(zerr.With(err, "stage", req.stage))
			return domain.ProcessHandle{}, domain.ExitLaunchFailed, nil
		}
		return domain.ProcessHandle{}, 0, err
	}

	return handle, 0, nil
}

func redirectError(req stageRequest, path string, err error) error {
	reason := err.Error()
	var pathErr *os.PathError
	if errors.As(err, &pathErr) {
		reason = pathErr.Err.Error()
	}
	return zerr.With(zerr.With(zerr.Wrap(domain.ErrRedirectFailed, path), "reason", reason), "stage", req.stage)
}

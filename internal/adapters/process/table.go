// Package process implements the shell's process table: spawning children with
// explicit descriptors and collecting their state changes with wait4.
package process

import (
	"errors"
	"os"
	"os/exec"
	"sync"
	"syscall"

	"github.com/SalimYassine/Minishell/internal/core/domain"
	"github.com/SalimYassine/Minishell/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sys/unix"
)

const waitOptions = unix.WNOHANG | unix.WUNTRACED | unix.WCONTINUED

type watcher struct {
	fn ports.StatusFunc
}

// Table implements ports.ProcessTable. It must be the only code in the process
// that waits for children.
type Table struct {
	mu       sync.Mutex
	watchers map[int]*watcher
}

// NewTable creates an empty process table.
func NewTable() *Table {
	return &Table{
		watchers: make(map[int]*watcher),
	}
}

// LookPath resolves file through PATH. Names containing a slash are used as is.
func (t *Table) LookPath(file string) (string, error) {
	path, err := exec.LookPath(file)
	if err != nil && !errors.Is(err, exec.ErrDot) {
		return "", zerr.Wrap(domain.ErrCommandNotFound, file)
	}
	return path, nil
}

// Spawn starts the process described by spec. The child receives exactly the three
// standard descriptors; every other descriptor of the shell is close-on-exec.
func (t *Table) Spawn(spec ports.SpawnSpec, watch ports.StatusFunc) (domain.ProcessHandle, error) {
	handle := domain.ProcessHandle{Stage: spec.Stage}

	attr := &os.ProcAttr{
		Files: []*os.File{
			orDefault(spec.Stdin, os.Stdin),
			orDefault(spec.Stdout, os.Stdout),
			orDefault(spec.Stderr, os.Stderr),
		},
		Sys: &syscall.SysProcAttr{Setpgid: spec.Detach},
	}

	// The reaper waits under the same lock, so it never sees this pid before its
	// watcher exists nor a child whose exec failed.
	t.mu.Lock()
	defer t.mu.Unlock()

	proc, err := os.StartProcess(spec.Path, spec.Argv, attr) //nolint:gosec // user provided command
	if err != nil {
		return handle, classify(err, spec)
	}

	handle.Pid = proc.Pid
	if spec.Detach {
		handle.Pgid = proc.Pid
	} else {
		handle.Pgid = unix.Getpgrp()
	}

	// The table reaps the child; the os.Process is never waited on.
	_ = proc.Release()

	if watch != nil {
		t.watchers[handle.Pid] = &watcher{fn: watch}
	}

	return handle, nil
}

// Reap collects every pending state change without blocking, looping until the
// kernel reports nothing more. Notifications coalesce, so one call may observe
// several children. Watchers run outside the table lock.
func (t *Table) Reap() []domain.ProcessStatus {
	var unwatched []domain.ProcessStatus

	for {
		st, w, ok := t.next()
		if !ok {
			return unwatched
		}
		if w == nil {
			unwatched = append(unwatched, st)
			continue
		}
		t.notify(w, st)
	}
}

// next waits for one state change and claims its watcher. The wait runs under
// the spawn lock: os.StartProcess waits for a child whose exec failed, and a
// wait4(-1) in between would collect that child in its place.
func (t *Table) next() (domain.ProcessStatus, *watcher, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	for {
		var ws unix.WaitStatus
		pid, err := unix.Wait4(-1, &ws, waitOptions, nil)
		if errors.Is(err, unix.EINTR) {
			continue
		}
		if err != nil || pid <= 0 {
			return domain.ProcessStatus{}, nil, false
		}

		st, ok := domain.StatusFromWait(pid, syscall.WaitStatus(ws))
		if !ok {
			continue
		}

		w := t.watchers[pid]
		if w != nil && st.Terminated() {
			// The pid is free for reuse once reaped.
			delete(t.watchers, pid)
		}
		return st, w, true
	}
}

// notify hands st to w and unregisters w when it is done before termination.
func (t *Table) notify(w *watcher, st domain.ProcessStatus) {
	if !w.fn(st) || st.Terminated() {
		return
	}

	t.mu.Lock()
	if t.watchers[st.Pid] == w {
		delete(t.watchers, st.Pid)
	}
	t.mu.Unlock()
}

func orDefault(f, def *os.File) *os.File {
	if f == nil {
		return def
	}
	return f
}

// classify separates resource exhaustion, which is the shell's failure, from
// errors that belong to the program being started.
func classify(err error, spec ports.SpawnSpec) error {
	var errno syscall.Errno
	if errors.As(err, &errno) && exhausted(errno) {
		return zerr.With(zerr.With(zerr.Wrap(domain.ErrSpawnFailed, errno.Error()), "command", spec.Path), "stage", spec.Stage)
	}
	return zerr.With(zerr.Wrap(domain.ErrExecFailed, spec.Path), "reason", unwrapMessage(err))
}

func exhausted(errno syscall.Errno) bool {
	switch errno {
	case unix.EAGAIN, unix.ENOMEM, unix.EMFILE, unix.ENFILE:
		return true
	default:
		return false
	}
}

func unwrapMessage(err error) string {
	var pathErr *os.PathError
	if errors.As(err, &pathErr) {
		return pathErr.Err.Error()
	}
	return err.Error()
}

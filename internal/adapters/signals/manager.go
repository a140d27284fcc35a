// Package signals installs the shell's signal dispositions.
package signals

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/SalimYassine/Minishell/internal/core/domain"
	"go.trai.ch/zerr"
	"golang.org/x/sys/unix"
)

var (
	interactiveSignals = []os.Signal{syscall.SIGINT, syscall.SIGTSTP}
	newline            = []byte{'\n'}
)

// Manager implements ports.SignalManager.
//
// SIGINT and SIGTSTP are absorbed by the shell: each delivery writes one newline
// to the output descriptor. SIGCHLD deliveries invoke the child callback. Both are
// handled by a single goroutine, so the callback never runs concurrently with itself.
type Manager struct {
	mu          sync.Mutex
	fd          int
	interactive chan os.Signal
	child       chan os.Signal
	stop        chan struct{}
	wg          sync.WaitGroup
}

// NewManager creates a Manager writing its newlines to standard output.
func NewManager() *Manager {
	return NewManagerWithOutput(unix.Stdout)
}

// NewManagerWithOutput creates a Manager writing its newlines to fd.
func NewManagerWithOutput(fd int) *Manager {
	return &Manager{fd: fd}
}

// Install sets up the handlers. The interactive signals are ignored while the
// handlers are being installed so that no delivery can hit the default,
// terminating disposition; installing the handler lifts the ignore.
func (m *Manager) Install(ctx context.Context, onChild func()) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.stop != nil {
		return zerr.Wrap(domain.ErrSignalSetup, "handlers already installed")
	}

	signal.Ignore(interactiveSignals...)

	// Buffered by one: the runtime coalesces pending deliveries and the reap
	// callback drains every pending child state change anyway.
	m.interactive = make(chan os.Signal, 1)
	m.child = make(chan os.Signal, 1)
	signal.Notify(m.interactive, interactiveSignals...)
	signal.Notify(m.child, syscall.SIGCHLD)

	m.stop = make(chan struct{})
	m.wg.Add(1)
	go m.loop(ctx, m.stop, m.interactive, m.child, onChild)

	return nil
}

// Stop removes the handlers and restores the default dispositions.
func (m *Manager) Stop() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.stop == nil {
		return
	}

	signal.Stop(m.interactive)
	signal.Stop(m.child)
	signal.Reset(syscall.SIGINT, syscall.SIGTSTP, syscall.SIGCHLD)

	close(m.stop)
	m.wg.Wait()
	m.stop = nil
}

func (m *Manager) loop(
	ctx context.Context,
	stop <-chan struct{},
	interactive, child <-chan os.Signal,
	onChild func(),
) {
	defer m.wg.Done()

	for {
		select {
		case <-ctx.Done():
			return
		case <-stop:
			return
		case <-interactive:
			m.writeNewline()
		case <-child:
			if onChild != nil {
				onChild()
			}
		}
	}
}

// writeNewline uses a single unbuffered write so nothing queued by other writers
// is flushed or reordered.
func (m *Manager) writeNewline() {
	for {
		_, err := unix.Write(m.fd, newline)
		if !errors.Is(err, unix.EINTR) {
			return
		}
	}
}

package ports

import (
	"os"

	"github.com/SalimYassine/Minishell/internal/core/domain"
)

// SpawnSpec describes a process to start with explicit standard descriptors.
type SpawnSpec struct {
	// Path is the resolved executable.
	Path string
	// Argv is the full argument vector, Argv[0] included.
	Argv []string
	// Stdin, Stdout and Stderr become descriptors 0, 1 and 2 of the child.
	// No other descriptor is inherited.
	Stdin  *os.File
	Stdout *os.File
	Stderr *os.File
	// Detach places the child in a new process group.
	Detach bool
	// Stage is the index of the command in its pipeline.
	Stage int
}

// StatusFunc receives the state changes of a watched process. Returning true
// ends the watch; later changes of that process are reported as unwatched.
// It is called from the reaping goroutine and must not block.
type StatusFunc func(st domain.ProcessStatus) (done bool)

// ProcessTable is the shell's view of its children. It is the only component
// allowed to collect child statuses.
//
//go:generate mockgen -source=process.go -destination=mocks/mock_process.go -package=mocks
type ProcessTable interface {
	// LookPath resolves an executable name through the search path.
	LookPath(file string) (string, error)
	// Spawn starts a process. When watch is non-nil it is registered
	// atomically with the spawn, so no state change can be missed.
	Spawn(spec SpawnSpec, watch StatusFunc) (domain.ProcessHandle, error)
	// Reap collects every pending state change without blocking. Changes of
	// watched processes are delivered to their watchers; the others are returned.
	Reap() []domain.ProcessStatus
}

package domain

import (
	"fmt"
	"syscall"
)

// Distinguished exit statuses recorded for stages that fail before their program runs.
const (
	// ExitRedirectFailed is the status of a stage whose redirection file could not be opened.
	ExitRedirectFailed = 1
	// ExitLaunchFailed is the status of a stage whose executable could not be found or executed.
	ExitLaunchFailed = 127
)

// ProcessHandle identifies a spawned process.
type ProcessHandle struct {
	Pid   int
	Stage int
	Pgid  int
}

// ProcessState is the kind of state change reported for a child.
type ProcessState int

const (
	// StateExited means the process terminated normally.
	StateExited ProcessState = iota
	// StateSignaled means the process was killed by a signal.
	StateSignaled
	// StateStopped means the process was suspended.
	StateStopped
	// StateContinued means a stopped process was resumed.
	StateContinued
)

func (s ProcessState) String() string {
	switch s {
	case StateExited:
		return "exited"
	case StateSignaled:
		return "signaled"
	case StateStopped:
		return "stopped"
	case StateContinued:
		return "continued"
	default:
		return "unknown"
	}
}

// ProcessStatus is one observed state change of a child process.
type ProcessStatus struct {
	Pid    int
	State  ProcessState
	Code   int
	Signal syscall.Signal
}

// Terminated reports whether the process is gone (exited or killed).
func (s ProcessStatus) Terminated() bool {
	return s.State == StateExited || s.State == StateSignaled
}

// Success reports whether the process exited with status 0.
func (s ProcessStatus) Success() bool {
	return s.State == StateExited && s.Code == 0
}

// StatusFromWait converts a raw wait status into a ProcessStatus.
// The second result is false when ws carries no recognised state change.
func StatusFromWait(pid int, ws syscall.WaitStatus) (ProcessStatus, bool) {
	switch {
	case ws.Exited():
		return ProcessStatus{Pid: pid, State: StateExited, Code: ws.ExitStatus()}, true
	case ws.Signaled():
		return ProcessStatus{Pid: pid, State: StateSignaled, Signal: ws.Signal()}, true
	case ws.Stopped():
		return ProcessStatus{Pid: pid, State: StateStopped, Signal: ws.StopSignal()}, true
	case ws.Continued():
		return ProcessStatus{Pid: pid, State: StateContinued}, true
	default:
		return ProcessStatus{}, false
	}
}

// String returns the status line printed for the event.
func (s ProcessStatus) String() string {
	switch s.State {
	case StateExited:
		return fmt.Sprintf("[%d] exited (code %d)", s.Pid, s.Code)
	case StateSignaled:
		return fmt.Sprintf("[%d] killed by signal %d", s.Pid, int(s.Signal))
	case StateStopped:
		return fmt.Sprintf("[%d] stopped (signal %d)", s.Pid, int(s.Signal))
	case StateContinued:
		return fmt.Sprintf("[%d] continued", s.Pid)
	default:
		return fmt.Sprintf("[%d] unknown state", s.Pid)
	}
}

package domain

import (
	"sync"

	"go.trai.ch/zerr"
)

// JobState is the lifecycle state of a spawned process as seen by the shell.
type JobState int

const (
	// JobRunningForeground is a running process the shell is blocked on.
	JobRunningForeground JobState = iota
	// JobRunningBackground is a running process detached from the terminal.
	JobRunningBackground
	// JobStopped is a suspended process.
	JobStopped
	// JobExited is a process that terminated normally.
	JobExited
	// JobSignaled is a process killed by a signal.
	JobSignaled
)

func (s JobState) String() string {
	switch s {
	case JobRunningForeground:
		return "running(fg)"
	case JobRunningBackground:
		return "running(bg)"
	case JobStopped:
		return "stopped"
	case JobExited:
		return "exited"
	case JobSignaled:
		return "signaled"
	default:
		return "unknown"
	}
}

// Terminal reports whether no further transition is possible.
func (s JobState) Terminal() bool {
	return s == JobExited || s == JobSignaled
}

// Job tracks one process through its state machine. It is safe for concurrent use:
// background jobs are updated from the reap drain while the shell reads them.
type Job struct {
	mu         sync.Mutex
	handle     ProcessHandle
	background bool
	state      JobState
	last       ProcessStatus
}

// NewJob creates a job in its initial running state.
func NewJob(background bool) *Job {
	state := JobRunningForeground
	if background {
		state = JobRunningBackground
	}
	return &Job{background: background, state: state}
}

// NewFailedJob creates a job for a process that never ran. Its status is the
// distinguished exit code of the failure.
func NewFailedJob(stage, code int) *Job {
	return &Job{
		handle: ProcessHandle{Stage: stage},
		state:  JobExited,
		last:   ProcessStatus{State: StateExited, Code: code},
	}
}

// Attach records the handle of the spawned process.
func (j *Job) Attach(h ProcessHandle) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.handle = h
	j.last.Pid = h.Pid
}

// Handle returns the process handle.
func (j *Job) Handle() ProcessHandle {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.handle
}

// Background reports whether the job was started detached.
func (j *Job) Background() bool {
	return j.background
}

// State returns the current state.
func (j *Job) State() JobState {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.state
}

// Status returns the last observed status.
func (j *Job) Status() ProcessStatus {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.last
}

// Observe applies an observed state change and returns the resulting state.
// A continued event only resumes a stopped job; it never starts one.
func (j *Job) Observe(st ProcessStatus) (JobState, error) {
	j.mu.Lock()
	defer j.mu.Unlock()

	if j.state.Terminal() {
		return j.state, zerr.With(zerr.Wrap(ErrJobFinished, "state change ignored"), "state", j.state.String())
	}

	switch st.State {
	case StateExited:
		j.state = JobExited
	case StateSignaled:
		j.state = JobSignaled
	case StateStopped:
		j.state = JobStopped
	case StateContinued:
		if j.state == JobStopped {
			j.state = j.runningState()
		}
	default:
		return j.state, zerr.With(zerr.Wrap(ErrInvalidTransition, "state change ignored"), "event", st.State.String())
	}
	j.last = st
	return j.state, nil
}

func (j *Job) runningState() JobState {
	if j.background {
		return JobRunningBackground
	}
	return JobRunningForeground
}

package domain_test

import (
	"syscall"
	"testing"

	"github.com/SalimYassine/Minishell/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Raw wait statuses as encoded by the Linux kernel.
func exitedWS(code int) syscall.WaitStatus { return syscall.WaitStatus(code << 8) }
func signaledWS(sig syscall.Signal) syscall.WaitStatus { return syscall.WaitStatus(sig) }
func stoppedWS(sig syscall.Signal) syscall.WaitStatus { return syscall.WaitStatus(0x7f | int(sig)<<8) }

const continuedWS = syscall.WaitStatus(0xffff)

func TestStatusFromWait(t *testing.T) {
	tests := []struct {
		name string
		ws   syscall.WaitStatus
		want domain.ProcessStatus
		line string
	}{
		{
			name: "exited",
			ws:   exitedWS(3),
			want: domain.ProcessStatus{Pid: 42, State: domain.StateExited, Code: 3},
			line: "[42] exited (code 3)",
		},
		{
			name: "killed",
			ws:   signaledWS(syscall.SIGKILL),
			want: domain.ProcessStatus{Pid: 42, State: domain.StateSignaled, Signal: syscall.SIGKILL},
			line: "[42] killed by signal 9",
		},
		{
			name: "stopped",
			ws:   stoppedWS(syscall.SIGTSTP),
			want: domain.ProcessStatus{Pid: 42, State: domain.StateStopped, Signal: syscall.SIGTSTP},
			line: "[42] stopped (signal 20)",
		},
		{
			name: "continued",
			ws:   continuedWS,
			want: domain.ProcessStatus{Pid: 42, State: domain.StateContinued},
			line: "[42] continued",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := domain.StatusFromWait(42, tt.ws)
			require.True(t, ok)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.line, got.String())
		})
	}
}

func TestProcessStatus_Predicates(t *testing.T) {
	ok := domain.ProcessStatus{State: domain.StateExited}
	failed := domain.ProcessStatus{State: domain.StateExited, Code: domain.ExitLaunchFailed}
	killed := domain.ProcessStatus{State: domain.StateSignaled, Signal: syscall.SIGTERM}
	stopped := domain.ProcessStatus{State: domain.StateStopped}

	assert.True(t, ok.Success())
	assert.False(t, failed.Success())
	assert.True(t, failed.Terminated())
	assert.True(t, killed.Terminated())
	assert.False(t, stopped.Terminated())
}

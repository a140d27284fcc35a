package jobs_test

import (
	"bytes"
	"syscall"
	"testing"

	"github.com/SalimYassine/Minishell/internal/core/domain"
	"github.com/SalimYassine/Minishell/internal/core/ports"
	"github.com/SalimYassine/Minishell/internal/core/ports/mocks"
	"github.com/SalimYassine/Minishell/internal/engine/jobs"
	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestReporter_StatusLines(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	ctrl := gomock.NewController(t)
	table := mocks.NewMockProcessTable(ctrl)

	buf := &bytes.Buffer{}
	r := jobs.NewReporter(buf)
	ctl := jobs.NewController(table, r, mocks.NewMockLogger(ctrl))

	var watch ports.StatusFunc
	table.EXPECT().LookPath("sleep").Return("/bin/sleep", nil)
	table.EXPECT().Spawn(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ ports.SpawnSpec, w ports.StatusFunc) (domain.ProcessHandle, error) {
			watch = w
			return domain.ProcessHandle{Pid: 4242, Pgid: 4242}, nil
		})

	_, err := ctl.RunBackground(domain.Command{"sleep", "30"}, jobs.Redirects{})
	require.NoError(t, err)

	watch(domain.ProcessStatus{Pid: 4242, State: domain.StateStopped, Signal: syscall.SIGTSTP})
	watch(domain.ProcessStatus{Pid: 4242, State: domain.StateContinued})
	watch(domain.ProcessStatus{Pid: 4242, State: domain.StateExited, Code: 0})
	r.Status(domain.ProcessStatus{Pid: 4243, State: domain.StateExited, Code: 127})
	r.Status(domain.ProcessStatus{Pid: 4244, State: domain.StateSignaled, Signal: syscall.SIGKILL})

	g := goldie.New(t)
	g.Assert(t, "reporter_status_lines", buf.Bytes())
}

package jobs_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/SalimYassine/Minishell/internal/adapters/logger"
	"github.com/SalimYassine/Minishell/internal/adapters/process"
	"github.com/SalimYassine/Minishell/internal/adapters/signals"
	"github.com/SalimYassine/Minishell/internal/engine/jobs"
	"github.com/stretchr/testify/require"
)

const (
	waitFor = 5 * time.Second
	tick    = 10 * time.Millisecond
)

// syncBuffer is a bytes.Buffer safe for the reaping goroutine and the test.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

type harness struct {
	ctl *jobs.Controller
	out *syncBuffer
	log *syncBuffer
}

// newHarness creates a controller over a real process table whose reaping is
// driven by SIGCHLD, as in the shell.
func newHarness(t *testing.T) *harness {
	t.Helper()
	t.Setenv("NO_COLOR", "1")

	h := &harness{out: &syncBuffer{}, log: &syncBuffer{}}
	h.ctl = jobs.NewController(process.NewTable(), jobs.NewReporter(h.out), logger.NewWithOutput(h.log))

	devNull, err := os.OpenFile(os.DevNull, os.O_WRONLY, 0)
	require.NoError(t, err)
	t.Cleanup(func() { _ = devNull.Close() })

	manager := signals.NewManagerWithOutput(int(devNull.Fd()))
	require.NoError(t, manager.Install(context.Background(), h.ctl.HandleChildSignal))
	t.Cleanup(manager.Stop)

	return h
}

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "input.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

package app_test

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/SalimYassine/Minishell/internal/adapters/parser"
	"github.com/SalimYassine/Minishell/internal/adapters/telemetry"
	"github.com/SalimYassine/Minishell/internal/app"
	"github.com/SalimYassine/Minishell/internal/core/domain"
	"github.com/SalimYassine/Minishell/internal/core/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

type appMocks struct {
	loader   *mocks.MockConfigLoader
	executor *mocks.MockExecutor
	signals  *mocks.MockSignalManager
	logger   *mocks.MockLogger
	out      *bytes.Buffer
}

// newTestApp builds an App over mocks whose stdin yields input.
func newTestApp(t *testing.T, settings *domain.Settings, input string) (*app.App, *appMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)

	m := &appMocks{
		loader:   mocks.NewMockConfigLoader(ctrl),
		executor: mocks.NewMockExecutor(ctrl),
		signals:  mocks.NewMockSignalManager(ctrl),
		logger:   mocks.NewMockLogger(ctrl),
		out:      &bytes.Buffer{},
	}

	if settings != nil {
		m.loader.EXPECT().Load(gomock.Any()).Return(settings, nil)
		m.logger.EXPECT().SetJSON(settings.LogJSON)
		m.signals.EXPECT().Install(gomock.Any(), gomock.Any()).Return(nil)
		m.signals.EXPECT().Stop()
	}

	a := app.New(m.loader, parser.New(), m.executor, m.signals, m.logger, func() {})
	a.WithIO(stdinFrom(t, input), m.out)
	return a, m
}

func stdinFrom(t *testing.T, input string) *os.File {
	t.Helper()
	path := filepath.Join(t.TempDir(), "stdin")
	require.NoError(t, os.WriteFile(path, []byte(input), 0o600))
	f, err := os.Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = f.Close() })
	return f
}

func pipelineOf(words ...string) *domain.Pipeline {
	return &domain.Pipeline{Seq: []domain.Command{words}}
}

func errorIs(target error) gomock.Matcher {
	return gomock.Cond(func(err error) bool { return errors.Is(err, target) })
}

func TestRun_Command(t *testing.T) {
	a, m := newTestApp(t, domain.DefaultSettings(), "")

	m.executor.EXPECT().Execute(gomock.Any(), pipelineOf("ls", "-l")).Return(nil)

	err := a.Run(context.Background(), app.RunOptions{ConfigPath: "", Command: "ls -l"})
	require.NoError(t, err)
	assert.Empty(t, m.out.String())
}

func TestRun_ConfigPathIsPassed(t *testing.T) {
	ctrl := gomock.NewController(t)
	loader := mocks.NewMockConfigLoader(ctrl)
	loader.EXPECT().Load("/etc/minishell.yaml").Return(nil, zerr.Wrap(domain.ErrConfigParseFailed, "/etc/minishell.yaml"))

	a := app.New(loader, parser.New(), mocks.NewMockExecutor(ctrl), mocks.NewMockSignalManager(ctrl), mocks.NewMockLogger(ctrl), func() {})

	err := a.Run(context.Background(), app.RunOptions{ConfigPath: "/etc/minishell.yaml"})
	require.ErrorIs(t, err, domain.ErrConfigParseFailed)
}

func TestRun_ReadLoop(t *testing.T) {
	a, m := newTestApp(t, domain.DefaultSettings(), "ls\n\n   \necho 'open\ncat file | wc -l\nexit\necho unreachable\n")

	gomock.InOrder(
		m.executor.EXPECT().Execute(gomock.Any(), pipelineOf("ls")).Return(nil),
		m.executor.EXPECT().Execute(gomock.Any(), &domain.Pipeline{
			Seq: []domain.Command{{"cat", "file"}, {"wc", "-l"}},
		}).Return(nil),
	)

	err := a.Run(context.Background(), app.RunOptions{})
	require.NoError(t, err)
	assert.Equal(t, "error: unterminated quote\n", m.out.String(), "no prompt and no farewell without a terminal")
}

func TestRun_LastLineWithoutNewline(t *testing.T) {
	a, m := newTestApp(t, domain.DefaultSettings(), "true\nfalse")

	gomock.InOrder(
		m.executor.EXPECT().Execute(gomock.Any(), pipelineOf("true")).Return(nil),
		m.executor.EXPECT().Execute(gomock.Any(), pipelineOf("false")).Return(nil),
	)

	require.NoError(t, a.Run(context.Background(), app.RunOptions{}))
}

func TestRun_SpawnFailure(t *testing.T) {
	spawnErr := zerr.Wrap(domain.ErrSpawnFailed, "resource temporarily unavailable")

	t.Run("reported and the shell carries on", func(t *testing.T) {
		a, m := newTestApp(t, domain.DefaultSettings(), "yes | head\nls\n")

		gomock.InOrder(
			m.executor.EXPECT().Execute(gomock.Any(), gomock.Any()).Return(spawnErr),
			m.executor.EXPECT().Execute(gomock.Any(), pipelineOf("ls")).Return(nil),
		)
		m.logger.EXPECT().Error(spawnErr)

		require.NoError(t, a.Run(context.Background(), app.RunOptions{}))
	})

	t.Run("fatal with strict_spawn", func(t *testing.T) {
		settings := domain.DefaultSettings()
		settings.StrictSpawn = true
		a, m := newTestApp(t, settings, "yes | head\nls\n")

		m.executor.EXPECT().Execute(gomock.Any(), gomock.Any()).Return(spawnErr)

		err := a.Run(context.Background(), app.RunOptions{})
		require.ErrorIs(t, err, domain.ErrSpawnFailed)
	})
}

func TestRun_CancelledContextEndsTheShell(t *testing.T) {
	a, m := newTestApp(t, domain.DefaultSettings(), "sleep 10\nls\n")
	ctx, cancel := context.WithCancel(context.Background())

	m.executor.EXPECT().Execute(gomock.Any(), pipelineOf("sleep", "10")).DoAndReturn(
		func(ctx context.Context, _ *domain.Pipeline) error {
			cancel()
			return ctx.Err()
		})

	require.NoError(t, a.Run(ctx, app.RunOptions{}))
}

func TestRun_Telemetry(t *testing.T) {
	settings := domain.DefaultSettings()
	settings.TelemetryEndpoint = "localhost:4318"
	settings.TelemetryInsecure = true

	t.Run("set up and shut down", func(t *testing.T) {
		a, _ := newTestApp(t, settings, "")

		shutdown := false
		a.WithTelemetrySetup(func(_ context.Context, endpoint string, insecure bool) (telemetry.ShutdownFunc, error) {
			assert.Equal(t, "localhost:4318", endpoint)
			assert.True(t, insecure)
			return func(context.Context) error {
				shutdown = true
				return nil
			}, nil
		})

		require.NoError(t, a.Run(context.Background(), app.RunOptions{}))
		assert.True(t, shutdown)
	})

	t.Run("failure is reported", func(t *testing.T) {
		a, m := newTestApp(t, settings, "")
		setupErr := zerr.Wrap(domain.ErrTelemetrySetupFailed, "invalid endpoint")

		a.WithTelemetrySetup(func(context.Context, string, bool) (telemetry.ShutdownFunc, error) {
			return nil, setupErr
		})
		m.logger.EXPECT().Error(setupErr)

		require.NoError(t, a.Run(context.Background(), app.RunOptions{}))
	})
}

func TestRun_SignalSetupFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	loader := mocks.NewMockConfigLoader(ctrl)
	logger := mocks.NewMockLogger(ctrl)
	sig := mocks.NewMockSignalManager(ctrl)

	loader.EXPECT().Load(gomock.Any()).Return(domain.DefaultSettings(), nil)
	logger.EXPECT().SetJSON(false)
	sig.EXPECT().Install(gomock.Any(), gomock.Any()).Return(zerr.Wrap(domain.ErrSignalSetup, "handlers already installed"))

	a := app.New(loader, parser.New(), mocks.NewMockExecutor(ctrl), sig, logger, func() {})
	err := a.Run(context.Background(), app.RunOptions{Command: "ls"})
	require.ErrorIs(t, err, domain.ErrSignalSetup)
}

func TestRun_ChildCallbackIsInstalled(t *testing.T) {
	ctrl := gomock.NewController(t)
	loader := mocks.NewMockConfigLoader(ctrl)
	logger := mocks.NewMockLogger(ctrl)
	sig := mocks.NewMockSignalManager(ctrl)

	called := false
	loader.EXPECT().Load(gomock.Any()).Return(domain.DefaultSettings(), nil)
	logger.EXPECT().SetJSON(false)
	sig.EXPECT().Install(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, onChild func()) error {
		onChild()
		return nil
	})
	sig.EXPECT().Stop()

	a := app.New(loader, parser.New(), mocks.NewMockExecutor(ctrl), sig, logger, func() { called = true })
	a.WithIO(stdinFrom(t, ""), &bytes.Buffer{})

	require.NoError(t, a.Run(context.Background(), app.RunOptions{}))
	assert.True(t, called)
}

func TestRun_LinesGoThroughTheParser(t *testing.T) {
	ctrl := gomock.NewController(t)
	loader := mocks.NewMockConfigLoader(ctrl)
	p := mocks.NewMockParser(ctrl)
	executor := mocks.NewMockExecutor(ctrl)
	logger := mocks.NewMockLogger(ctrl)
	sig := mocks.NewMockSignalManager(ctrl)

	loader.EXPECT().Load(gomock.Any()).Return(domain.DefaultSettings(), nil)
	logger.EXPECT().SetJSON(false)
	sig.EXPECT().Install(gomock.Any(), gomock.Any()).Return(nil)
	sig.EXPECT().Stop()

	parsed := pipelineOf("ls", "-a")
	gomock.InOrder(
		p.EXPECT().Parse("first").Return(&domain.Pipeline{Err: "bad token"}),
		p.EXPECT().Parse("second").Return(parsed),
	)
	executor.EXPECT().Execute(gomock.Any(), parsed).Return(nil)

	out := &bytes.Buffer{}
	a := app.New(loader, p, executor, sig, logger, func() {})
	a.WithIO(stdinFrom(t, "first\nsecond\n"), out)

	require.NoError(t, a.Run(context.Background(), app.RunOptions{}))
	assert.Equal(t, "error: bad token\n", out.String())
}

// watchWith installs a config watcher that reports change as soon as the read
// loop starts watching.
func watchWith(t *testing.T, a *app.App, path string, change func(onChange func(*domain.Settings, error))) {
	t.Helper()
	watcher := mocks.NewMockConfigWatcher(gomock.NewController(t))
	watcher.EXPECT().Watch(gomock.Any(), path, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, onChange func(*domain.Settings, error)) error {
			change(onChange)
			return nil
		})
	a.WithConfigWatcher(watcher)
}

func TestRun_ReloadedSettingsApplyToLaterLines(t *testing.T) {
	a, m := newTestApp(t, domain.DefaultSettings(), "ls\necho unreachable\n")

	strict := domain.DefaultSettings()
	strict.StrictSpawn = true
	strict.LogJSON = true
	watchWith(t, a, "custom.yaml", func(onChange func(*domain.Settings, error)) {
		onChange(strict, nil)
	})

	m.logger.EXPECT().SetJSON(true)
	m.logger.EXPECT().Info("configuration reloaded")
	m.executor.EXPECT().Execute(gomock.Any(), pipelineOf("ls")).Return(domain.ErrSpawnFailed)

	err := a.Run(context.Background(), app.RunOptions{ConfigPath: "custom.yaml"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrSpawnFailed))
}

func TestRun_InvalidReloadKeepsSettings(t *testing.T) {
	a, m := newTestApp(t, domain.DefaultSettings(), "ls\n")

	broken := zerr.Wrap(domain.ErrConfigParseFailed, "custom.yaml")
	watchWith(t, a, "custom.yaml", func(onChange func(*domain.Settings, error)) {
		onChange(nil, broken)
	})

	m.logger.EXPECT().Error(errorIs(domain.ErrConfigParseFailed))
	m.executor.EXPECT().Execute(gomock.Any(), pipelineOf("ls")).Return(domain.ErrSpawnFailed)
	m.logger.EXPECT().Error(errorIs(domain.ErrSpawnFailed))

	err := a.Run(context.Background(), app.RunOptions{ConfigPath: "custom.yaml"})
	require.NoError(t, err)
}

func TestRun_WatchFailureIsNotFatal(t *testing.T) {
	a, m := newTestApp(t, domain.DefaultSettings(), "ls\n")

	watcher := mocks.NewMockConfigWatcher(gomock.NewController(t))
	watcher.EXPECT().Watch(gomock.Any(), "", gomock.Any()).Return(domain.ErrConfigWatchFailed)
	a.WithConfigWatcher(watcher)

	m.logger.EXPECT().Error(errorIs(domain.ErrConfigWatchFailed))
	m.executor.EXPECT().Execute(gomock.Any(), pipelineOf("ls")).Return(nil)

	require.NoError(t, a.Run(context.Background(), app.RunOptions{}))
}

func TestRun_CommandIsNotWatched(t *testing.T) {
	a, m := newTestApp(t, domain.DefaultSettings(), "")

	// No expectations: a Watch call fails the test.
	a.WithConfigWatcher(mocks.NewMockConfigWatcher(gomock.NewController(t)))

	m.executor.EXPECT().Execute(gomock.Any(), pipelineOf("ls")).Return(nil)

	require.NoError(t, a.Run(context.Background(), app.RunOptions{Command: "ls"}))
}

// Package app implements the application layer for minishell.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sync/atomic"

	"github.com/SalimYassine/Minishell/internal/adapters/telemetry"
	"github.com/SalimYassine/Minishell/internal/core/domain"
	"github.com/SalimYassine/Minishell/internal/core/ports"
	"github.com/SalimYassine/Minishell/internal/ui/output"
	"github.com/SalimYassine/Minishell/internal/ui/style"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"go.trai.ch/zerr"
)

// TelemetrySetup installs trace export and returns its shutdown.
type TelemetrySetup func(ctx context.Context, endpoint string, insecure bool) (telemetry.ShutdownFunc, error)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	watcher      ports.ConfigWatcher
	parser       ports.Parser
	executor     ports.Executor
	signals      ports.SignalManager
	logger       ports.Logger
	onChild      func()

	stdin          *os.File
	stdout         io.Writer
	setupTelemetry TelemetrySetup
}

// New creates a new App instance. onChild is run on every child state change
// notification.
func New(
	loader ports.ConfigLoader,
	parser ports.Parser,
	executor ports.Executor,
	signals ports.SignalManager,
	log ports.Logger,
	onChild func(),
) *App {
	return &App{
		configLoader:   loader,
		parser:         parser,
		executor:       executor,
		signals:        signals,
		logger:         log,
		onChild:        onChild,
		stdin:          os.Stdin,
		stdout:         os.Stdout,
		setupTelemetry: telemetry.Setup,
	}
}

// WithIO replaces the shell's input and output. Used for testing.
func (a *App) WithIO(stdin *os.File, stdout io.Writer) *App {
	a.stdin = stdin
	a.stdout = stdout
	return a
}

// WithTelemetrySetup replaces the trace export setup. Used for testing.
func (a *App) WithTelemetrySetup(setup TelemetrySetup) *App {
	a.setupTelemetry = setup
	return a
}

// WithConfigWatcher reloads the settings of the read loop whenever the config
// file changes. A nil watcher disables reloading.
func (a *App) WithConfigWatcher(w ports.ConfigWatcher) *App {
	a.watcher = w
	return a
}

// RunOptions configuration for the Run method.
type RunOptions struct {
	// ConfigPath overrides the default config file location.
	ConfigPath string
	// Command runs a single line instead of reading from stdin.
	Command string
}

// Run starts the shell. It returns when the input ends, the exit built-in is
// used, ctx is done, or a fatal error occurs.
func (a *App) Run(ctx context.Context, opts RunOptions) error {
	// 1. Load the configuration
	settings, err := a.configLoader.Load(opts.ConfigPath)
	if err != nil {
		return zerr.Wrap(err, "failed to load configuration")
	}
	a.logger.SetJSON(settings.LogJSON)

	// 2. Initialize Telemetry
	if settings.TelemetryEndpoint != "" {
		shutdown, err := a.setupTelemetry(ctx, settings.TelemetryEndpoint, settings.TelemetryInsecure)
		if err != nil {
			a.logger.Error(err)
		} else {
			defer func() {
				_ = shutdown(context.WithoutCancel(ctx))
			}()
		}
	}

	// 3. Take over the signals
	if err := a.signals.Install(ctx, a.onChild); err != nil {
		return err
	}
	defer a.signals.Stop()

	s := &session{app: a}
	s.settings.Store(settings)

	// 4. Run a single line or the read loop
	if opts.Command != "" {
		_, err := s.runLine(ctx, opts.Command)
		return err
	}

	if a.watcher != nil {
		watchCtx, cancel := context.WithCancel(ctx)
		defer cancel()
		if err := a.watcher.Watch(watchCtx, opts.ConfigPath, s.reload); err != nil {
			a.logger.Error(err)
		}
	}
	return s.loop(ctx)
}

// session is one run of the shell with its current settings.
type session struct {
	app      *App
	settings atomic.Pointer[domain.Settings]
}

// reload swaps in settings read from a changed config file. An unreadable file
// keeps the previous settings. Telemetry is only set up at start.
func (s *session) reload(settings *domain.Settings, err error) {
	a := s.app
	if err != nil {
		a.logger.Error(err)
		return
	}
	a.logger.SetJSON(settings.LogJSON)
	s.settings.Store(settings)
	a.logger.Info("configuration reloaded")
}

func (s *session) loop(ctx context.Context) error {
	a := s.app
	interactive := output.IsTerminal(a.stdin)
	reader := newLineReader(int(a.stdin.Fd()))

	var promptStyle lipgloss.Style
	if interactive {
		renderer := lipgloss.NewRenderer(a.stdout, termenv.WithProfile(output.ColorProfile()))
		promptStyle = renderer.NewStyle().Foreground(style.Iris).Bold(true)
	}

	for {
		if interactive {
			_, _ = io.WriteString(a.stdout, promptStyle.Render(s.settings.Load().Prompt))
		}

		line, err := reader.ReadLine(ctx)
		if errors.Is(err, io.EOF) || ctx.Err() != nil {
			break
		}
		if err != nil {
			return zerr.Wrap(err, "failed to read input")
		}

		exit, err := s.runLine(ctx, line)
		if err != nil {
			return err
		}
		if exit {
			break
		}
	}

	if interactive {
		_, _ = fmt.Fprintln(a.stdout, "bye")
	}
	return nil
}

// runLine parses and runs one line. It reports whether the shell should exit.
// Only fatal errors are returned; everything else is reported and the shell
// carries on.
func (s *session) runLine(ctx context.Context, line string) (bool, error) {
	a := s.app

	p := a.parser.Parse(line)
	if p.Err != "" {
		_, _ = fmt.Fprintf(a.stdout, "error: %s\n", p.Err)
		return false, nil
	}
	if p.Empty() {
		return false, nil
	}

	if p.Stages() == 1 {
		if run, ok := builtins[p.Seq[0].Name()]; ok {
			return run(a, p.Seq[0].Args()), nil
		}
	}

	err := a.executor.Execute(ctx, p)
	switch {
	case err == nil:
		return false, nil
	case ctx.Err() != nil:
		return true, nil
	case s.settings.Load().StrictSpawn && (errors.Is(err, domain.ErrSpawnFailed) || errors.Is(err, domain.ErrPipeFailed)):
		return true, err
	default:
		a.logger.Error(err)
		return false, nil
	}
}

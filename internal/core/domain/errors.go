package domain

import "go.trai.ch/zerr"

var (
	// ErrParse is returned when a pipeline carrying a parse error is submitted for execution.
	ErrParse = zerr.New("parse error")

	// ErrEmptyPipeline is returned when a pipeline has no commands.
	ErrEmptyPipeline = zerr.New("empty pipeline")

	// ErrEmptyCommand is returned when a pipeline stage has no program name.
	ErrEmptyCommand = zerr.New("empty command")

	// ErrPipeFailed is returned when the pipes of a pipeline cannot be created.
	ErrPipeFailed = zerr.New("failed to create pipe")

	// ErrSpawnFailed is returned when the system refuses to create a process.
	ErrSpawnFailed = zerr.New("failed to create process")

	// ErrCommandNotFound is reported when an executable cannot be located or executed.
	ErrCommandNotFound = zerr.New("command not found")

	// ErrExecFailed is reported when a located executable cannot be started.
	ErrExecFailed = zerr.New("cannot execute")

	// ErrRedirectFailed is reported when a redirection file cannot be opened.
	ErrRedirectFailed = zerr.New("failed to open redirection")

	// ErrForegroundBusy is returned when a foreground wait is already outstanding.
	ErrForegroundBusy = zerr.New("a foreground job is already running")

	// ErrJobFinished is returned when a state change arrives for a terminated job.
	ErrJobFinished = zerr.New("job already finished")

	// ErrInvalidTransition is returned for an unknown job event.
	ErrInvalidTransition = zerr.New("invalid job transition")

	// ErrSignalSetup is returned when signal dispositions cannot be installed.
	ErrSignalSetup = zerr.New("failed to install signal handlers")

	// ErrUnsupportedBuiltin is reported for built-ins that exist only as placeholders.
	ErrUnsupportedBuiltin = zerr.New("builtin not supported")

	// ErrBuiltinFailed is reported when a built-in command fails.
	ErrBuiltinFailed = zerr.New("builtin failed")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrConfigWatchFailed is returned when the config file cannot be watched for changes.
	ErrConfigWatchFailed = zerr.New("failed to watch config file")

	// ErrTelemetrySetupFailed is returned when the trace exporter cannot be created.
	ErrTelemetrySetupFailed = zerr.New("failed to set up telemetry")
)

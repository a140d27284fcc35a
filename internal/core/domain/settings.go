package domain

// DefaultPrompt is printed before each line read from a terminal.
const DefaultPrompt = "> "

// Settings holds the user configuration of the shell.
type Settings struct {
	// Prompt is printed before each interactive read.
	Prompt string
	// StrictSpawn makes process or pipe creation failures fatal to the shell.
	StrictSpawn bool
	// LogJSON switches diagnostics to JSON.
	LogJSON bool
	// TelemetryEndpoint is the OTLP/HTTP endpoint for traces. Empty disables export.
	TelemetryEndpoint string
	// TelemetryInsecure disables TLS towards the endpoint.
	TelemetryInsecure bool
}

// DefaultSettings returns the settings used when no config file exists.
func DefaultSettings() *Settings {
	return &Settings{Prompt: DefaultPrompt}
}

package config

// Shellfile represents the structure of the .minishell.yaml configuration file.
type Shellfile struct {
	// Prompt is a pointer so that an explicitly empty prompt can be told apart
	// from an absent one.
	Prompt      *string      `yaml:"prompt"`
	StrictSpawn bool         `yaml:"strict_spawn"`
	Log         LogDTO       `yaml:"log"`
	Telemetry   TelemetryDTO `yaml:"telemetry"`
}

// LogDTO represents the log section of the configuration.
type LogDTO struct {
	JSON bool `yaml:"json"`
}

// TelemetryDTO represents the telemetry section of the configuration.
type TelemetryDTO struct {
	Endpoint string `yaml:"endpoint"`
	Insecure bool   `yaml:"insecure"`
}

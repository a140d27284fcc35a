// Package config provides the configuration loader for minishell.
package config

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"

	"github.com/SalimYassine/Minishell/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// DefaultFilename is the name of the configuration file in the home directory.
const DefaultFilename = ".minishell.yaml"

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	// Home returns the user's home directory. It defaults to os.UserHomeDir.
	Home func() (string, error)
}

// NewLoader creates a new configuration loader.
func NewLoader() *Loader {
	return &Loader{Home: os.UserHomeDir}
}

// DefaultPath returns the location of the configuration file in the home
// directory, or "" when the home directory is unknown.
func (l *Loader) DefaultPath() string {
	home, err := l.Home()
	if err != nil || home == "" {
		return ""
	}
	return filepath.Join(home, DefaultFilename)
}

// Load reads the configuration. With an empty path the default location is used
// and a missing file yields the defaults; an explicit path must exist.
func (l *Loader) Load(path string) (*domain.Settings, error) {
	explicit := path != ""
	if !explicit {
		path = l.DefaultPath()
		if path == "" {
			return domain.DefaultSettings(), nil
		}
	}

	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return domain.DefaultSettings(), nil
		}
		return nil, zerr.With(zerr.Wrap(domain.ErrConfigReadFailed, path), "reason", reason(err))
	}

	return Parse(data, path)
}

// Parse decodes a configuration document. Unknown keys are rejected.
func Parse(data []byte, path string) (*domain.Settings, error) {
	var file Shellfile

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return nil, zerr.With(zerr.Wrap(domain.ErrConfigParseFailed, path), "reason", err.Error())
	}

	settings := domain.DefaultSettings()
	if file.Prompt != nil {
		settings.Prompt = *file.Prompt
	}
	settings.StrictSpawn = file.StrictSpawn
	settings.LogJSON = file.Log.JSON
	settings.TelemetryEndpoint = file.Telemetry.Endpoint
	settings.TelemetryInsecure = file.Telemetry.Insecure

	return settings, nil
}

func reason(err error) string {
	var pathErr *os.PathError
	if errors.As(err, &pathErr) {
		return pathErr.Err.Error()
	}
	return err.Error()
}

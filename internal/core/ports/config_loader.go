package ports

import "github.com/SalimYassine/Minishell/internal/core/domain"

// ConfigLoader defines the interface for loading the shell configuration.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the configuration file at path. An empty path selects the default
	// location, where a missing file yields the defaults.
	Load(path string) (*domain.Settings, error)
}

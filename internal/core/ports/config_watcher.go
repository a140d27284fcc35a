package ports

import (
	"context"

	"github.com/SalimYassine/Minishell/internal/core/domain"
)

// ConfigWatcher reports changes of the configuration file.
//
//go:generate mockgen -source=config_watcher.go -destination=mocks/mock_config_watcher.go -package=mocks
type ConfigWatcher interface {
	// Watch calls onChange with the reloaded settings each time the file at path
	// is written, until ctx is done. An empty path selects the default location.
	// Unreadable or invalid contents are passed as an error instead.
	Watch(ctx context.Context, path string, onChange func(*domain.Settings, error)) error
}

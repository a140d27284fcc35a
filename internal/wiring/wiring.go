// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "github.com/SalimYassine/Minishell/internal/adapters/config"
	_ "github.com/SalimYassine/Minishell/internal/adapters/logger"
	_ "github.com/SalimYassine/Minishell/internal/adapters/parser"
	_ "github.com/SalimYassine/Minishell/internal/adapters/process"
	_ "github.com/SalimYassine/Minishell/internal/adapters/signals"
	_ "github.com/SalimYassine/Minishell/internal/adapters/telemetry"
	// Register app and engine nodes.
	_ "github.com/SalimYassine/Minishell/internal/app"
	_ "github.com/SalimYassine/Minishell/internal/engine/jobs"
)

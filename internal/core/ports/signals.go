package ports

import "context"

// SignalManager installs the shell's signal dispositions.
//
//go:generate mockgen -source=signals.go -destination=mocks/mock_signals.go -package=mocks
type SignalManager interface {
	// Install sets up the interactive and child handlers. They run until ctx
	// is done or Stop is called.
	Install(ctx context.Context, onChild func()) error
	// Stop restores the default dispositions.
	Stop()
}

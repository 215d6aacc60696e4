package server

import "context"

// Server defines the lifecycle contract for transport servers managed by
// this package.
type Server interface {
	// RunServer serves requests until ctx is cancelled or the listener
	// fails. Cancellation is not an error.
	RunServer(ctx context.Context) error

	// Shutdown gracefully stops the server.
	Shutdown()
}

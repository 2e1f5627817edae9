package server

// Server defines the lifecycle contract for transport servers managed by
// this package.
type Server interface {
	// RunServer starts serving and blocks until a stop signal arrives or the
	// listener fails.
	RunServer()

	// Shutdown gracefully stops the server.
	Shutdown()
}

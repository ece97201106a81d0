package server

// Server defines the lifecycle of the login backend server.
//
// RunServer blocks until a stop signal arrives and the server has shut down.
type Server interface {
	RunServer()

	// Shutdown gracefully stops the server.
	Shutdown()
}

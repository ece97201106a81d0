// Package server runs the HTTP server of the development login backend,
// including signal handling and graceful shutdown.
package server

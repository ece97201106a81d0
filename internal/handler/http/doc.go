// Package http implements the HTTP transport of the development login
// backend: route wiring, the login and version handlers, and the tracing,
// access logging and token checking middleware in front of them.
package http

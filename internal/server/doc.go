// Package server runs the browser UI transport.
//
// It owns the HTTP server lifecycle: startup, stop-signal handling and
// graceful shutdown.
package server

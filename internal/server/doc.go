// Package server wires and runs the daemon's transport layer.
//
// It owns the HTTP control server's lifecycle together with the background
// workers: startup, OS signal handling, and graceful shutdown.
package server

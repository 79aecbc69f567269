// Package workers manages the daemon's background workers: long-running
// tasks started alongside the HTTP server and stopped during shutdown.
package workers

import "context"

// Worker is a background task with an explicit lifecycle. Run must not
// block: it launches the worker's goroutines and returns. The goroutines
// exit when ctx is cancelled or Stop is called.
type Worker interface {
	Run(ctx context.Context)
	Stop()
}

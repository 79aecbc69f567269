package workers

import (
	"context"
	"time"

	"github.com/ataverin/go-content-sync/internal/service"
)

// Workers starts its members in registration order and stops them in
// reverse order.
type Workers struct {
	workers []Worker
}

func New(list ...Worker) *Workers {
	return &Workers{workers: list}
}

func (w *Workers) Run(ctx context.Context) {
	for _, worker := range w.workers {
		worker.Run(ctx)
	}
}

func (w *Workers) Stop() {
	for i := len(w.workers) - 1; i >= 0; i-- {
		w.workers[i].Stop()
	}
}

// UpdateWorker adapts the coordinator's periodic update job to the Worker
// lifecycle. A non-positive interval disables the worker entirely.
type UpdateWorker struct {
	job      service.UpdateJob
	interval time.Duration
}

func NewUpdateWorker(job service.UpdateJob, interval time.Duration) *UpdateWorker {
	return &UpdateWorker{job: job, interval: interval}
}

func (w *UpdateWorker) Run(ctx context.Context) {
	if w.interval <= 0 {
		return
	}
	w.job.Start(ctx, w.interval)
}

func (w *UpdateWorker) Stop() {
	if w.interval <= 0 {
		return
	}
	w.job.Stop()
}

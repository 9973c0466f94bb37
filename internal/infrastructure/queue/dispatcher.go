package queue

import (
	"context"
	"hash/fnv"

	"github.com/rs/zerolog"

	"github.com/brijesh-0/job-board-backend/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 256
)

// Dispatcher routes notification jobs to a fixed set of workers using
// consistent hashing on the application id, keeping notifications for one
// application ordered. Enqueueing never blocks the triggering request
// beyond channel capacity, and processing failures are logged only.
type Dispatcher struct {
	workers []chan ports.NotificationJob
	service ports.NotificationService
	log     zerolog.Logger
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, service ports.NotificationService, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers: make([]chan ports.NotificationJob, numWorkers),
		service: service,
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan ports.NotificationJob, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		go d.runWorker(ctx, i, ch)
	}
}

// Enqueue sends a job to the worker responsible for its application.
func (d *Dispatcher) Enqueue(job ports.NotificationJob) {
	d.workers[d.shardIndex(job.ApplicationID)] <- job
}

// shardIndex maps an application id deterministically to a worker index.
func (d *Dispatcher) shardIndex(applicationID string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(applicationID))
	return int(h.Sum32()) % len(d.workers)
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan ports.NotificationJob) {
	for {
		select {
		case <-ctx.Done():
			return
		case job, ok := <-ch:
			if !ok {
				return
			}
			if err := d.service.Process(ctx, job); err != nil {
				d.log.Error().Err(err).
					Str("kind", string(job.Kind)).
					Str("application_id", job.ApplicationID).
					Int("worker_id", id).
					Msg("notification processing failed")
			}
		}
	}
}

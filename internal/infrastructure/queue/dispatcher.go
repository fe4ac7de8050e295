package queue

import (
	"context"
	"errors"
	"hash/fnv"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"github.com/adelphi-health/companion-api/internal/api/metrics"
	"github.com/adelphi-health/companion-api/internal/core/ports"
	"github.com/adelphi-health/companion-api/internal/core/service"
)

const (
	defaultWorkers = 4
	channelBuffer  = 128
)

// Dispatcher routes care pings to a fixed set of workers using consistent
// hashing on the primary user id, so pings for one user are processed in order.
type Dispatcher struct {
	workers   []chan ports.CarePingInput
	processor ports.CarePingProcessor
	log       zerolog.Logger
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, processor ports.CarePingProcessor, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers:   make([]chan ports.CarePingInput, numWorkers),
		processor: processor,
		log:       log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan ports.CarePingInput, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		go d.runWorker(ctx, i, ch)
	}
}

// Enqueue sends a ping to the worker responsible for its primary user.
// The call is non-blocking up to channelBuffer capacity.
func (d *Dispatcher) Enqueue(ping ports.CarePingInput) {
	idx := d.shardIndex(ping.PrimaryUserID)
	d.workers[idx] <- ping
	metrics.CarePingQueueDepth.WithLabelValues(strconv.Itoa(idx)).Set(float64(len(d.workers[idx])))
}

// shardIndex maps a primary user id deterministically to a worker index.
func (d *Dispatcher) shardIndex(primaryUserID string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(primaryUserID))
	return int(h.Sum32()) % len(d.workers)
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan ports.CarePingInput) {
	workerID := strconv.Itoa(id)
	for {
		select {
		case <-ctx.Done():
			return
		case ping, ok := <-ch:
			if !ok {
				return
			}
			start := time.Now()
			err := d.processor.Process(ctx, ping)
			metrics.CarePingDuration.Observe(time.Since(start).Seconds())
			metrics.CarePingQueueDepth.WithLabelValues(workerID).Set(float64(len(ch)))

			switch {
			case err == nil:
				metrics.CarePingsTotal.WithLabelValues("delivered").Inc()
			case errors.Is(err, service.ErrCarePingSkipped):
				metrics.CarePingsTotal.WithLabelValues("skipped").Inc()
			default:
				metrics.CarePingsTotal.WithLabelValues("error").Inc()
				d.log.Error().Err(err).
					Str("primary_user_id", ping.PrimaryUserID).
					Int("worker_id", id).
					Msg("care ping processing failed")
			}
		}
	}
}

package async

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
)

// FileProcessor runs the extraction pipeline for one file.
// *processor.Processor satisfies this.
type FileProcessor interface {
	ProcessFile(ctx context.Context, fileID uuid.UUID) (uuid.UUID, error)
}

// Job is the smallest useful unit. Extend as needed later (portfolio, trace, retry, etc).
type Job struct {
	FileID      uuid.UUID
	Force       bool // enqueue even if deduplicated
	SubmittedAt time.Time
	TraceID     string
}

type Queue interface {
	Enqueue(ctx context.Context, job Job) error
	Shutdown(ctx context.Context)
}

var ErrQueueFull = errors.New("processing queue is full")

type Option func(*ProcessorQueue)

func WithWorkers(n int) Option {
	return func(q *ProcessorQueue) {
		if n > 0 {
			q.workers = n
		}
	}
}

func WithQueueSize(n int) Option {
	return func(q *ProcessorQueue) {
		if n > 0 {
			q.size = n
		}
	}
}

func WithProcessTimeout(d time.Duration) Option {
	return func(q *ProcessorQueue) {
		if d > 0 {
			q.timeout = d
		}
	}
}

// ProcessorQueue fans jobs out to a fixed worker pool, each worker running
// the two-stage extraction pipeline.
type ProcessorQueue struct {
	proc    FileProcessor
	logger  *slog.Logger
	workers int
	size    int
	timeout time.Duration

	jobs chan Job
	wg   sync.WaitGroup

	mu     sync.Mutex
	closed bool
}

func NewProcessorQueue(proc FileProcessor, logger *slog.Logger, opts ...Option) *ProcessorQueue {
	if logger == nil {
		logger = slog.Default()
	}
	q := &ProcessorQueue{
		proc:    proc,
		logger:  logger,
		workers: 4,
		size:    256,
		timeout: 2 * time.Minute,
	}
	for _, opt := range opts {
		opt(q)
	}
	q.jobs = make(chan Job, q.size)

	for i := 0; i < q.workers; i++ {
		q.wg.Add(1)
		go q.worker(i)
	}
	logger.Info("processor queue started", "workers", q.workers, "queue_size", q.size)
	return q
}

func (q *ProcessorQueue) Enqueue(ctx context.Context, job Job) error {
	if job.SubmittedAt.IsZero() {
		job.SubmittedAt = time.Now().UTC()
	}

	// mu is held across the send; Shutdown closes q.jobs under the same
	// lock, so a send can never hit a closed channel. The select never
	// blocks, so holding the lock here is safe.
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed {
		return errors.New("queue is shut down")
	}
	select {
	case q.jobs <- job:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	default:
		q.logger.Warn("queue.full", "file_id", job.FileID)
		return ErrQueueFull
	}
}

// Shutdown stops accepting jobs and waits for in-flight work, or returns
// early when ctx expires.
func (q *ProcessorQueue) Shutdown(ctx context.Context) {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return
	}
	q.closed = true
	close(q.jobs)
	q.mu.Unlock()

	done := make(chan struct{})
	go func() {
		q.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
		q.logger.Info("processor queue drained")
	case <-ctx.Done():
		q.logger.Warn("processor queue shutdown timed out", "error", ctx.Err())
	}
}

func (q *ProcessorQueue) worker(id int) {
	defer q.wg.Done()
	for job := range q.jobs {
		ctx, cancel := context.WithTimeout(context.Background(), q.timeout)
		jobID, err := q.proc.ProcessFile(ctx, job.FileID)
		cancel()
		if err != nil {
			q.logger.Error("queue.process.failed",
				"worker", id, "file_id", job.FileID, "job_id", jobID,
				"wait_ms", time.Since(job.SubmittedAt).Milliseconds(), "err", err)
			continue
		}
		q.logger.Info("queue.process.ok",
			"worker", id, "file_id", job.FileID, "job_id", jobID,
			"wait_ms", time.Since(job.SubmittedAt).Milliseconds())
	}
}

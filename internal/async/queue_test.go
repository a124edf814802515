package async

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
)

type countingProcessor struct {
	mu    sync.Mutex
	seen  []uuid.UUID
	err   error
	block chan struct{} // when set, ProcessFile waits on it
}

func (c *countingProcessor) ProcessFile(_ context.Context, fileID uuid.UUID) (uuid.UUID, error) {
	if c.block != nil {
		<-c.block
	}
	c.mu.Lock()
	c.seen = append(c.seen, fileID)
	c.mu.Unlock()
	return uuid.New(), c.err
}

func (c *countingProcessor) count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.seen)
}

func TestQueueProcessesJobs(t *testing.T) {
	proc := &countingProcessor{}
	q := NewProcessorQueue(proc, nil, WithWorkers(2), WithQueueSize(16))

	for i := 0; i < 5; i++ {
		if err := q.Enqueue(context.Background(), Job{FileID: uuid.New()}); err != nil {
			t.Fatalf("Enqueue: %v", err)
		}
	}
	q.Shutdown(context.Background())

	if got := proc.count(); got != 5 {
		t.Errorf("processed = %d, want 5", got)
	}
}

func TestQueueKeepsGoingAfterFailures(t *testing.T) {
	proc := &countingProcessor{err: errors.New("boom")}
	q := NewProcessorQueue(proc, nil, WithWorkers(1))

	for i := 0; i < 3; i++ {
		if err := q.Enqueue(context.Background(), Job{FileID: uuid.New()}); err != nil {
			t.Fatalf("Enqueue: %v", err)
		}
	}
	q.Shutdown(context.Background())

	if got := proc.count(); got != 3 {
		t.Errorf("processed = %d, want 3 despite errors", got)
	}
}

func TestQueueFull(t *testing.T) {
	block := make(chan struct{})
	proc := &countingProcessor{block: block}
	q := NewProcessorQueue(proc, nil, WithWorkers(1), WithQueueSize(1))

	// first job occupies the worker, second fills the buffer
	_ = q.Enqueue(context.Background(), Job{FileID: uuid.New()})
	var err error
	for i := 0; i < 10; i++ {
		err = q.Enqueue(context.Background(), Job{FileID: uuid.New()})
		if errors.Is(err, ErrQueueFull) {
			break
		}
	}
	if !errors.Is(err, ErrQueueFull) {
		t.Fatalf("err = %v, want ErrQueueFull", err)
	}

	close(block)
	q.Shutdown(context.Background())
}

func TestEnqueueAfterShutdown(t *testing.T) {
	proc := &countingProcessor{}
	q := NewProcessorQueue(proc, nil, WithWorkers(1))
	q.Shutdown(context.Background())

	if err := q.Enqueue(context.Background(), Job{FileID: uuid.New()}); err == nil {
		t.Fatal("want error after shutdown")
	}
}

func TestEnqueueRacesShutdown(t *testing.T) {
	for i := 0; i < 50; i++ {
		proc := &countingProcessor{}
		q := NewProcessorQueue(proc, nil, WithWorkers(2), WithQueueSize(8))

		start := make(chan struct{})
		var wg sync.WaitGroup
		for g := 0; g < 4; g++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				<-start
				for j := 0; j < 25; j++ {
					// must return an error or succeed, never panic
					_ = q.Enqueue(context.Background(), Job{FileID: uuid.New()})
				}
			}()
		}
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			q.Shutdown(context.Background())
		}()
		close(start)
		wg.Wait()
	}
}

func TestShutdownTimeout(t *testing.T) {
	block := make(chan struct{})
	proc := &countingProcessor{block: block}
	q := NewProcessorQueue(proc, nil, WithWorkers(1))
	_ = q.Enqueue(context.Background(), Job{FileID: uuid.New()})

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	q.Shutdown(ctx) // should return despite the stuck worker
	close(block)
}

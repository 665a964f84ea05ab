package remote

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"confluence-journal/internal/models"
)

// captureSink records every upserted trade, optionally blocking until
// released.
type captureSink struct {
	mu      sync.Mutex
	trades  []models.Trade
	release chan struct{}
}

func (s *captureSink) Upsert(ctx context.Context, trade models.Trade) error {
	if s.release != nil {
		<-s.release
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.trades = append(s.trades, trade)
	return nil
}

func (s *captureSink) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.trades)
}

func TestOutboxDeliversQueuedTrades(t *testing.T) {
	sink := &captureSink{}
	ob := NewOutbox(sink, zerolog.Nop())

	ob.Enqueue(models.Trade{ID: "a"})
	ob.Enqueue(models.Trade{ID: "b"})
	ob.Close()

	if got := sink.count(); got != 2 {
		t.Fatalf("delivered %d trades, want 2", got)
	}
	if sink.trades[0].ID != "a" || sink.trades[1].ID != "b" {
		t.Errorf("delivery order = %v", sink.trades)
	}
}

func TestOutboxEnqueueNeverBlocks(t *testing.T) {
	sink := &captureSink{release: make(chan struct{})}
	ob := NewOutbox(sink, zerolog.Nop())

	// The worker is stuck on the first trade, so the queue fills up.
	// Overfilling it must drop, not block.
	done := make(chan struct{})
	go func() {
		for i := 0; i < DefaultQueueSize+10; i++ {
			ob.Enqueue(models.Trade{ID: "x"})
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Enqueue blocked on a full queue")
	}

	close(sink.release)
	ob.Close()
}

func TestOutboxEnqueueAfterCloseIsDropped(t *testing.T) {
	sink := &captureSink{}
	ob := NewOutbox(sink, zerolog.Nop())
	ob.Close()

	// Must not panic or deliver.
	ob.Enqueue(models.Trade{ID: "late"})

	if got := sink.count(); got != 0 {
		t.Errorf("delivered %d trades after close, want 0", got)
	}
}

func TestOutboxCloseIsIdempotent(t *testing.T) {
	ob := NewOutbox(&captureSink{}, zerolog.Nop())
	ob.Close()
	ob.Close()
}

func TestOutboxNilSinkDiscards(t *testing.T) {
	ob := NewOutbox(nil, zerolog.Nop())
	ob.Enqueue(models.Trade{ID: "a"})
	ob.Close()
}

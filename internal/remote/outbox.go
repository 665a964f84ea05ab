package remote

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"confluence-journal/internal/models"
)

// DefaultQueueSize is sized for a burst of manual saves, not a data feed.
const DefaultQueueSize = 64

// Outbox decouples store mutations from the network. Enqueue never blocks:
// a full queue drops the record with a warning, matching the fire-and-forget
// contract. One worker goroutine drains the queue; each upsert outcome is
// logged and then forgotten. No retry, no cancellation of in-flight sends.
type Outbox struct {
	sink    Sink
	queue   chan models.Trade
	logger  zerolog.Logger
	timeout time.Duration

	mu        sync.Mutex
	closed    bool
	closeOnce sync.Once
	done      chan struct{}
}

// NewOutbox creates an outbox draining into sink and starts its worker.
// A nil sink disables mirroring entirely.
func NewOutbox(sink Sink, logger zerolog.Logger) *Outbox {
	if sink == nil {
		sink = NopSink{}
	}
	ob := &Outbox{
		sink:    sink,
		queue:   make(chan models.Trade, DefaultQueueSize),
		logger:  logger,
		timeout: 10 * time.Second,
		done:    make(chan struct{}),
	}
	go ob.worker()
	return ob
}

// Enqueue submits a trade for mirroring. Never blocks the caller; records
// enqueued after Close are dropped.
func (ob *Outbox) Enqueue(trade models.Trade) {
	ob.mu.Lock()
	defer ob.mu.Unlock()
	if ob.closed {
		return
	}

	select {
	case ob.queue <- trade:
	default:
		ob.logger.Warn().Str("trade_id", trade.ID).Msg("Sync queue full, dropping record")
	}
}

// Close stops accepting records and waits for the worker to drain what was
// already queued.
func (ob *Outbox) Close() {
	ob.closeOnce.Do(func() {
		ob.mu.Lock()
		ob.closed = true
		ob.mu.Unlock()
		close(ob.queue)
	})
	<-ob.done
}

func (ob *Outbox) worker() {
	defer close(ob.done)

	for trade := range ob.queue {
		ctx, cancel := context.WithTimeout(context.Background(), ob.timeout)
		err := ob.sink.Upsert(ctx, trade)
		cancel()

		if err != nil {
			ob.logger.Warn().Err(err).Str("trade_id", trade.ID).Msg("Remote sync failed")
		} else {
			ob.logger.Debug().Str("trade_id", trade.ID).Msg("Trade mirrored")
		}
	}
}

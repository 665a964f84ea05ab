package store

import (
	"encoding/json"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog"

	apperrors "confluence-journal/internal/errors"
	"confluence-journal/internal/models"
)

// StorageKey is the fixed document key for the trade list. The suffix is a
// schema generation: bump it when the stored shape changes.
const StorageKey = "journal_trades_v3"

// State is the hydration state of the trade store.
type State int

const (
	// StateUnhydrated is the initial state, before the first load attempt.
	StateUnhydrated State = iota
	// StateHydrated is reached after the first load completes, even when
	// the load yielded an empty set. There is no transition back.
	StateHydrated
)

// Mirror receives every created or updated trade for remote mirroring.
// Implementations must not block; the store never waits on the mirror and
// never inspects its outcome.
type Mirror interface {
	Enqueue(models.Trade)
}

// nopMirror discards everything.
type nopMirror struct{}

func (nopMirror) Enqueue(models.Trade) {}

// TradeStore owns the authoritative, newest-created-first trade list for
// one user session. Every mutation persists the full list back to the
// document store; persistence failures are swallowed so the session keeps
// working from memory. Mutations are rejected before hydration.
//
// The store itself is single-threaded by design: it is driven by one
// command invocation at a time, and the only concurrent activity is the
// mirror goroutine, which only ever receives copies.
type TradeStore struct {
	docs   DocumentStore
	mirror Mirror
	logger zerolog.Logger

	state  State
	trades []models.Trade
}

// NewTradeStore creates an unhydrated trade store. A nil mirror disables
// remote mirroring.
func NewTradeStore(docs DocumentStore, mirror Mirror, logger zerolog.Logger) *TradeStore {
	if mirror == nil {
		mirror = nopMirror{}
	}
	return &TradeStore{
		docs:   docs,
		mirror: mirror,
		logger: logger,
	}
}

// State returns the hydration state.
func (s *TradeStore) State() State {
	return s.state
}

// Hydrate loads the trade list from the document store. Absent or corrupt
// documents hydrate to an empty list: losing local history is preferable to
// refusing to start. Hydrate is idempotent; only the first call loads.
func (s *TradeStore) Hydrate() {
	if s.state == StateHydrated {
		return
	}

	doc, err := s.docs.Load(StorageKey)
	if err != nil {
		s.logger.Warn().Err(err).Msg("Loading stored trades failed, starting empty")
	} else if len(doc) > 0 {
		var trades []models.Trade
		if err := json.Unmarshal(doc, &trades); err != nil {
			s.logger.Warn().Err(err).Msg("Stored trades corrupt, starting empty")
		} else {
			s.trades = trades
		}
	}

	s.state = StateHydrated
	s.logger.Debug().Int("trades", len(s.trades)).Msg("Trade store hydrated")
}

// Trades returns a copy of the trade list, newest created first.
func (s *TradeStore) Trades() []models.Trade {
	return append([]models.Trade(nil), s.trades...)
}

// Len returns the number of trades.
func (s *TradeStore) Len() int {
	return len(s.trades)
}

// Get returns the trade with the given id.
func (s *TradeStore) Get(id string) (models.Trade, bool) {
	for _, t := range s.trades {
		if t.ID == id {
			return t, true
		}
	}
	return models.Trade{}, false
}

// Create records a new trade from the draft and the score snapshot taken at
// save time. The id is a ULID: unique even for trades created within the
// same millisecond, and still sortable by creation time.
func (s *TradeStore) Create(draft models.Draft, score int, level string, activeConfluences []string) (models.Trade, error) {
	if s.state != StateHydrated {
		return models.Trade{}, apperrors.ErrNotHydrated
	}
	if err := draft.Validate(); err != nil {
		return models.Trade{}, err
	}

	now := time.Now()
	trade := models.Trade{
		ID:                ulid.Make().String(),
		Timestamp:         now.UnixMilli(),
		Date:              draft.Date,
		Pair:              draft.Pair,
		Direction:         draft.Direction,
		Session:           draft.Session,
		Notes:             draft.Notes,
		Risk:              draft.Risk,
		PnL:               draft.PnL,
		Result:            draft.Result,
		BeforeImg:         draft.BeforeImg,
		AfterImg:          draft.AfterImg,
		Score:             score,
		Level:             level,
		ActiveConfluences: append([]string(nil), activeConfluences...),
	}
	if trade.Date == "" {
		trade.Date = now.Format(time.RFC3339)
	}

	s.trades = append([]models.Trade{trade}, s.trades...)
	s.persist()
	s.mirror.Enqueue(trade)

	return trade, nil
}

// Delete removes the trade with the given id. Unknown ids are a silent
// no-op, not an error.
func (s *TradeStore) Delete(id string) error {
	if s.state != StateHydrated {
		return apperrors.ErrNotHydrated
	}

	for i, t := range s.trades {
		if t.ID == id {
			s.trades = append(s.trades[:i], s.trades[i+1:]...)
			s.persist()
			return nil
		}
	}
	return nil
}

// Update merges the patch into the trade with the given id and mirrors the
// updated record. Returns the updated trade and whether the id was found;
// unknown ids are a silent no-op.
func (s *TradeStore) Update(id string, patch models.Patch) (models.Trade, bool, error) {
	if s.state != StateHydrated {
		return models.Trade{}, false, apperrors.ErrNotHydrated
	}

	for i, t := range s.trades {
		if t.ID != id {
			continue
		}
		updated := patch.Apply(t)
		s.trades[i] = updated
		s.persist()
		s.mirror.Enqueue(updated)
		return updated, true, nil
	}
	return models.Trade{}, false, nil
}

// Clear empties the trade list. Local-only: the remote sink is deliberately
// not told, so a mirror wipe has to happen on the remote side. Idempotent.
func (s *TradeStore) Clear() error {
	if s.state != StateHydrated {
		return apperrors.ErrNotHydrated
	}

	s.trades = nil
	s.persist()
	return nil
}

// persist writes the full trade list back to the document store. Failures
// are swallowed: the in-memory list stays authoritative for this session,
// it just will not survive a restart.
func (s *TradeStore) persist() {
	trades := s.trades
	if trades == nil {
		// A nil slice marshals to JSON null; the stored document is
		// always an array.
		trades = []models.Trade{}
	}
	doc, err := json.Marshal(trades)
	if err != nil {
		s.logger.Warn().Err(err).Msg("Serializing trades failed, skipping persist")
		return
	}
	if err := s.docs.Save(StorageKey, doc); err != nil {
		s.logger.Warn().Err(err).Msg("Persisting trades failed, keeping in-memory state")
	}
}

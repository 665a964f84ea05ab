// Package models defines the core domain types for the trading journal.
package models

import (
	"errors"
	"time"
)

// Validation sentinels for enum fields.
var (
	ErrInvalidDirection = errors.New("invalid direction")
	ErrInvalidResult    = errors.New("invalid result")
)

// Result represents the outcome of a recorded trade.
type Result string

const (
	ResultGain        Result = "Gain"
	ResultLoss        Result = "Loss"
	ResultBreakEven   Result = "Break-even"
	ResultNotExecuted Result = "Not executed"
	ResultNone        Result = ""
)

// IsValid reports whether r is one of the known result values.
func (r Result) IsValid() bool {
	switch r {
	case ResultGain, ResultLoss, ResultBreakEven, ResultNotExecuted, ResultNone:
		return true
	}
	return false
}

// Direction represents the side of a trade.
type Direction string

const (
	DirectionLong  Direction = "LONG"
	DirectionShort Direction = "SHORT"
	DirectionNone  Direction = ""
)

// IsValid reports whether d is one of the known directions.
func (d Direction) IsValid() bool {
	switch d {
	case DirectionLong, DirectionShort, DirectionNone:
		return true
	}
	return false
}

// Trade is one persisted journal entry. Score, Level and ActiveConfluences
// are snapshots taken at save time; they are never recomputed from the
// catalog afterwards, so later catalog edits do not rewrite history.
// JSON tags match the stored document format.
type Trade struct {
	ID                string    `json:"id"`
	Timestamp         int64     `json:"timestamp"` // creation instant, epoch milliseconds
	Date              string    `json:"date"`      // user-chosen trade date, ISO instant
	Pair              string    `json:"pair"`
	Direction         Direction `json:"direction"`
	Session           string    `json:"session"`
	Notes             string    `json:"notes"`
	Risk              string    `json:"risk"`
	PnL               string    `json:"pnl"` // free text, e.g. "+200", "-0.8R"
	Result            Result    `json:"result"`
	BeforeImg         string    `json:"beforeImg"`
	AfterImg          string    `json:"afterImg"`
	Score             int       `json:"score"`
	Level             string    `json:"level"`
	ActiveConfluences []string  `json:"activeConfluences"`
}

// CreatedAt returns the creation instant as a time.Time.
func (t Trade) CreatedAt() time.Time {
	return time.UnixMilli(t.Timestamp)
}

// DateOrCreated returns the user-chosen trade date, falling back to the
// creation instant when the date field is empty or unparsable. Full RFC3339
// instants and bare dates are both accepted; a bare date is read in local
// time so calendar bucketing lands on the day the user meant.
func (t Trade) DateOrCreated() time.Time {
	if t.Date != "" {
		if d, err := time.Parse(time.RFC3339, t.Date); err == nil {
			return d
		}
		if d, err := time.ParseInLocation("2006-01-02", t.Date, time.Local); err == nil {
			return d
		}
	}
	return t.CreatedAt()
}

// Draft holds the user-entered fields of a trade before it is recorded.
// ID, Timestamp and the score snapshot are filled in by the store.
type Draft struct {
	Date      string
	Pair      string
	Direction Direction
	Session   string
	Notes     string
	Risk      string
	PnL       string
	Result    Result
	BeforeImg string
	AfterImg  string
}

// Validate checks the draft's enum fields.
func (d Draft) Validate() error {
	if !d.Direction.IsValid() {
		return ErrInvalidDirection
	}
	if !d.Result.IsValid() {
		return ErrInvalidResult
	}
	return nil
}

// Patch holds optional replacement values for an existing trade. Nil fields
// are left untouched by an update.
type Patch struct {
	Date              *string
	Pair              *string
	Direction         *Direction
	Session           *string
	Notes             *string
	Risk              *string
	PnL               *string
	Result            *Result
	BeforeImg         *string
	AfterImg          *string
	Score             *int
	Level             *string
	ActiveConfluences []string
}

// Apply merges the patch into a copy of the trade and returns it.
func (p Patch) Apply(t Trade) Trade {
	if p.Date != nil {
		t.Date = *p.Date
	}
	if p.Pair != nil {
		t.Pair = *p.Pair
	}
	if p.Direction != nil {
		t.Direction = *p.Direction
	}
	if p.Session != nil {
		t.Session = *p.Session
	}
	if p.Notes != nil {
		t.Notes = *p.Notes
	}
	if p.Risk != nil {
		t.Risk = *p.Risk
	}
	if p.PnL != nil {
		t.PnL = *p.PnL
	}
	if p.Result != nil {
		t.Result = *p.Result
	}
	if p.BeforeImg != nil {
		t.BeforeImg = *p.BeforeImg
	}
	if p.AfterImg != nil {
		t.AfterImg = *p.AfterImg
	}
	if p.Score != nil {
		t.Score = *p.Score
	}
	if p.Level != nil {
		t.Level = *p.Level
	}
	if p.ActiveConfluences != nil {
		t.ActiveConfluences = append([]string(nil), p.ActiveConfluences...)
	}
	return t
}

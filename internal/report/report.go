// Package report derives read-only statistics from the trade list. Every
// aggregate is recomputed on request from the current trades; nothing is
// cached, which is fine at journal scale.
package report

import (
	"math"
	"sort"
	"strconv"
	"strings"

	"confluence-journal/internal/models"
)

// RecentLimit is how many trades the dashboard's recent list shows.
const RecentLimit = 8

// MissingPairKey buckets trades recorded without a pair.
const MissingPairKey = "N/A"

// NoPairMarker is shown for best/worst pair when there are no trades.
const NoPairMarker = "-"

// ParsePnL extracts a numeric value from the free-text pnl field. All
// characters except digits, '-', '.' and ',' are stripped, ',' becomes '.',
// and anything that still fails to parse counts as zero. "+200" is 200,
// "-0,8R" is -0.8, "abc" and "" are 0.
func ParsePnL(pnl string) float64 {
	if pnl == "" {
		return 0
	}

	var b strings.Builder
	for _, r := range pnl {
		switch {
		case r >= '0' && r <= '9', r == '-', r == '.':
			b.WriteRune(r)
		case r == ',':
			b.WriteRune('.')
		}
	}

	v, err := strconv.ParseFloat(b.String(), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// PairTotal is the summed P&L for one pair.
type PairTotal struct {
	Pair  string
	Total float64
}

// Stats is the dashboard aggregate over the full trade list.
type Stats struct {
	TotalTrades int
	Wins        int
	Losses      int
	BreakEvens  int
	NotExecuted int
	WinRate     int // percent, rounded to nearest integer; 0 when empty
	TotalPnL    float64
	PairTotals  []PairTotal // first-encountered pair order
	BestPair    string
	WorstPair   string
}

// Compute builds Stats from the trade list.
func Compute(trades []models.Trade) Stats {
	stats := Stats{
		TotalTrades: len(trades),
		BestPair:    NoPairMarker,
		WorstPair:   NoPairMarker,
	}

	totals := make(map[string]float64)
	var order []string

	for _, t := range trades {
		switch t.Result {
		case models.ResultGain:
			stats.Wins++
		case models.ResultLoss:
			stats.Losses++
		case models.ResultBreakEven:
			stats.BreakEvens++
		case models.ResultNotExecuted:
			stats.NotExecuted++
		}

		v := ParsePnL(t.PnL)
		stats.TotalPnL += v

		key := t.Pair
		if key == "" {
			key = MissingPairKey
		}
		if _, seen := totals[key]; !seen {
			order = append(order, key)
		}
		totals[key] += v
	}

	if stats.TotalTrades > 0 {
		stats.WinRate = int(math.Round(float64(stats.Wins) / float64(stats.TotalTrades) * 100))
	}

	// Ties go to the first-encountered pair.
	bestVal := math.Inf(-1)
	worstVal := math.Inf(1)
	for _, pair := range order {
		v := totals[pair]
		stats.PairTotals = append(stats.PairTotals, PairTotal{Pair: pair, Total: v})
		if v > bestVal {
			bestVal = v
			stats.BestPair = pair
		}
		if v < worstVal {
			worstVal = v
			stats.WorstPair = pair
		}
	}

	return stats
}

// Recent returns the n most recently created trades, newest first.
func Recent(trades []models.Trade, n int) []models.Trade {
	sorted := append([]models.Trade(nil), trades...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Timestamp > sorted[j].Timestamp
	})
	if n > 0 && len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}

// Filter is the history view's result filter.
type Filter string

const (
	FilterAll         Filter = "ALL"
	FilterWins        Filter = "WIN"
	FilterLosses      Filter = "LOSS"
	FilterBreakEven   Filter = "BE"
	FilterNotExecuted Filter = "NE"
)

// ParseFilter maps a user-supplied filter name to a Filter, defaulting to
// FilterAll.
func ParseFilter(s string) Filter {
	switch Filter(strings.ToUpper(s)) {
	case FilterWins:
		return FilterWins
	case FilterLosses:
		return FilterLosses
	case FilterBreakEven:
		return FilterBreakEven
	case FilterNotExecuted:
		return FilterNotExecuted
	default:
		return FilterAll
	}
}

// Apply returns the trades matching the filter, sorted newest first.
func (f Filter) Apply(trades []models.Trade) []models.Trade {
	sorted := Recent(trades, 0)
	if f == FilterAll || f == "" {
		return sorted
	}

	var want models.Result
	switch f {
	case FilterWins:
		want = models.ResultGain
	case FilterLosses:
		want = models.ResultLoss
	case FilterBreakEven:
		want = models.ResultBreakEven
	case FilterNotExecuted:
		want = models.ResultNotExecuted
	}

	out := sorted[:0:0]
	for _, t := range sorted {
		if t.Result == want {
			out = append(out, t)
		}
	}
	return out
}

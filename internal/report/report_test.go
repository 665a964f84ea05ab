package report

import (
	"math"
	"testing"

	"confluence-journal/internal/models"
)

func TestParsePnL(t *testing.T) {
	cases := []struct {
		in   string
		want float64
	}{
		{"", 0},
		{"+200", 200},
		{"-100", -100},
		{"200", 200},
		{"-0,8R", -0.8},
		{"1.5R", 1.5},
		{"$250", 250},
		{"abc", 0},
		{"--5", 0},
		{"break even", 0},
	}
	for _, tc := range cases {
		if got := ParsePnL(tc.in); got != tc.want {
			t.Errorf("ParsePnL(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestComputeEmpty(t *testing.T) {
	stats := Compute(nil)

	if stats.TotalTrades != 0 || stats.WinRate != 0 || stats.TotalPnL != 0 {
		t.Errorf("empty stats = %+v", stats)
	}
	if stats.BestPair != NoPairMarker || stats.WorstPair != NoPairMarker {
		t.Errorf("best/worst = %q/%q, want %q", stats.BestPair, stats.WorstPair, NoPairMarker)
	}
}

func TestComputeScenario(t *testing.T) {
	trades := []models.Trade{
		{Pair: "XAUUSD", PnL: "+100", Result: models.ResultGain},
		{Pair: "XAUUSD", PnL: "-40", Result: models.ResultLoss},
		{Pair: "EURUSD", PnL: "+30", Result: models.ResultGain},
		{Pair: "GBPUSD", PnL: "-60", Result: models.ResultLoss},
		{Pair: "", PnL: "", Result: models.ResultNotExecuted},
	}

	stats := Compute(trades)

	if stats.TotalTrades != 5 {
		t.Errorf("TotalTrades = %d", stats.TotalTrades)
	}
	if stats.Wins != 2 || stats.Losses != 2 || stats.NotExecuted != 1 {
		t.Errorf("counts = %d/%d/%d", stats.Wins, stats.Losses, stats.NotExecuted)
	}
	if stats.WinRate != 40 {
		t.Errorf("WinRate = %d, want 40", stats.WinRate)
	}
	if stats.TotalPnL != 30 {
		t.Errorf("TotalPnL = %v, want 30", stats.TotalPnL)
	}
	if stats.BestPair != "XAUUSD" {
		t.Errorf("BestPair = %q, want XAUUSD", stats.BestPair)
	}
	if stats.WorstPair != "GBPUSD" {
		t.Errorf("WorstPair = %q, want GBPUSD", stats.WorstPair)
	}

	// Pair totals in first-encountered order, unnamed pair bucketed.
	wantOrder := []string{"XAUUSD", "EURUSD", "GBPUSD", MissingPairKey}
	if len(stats.PairTotals) != len(wantOrder) {
		t.Fatalf("PairTotals = %+v", stats.PairTotals)
	}
	for i, pt := range stats.PairTotals {
		if pt.Pair != wantOrder[i] {
			t.Errorf("PairTotals[%d] = %q, want %q", i, pt.Pair, wantOrder[i])
		}
	}
	if stats.PairTotals[0].Total != 60 {
		t.Errorf("XAUUSD total = %v, want 60", stats.PairTotals[0].Total)
	}
}

func TestComputeWinRateRounds(t *testing.T) {
	trades := []models.Trade{
		{Result: models.ResultGain},
		{Result: models.ResultGain},
		{Result: models.ResultLoss},
	}
	stats := Compute(trades)
	if want := int(math.Round(200.0 / 3.0)); stats.WinRate != want {
		t.Errorf("WinRate = %d, want %d", stats.WinRate, want)
	}
}

func TestComputeBestPairTieGoesToFirst(t *testing.T) {
	trades := []models.Trade{
		{Pair: "EURUSD", PnL: "+50", Result: models.ResultGain},
		{Pair: "GBPUSD", PnL: "+50", Result: models.ResultGain},
	}
	stats := Compute(trades)
	if stats.BestPair != "EURUSD" {
		t.Errorf("BestPair = %q, want first-encountered EURUSD", stats.BestPair)
	}
}

func TestRecentNewestFirst(t *testing.T) {
	trades := []models.Trade{
		{ID: "old", Timestamp: 100},
		{ID: "new", Timestamp: 300},
		{ID: "mid", Timestamp: 200},
	}

	recent := Recent(trades, 2)

	if len(recent) != 2 {
		t.Fatalf("len = %d, want 2", len(recent))
	}
	if recent[0].ID != "new" || recent[1].ID != "mid" {
		t.Errorf("recent = [%s %s]", recent[0].ID, recent[1].ID)
	}

	// Input order untouched.
	if trades[0].ID != "old" {
		t.Error("Recent mutated its input")
	}
}

func TestParseFilter(t *testing.T) {
	cases := map[string]Filter{
		"all":   FilterAll,
		"WIN":   FilterWins,
		"win":   FilterWins,
		"loss":  FilterLosses,
		"be":    FilterBreakEven,
		"ne":    FilterNotExecuted,
		"bogus": FilterAll,
		"":      FilterAll,
	}
	for in, want := range cases {
		if got := ParseFilter(in); got != want {
			t.Errorf("ParseFilter(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestFilterApply(t *testing.T) {
	trades := []models.Trade{
		{ID: "w", Timestamp: 1, Result: models.ResultGain},
		{ID: "l", Timestamp: 2, Result: models.ResultLoss},
		{ID: "n", Timestamp: 3, Result: models.ResultNotExecuted},
	}

	wins := FilterWins.Apply(trades)
	if len(wins) != 1 || wins[0].ID != "w" {
		t.Errorf("wins = %+v", wins)
	}

	all := FilterAll.Apply(trades)
	if len(all) != 3 {
		t.Errorf("all = %d trades, want 3", len(all))
	}
	if all[0].ID != "n" {
		t.Errorf("all[0] = %s, want newest first", all[0].ID)
	}
}

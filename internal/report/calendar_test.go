package report

import (
	"testing"
	"time"

	"confluence-journal/internal/models"
)

func TestBuildCalendarShape(t *testing.T) {
	// March 2024 has 31 days and starts on a Friday.
	cal := BuildCalendar(nil, time.March, 2024)

	if cal.Month != time.March || cal.Year != 2024 {
		t.Errorf("calendar for %v %d", cal.Month, cal.Year)
	}
	if len(cal.Days) != 31 {
		t.Errorf("days = %d, want 31", len(cal.Days))
	}
	if cal.LeadingBlanks != 5 {
		t.Errorf("leading blanks = %d, want 5 (Friday)", cal.LeadingBlanks)
	}
	for i, cell := range cal.Days {
		if cell.Day != i+1 {
			t.Fatalf("Days[%d].Day = %d", i, cell.Day)
		}
		if cell.PnL != nil {
			t.Errorf("day %d has P&L without trades", cell.Day)
		}
	}
}

func TestBuildCalendarBucketsByDay(t *testing.T) {
	day10 := time.Date(2024, time.March, 10, 9, 0, 0, 0, time.Local)
	trades := []models.Trade{
		{Date: day10.Format(time.RFC3339), PnL: "+100"},
		{Date: day10.Add(4 * time.Hour).Format(time.RFC3339), PnL: "-30"},
		{Date: time.Date(2024, time.April, 1, 0, 0, 0, 0, time.Local).Format(time.RFC3339), PnL: "+999"},
	}

	cal := BuildCalendar(trades, time.March, 2024)

	cell := cal.Days[9]
	if cell.PnL == nil {
		t.Fatal("day 10 has no P&L")
	}
	if *cell.PnL != 70 {
		t.Errorf("day 10 P&L = %v, want 70", *cell.PnL)
	}

	// The April trade must not leak into March.
	for _, c := range cal.Days {
		if c.PnL != nil && c.Day != 10 {
			t.Errorf("unexpected P&L on day %d", c.Day)
		}
	}
}

func TestBuildCalendarZeroDayDistinctFromEmpty(t *testing.T) {
	day5 := time.Date(2024, time.March, 5, 12, 0, 0, 0, time.Local)
	trades := []models.Trade{
		{Date: day5.Format(time.RFC3339), PnL: "+50"},
		{Date: day5.Format(time.RFC3339), PnL: "-50"},
	}

	cal := BuildCalendar(trades, time.March, 2024)

	cell := cal.Days[4]
	if cell.PnL == nil {
		t.Fatal("net-zero day reported as no-trade day")
	}
	if *cell.PnL != 0 {
		t.Errorf("day 5 P&L = %v, want 0", *cell.PnL)
	}
}

func TestBuildCalendarHonorsBareDate(t *testing.T) {
	created := time.Date(2024, time.March, 25, 18, 0, 0, 0, time.Local)
	trades := []models.Trade{
		{Date: "2024-03-10", Timestamp: created.UnixMilli(), PnL: "+80"},
	}

	cal := BuildCalendar(trades, time.March, 2024)

	if cal.Days[9].PnL == nil {
		t.Fatal("date-only trade not bucketed on its chosen day")
	}
	if *cal.Days[9].PnL != 80 {
		t.Errorf("day 10 P&L = %v, want 80", *cal.Days[9].PnL)
	}
	if cal.Days[24].PnL != nil {
		t.Error("P&L leaked onto the creation day")
	}
}

func TestBuildCalendarFallsBackToCreationInstant(t *testing.T) {
	created := time.Date(2024, time.March, 20, 15, 0, 0, 0, time.Local)
	trades := []models.Trade{
		{Date: "not a date", Timestamp: created.UnixMilli(), PnL: "+10"},
	}

	cal := BuildCalendar(trades, time.March, 2024)

	if cal.Days[19].PnL == nil {
		t.Fatal("trade with unparsable date not bucketed by creation instant")
	}
}

func TestAddMonths(t *testing.T) {
	cases := []struct {
		month     time.Month
		year      int
		delta     int
		wantMonth time.Month
		wantYear  int
	}{
		{time.January, 2024, -1, time.December, 2023},
		{time.December, 2024, 1, time.January, 2025},
		{time.June, 2024, 0, time.June, 2024},
		{time.March, 2024, -15, time.December, 2022},
		{time.March, 2024, 24, time.March, 2026},
	}
	for _, tc := range cases {
		m, y := AddMonths(tc.month, tc.year, tc.delta)
		if m != tc.wantMonth || y != tc.wantYear {
			t.Errorf("AddMonths(%v %d, %+d) = %v %d, want %v %d",
				tc.month, tc.year, tc.delta, m, y, tc.wantMonth, tc.wantYear)
		}
	}
}

package report

import (
	"time"

	"confluence-journal/internal/models"
)

// DayCell is one day of the calendar grid. PnL is nil when no trade landed
// on that day, which is distinct from a net-zero trading day.
type DayCell struct {
	Day int
	PnL *float64
}

// Calendar is the daily P&L grid for one month. LeadingBlanks is the number
// of empty cells before day 1 when rendering a Sunday-first week grid.
type Calendar struct {
	Month         time.Month
	Year          int
	LeadingBlanks int
	Days          []DayCell
}

// BuildCalendar buckets each trade's P&L by calendar day for the given
// month and year, in local time. The trade's chosen date wins over its
// creation instant.
func BuildCalendar(trades []models.Trade, month time.Month, year int) Calendar {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.Local)
	daysInMonth := first.AddDate(0, 1, -1).Day()

	byDay := make(map[int]float64)
	hasTrade := make(map[int]bool)
	for _, t := range trades {
		d := t.DateOrCreated().In(time.Local)
		if d.Month() != month || d.Year() != year {
			continue
		}
		byDay[d.Day()] += ParsePnL(t.PnL)
		hasTrade[d.Day()] = true
	}

	cal := Calendar{
		Month:         month,
		Year:          year,
		LeadingBlanks: int(first.Weekday()), // Sunday = 0
		Days:          make([]DayCell, daysInMonth),
	}
	for day := 1; day <= daysInMonth; day++ {
		cell := DayCell{Day: day}
		if hasTrade[day] {
			v := byDay[day]
			cell.PnL = &v
		}
		cal.Days[day-1] = cell
	}
	return cal
}

// AddMonths offsets (month, year) by delta months, wrapping across year
// boundaries: January - 1 is December of the previous year.
func AddMonths(month time.Month, year, delta int) (time.Month, int) {
	m := int(month) - 1 + delta
	y := year + m/12
	m %= 12
	if m < 0 {
		m += 12
		y--
	}
	return time.Month(m + 1), y
}

// Package cli provides the command-line interface for the journal.
package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"confluence-journal/internal/report"
)

// addDashboardCommands adds the dashboard command.
func addDashboardCommands(rootCmd *cobra.Command, app *App) {
	rootCmd.AddCommand(newDashboardCmd(app))
}

func newDashboardCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Show journal statistics and the monthly calendar",
		Long: `Show the journal dashboard: win rate, per-pair P&L, best and worst
pair, the most recent trades and a daily P&L calendar for one month.`,
		Example: `  journal dashboard
  journal dashboard --month 3 --year 2025`,
		RunE: func(cmd *cobra.Command, args []string) error {
			output := app.NewOutput(cmd)

			now := time.Now()
			month := time.Month(now.Month())
			year := now.Year()
			if cmd.Flags().Changed("month") {
				m, _ := cmd.Flags().GetInt("month")
				if m < 1 || m > 12 {
					output.Error("Month must be 1-12, got %d", m)
					return fmt.Errorf("invalid month: %d", m)
				}
				month = time.Month(m)
			}
			if cmd.Flags().Changed("year") {
				year, _ = cmd.Flags().GetInt("year")
			}
			if offset, _ := cmd.Flags().GetInt("offset"); offset != 0 {
				month, year = report.AddMonths(month, year, offset)
			}

			trades := app.Store.Trades()
			stats := report.Compute(trades)
			limit := report.RecentLimit
			if app.Config != nil && app.Config.UI.RecentTrades > 0 {
				limit = app.Config.UI.RecentTrades
			}
			recent := report.Recent(trades, limit)
			cal := report.BuildCalendar(trades, month, year)

			if output.IsJSON() {
				return output.JSON(map[string]interface{}{
					"stats":    stats,
					"recent":   recent,
					"calendar": cal,
				})
			}

			output.Bold("Journal Dashboard")
			output.Println()

			output.Bold("Summary")
			output.Printf("  Total Trades: %d\n", stats.TotalTrades)
			output.Printf("  Wins/Losses:  %d/%d (%d%% win rate)\n", stats.Wins, stats.Losses, stats.WinRate)
			if stats.BreakEvens > 0 || stats.NotExecuted > 0 {
				output.Printf("  Break-even:   %d   Not executed: %d\n", stats.BreakEvens, stats.NotExecuted)
			}
			output.Printf("  Total P&L:    %s\n", output.FormatPnL(stats.TotalPnL))
			output.Printf("  Best Pair:    %s\n", stats.BestPair)
			output.Printf("  Worst Pair:   %s\n", stats.WorstPair)
			output.Println()

			if len(stats.PairTotals) > 0 {
				output.Bold("By Pair")
				for _, pt := range stats.PairTotals {
					output.Printf("  %-10s %s\n", pt.Pair, output.FormatPnL(pt.Total))
				}
				output.Println()
			}

			if len(recent) > 0 {
				output.Bold("Recent Trades")
				table := NewTable(output, "Date", "Pair", "Dir", "Score", "P&L", "Result")
				for _, t := range recent {
					table.AddRow(
						output.FormatDate(t.DateOrCreated()),
						t.Pair,
						string(t.Direction),
						fmt.Sprintf("%d", t.Score),
						output.FormatPnL(report.ParsePnL(t.PnL)),
						string(t.Result),
					)
				}
				table.Render()
				output.Println()
			}

			renderCalendar(output, cal)
			return nil
		},
	}

	cmd.Flags().Int("month", 0, "calendar month (1-12, default current)")
	cmd.Flags().Int("year", 0, "calendar year (default current)")
	cmd.Flags().Int("offset", 0, "shift the calendar by N months, e.g. -1 for last month")
	return cmd
}

// renderCalendar prints a Sunday-first month grid with the daily P&L under
// each traded day.
func renderCalendar(output *Output, cal report.Calendar) {
	output.Bold("%s %d", cal.Month, cal.Year)

	const cellWidth = 9
	output.Println(renderWeekHeader(cellWidth))

	cells := make([]report.DayCell, 0, cal.LeadingBlanks+len(cal.Days))
	for i := 0; i < cal.LeadingBlanks; i++ {
		cells = append(cells, report.DayCell{})
	}
	cells = append(cells, cal.Days...)

	for week := 0; week < len(cells); week += 7 {
		end := week + 7
		if end > len(cells) {
			end = len(cells)
		}

		var dayLine, pnlLine string
		for _, cell := range cells[week:end] {
			if cell.Day == 0 {
				dayLine += PadLeft("", cellWidth)
				pnlLine += PadLeft("", cellWidth)
				continue
			}
			dayLine += PadLeft(fmt.Sprintf("%d", cell.Day), cellWidth)
			if cell.PnL != nil {
				pnl := FormatPnL(*cell.PnL)
				pnlLine += output.ColoredString(output.PnLColor(*cell.PnL), PadLeft(pnl, cellWidth))
			} else {
				pnlLine += output.DimText(PadLeft(".", cellWidth))
			}
		}
		output.Println(dayLine)
		output.Println(pnlLine)
	}
}

func renderWeekHeader(cellWidth int) string {
	names := []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}
	var line string
	for _, n := range names {
		line += PadLeft(n, cellWidth)
	}
	return line
}

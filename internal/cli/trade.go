// Package cli provides the command-line interface for the journal.
package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"confluence-journal/internal/models"
	"confluence-journal/internal/report"
	"confluence-journal/internal/scoring"
)

// addTradeCommands adds trade journal commands.
func addTradeCommands(rootCmd *cobra.Command, app *App) {
	cmd := &cobra.Command{
		Use:   "trade",
		Short: "Trade journal management",
		Long:  "Record, review, edit and delete journal trades.",
	}

	cmd.AddCommand(newTradeAddCmd(app))
	cmd.AddCommand(newTradeListCmd(app))
	cmd.AddCommand(newTradeShowCmd(app))
	cmd.AddCommand(newTradeUpdateCmd(app))
	cmd.AddCommand(newTradeDeleteCmd(app))
	cmd.AddCommand(newTradeClearCmd(app))

	rootCmd.AddCommand(cmd)
}

func addTradeFlags(cmd *cobra.Command) {
	cmd.Flags().String("pair", "", "traded pair, e.g. XAUUSD")
	cmd.Flags().String("direction", "", "LONG or SHORT")
	cmd.Flags().String("session", "", "trading session, e.g. London")
	cmd.Flags().String("date", "", "trade date (RFC3339 or free-form)")
	cmd.Flags().String("notes", "", "trade notes")
	cmd.Flags().String("risk", "", "risked amount or percent")
	cmd.Flags().String("pnl", "", "profit or loss, e.g. +200 or -1.5R")
	cmd.Flags().String("result", "", "Gain, Loss, Break-even or Not executed")
	cmd.Flags().String("before", "", "chart screenshot URL before entry")
	cmd.Flags().String("after", "", "chart screenshot URL after exit")
	cmd.Flags().String("set", "", "comma-separated confluence ids or labels")
}

func newTradeAddCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a new trade",
		Long: `Record a trade with its confluence score snapshot.

The score and tier are computed from --set at save time and stored with
the trade; later catalog edits do not rewrite history.`,
		Example: `  journal trade add --pair XAUUSD --direction LONG --set weekly,aoi,bos --pnl +200 --result Gain
  journal trade add --pair EURUSD --direction SHORT --result "Not executed" --yes`,
		RunE: func(cmd *cobra.Command, args []string) error {
			output := app.NewOutput(cmd)

			set, _ := cmd.Flags().GetString("set")
			sel, err := parseSelection(set, app.Catalog)
			if err != nil {
				output.Error("%v", err)
				return err
			}

			result := scoring.Score(sel, app.Catalog)
			level := scoring.Classify(result.Total)
			labels := scoring.ActiveLabels(sel, app.Catalog)

			yes, _ := cmd.Flags().GetBool("yes")
			if result.Total == 0 && !yes {
				output.Warning("No confluences marked: this trade scores 0 (%s).", level.Label)
				output.Println("Re-run with --yes to record it anyway.")
				return fmt.Errorf("refusing to record a zero-score trade without --yes")
			}

			direction, _ := cmd.Flags().GetString("direction")
			resultFlag, _ := cmd.Flags().GetString("result")
			draft := models.Draft{
				Direction: models.Direction(strings.ToUpper(strings.TrimSpace(direction))),
				Result:    models.Result(strings.TrimSpace(resultFlag)),
			}
			draft.Pair, _ = cmd.Flags().GetString("pair")
			draft.Session, _ = cmd.Flags().GetString("session")
			draft.Date, _ = cmd.Flags().GetString("date")
			draft.Notes, _ = cmd.Flags().GetString("notes")
			draft.Risk, _ = cmd.Flags().GetString("risk")
			draft.PnL, _ = cmd.Flags().GetString("pnl")
			draft.BeforeImg, _ = cmd.Flags().GetString("before")
			draft.AfterImg, _ = cmd.Flags().GetString("after")

			trade, err := app.Store.Create(draft, result.Total, level.Label, labels)
			if err != nil {
				output.Error("Recording trade failed: %v", err)
				return err
			}

			if output.IsJSON() {
				return output.JSON(trade)
			}

			output.Success("✓ Trade recorded: %s", trade.ID)
			output.Printf("  Score: %s  %s\n", FormatScore(trade.Score, app.Catalog.TotalWeight()), output.FormatLevel(level))
			return nil
		},
	}

	addTradeFlags(cmd)
	cmd.Flags().Bool("yes", false, "record even with a zero score")
	return cmd
}

func newTradeListCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recorded trades",
		Long:  "List trades newest first, optionally filtered by result.",
		Example: `  journal trade list
  journal trade list --filter win
  journal trade list --filter ne`,
		RunE: func(cmd *cobra.Command, args []string) error {
			output := app.NewOutput(cmd)

			filterFlag, _ := cmd.Flags().GetString("filter")
			filter := report.ParseFilter(filterFlag)
			trades := filter.Apply(app.Store.Trades())

			if output.IsJSON() {
				return output.JSON(trades)
			}

			if len(trades) == 0 {
				output.Info("No trades recorded.")
				return nil
			}

			table := NewTable(output, "ID", "Date", "Pair", "Dir", "Score", "Level", "P&L", "Result", "Notes")
			for _, t := range trades {
				table.AddRow(
					ShortID(t.ID),
					output.FormatDate(t.DateOrCreated()),
					t.Pair,
					string(t.Direction),
					fmt.Sprintf("%d", t.Score),
					t.Level,
					output.FormatPnL(report.ParsePnL(t.PnL)),
					string(t.Result),
					TruncateString(t.Notes, 24),
				)
			}
			table.Render()

			output.Println()
			output.Dim("%d trades (filter: %s)", len(trades), filter)
			return nil
		},
	}

	cmd.Flags().String("filter", "all", "result filter (all, win, loss, be, ne)")
	return cmd
}

func newTradeShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show one trade in full",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			output := app.NewOutput(cmd)

			trade, ok := findTrade(app, args[0])
			if !ok {
				output.Error("No trade with id %q", args[0])
				return fmt.Errorf("trade not found: %s", args[0])
			}

			if output.IsJSON() {
				return output.JSON(trade)
			}

			output.Bold("Trade %s", trade.ID)
			output.Printf("  Date:       %s\n", output.FormatDate(trade.DateOrCreated()))
			output.Printf("  Recorded:   %s\n", output.FormatDateTime(trade.CreatedAt()))
			output.Printf("  Pair:       %s\n", trade.Pair)
			output.Printf("  Direction:  %s\n", trade.Direction)
			if trade.Session != "" {
				output.Printf("  Session:    %s\n", trade.Session)
			}
			output.Printf("  Score:      %s  (%s)\n", FormatScore(trade.Score, app.Catalog.TotalWeight()), trade.Level)
			if trade.Risk != "" {
				output.Printf("  Risk:       %s\n", trade.Risk)
			}
			output.Printf("  P&L:        %s\n", output.FormatPnL(report.ParsePnL(trade.PnL)))
			output.Printf("  Result:     %s\n", trade.Result)
			if trade.BeforeImg != "" {
				output.Printf("  Before:     %s\n", trade.BeforeImg)
			}
			if trade.AfterImg != "" {
				output.Printf("  After:      %s\n", trade.AfterImg)
			}
			if len(trade.ActiveConfluences) > 0 {
				output.Println()
				output.Bold("Confluences")
				for _, label := range trade.ActiveConfluences {
					output.Printf("  %s\n", label)
				}
			}
			if trade.Notes != "" {
				output.Println()
				output.Bold("Notes")
				output.Printf("  %s\n", trade.Notes)
			}
			return nil
		},
	}
}

func newTradeUpdateCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Edit a recorded trade",
		Long: `Edit fields of a recorded trade. Only flags you pass are changed.

Passing --set re-scores the trade against the current catalog and
replaces its score snapshot.`,
		Example: `  journal trade update 01J2X... --pnl +350 --result Gain
  journal trade update 01J2X... --set weekly,aoi`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			output := app.NewOutput(cmd)

			trade, ok := findTrade(app, args[0])
			if !ok {
				output.Error("No trade with id %q", args[0])
				return fmt.Errorf("trade not found: %s", args[0])
			}

			var patch models.Patch
			strFlag := func(name string, dst **string) {
				if cmd.Flags().Changed(name) {
					v, _ := cmd.Flags().GetString(name)
					*dst = &v
				}
			}
			strFlag("pair", &patch.Pair)
			strFlag("session", &patch.Session)
			strFlag("date", &patch.Date)
			strFlag("notes", &patch.Notes)
			strFlag("risk", &patch.Risk)
			strFlag("pnl", &patch.PnL)
			strFlag("before", &patch.BeforeImg)
			strFlag("after", &patch.AfterImg)

			if cmd.Flags().Changed("direction") {
				v, _ := cmd.Flags().GetString("direction")
				d := models.Direction(strings.ToUpper(strings.TrimSpace(v)))
				if !d.IsValid() {
					output.Error("Invalid direction %q", v)
					return models.ErrInvalidDirection
				}
				patch.Direction = &d
			}
			if cmd.Flags().Changed("result") {
				v, _ := cmd.Flags().GetString("result")
				r := models.Result(strings.TrimSpace(v))
				if !r.IsValid() {
					output.Error("Invalid result %q", v)
					return models.ErrInvalidResult
				}
				patch.Result = &r
			}

			if cmd.Flags().Changed("set") {
				set, _ := cmd.Flags().GetString("set")
				sel, err := parseSelection(set, app.Catalog)
				if err != nil {
					output.Error("%v", err)
					return err
				}
				result := scoring.Score(sel, app.Catalog)
				level := scoring.Classify(result.Total)
				patch.Score = &result.Total
				patch.Level = &level.Label
				patch.ActiveConfluences = scoring.ActiveLabels(sel, app.Catalog)
			}

			updated, found, err := app.Store.Update(trade.ID, patch)
			if err != nil {
				output.Error("Updating trade failed: %v", err)
				return err
			}
			if !found {
				output.Error("No trade with id %q", args[0])
				return fmt.Errorf("trade not found: %s", args[0])
			}

			if output.IsJSON() {
				return output.JSON(updated)
			}
			output.Success("✓ Trade updated: %s", updated.ID)
			return nil
		},
	}

	addTradeFlags(cmd)
	return cmd
}

func newTradeDeleteCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a recorded trade",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			output := app.NewOutput(cmd)

			trade, ok := findTrade(app, args[0])
			if !ok {
				output.Error("No trade with id %q", args[0])
				return fmt.Errorf("trade not found: %s", args[0])
			}

			yes, _ := cmd.Flags().GetBool("yes")
			if !yes {
				output.Warning("This deletes trade %s (%s %s).", ShortID(trade.ID), trade.Pair, trade.Direction)
				output.Println("Re-run with --yes to confirm.")
				return nil
			}

			if err := app.Store.Delete(trade.ID); err != nil {
				output.Error("Deleting trade failed: %v", err)
				return err
			}
			output.Success("✓ Trade deleted: %s", trade.ID)
			return nil
		},
	}

	cmd.Flags().Bool("yes", false, "skip confirmation")
	return cmd
}

func newTradeClearCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete every recorded trade",
		Long: `Delete the entire local trade history.

Clearing is local only: trades already mirrored to the remote endpoint
stay there.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			output := app.NewOutput(cmd)

			yes, _ := cmd.Flags().GetBool("yes")
			if !yes {
				output.Warning("This deletes all %d local trades.", app.Store.Len())
				output.Println("Re-run with --yes to confirm.")
				return nil
			}

			if err := app.Store.Clear(); err != nil {
				output.Error("Clearing trades failed: %v", err)
				return err
			}
			output.Success("✓ Journal cleared")
			return nil
		},
	}

	cmd.Flags().Bool("yes", false, "skip confirmation")
	return cmd
}

// findTrade looks a trade up by full id, then by unique prefix so users can
// paste the short form shown in listings.
func findTrade(app *App, id string) (models.Trade, bool) {
	if t, ok := app.Store.Get(id); ok {
		return t, true
	}

	var match models.Trade
	var count int
	for _, t := range app.Store.Trades() {
		if strings.HasPrefix(t.ID, id) {
			match = t
			count++
		}
	}
	if count == 1 {
		return match, true
	}
	return models.Trade{}, false
}

// Package cli provides the command-line interface for the journal.
package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"confluence-journal/internal/catalog"
	"confluence-journal/internal/scoring"
)

// addScoreCommands adds the checklist and scoring commands.
func addScoreCommands(rootCmd *cobra.Command, app *App) {
	rootCmd.AddCommand(newChecklistCmd(app))
	rootCmd.AddCommand(newScoreCmd(app))
}

func newChecklistCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "checklist",
		Short: "Show the confluence checklist",
		Long:  "Display every confluence with its id, weight and helper text.",
		RunE: func(cmd *cobra.Command, args []string) error {
			output := app.NewOutput(cmd)

			if output.IsJSON() {
				return output.JSON(app.Catalog.Entries())
			}

			output.Bold("Confluence Checklist")
			output.Println()

			table := NewTable(output, "ID", "Confluence", "Weight", "Helper")
			for _, c := range app.Catalog.Entries() {
				table.AddRow(c.ID, c.Label, fmt.Sprintf("%d", c.Weight), c.Helper)
			}
			table.Render()

			output.Println()
			output.Dim("Max score: %d", app.Catalog.TotalWeight())
			return nil
		},
	}
}

func newScoreCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "score",
		Short: "Score a setup against the checklist",
		Long: `Score a setup by naming the confluences that are present.

Confluences are given by id or label, comma separated. The score is the
sum of their weights; the tier tells you whether the setup is worth
taking.`,
		Example: `  journal score --set weekly,daily,aoi
  journal score --set "AOI,BOS / SHIFT,RETEST"`,
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

			if output.IsJSON() {
				return output.JSON(map[string]interface{}{
					"score":       result.Total,
					"max":         app.Catalog.TotalWeight(),
					"level":       level.Label,
					"caption":     level.Caption,
					"confluences": labels,
				})
			}

			output.Bold("Score: %s", FormatScore(result.Total, app.Catalog.TotalWeight()))
			output.Printf("Level: %s\n", output.FormatLevel(level))
			output.Println()
			output.Println(level.Caption)

			if len(labels) > 0 {
				output.Println()
				output.Bold("Active confluences")
				for _, id := range result.ActiveIDs {
					c, _ := app.Catalog.ByID(id)
					output.Printf("  %s (%d)\n", c.Label, c.Weight)
				}
			}
			return nil
		},
	}

	cmd.Flags().String("set", "", "comma-separated confluence ids or labels")
	return cmd
}

// parseSelection resolves a comma-separated list of confluence ids or
// labels into a selection. Unknown names are an error so a typo does not
// silently lower the score.
func parseSelection(set string, cat catalog.Catalog) (scoring.Selection, error) {
	sel := make(scoring.Selection)
	if strings.TrimSpace(set) == "" {
		return sel, nil
	}
	for _, token := range strings.Split(set, ",") {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}
		c, ok := cat.Resolve(token)
		if !ok {
			return nil, fmt.Errorf("unknown confluence %q, see 'journal checklist'", token)
		}
		sel[c.ID] = true
	}
	return sel, nil
}

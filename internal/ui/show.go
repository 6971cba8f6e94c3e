package ui

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/dayline/internal/layout"
)

func (a *App) showCmd() *cobra.Command {
	var noColor bool
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the day's positioned blocks",
		Long: `Print the selected day's blocks with their time range, duration and
lane, interleaved with free time, followed by a short summary.

Use --json to get the layout engine output as a JSON list.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if noColor {
				DisableColor()
			}
			out := cmd.OutOrStdout()

			day, err := a.selectedDay()
			if err != nil {
				return err
			}
			source, err := a.openSource(day)
			if err != nil {
				return err
			}
			blocks, err := source.Load(context.Background())
			if err != nil {
				return fmt.Errorf("loading blocks: %w", err)
			}

			grid := a.config.LayoutGrid()
			ps := layout.Layout(blocks, grid)

			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(toJSON(ps))
			}

			fmt.Fprintf(out, "=== %s ===\n\n", formatHeader(day.Format("Monday, January 2, 2006")))
			if len(ps) == 0 {
				fmt.Fprintln(out, "No time blocks for this day.")
				return nil
			}

			gaps := layout.Gaps(ps, grid, a.config.Grid.MinFreeMinutes)
			PrintDay(out, ps, gaps, termWidth()-rowOverhead)

			fmt.Fprintln(out)
			PrintStats(out, DayStats(ps, gaps, grid))
			return nil
		},
	}

	cmd.Flags().BoolVar(&noColor, "no-color", false, "Disable color output")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print positioned blocks as JSON")
	return cmd
}

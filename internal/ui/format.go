package ui

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/x/ansi"

	"github.com/javiermolinar/dayline/internal/layout"
	"github.com/javiermolinar/dayline/internal/tui/view"
)

// rowOverhead is the width of a block row without its title:
// "  ♥ [x]  07:45-08:15  30 min    lane 1  ".
const rowOverhead = 44

// Stats summarizes a laid out day.
type Stats struct {
	Blocks      int
	Completed   int
	Columns     int
	BusyMinutes int // union of block intervals inside the grid
	FreeMinutes int // gaps long enough to show
	GridMinutes int
}

// DayStats computes the summary of a layout.
func DayStats(ps []layout.Positioned, gaps []layout.Gap, g layout.Grid) Stats {
	s := Stats{
		Blocks:      len(ps),
		Columns:     layout.Columns(ps),
		GridMinutes: g.Hours * 60,
	}
	for _, p := range ps {
		if p.Completed {
			s.Completed++
		}
	}
	// Every gap regardless of length, so busy time is exact.
	allFree := 0
	for _, gap := range layout.Gaps(ps, g, 0) {
		allFree += gap.Minutes
	}
	s.BusyMinutes = s.GridMinutes - allFree
	for _, gap := range gaps {
		s.FreeMinutes += gap.Minutes
	}
	return s
}

// PrintBlockRow prints a single block with its time range and lane.
func PrintBlockRow(w io.Writer, p layout.Positioned, titleWidth int) {
	check := "[ ]"
	if p.Completed {
		check = "[x]"
	}
	icon := categoryColor(p.Category).Sprint(p.Category.Icon())
	title := ansi.Truncate(p.Title, max(titleWidth, 4), "...")
	timeRange := fmt.Sprintf("%s-%s", p.Start.Format("15:04"), p.End.Format("15:04"))

	fmt.Fprintf(w, "  %s %s  %s  %-10s  %s  %s\n",
		icon, check, timeRange,
		view.FormatDuration(p.Duration),
		formatMuted(fmt.Sprintf("lane %d", p.Column+1)),
		categoryColor(p.Category).Sprint(title))
}

// PrintGapRow prints a free-time stretch.
func PrintGapRow(w io.Writer, g layout.Gap) {
	fmt.Fprintf(w, "  %s  %s-%s  %s\n",
		formatMuted("·    "),
		view.FormatHour(g.StartHour), view.FormatHour(g.EndHour),
		formatStats("free "+view.FormatDuration(g.Minutes)))
}

// PrintDay prints blocks and free time in start order.
func PrintDay(w io.Writer, ps []layout.Positioned, gaps []layout.Gap, titleWidth int) {
	gi := 0
	for _, p := range ps {
		for gi < len(gaps) && gaps[gi].StartHour < p.StartHour {
			PrintGapRow(w, gaps[gi])
			gi++
		}
		PrintBlockRow(w, p, titleWidth)
	}
	for ; gi < len(gaps); gi++ {
		PrintGapRow(w, gaps[gi])
	}
}

// PrintStats prints the stats summary line.
func PrintStats(w io.Writer, s Stats) {
	fmt.Fprintf(w, "Blocks: %d (%d done) | Lanes: %d | Busy: %s | %s\n",
		s.Blocks, s.Completed, s.Columns,
		view.FormatDuration(s.BusyMinutes),
		formatStats("Free: "+view.FormatDuration(s.FreeMinutes)))
	fmt.Fprintf(w, "Day: %s\n", DayBar(s.BusyMinutes, s.GridMinutes, 26))
}

// DayBar draws the share of the grid covered by blocks.
func DayBar(busyMinutes, totalMinutes, width int) string {
	if totalMinutes <= 0 {
		return "[" + strings.Repeat("░", width) + "] (0% booked)"
	}
	busyMinutes = min(max(busyMinutes, 0), totalMinutes)
	pct := (busyMinutes * 100) / totalMinutes
	filled := (busyMinutes * width) / totalMinutes

	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	return fmt.Sprintf("[%s] %s", bar, formatStats(fmt.Sprintf("(%d%% booked)", pct)))
}

// positionedJSON is the --json shape of a positioned block.
type positionedJSON struct {
	ID        string  `json:"id"`
	Title     string  `json:"title"`
	Start     string  `json:"start"`
	End       string  `json:"end"`
	Color     string  `json:"color"`
	Category  string  `json:"category"`
	Completed bool    `json:"completed"`
	Column    int     `json:"column"`
	Top       float64 `json:"top"`
	Height    float64 `json:"height"`
	StartHour float64 `json:"start_hour"`
	EndHour   float64 `json:"end_hour"`
	Duration  int     `json:"duration_minutes"`
}

func toJSON(ps []layout.Positioned) []positionedJSON {
	out := make([]positionedJSON, 0, len(ps))
	for _, p := range ps {
		out = append(out, positionedJSON{
			ID:        p.ID,
			Title:     p.Title,
			Start:     p.Start.Format(time.RFC3339),
			End:       p.End.Format(time.RFC3339),
			Color:     p.Color,
			Category:  string(p.Category),
			Completed: p.Completed,
			Column:    p.Column,
			Top:       p.Top,
			Height:    p.Height,
			StartHour: p.StartHour,
			EndHour:   p.EndHour,
			Duration:  p.Duration,
		})
	}
	return out
}

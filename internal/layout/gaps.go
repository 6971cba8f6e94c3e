package layout

import (
	"math"
	"slices"
)

// Gap is a stretch of the grid with no block in any column.
type Gap struct {
	StartHour float64
	EndHour   float64
	Top       float64
	Height    float64
	Minutes   int
}

// Gaps returns the free stretches inside the grid that last at least
// minMinutes. Blocks with empty or inverted intervals do not occupy time.
func Gaps(ps []Positioned, g Grid, minMinutes int) []Gap {
	type span struct{ start, end float64 }

	gridStart := g.StartHour
	gridEnd := g.StartHour + float64(g.Hours)

	busy := make([]span, 0, len(ps))
	for _, p := range ps {
		start := max(p.StartHour, gridStart)
		end := min(p.EndHour, gridEnd)
		if end > start {
			busy = append(busy, span{start, end})
		}
	}
	slices.SortFunc(busy, func(a, b span) int {
		switch {
		case a.start < b.start:
			return -1
		case a.start > b.start:
			return 1
		default:
			return 0
		}
	})

	var gaps []Gap
	add := func(start, end float64) {
		minutes := int(math.Round((end - start) * 60))
		if minutes <= 0 || minutes < minMinutes {
			return
		}
		gaps = append(gaps, Gap{
			StartHour: start,
			EndHour:   end,
			Top:       (start - g.StartHour) * g.HourHeight,
			Height:    (end - start) * g.HourHeight,
			Minutes:   minutes,
		})
	}

	cursor := gridStart
	for _, s := range busy {
		if s.start > cursor {
			add(cursor, s.start)
		}
		cursor = max(cursor, s.end)
	}
	if cursor < gridEnd {
		add(cursor, gridEnd)
	}
	return gaps
}

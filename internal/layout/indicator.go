package layout

import (
	"time"

	"github.com/javiermolinar/dayline/internal/dateutil"
)

// IndicatorVisible reports whether the current-time marker is drawn: the
// selected date must be today and now must fall strictly inside the grid.
func (g Grid) IndicatorVisible(selected, now time.Time) bool {
	if !dateutil.SameDay(selected, now) {
		return false
	}
	offset := g.Offset(now)
	return offset > 0 && offset < g.Height()
}

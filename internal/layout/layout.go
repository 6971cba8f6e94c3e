// Package layout converts time blocks into timeline geometry.
//
// The engine maps each block's wall-clock interval onto a vertical pixel grid
// and assigns temporally overlapping blocks to separate columns. Lane
// assignment is greedy first-fit over blocks sorted by start time: a block
// reuses the lowest-index column whose previous blocks have all ended.
package layout

import (
	"math"
	"slices"
	"time"

	"github.com/javiermolinar/dayline/internal/block"
)

// Grid describes the pixel coordinate system shared by blocks and the
// current-time indicator.
type Grid struct {
	HourHeight     float64 // pixels per hour
	StartHour      float64 // earliest displayed hour, the zero point
	Hours          int     // displayed hours
	MinBlockHeight float64 // height floor for short blocks
}

// DefaultGrid returns the 7 AM to 8 PM grid at 70 pixels per hour.
func DefaultGrid() Grid {
	return Grid{
		HourHeight:     70,
		StartHour:      7,
		Hours:          13,
		MinBlockHeight: 50,
	}
}

// Height returns the total pixel height of the displayed hours.
func (g Grid) Height() float64 {
	return float64(g.Hours) * g.HourHeight
}

// Offset returns the vertical pixel offset of t's wall-clock time.
func (g Grid) Offset(t time.Time) float64 {
	return (FractionalHour(t) - g.StartHour) * g.HourHeight
}

// Positioned is a block with its computed geometry.
type Positioned struct {
	block.TimeBlock

	Top       float64 // pixels from the grid start hour, may be negative
	Height    float64 // pixels, at least Grid.MinBlockHeight
	StartHour float64 // hour + minute/60
	EndHour   float64
	Column    int // zero-based lane
	Duration  int // minutes, rounded
}

// FractionalHour returns hour + minute/60 for t. Seconds are ignored.
func FractionalHour(t time.Time) float64 {
	return float64(t.Hour()) + float64(t.Minute())/60
}

// Layout positions every block on the grid and assigns columns.
// The result holds one entry per input block, ordered by start time with
// ties kept in input order. blocks is not modified.
func Layout(blocks []block.TimeBlock, g Grid) []Positioned {
	out := make([]Positioned, 0, len(blocks))
	for _, b := range blocks {
		out = append(out, g.position(b))
	}

	slices.SortStableFunc(out, func(a, b Positioned) int {
		return a.Start.Compare(b.Start)
	})

	// laneEnds[i] is the latest EndHour placed in column i.
	var laneEnds []float64
	for i := range out {
		p := &out[i]
		col := firstFreeLane(laneEnds, p.StartHour)
		if col == len(laneEnds) {
			laneEnds = append(laneEnds, p.EndHour)
		} else {
			laneEnds[col] = max(laneEnds[col], p.EndHour)
		}
		p.Column = col
	}

	return out
}

func (g Grid) position(b block.TimeBlock) Positioned {
	startHour := FractionalHour(b.Start)
	endHour := FractionalHour(b.End)

	return Positioned{
		TimeBlock: b,
		Top:       (startHour - g.StartHour) * g.HourHeight,
		Height:    max((endHour-startHour)*g.HourHeight, g.MinBlockHeight),
		StartHour: startHour,
		EndHour:   endHour,
		Duration:  int(math.Round(b.Duration().Minutes())),
	}
}

// firstFreeLane returns the first lane that ended at or before start, or
// len(laneEnds) when every lane is still busy.
func firstFreeLane(laneEnds []float64, start float64) int {
	for i, end := range laneEnds {
		if end <= start {
			return i
		}
	}
	return len(laneEnds)
}

// Columns returns the number of lanes used by a layout.
func Columns(ps []Positioned) int {
	n := 0
	for _, p := range ps {
		n = max(n, p.Column+1)
	}
	return n
}

// Overlaps reports whether the half-open hour intervals of a and b intersect.
func Overlaps(a, b Positioned) bool {
	return a.StartHour < b.EndHour && b.StartHour < a.EndHour
}

package view

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/javiermolinar/dayline/internal/layout"
)

// Timeline geometry in terminal cells.
const (
	labelWidth = 6 // "07:00 "
	trackX     = labelWidth
	cardsX     = trackX + 2
	barWidth   = 2
)

// Card is a positioned block with its resolved styles.
type Card struct {
	Block  layout.Positioned
	Bar    lipgloss.Style // color bar and icon
	Body   lipgloss.Style // card background and checkbox
	Title  lipgloss.Style
	Detail lipgloss.Style
}

// TimelineStyles holds the non-block styles of the timeline.
type TimelineStyles struct {
	Base      lipgloss.Style
	Label     lipgloss.Style
	Track     lipgloss.Style
	GridLine  lipgloss.Style
	Free      lipgloss.Style
	Indicator lipgloss.Style
}

// TimelineState is everything needed to draw the day timeline.
type TimelineState struct {
	Grid         layout.Grid
	LinesPerHour int
	ColumnWidth  int
	Width        int

	Cards         []Card
	Gaps          []layout.Gap
	ShowIndicator bool
	Indicator     float64 // pixel offset of now
	TwelveHour    bool    // "7 AM" labels instead of "07:00"

	Styles TimelineStyles
}

// Lines returns the timeline height in terminal lines, including the
// closing hour label.
func (s TimelineState) Lines() int {
	return s.Grid.Hours*s.linesPerHour() + 1
}

// LineAt maps a pixel offset to a terminal line.
func (s TimelineState) LineAt(px float64) int {
	if s.Grid.HourHeight <= 0 {
		return 0
	}
	return int(math.Floor(px / s.Grid.HourHeight * float64(s.linesPerHour())))
}

// spanLines maps a pixel height to at least one terminal line.
func (s TimelineState) spanLines(px float64) int {
	if s.Grid.HourHeight <= 0 {
		return 1
	}
	return max(1, int(math.Round(px/s.Grid.HourHeight*float64(s.linesPerHour()))))
}

func (s TimelineState) linesPerHour() int {
	return max(1, s.LinesPerHour)
}

// Columns returns the lanes drawn, at least one.
func (s TimelineState) Columns() int {
	cols := 1
	for _, c := range s.Cards {
		cols = max(cols, c.Block.Column+1)
	}
	return cols
}

// ContentWidth returns the width the timeline needs for every lane.
func (s TimelineState) ContentWidth() int {
	return max(s.Width, cardsX+s.Columns()*s.ColumnWidth)
}

// RenderTimeline draws hour labels, grid lines, free time, the current-time
// indicator and block cards.
func RenderTimeline(s TimelineState) string {
	lph := s.linesPerHour()
	c := NewCanvas(s.ContentWidth(), s.Lines(), s.Styles.Base)

	label := c.AddStyle(s.Styles.Label)
	track := c.AddStyle(s.Styles.Track)
	gridLine := c.AddStyle(s.Styles.GridLine)

	for y := 0; y < c.Height(); y++ {
		if y%lph != 0 {
			c.Set(trackX, y, '│', track)
			continue
		}
		hour := s.Grid.StartHour + float64(y/lph)
		c.Text(0, y, labelWidth-1, s.hourLabel(hour), label)
		c.Set(trackX, y, '┼', track)
		for x := trackX + 1; x < c.Width(); x++ {
			c.Set(x, y, '╌', gridLine)
		}
	}

	drawGaps(c, s)

	if s.ShowIndicator {
		drawIndicator(c, s)
	}

	for _, card := range s.Cards {
		drawCard(c, s, card)
	}

	return c.Render()
}

func drawGaps(c *Canvas, s TimelineState) {
	if len(s.Gaps) == 0 {
		return
	}
	free := c.AddStyle(s.Styles.Free)
	w := s.ColumnWidth - 1
	for _, g := range s.Gaps {
		y0 := s.LineAt(g.Top) + 1
		h := s.LineAt(g.Top+g.Height) - y0
		if h < 1 {
			continue
		}
		c.Fill(cardsX, y0, w, h, ' ', free)
		c.Text(cardsX+1, y0, w-2, fmt.Sprintf("Free time · %s", FormatDuration(g.Minutes)), free)
	}
}

func drawIndicator(c *Canvas, s TimelineState) {
	ind := c.AddStyle(s.Styles.Indicator)
	y := s.LineAt(s.Indicator)
	now := s.Grid.StartHour + s.Indicator/s.Grid.HourHeight

	c.Fill(0, y, labelWidth, 1, ' ', BaseStyle)
	c.Text(0, y, labelWidth-1, s.nowLabel(now), ind)
	c.Set(trackX, y, '●', ind)
	for x := trackX + 1; x < c.Width(); x++ {
		c.Set(x, y, '─', ind)
	}
}

func (s TimelineState) hourLabel(h float64) string {
	if s.TwelveHour {
		return FormatHour12(h)
	}
	return FormatHour(h)
}

// nowLabel drops the AM/PM suffix on a 12-hour clock to fit the label column.
func (s TimelineState) nowLabel(h float64) string {
	if s.TwelveHour {
		label, _, _ := strings.Cut(FormatHour12(h), " ")
		return label
	}
	return FormatHour(h)
}

func drawCard(c *Canvas, s TimelineState, card Card) {
	p := card.Block
	x0 := cardsX + p.Column*s.ColumnWidth
	w := s.ColumnWidth - 1
	y0 := s.LineAt(p.Top)
	h := s.spanLines(p.Height)

	bar := c.AddStyle(card.Bar)
	body := c.AddStyle(card.Body)
	title := c.AddStyle(card.Title)
	detail := c.AddStyle(card.Detail)

	c.Fill(x0, y0, barWidth, h, ' ', bar)
	for _, r := range p.Category.Icon() {
		c.Set(x0, y0, r, bar)
		break
	}
	c.Fill(x0+barWidth, y0, w-barWidth, h, ' ', body)

	textX := x0 + barWidth + 1
	textW := w - barWidth - 1
	check := "[ ]"
	if p.Completed {
		check = "[x]"
	}
	c.Text(textX, y0, textW, check, body)
	c.Text(textX+4, y0, textW-4, p.Title, title)
	if h > 1 {
		c.Text(textX, y0+1, textW, FormatRange(p), detail)
	}
}

package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/x/ansi"

	"github.com/javiermolinar/dayline/internal/dateutil"
	"github.com/javiermolinar/dayline/internal/layout"
	"github.com/javiermolinar/dayline/internal/tui/view"
)

// dayWindow returns the day selector entries around the selected date.
func (m *Model) dayWindow() []dateutil.Day {
	return dateutil.DayWindow(m.selected, m.now, m.radius, m.lang)
}

// indicatorVisible reports whether the current-time marker is drawn.
func (m *Model) indicatorVisible() bool {
	return m.grid.IndicatorVisible(m.selected, m.now)
}

// selectDate changes the selected day. Blocks keep their layout; only the
// day window and the indicator depend on the selection.
func (m *Model) selectDate(d time.Time, reason string) {
	d = dateutil.TruncateToDay(d)
	LogDateSelect(m.selected, d, reason)
	m.selected = d
	m.refreshContent()
	if !m.scrolled {
		m.scrollToFocus()
	}
}

// timelineState builds the view state of the timeline body.
func (m *Model) timelineState() view.TimelineState {
	cards := make([]view.Card, 0, len(m.positioned))
	for _, p := range m.positioned {
		cards = append(cards, m.styles.Card(p))
	}
	return view.TimelineState{
		Grid:          m.grid,
		LinesPerHour:  m.config.Grid.LinesPerHour,
		ColumnWidth:   m.config.Grid.ColumnWidth,
		Width:         m.width,
		Cards:         cards,
		Gaps:          m.gaps,
		ShowIndicator: m.indicatorVisible(),
		Indicator:     m.grid.Offset(m.now),
		TwelveHour:    m.config.TwelveHour(),
		Styles:        m.styles.Timeline(),
	}
}

// footerHelp renders the help line(s) for the current help mode.
func (m *Model) footerHelp() string {
	return m.help.View(m.keys)
}

// bodyHeight returns the lines left for the timeline viewport.
func (m *Model) bodyHeight() int {
	return max(0, m.height-view.HeaderHeight-view.FooterHeight(m.footerHelp()))
}

// resize fits the viewport to the terminal and re-renders its content.
func (m *Model) resize() {
	m.viewport.Width = m.width
	m.viewport.Height = m.bodyHeight()
	m.refreshContent()
}

// refreshContent re-renders the timeline into the viewport, keeping the
// scroll position.
func (m *Model) refreshContent() {
	if m.width <= 0 {
		return
	}
	lines := strings.Split(view.RenderTimeline(m.timelineState()), "\n")
	for i, l := range lines {
		lines[i] = ansi.Truncate(l, m.width, "")
	}
	offset := m.viewport.YOffset
	m.viewport.SetContent(strings.Join(lines, "\n"))
	m.viewport.SetYOffset(offset)
}

// scrollToFocus scrolls to the current time when it is visible, otherwise to
// the first block.
func (m *Model) scrollToFocus() {
	if m.viewport.Height <= 0 {
		return
	}
	ts := m.timelineState()
	line := 0
	switch {
	case ts.ShowIndicator:
		line = ts.LineAt(ts.Indicator)
	case len(m.positioned) > 0:
		line = ts.LineAt(m.positioned[0].Top)
	}
	m.viewport.SetYOffset(max(0, line-m.viewport.Height/3))
}

// scrollBy moves the viewport by n lines.
func (m *Model) scrollBy(n int) {
	m.scrolled = true
	m.viewport.SetYOffset(m.viewport.YOffset + n)
}

// statusText returns the status line: a pending message, the load state or
// a summary of the layout.
func (m *Model) statusText() string {
	switch {
	case m.statusMsg != "":
		return m.statusMsg
	case m.loading:
		return "Loading blocks..."
	case len(m.positioned) == 0:
		return "No blocks"
	}
	free := 0
	for _, g := range m.gaps {
		free += g.Minutes
	}
	return fmt.Sprintf("%d blocks · %d columns · %s free",
		len(m.positioned), layout.Columns(m.positioned), view.FormatDuration(free))
}

package view

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/javiermolinar/dayline/internal/dateutil"
)

const dayPillWidth = 6

// HeaderStyles holds the header styles.
type HeaderStyles struct {
	Base        lipgloss.Style
	Title       lipgloss.Style
	Glyph       lipgloss.Style
	Day         lipgloss.Style
	DayToday    lipgloss.Style
	DaySelected lipgloss.Style
}

// HeaderState holds the month title and the day selector.
type HeaderState struct {
	Width  int
	Title  string
	Days   []dateutil.Day
	Styles HeaderStyles
	Bg     lipgloss.Color
}

// HeaderHeight is the number of lines RenderHeader produces.
const HeaderHeight = 4

// RenderHeader renders the title bar and the day selector.
func RenderHeader(state HeaderState) string {
	if state.Width <= 0 {
		return ""
	}

	title := state.Styles.Title.Render(state.Title)
	glyphs := state.Styles.Glyph.Render("⚙  +")
	gap := max(1, state.Width-lipgloss.Width(title)-lipgloss.Width(glyphs))
	titleBar := title + state.Styles.Base.Render(strings.Repeat(" ", gap)) + glyphs

	selector := lipgloss.PlaceHorizontal(
		state.Width,
		lipgloss.Center,
		RenderDays(state.Days, state.Styles),
		lipgloss.WithWhitespaceBackground(state.Bg),
	)

	content := lipgloss.JoinVertical(lipgloss.Left, titleBar, "", selector)
	return PadLinesWithBackground(content, state.Width, HeaderHeight, state.Bg)
}

// RenderDays renders one two-line pill per day: weekday name over day number.
func RenderDays(days []dateutil.Day, styles HeaderStyles) string {
	pills := make([]string, 0, len(days))
	for _, d := range days {
		style := styles.Day
		switch {
		case d.Selected:
			style = styles.DaySelected
		case d.Today:
			style = styles.DayToday
		}
		style = style.Width(dayPillWidth).Align(lipgloss.Center)
		pills = append(pills, style.Render(d.Name+"\n"+strconv.Itoa(d.Number)))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, pills...)
}

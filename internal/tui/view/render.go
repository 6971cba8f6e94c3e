package view

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// ViewState contains the pre-rendered sections of the screen.
type ViewState struct {
	Width            int
	Height           int
	Header           string
	Body             string
	Footer           string
	Bg               lipgloss.Color
	EmptyPlaceholder string
}

// Render composes the final view output, clipped to the terminal size.
func Render(state ViewState) string {
	if state.Width == 0 || state.Height == 0 {
		if state.EmptyPlaceholder != "" {
			return state.EmptyPlaceholder
		}
		return "Loading..."
	}

	sections := make([]string, 0, 3)
	for _, s := range []string{state.Header, state.Body, state.Footer} {
		if s != "" {
			sections = append(sections, s)
		}
	}
	lines := strings.Split(lipgloss.JoinVertical(lipgloss.Left, sections...), "\n")
	for i, l := range lines {
		lines[i] = ansi.Truncate(l, state.Width, "")
	}
	content := strings.Join(lines, "\n")
	return PadLinesWithBackground(content, state.Width, state.Height, state.Bg)
}

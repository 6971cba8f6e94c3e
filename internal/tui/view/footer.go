package view

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// FooterHeight returns the number of lines RenderFooter produces: one status
// line plus the help text.
func FooterHeight(helpText string) int {
	return 1 + lipgloss.Height(helpText)
}

// FooterViewState holds the strings needed to render the footer section.
type FooterViewState struct {
	Width       int
	StatusText  string
	HelpText    string
	StatusStyle lipgloss.Style
	HelpStyle   lipgloss.Style
	Bg          lipgloss.Color
}

// RenderFooter renders the status and help lines.
func RenderFooter(state FooterViewState) string {
	if state.Width <= 0 {
		return ""
	}
	lines := []string{footerLine(state.Width, state.StatusStyle, state.StatusText)}
	for _, l := range strings.Split(state.HelpText, "\n") {
		lines = append(lines, footerLine(state.Width, state.HelpStyle, l))
	}
	h := FooterHeight(state.HelpText)
	return PlaceBox(state.Width, h, lipgloss.Bottom, strings.Join(lines, "\n"), state.Bg)
}

func footerLine(width int, style lipgloss.Style, content string) string {
	frameW, _ := style.GetFrameSize()
	contentWidth := width - frameW
	if contentWidth < 0 {
		contentWidth = 0
	}
	style = style.Width(contentWidth)
	if contentWidth > 0 {
		content = ansi.Truncate(content, contentWidth, "")
	}
	return style.Render(content)
}

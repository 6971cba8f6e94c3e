package ui

import (
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"

	"github.com/javiermolinar/dayline/internal/block"
)

// Color definitions for consistent styling across the UI.
var (
	colorFitness  = color.New(color.FgGreen)
	colorPersonal = color.New(color.FgCyan)
	colorFood     = color.New(color.FgYellow)
	colorWork     = color.New(color.FgBlue, color.Bold)
	colorMeeting  = color.New(color.FgMagenta)
	colorOther    = color.New(color.FgWhite)

	// Headers: bold
	colorHeader = color.New(color.Bold)

	// Stats: green for free time
	colorStats = color.New(color.FgGreen)

	// Muted: for secondary information
	colorMuted = color.New(color.FgWhite, color.Faint)
)

// termWidth returns the terminal width, or a default if detection fails.
func termWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return 80 // sensible default
	}
	return width
}

// DisableColor disables all color output.
func DisableColor() {
	color.NoColor = true
}

// categoryColor returns the terminal color of a category.
func categoryColor(c block.Category) *color.Color {
	switch c {
	case block.CategoryFitness:
		return colorFitness
	case block.CategoryPersonal:
		return colorPersonal
	case block.CategoryFood:
		return colorFood
	case block.CategoryWork:
		return colorWork
	case block.CategoryMeeting:
		return colorMeeting
	default:
		return colorOther
	}
}

// formatHeader formats text as a header.
func formatHeader(s string) string {
	return colorHeader.Sprint(s)
}

// formatStats formats text for statistics.
func formatStats(s string) string {
	return colorStats.Sprint(s)
}

// formatMuted formats text as secondary/muted.
func formatMuted(s string) string {
	return colorMuted.Sprint(s)
}

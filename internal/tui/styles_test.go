package tui

import (
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/javiermolinar/dayline/internal/block"
	"github.com/javiermolinar/dayline/internal/layout"
	"github.com/javiermolinar/dayline/internal/tui/theme"
)

func TestStylesBackgroundCoverage(t *testing.T) {
	th, err := theme.Load("mocha")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	styles := NewStyles(th)

	assertBg := func(t *testing.T, name string, style lipgloss.Style, want string) {
		t.Helper()
		bg, ok := style.GetBackground().(lipgloss.Color)
		if !ok {
			t.Fatalf("%s background type = %T, want lipgloss.Color", name, style.GetBackground())
		}
		if bg != lipgloss.Color(want) {
			t.Fatalf("%s background = %q, want %q", name, bg, want)
		}
	}

	assertBg(t, "BaseStyle", styles.BaseStyle, th.Bg)
	assertBg(t, "LabelStyle", styles.LabelStyle, th.Bg)
	assertBg(t, "GridLineStyle", styles.GridLineStyle, th.Bg)
	assertBg(t, "IndicatorStyle", styles.IndicatorStyle, th.Bg)
	assertBg(t, "StatusStyle", styles.StatusStyle, th.Bg)
	assertBg(t, "DaySelectedStyle", styles.DaySelectedStyle, th.BgSelection)
}

func TestCardStyles(t *testing.T) {
	th, err := theme.Load("mocha")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	styles := NewStyles(th)
	ps := layout.Layout(block.Sample(), layout.DefaultGrid())

	workout := styles.Card(ps[0])
	if !workout.Title.GetStrikethrough() {
		t.Error("completed block title should be struck through")
	}
	if bar := workout.Bar.GetBackground(); bar != lipgloss.Color(th.Calendar["workout"]) {
		t.Errorf("workout bar = %v, want %s", bar, th.Calendar["workout"])
	}

	shower := styles.Card(ps[1])
	if shower.Title.GetStrikethrough() || !shower.Title.GetBold() {
		t.Error("open block title should be bold and not struck through")
	}

	literal := ps[3]
	literal.Color = "#FF8800"
	if bar := styles.Card(literal).Bar.GetBackground(); bar != lipgloss.Color("#ff8800") {
		t.Errorf("literal bar = %v, want #ff8800", bar)
	}

	unknown := ps[3]
	unknown.Color = "sparkles"
	if bar := styles.Card(unknown).Bar.GetBackground(); bar != lipgloss.Color(th.FgMuted) {
		t.Errorf("unknown token bar = %v, want muted %s", bar, th.FgMuted)
	}
}

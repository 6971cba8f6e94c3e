package theme

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func darkTheme() *Theme {
	return &Theme{
		Bg:          "#101010",
		BgHighlight: "#202020",
		BgSelection: "#303030",
		Fg:          "#ffffff",
		FgMuted:     "#aaaaaa",
		Accent:      "#ff0000",
		Current:     "#777777",
		Grid:        "#222222",
		Free:        "#00aa88",
		Warning:     "#888888",
		Calendar:    map[string]string{"work": "#4488ff"},
	}
}

func TestPalette_BlockShades(t *testing.T) {
	base := darkTheme()
	palette := NewPalette(base)

	open := palette.Block("work", false)
	if open.Bar != lipgloss.Color("#4488ff") {
		t.Fatalf("Bar = %q, want #4488ff", open.Bar)
	}
	if open.Card != lipgloss.Color(darkenColor("#4488ff")) {
		t.Fatalf("Card = %q, want %q", open.Card, darkenColor("#4488ff"))
	}
	if open.CardText != lipgloss.Color(base.Fg) {
		t.Fatalf("CardText = %q, want %q", open.CardText, base.Fg)
	}

	done := palette.Block("work", true)
	if done.Card != lipgloss.Color(muteColor("#4488ff")) {
		t.Fatalf("completed Card = %q, want %q", done.Card, muteColor("#4488ff"))
	}
	if done.CardText != lipgloss.Color(base.FgMuted) {
		t.Fatalf("completed CardText = %q, want %q", done.CardText, base.FgMuted)
	}
}

func TestPalette_UnknownTokenUsesMuted(t *testing.T) {
	base := darkTheme()
	palette := NewPalette(base)

	if got := palette.Block("nope", false).Bar; got != lipgloss.Color(base.FgMuted) {
		t.Fatalf("Bar = %q, want %q", got, base.FgMuted)
	}
}

func TestPalette_LightThemeLightensCards(t *testing.T) {
	base := &Theme{
		Bg:          "#f5f5f5",
		BgHighlight: "#eeeeee",
		BgSelection: "#e0e0e0",
		Fg:          "#222222",
		FgMuted:     "#555555",
		Accent:      "#2f6feb",
		Current:     "#c97b00",
		Free:        "#2f8f2f",
		Warning:     "#c2410c",
		Calendar:    map[string]string{"work": "#1d8a8a"},
	}

	palette := NewPalette(base)
	card := palette.Block("work", false).Card
	if relativeLuminance(string(card)) <= relativeLuminance("#1d8a8a") {
		t.Fatalf("card luminance = %f, want greater than bar", relativeLuminance(string(card)))
	}
	if relativeLuminance(string(palette.FreeBg)) <= relativeLuminance(base.Free) {
		t.Fatalf("FreeBg luminance = %f, want greater than Free", relativeLuminance(string(palette.FreeBg)))
	}
}

func TestNewPalette_NilThemeUsesMocha(t *testing.T) {
	palette := NewPalette(nil)
	if palette.Bg != lipgloss.Color("#1e1e2e") {
		t.Fatalf("Bg = %q, want mocha base", palette.Bg)
	}
}

func TestScaleColorFloor(t *testing.T) {
	if got := darkenColor("#000000"); got != "#282828" {
		t.Fatalf("darkenColor(#000000) = %q, want #282828", got)
	}
	if got := muteColor("not-a-color"); got != "not-a-color" {
		t.Fatalf("muteColor passthrough = %q", got)
	}
}

func TestChooseTextColorPrefersContrast(t *testing.T) {
	bg := "#f0f0f0"
	lightText := "#ffffff"
	darkText := "#111111"

	if got := chooseTextColor(bg, lightText, darkText); got != darkText {
		t.Fatalf("chooseTextColor(%q, %q, %q) = %q, want %q", bg, lightText, darkText, got, darkText)
	}
}

func TestBlendColors(t *testing.T) {
	if got := blendColors("#000000", "#ffffff", 0.5); got != "#7f7f7f" {
		t.Fatalf("blendColors = %q, want #7f7f7f", got)
	}
}

// Package theme provides color themes for the TUI.
package theme

import (
	"embed"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/pelletier/go-toml/v2"
)

//go:embed embedded/*.toml
var embeddedThemes embed.FS

// ErrUnknownTheme is returned by Load for a name not in Available.
var ErrUnknownTheme = errors.New("unknown theme")

// Theme holds all colors for a TUI theme.
type Theme struct {
	Name        string `toml:"name"`
	Bg          string `toml:"bg"`           // Base background
	BgHighlight string `toml:"bg_highlight"` // Cards, subtle highlight
	BgSelection string `toml:"bg_selection"` // Selected day
	Fg          string `toml:"fg"`           // Primary foreground
	FgMuted     string `toml:"fg_muted"`     // Labels, completed blocks, unknown tokens
	Accent      string `toml:"accent"`       // Title, today marker
	Current     string `toml:"current"`      // Current-time indicator
	Grid        string `toml:"grid"`         // Hour lines
	Free        string `toml:"free"`         // Free time cards
	Warning     string `toml:"warning"`      // Error status

	// Calendar maps block color tokens to hex colors.
	Calendar map[string]string `toml:"calendar"`
}

// Load loads a theme by name from embedded files. An empty name loads mocha.
func Load(name string) (*Theme, error) {
	if name == "" {
		name = "mocha"
	}
	name = strings.ToLower(name)
	if !IsAvailable(name) {
		return nil, fmt.Errorf("%w %q (available: %s)", ErrUnknownTheme, name, strings.Join(Available(), ", "))
	}

	data, err := embeddedThemes.ReadFile("embedded/" + name + ".toml")
	if err != nil {
		return nil, fmt.Errorf("loading theme %q: %w", name, err)
	}

	var t Theme
	if err := toml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("parsing theme %q: %w", name, err)
	}
	t.applyDefaults()

	return &t, nil
}

func (t *Theme) applyDefaults() {
	if t.BgHighlight == "" {
		t.BgHighlight = t.Bg
	}
	if t.BgSelection == "" {
		t.BgSelection = t.BgHighlight
	}
	if t.Grid == "" {
		t.Grid = t.BgHighlight
	}
	if t.Free == "" {
		t.Free = t.FgMuted
	}
	if t.Calendar == nil {
		t.Calendar = map[string]string{}
	}
}

// Resolve maps a block color token to a color. Literal "#rrggbb" values
// pass through lower-cased, named tokens come from the calendar table and
// anything else resolves to the muted foreground.
func (t *Theme) Resolve(token string) lipgloss.Color {
	token = strings.ToLower(strings.TrimSpace(token))
	if isHexColor(token) {
		return lipgloss.Color(token)
	}
	if hex, ok := t.Calendar[token]; ok && isHexColor(hex) {
		return lipgloss.Color(strings.ToLower(hex))
	}
	return lipgloss.Color(t.FgMuted)
}

func isHexColor(s string) bool {
	if len(s) != 7 || s[0] != '#' {
		return false
	}
	for i := 1; i < len(s); i++ {
		c := s[i]
		if !(c >= '0' && c <= '9' || c >= 'a' && c <= 'f' || c >= 'A' && c <= 'F') {
			return false
		}
	}
	return true
}

// Available returns a list of available theme names.
func Available() []string {
	return []string{"mocha", "latte"}
}

// IsAvailable reports whether a theme name is available.
func IsAvailable(name string) bool {
	name = strings.ToLower(name)
	for _, themeName := range Available() {
		if themeName == name {
			return true
		}
	}
	return false
}

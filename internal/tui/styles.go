package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"

	"github.com/javiermolinar/dayline/internal/layout"
	"github.com/javiermolinar/dayline/internal/tui/theme"
	"github.com/javiermolinar/dayline/internal/tui/view"
)

// Styles holds all lipgloss styles for the TUI, derived from a theme.
type Styles struct {
	palette *theme.Palette

	colorBg lipgloss.Color

	// Header
	TitleStyle       lipgloss.Style
	GlyphStyle       lipgloss.Style
	DayStyle         lipgloss.Style
	DayTodayStyle    lipgloss.Style
	DaySelectedStyle lipgloss.Style

	// Timeline
	BaseStyle      lipgloss.Style
	LabelStyle     lipgloss.Style
	TrackStyle     lipgloss.Style
	GridLineStyle  lipgloss.Style
	FreeStyle      lipgloss.Style
	IndicatorStyle lipgloss.Style
	LoadingStyle   lipgloss.Style

	// Footer
	StatusStyle lipgloss.Style
	ErrorStyle  lipgloss.Style
	HelpStyle   lipgloss.Style
	HelpKey     lipgloss.Style
	HelpDesc    lipgloss.Style
}

// NewStyles creates styles from a theme.
func NewStyles(t *theme.Theme) *Styles {
	p := theme.NewPalette(t)
	base := lipgloss.NewStyle().Background(p.Bg).Foreground(p.Fg)

	return &Styles{
		palette: p,
		colorBg: p.Bg,

		TitleStyle: base.Bold(true),
		GlyphStyle: base.Foreground(p.FgMuted),
		DayStyle:   base.Foreground(p.FgMuted),
		DayTodayStyle: base.
			Foreground(p.Accent).
			Bold(true),
		DaySelectedStyle: lipgloss.NewStyle().
			Background(p.BgSelection).
			Foreground(p.TextOnSelection).
			Bold(true),

		BaseStyle:     base,
		LabelStyle:    base.Foreground(p.FgMuted),
		TrackStyle:    base.Foreground(p.Grid),
		GridLineStyle: base.Foreground(p.Grid),
		FreeStyle: lipgloss.NewStyle().
			Background(p.FreeBg).
			Foreground(p.Free).
			Italic(true),
		IndicatorStyle: base.Foreground(p.Current).Bold(true),
		LoadingStyle:   base.Foreground(p.FgMuted).Italic(true),

		StatusStyle: base.Foreground(p.FgMuted).Padding(0, 1),
		ErrorStyle:  base.Foreground(p.Warning).Padding(0, 1),
		HelpStyle:   base.Padding(0, 1),
		HelpKey:     base.Foreground(p.Accent).Bold(true),
		HelpDesc:    base.Foreground(p.FgMuted),
	}
}

// Header returns the header styles.
func (s *Styles) Header() view.HeaderStyles {
	return view.HeaderStyles{
		Base:        s.BaseStyle,
		Title:       s.TitleStyle,
		Glyph:       s.GlyphStyle,
		Day:         s.DayStyle,
		DayToday:    s.DayTodayStyle,
		DaySelected: s.DaySelectedStyle,
	}
}

// Timeline returns the non-block timeline styles.
func (s *Styles) Timeline() view.TimelineStyles {
	return view.TimelineStyles{
		Base:      s.BaseStyle,
		Label:     s.LabelStyle,
		Track:     s.TrackStyle,
		GridLine:  s.GridLineStyle,
		Free:      s.FreeStyle,
		Indicator: s.IndicatorStyle,
	}
}

// Card resolves the styles of one positioned block from its color token.
func (s *Styles) Card(p layout.Positioned) view.Card {
	c := s.palette.Block(p.Color, p.Completed)
	body := lipgloss.NewStyle().Background(c.Card).Foreground(c.CardText)
	title := body.Bold(!p.Completed).Strikethrough(p.Completed)

	return view.Card{
		Block:  p,
		Bar:    lipgloss.NewStyle().Background(c.Bar).Foreground(c.BarText),
		Body:   body,
		Title:  title,
		Detail: body.Foreground(c.CardMuted),
	}
}

// applyHelp styles a help model to match the footer.
func (s *Styles) applyHelp(h *help.Model) {
	h.Styles.ShortKey = s.HelpKey
	h.Styles.ShortDesc = s.HelpDesc
	h.Styles.ShortSeparator = s.HelpDesc
	h.Styles.FullKey = s.HelpKey
	h.Styles.FullDesc = s.HelpDesc
	h.Styles.FullSeparator = s.HelpDesc
	h.Styles.Ellipsis = s.HelpDesc
}

// Package tui provides the terminal user interface for dayline.
package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/text/language"

	"github.com/javiermolinar/dayline/internal/block"
	"github.com/javiermolinar/dayline/internal/clock"
	"github.com/javiermolinar/dayline/internal/config"
	"github.com/javiermolinar/dayline/internal/dateutil"
	"github.com/javiermolinar/dayline/internal/layout"
	"github.com/javiermolinar/dayline/internal/tui/commands"
	"github.com/javiermolinar/dayline/internal/tui/theme"
)

// Model is the main TUI model.
type Model struct {
	// Dependencies
	source block.Source
	config *config.Config

	// Geometry and locale
	grid   layout.Grid
	lang   language.Tag
	radius int

	// Theme and styles
	theme  *theme.Theme
	styles *Styles

	// Components
	keys     keyMap
	help     help.Model
	viewport viewport.Model

	// Blocks and their layout
	blocks     []block.TimeBlock
	positioned []layout.Positioned
	gaps       []layout.Gap

	// State
	selected time.Time // selected day, truncated to midnight
	now      time.Time // last clock tick
	nowFunc  func() time.Time
	loading  bool
	scrolled bool // user scrolled; stop following the indicator

	// Terminal dimensions
	width  int
	height int

	// Messages
	statusMsg  string    // Temporary status/error message
	statusTime time.Time // When to clear message

	// Error state
	err error
}

// ModelOption configures optional model behavior.
type ModelOption func(*Model)

// WithSelectedDate sets the initially selected day.
func WithSelectedDate(d time.Time) ModelOption {
	return func(m *Model) {
		if !d.IsZero() {
			m.selected = dateutil.TruncateToDay(d)
		}
	}
}

// WithNow replaces the wall clock, for tests and replays.
func WithNow(now func() time.Time) ModelOption {
	return func(m *Model) {
		if now != nil {
			m.nowFunc = now
			m.now = now()
		}
	}
}

// New creates a new TUI model.
func New(source block.Source, cfg *config.Config, opts ...ModelOption) (*Model, error) {
	if cfg == nil {
		cfg = config.Default()
	}

	t, err := theme.Load(cfg.UI.Theme)
	if err != nil {
		return nil, err
	}
	styles := NewStyles(t)

	h := help.New()
	styles.applyHelp(&h)

	now := time.Now()
	m := &Model{
		source:   source,
		config:   cfg,
		grid:     cfg.LayoutGrid(),
		lang:     cfg.LanguageTag(),
		radius:   cfg.UI.DayRadius,
		theme:    t,
		styles:   styles,
		keys:     defaultKeyMap,
		help:     h,
		viewport: viewport.New(0, 0),
		selected: dateutil.TruncateToDay(now),
		now:      now,
		nowFunc:  time.Now,
		loading:  true,
	}

	for _, opt := range opts {
		opt(m)
	}

	return m, nil
}

// Init loads the blocks.
func (m Model) Init() tea.Cmd {
	return commands.LoadBlocks(m.source)
}

// Run starts the TUI.
func Run(source block.Source, cfg *config.Config, opts ...ModelOption) error {
	return RunWithDebug(source, cfg, false, opts...)
}

// RunWithDebug starts the TUI with optional debug logging. The clock ticker
// lives exactly as long as the program.
func RunWithDebug(source block.Source, cfg *config.Config, debug bool, opts ...ModelOption) error {
	if err := InitDebugLogger(debug); err != nil {
		return err
	}
	defer CloseDebugLogger()

	if cfg == nil {
		cfg = config.Default()
	}
	ticker, err := clock.NewTicker(cfg.Clock.Refresh)
	if err != nil {
		return fmt.Errorf("creating clock: %w", err)
	}

	model, err := New(source, cfg, opts...)
	if err != nil {
		return err
	}
	p := tea.NewProgram(model, tea.WithAltScreen())

	if err := ticker.Start(func(now time.Time) {
		p.Send(commands.TickMsg{Time: now})
	}); err != nil {
		return fmt.Errorf("starting clock: %w", err)
	}
	defer ticker.Stop()
	LogClockStart(ticker.Spec())

	_, err = p.Run()
	return err
}

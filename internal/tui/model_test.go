package tui

import (
	"context"
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/dayline/internal/block"
	"github.com/javiermolinar/dayline/internal/config"
	"github.com/javiermolinar/dayline/internal/layout"
	"github.com/javiermolinar/dayline/internal/tui/commands"
	"github.com/javiermolinar/dayline/internal/tui/theme"
)

var testNow = time.Date(2025, 1, 6, 9, 15, 0, 0, time.Local)

func newTestModel(t *testing.T, opts ...ModelOption) *Model {
	t.Helper()
	opts = append([]ModelOption{
		WithNow(func() time.Time { return testNow }),
		WithSelectedDate(testNow),
	}, opts...)
	m, err := New(block.Static(block.Sample()), config.Default(), opts...)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return m
}

// loadedModel returns a sized model with the sample blocks laid out.
func loadedModel(t *testing.T) Model {
	t.Helper()
	m := newTestModel(t)
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 30})
	updated, _ = updated.(Model).Update(commands.BlocksLoadedMsg{Blocks: block.Sample()})
	return updated.(Model)
}

func TestNew_Defaults(t *testing.T) {
	m := newTestModel(t)

	if !m.selected.Equal(time.Date(2025, 1, 6, 0, 0, 0, 0, time.Local)) {
		t.Errorf("selected = %v, want midnight of 2025-01-06", m.selected)
	}
	if !m.now.Equal(testNow) {
		t.Errorf("now = %v, want %v", m.now, testNow)
	}
	if m.grid != layout.DefaultGrid() {
		t.Errorf("grid = %+v, want default", m.grid)
	}
	if !m.loading {
		t.Error("new model should be loading")
	}
	if m.theme.Name != "mocha" {
		t.Errorf("theme = %q, want mocha", m.theme.Name)
	}
}

func TestNew_NilConfigUsesDefaults(t *testing.T) {
	m, err := New(nil, nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if m.config == nil || m.radius != config.Default().UI.DayRadius {
		t.Fatalf("expected default config, got %+v", m.config)
	}
}

func TestNew_UnknownTheme(t *testing.T) {
	cfg := config.Default()
	cfg.UI.Theme = "solarized"
	if _, err := New(nil, cfg); !errors.Is(err, theme.ErrUnknownTheme) {
		t.Fatalf("New error = %v, want ErrUnknownTheme", err)
	}
}

func TestInit_LoadsBlocks(t *testing.T) {
	m := newTestModel(t)
	msg := m.Init()()

	loaded, ok := msg.(commands.BlocksLoadedMsg)
	if !ok {
		t.Fatalf("msg type = %T, want BlocksLoadedMsg", msg)
	}
	if len(loaded.Blocks) != 5 {
		t.Fatalf("blocks = %d, want 5", len(loaded.Blocks))
	}
}

func TestInit_SourceError(t *testing.T) {
	source := block.SourceFunc(func(context.Context) ([]block.TimeBlock, error) {
		return nil, errors.New("disk on fire")
	})
	m, err := New(source, config.Default())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if _, ok := m.Init()().(commands.ErrMsg); !ok {
		t.Fatal("expected ErrMsg from failing source")
	}
}

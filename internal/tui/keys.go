package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/dayline/internal/dateutil"
	"github.com/javiermolinar/dayline/internal/tui/commands"
	"github.com/javiermolinar/dayline/internal/tui/view"
)

// keyMap defines the key bindings of the timeline.
type keyMap struct {
	PrevDay  key.Binding
	NextDay  key.Binding
	Today    key.Binding
	PickDay  key.Binding
	Up       key.Binding
	Down     key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Copy     key.Binding
	Help     key.Binding
	Quit     key.Binding
}

// ShortHelp returns the bindings shown in the footer.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.PrevDay, k.Today, k.Down, k.Copy, k.Help, k.Quit}
}

// FullHelp returns the bindings shown when help is expanded.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.PrevDay, k.NextDay, k.Today, k.PickDay},
		{k.Up, k.Down, k.PageUp, k.PageDown},
		{k.Copy, k.Help, k.Quit},
	}
}

var defaultKeyMap = keyMap{
	PrevDay: key.NewBinding(
		key.WithKeys("h", "left"),
		key.WithHelp("h/l", "day"),
	),
	NextDay: key.NewBinding(
		key.WithKeys("l", "right"),
		key.WithHelp("l/→", "next day"),
	),
	Today: key.NewBinding(
		key.WithKeys("t"),
		key.WithHelp("t", "today"),
	),
	PickDay: key.NewBinding(
		key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"),
		key.WithHelp("1-9", "pick day"),
	),
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "scroll up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/k", "scroll"),
	),
	PageUp: key.NewBinding(
		key.WithKeys("pgup", "ctrl+u"),
		key.WithHelp("pgup", "page up"),
	),
	PageDown: key.NewBinding(
		key.WithKeys("pgdown", "ctrl+d"),
		key.WithHelp("pgdn", "page down"),
	),
	Copy: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "copy"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// handleKeyMsg handles keyboard input.
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	LogKeyPress(msg)

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.PrevDay):
		m.selectDate(dateutil.AddDays(m.selected, -1), "prev")
	case key.Matches(msg, m.keys.NextDay):
		m.selectDate(dateutil.AddDays(m.selected, 1), "next")
	case key.Matches(msg, m.keys.Today):
		m.now = m.nowFunc()
		m.scrolled = false
		m.selectDate(m.now, "today")
	case key.Matches(msg, m.keys.PickDay):
		days := m.dayWindow()
		idx := int(msg.String()[0] - '1')
		if idx < len(days) {
			m.selectDate(days[idx].Date, "pick")
		}

	case key.Matches(msg, m.keys.Up):
		m.scrollBy(-1)
	case key.Matches(msg, m.keys.Down):
		m.scrollBy(1)
	case key.Matches(msg, m.keys.PageUp):
		m.scrollBy(-m.viewport.Height)
	case key.Matches(msg, m.keys.PageDown):
		m.scrollBy(m.viewport.Height)

	case key.Matches(msg, m.keys.Copy):
		if len(m.positioned) == 0 {
			return m, commands.ShowStatus("No blocks to copy")
		}
		title := m.selected.Format("Monday, January 2")
		return m, commands.CopyAgenda(view.AgendaText(title, m.positioned))

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.resize()
	}

	return m, nil
}

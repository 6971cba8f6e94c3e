package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/dayline/internal/layout"
	"github.com/javiermolinar/dayline/internal/tui/commands"
)

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.WindowSizeMsg:
		first := m.width == 0 && m.height == 0
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.resize()
		if first {
			m.scrollToFocus()
		}
		return m, nil

	case commands.BlocksLoadedMsg:
		m.blocks = msg.Blocks
		m.positioned = layout.Layout(m.blocks, m.grid)
		m.gaps = layout.Gaps(m.positioned, m.grid, m.config.Grid.MinFreeMinutes)
		m.loading = false
		m.err = nil
		LogBlocksLoaded(len(m.positioned), layout.Columns(m.positioned), len(m.gaps))
		m.refreshContent()
		m.scrollToFocus()
		return m, nil

	case commands.TickMsg:
		m.now = msg.Time
		LogTick(m.now, m.indicatorVisible(), m.grid.Offset(m.now))
		m.refreshContent()
		return m, nil

	case commands.ErrMsg:
		LogError("command", msg.Err)
		m.err = msg.Err
		m.loading = false
		m.statusMsg = fmt.Sprintf("Error: %v", msg.Err)
		m.statusTime = time.Now().Add(5 * time.Second)
		return m, nil

	case commands.StatusMsgCmd:
		m.statusMsg = msg.Msg
		m.statusTime = time.Now().Add(3 * time.Second)
		return m, tea.Tick(3*time.Second, func(time.Time) tea.Msg {
			return commands.ClearStatusMsg{}
		})

	case commands.ClearStatusMsg:
		if time.Now().After(m.statusTime) {
			m.statusMsg = ""
		}
		return m, nil
	}

	return m, nil
}

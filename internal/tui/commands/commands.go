// Package commands provides TUI command constructors and message types.
package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/dayline/internal/block"
)

// BlocksLoadedMsg is sent when the block list is loaded.
type BlocksLoadedMsg struct {
	Blocks []block.TimeBlock
}

// TickMsg carries the current time from the clock ticker.
type TickMsg struct {
	Time time.Time
}

// ErrMsg is sent when an error occurs.
type ErrMsg struct {
	Err error
}

// StatusMsgCmd is sent for temporary status messages.
type StatusMsgCmd struct {
	Msg string
}

// ClearStatusMsg is sent to clear the status message.
type ClearStatusMsg struct{}

// loadTimeout bounds a single source load.
const loadTimeout = 10 * time.Second

// LoadBlocks loads the block list from source.
func LoadBlocks(source block.Source) tea.Cmd {
	return func() tea.Msg {
		if source == nil {
			return ErrMsg{Err: fmt.Errorf("no block source")}
		}

		ctx, cancel := context.WithTimeout(context.Background(), loadTimeout)
		defer cancel()

		blocks, err := source.Load(ctx)
		if err != nil {
			return ErrMsg{Err: fmt.Errorf("loading blocks: %w", err)}
		}
		return BlocksLoadedMsg{Blocks: blocks}
	}
}

// ShowStatus shows a temporary status message.
func ShowStatus(msg string) tea.Cmd {
	return func() tea.Msg {
		return StatusMsgCmd{Msg: msg}
	}
}

// writeClipboard is replaced in tests.
var writeClipboard = clipboard.WriteAll

// CopyAgenda writes text to the system clipboard.
func CopyAgenda(text string) tea.Cmd {
	return func() tea.Msg {
		if err := writeClipboard(text); err != nil {
			return ErrMsg{Err: fmt.Errorf("copy failed: %w", err)}
		}
		return StatusMsgCmd{Msg: "Copied agenda"}
	}
}

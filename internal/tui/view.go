package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/javiermolinar/dayline/internal/dateutil"
	"github.com/javiermolinar/dayline/internal/tui/view"
)

// View renders the model.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	header := view.RenderHeader(view.HeaderState{
		Width:  m.width,
		Title:  dateutil.MonthTitle(m.selected),
		Days:   m.dayWindow(),
		Styles: m.styles.Header(),
		Bg:     m.styles.colorBg,
	})

	body := m.viewport.View()
	if m.loading {
		body = view.PlaceBox(m.width, m.viewport.Height, lipgloss.Center,
			lipgloss.PlaceHorizontal(m.width, lipgloss.Center, m.styles.LoadingStyle.Render("Loading blocks..."),
				lipgloss.WithWhitespaceBackground(m.styles.colorBg)),
			m.styles.colorBg)
	}

	statusStyle := m.styles.StatusStyle
	if m.err != nil && m.statusMsg != "" {
		statusStyle = m.styles.ErrorStyle
	}
	footer := view.RenderFooter(view.FooterViewState{
		Width:       m.width,
		StatusText:  m.statusText(),
		HelpText:    m.footerHelp(),
		StatusStyle: statusStyle,
		HelpStyle:   m.styles.HelpStyle,
		Bg:          m.styles.colorBg,
	})

	return view.Render(view.ViewState{
		Width:  m.width,
		Height: m.height,
		Header: header,
		Body:   body,
		Footer: footer,
		Bg:     m.styles.colorBg,
	})
}

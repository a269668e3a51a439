package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type keyMap struct {
	Send       key.Binding
	NextFocus  key.Binding
	PrevFocus  key.Binding
	NextTab    key.Binding
	PrevTab    key.Binding
	Method     key.Binding
	Copy       key.Binding
	Paste      key.Binding
	AddRow     key.Binding
	DeleteRow  key.Binding
	Up         key.Binding
	Down       key.Binding
	NextCell   key.Binding
	PrevCell   key.Binding
	Suggestion key.Binding
	Quit       key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Send: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "send"),
		),
		NextFocus: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next field"),
		),
		PrevFocus: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "previous field"),
		),
		NextTab: key.NewBinding(
			key.WithKeys("ctrl+n"),
			key.WithHelp("ctrl+n", "next tab"),
		),
		PrevTab: key.NewBinding(
			key.WithKeys("ctrl+p"),
			key.WithHelp("ctrl+p", "previous tab"),
		),
		Method: key.NewBinding(
			key.WithKeys("ctrl+r"),
			key.WithHelp("ctrl+r", "method"),
		),
		Copy: key.NewBinding(
			key.WithKeys("ctrl+y"),
			key.WithHelp("ctrl+y", "copy body"),
		),
		Paste: key.NewBinding(
			key.WithKeys("ctrl+v"),
			key.WithHelp("ctrl+v", "paste"),
		),
		AddRow: key.NewBinding(
			key.WithKeys("ctrl+a"),
			key.WithHelp("ctrl+a", "add row"),
		),
		DeleteRow: key.NewBinding(
			key.WithKeys("ctrl+d"),
			key.WithHelp("ctrl+d", "delete row"),
		),
		Up: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("↑", "row up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp("↓", "row down"),
		),
		NextCell: key.NewBinding(
			key.WithKeys("enter", "shift+right"),
			key.WithHelp("enter", "next cell"),
		),
		PrevCell: key.NewBinding(
			key.WithKeys("shift+left"),
			key.WithHelp("shift+←", "previous cell"),
		),
		Suggestion: key.NewBinding(
			key.WithKeys("ctrl+t"),
			key.WithHelp("ctrl+t", "take suggestion"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Send, k.NextFocus, k.NextTab, k.Method, k.Copy, k.Quit}
}

// FullHelp implements help.KeyMap
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Send, k.Method, k.Copy, k.Paste, k.Quit},
		{k.NextFocus, k.PrevFocus, k.NextTab, k.PrevTab},
		{k.Up, k.Down, k.NextCell, k.PrevCell, k.AddRow, k.DeleteRow, k.Suggestion},
	}
}

// handleKeyPress routes a key to the global bindings, then to the focused area
func (m *Model) handleKeyPress(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return tea.Quit
	case key.Matches(msg, m.keys.Send):
		return m.sendRequest()
	case key.Matches(msg, m.keys.Method):
		m.session.CycleMethod()
		m.syncBodyFocus()
		return nil
	case key.Matches(msg, m.keys.NextTab):
		m.setTab((m.tab + 1) % tabCount)
		return nil
	case key.Matches(msg, m.keys.PrevTab):
		m.setTab((m.tab + tabCount - 1) % tabCount)
		return nil
	case key.Matches(msg, m.keys.NextFocus):
		return m.setFocus((m.focus + 1) % focusCount)
	case key.Matches(msg, m.keys.PrevFocus):
		return m.setFocus((m.focus + focusCount - 1) % focusCount)
	case key.Matches(msg, m.keys.Copy):
		return m.copyToClipboard()
	case key.Matches(msg, m.keys.Paste):
		return m.pasteFromClipboard()
	}

	switch m.focus {
	case FocusURL:
		return m.handleURLKeys(msg)
	case FocusTab:
		return m.handleTabKeys(msg)
	case FocusResponse:
		var cmd tea.Cmd
		m.responseView, cmd = m.responseView.Update(msg)
		return cmd
	}
	return nil
}

func (m *Model) handleURLKeys(msg tea.KeyMsg) tea.Cmd {
	if msg.Type == tea.KeyEnter {
		return m.sendRequest()
	}

	var cmd tea.Cmd
	before := m.urlInput.Value()
	m.urlInput, cmd = m.urlInput.Update(msg)
	if after := m.urlInput.Value(); after != before {
		m.session.SetURL(after)
		m.loadCell()
	}
	return cmd
}

func (m *Model) handleTabKeys(msg tea.KeyMsg) tea.Cmd {
	switch m.tab {
	case TabParams:
		return m.handleParamKeys(msg)
	case TabHeaders:
		return m.handleHeaderKeys(msg)
	case TabBody:
		if !m.session.BodyEnabled() {
			return nil
		}
		var cmd tea.Cmd
		m.bodyInput, cmd = m.bodyInput.Update(msg)
		m.session.Body = m.bodyInput.Value()
		return cmd
	case TabAuth:
		var cmd tea.Cmd
		m.authInput, cmd = m.authInput.Update(msg)
		m.session.AuthToken = m.authInput.Value()
		return cmd
	}
	return nil
}

// setFocus moves key input to area f and focuses the matching input widget
func (m *Model) setFocus(f Focus) tea.Cmd {
	m.focus = f
	m.urlInput.Blur()
	m.cellInput.Blur()
	m.bodyInput.Blur()
	m.authInput.Blur()

	switch f {
	case FocusURL:
		return m.urlInput.Focus()
	case FocusTab:
		return m.focusTabInput()
	}
	return nil
}

func (m *Model) setTab(t Tab) {
	m.tab = t
	m.suggestions = nil
	m.loadCell()
	if m.focus == FocusTab {
		m.cellInput.Blur()
		m.bodyInput.Blur()
		m.authInput.Blur()
		m.focusTabInput()
	}
}

func (m *Model) focusTabInput() tea.Cmd {
	switch m.tab {
	case TabParams, TabHeaders:
		m.loadCell()
		return m.cellInput.Focus()
	case TabBody:
		if m.session.BodyEnabled() {
			return m.bodyInput.Focus()
		}
	case TabAuth:
		return m.authInput.Focus()
	}
	return nil
}

// syncBodyFocus drops body focus when the method no longer sends a body
func (m *Model) syncBodyFocus() {
	if m.focus != FocusTab || m.tab != TabBody {
		return
	}
	if m.session.BodyEnabled() {
		m.bodyInput.Focus()
	} else {
		m.bodyInput.Blur()
	}
}

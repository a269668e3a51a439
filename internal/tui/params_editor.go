package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

const paramColumns = 3

// loadCell copies the selected params or headers cell into cellInput
func (m *Model) loadCell() {
	switch m.tab {
	case TabParams:
		m.paramRow = clampRow(m.paramRow, len(m.session.Params))
		m.cellInput.SetValue(m.paramCell())
	case TabHeaders:
		m.headerRow = clampRow(m.headerRow, len(m.session.Headers))
		m.cellInput.SetValue(m.headerCell())
		m.refreshSuggestions()
	default:
		return
	}
	m.cellInput.CursorEnd()
}

func clampRow(row, n int) int {
	if row >= n {
		row = n - 1
	}
	if row < 0 {
		row = 0
	}
	return row
}

func (m *Model) paramCell() string {
	if m.paramRow >= len(m.session.Params) {
		return ""
	}
	p := m.session.Params[m.paramRow]
	switch m.paramCol {
	case 0:
		return p.Key
	case 1:
		return p.Value
	default:
		return p.Note
	}
}

func (m *Model) handleParamKeys(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Up):
		m.paramRow--
		m.loadCell()
		return nil
	case key.Matches(msg, m.keys.Down):
		m.paramRow++
		m.loadCell()
		return nil
	case key.Matches(msg, m.keys.NextCell):
		m.paramCol++
		if m.paramCol == paramColumns {
			m.paramCol = 0
			m.paramRow++
		}
		m.loadCell()
		return nil
	case key.Matches(msg, m.keys.PrevCell):
		m.paramCol--
		if m.paramCol < 0 {
			m.paramCol = paramColumns - 1
			m.paramRow--
		}
		m.loadCell()
		return nil
	case key.Matches(msg, m.keys.AddRow):
		m.session.AddParam()
		m.paramRow = len(m.session.Params) - 1
		m.paramCol = 0
		m.loadCell()
		return nil
	case key.Matches(msg, m.keys.DeleteRow):
		if len(m.session.Params) == 0 {
			return nil
		}
		url, err := m.session.RemoveParam(m.paramRow)
		if err != nil {
			return m.reportError(err)
		}
		m.urlInput.SetValue(url)
		m.loadCell()
		return nil
	}

	if len(m.session.Params) == 0 {
		return nil
	}

	var cmd tea.Cmd
	before := m.cellInput.Value()
	m.cellInput, cmd = m.cellInput.Update(msg)
	if after := m.cellInput.Value(); after != before {
		if err := m.writeParamCell(after); err != nil {
			return m.reportError(err)
		}
	}
	return cmd
}

// writeParamCell stores value into the selected cell and resyncs the URL
func (m *Model) writeParamCell(value string) error {
	p := m.session.Params[m.paramRow]
	switch m.paramCol {
	case 0:
		p.Key = value
	case 1:
		p.Value = value
	default:
		return m.session.SetParamNote(m.paramRow, value)
	}

	url, err := m.session.SetParam(m.paramRow, p.Key, p.Value)
	if err != nil {
		return err
	}
	m.urlInput.SetValue(url)
	m.urlInput.CursorEnd()
	return nil
}

// renderParams renders the params table with the selected cell in edit mode
func (m *Model) renderParams(width int) string {
	if len(m.session.Params) == 0 {
		return styleSubtle.Render("No params - ctrl+a to add a row")
	}

	colWidth := max(10, (width-2)/paramColumns-1)

	var b strings.Builder
	b.WriteString(styleSubtle.Render(fitCell("Key", colWidth) + " " + fitCell("Value", colWidth) + " " + fitCell("Note", colWidth)))

	for i, p := range m.session.Params {
		cols := []string{p.Key, p.Value, p.Note}
		for c := range cols {
			if i == m.paramRow && c == m.paramCol && m.focus == FocusTab {
				cols[c] = styleSelected.Render(fitCell(m.cellInput.View(), colWidth))
				continue
			}
			cols[c] = fitCell(cols[c], colWidth)
		}
		b.WriteString("\n")
		b.WriteString(strings.Join(cols, " "))
	}

	return b.String()
}

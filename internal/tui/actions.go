package tui

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// sendRequest executes the current request in the background.
// A second send while one is in flight is ignored.
func (m *Model) sendRequest() tea.Cmd {
	if m.loading {
		m.statusMsg = "Request already in progress"
		return nil
	}

	// Snapshot on the UI loop; the command must not touch the session
	spec := m.session.BuildSpec()
	d := m.dispatcher

	m.loading = true
	m.errorMsg = ""
	m.statusMsg = fmt.Sprintf("Sending %s %s", spec.Method, spec.URL)
	m.updateResponseView()

	return tea.Batch(
		func() tea.Msg {
			return responseMsg{outcome: d.Execute(spec)}
		},
		m.spinner.Tick,
	)
}

// copyToClipboard copies the full response body to the clipboard
func (m *Model) copyToClipboard() tea.Cmd {
	out := m.session.Outcome
	if out == nil {
		return func() tea.Msg {
			return errorMsg("No response to copy")
		}
	}

	body := out.Body
	return func() tea.Msg {
		if err := clipboard.WriteAll(body); err != nil {
			return errorMsg(fmt.Sprintf("Failed to copy to clipboard: %v", err))
		}
		return statusMsg("Response copied to clipboard")
	}
}

// pasteFromClipboard inserts clipboard text into the focused input
func (m *Model) pasteFromClipboard() tea.Cmd {
	if m.focus == FocusResponse {
		return nil
	}

	text, err := clipboard.ReadAll()
	if err != nil {
		return m.reportError(fmt.Errorf("failed to read clipboard: %w", err))
	}
	m.insertText(text)
	return nil
}

// insertText inserts text at the cursor of the focused input and propagates
// the edit to the session
func (m *Model) insertText(text string) {
	if text == "" {
		return
	}

	switch m.focus {
	case FocusURL:
		pasteInto(&m.urlInput, text)
		m.session.SetURL(m.urlInput.Value())
		m.loadCell()

	case FocusTab:
		switch m.tab {
		case TabParams:
			if len(m.session.Params) == 0 {
				return
			}
			pasteInto(&m.cellInput, text)
			if err := m.writeParamCell(m.cellInput.Value()); err != nil {
				m.reportError(err)
			}
		case TabHeaders:
			if len(m.session.Headers) == 0 {
				return
			}
			pasteInto(&m.cellInput, text)
			if err := m.writeHeaderCell(m.cellInput.Value()); err != nil {
				m.reportError(err)
			}
			m.refreshSuggestions()
		case TabBody:
			if !m.session.BodyEnabled() {
				return
			}
			m.bodyInput.InsertString(text)
			m.session.Body = m.bodyInput.Value()
		case TabAuth:
			pasteInto(&m.authInput, text)
			m.session.AuthToken = m.authInput.Value()
		}
	}
}

// pasteInto inserts text at the cursor of in and moves the cursor past it
func pasteInto(in *textinput.Model, text string) {
	text = singleLine(text)
	pos := in.Position()
	in.SetValue(insertAt(in.Value(), pos, text))
	in.SetCursor(pos + len([]rune(text)))
}

func insertAt(value string, pos int, text string) string {
	runes := []rune(value)
	if pos < 0 || pos > len(runes) {
		pos = len(runes)
	}
	return string(runes[:pos]) + text + string(runes[pos:])
}

func singleLine(text string) string {
	text = strings.ReplaceAll(text, "\r\n", " ")
	return strings.NewReplacer("\n", " ", "\r", " ").Replace(strings.TrimSpace(text))
}

func (m *Model) reportError(err error) tea.Cmd {
	m.statusMsg = ""
	m.errorMsg = err.Error()
	m.log.Debugw("ui error", "error", err)
	return nil
}

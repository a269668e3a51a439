package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sahilm/fuzzy"
)

const (
	headerColumns  = 2
	maxSuggestions = 4
)

// commonHeaders feeds the header name suggestions
var commonHeaders = []string{
	"Accept",
	"Accept-Charset",
	"Accept-Encoding",
	"Accept-Language",
	"Authorization",
	"Cache-Control",
	"Connection",
	"Content-Encoding",
	"Content-Language",
	"Content-Length",
	"Content-Type",
	"Cookie",
	"Date",
	"Forwarded",
	"From",
	"Host",
	"If-Match",
	"If-Modified-Since",
	"If-None-Match",
	"If-Unmodified-Since",
	"Origin",
	"Pragma",
	"Range",
	"Referer",
	"TE",
	"User-Agent",
	"X-Api-Key",
	"X-Correlation-Id",
	"X-Forwarded-For",
	"X-Forwarded-Host",
	"X-Forwarded-Proto",
	"X-Request-Id",
	"X-Requested-With",
}

// suggestHeaders returns the best fuzzy matches for a partially typed header name
func suggestHeaders(input string) []string {
	input = strings.TrimSpace(input)
	if input == "" {
		return nil
	}

	matches := fuzzy.Find(input, commonHeaders)
	out := make([]string, 0, maxSuggestions)
	for _, match := range matches {
		if strings.EqualFold(match.Str, input) {
			continue
		}
		out = append(out, match.Str)
		if len(out) == maxSuggestions {
			break
		}
	}
	return out
}

func (m *Model) headerCell() string {
	if m.headerRow >= len(m.session.Headers) {
		return ""
	}
	h := m.session.Headers[m.headerRow]
	if m.headerCol == 0 {
		return h.Name
	}
	return h.Value
}

func (m *Model) refreshSuggestions() {
	if m.tab != TabHeaders || m.headerCol != 0 {
		m.suggestions = nil
		return
	}
	m.suggestions = suggestHeaders(m.cellInput.Value())
}

func (m *Model) handleHeaderKeys(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Up):
		m.headerRow--
		m.loadCell()
		return nil
	case key.Matches(msg, m.keys.Down):
		m.headerRow++
		m.loadCell()
		return nil
	case key.Matches(msg, m.keys.NextCell):
		m.headerCol++
		if m.headerCol == headerColumns {
			m.headerCol = 0
			m.headerRow++
		}
		m.loadCell()
		return nil
	case key.Matches(msg, m.keys.PrevCell):
		m.headerCol--
		if m.headerCol < 0 {
			m.headerCol = headerColumns - 1
			m.headerRow--
		}
		m.loadCell()
		return nil
	case key.Matches(msg, m.keys.AddRow):
		m.session.AddHeader("", "")
		m.headerRow = len(m.session.Headers) - 1
		m.headerCol = 0
		m.loadCell()
		return nil
	case key.Matches(msg, m.keys.DeleteRow):
		if len(m.session.Headers) == 0 {
			return nil
		}
		if err := m.session.RemoveHeader(m.headerRow); err != nil {
			return m.reportError(err)
		}
		m.loadCell()
		return nil
	case key.Matches(msg, m.keys.Suggestion):
		if len(m.suggestions) == 0 {
			return nil
		}
		m.cellInput.SetValue(m.suggestions[0])
		m.cellInput.CursorEnd()
		if err := m.writeHeaderCell(m.suggestions[0]); err != nil {
			return m.reportError(err)
		}
		m.suggestions = nil
		return nil
	}

	if len(m.session.Headers) == 0 {
		return nil
	}

	var cmd tea.Cmd
	before := m.cellInput.Value()
	m.cellInput, cmd = m.cellInput.Update(msg)
	if after := m.cellInput.Value(); after != before {
		if err := m.writeHeaderCell(after); err != nil {
			return m.reportError(err)
		}
		m.refreshSuggestions()
	}
	return cmd
}

func (m *Model) writeHeaderCell(value string) error {
	h := m.session.Headers[m.headerRow]
	if m.headerCol == 0 {
		h.Name = value
	} else {
		h.Value = value
	}
	return m.session.SetHeader(m.headerRow, h.Name, h.Value)
}

// renderHeaders renders the header rows and, while a name is being typed, the suggestions
func (m *Model) renderHeaders(width int) string {
	if len(m.session.Headers) == 0 {
		return styleSubtle.Render("No headers - ctrl+a to add a row")
	}

	nameWidth := max(14, (width-2)/3)
	valueWidth := max(10, width-nameWidth-3)

	var b strings.Builder
	b.WriteString(styleSubtle.Render(fitCell("Name", nameWidth) + " " + fitCell("Value", valueWidth)))

	for i, h := range m.session.Headers {
		name := fitCell(h.Name, nameWidth)
		value := fitCell(h.Value, valueWidth)
		if i == m.headerRow && m.focus == FocusTab {
			if m.headerCol == 0 {
				name = styleSelected.Render(fitCell(m.cellInput.View(), nameWidth))
			} else {
				value = styleSelected.Render(fitCell(m.cellInput.View(), valueWidth))
			}
		}
		b.WriteString("\n")
		b.WriteString(name + " " + value)
	}

	if len(m.suggestions) > 0 && m.focus == FocusTab {
		b.WriteString("\n")
		b.WriteString(styleSubtle.Render("ctrl+t: ") + styleTitle.Render(m.suggestions[0]))
		if len(m.suggestions) > 1 {
			b.WriteString(styleSubtle.Render("  " + strings.Join(m.suggestions[1:], "  ")))
		}
	}

	return b.String()
}

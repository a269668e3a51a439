package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/studiowebux/mensajero/internal/executor"
	"github.com/studiowebux/mensajero/internal/types"
)

// Adaptive color definitions for light/dark terminal support
var (
	colorGreen  = lipgloss.AdaptiveColor{Light: "#006400", Dark: "#00ff00"}
	colorRed    = lipgloss.AdaptiveColor{Light: "#8b0000", Dark: "#ff0000"}
	colorYellow = lipgloss.AdaptiveColor{Light: "#b8860b", Dark: "#ffff00"}
	colorBlue   = lipgloss.AdaptiveColor{Light: "#00008b", Dark: "#5f87ff"}
	colorGray   = lipgloss.AdaptiveColor{Light: "#555555", Dark: "#888888"}
	colorCyan   = lipgloss.AdaptiveColor{Light: "#008b8b", Dark: "#00ffff"}
)

// Style definitions
var (
	styleTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorCyan)

	styleSelected = lipgloss.NewStyle().
			Background(lipgloss.AdaptiveColor{Light: "#d3d3d3", Dark: "#3a3a3a"}).
			Foreground(lipgloss.AdaptiveColor{Light: "#000000", Dark: "#ffffff"})

	styleSuccess = lipgloss.NewStyle().
			Foreground(colorGreen)

	styleError = lipgloss.NewStyle().
			Foreground(colorRed)

	styleWarning = lipgloss.NewStyle().
			Foreground(colorYellow)

	styleSubtle = lipgloss.NewStyle().
			Foreground(colorGray)

	styleActiveTab = lipgloss.NewStyle().
			Bold(true).
			Underline(true).
			Foreground(colorCyan)

	styleInactiveTab = lipgloss.NewStyle().
				Foreground(colorGray)
)

var methodColors = map[string]lipgloss.AdaptiveColor{
	types.MethodGet:    colorGreen,
	types.MethodPost:   colorYellow,
	types.MethodPut:    colorBlue,
	types.MethodDelete: colorRed,
}

// renderMain renders the request panel above the response panel
func (m *Model) renderMain() string {
	if m.width == 0 {
		return ""
	}

	innerWidth := m.width - MinimalBorderMargin*2

	title := styleTitle.Render("Mensajero") + "  " + styleSubtle.Render("minimal REST client")

	request := lipgloss.JoinVertical(
		lipgloss.Left,
		m.renderMethodLine(innerWidth),
		m.renderTabBar(),
		m.renderTabContent(innerWidth),
	)
	requestBox := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(m.borderColor(m.focus != FocusResponse)).
		Width(m.width - MinimalBorderMargin).
		Render(request)

	response := lipgloss.JoinVertical(
		lipgloss.Left,
		m.renderResponseHeader(),
		m.responseView.View(),
	)
	responseBox := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(m.borderColor(m.focus == FocusResponse)).
		Width(m.width - MinimalBorderMargin).
		Render(response)

	return lipgloss.JoinVertical(
		lipgloss.Left,
		title,
		requestBox,
		responseBox,
		m.renderStatusBar(),
	)
}

func (m *Model) borderColor(focused bool) lipgloss.AdaptiveColor {
	if focused {
		return colorGreen
	}
	return colorGray
}

func (m *Model) renderMethodLine(width int) string {
	method := m.session.Method
	badge := lipgloss.NewStyle().
		Bold(true).
		Foreground(methodColors[method]).
		Render(fmt.Sprintf("%-6s", method))

	url := m.urlInput.View()
	if m.focus != FocusURL && m.urlInput.Value() != "" {
		url = fitCell(m.urlInput.Value(), max(10, width-9))
	}
	return badge + " │ " + url
}

func (m *Model) renderTabBar() string {
	tabs := make([]string, 0, tabCount)
	for t := Tab(0); t < tabCount; t++ {
		name := t.String()
		if t == TabBody && !m.session.BodyEnabled() {
			name = styleSubtle.Strikethrough(true).Render(name)
		}
		if t == m.tab {
			tabs = append(tabs, styleActiveTab.Render(name))
		} else {
			tabs = append(tabs, styleInactiveTab.Render(name))
		}
	}
	return strings.Join(tabs, styleSubtle.Render(" │ "))
}

func (m *Model) renderTabContent(width int) string {
	var content string
	switch m.tab {
	case TabParams:
		content = m.renderParams(width)
	case TabHeaders:
		content = m.renderHeaders(width)
	case TabBody:
		if m.session.BodyEnabled() {
			content = m.bodyInput.View()
		} else {
			content = styleSubtle.Render("Body available only for POST or PUT")
		}
	case TabAuth:
		content = "Bearer " + m.authInput.View()
	}

	return lipgloss.NewStyle().
		Height(RequestPanelLines).
		MaxHeight(RequestPanelLines).
		Render(content)
}

func (m *Model) renderResponseHeader() string {
	if m.loading {
		return m.spinner.View() + styleWarning.Render(" Sending...")
	}

	out := m.session.Outcome
	if out == nil {
		return styleSubtle.Render("Response")
	}

	status := statusStyle(out).Render(out.Status)
	meta := styleSubtle.Render(fmt.Sprintf("  %s  %s",
		executor.FormatDuration(out.Duration),
		executor.FormatSize(out.ResponseSize)))
	return status + meta
}

func statusStyle(out *types.ResponseOutcome) lipgloss.Style {
	switch {
	case out.Failed():
		return styleError.Bold(true)
	case executor.IsSuccessStatus(out.StatusCode):
		return styleSuccess.Bold(true)
	case executor.IsServerErrorStatus(out.StatusCode):
		return styleError.Bold(true)
	default:
		return styleWarning.Bold(true)
	}
}

// updateResponseView refreshes the response viewport content
func (m *Model) updateResponseView() {
	out := m.session.Outcome

	var content string
	switch {
	case out == nil && m.loading:
		content = styleSubtle.Render("Waiting for response...")
	case out == nil:
		content = styleSubtle.Render("Press ctrl+s to send the request")
	case out.Failed():
		content = styleError.Render(out.Body)
	default:
		content = highlight(out.Body, out.Headers["Content-Type"])
	}

	if m.responseView.Width > 0 {
		content = lipgloss.NewStyle().Width(m.responseView.Width).Render(content)
	}
	m.responseView.SetContent(content)
	m.responseView.GotoTop()
}

// updateLayout resizes widgets after a window change
func (m *Model) updateLayout() {
	inner := m.width - MinimalBorderMargin*2

	m.urlInput.Width = max(10, inner-10)
	m.cellInput.Width = max(10, inner/2)
	m.authInput.Width = max(10, inner-8)
	m.bodyInput.SetWidth(max(10, inner))
	m.bodyInput.SetHeight(RequestPanelLines)
	m.help.Width = m.width

	m.responseView.Width = max(10, inner)
	m.responseView.Height = max(MinResponseLines, m.height-ChromeLines-RequestPanelLines)

	m.updateResponseView()
}

// renderStatusBar renders the status bar at the bottom
func (m *Model) renderStatusBar() string {
	left := m.help.View(m.keys)

	right := ""
	if m.errorMsg != "" {
		right = styleError.Render(truncate(m.errorMsg, MaxStatusLength))
	} else if m.statusMsg != "" {
		if strings.Contains(m.statusMsg, "copied") || strings.Contains(m.statusMsg, "completed") {
			right = styleSuccess.Render(truncate(m.statusMsg, MaxStatusLength))
		} else {
			right = truncate(m.statusMsg, MaxStatusLength)
		}
	}

	spacing := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if spacing < 1 {
		spacing = 1
	}

	return left + strings.Repeat(" ", spacing) + right
}

// fitCell renders s on one line, truncated or padded to width
func fitCell(s string, width int) string {
	s = lipgloss.NewStyle().Inline(true).MaxWidth(width).Render(s)
	if pad := width - lipgloss.Width(s); pad > 0 {
		s += strings.Repeat(" ", pad)
	}
	return s
}

func truncate(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return string(runes[:maxLen])
	}
	return string(runes[:maxLen-3]) + "..."
}

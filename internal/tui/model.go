package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/studiowebux/mensajero/internal/session"
	"github.com/studiowebux/mensajero/internal/types"
)

// Focus is the screen area receiving key input
type Focus int

const (
	FocusURL Focus = iota
	FocusTab
	FocusResponse
	focusCount
)

// Tab is one of the request editor tabs
type Tab int

const (
	TabParams Tab = iota
	TabHeaders
	TabBody
	TabAuth
	tabCount
)

var tabNames = []string{"Params", "Headers", "Body", "Authorization"}

func (t Tab) String() string {
	if t < 0 || t >= tabCount {
		return "Unknown"
	}
	return tabNames[t]
}

// Model is the bubbletea model for the request editor
type Model struct {
	session    *session.Session
	dispatcher session.Executor
	log        *zap.SugaredLogger

	focus Focus
	tab   Tab

	urlInput  textinput.Model
	cellInput textinput.Model // edits the selected params or headers cell
	bodyInput textarea.Model
	authInput textinput.Model

	paramRow  int
	paramCol  int // 0=key 1=value 2=note
	headerRow int
	headerCol int // 0=name 1=value

	suggestions []string // header name suggestions for the cell being edited

	responseView viewport.Model
	spinner      spinner.Model
	help         help.Model
	keys         keyMap

	loading   bool
	statusMsg string
	errorMsg  string

	width  int
	height int
}

// Init starts the cursor blink
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages and updates the model
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		cmd = m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateLayout()

	case responseMsg:
		m.loading = false
		m.session.Outcome = msg.outcome
		if msg.outcome.Failed() {
			m.statusMsg = ""
			m.errorMsg = "Request failed"
		} else {
			m.errorMsg = ""
			m.statusMsg = "Request completed"
		}
		m.log.Debugw("outcome received",
			"requestId", msg.outcome.RequestID,
			"status", msg.outcome.Status,
		)
		m.updateResponseView()

	case spinner.TickMsg:
		if m.loading {
			m.spinner, cmd = m.spinner.Update(msg)
		}

	case statusMsg:
		m.errorMsg = ""
		m.statusMsg = string(msg)

	case errorMsg:
		m.statusMsg = ""
		m.errorMsg = string(msg)
	}

	return m, cmd
}

// View renders the model
func (m *Model) View() string {
	return m.renderMain()
}

// Outcome returns the last response, or nil before the first send
func (m *Model) Outcome() *types.ResponseOutcome {
	return m.session.Outcome
}

// Custom message types
type responseMsg struct {
	outcome *types.ResponseOutcome
}

type statusMsg string

type errorMsg string

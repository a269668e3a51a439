package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/studiowebux/mensajero/internal/config"
	"github.com/studiowebux/mensajero/internal/executor"
	"github.com/studiowebux/mensajero/internal/session"
)

// New creates a new TUI model around s. d performs the requests.
func New(s *session.Session, d session.Executor, log *zap.SugaredLogger) *Model {
	if log == nil {
		log = zap.NewNop().Sugar()
	}

	urlInput := textinput.New()
	urlInput.Placeholder = "https://api.example.com/endpoint"
	urlInput.Prompt = ""
	urlInput.SetValue(s.URL)
	urlInput.Focus()

	cellInput := textinput.New()
	cellInput.Prompt = ""

	bodyInput := textarea.New()
	bodyInput.Placeholder = "{\n  \"key\": \"value\"\n}"
	bodyInput.ShowLineNumbers = false
	bodyInput.CharLimit = 0
	bodyInput.SetValue(s.Body)

	authInput := textinput.New()
	authInput.Placeholder = "token (sent as Authorization: Bearer <token>)"
	authInput.Prompt = ""
	authInput.SetValue(s.AuthToken)

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = styleWarning

	m := &Model{
		session:      s,
		dispatcher:   d,
		log:          log,
		focus:        FocusURL,
		tab:          TabParams,
		urlInput:     urlInput,
		cellInput:    cellInput,
		bodyInput:    bodyInput,
		authInput:    authInput,
		responseView: viewport.New(80, 10),
		spinner:      sp,
		help:         help.New(),
		keys:         defaultKeyMap(),
	}
	m.loadCell()
	m.updateResponseView()

	return m
}

// Run starts the TUI
func Run(cfg *config.Config, log *zap.SugaredLogger) error {
	s := session.New(cfg)
	d := executor.New(executor.WithLogger(log))

	m := New(s, d, log)

	// Pass pointer since Update uses pointer receiver
	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return err
	}

	return nil
}

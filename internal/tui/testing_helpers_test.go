package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/studiowebux/mensajero/internal/config"
	"github.com/studiowebux/mensajero/internal/session"
	"github.com/studiowebux/mensajero/internal/types"
)

// stubExecutor records specs and answers with a canned outcome
type stubExecutor struct {
	specs   []*types.RequestSpec
	outcome types.ResponseOutcome
}

func (s *stubExecutor) Execute(spec *types.RequestSpec) *types.ResponseOutcome {
	s.specs = append(s.specs, spec)
	out := s.outcome
	return &out
}

// CreateTestModel creates a sized Model backed by a stub executor
func CreateTestModel(t *testing.T) (*Model, *stubExecutor) {
	t.Helper()

	exec := &stubExecutor{
		outcome: types.ResponseOutcome{
			RequestID:  "test",
			State:      types.StateCompleted,
			Status:     "200 OK",
			StatusCode: 200,
			Headers:    map[string]string{"Content-Type": "application/json"},
			Body:       "{\n  \"ok\": true\n}",
		},
	}

	m := New(session.New(config.Default()), exec, nil)
	m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})

	return m, exec
}

// press feeds a key to the model and returns the resulting command
func press(t *testing.T, m *Model, k tea.KeyMsg) tea.Cmd {
	t.Helper()
	_, cmd := m.Update(k)
	return cmd
}

// typeText feeds each rune as a key press
func typeText(t *testing.T, m *Model, text string) {
	t.Helper()
	for _, r := range text {
		m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

func keyOf(kt tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: kt}
}

// AssertModelField is a generic helper for checking model field values
func AssertModelField[T comparable](t *testing.T, fieldName string, got, want T) {
	t.Helper()
	if got != want {
		t.Errorf("%s = %v, want %v", fieldName, got, want)
	}
}

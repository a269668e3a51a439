package version

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/studiowebux/mensajero/internal/executor"
	"github.com/studiowebux/mensajero/internal/session"
	"github.com/studiowebux/mensajero/internal/types"
)

func TestIsNewerVersion(t *testing.T) {
	tests := []struct {
		name     string
		latest   string
		current  string
		expected bool
	}{
		{"same version", "0.1.0", "0.1.0", false},
		{"patch upgrade", "0.1.1", "0.1.0", true},
		{"patch downgrade", "0.1.0", "0.1.1", false},
		{"minor upgrade", "0.2.0", "0.1.9", true},
		{"major upgrade", "1.0.0", "0.9.9", true},
		{"multi-digit patch", "0.0.100", "0.0.99", true},
		{"different lengths v1", "1.0", "0.1.0", true},
		{"different lengths v2", "0.1.0", "1.0", false},
		{"pre-release same base", "0.1.0-rc1", "0.1.0", false},
		{"build metadata", "0.1.1+build7", "0.1.0", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isNewerVersion(tt.latest, tt.current); got != tt.expected {
				t.Errorf("isNewerVersion(%q, %q) = %v, want %v", tt.latest, tt.current, got, tt.expected)
			}
		})
	}
}

func TestCheckForUpdate(t *testing.T) {
	var userAgent string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userAgent = r.Header.Get("User-Agent")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"tag_name":"v0.2.0","html_url":"https://example.com/r/0.2.0"}`))
	}))
	defer srv.Close()

	update, err := CheckForUpdate(executor.New(), srv.URL, "v0.1.0")
	if err != nil {
		t.Fatalf("CheckForUpdate: %v", err)
	}
	if !update.Available || update.Latest != "0.2.0" || update.URL != "https://example.com/r/0.2.0" {
		t.Errorf("update = %+v", update)
	}
	if userAgent != "mensajero/v0.1.0" {
		t.Errorf("User-Agent = %q", userAgent)
	}
}

var (
	_ session.Executor = (*executor.Dispatcher)(nil)
	_ session.Executor = stubExecutor{}
)

type stubExecutor struct {
	out *types.ResponseOutcome
}

func (s stubExecutor) Execute(*types.RequestSpec) *types.ResponseOutcome {
	return s.out
}

func TestCheckForUpdate_Errors(t *testing.T) {
	tests := []struct {
		name string
		out  *types.ResponseOutcome
		want string
	}{
		{"no outcome", nil, "no response"},
		{"transport failure", &types.ResponseOutcome{State: types.StateFailed, Status: types.StatusError, Body: "Error: timeout"}, "failed to fetch"},
		{"not found", &types.ResponseOutcome{State: types.StateCompleted, StatusCode: 404, Status: "404 Not Found"}, "unexpected status code: 404"},
		{"bad payload", &types.ResponseOutcome{State: types.StateCompleted, StatusCode: 200, Body: "<html>"}, "failed to decode"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := CheckForUpdate(stubExecutor{out: tt.out}, "http://unused", Version)
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("err = %v, want it to contain %q", err, tt.want)
			}
		})
	}
}

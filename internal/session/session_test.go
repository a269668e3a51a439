package session

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/studiowebux/mensajero/internal/config"
	"github.com/studiowebux/mensajero/internal/executor"
	"github.com/studiowebux/mensajero/internal/types"
)

type recordingExecutor struct {
	specs []*types.RequestSpec
}

func (r *recordingExecutor) Execute(spec *types.RequestSpec) *types.ResponseOutcome {
	r.specs = append(r.specs, spec)
	return &types.ResponseOutcome{Status: "200 OK", StatusCode: 200, Body: spec.URL}
}

func TestNew_Defaults(t *testing.T) {
	s := New(nil)

	if s.Method != types.MethodGet {
		t.Errorf("Method = %q, want GET", s.Method)
	}
	if s.URL != "" {
		t.Errorf("URL = %q, want empty", s.URL)
	}
	if len(s.Params) != config.DefaultParamSlots {
		t.Errorf("len(Params) = %d, want %d", len(s.Params), config.DefaultParamSlots)
	}
	headers := s.HeaderMap()
	want := map[string]string{
		"Content-Type":  "application/json",
		"Accept":        "application/json",
		"User-Agent":    "Mensajero v0.1",
		"Cache-Control": "no-cache",
		"Connection":    "keep-alive",
	}
	for k, v := range want {
		if headers[k] != v {
			t.Errorf("header %s = %q, want %q", k, headers[k], v)
		}
	}
	if s.Outcome != nil {
		t.Error("new session should have no outcome")
	}
}

func TestParamEdits_ResyncURL(t *testing.T) {
	s := New(config.Default())
	s.SetURL("http://x/api")

	url, err := s.SetParam(0, "a", "1")
	if err != nil {
		t.Fatal(err)
	}
	if url != "http://x/api?a=1" {
		t.Errorf("after first param url = %q", url)
	}

	url, _ = s.SetParam(2, "flag", "")
	if url != "http://x/api?a=1&flag" {
		t.Errorf("after bare key url = %q", url)
	}

	if err := s.SetParamNote(0, "page size"); err != nil {
		t.Fatal(err)
	}
	if s.URL != "http://x/api?a=1&flag" {
		t.Errorf("note changed url to %q", s.URL)
	}

	url, _ = s.RemoveParam(0)
	if url != "http://x/api?flag" {
		t.Errorf("after remove url = %q", url)
	}
	if len(s.Params) != config.DefaultParamSlots-1 {
		t.Errorf("len(Params) = %d", len(s.Params))
	}

	s.AddParam()
	if len(s.Params) != config.DefaultParamSlots {
		t.Errorf("AddParam did not grow table: %d", len(s.Params))
	}
}

func TestSetParam_OutOfRange(t *testing.T) {
	s := New(nil)
	s.SetURL("http://x?keep=1")

	if _, err := s.SetParam(99, "k", "v"); err == nil {
		t.Error("expected out of range error")
	}
	if _, err := s.RemoveParam(-1); err == nil {
		t.Error("expected out of range error")
	}
	if s.URL != "http://x?keep=1" {
		t.Errorf("url changed on failed edit: %q", s.URL)
	}
}

func TestSetURL_RefreshesParams(t *testing.T) {
	s := New(nil)
	_ = s.SetParamNote(1, "second")

	s.SetURL("http://x?a=1&b")

	if s.Params[0].Key != "a" || s.Params[0].Value != "1" {
		t.Errorf("row 0 = %+v", s.Params[0])
	}
	if s.Params[1].Key != "b" || s.Params[1].Value != "" || s.Params[1].Note != "second" {
		t.Errorf("row 1 = %+v", s.Params[1])
	}
	if len(s.Params) != config.DefaultParamSlots {
		t.Errorf("param table shrank to %d", len(s.Params))
	}
}

func TestEncodeQuery(t *testing.T) {
	cfg := config.Default()
	cfg.EncodeQuery = true
	s := New(cfg)
	s.SetURL("http://x")

	url, _ := s.SetParam(0, "q", "a b")
	if url != "http://x?q=a+b" {
		t.Errorf("url = %q", url)
	}
}

func TestEncodeQuery_URLEditKeepsValues(t *testing.T) {
	cfg := config.Default()
	cfg.EncodeQuery = true
	s := New(cfg)

	s.SetURL("http://x?q=a+b")
	if s.Params[0].Value != "a b" {
		t.Fatalf("param value = %q, want %q", s.Params[0].Value, "a b")
	}

	url, err := s.SetParam(1, "k", "v")
	if err != nil {
		t.Fatalf("SetParam: %v", err)
	}
	if url != "http://x?q=a+b&k=v" {
		t.Errorf("url = %q, want %q", url, "http://x?q=a+b&k=v")
	}

	// Repeated edits must not escape again
	s.SetURL(url)
	if again, _ := s.SetParam(1, "k", "v"); again != url {
		t.Errorf("url after second edit = %q, want %q", again, url)
	}
}

func TestCycleMethod(t *testing.T) {
	s := New(nil)
	got := []string{s.CycleMethod(), s.CycleMethod(), s.CycleMethod(), s.CycleMethod()}
	want := []string{"POST", "PUT", "DELETE", "GET"}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("cycle %d = %q, want %q", i, got[i], want[i])
		}
	}

	if err := s.SetMethod("PATCH"); err == nil {
		t.Error("SetMethod(PATCH) should fail")
	}
	if s.Method != "GET" {
		t.Errorf("failed SetMethod changed method to %q", s.Method)
	}
}

func TestHeaderRows(t *testing.T) {
	s := New(nil)
	s.Headers = nil
	s.AddHeader("X-Trace", "1")
	s.AddHeader("  ", "ignored")
	s.AddHeader("x-trace", "2")

	headers := s.HeaderMap()
	if len(headers) != 1 || headers["X-Trace"] != "2" {
		t.Errorf("HeaderMap() = %v", headers)
	}

	if err := s.SetHeader(0, "X-Other", "a"); err != nil {
		t.Fatal(err)
	}
	if err := s.RemoveHeader(1); err != nil {
		t.Fatal(err)
	}
	if err := s.RemoveHeader(5); err == nil {
		t.Error("expected out of range error")
	}
	if len(s.Headers) != 2 || s.Headers[0].Name != "X-Other" || s.Headers[1].Name != "x-trace" {
		t.Errorf("Headers = %+v", s.Headers)
	}
}

func TestBuildSpec(t *testing.T) {
	tests := []struct {
		name     string
		method   string
		token    string
		wantBody bool
		wantAuth string
	}{
		{name: "get has no body", method: "GET"},
		{name: "delete has no body", method: "DELETE"},
		{name: "post has body", method: "POST", wantBody: true},
		{name: "put has body", method: "PUT", wantBody: true},
		{name: "token becomes bearer", method: "GET", token: "abc", wantAuth: "Bearer abc"},
		{name: "bearer prefix tolerated", method: "GET", token: "bearer abc", wantAuth: "Bearer abc"},
		{name: "blank token ignored", method: "GET", token: "   "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New(nil)
			s.Method = tt.method
			s.URL = "http://x"
			s.Body = `{"a":1}`
			s.AuthToken = tt.token
			s.AddHeader("authorization", "Basic old")

			spec := s.BuildSpec()

			if (spec.Body != nil) != tt.wantBody {
				t.Errorf("Body set = %v, want %v", spec.Body != nil, tt.wantBody)
			}
			if tt.wantBody && *spec.Body != `{"a":1}` {
				t.Errorf("Body = %q", *spec.Body)
			}
			if tt.wantAuth != "" {
				if spec.Headers["Authorization"] != tt.wantAuth {
					t.Errorf("Authorization = %q, want %q", spec.Headers["Authorization"], tt.wantAuth)
				}
			} else if spec.Headers["Authorization"] != "Basic old" {
				t.Errorf("caller authorization header lost: %v", spec.Headers)
			}
		})
	}
}

func TestSend_ReplacesOutcome(t *testing.T) {
	s := New(nil)
	exec := &recordingExecutor{}

	s.URL = "http://x/one"
	first := s.Send(exec)
	s.URL = "http://x/two"
	second := s.Send(exec)

	if first == second {
		t.Fatal("Send should produce a fresh outcome")
	}
	if s.Outcome != second || s.Outcome.Body != "http://x/two" {
		t.Errorf("Outcome = %+v", s.Outcome)
	}
	if len(exec.specs) != 2 || exec.specs[0] == exec.specs[1] {
		t.Error("each send should build a fresh spec")
	}
}

func TestSend_EndToEnd(t *testing.T) {
	var gotQuery, gotAuth, gotBody string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		gotAuth = r.Header.Get("Authorization")
		b, _ := io.ReadAll(r.Body)
		gotBody = string(b)
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":7}`))
	}))
	t.Cleanup(server.Close)

	s := New(nil)
	s.SetURL(server.URL + "/users")
	_, _ = s.SetParam(0, "verbose", "")
	_ = s.SetMethod("POST")
	s.Body = `{"name":"John"}`
	s.AuthToken = "tok"

	out := s.Send(executor.New())

	if out.Status != "201 Created" {
		t.Errorf("Status = %q, want 201 Created", out.Status)
	}
	if out.Body != "{\n  \"id\": 7\n}" {
		t.Errorf("Body = %q", out.Body)
	}
	if gotQuery != "verbose" || gotAuth != "Bearer tok" || gotBody != `{"name":"John"}` {
		t.Errorf("server saw query=%q auth=%q body=%q", gotQuery, gotAuth, gotBody)
	}
}

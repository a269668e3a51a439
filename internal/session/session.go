package session

import (
	"fmt"
	"net/http"
	"strings"

	"golang.org/x/oauth2"

	"github.com/studiowebux/mensajero/internal/config"
	"github.com/studiowebux/mensajero/internal/params"
	"github.com/studiowebux/mensajero/internal/types"
)

// Header is one editable row of the headers table
type Header struct {
	Name  string
	Value string
}

// Executor performs an assembled request
type Executor interface {
	Execute(spec *types.RequestSpec) *types.ResponseOutcome
}

// Session is the editable request state behind a front end. It is owned by a
// single goroutine (the UI loop or a CLI invocation) and is not locked.
type Session struct {
	Method    string
	URL       string
	Params    []types.QueryParam
	Headers   []Header
	Body      string
	AuthToken string

	// Outcome is replaced on every Send
	Outcome *types.ResponseOutcome

	syncer params.Syncer
}

// DefaultHeaders returns the header rows a new session starts with
func DefaultHeaders(userAgent string) []Header {
	if userAgent == "" {
		userAgent = config.DefaultUserAgent
	}
	return []Header{
		{Name: "Content-Type", Value: "application/json"},
		{Name: "Accept", Value: "application/json"},
		{Name: "User-Agent", Value: userAgent},
		{Name: "Cache-Control", Value: "no-cache"},
		{Name: "Connection", Value: "keep-alive"},
	}
}

// New creates a session with the configured number of empty param slots
func New(cfg *config.Config) *Session {
	if cfg == nil {
		cfg = config.Default()
	}
	slots := cfg.ParamSlots
	if slots <= 0 {
		slots = config.DefaultParamSlots
	}

	return &Session{
		Method:  types.MethodGet,
		Params:  make([]types.QueryParam, slots),
		Headers: DefaultHeaders(cfg.UserAgent),
		syncer:  params.Syncer{Encode: cfg.EncodeQuery},
	}
}

// SetMethod selects one of the supported methods
func (s *Session) SetMethod(method string) error {
	if !types.IsValidMethod(method) {
		return fmt.Errorf("unsupported method %q", method)
	}
	s.Method = method
	return nil
}

// CycleMethod moves to the next method in selector order and returns it
func (s *Session) CycleMethod() string {
	next := 0
	for i, m := range types.Methods {
		if m == s.Method {
			next = (i + 1) % len(types.Methods)
			break
		}
	}
	s.Method = types.Methods[next]
	return s.Method
}

// BodyEnabled reports whether the current method sends the body
func (s *Session) BodyEnabled() bool {
	return types.MethodAllowsBody(s.Method)
}

// SetURL replaces the URL as typed and refreshes the param table from its query.
// The URL itself is kept verbatim until the next param edit.
func (s *Session) SetURL(rawURL string) {
	s.URL = rawURL
	s.Params = params.Merge(s.Params, s.syncer.Parse(rawURL))
}

// SetParam edits the key and value of row i and returns the resynced URL
func (s *Session) SetParam(i int, key, value string) (string, error) {
	if i < 0 || i >= len(s.Params) {
		return s.URL, fmt.Errorf("param row %d out of range (0-%d)", i, len(s.Params)-1)
	}
	s.Params[i].Key = key
	s.Params[i].Value = value
	return s.syncURL(), nil
}

// SetParamNote edits the note of row i. Notes never reach the URL.
func (s *Session) SetParamNote(i int, note string) error {
	if i < 0 || i >= len(s.Params) {
		return fmt.Errorf("param row %d out of range (0-%d)", i, len(s.Params)-1)
	}
	s.Params[i].Note = note
	return nil
}

// AddParam appends an empty row
func (s *Session) AddParam() {
	s.Params = append(s.Params, types.QueryParam{})
}

// RemoveParam deletes row i and returns the resynced URL
func (s *Session) RemoveParam(i int) (string, error) {
	if i < 0 || i >= len(s.Params) {
		return s.URL, fmt.Errorf("param row %d out of range (0-%d)", i, len(s.Params)-1)
	}
	s.Params = append(s.Params[:i], s.Params[i+1:]...)
	return s.syncURL(), nil
}

func (s *Session) syncURL() string {
	s.URL = s.syncer.Sync(s.URL, s.Params)
	return s.URL
}

// SetHeader edits row i of the headers table
func (s *Session) SetHeader(i int, name, value string) error {
	if i < 0 || i >= len(s.Headers) {
		return fmt.Errorf("header row %d out of range (0-%d)", i, len(s.Headers)-1)
	}
	s.Headers[i] = Header{Name: name, Value: value}
	return nil
}

// AddHeader appends a header row
func (s *Session) AddHeader(name, value string) {
	s.Headers = append(s.Headers, Header{Name: name, Value: value})
}

// RemoveHeader deletes row i
func (s *Session) RemoveHeader(i int) error {
	if i < 0 || i >= len(s.Headers) {
		return fmt.Errorf("header row %d out of range (0-%d)", i, len(s.Headers)-1)
	}
	s.Headers = append(s.Headers[:i], s.Headers[i+1:]...)
	return nil
}

// HeaderMap folds the header rows into a map keyed by canonical name. Blank
// names are skipped and the last row wins for a repeated name.
func (s *Session) HeaderMap() map[string]string {
	headers := make(map[string]string, len(s.Headers)+1)
	for _, h := range s.Headers {
		name := strings.TrimSpace(h.Name)
		if name == "" {
			continue
		}
		headers[http.CanonicalHeaderKey(name)] = h.Value
	}
	return headers
}

// BuildSpec assembles a fresh request from the current state. A non-empty auth
// token is merged into the headers as a bearer Authorization entry.
func (s *Session) BuildSpec() *types.RequestSpec {
	spec := &types.RequestSpec{
		Method:  s.Method,
		URL:     s.URL,
		Headers: s.HeaderMap(),
	}

	if token := BearerToken(s.AuthToken); token != nil {
		spec.Headers["Authorization"] = token.Type() + " " + token.AccessToken
		spec.AuthToken = &token.AccessToken
	}

	if s.BodyEnabled() {
		body := s.Body
		spec.Body = &body
	}

	return spec
}

// BearerToken wraps a raw token as an oauth2 bearer token. A leading "Bearer "
// is tolerated; blank input yields nil.
func BearerToken(raw string) *oauth2.Token {
	raw = strings.TrimSpace(raw)
	if len(raw) > 7 && strings.EqualFold(raw[:7], "bearer ") {
		raw = strings.TrimSpace(raw[7:])
	}
	if raw == "" {
		return nil
	}
	return &oauth2.Token{AccessToken: raw, TokenType: "Bearer"}
}

// Send builds a request, executes it and replaces the stored outcome
func (s *Session) Send(exec Executor) *types.ResponseOutcome {
	out := exec.Execute(s.BuildSpec())
	s.Outcome = out
	return out
}

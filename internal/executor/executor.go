package executor

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/studiowebux/mensajero/internal/types"
)

// DefaultTimeout bounds every request, including reading the body
const DefaultTimeout = 30 * time.Second

const contentTypeJSON = "application/json"

// Dispatcher sends one request at a time over a single long-lived HTTP client
type Dispatcher struct {
	client     *resty.Client
	httpClient *http.Client
	timeout    time.Duration
	log        *zap.SugaredLogger
}

// Option configures a Dispatcher
type Option func(*Dispatcher)

// WithHTTPClient sets the underlying HTTP client (transport, redirects)
func WithHTTPClient(hc *http.Client) Option {
	return func(d *Dispatcher) {
		d.httpClient = hc
	}
}

// WithLogger sets the logger used for dispatch and client diagnostics
func WithLogger(log *zap.SugaredLogger) Option {
	return func(d *Dispatcher) {
		if log != nil {
			d.log = log
		}
	}
}

// WithTimeout overrides DefaultTimeout
func WithTimeout(timeout time.Duration) Option {
	return func(d *Dispatcher) {
		if timeout > 0 {
			d.timeout = timeout
		}
	}
}

// New creates a Dispatcher. The HTTP client is created once here and reused by
// every Execute call.
func New(opts ...Option) *Dispatcher {
	d := &Dispatcher{
		timeout: DefaultTimeout,
		log:     zap.NewNop().Sugar(),
	}
	for _, opt := range opts {
		opt(d)
	}

	var client *resty.Client
	if d.httpClient != nil {
		client = resty.NewWithClient(d.httpClient)
	} else {
		client = resty.New()
	}
	client.SetTimeout(d.timeout)
	client.SetRetryCount(0)
	client.SetCookieJar(nil)
	client.SetLogger(d.log)
	d.client = client

	return d
}

// Execute performs spec and decodes the response. It blocks until the exchange
// completes or fails and always returns a populated outcome: failures carry the
// types.StatusError label and a readable message as body.
func (d *Dispatcher) Execute(spec *types.RequestSpec) (out *types.ResponseOutcome) {
	start := time.Now()
	out = &types.ResponseOutcome{
		RequestID: uuid.NewString(),
		State:     types.StateBuilding,
	}

	defer func() {
		if r := recover(); r != nil {
			out = d.fail(out, start, fmt.Errorf("dispatch aborted: %v", r))
		}
	}()

	if spec == nil {
		return d.fail(out, start, ErrNoRequest)
	}
	if !types.IsValidMethod(spec.Method) {
		return d.fail(out, start, fmt.Errorf("%w: %q", ErrInvalidMethod, spec.Method))
	}

	req := d.client.R().SetHeaders(buildHeaders(spec.Headers))
	if types.MethodAllowsBody(spec.Method) {
		body := spec.BodyString()
		req.SetBody(body)
		out.RequestSize = len(body)
	}

	out.State = types.StateInFlight
	resp, err := req.Execute(spec.Method, spec.URL)
	if err != nil {
		return d.fail(out, start, &TransportError{Method: spec.Method, URL: spec.URL, Err: err})
	}

	raw := resp.Body()
	body, decodeErr := DecodeBody(raw)
	if decodeErr != nil {
		d.log.Warnw("response body is not valid UTF-8",
			"requestId", out.RequestID,
			"size", len(raw),
			"error", decodeErr,
		)
	}

	out.State = types.StateCompleted
	out.StatusCode = resp.StatusCode()
	out.Status = statusLabel(resp.Status(), resp.StatusCode())
	out.Headers = flattenHeaders(resp.Header())
	out.Body = body
	out.ResponseSize = len(raw)
	out.Duration = time.Since(start)

	d.log.Debugw("request completed",
		"requestId", out.RequestID,
		"method", spec.Method,
		"url", spec.URL,
		"status", out.Status,
		"duration", out.Duration,
		"responseSize", out.ResponseSize,
	)

	return out
}

// fail turns err into a failed outcome
func (d *Dispatcher) fail(out *types.ResponseOutcome, start time.Time, err error) *types.ResponseOutcome {
	out.State = types.StateFailed
	out.Status = types.StatusError
	out.StatusCode = 0
	out.Headers = nil
	out.Body = failureBody(err)
	out.ResponseSize = 0
	out.Duration = time.Since(start)
	out.Err = err

	d.log.Warnw("request failed",
		"requestId", out.RequestID,
		"error", err,
	)

	return out
}

func failureBody(err error) string {
	msg := "Error: " + Describe(err)
	if detail := err.Error(); !strings.Contains(msg, detail) {
		msg += "\n" + detail
	}
	return msg
}

// buildHeaders canonicalizes caller headers and forces the JSON Accept and
// Content-Type entries over any caller value.
func buildHeaders(in map[string]string) map[string]string {
	out := make(map[string]string, len(in)+2)
	for name, value := range in {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		out[http.CanonicalHeaderKey(name)] = value
	}
	out["Accept"] = contentTypeJSON
	out["Content-Type"] = contentTypeJSON
	return out
}

func flattenHeaders(h http.Header) map[string]string {
	headers := make(map[string]string, len(h))
	for key, values := range h {
		headers[key] = strings.Join(values, ", ")
	}
	return headers
}

func statusLabel(status string, code int) string {
	if status != "" {
		return status
	}
	return fmt.Sprintf("%d %s", code, http.StatusText(code))
}

// FormatDuration formats a duration as "123ms" or "1.23s"
func FormatDuration(d time.Duration) string {
	ms := d.Milliseconds()
	if ms < 1000 {
		return fmt.Sprintf("%dms", ms)
	}
	return fmt.Sprintf("%.2fs", d.Seconds())
}

// FormatSize formats byte size to human-readable string
func FormatSize(bytes int) string {
	if bytes < 1024 {
		return fmt.Sprintf("%dB", bytes)
	}
	if bytes < 1024*1024 {
		return fmt.Sprintf("%.2fKB", float64(bytes)/1024.0)
	}
	return fmt.Sprintf("%.2fMB", float64(bytes)/(1024.0*1024.0))
}

// IsSuccessStatus returns true if status code is 2xx
func IsSuccessStatus(status int) bool {
	return status >= 200 && status < 300
}

// IsClientErrorStatus returns true if status code is 4xx
func IsClientErrorStatus(status int) bool {
	return status >= 400 && status < 500
}

// IsServerErrorStatus returns true if status code is 5xx
func IsServerErrorStatus(status int) bool {
	return status >= 500 && status < 600
}

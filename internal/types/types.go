package types

import "time"

// Supported HTTP methods. Anything else is rejected before a request is built.
const (
	MethodGet    = "GET"
	MethodPost   = "POST"
	MethodPut    = "PUT"
	MethodDelete = "DELETE"
)

// Methods lists the supported methods in selector order
var Methods = []string{MethodGet, MethodPost, MethodPut, MethodDelete}

// StatusError is the status label of an outcome that never reached a response
const StatusError = "Error"

// QueryParam is one row of the params table.
// Note is display-only and never written into the URL.
type QueryParam struct {
	Key   string `json:"key" yaml:"key"`
	Value string `json:"value,omitempty" yaml:"value,omitempty"`
	Note  string `json:"note,omitempty" yaml:"note,omitempty"`
}

// RequestSpec is the fully assembled request handed to the dispatcher.
// It is built fresh for every send.
type RequestSpec struct {
	Method    string            `json:"method" yaml:"method"`
	URL       string            `json:"url" yaml:"url"`
	Headers   map[string]string `json:"headers,omitempty" yaml:"headers,omitempty"`
	Body      *string           `json:"body,omitempty" yaml:"body,omitempty"`
	AuthToken *string           `json:"-" yaml:"-"`
}

// BodyString returns the body or "" when none was set
func (r *RequestSpec) BodyString() string {
	if r == nil || r.Body == nil {
		return ""
	}
	return *r.Body
}

// MethodAllowsBody reports whether a body is sent for the method
func MethodAllowsBody(method string) bool {
	return method == MethodPost || method == MethodPut
}

// IsValidMethod reports whether method is one of the supported methods
func IsValidMethod(method string) bool {
	for _, m := range Methods {
		if m == method {
			return true
		}
	}
	return false
}

// DispatchState tracks a send through its lifecycle
type DispatchState int

const (
	StateIdle DispatchState = iota
	StateBuilding
	StateInFlight
	StateCompleted
	StateFailed
)

func (s DispatchState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateBuilding:
		return "building"
	case StateInFlight:
		return "in-flight"
	case StateCompleted:
		return "completed"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// ResponseOutcome is what every dispatch produces, success or failure.
// Status is the response status line ("200 OK") or StatusError.
type ResponseOutcome struct {
	RequestID    string            `json:"requestId" yaml:"requestId"`
	State        DispatchState     `json:"-" yaml:"-"`
	Status       string            `json:"status" yaml:"status"`
	StatusCode   int               `json:"statusCode,omitempty" yaml:"statusCode,omitempty"`
	Headers      map[string]string `json:"headers,omitempty" yaml:"headers,omitempty"`
	Body         string            `json:"body" yaml:"body"`
	Duration     time.Duration     `json:"duration" yaml:"duration"`
	RequestSize  int               `json:"requestSize" yaml:"requestSize"`
	ResponseSize int               `json:"responseSize" yaml:"responseSize"`
	Err          error             `json:"-" yaml:"-"`
}

// Failed reports whether the outcome carries the error label
func (o *ResponseOutcome) Failed() bool {
	return o == nil || o.Status == StatusError
}

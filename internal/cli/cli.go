package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	"github.com/studiowebux/mensajero/internal/config"
	"github.com/studiowebux/mensajero/internal/executor"
	"github.com/studiowebux/mensajero/internal/filter"
	"github.com/studiowebux/mensajero/internal/session"
)

// SendOptions contains options for sending one request from the command line
type SendOptions struct {
	Method       string
	URL          string
	Query        []string // key=value pairs appended to the param table
	Headers      []string // "Name: value" pairs
	Body         string   // "-" reads stdin
	BodyFile     string   // .json / .jsonc files may carry comments
	Token        string   // bearer token
	OutputFormat string   // text, json, yaml, body; empty picks text on a terminal and body otherwise
	Filter       string   // JMESPath expression applied to a JSON body
	ShowFull     bool

	Stdin  io.Reader
	Stdout io.Writer
}

// Result is the serializable view of an outcome for json and yaml output
type Result struct {
	RequestID    string            `json:"requestId" yaml:"requestId"`
	Method       string            `json:"method" yaml:"method"`
	URL          string            `json:"url" yaml:"url"`
	Status       string            `json:"status" yaml:"status"`
	StatusCode   int               `json:"statusCode,omitempty" yaml:"statusCode,omitempty"`
	Duration     string            `json:"duration" yaml:"duration"`
	ResponseSize int               `json:"responseSize" yaml:"responseSize"`
	Headers      map[string]string `json:"headers,omitempty" yaml:"headers,omitempty"`
	Body         string            `json:"body" yaml:"body"`
	Error        string            `json:"error,omitempty" yaml:"error,omitempty"`
}

// Send builds a request from opts, executes it and prints the outcome.
// It returns an error when the outcome is a failure or the status is 400 or above.
func Send(opts SendOptions, cfg *config.Config, d session.Executor) error {
	if opts.Stdout == nil {
		opts.Stdout = os.Stdout
	}
	if opts.Stdin == nil {
		opts.Stdin = os.Stdin
	}

	s, err := buildSession(opts, cfg)
	if err != nil {
		return err
	}

	out := s.Send(d)

	body := out.Body
	if opts.Filter != "" && !out.Failed() {
		filtered, err := filter.Apply(out.Body, opts.Filter)
		if err != nil {
			return fmt.Errorf("failed to apply filter: %w", err)
		}
		body = filtered
	}

	result := Result{
		RequestID:    out.RequestID,
		Method:       s.Method,
		URL:          s.URL,
		Status:       out.Status,
		StatusCode:   out.StatusCode,
		Duration:     executor.FormatDuration(out.Duration),
		ResponseSize: out.ResponseSize,
		Headers:      out.Headers,
		Body:         body,
	}
	if out.Err != nil {
		result.Error = executor.Describe(out.Err)
	}

	format := opts.OutputFormat
	color := isTerminal(opts.Stdout)
	if format == "" {
		format = "body"
		if color {
			format = "text"
		}
	}

	output, err := formatOutput(&result, format, opts.ShowFull, color)
	if err != nil {
		return fmt.Errorf("failed to format output: %w", err)
	}
	fmt.Fprint(opts.Stdout, output)
	if !strings.HasSuffix(output, "\n") {
		fmt.Fprintln(opts.Stdout)
	}

	if out.Failed() {
		return fmt.Errorf("request failed: %s", result.Error)
	}
	if out.StatusCode >= 400 {
		return fmt.Errorf("request failed with status %s", out.Status)
	}

	return nil
}

func buildSession(opts SendOptions, cfg *config.Config) (*session.Session, error) {
	s := session.New(cfg)

	// Invalid methods are passed through so the dispatcher reports them
	if opts.Method != "" {
		s.Method = opts.Method
	}
	s.SetURL(opts.URL)

	for _, pair := range opts.Query {
		key, value, _ := strings.Cut(pair, "=")
		if key == "" {
			return nil, fmt.Errorf("invalid query param %q (expected key=value)", pair)
		}
		row := freeParamRow(s)
		if _, err := s.SetParam(row, key, value); err != nil {
			return nil, err
		}
	}

	for _, h := range opts.Headers {
		name, value, ok := strings.Cut(h, ":")
		name = strings.TrimSpace(name)
		if !ok || name == "" {
			return nil, fmt.Errorf("invalid header %q (expected 'Name: value')", h)
		}
		s.AddHeader(name, strings.TrimSpace(value))
	}

	body, err := readBody(opts)
	if err != nil {
		return nil, err
	}
	s.Body = body
	s.AuthToken = opts.Token

	return s, nil
}

// freeParamRow returns the first row without a key, growing the table when full
func freeParamRow(s *session.Session) int {
	for i, p := range s.Params {
		if p.Key == "" {
			return i
		}
	}
	s.AddParam()
	return len(s.Params) - 1
}

func readBody(opts SendOptions) (string, error) {
	if opts.Body != "" && opts.BodyFile != "" {
		return "", fmt.Errorf("use either --data or --body-file, not both")
	}

	if opts.BodyFile != "" {
		data, err := os.ReadFile(opts.BodyFile)
		if err != nil {
			return "", fmt.Errorf("failed to read body file: %w", err)
		}
		switch strings.ToLower(filepath.Ext(opts.BodyFile)) {
		case ".json", ".jsonc":
			data = jsonc.ToJSON(data)
		}
		return string(data), nil
	}

	if opts.Body == "-" {
		data, err := io.ReadAll(opts.Stdin)
		if err != nil {
			return "", fmt.Errorf("failed to read body from stdin: %w", err)
		}
		return string(data), nil
	}

	return opts.Body, nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// formatOutput formats the result based on output format
func formatOutput(result *Result, format string, showFull bool, color bool) (string, error) {
	switch format {
	case "json":
		data, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return "", err
		}
		return string(data), nil

	case "yaml":
		data, err := yaml.Marshal(result)
		if err != nil {
			return "", err
		}
		return string(data), nil

	case "body":
		return result.Body, nil

	case "text":
		var sb strings.Builder

		statusColor, reset := "", ""
		if color {
			statusColor, reset = getStatusColor(result.StatusCode), colorReset
		}
		sb.WriteString(fmt.Sprintf("%s%s%s\n", statusColor, result.Status, reset))
		sb.WriteString(fmt.Sprintf("Duration: %s | Size: %s\n",
			result.Duration,
			executor.FormatSize(result.ResponseSize)))

		if showFull {
			sb.WriteString(fmt.Sprintf("Request: %s %s\n", result.Method, result.URL))
			if len(result.Headers) > 0 {
				sb.WriteString("\nHeaders:\n")
				keys := make([]string, 0, len(result.Headers))
				for key := range result.Headers {
					keys = append(keys, key)
				}
				sort.Strings(keys)
				for _, key := range keys {
					sb.WriteString(fmt.Sprintf("  %s: %s\n", key, result.Headers[key]))
				}
			}
		}

		if result.Body != "" {
			if showFull {
				sb.WriteString("\nBody:\n")
			} else {
				sb.WriteString("\n")
			}
			sb.WriteString(result.Body)
			sb.WriteString("\n")
		}

		return sb.String(), nil

	default:
		return "", fmt.Errorf("unknown output format %q (use text, json, yaml or body)", format)
	}
}

// ANSI color codes
const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
)

func getStatusColor(status int) string {
	if executor.IsSuccessStatus(status) {
		return colorGreen
	} else if status >= 400 || status == 0 {
		return colorRed
	}
	return colorYellow
}

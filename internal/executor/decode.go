package executor

import (
	"bytes"
	"encoding/json"

	"golang.org/x/text/encoding"
	"golang.org/x/text/transform"
)

// DecodeBody turns a raw response payload into displayable text.
// Invalid UTF-8 yields a readable decode-error message together with a *DecodeError.
// Valid text that parses as JSON is re-indented; anything else is returned unchanged.
func DecodeBody(raw []byte) (string, error) {
	if _, n, err := transform.Bytes(encoding.UTF8Validator, raw); err != nil {
		derr := &DecodeError{Offset: n, Size: len(raw), Err: err}
		return "Error: " + derr.Error(), derr
	}

	text := string(raw)
	if pretty, ok := PrettyJSON(text); ok {
		return pretty, nil
	}
	return text, nil
}

// PrettyJSON re-indents text with two spaces when it is valid JSON.
// Key order is preserved.
func PrettyJSON(text string) (string, bool) {
	if !json.Valid([]byte(text)) {
		return text, false
	}

	var buf bytes.Buffer
	if err := json.Indent(&buf, []byte(text), "", "  "); err != nil {
		return text, false
	}
	return buf.String(), true
}

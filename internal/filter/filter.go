package filter

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jmespath/go-jmespath"
)

// Apply runs a JMESPath expression against a JSON response body and returns
// the indented result. An empty expression returns the body unchanged.
//
// Examples: items[?status==`active`], [].name, headers."Content-Type"
func Apply(body string, expression string) (string, error) {
	expression = strings.TrimSpace(expression)
	if expression == "" {
		return body, nil
	}

	var data interface{}
	if err := json.Unmarshal([]byte(body), &data); err != nil {
		return "", fmt.Errorf("response body is not JSON: %w", err)
	}

	jp, err := jmespath.Compile(expression)
	if err != nil {
		return "", fmt.Errorf("invalid JMESPath expression '%s': %w", expression, err)
	}

	result, err := jp.Search(data)
	if err != nil {
		return "", fmt.Errorf("JMESPath search failed: %w", err)
	}

	if result == nil {
		return "null", nil
	}

	// Bare strings read better unquoted in a terminal
	if s, ok := result.(string); ok {
		return s, nil
	}

	output, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal result: %w", err)
	}

	return string(output), nil
}

// IsValid checks if an expression is valid JMESPath syntax
func IsValid(expression string) bool {
	_, err := jmespath.Compile(expression)
	return err == nil
}

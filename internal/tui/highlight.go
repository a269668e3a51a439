package tui

import (
	"mime"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"

	"github.com/studiowebux/mensajero/internal/executor"
)

const highlightStyle = "monokai"

// lexerFor picks a lexer from the response content type, falling back to JSON
// detection. Plain text gets no lexer.
func lexerFor(contentType, body string) chroma.Lexer {
	if mediaType, _, err := mime.ParseMediaType(contentType); err == nil {
		if lexer := lexers.MatchMimeType(mediaType); lexer != nil {
			return lexer
		}
	}
	if _, ok := executor.PrettyJSON(body); ok {
		return lexers.Get("json")
	}
	return nil
}

// highlight colors body for the terminal. Any failure returns body unchanged.
func highlight(body, contentType string) string {
	if strings.TrimSpace(body) == "" {
		return body
	}

	lexer := lexerFor(contentType, body)
	if lexer == nil {
		return body
	}
	lexer = chroma.Coalesce(lexer)

	style := styles.Get(highlightStyle)
	if style == nil {
		style = styles.Fallback
	}

	formatter := formatters.Get("terminal256")
	if formatter == nil {
		formatter = formatters.Fallback
	}

	iterator, err := lexer.Tokenise(nil, body)
	if err != nil {
		return body
	}

	var out strings.Builder
	if err := formatter.Format(&out, style, iterator); err != nil {
		return body
	}
	return out.String()
}

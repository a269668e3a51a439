// Package params derives the query string of a URL from an ordered list of
// query params. The list is the source of truth; the URL suffix is a view of it.
package params

import (
	"net/url"
	"strings"

	"github.com/studiowebux/mensajero/internal/types"
)

// Syncer rebuilds URLs from param lists.
// When Encode is false keys and values are written verbatim.
type Syncer struct {
	Encode bool
}

// Sync rebuilds url's query suffix from params without percent-encoding
func Sync(rawURL string, params []types.QueryParam) string {
	return Syncer{}.Sync(rawURL, params)
}

// Sync truncates rawURL at the first '?' and appends one entry per param with a
// non-empty key, in order. A param with an empty value is written as a bare key.
func (s Syncer) Sync(rawURL string, params []types.QueryParam) string {
	var sb strings.Builder
	sb.WriteString(Base(rawURL))

	first := true
	for _, p := range params {
		if p.Key == "" {
			continue
		}
		if first {
			sb.WriteByte('?')
			first = false
		} else {
			sb.WriteByte('&')
		}
		sb.WriteString(s.escape(p.Key))
		if p.Value != "" {
			sb.WriteByte('=')
			sb.WriteString(s.escape(p.Value))
		}
	}

	return sb.String()
}

func (s Syncer) escape(v string) string {
	if !s.Encode {
		return v
	}
	return url.QueryEscape(v)
}

// Base returns rawURL up to (not including) the first '?'
func Base(rawURL string) string {
	if i := strings.IndexByte(rawURL, '?'); i >= 0 {
		return rawURL[:i]
	}
	return rawURL
}

// Parse splits the query suffix of rawURL back into params, keeping order and
// duplicates. Empty segments ("a&&b") are dropped and bare keys get an empty value.
// Segments are taken verbatim, no unescaping is done.
func Parse(rawURL string) []types.QueryParam {
	return Syncer{}.Parse(rawURL)
}

// Parse is the inverse of Sync. When Encode is set keys and values are
// unescaped, so Sync(u, Parse(u)) == u holds in both modes. A segment that
// does not unescape is kept verbatim.
func (s Syncer) Parse(rawURL string) []types.QueryParam {
	i := strings.IndexByte(rawURL, '?')
	if i < 0 {
		return nil
	}

	var out []types.QueryParam
	for _, seg := range strings.Split(rawURL[i+1:], "&") {
		if seg == "" {
			continue
		}
		key, value, _ := strings.Cut(seg, "=")
		out = append(out, types.QueryParam{Key: s.unescape(key), Value: s.unescape(value)})
	}
	return out
}

func (s Syncer) unescape(v string) string {
	if !s.Encode {
		return v
	}
	if u, err := url.QueryUnescape(v); err == nil {
		return u
	}
	return v
}

// Merge copies keys and values from parsed onto the slots of current, keeping
// existing notes by position. Extra parsed entries are appended, and slots past
// the end of parsed are cleared but kept so the table does not shrink.
func Merge(current, parsed []types.QueryParam) []types.QueryParam {
	n := len(current)
	if len(parsed) > n {
		n = len(parsed)
	}

	out := make([]types.QueryParam, n)
	for i := range out {
		if i < len(current) {
			out[i].Note = current[i].Note
		}
		if i < len(parsed) {
			out[i].Key = parsed[i].Key
			out[i].Value = parsed[i].Value
		}
	}
	return out
}

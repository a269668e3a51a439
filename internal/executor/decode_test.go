package executor

import (
	"errors"
	"strings"
	"testing"
)

func TestDecodeBody(t *testing.T) {
	tests := []struct {
		name    string
		raw     []byte
		want    string
		wantErr bool
	}{
		{name: "empty", raw: nil, want: ""},
		{name: "plain text", raw: []byte("hello"), want: "hello"},
		{name: "compact object", raw: []byte(`{"a":1}`), want: "{\n  \"a\": 1\n}"},
		{
			name: "key order preserved",
			raw:  []byte(`{"z":1,"a":[true,null]}`),
			want: "{\n  \"z\": 1,\n  \"a\": [\n    true,\n    null\n  ]\n}",
		},
		{name: "scalar json", raw: []byte(`42`), want: "42"},
		{name: "broken json passes through", raw: []byte(`{"a":`), want: `{"a":`},
		{name: "html passes through", raw: []byte("<h1>hi</h1>"), want: "<h1>hi</h1>"},
		{name: "multibyte utf-8", raw: []byte(`{"saludo":"¡hola, señor!"}`), want: "{\n  \"saludo\": \"¡hola, señor!\"\n}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeBody(tt.raw)
			if (err != nil) != tt.wantErr {
				t.Fatalf("DecodeBody() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("DecodeBody() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDecodeBody_InvalidUTF8(t *testing.T) {
	raw := []byte{'{', '"', 'a', '"', ':', 0xc3, 0x28, '}'}

	got, err := DecodeBody(raw)

	var decodeErr *DecodeError
	if !errors.As(err, &decodeErr) {
		t.Fatalf("error = %T, want *DecodeError", err)
	}
	if decodeErr.Size != len(raw) {
		t.Errorf("Size = %d, want %d", decodeErr.Size, len(raw))
	}
	if !strings.HasPrefix(got, "Error: failed to decode response body as UTF-8") {
		t.Errorf("DecodeBody() = %q, want readable decode error", got)
	}
}

func TestPrettyJSON(t *testing.T) {
	if got, ok := PrettyJSON("not json"); ok || got != "not json" {
		t.Errorf("PrettyJSON(not json) = %q, %v", got, ok)
	}

	got, ok := PrettyJSON(`[1,2]`)
	if !ok {
		t.Fatal("PrettyJSON([1,2]) should succeed")
	}
	if got != "[\n  1,\n  2\n]" {
		t.Errorf("PrettyJSON([1,2]) = %q", got)
	}

	// Already indented input stays indented the same way
	again, _ := PrettyJSON(got)
	if again != got {
		t.Errorf("PrettyJSON not stable: %q", again)
	}
}

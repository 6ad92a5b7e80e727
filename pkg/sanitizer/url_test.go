package sanitizer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/optguard/pkg/sanitizer"
)

func TestEscURL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "valid url unchanged", input: "https://example.com/a?b=1", expected: "https://example.com/a?b=1"},
		{name: "javascript scheme", input: "javascript:alert(1)", expected: ""},
		{name: "mixed case javascript scheme", input: "JavaScript:alert(1)", expected: ""},
		{name: "javascript with tab", input: "java\tscript:alert(1)", expected: ""},
		{name: "data scheme", input: "data:text/html;base64,PHNjcmlwdD4=", expected: ""},
		{name: "vbscript scheme", input: "vbscript:msgbox", expected: ""},
		{name: "adds http to bare host", input: "example.com/page", expected: "http://example.com/page"},
		{name: "trims whitespace", input: "  https://example.com  ", expected: "https://example.com"},
		{name: "encodes spaces", input: "https://example.com/a b", expected: "https://example.com/a%20b"},
		{name: "drops invalid characters", input: "https://exa<mple>.com", expected: "https://example.com"},
		{name: "removes encoded line breaks", input: "https://example.com/%0d%0aSet-Cookie", expected: "https://example.com/Set-Cookie"},
		{name: "removes nested encoded line breaks", input: "https://example.com/%0%0dd", expected: "https://example.com/"},
		{name: "keeps absolute path", input: "/wp-admin/options.php", expected: "/wp-admin/options.php"},
		{name: "keeps fragment", input: "#top", expected: "#top"},
		{name: "keeps query", input: "?page=2", expected: "?page=2"},
		{name: "keeps script file", input: "index.php?x=1", expected: "index.php?x=1"},
		{name: "mailto allowed", input: "mailto:a@b.com", expected: "mailto:a@b.com"},
		{name: "tel allowed", input: "tel:+123456", expected: "tel:+123456"},
		{name: "host with port and no scheme", input: "localhost:8080", expected: ""},
		{name: "host with port and path but no scheme", input: "example.com:8080/x", expected: ""},
		{name: "host with port and scheme", input: "http://localhost:8080/x", expected: "http://localhost:8080/x"},
		{name: "empty", input: "", expected: ""},
		{name: "whitespace only", input: "   ", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, sanitizer.EscURL(tt.input))
		})
	}
}

func TestEscURL_Idempotent(t *testing.T) {
	t.Parallel()

	for _, in := range []string{"example.com", "https://example.com/a b", "/path", "javascript:x"} {
		once := sanitizer.EscURL(in)
		assert.Equal(t, once, sanitizer.EscURL(once), "input: %q", in)
	}
}

func TestEscURLWithSchemes(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "", sanitizer.EscURLWithSchemes("ftp://files.example.com", []string{"https"}))
	assert.Equal(t, "https://example.com", sanitizer.EscURLWithSchemes("https://example.com", []string{"https"}))
}

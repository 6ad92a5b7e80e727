package sanitizer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/optguard/pkg/sanitizer"
)

func TestStripTags(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "removes formatting tags", input: "<b>x</b>y", expected: "xy"},
		{name: "drops script body", input: "<script>alert(1)</script>ok", expected: "ok"},
		{name: "keeps plain text", input: "plain text", expected: "plain text"},
		{name: "nested tags", input: "<p><em>a</em> <a href=\"/x\">b</a></p>", expected: "a b"},
		{name: "empty", input: "", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, sanitizer.StripTags(tt.input))
		})
	}
}

func TestStripTags_Idempotent(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"<b>x</b>y",
		"Tom & Jerry",
		"a < b > c",
		"&lt;b&gt;escaped&lt;/b&gt;",
		`He said "hi" <i>it's</i> fine`,
	}

	for _, in := range inputs {
		once := sanitizer.StripTags(in)
		assert.Equal(t, once, sanitizer.StripTags(once), "input: %q", in)
	}
}

func TestSafeHTML(t *testing.T) {
	t.Parallel()

	t.Run("removes script elements", func(t *testing.T) {
		out := sanitizer.SafeHTML("<script>x</script>")
		assert.NotContains(t, out, "<script")
		assert.NotContains(t, out, "x")
	})

	t.Run("keeps formatting", func(t *testing.T) {
		assert.Equal(t, "<p><strong>bold</strong> text</p>", sanitizer.SafeHTML("<p><strong>bold</strong> text</p>"))
	})

	t.Run("removes event handlers", func(t *testing.T) {
		out := sanitizer.SafeHTML(`<p onclick="steal()">hi</p>`)
		assert.NotContains(t, out, "onclick")
		assert.Contains(t, out, "hi")
	})

	t.Run("removes javascript links", func(t *testing.T) {
		out := sanitizer.SafeHTML(`<a href="javascript:alert(1)">x</a>`)
		assert.NotContains(t, out, "javascript:")
	})

	t.Run("idempotent", func(t *testing.T) {
		in := `<p>a <a href="https://example.com">link</a><style>p{}</style></p>`
		once := sanitizer.SafeHTML(in)
		assert.Equal(t, once, sanitizer.SafeHTML(once))
	})
}

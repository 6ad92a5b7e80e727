package sanitizer

import (
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	strictPolicy *bluemonday.Policy
	postPolicy   *bluemonday.Policy
	initOnce     sync.Once
)

func initPolicies() {
	initOnce.Do(func() {
		// Strips every element; script and style bodies are dropped too.
		strictPolicy = bluemonday.StrictPolicy()

		// Formatting, links, images, lists and tables; no scripts, styles,
		// event handlers or script-executing URLs.
		postPolicy = bluemonday.UGCPolicy()
	})
}

// StripTags removes all markup and returns the text content. Text is returned
// entity-escaped, so applying StripTags to its own output is a no-op.
func StripTags(s string) string {
	initPolicies()
	return strictPolicy.Sanitize(s)
}

// SafeHTML keeps the markup allowed in post content and strips the rest.
func SafeHTML(s string) string {
	initPolicies()
	return postPolicy.Sanitize(s)
}

package sanitizer

import (
	"net/url"
	"regexp"
	"slices"
	"strings"
)

var (
	// Anything outside this set is dropped before the URL is inspected.
	invalidURLCharsRegex = regexp.MustCompile(`[^a-zA-Z0-9\-~+_.?#=!&;,/:%@$|*'()\[\]\x{80}-\x{10FFFF}]`)

	// Bare file names such as "index.php" are kept relative.
	scriptFileRegex = regexp.MustCompile(`(?i)^[a-z0-9-]+?\.php`)

	encodedLineBreaks = []string{"%0d", "%0a", "%0D", "%0A"}
)

var allowedURLSchemes = []string{
	"http", "https", "ftp", "ftps", "mailto", "news", "irc", "gopher",
	"nntp", "feed", "telnet", "mms", "rtsp", "sms", "svn", "tel", "fax",
	"xmpp", "webcal", "urn",
}

// EscURL prepares a URL for storage. Scheme-less hosts get "http://",
// relative references ("/path", "#frag", "?q") are kept, and URLs whose scheme
// is not in the allow-list (javascript:, data:, vbscript:, ...) become "".
func EscURL(raw string) string {
	return EscURLWithSchemes(raw, allowedURLSchemes)
}

// EscURLWithSchemes is EscURL with a custom scheme allow-list. Scheme
// comparison is case-insensitive; schemes should be given in lower case.
func EscURLWithSchemes(raw string, schemes []string) string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return ""
	}

	s = strings.ReplaceAll(s, " ", "%20")
	s = invalidURLCharsRegex.ReplaceAllString(s, "")
	s = deepReplace(s, encodedLineBreaks...)
	s = strings.ReplaceAll(s, ";//", "://")
	if s == "" {
		return ""
	}

	if isRelativeURL(s) {
		return s
	}

	if !strings.Contains(s, ":") && !scriptFileRegex.MatchString(s) {
		s = "http://" + s
	}

	u, err := url.Parse(s)
	if err != nil {
		return ""
	}

	if u.Scheme == "" {
		if scriptFileRegex.MatchString(s) {
			return s
		}
		return ""
	}

	if !slices.Contains(schemes, strings.ToLower(u.Scheme)) {
		return ""
	}

	return s
}

func isRelativeURL(s string) bool {
	switch s[0] {
	case '/', '#', '?':
		return true
	}
	return false
}

// deepReplace removes every occurrence of each search string, repeating until
// none is left, so "%0%0dd" cannot reassemble into "%0d".
func deepReplace(s string, search ...string) string {
	for {
		changed := false
		for _, needle := range search {
			if strings.Contains(s, needle) {
				s = strings.ReplaceAll(s, needle, "")
				changed = true
			}
		}
		if !changed {
			return s
		}
	}
}

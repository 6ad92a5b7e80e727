package sanitizer

import (
	"regexp"
	"strings"

	"github.com/dmitrymomot/optguard/pkg/validator"
)

// minEmailLength is the length of the shortest plausible address ("a@b.co").
const minEmailLength = 6

var (
	emailLocalInvalidRegex = regexp.MustCompile("[^a-zA-Z0-9!#$%&'*+/=?^_`{|}~.-]")
	emailLabelInvalidRegex = regexp.MustCompile(`[^a-zA-Z0-9-]`)
)

// SanitizeEmail strips characters that are not allowed in an address and
// returns the result if it is a plausible address, or "" otherwise.
func SanitizeEmail(email string) string {
	email = strings.TrimSpace(email)
	if len(email) < minEmailLength {
		return ""
	}

	local, domain, ok := strings.Cut(email, "@")
	if !ok || local == "" {
		return ""
	}

	local = emailLocalInvalidRegex.ReplaceAllString(local, "")
	if local == "" {
		return ""
	}

	if strings.Contains(domain, "..") {
		return ""
	}
	domain = strings.Trim(domain, " \t\n\r\x00\x0B.")

	labels := make([]string, 0, strings.Count(domain, ".")+1)
	for label := range strings.SplitSeq(domain, ".") {
		label = strings.Trim(label, " \t\n\r\x00\x0B-")
		label = emailLabelInvalidRegex.ReplaceAllString(label, "")
		if label != "" {
			labels = append(labels, label)
		}
	}
	if len(labels) < 2 {
		return ""
	}

	result := local + "@" + strings.Join(labels, ".")
	if err := validator.Apply(validator.ValidEmail("email", result)); err != nil {
		return ""
	}

	return result
}

package validator

import (
	"net/mail"
	"net/url"
	"strings"
)

// ValidEmail fails unless value is a single bare address whose domain has at
// least two non-empty labels. Display names ("Bob <b@x.io>") are rejected.
func ValidEmail(field, value string) Rule {
	return Rule{
		Check: func() bool { return isEmail(value) },
		Error: ValidationError{Field: field, Code: CodeEmail, Message: "must be a valid email address"},
	}
}

// ValidURL fails unless value is an absolute URL with a scheme and a host.
func ValidURL(field, value string) Rule {
	return Rule{
		Check: func() bool {
			if strings.TrimSpace(value) == "" {
				return false
			}
			u, err := url.ParseRequestURI(value)
			return err == nil && u.Scheme != "" && u.Host != ""
		},
		Error: ValidationError{Field: field, Code: CodeURL, Message: "must be a valid URL", Value: value},
	}
}

func isEmail(value string) bool {
	if strings.TrimSpace(value) == "" {
		return false
	}
	addr, err := mail.ParseAddress(value)
	if err != nil || addr.Address != value {
		return false
	}

	local, domain, ok := strings.Cut(addr.Address, "@")
	if !ok || local == "" || !strings.Contains(domain, ".") {
		return false
	}
	for label := range strings.SplitSeq(domain, ".") {
		if label == "" {
			return false
		}
	}
	return true
}

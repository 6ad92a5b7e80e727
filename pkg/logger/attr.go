package logger

import (
	"log/slog"
	"strconv"
)

// Group creates a group attribute.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Error records err under "error". A nil error yields an empty Attr, which
// slog drops.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Errors groups the non-nil errors under "errors", keyed by position.
func Errors(errs ...error) slog.Attr {
	as := make([]slog.Attr, 0, len(errs))
	for i, err := range errs {
		if err != nil {
			as = append(as, slog.Any(strconv.Itoa(i), err))
		}
	}
	if len(as) == 0 {
		return slog.Attr{}
	}
	return Group("errors", as...)
}

// OptionName records an option name.
func OptionName(name string) slog.Attr {
	return slog.String("option", name)
}

// Field records a sub-option field name.
func Field(name string) slog.Attr {
	return slog.String("field", name)
}

// Rule records a sanitization rule name.
func Rule(name string) slog.Attr {
	return slog.String("rule", name)
}

// Capability records a capability name.
func Capability(name string) slog.Attr {
	return slog.String("capability", name)
}

// PrincipalID records the acting principal. A nil id yields an empty Attr.
func PrincipalID(id any) slog.Attr {
	if id == nil {
		return slog.Attr{}
	}
	return slog.Any("principal_id", id)
}

// Role records a role name.
func Role(role string) slog.Attr {
	if role == "" {
		return slog.Attr{}
	}
	return slog.String("role", role)
}

// Store records the option store driver.
func Store(driver string) slog.Attr {
	return slog.String("store", driver)
}

// Component records the emitting component.
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

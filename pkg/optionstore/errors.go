package optionstore

import "errors"

var (
	ErrNotFound = errors.New("option not found")
	ErrEncode   = errors.New("failed to encode option value")
	ErrDecode   = errors.New("failed to decode option value")
	ErrBackend  = errors.New("option store backend failure")
)

// IsNotFound reports whether err means the option is absent.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

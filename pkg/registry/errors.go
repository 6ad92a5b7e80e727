package registry

import "errors"

var (
	ErrUnknownRule         = errors.New("unknown sanitization rule")
	ErrInvalidAssociations = errors.New("invalid option associations")
	ErrInvalidDocument     = errors.New("invalid associations document")
)

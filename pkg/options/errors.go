package options

import "errors"

var (
	ErrEmptyName    = errors.New("option name is empty")
	ErrUpdateFailed = errors.New("failed to update option")
	ErrDeleteFailed = errors.New("failed to delete option")
)

package settings

import "errors"

var (
	ErrInvalidConfig  = errors.New("invalid settings config")
	ErrStoreInit      = errors.New("failed to initialize option store")
	ErrAuthorizerInit = errors.New("failed to initialize authorizer")
	ErrLoadingRules   = errors.New("failed to load rule associations")
	ErrInvalidRules   = errors.New("rule associations reference unknown rules")
	ErrHealthcheck    = errors.New("settings healthcheck failed")
	ErrCloseFailed    = errors.New("failed to close settings service")
)

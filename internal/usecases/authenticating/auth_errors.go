package authenticating

import "errors"

var (
	ErrInvalidAPIKey = errors.New("invalid API key")
	ErrInvalidToken  = errors.New("invalid token")
	ErrAuthDisabled  = errors.New("authentication is not configured")
	ErrMissingSecret = errors.New("auth secret is not configured")
)

package utils

import "errors"

var (
	ErrDatabaseError        = errors.New("database error")
	ErrAssistantUnavailable = errors.New("assistant unavailable")
)

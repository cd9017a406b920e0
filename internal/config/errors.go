package config

import (
	"fmt"

	"github.com/jonathan/profile-engine/internal/types"
)

// Error reports an unreadable or invalid configuration. It matches types.ErrConfiguration.
type Error struct {
	Key     string
	Message string
	Cause   error
}

func (e *Error) Error() string {
	msg := "config error"
	if e.Key != "" {
		msg += fmt.Sprintf(": '%s'", e.Key)
	}
	msg += ": " + e.Message
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target is types.ErrConfiguration.
func (e *Error) Is(target error) bool {
	return target == types.ErrConfiguration
}

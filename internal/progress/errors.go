// Package progress computes percent-complete of named multi-step plans.
package progress

import (
	"fmt"

	"github.com/jonathan/profile-engine/internal/types"
)

// ConfigurationError reports an invalid caller-supplied plan definition.
type ConfigurationError struct {
	PlanID  string
	Message string
}

func (e *ConfigurationError) Error() string {
	if e.PlanID != "" {
		return fmt.Sprintf("configuration error in plan %q: %s", e.PlanID, e.Message)
	}
	return fmt.Sprintf("configuration error: %s", e.Message)
}

// Is reports whether target is types.ErrConfiguration.
func (e *ConfigurationError) Is(target error) bool {
	return target == types.ErrConfiguration
}

// Package progress computes percent-complete of named multi-step plans.
package progress

import (
	"math"
	"sort"

	"github.com/jonathan/profile-engine/internal/types"
)

// Progress returns round(100 * completed / totalSteps) for planID, clamped to 100.
// More recorded completions than steps (stale data) is not an error.
func Progress(profile *types.Profile, planID string, totalSteps int) (int, error) {
	if err := profile.Validate(); err != nil {
		return 0, err
	}
	if totalSteps <= 0 {
		return 0, &ConfigurationError{PlanID: planID, Message: "totalSteps must be positive"}
	}

	completed := profile.CompletedCount(planID)
	pct := int(math.Round(100 * float64(completed) / float64(totalSteps)))
	return types.ClampScore(pct), nil
}

// PlanProgress is the progress of one plan.
type PlanProgress struct {
	PlanID    string `json:"plan_id"`
	Completed int    `json:"completed"`
	Total     int    `json:"total"`
	Percent   int    `json:"percent"`
}

// ForPlans computes progress for every plan in plans (plan id -> total steps),
// ordered by plan id. The first invalid plan definition aborts the call.
func ForPlans(profile *types.Profile, plans map[string]int) ([]PlanProgress, error) {
	if err := profile.Validate(); err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(plans))
	for id := range plans {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	out := make([]PlanProgress, 0, len(ids))
	for _, id := range ids {
		pct, err := Progress(profile, id, plans[id])
		if err != nil {
			return nil, err
		}
		out = append(out, PlanProgress{
			PlanID:    id,
			Completed: profile.CompletedCount(id),
			Total:     plans[id],
			Percent:   pct,
		})
	}
	return out, nil
}

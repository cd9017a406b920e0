package readiness

import (
	"fmt"
	"sort"

	"github.com/jonathan/profile-engine/internal/types"
)

// gap is one unfilled band and the step that closes it.
type gap struct {
	missing float64
	step    string
}

// buildRoadmap emits one step per band that is not full, largest gap first; ties keep
// band order (skills, projects, experience, status). Critical profiles get a leading
// foundation step, so a Critical roadmap is never empty.
func buildRoadmap(b bandScores, state types.ReadinessState, role string) []string {
	target := role
	if target == "" {
		target = "your target role"
	}

	gaps := []gap{
		{skillsBandMax - b.skills, fmt.Sprintf("Learn and list at least %d skills that %s postings ask for", int(skillsBandMax/pointsPerSkill), target)},
		{projectsBandMax - b.projects, fmt.Sprintf("Document %d concrete artifacts (a project, a recent role, an achievement with a measurable result)", int(projectsBandMax/pointsPerArtifact))},
		{experienceBandMax - b.experience, fmt.Sprintf("Gain hands-on experience relevant to %s through an internship, volunteering or freelance work", target)},
		{statusBandMax - b.status, "Secure a current position (employment, study or an active job search) and record it on your profile"},
	}

	open := make([]gap, 0, len(gaps))
	for _, g := range gaps {
		if g.missing > 0 {
			open = append(open, g)
		}
	}
	sort.SliceStable(open, func(i, j int) bool {
		return open[i].missing > open[j].missing
	})

	steps := make([]string, 0, len(open)+1)
	if state == types.StateCritical {
		steps = append(steps, fmt.Sprintf("Review the core requirements for %s and book a guidance session to plan your next steps", target))
	}
	for _, g := range open {
		steps = append(steps, g.step)
	}
	return steps
}

// Package readiness estimates how close a profile is to being competitive for a
// target role and turns the gap into an ordered remediation roadmap.
//
// The score is the sum of four capped bands:
//
//	status      max 20  employed 20, student 10, job seeker 10, unset 0
//	experience  max 35  7 points per year (fractional years count), capped at 5 years
//	skills      max 30  5 points per distinct skill, capped at 6 skills
//	projects    max 15  5 points per non-empty résumé artifact, capped at 3
//
// Every band is non-decreasing in its input, so the total is monotonic in
// experience years and skill count with the other inputs held fixed.
package readiness

import (
	"math"
	"strings"

	"github.com/jonathan/profile-engine/internal/types"
)

// State thresholds.
const (
	developingThreshold = 40
	readyThreshold      = 70
)

const (
	statusBandMax     = 20.0
	experienceBandMax = 35.0
	skillsBandMax     = 30.0
	projectsBandMax   = 15.0

	pointsPerYear     = 7.0
	pointsPerSkill    = 5.0
	pointsPerArtifact = 5.0
)

// statusPoints is the status band table.
var statusPoints = map[types.Status]float64{
	types.StatusEmployed:  20,
	types.StatusStudent:   10,
	types.StatusJobSeeker: 10,
	types.StatusUnset:     0,
}

// bandScores holds the per-band points of one evaluation.
type bandScores struct {
	status     float64
	experience float64
	skills     float64
	projects   float64
}

func (b bandScores) total() int {
	return types.ClampScore(int(math.Round(b.status + b.experience + b.skills + b.projects)))
}

func computeBands(profile *types.Profile) bandScores {
	years := math.Max(0, profile.ExperienceYears)
	return bandScores{
		status:     statusPoints[profile.Status],
		experience: math.Min(experienceBandMax, years*pointsPerYear),
		skills:     math.Min(skillsBandMax, float64(distinctSkills(profile.Skills))*pointsPerSkill),
		projects:   math.Min(projectsBandMax, float64(profile.ResumeData.ArtifactCount())*pointsPerArtifact),
	}
}

// distinctSkills counts distinct non-empty skills.
func distinctSkills(skills []string) int {
	seen := make(map[string]struct{}, len(skills))
	for _, s := range skills {
		if s != "" {
			seen[s] = struct{}{}
		}
	}
	return len(seen)
}

// StateForScore maps a readiness score onto its state.
func StateForScore(score int) types.ReadinessState {
	switch {
	case score < developingThreshold:
		return types.StateCritical
	case score < readyThreshold:
		return types.StateDeveloping
	default:
		return types.StateReady
	}
}

// ScoreReadiness scores a profile against a target role. When targetRole is blank the
// profile's career goal is used in its place.
func ScoreReadiness(profile *types.Profile, targetRole string) (*types.ReadinessReport, error) {
	if err := profile.Validate(); err != nil {
		return nil, err
	}

	role := strings.Join(strings.Fields(targetRole), " ")
	if role == "" {
		role = profile.CareerGoal
	}

	bands := computeBands(profile)
	score := bands.total()
	state := StateForScore(score)

	report := &types.ReadinessReport{
		TargetRole: role,
		Score:      score,
		State:      state,
		Roadmap:    []string{},
	}
	if state != types.StateReady {
		report.Roadmap = buildRoadmap(bands, state, role)
	}
	return report, nil
}

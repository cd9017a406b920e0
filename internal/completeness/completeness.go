// Package completeness scores whether a profile is substantial enough to generate a
// real document, independent of any target role.
package completeness

import (
	"github.com/jonathan/profile-engine/internal/types"
)

const (
	identityBandMax   = 20
	educationBandMax  = 30
	skillsBandMax     = 25
	experienceBandMax = 25

	pointsPerIdentityField  = 5
	pointsPerEducationField = 10
	pointsPerSkill          = 5
)

func identityBand(p *types.Profile) int {
	score := 0
	for _, v := range []string{p.FullName, p.Email, p.Phone, p.District} {
		if v != "" {
			score += pointsPerIdentityField
		}
	}
	return min(score, identityBandMax)
}

func educationBand(p *types.Profile) int {
	edu := p.EducationDetails
	if edu == nil {
		return 0
	}
	score := 0
	if edu.Institution != "" {
		score += pointsPerEducationField
	}
	if edu.Field != "" {
		score += pointsPerEducationField
	}
	if edu.GradYear > 0 {
		score += pointsPerEducationField
	}
	return min(score, educationBandMax)
}

func skillsBand(p *types.Profile) int {
	distinct := make(map[string]struct{}, len(p.Skills))
	for _, s := range p.Skills {
		if s != "" {
			distinct[s] = struct{}{}
		}
	}
	return min(len(distinct)*pointsPerSkill, skillsBandMax)
}

// experienceBand is binary: a recent role or a top project earns the whole band.
func experienceBand(p *types.Profile) int {
	rd := p.ResumeData
	if rd == nil {
		return 0
	}
	if rd.RecentRole != "" || rd.TopProject != "" {
		return experienceBandMax
	}
	return 0
}

// Breakdown is the per-band detail behind a completeness score.
type Breakdown struct {
	Identity   int `json:"identity"`
	Education  int `json:"education"`
	Skills     int `json:"skills"`
	Experience int `json:"experience"`
	Total      int `json:"total"`
}

// Explain returns the per-band breakdown of ScoreCompleteness.
func Explain(profile *types.Profile) (*Breakdown, error) {
	if err := profile.Validate(); err != nil {
		return nil, err
	}
	b := &Breakdown{
		Identity:   identityBand(profile),
		Education:  educationBand(profile),
		Skills:     skillsBand(profile),
		Experience: experienceBand(profile),
	}
	b.Total = types.ClampScore(b.Identity + b.Education + b.Skills + b.Experience)
	return b, nil
}

// ScoreCompleteness returns the document-readiness score of a profile, 0..100.
func ScoreCompleteness(profile *types.Profile) (int, error) {
	b, err := Explain(profile)
	if err != nil {
		return 0, err
	}
	return b.Total, nil
}

// Package ranking scores profiles against career catalog entries.
package ranking

import (
	"fmt"
	"math"
	"strings"

	"github.com/jonathan/profile-engine/internal/types"
)

// Band ceilings. They sum to 100.
const (
	skillsBandMax    = 50.0
	educationBandMax = 30.0
	interestBandMax  = 20.0
)

// Rationale tags, one per band.
const (
	tagSkills    = "skills"
	tagEducation = "education"
	tagInterest  = "interest"
)

// computeSkillsBand awards an equal share of the band for every required skill that
// some profile skill matches by case-insensitive substring in either direction.
func computeSkillsBand(skills []string, required []string) (float64, []string) {
	if len(required) == 0 || len(skills) == 0 {
		return 0, nil
	}

	per := skillsBandMax / float64(max(1, len(required)))
	score := 0.0
	matched := make([]string, 0)
	for _, req := range required {
		reqLower := strings.ToLower(strings.TrimSpace(req))
		if reqLower == "" {
			continue
		}
		for _, skill := range skills {
			skillLower := strings.ToLower(skill)
			if skillLower == "" {
				continue
			}
			if strings.Contains(reqLower, skillLower) || strings.Contains(skillLower, reqLower) {
				score += per
				matched = append(matched, reqLower)
				break
			}
		}
	}

	return math.Min(score, skillsBandMax), matched
}

// computeEducationBand is binary: the whole band when any required education entry
// contains the profile's education level.
func computeEducationBand(level string, required []string) (float64, string) {
	levelLower := strings.ToLower(strings.TrimSpace(level))
	if levelLower == "" {
		return 0, ""
	}
	for _, req := range required {
		if strings.Contains(strings.ToLower(req), levelLower) {
			return educationBandMax, req
		}
	}
	return 0, ""
}

// computeInterestBand is binary: the whole band when any interest appears in the industry.
func computeInterestBand(interests []string, industry string) (float64, string) {
	industryLower := strings.ToLower(industry)
	if industryLower == "" {
		return 0, ""
	}
	for _, interest := range interests {
		interestLower := strings.ToLower(strings.TrimSpace(interest))
		if interestLower == "" {
			continue
		}
		if strings.Contains(industryLower, interestLower) {
			return interestBandMax, interestLower
		}
	}
	return 0, ""
}

// ScoreMatch scores how well a profile fits one career entry.
func ScoreMatch(profile *types.Profile, career *types.CareerEntry) (*types.ScoreReport, error) {
	if err := profile.Validate(); err != nil {
		return nil, err
	}
	if career == nil {
		return nil, &types.InvalidCatalogEntryError{Message: "entry is nil"}
	}
	return scoreMatch(profile, career), nil
}

func scoreMatch(profile *types.Profile, career *types.CareerEntry) *types.ScoreReport {
	report := &types.ScoreReport{Rationale: []string{}}

	skills, matched := computeSkillsBand(profile.Skills, career.RequiredSkills)
	if skills > 0 {
		report.AddRationale(tagSkills, fmt.Sprintf("matched %d of %d required skills (%s)",
			len(matched), len(career.RequiredSkills), strings.Join(matched, ", ")))
	}

	education, eduReq := computeEducationBand(profile.EducationLevel, career.RequiredEducation)
	if education > 0 {
		report.AddRationale(tagEducation, fmt.Sprintf("education level %q meets %q",
			profile.EducationLevel, eduReq))
	}

	interest, hit := computeInterestBand(profile.Interests, career.Industry)
	if interest > 0 {
		report.AddRationale(tagInterest, fmt.Sprintf("interest %q aligns with %s", hit, career.Industry))
	}

	report.Score = types.ClampScore(int(math.Round(skills + education + interest)))
	return report
}

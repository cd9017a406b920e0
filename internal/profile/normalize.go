// Package profile turns loosely-shaped profile records into canonical types.Profile values.
package profile

import (
	"math"
	"sort"
	"strings"

	"github.com/jonathan/profile-engine/internal/types"
)

// skillAliases maps common skill spellings to one canonical lowercase name.
var skillAliases = map[string]string{
	"golang":   "go",
	"go lang":  "go",
	"js":       "javascript",
	"ts":       "typescript",
	"k8s":      "kubernetes",
	"react.js": "react",
	"reactjs":  "react",
	"vue.js":   "vue",
	"vuejs":    "vue",
	"nodejs":   "node.js",
	"ms excel": "excel",
}

// Normalize resolves a loose record into the canonical Profile. Paired legacy keys
// (district/location, educationLevel/highestEducation, phone/phoneNumber, ...) are
// resolved by taking the first non-empty value in a fixed priority order.
// It fails only when the record has no usable id.
func Normalize(raw map[string]any) (*types.Profile, error) {
	rec := index(raw)

	p := &types.Profile{
		ID:              rec.str(idKeys),
		FullName:        rec.str(fullNameKeys),
		Email:           rec.str(emailKeys),
		Phone:           rec.str(phoneKeys),
		District:        rec.str(districtKeys),
		EducationLevel:  rec.str(educationLevelKeys),
		CareerGoal:      rec.str(careerGoalKeys),
		Status:          types.ParseStatus(rec.str(statusKeys)),
		ExperienceYears: normalizeYears(rec),
		Skills:          []string{},
		Interests:       []string{},
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}

	if v, ok := rec.first(skillsKeys); ok {
		p.Skills = NormalizeSkills(toList(v))
	}
	if v, ok := rec.first(interestsKeys); ok {
		p.Interests = NormalizeTerms(toList(v))
	}
	if v, ok := rec.first(profileDoneKeys); ok {
		p.ProfileCompleted = toBool(v)
	}

	p.EducationDetails = normalizeEducation(rec.sub(educationKeys))
	p.ResumeData = normalizeResume(rec.sub(resumeKeys))
	p.CompletedTasks = normalizeTasks(rec.rawSub(completedKeys))

	return p, nil
}

// NormalizeSkills lowercases, trims, folds aliases and deduplicates skill names.
// Empty entries are dropped; first-seen order is kept.
func NormalizeSkills(skills []string) []string {
	terms := NormalizeTerms(skills)
	out := make([]string, 0, len(terms))
	seen := make(map[string]struct{}, len(terms))
	for _, s := range terms {
		if canonical, ok := skillAliases[s]; ok {
			s = canonical
		}
		if _, exists := seen[s]; exists {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}

// NormalizeTerms lowercases, collapses whitespace and deduplicates free-text terms.
func NormalizeTerms(terms []string) []string {
	out := make([]string, 0, len(terms))
	seen := make(map[string]struct{}, len(terms))
	for _, t := range terms {
		n := strings.ToLower(collapse(t))
		if n == "" {
			continue
		}
		if _, exists := seen[n]; exists {
			continue
		}
		seen[n] = struct{}{}
		out = append(out, n)
	}
	return out
}

func normalizeYears(rec record) float64 {
	v, ok := rec.first(experienceKeys)
	if !ok {
		return 0
	}
	years := toFloat(v)
	if years < 0 || math.IsNaN(years) || math.IsInf(years, 0) {
		return 0
	}
	return years
}

func normalizeEducation(rec record) *types.EducationDetails {
	if rec == nil {
		return nil
	}
	edu := &types.EducationDetails{
		Institution: rec.str(institutionKeys),
		Field:       rec.str(fieldKeys),
		Description: rec.str(eduDescriptionKeys),
	}
	if v, ok := rec.first(gradYearKeys); ok {
		if year := int(toFloat(v)); year > 0 {
			edu.GradYear = year
		}
	}
	if edu.IsEmpty() {
		return nil
	}
	return edu
}

func normalizeResume(rec record) *types.ResumeData {
	if rec == nil {
		return nil
	}
	rd := &types.ResumeData{
		TopProject:     rec.str(topProjectKeys),
		RecentRole:     rec.str(recentRoleKeys),
		KeyAchievement: rec.str(keyAchievementKeys),
		ImpactMetric:   rec.str(impactMetricKeys),
	}
	if v, ok := rec.first(responsibilitiesKeys); ok {
		for _, item := range toList(v) {
			if c := collapse(item); c != "" {
				rd.Responsibilities = append(rd.Responsibilities, c)
			}
		}
	}
	if !rd.HasNarrative() {
		return nil
	}
	return rd
}

// normalizeTasks keeps plan ids verbatim and stores each plan's tasks as a sorted set.
func normalizeTasks(raw map[string]any) map[string][]string {
	if raw == nil {
		return nil
	}
	out := make(map[string][]string, len(raw))
	for plan, v := range raw {
		seen := make(map[string]struct{})
		tasks := make([]string, 0)
		for _, t := range toList(v) {
			t = strings.TrimSpace(t)
			if t == "" {
				continue
			}
			if _, exists := seen[t]; exists {
				continue
			}
			seen[t] = struct{}{}
			tasks = append(tasks, t)
		}
		sort.Strings(tasks)
		out[plan] = tasks
	}
	return out
}

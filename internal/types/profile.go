// Package types provides type definitions for structured data used throughout the profile engine.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"errors"
	"strings"
)

// ErrInvalidProfile is reported (via errors.Is) when a profile has no usable id.
var ErrInvalidProfile = errors.New("invalid profile")

// Status is the candidate's current career status.
type Status string

// Known statuses. StatusUnset is the zero value.
const (
	StatusUnset     Status = ""
	StatusStudent   Status = "student"
	StatusEmployed  Status = "employed"
	StatusJobSeeker Status = "job_seeker"
)

// ParseStatus maps free text onto a Status. Unknown values map to StatusUnset.
func ParseStatus(s string) Status {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "student":
		return StatusStudent
	case "employed", "working":
		return StatusEmployed
	case "job_seeker", "job-seeker", "job seeker", "jobseeker", "unemployed":
		return StatusJobSeeker
	default:
		return StatusUnset
	}
}

// Profile is the canonical user record consumed by every scorer.
// Callers treat it as an immutable snapshot for the duration of a call.
type Profile struct {
	ID       string `json:"id"`
	FullName string `json:"full_name"`
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	District string `json:"district,omitempty"`

	EducationLevel   string            `json:"education_level,omitempty"`
	EducationDetails *EducationDetails `json:"education_details,omitempty"`

	Skills          []string `json:"skills"`
	Interests       []string `json:"interests"`
	CareerGoal      string   `json:"career_goal,omitempty"`
	Status          Status   `json:"status"`
	ExperienceYears float64  `json:"experience_years"`

	ResumeData *ResumeData `json:"resume_data,omitempty"`

	// CompletedTasks maps a plan id to the distinct task ids completed in it.
	CompletedTasks   map[string][]string `json:"completed_tasks,omitempty"`
	ProfileCompleted bool                `json:"profile_completed"`
}

// EducationDetails is the structured part of a profile's education.
type EducationDetails struct {
	Institution string `json:"institution,omitempty"`
	Field       string `json:"field,omitempty"`
	GradYear    int    `json:"grad_year,omitempty"`
	Description string `json:"description,omitempty"`
}

// IsEmpty reports whether no education detail is populated.
func (e *EducationDetails) IsEmpty() bool {
	return e == nil || (e.Institution == "" && e.Field == "" && e.GradYear == 0 && e.Description == "")
}

// ResumeData holds the narrative substance of a résumé.
type ResumeData struct {
	TopProject       string   `json:"top_project,omitempty"`
	RecentRole       string   `json:"recent_role,omitempty"`
	KeyAchievement   string   `json:"key_achievement,omitempty"`
	ImpactMetric     string   `json:"impact_metric,omitempty"`
	Responsibilities []string `json:"responsibilities,omitempty"`
}

// HasNarrative reports whether any narrative field is non-empty.
func (r *ResumeData) HasNarrative() bool {
	if r == nil {
		return false
	}
	if r.TopProject != "" || r.RecentRole != "" || r.KeyAchievement != "" || r.ImpactMetric != "" {
		return true
	}
	for _, resp := range r.Responsibilities {
		if resp != "" {
			return true
		}
	}
	return false
}

// ArtifactCount counts the non-empty single-value résumé artifacts.
func (r *ResumeData) ArtifactCount() int {
	if r == nil {
		return 0
	}
	count := 0
	for _, s := range []string{r.TopProject, r.RecentRole, r.KeyAchievement, r.ImpactMetric} {
		if s != "" {
			count++
		}
	}
	return count
}

// NarrativeLength is the combined character count of every narrative field.
func (r *ResumeData) NarrativeLength() int {
	if r == nil {
		return 0
	}
	n := len([]rune(r.TopProject)) + len([]rune(r.RecentRole)) +
		len([]rune(r.KeyAchievement)) + len([]rune(r.ImpactMetric))
	for _, resp := range r.Responsibilities {
		n += len([]rune(resp))
	}
	return n
}

// Validate checks the only hard requirement every scorer shares: a non-blank id.
func (p *Profile) Validate() error {
	if p == nil {
		return &InvalidProfileError{Message: "profile is nil"}
	}
	if strings.TrimSpace(p.ID) == "" {
		return &InvalidProfileError{Message: "profile id is missing or empty"}
	}
	return nil
}

// CompletedCount returns the number of distinct tasks completed in planID.
func (p *Profile) CompletedCount(planID string) int {
	tasks, ok := p.CompletedTasks[planID]
	if !ok {
		return 0
	}
	seen := make(map[string]struct{}, len(tasks))
	for _, t := range tasks {
		if t == "" {
			continue
		}
		seen[t] = struct{}{}
	}
	return len(seen)
}

// InvalidProfileError is the InvalidProfile failure. It matches ErrInvalidProfile.
type InvalidProfileError struct {
	Message string
	Cause   error
}

func (e *InvalidProfileError) Error() string {
	if e.Cause != nil {
		return "invalid profile: " + e.Message + ": " + e.Cause.Error()
	}
	return "invalid profile: " + e.Message
}

func (e *InvalidProfileError) Unwrap() error {
	return e.Cause
}

// Is reports whether target is ErrInvalidProfile.
func (e *InvalidProfileError) Is(target error) bool {
	return target == ErrInvalidProfile
}

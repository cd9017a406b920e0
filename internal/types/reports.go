// Package types provides type definitions for structured data used throughout the profile engine.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"errors"
	"fmt"
)

// MaxRationale caps how many rationale entries a ScoreReport keeps.
const MaxRationale = 3

// ErrConfiguration is reported (via errors.Is) for invalid caller-supplied parameters.
var ErrConfiguration = errors.New("configuration error")

// ScoreReport is the output of a scorer: an integer score and the rules that fired.
type ScoreReport struct {
	Score     int      `json:"score"`
	Rationale []string `json:"rationale"`
}

// AddRationale appends a tagged entry unless the cap is reached. Earliest entries win.
func (r *ScoreReport) AddRationale(tag, message string) {
	if len(r.Rationale) >= MaxRationale {
		return
	}
	r.Rationale = append(r.Rationale, fmt.Sprintf("[%s] %s", tag, message))
}

// MatchResult pairs a catalog entry with its score against a profile.
type MatchResult struct {
	Career CareerEntry `json:"career"`
	Report ScoreReport `json:"report"`
}

// RankResult is the outcome of ranking a catalog. Skipped holds one error per
// malformed entry that was left out; the caller decides how to log them.
type RankResult struct {
	Matches []MatchResult `json:"matches"`
	Skipped []error       `json:"-"`
}

// ReadinessState is the coarse readiness bucket derived from a readiness score.
type ReadinessState string

// Readiness states, lowest to highest.
const (
	StateCritical   ReadinessState = "Critical"
	StateDeveloping ReadinessState = "Developing"
	StateReady      ReadinessState = "Ready"
)

// ReadinessReport describes how close a profile is to being competitive for a role.
type ReadinessReport struct {
	TargetRole string         `json:"target_role"`
	Score      int            `json:"score"`
	State      ReadinessState `json:"state"`
	Roadmap    []string       `json:"roadmap"`
}

// ClampScore bounds a score to [0,100].
func ClampScore(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

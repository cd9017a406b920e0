// Package types provides type definitions for structured data used throughout the profile engine.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"fmt"
	"strings"
)

// Theme is the closed set of document themes. ThemeUnset means "infer".
type Theme int

// Themes. Adding one requires a case in String and ParseTheme.
const (
	ThemeUnset Theme = iota
	ThemeModern
	ThemeMinimalist
	ThemeCreative
	ThemeAcademic
)

func (t Theme) String() string {
	switch t {
	case ThemeModern:
		return "modern"
	case ThemeMinimalist:
		return "minimalist"
	case ThemeCreative:
		return "creative"
	case ThemeAcademic:
		return "academic"
	default:
		return ""
	}
}

// ParseTheme parses a theme name. The empty string parses to ThemeUnset.
func ParseTheme(s string) (Theme, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return ThemeUnset, nil
	case "modern":
		return ThemeModern, nil
	case "minimalist":
		return ThemeMinimalist, nil
	case "creative":
		return ThemeCreative, nil
	case "academic":
		return ThemeAcademic, nil
	default:
		return ThemeUnset, fmt.Errorf("unknown theme %q", s)
	}
}

// MarshalText encodes the theme by name.
func (t Theme) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText decodes a theme name.
func (t *Theme) UnmarshalText(text []byte) error {
	parsed, err := ParseTheme(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// SectionID names a document section.
type SectionID string

// Known sections.
const (
	SectionSummary    SectionID = "summary"
	SectionExperience SectionID = "experience"
	SectionEducation  SectionID = "education"
	SectionProjects   SectionID = "projects"
	SectionInterests  SectionID = "interests"
	SectionSkills     SectionID = "skills"
	SectionContact    SectionID = "contact"
)

// Density controls how tightly the document is set.
type Density string

// Densities.
const (
	DensityNormal  Density = "normal"
	DensityCompact Density = "compact"
)

// LayoutStrategy is the structural decision for a document.
// SectionOrder and SidebarSections never share an id.
type LayoutStrategy struct {
	Theme           Theme       `json:"theme"`
	SectionOrder    []SectionID `json:"section_order"`
	SidebarSections []SectionID `json:"sidebar_sections"`
	Density         Density     `json:"density"`
}

// Package layout chooses a document layout strategy from the shape of a profile.
// Every decision is a branch of a fixed table over which profile groups are populated.
package layout

import (
	"github.com/jonathan/profile-engine/internal/types"
)

// CompactThreshold is the narrative character count above which the document is set compact.
const CompactThreshold = 1200

// SidebarSkillsMin is the skill count at which skills move to the sidebar.
const SidebarSkillsMin = 3

// SelectStrategy picks theme, section order, sidebar composition and density.
// A hint other than types.ThemeUnset is used as-is; otherwise the theme is inferred.
func SelectStrategy(profile *types.Profile, hint types.Theme) (*types.LayoutStrategy, error) {
	if err := profile.Validate(); err != nil {
		return nil, err
	}

	theme := hint
	if theme == types.ThemeUnset {
		theme = InferTheme(profile)
	}

	order, sidebar := sections(profile)
	return &types.LayoutStrategy{
		Theme:           theme,
		SectionOrder:    order,
		SidebarSections: sidebar,
		Density:         density(profile),
	}, nil
}

// InferTheme nudges portfolio-heavy profiles without an institution toward creative
// and education-only profiles toward academic. Everything else is modern.
func InferTheme(profile *types.Profile) types.Theme {
	rd := profile.ResumeData
	edu := profile.EducationDetails

	switch {
	case rd != nil && rd.TopProject != "" && (edu == nil || edu.Institution == ""):
		return types.ThemeCreative
	case !edu.IsEmpty() && !rd.HasNarrative():
		return types.ThemeAcademic
	default:
		return types.ThemeModern
	}
}

func sections(profile *types.Profile) (order, sidebar []types.SectionID) {
	order = make([]types.SectionID, 0, 6)
	sidebar = []types.SectionID{types.SectionContact}

	if profile.ResumeData.HasNarrative() {
		order = append(order, types.SectionSummary)
	}

	if profile.ExperienceYears >= 1 {
		order = append(order, types.SectionExperience, types.SectionEducation)
	} else {
		order = append(order, types.SectionEducation, types.SectionExperience)
	}

	order = append(order, types.SectionProjects, types.SectionInterests)

	if len(profile.Skills) >= SidebarSkillsMin {
		sidebar = append(sidebar, types.SectionSkills)
	} else {
		order = append(order, types.SectionSkills)
	}
	return order, sidebar
}

// NarrativeLength counts the characters of every narrative field: résumé data,
// the career goal and the education description.
func NarrativeLength(profile *types.Profile) int {
	n := profile.ResumeData.NarrativeLength() + len([]rune(profile.CareerGoal))
	if profile.EducationDetails != nil {
		n += len([]rune(profile.EducationDetails.Description))
	}
	return n
}

func density(profile *types.Profile) types.Density {
	if NarrativeLength(profile) > CompactThreshold {
		return types.DensityCompact
	}
	return types.DensityNormal
}

package rendering

import (
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/jonathan/profile-engine/internal/types"
)

// documentNamespace scopes document ids so they never collide with other SHA-1 uuids.
var documentNamespace = uuid.NewSHA1(uuid.NameSpaceOID, []byte("profile-engine/document"))

var defaultHeadings = map[types.SectionID]string{
	types.SectionSummary:    "Summary",
	types.SectionExperience: "Experience",
	types.SectionEducation:  "Education",
	types.SectionProjects:   "Projects",
	types.SectionInterests:  "Interests",
	types.SectionSkills:     "Skills",
	types.SectionContact:    "Contact",
}

// themeHeadings overrides defaultHeadings per theme.
var themeHeadings = map[types.Theme]map[types.SectionID]string{
	types.ThemeCreative: {
		types.SectionSummary:  "About Me",
		types.SectionProjects: "Portfolio",
	},
	types.ThemeAcademic: {
		types.SectionSummary:   "Research Statement",
		types.SectionInterests: "Research Interests",
	},
	types.ThemeMinimalist: {
		types.SectionSummary: "Profile",
	},
}

func heading(theme types.Theme, id types.SectionID) string {
	if h, ok := themeHeadings[theme][id]; ok {
		return h
	}
	if h, ok := defaultHeadings[id]; ok {
		return h
	}
	return Polish(strings.ReplaceAll(string(id), "_", " "))
}

// Assemble renders profile into a DocumentTree following strategy.
// Every id in the strategy gets a node; nodes whose backing data is absent carry a nil
// Rendered section. The result is deterministic, including its id.
func Assemble(profile *types.Profile, strategy *types.LayoutStrategy) (*types.DocumentTree, error) {
	if err := profile.Validate(); err != nil {
		return nil, err
	}
	if err := checkStrategy(strategy); err != nil {
		return nil, err
	}

	theme := strategy.Theme
	if theme == types.ThemeUnset {
		theme = types.ThemeModern
	}

	tree := &types.DocumentTree{
		Title:   CollapseWhitespace(profile.FullName),
		Theme:   theme,
		Density: strategy.Density,
		Main:    renderNodes(profile, theme, strategy.SectionOrder),
		Sidebar: renderNodes(profile, theme, strategy.SidebarSections),
	}
	if tree.Density == "" {
		tree.Density = types.DensityNormal
	}
	tree.ID = documentID(profile.ID, tree)
	return tree, nil
}

func checkStrategy(strategy *types.LayoutStrategy) error {
	if strategy == nil {
		return &AssemblyError{Message: "layout strategy is nil"}
	}
	seen := make(map[types.SectionID]bool, len(strategy.SectionOrder)+len(strategy.SidebarSections))
	for _, ids := range [][]types.SectionID{strategy.SectionOrder, strategy.SidebarSections} {
		for _, id := range ids {
			if seen[id] {
				return &AssemblyError{Section: string(id), Message: "section listed more than once"}
			}
			seen[id] = true
		}
	}
	return nil
}

func renderNodes(profile *types.Profile, theme types.Theme, ids []types.SectionID) []types.SectionNode {
	nodes := make([]types.SectionNode, 0, len(ids))
	for _, id := range ids {
		section := renderSection(profile, id)
		if section != nil {
			section.Heading = heading(theme, id)
		}
		nodes = append(nodes, types.SectionNode{SectionID: id, Rendered: section})
	}
	return nodes
}

func renderSection(profile *types.Profile, id types.SectionID) *types.RenderedSection {
	switch id {
	case types.SectionSummary:
		return renderSummary(profile)
	case types.SectionExperience:
		return renderExperience(profile)
	case types.SectionEducation:
		return renderEducation(profile)
	case types.SectionProjects:
		return renderProjects(profile)
	case types.SectionInterests:
		return renderList(profile.Interests)
	case types.SectionSkills:
		return renderList(profile.Skills)
	case types.SectionContact:
		return renderContact(profile)
	default:
		return nil
	}
}

func renderSummary(profile *types.Profile) *types.RenderedSection {
	paragraphs := []string{Polish(profile.CareerGoal)}
	if rd := profile.ResumeData; rd != nil {
		paragraphs = append(paragraphs, Polish(rd.KeyAchievement), Polish(rd.ImpactMetric))
	}
	paragraphs = nonEmpty(paragraphs)
	if len(paragraphs) == 0 {
		return nil
	}
	return &types.RenderedSection{Paragraphs: paragraphs}
}

func renderExperience(profile *types.Profile) *types.RenderedSection {
	rd := profile.ResumeData
	if rd == nil {
		return nil
	}
	role := Polish(rd.RecentRole)
	items := polishAll(rd.Responsibilities)
	if role == "" && len(items) == 0 {
		return nil
	}
	section := &types.RenderedSection{Subheading: role, Items: items}
	if profile.ExperienceYears > 0 {
		section.Fields = []types.Field{{Label: "Years", Value: formatYears(profile.ExperienceYears)}}
	}
	return section
}

func renderEducation(profile *types.Profile) *types.RenderedSection {
	edu := profile.EducationDetails
	if edu == nil {
		return nil
	}
	institution := CollapseWhitespace(edu.Institution)
	if institution == "" {
		return nil
	}
	section := &types.RenderedSection{Subheading: institution}
	if f := CollapseWhitespace(edu.Field); f != "" {
		section.Fields = append(section.Fields, types.Field{Label: "Field", Value: f})
	}
	if level := CollapseWhitespace(profile.EducationLevel); level != "" {
		section.Fields = append(section.Fields, types.Field{Label: "Level", Value: level})
	}
	if edu.GradYear > 0 {
		section.Fields = append(section.Fields, types.Field{Label: "Graduated", Value: strconv.Itoa(edu.GradYear)})
	}
	if d := Polish(edu.Description); d != "" {
		section.Paragraphs = []string{d}
	}
	return section
}

func renderProjects(profile *types.Profile) *types.RenderedSection {
	if profile.ResumeData == nil {
		return nil
	}
	project := Polish(profile.ResumeData.TopProject)
	if project == "" {
		return nil
	}
	return &types.RenderedSection{Items: []string{project}}
}

func renderList(values []string) *types.RenderedSection {
	items := make([]string, 0, len(values))
	for _, v := range values {
		if c := CollapseWhitespace(v); c != "" {
			items = append(items, c)
		}
	}
	if len(items) == 0 {
		return nil
	}
	return &types.RenderedSection{Items: items}
}

// renderContact collapses whitespace only; addresses and numbers are not prose.
func renderContact(profile *types.Profile) *types.RenderedSection {
	var fields []types.Field
	for _, f := range []types.Field{
		{Label: "Email", Value: profile.Email},
		{Label: "Phone", Value: profile.Phone},
		{Label: "District", Value: profile.District},
	} {
		if v := CollapseWhitespace(f.Value); v != "" {
			fields = append(fields, types.Field{Label: f.Label, Value: v})
		}
	}
	if len(fields) == 0 {
		return nil
	}
	return &types.RenderedSection{Fields: fields}
}

func formatYears(years float64) string {
	s := strconv.FormatFloat(years, 'f', -1, 64)
	if years == 1 {
		return s + " year"
	}
	return s + " years"
}

func nonEmpty(values []string) []string {
	out := values[:0]
	for _, v := range values {
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}

// documentID derives a stable id from the profile id, theme and section layout.
func documentID(profileID string, tree *types.DocumentTree) string {
	var b strings.Builder
	b.WriteString(profileID)
	b.WriteString("|")
	b.WriteString(tree.Theme.String())
	for _, nodes := range [][]types.SectionNode{tree.Main, tree.Sidebar} {
		b.WriteString("|")
		for _, n := range nodes {
			b.WriteString(string(n.SectionID))
			if n.Rendered != nil {
				b.WriteString("+")
			}
			b.WriteString(",")
		}
	}
	return uuid.NewSHA1(documentNamespace, []byte(b.String())).String()
}

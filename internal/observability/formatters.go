// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/profile-engine/internal/completeness"
	"github.com/jonathan/profile-engine/internal/progress"
	"github.com/jonathan/profile-engine/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stderr; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(strings.TrimRight(content, "\n"), "\n")
	for _, line := range lines {
		runes := []rune(line)
		if len(runes) > boxWidth-4 {
			line = string(runes[:boxWidth-7]) + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

func writeList(sb *strings.Builder, items []string) {
	count := min(len(items), maxItemsToShow)
	for i := 0; i < count; i++ {
		sb.WriteString(fmt.Sprintf("  • %s\n", items[i]))
	}
	if len(items) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(items)-maxItemsToShow))
	}
}

// PrintProfile outputs a summary of a normalized profile.
func (p *Printer) PrintProfile(profile *types.Profile) {
	if profile == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("ID:         %s\n", profile.ID))
	sb.WriteString(fmt.Sprintf("Name:       %s\n", profile.FullName))
	if profile.District != "" {
		sb.WriteString(fmt.Sprintf("District:   %s\n", profile.District))
	}
	if profile.Status != types.StatusUnset {
		sb.WriteString(fmt.Sprintf("Status:     %s\n", profile.Status))
	}
	sb.WriteString(fmt.Sprintf("Experience: %g years\n", profile.ExperienceYears))
	if len(profile.Skills) > 0 {
		sb.WriteString(fmt.Sprintf("Skills (%d):\n", len(profile.Skills)))
		writeList(&sb, profile.Skills)
	}

	p.printBox("NORMALIZED PROFILE", sb.String())
}

// PrintMatches outputs ranked career matches with their rationale.
func (p *Printer) PrintMatches(result *types.RankResult) {
	if result == nil {
		return
	}

	var sb strings.Builder
	if len(result.Matches) == 0 {
		sb.WriteString("No career scored above zero.\n")
	}
	for i, m := range result.Matches {
		sb.WriteString(fmt.Sprintf("%d. [%3d] %s\n", i+1, m.Report.Score, m.Career.Title))
		for _, r := range m.Report.Rationale {
			sb.WriteString(fmt.Sprintf("      %s\n", r))
		}
	}
	if len(result.Skipped) > 0 {
		sb.WriteString(fmt.Sprintf("\nSkipped %d malformed catalog entries\n", len(result.Skipped)))
	}

	p.printBox("CAREER MATCHES", sb.String())
}

// PrintReadiness outputs a readiness report and its roadmap.
func (p *Printer) PrintReadiness(report *types.ReadinessReport) {
	if report == nil {
		return
	}

	var sb strings.Builder
	role := report.TargetRole
	if role == "" {
		role = "(none)"
	}
	sb.WriteString(fmt.Sprintf("Target: %s\n", role))
	sb.WriteString(fmt.Sprintf("Score:  %d/100 (%s)\n", report.Score, report.State))
	if len(report.Roadmap) > 0 {
		sb.WriteString("\nRoadmap:\n")
		writeList(&sb, report.Roadmap)
	}

	p.printBox("READINESS", sb.String())
}

// PrintCompleteness outputs the per-band completeness breakdown.
func (p *Printer) PrintCompleteness(b *completeness.Breakdown) {
	if b == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Identity:   %3d\n", b.Identity))
	sb.WriteString(fmt.Sprintf("Education:  %3d\n", b.Education))
	sb.WriteString(fmt.Sprintf("Skills:     %3d\n", b.Skills))
	sb.WriteString(fmt.Sprintf("Experience: %3d\n", b.Experience))
	sb.WriteString(fmt.Sprintf("Total:      %3d\n", b.Total))

	p.printBox("COMPLETENESS", sb.String())
}

// PrintProgress outputs plan progress as percentage bars.
func (p *Printer) PrintProgress(plans []progress.PlanProgress) {
	if len(plans) == 0 {
		return
	}

	var sb strings.Builder
	for _, pl := range plans {
		filled := pl.Percent / 10
		bar := strings.Repeat("█", filled) + strings.Repeat("░", 10-filled)
		sb.WriteString(fmt.Sprintf("%s %s %3d%% (%d/%d)\n", bar, pl.PlanID, pl.Percent, pl.Completed, pl.Total))
	}

	p.printBox("PLAN PROGRESS", sb.String())
}

// PrintLayout outputs the chosen layout strategy.
func (p *Printer) PrintLayout(s *types.LayoutStrategy) {
	if s == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Theme:   %s\n", s.Theme))
	sb.WriteString(fmt.Sprintf("Density: %s\n", s.Density))
	sb.WriteString(fmt.Sprintf("Main:    %s\n", joinSections(s.SectionOrder)))
	sb.WriteString(fmt.Sprintf("Sidebar: %s\n", joinSections(s.SidebarSections)))

	p.printBox("LAYOUT STRATEGY", sb.String())
}

// PrintDocument outputs which sections of a document rendered.
func (p *Printer) PrintDocument(tree *types.DocumentTree) {
	if tree == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Title: %s\n", tree.Title))
	sb.WriteString(fmt.Sprintf("ID:    %s\n\n", tree.ID))
	for _, group := range []struct {
		name  string
		nodes []types.SectionNode
	}{{"Main", tree.Main}, {"Sidebar", tree.Sidebar}} {
		sb.WriteString(group.name + ":\n")
		for _, n := range group.nodes {
			mark := "✓"
			if n.Rendered == nil {
				mark = "·"
			}
			sb.WriteString(fmt.Sprintf("  %s %s\n", mark, n.SectionID))
		}
	}

	p.printBox("ASSEMBLED DOCUMENT", sb.String())
}

func joinSections(ids []types.SectionID) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = string(id)
	}
	return strings.Join(parts, " → ")
}

// Package types provides type definitions for structured data used throughout the profile engine.
//
//nolint:revive // types is a standard Go package name pattern
package types

// DocumentTree is an assembled document: main-body and sidebar sections in strategy order.
type DocumentTree struct {
	ID      string        `json:"id"`
	Title   string        `json:"title"`
	Theme   Theme         `json:"theme"`
	Density Density       `json:"density"`
	Main    []SectionNode `json:"main"`
	Sidebar []SectionNode `json:"sidebar"`
}

// SectionNode is one slot of the document. Rendered is nil when the section has no data.
type SectionNode struct {
	SectionID SectionID        `json:"section_id"`
	Rendered  *RenderedSection `json:"rendered"`
}

// RenderedSection is the semantic content of a section.
type RenderedSection struct {
	Heading    string   `json:"heading"`
	Subheading string   `json:"subheading,omitempty"`
	Paragraphs []string `json:"paragraphs,omitempty"`
	Items      []string `json:"items,omitempty"`
	Fields     []Field  `json:"fields,omitempty"`
}

// Field is a labelled value inside a section.
type Field struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// RenderedSections returns the nodes that actually carry content.
func RenderedSections(nodes []SectionNode) []SectionNode {
	out := make([]SectionNode, 0, len(nodes))
	for _, n := range nodes {
		if n.Rendered != nil {
			out = append(out, n)
		}
	}
	return out
}

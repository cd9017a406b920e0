package rendering

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jonathan/profile-engine/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEscapeLaTeX(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},
		{"plain", "Hello World", "Hello World"},
		{"ampersand", "R&D", `R\&D`},
		{"percent", "50%", `50\%`},
		{"dollar", "$10k", `\$10k`},
		{"hash", "C#", `C\#`},
		{"underscore", "snake_case", `snake\_case`},
		{"braces", "{x}", `\{x\}`},
		{"backslash", `a\b`, `a\textbackslash{}b`},
		{"caret and tilde", "^~", `\textasciicircum{}\textasciitilde{}`},
		{"unicode untouched", "Café", "Café"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, EscapeLaTeX(tt.input))
		})
	}
}

func TestRenderLaTeX_DefaultTemplate(t *testing.T) {
	tree := &types.DocumentTree{
		Title:   "Nimal & Co",
		Theme:   types.ThemeModern,
		Density: types.DensityCompact,
		Main: []types.SectionNode{
			{SectionID: types.SectionSummary, Rendered: &types.RenderedSection{Heading: "Summary", Paragraphs: []string{"Grew revenue 20%"}}},
			{SectionID: types.SectionEducation},
			{SectionID: types.SectionProjects, Rendered: &types.RenderedSection{Heading: "Projects", Items: []string{"Gateway_v2"}}},
		},
		Sidebar: []types.SectionNode{
			{SectionID: types.SectionContact, Rendered: &types.RenderedSection{Heading: "Contact", Fields: []types.Field{{Label: "Email", Value: "a@b.c"}}}},
		},
	}

	out, err := RenderLaTeX(tree, "")
	require.NoError(t, err)

	assert.Contains(t, out, `\documentclass[10pt]{article}`)
	assert.Contains(t, out, `Nimal \& Co`)
	assert.Contains(t, out, `\section*{Summary}`)
	assert.Contains(t, out, `Grew revenue 20\%`)
	assert.Contains(t, out, `\item Gateway\_v2`)
	assert.Contains(t, out, `\item[Email] a@b.c`)
	assert.NotContains(t, out, `\section*{Education}`)
	assert.Less(t, strings.Index(out, "Summary"), strings.Index(out, "Projects"))
	assert.Less(t, strings.Index(out, `\switchcolumn`), strings.Index(out, "Contact"))
}

func TestRenderLaTeX_CustomTemplate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.tex.tmpl")
	require.NoError(t, os.WriteFile(path, []byte(`<< escape .Title >>:<< len .Main >>`), 0o600))

	out, err := RenderLaTeX(&types.DocumentTree{
		Title: "A_B",
		Main:  []types.SectionNode{{SectionID: types.SectionSkills}},
	}, path)
	require.NoError(t, err)
	assert.Equal(t, `A\_B:0`, out)
}

func TestRenderLaTeX_Errors(t *testing.T) {
	_, err := RenderLaTeX(nil, "")
	var asmErr *AssemblyError
	assert.ErrorAs(t, err, &asmErr)

	_, err = RenderLaTeX(&types.DocumentTree{}, filepath.Join(t.TempDir(), "missing.tmpl"))
	var tmplErr *TemplateError
	require.ErrorAs(t, err, &tmplErr)
	assert.Contains(t, tmplErr.Message, "template file not found")

	bad := filepath.Join(t.TempDir(), "bad.tmpl")
	require.NoError(t, os.WriteFile(bad, []byte(`<< .Title `), 0o600))
	_, err = RenderLaTeX(&types.DocumentTree{}, bad)
	require.ErrorAs(t, err, &tmplErr)
	assert.Equal(t, "failed to parse template", tmplErr.Message)
}

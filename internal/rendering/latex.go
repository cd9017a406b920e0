package rendering

import (
	"embed"
	"fmt"
	"os"
	"strings"
	"text/template"

	"github.com/jonathan/profile-engine/internal/types"
)

//go:embed templates/resume.tex.tmpl
var templateFS embed.FS

// DefaultTemplate is the embedded template used when no path is given.
const DefaultTemplate = "templates/resume.tex.tmpl"

// Template delimiters; LaTeX already owns braces.
const (
	leftDelim  = "<<"
	rightDelim = ">>"
)

// TemplateData is the view of a DocumentTree handed to the LaTeX template.
// Empty sections are already dropped.
type TemplateData struct {
	Title   string
	Theme   string
	Density string
	Main    []types.RenderedSection
	Sidebar []types.RenderedSection
}

// RenderLaTeX renders tree with the template at templatePath, or the embedded default
// when templatePath is empty.
func RenderLaTeX(tree *types.DocumentTree, templatePath string) (string, error) {
	if tree == nil {
		return "", &AssemblyError{Message: "document tree is nil"}
	}

	tmpl, err := parseTemplate(templatePath)
	if err != nil {
		return "", err
	}

	var result strings.Builder
	if err := tmpl.Execute(&result, buildTemplateData(tree)); err != nil {
		return "", &TemplateError{
			Message: "failed to execute template",
			Cause:   err,
		}
	}
	return result.String(), nil
}

func buildTemplateData(tree *types.DocumentTree) TemplateData {
	return TemplateData{
		Title:   tree.Title,
		Theme:   tree.Theme.String(),
		Density: string(tree.Density),
		Main:    sectionsOf(tree.Main),
		Sidebar: sectionsOf(tree.Sidebar),
	}
}

func sectionsOf(nodes []types.SectionNode) []types.RenderedSection {
	rendered := types.RenderedSections(nodes)
	out := make([]types.RenderedSection, 0, len(rendered))
	for _, n := range rendered {
		out = append(out, *n.Rendered)
	}
	return out
}

// parseTemplate reads and parses a LaTeX template file
func parseTemplate(templatePath string) (*template.Template, error) {
	var (
		content []byte
		err     error
	)
	if templatePath == "" {
		content, err = templateFS.ReadFile(DefaultTemplate)
	} else {
		content, err = os.ReadFile(templatePath)
	}
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &TemplateError{
				Message: fmt.Sprintf("template file not found: %s", templatePath),
				Cause:   err,
			}
		}
		return nil, &TemplateError{
			Message: fmt.Sprintf("failed to read template file: %s", templatePath),
			Cause:   err,
		}
	}

	tmpl, err := template.New("resume").
		Delims(leftDelim, rightDelim).
		Funcs(template.FuncMap{"escape": EscapeLaTeX}).
		Parse(string(content))
	if err != nil {
		return nil, &TemplateError{
			Message: "failed to parse template",
			Cause:   err,
		}
	}
	return tmpl, nil
}

// EscapeLaTeX escapes special LaTeX characters in text
// Special characters: \ { } $ & % # ^ _ ~
func EscapeLaTeX(text string) string {
	if text == "" {
		return ""
	}

	var result strings.Builder
	result.Grow(len(text) * 2)

	for _, r := range text {
		switch r {
		case '\\':
			result.WriteString(`\textbackslash{}`)
		case '{', '}', '$', '&', '%', '#', '_':
			result.WriteByte('\\')
			result.WriteRune(r)
		case '^':
			result.WriteString(`\textasciicircum{}`)
		case '~':
			result.WriteString(`\textasciitilde{}`)
		default:
			result.WriteRune(r)
		}
	}
	return result.String()
}

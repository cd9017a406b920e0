// Package rendering assembles layout strategies and profiles into document trees
// and renders those trees to LaTeX.
package rendering

import "fmt"

// TemplateError represents an error parsing or executing a LaTeX template
type TemplateError struct {
	Message string
	Cause   error
}

func (e *TemplateError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("template error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("template error: %s", e.Message)
}

func (e *TemplateError) Unwrap() error {
	return e.Cause
}

// AssemblyError reports a strategy the assembler cannot honour.
type AssemblyError struct {
	Section string
	Message string
}

func (e *AssemblyError) Error() string {
	if e.Section != "" {
		return fmt.Sprintf("assembly error in section %s: %s", e.Section, e.Message)
	}
	return fmt.Sprintf("assembly error: %s", e.Message)
}

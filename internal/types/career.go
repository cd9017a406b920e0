// Package types provides type definitions for structured data used throughout the profile engine.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// ErrInvalidCatalogEntry is reported (via errors.Is) for a malformed career record.
var ErrInvalidCatalogEntry = errors.New("invalid catalog entry")

// CareerEntry is one read-only catalog row describing a career path.
type CareerEntry struct {
	ID                string   `json:"id" validate:"required"`
	Title             string   `json:"title" validate:"required"`
	Industry          string   `json:"industry"`
	Description       string   `json:"description"`
	RequiredSkills    []string `json:"required_skills" validate:"dive,required"`
	RequiredEducation []string `json:"required_education" validate:"dive,required"`
}

// Validate validates the CareerEntry using the validator.
func (c *CareerEntry) Validate() error {
	if c == nil {
		return &InvalidCatalogEntryError{Message: "entry is nil"}
	}
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return &InvalidCatalogEntryError{
			EntryID: c.ID,
			Message: "entry failed validation",
			Cause:   err,
		}
	}
	return nil
}

// InvalidCatalogEntryError describes a catalog row that cannot be scored.
type InvalidCatalogEntryError struct {
	EntryID string
	Index   int
	Message string
	Cause   error
}

func (e *InvalidCatalogEntryError) Error() string {
	id := e.EntryID
	if id == "" {
		id = fmt.Sprintf("#%d", e.Index)
	}
	if e.Cause != nil {
		return fmt.Sprintf("invalid catalog entry %s: %s: %v", id, e.Message, e.Cause)
	}
	return fmt.Sprintf("invalid catalog entry %s: %s", id, e.Message)
}

func (e *InvalidCatalogEntryError) Unwrap() error {
	return e.Cause
}

// Is reports whether target is ErrInvalidCatalogEntry.
func (e *InvalidCatalogEntryError) Is(target error) bool {
	return target == ErrInvalidCatalogEntry
}

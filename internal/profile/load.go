package profile

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/jonathan/profile-engine/internal/schemas"
	"github.com/jonathan/profile-engine/internal/types"
)

// LoadRaw reads a raw profile record from a JSON file and checks it against the
// raw profile schema.
func LoadRaw(path string) (map[string]any, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{
			Message: fmt.Sprintf("failed to read file %s", path),
			Cause:   err,
		}
	}
	return ParseRaw(content)
}

// ParseRaw decodes and schema-checks raw profile JSON.
func ParseRaw(content []byte) (map[string]any, error) {
	if err := schemas.Validate(schemas.RawProfile, content); err != nil {
		return nil, &LoadError{
			Message: "schema validation failed",
			Cause:   err,
		}
	}

	// Numbers stay json.Number so large numeric ids keep every digit.
	decoder := json.NewDecoder(bytes.NewReader(content))
	decoder.UseNumber()

	var raw map[string]any
	if err := decoder.Decode(&raw); err != nil {
		return nil, &LoadError{
			Message: "failed to unmarshal JSON",
			Cause:   err,
		}
	}
	return raw, nil
}

// Load reads and normalizes a profile from a JSON file.
func Load(path string) (*types.Profile, error) {
	raw, err := LoadRaw(path)
	if err != nil {
		return nil, err
	}
	return Normalize(raw)
}

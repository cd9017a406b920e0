package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTheme(t *testing.T) {
	for _, th := range []Theme{ThemeModern, ThemeMinimalist, ThemeCreative, ThemeAcademic} {
		parsed, err := ParseTheme(th.String())
		require.NoError(t, err)
		assert.Equal(t, th, parsed)
	}

	parsed, err := ParseTheme("  CREATIVE ")
	require.NoError(t, err)
	assert.Equal(t, ThemeCreative, parsed)

	parsed, err = ParseTheme("")
	require.NoError(t, err)
	assert.Equal(t, ThemeUnset, parsed)

	_, err = ParseTheme("baroque")
	assert.Error(t, err)
}

func TestTheme_JSON(t *testing.T) {
	data, err := json.Marshal(LayoutStrategy{Theme: ThemeAcademic, Density: DensityCompact})
	require.NoError(t, err)
	assert.Contains(t, string(data), `"theme":"academic"`)

	var s LayoutStrategy
	require.NoError(t, json.Unmarshal([]byte(`{"theme":"minimalist"}`), &s))
	assert.Equal(t, ThemeMinimalist, s.Theme)

	assert.Error(t, json.Unmarshal([]byte(`{"theme":"gothic"}`), &s))
}

func TestRenderedSections(t *testing.T) {
	nodes := []SectionNode{
		{SectionID: SectionSummary},
		{SectionID: SectionSkills, Rendered: &RenderedSection{Heading: "Skills"}},
	}
	got := RenderedSections(nodes)
	require.Len(t, got, 1)
	assert.Equal(t, SectionSkills, got[0].SectionID)

	data, err := json.Marshal(nodes[0])
	require.NoError(t, err)
	assert.JSONEq(t, `{"section_id":"summary","rendered":null}`, string(data))
}

package completeness

import (
	"errors"
	"testing"

	"github.com/jonathan/profile-engine/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScoreCompleteness_Empty(t *testing.T) {
	score, err := ScoreCompleteness(&types.Profile{ID: "u1"})
	require.NoError(t, err)
	assert.Equal(t, 0, score)
}

func TestScoreCompleteness_Full(t *testing.T) {
	p := &types.Profile{
		ID: "u1", FullName: "A", Email: "a@example.com", Phone: "1", District: "Matara",
		EducationDetails: &types.EducationDetails{Institution: "SLIIT", Field: "IT", GradYear: 2024},
		Skills:           []string{"a", "b", "c", "d", "e", "f", "g"},
		ResumeData:       &types.ResumeData{RecentRole: "Intern"},
	}
	score, err := ScoreCompleteness(p)
	require.NoError(t, err)
	assert.Equal(t, 100, score)
}

func TestExplain_Bands(t *testing.T) {
	p := &types.Profile{
		ID:               "u1",
		FullName:         "A",
		District:         "Jaffna",
		EducationDetails: &types.EducationDetails{Field: "Nursing"},
		Skills:           []string{"care", "first aid"},
		ResumeData:       &types.ResumeData{KeyAchievement: "Award"},
	}
	b, err := Explain(p)
	require.NoError(t, err)

	assert.Equal(t, 10, b.Identity)
	assert.Equal(t, 10, b.Education)
	assert.Equal(t, 10, b.Skills)
	// achievement alone does not unlock the experience band
	assert.Equal(t, 0, b.Experience)
	assert.Equal(t, 30, b.Total)
}

func TestScoreCompleteness_ExperienceBandIsBinary(t *testing.T) {
	withProject := &types.Profile{ID: "u1", ResumeData: &types.ResumeData{TopProject: "Website"}}
	withBoth := &types.Profile{ID: "u1", ResumeData: &types.ResumeData{TopProject: "Website", RecentRole: "Dev"}}

	a, err := ScoreCompleteness(withProject)
	require.NoError(t, err)
	b, err := ScoreCompleteness(withBoth)
	require.NoError(t, err)

	assert.Equal(t, 25, a)
	assert.Equal(t, 25, b)
}

func TestScoreCompleteness_MonotonicAsFieldsFill(t *testing.T) {
	p := &types.Profile{ID: "u1"}
	fills := []func(*types.Profile){
		func(p *types.Profile) { p.FullName = "N" },
		func(p *types.Profile) { p.Email = "e@x.lk" },
		func(p *types.Profile) { p.EducationDetails = &types.EducationDetails{Institution: "I"} },
		func(p *types.Profile) { p.Skills = append(p.Skills, "s1") },
		func(p *types.Profile) { p.EducationDetails.Field = "F" },
		func(p *types.Profile) { p.ResumeData = &types.ResumeData{TopProject: "P"} },
		func(p *types.Profile) { p.Skills = append(p.Skills, "s2", "s3", "s4", "s5", "s6") },
		func(p *types.Profile) { p.Phone = "07" },
		func(p *types.Profile) { p.District = "D" },
		func(p *types.Profile) { p.EducationDetails.GradYear = 2020 },
		func(p *types.Profile) { p.ResumeData.RecentRole = "R" },
	}

	prev, err := ScoreCompleteness(p)
	require.NoError(t, err)
	for i, fill := range fills {
		fill(p)
		score, err := ScoreCompleteness(p)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, score, prev, "fill %d lowered the score", i)
		prev = score
	}
	assert.Equal(t, 100, prev)
}

func TestScoreCompleteness_InvalidProfile(t *testing.T) {
	_, err := ScoreCompleteness(&types.Profile{})
	assert.True(t, errors.Is(err, types.ErrInvalidProfile))
}

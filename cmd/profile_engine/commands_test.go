package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeCommand(t *testing.T) {
	in := writeFile(t, "profile.json", sampleProfile)

	out, _, err := executeCommand(t, "normalize", "--in", in)
	require.NoError(t, err)

	var got map[string]any
	decode(t, out, &got)
	assert.Equal(t, "u-100", got["id"])
	assert.Equal(t, "Colombo", got["district"])
	assert.Equal(t, "0771234567", got["phone"])
	assert.Equal(t, []any{"python", "sql", "git", "excel"}, got["skills"])
}

func TestNormalizeCommand_Legacy(t *testing.T) {
	in := writeFile(t, "profile.json", sampleProfile)
	outFile := filepath.Join(t.TempDir(), "nested", "legacy.json")

	_, _, err := executeCommand(t, "normalize", "--in", in, "--legacy", "--out", outFile)
	require.NoError(t, err)

	content, err := os.ReadFile(outFile)
	require.NoError(t, err)
	var got map[string]any
	decode(t, string(content), &got)
	assert.Equal(t, "Colombo", got["district"])
	assert.Equal(t, "Colombo", got["location"])
	assert.Equal(t, got["phone"], got["phoneNumber"])
}

func TestNormalizeCommand_Errors(t *testing.T) {
	_, _, err := executeCommand(t, "normalize")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `required flag(s) "in" not set`)

	noID := writeFile(t, "noid.json", `{"fullName": "Nobody"}`)
	_, _, err = executeCommand(t, "normalize", "--in", noID)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid profile")
}

func TestMatchCommand(t *testing.T) {
	in := writeFile(t, "profile.json", sampleProfile)

	out, stderr, err := executeCommand(t, "match", "--profile", in, "--top", "2", "--verbose")
	require.NoError(t, err)

	var got struct {
		Matches []struct {
			Career struct {
				ID string `json:"id"`
			} `json:"career"`
			Report struct {
				Score     int      `json:"score"`
				Rationale []string `json:"rationale"`
			} `json:"report"`
		} `json:"matches"`
	}
	decode(t, out, &got)
	require.Len(t, got.Matches, 2)
	assert.GreaterOrEqual(t, got.Matches[0].Report.Score, got.Matches[1].Report.Score)
	assert.NotEmpty(t, got.Matches[0].Report.Rationale)
	assert.Contains(t, stderr, "CAREER MATCHES")
}

func TestMatchCommand_CustomCatalog(t *testing.T) {
	in := writeFile(t, "profile.json", sampleProfile)
	catalogFile := writeFile(t, "careers.json", `{"careers": [
		{"id": "a", "title": "Analyst", "industry": "Technology", "required_skills": ["sql"]},
		{"id": "", "title": "Broken"},
		{"id": "b", "title": "Baker", "industry": "Food", "required_skills": ["baking"]}
	]}`)

	out, _, err := executeCommand(t, "match", "--profile", in, "--catalog", catalogFile)
	require.NoError(t, err)
	assert.Contains(t, out, `"id": "a"`)
	assert.NotContains(t, out, `"id": "b"`)
}

func TestReadinessCommand(t *testing.T) {
	in := writeFile(t, "profile.json", sampleProfile)

	out, _, err := executeCommand(t, "readiness", "--profile", in, "--role", "Data Analyst")
	require.NoError(t, err)

	var got struct {
		TargetRole string   `json:"target_role"`
		Score      int      `json:"score"`
		State      string   `json:"state"`
		Roadmap    []string `json:"roadmap"`
	}
	decode(t, out, &got)
	assert.Equal(t, "Data Analyst", got.TargetRole)
	assert.Contains(t, []string{"Critical", "Developing", "Ready"}, got.State)
	if got.State == "Ready" {
		assert.Empty(t, got.Roadmap)
	} else {
		assert.NotEmpty(t, got.Roadmap)
	}
}

func TestCompletenessCommand(t *testing.T) {
	in := writeFile(t, "profile.json", sampleProfile)

	out, _, err := executeCommand(t, "completeness", "--profile", in)
	require.NoError(t, err)

	var got struct {
		Total int `json:"total"`
	}
	decode(t, out, &got)
	assert.Greater(t, got.Total, 0)
	assert.LessOrEqual(t, got.Total, 100)
}

func TestProgressCommand(t *testing.T) {
	in := writeFile(t, "profile.json", sampleProfile)

	out, _, err := executeCommand(t, "progress", "--profile", in, "--plan", "cv-basics", "--steps", "8")
	require.NoError(t, err)
	assert.Contains(t, out, `"percent": 50`)

	_, _, err = executeCommand(t, "progress", "--profile", in, "--plan", "cv-basics", "--steps", "0")
	require.Error(t, err)

	_, _, err = executeCommand(t, "progress", "--profile", in, "--plan", "unknown")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not configured")
}

func TestProgressCommand_ConfiguredPlans(t *testing.T) {
	in := writeFile(t, "profile.json", sampleProfile)
	cfg := writeFile(t, "config.yaml", "plans:\n  - id: cv-basics\n    steps: 4\n  - id: interview\n    steps: 5\n")

	out, _, err := executeCommand(t, "--config", cfg, "progress", "--profile", in)
	require.NoError(t, err)

	var got []struct {
		PlanID  string `json:"plan_id"`
		Percent int    `json:"percent"`
	}
	decode(t, out, &got)
	require.Len(t, got, 2)
	assert.Equal(t, "cv-basics", got[0].PlanID)
	assert.Equal(t, 100, got[0].Percent)
	assert.Equal(t, 0, got[1].Percent)
}

func TestLayoutCommand(t *testing.T) {
	in := writeFile(t, "profile.json", sampleProfile)

	out, _, err := executeCommand(t, "layout", "--profile", in, "--theme", "minimalist")
	require.NoError(t, err)
	assert.Contains(t, out, `"theme": "minimalist"`)
	assert.Contains(t, out, `"sidebar_sections": [`)

	_, _, err = executeCommand(t, "layout", "--profile", in, "--theme", "baroque")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown theme")
}

func TestAssembleCommand(t *testing.T) {
	in := writeFile(t, "profile.json", sampleProfile)

	out, _, err := executeCommand(t, "assemble", "--profile", in)
	require.NoError(t, err)

	var got struct {
		ID    string `json:"id"`
		Title string `json:"title"`
		Main  []struct {
			SectionID string `json:"section_id"`
		} `json:"main"`
	}
	decode(t, out, &got)
	assert.Equal(t, "Tharushi Jayasinghe", got.Title)
	assert.NotEmpty(t, got.ID)
	require.NotEmpty(t, got.Main)
	assert.Equal(t, "summary", got.Main[0].SectionID)
	assert.Contains(t, out, "Become a data analyst. Grow into data science")
}

func TestAssembleCommand_LaTeX(t *testing.T) {
	in := writeFile(t, "profile.json", sampleProfile)

	out, _, err := executeCommand(t, "assemble", "--profile", in, "--latex")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, `\documentclass`))
	assert.Contains(t, out, "University of Moratuwa")
}

func TestAnalyzeCommand(t *testing.T) {
	good := writeFile(t, "good.json", sampleProfile)
	bad := writeFile(t, "bad.json", `{"fullName": "No Id"}`)

	out, _, err := executeCommand(t, "--log-level", "error", "analyze", good, bad)
	require.NoError(t, err)

	var got []struct {
		Source   string         `json:"source"`
		Analysis map[string]any `json:"analysis"`
		Error    string         `json:"error"`
	}
	decode(t, out, &got)
	require.Len(t, got, 2)
	assert.Equal(t, good, got[0].Source)
	assert.Empty(t, got[0].Error)
	assert.Equal(t, "u-100", got[0].Analysis["profile_id"])
	assert.Nil(t, got[1].Analysis)
	assert.Contains(t, got[1].Error, "invalid profile")
}

func TestAnalyzeCommand_RequiresArgs(t *testing.T) {
	_, _, err := executeCommand(t, "analyze")
	require.Error(t, err)
}

func TestRootCommand_BadConfig(t *testing.T) {
	in := writeFile(t, "profile.json", sampleProfile)
	cfg := writeFile(t, "config.yaml", "ranking:\n  top_n: 0\n")

	_, _, err := executeCommand(t, "--config", cfg, "completeness", "--profile", in)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config error")
}

func TestMatchCommand_SingleCareer(t *testing.T) {
	in := writeFile(t, "profile.json", sampleProfile)

	out, _, err := executeCommand(t, "match", "--profile", in, "--career", "registered-nurse")
	require.NoError(t, err)

	var got struct {
		Career struct {
			ID string `json:"id"`
		} `json:"career"`
		Report struct {
			Score int `json:"score"`
		} `json:"report"`
	}
	decode(t, out, &got)
	assert.Equal(t, "registered-nurse", got.Career.ID)
	assert.GreaterOrEqual(t, got.Report.Score, 0)

	_, _, err = executeCommand(t, "match", "--profile", in, "--career", "astronaut")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `career "astronaut" not found`)
}

func TestValidateCommand(t *testing.T) {
	good := writeFile(t, "good.json", sampleProfile)
	bad := writeFile(t, "bad.json", `{"id": "u1", "skills": 42}`)

	out, _, err := executeCommand(t, "validate", good)
	require.NoError(t, err)
	assert.Contains(t, out, "ok   "+good)

	out, _, err = executeCommand(t, "validate", good, bad)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 of 2 files failed validation")
	assert.Contains(t, out, "FAIL "+bad)

	catalogFile := writeFile(t, "careers.json", `{"careers": []}`)
	_, _, err = executeCommand(t, "validate", "--schema", "catalog", catalogFile)
	require.NoError(t, err)

	_, _, err = executeCommand(t, "validate", "--schema", "resume", good)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown schema")
}

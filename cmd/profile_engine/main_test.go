package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"
)

const sampleProfile = `{
  "userId": "u-100",
  "fullName": "Tharushi  Jayasinghe",
  "location": "Colombo",
  "phoneNumber": "0771234567",
  "email": "tharushi@example.com",
  "highestEducation": "Bachelor's degree",
  "skills": ["Python", "SQL", "git", "Excel"],
  "interests": ["technology"],
  "careerGoal": "become a data analyst. grow into data science",
  "status": "employed",
  "experienceYears": 2,
  "educationDetails": {"institution": "University of Moratuwa", "field": "Computer Science", "gradYear": 2022},
  "resumeData": {"recentRole": "junior analyst", "keyAchievement": "automated weekly reports"},
  "completedTasks": {"cv-basics": ["t1", "t2", "t3", "t4"]}
}`

// resetFlags restores every flag of cmd and its children to its default value so
// in-process runs do not leak state into each other.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

// executeCommand runs the CLI in-process and returns stdout and stderr.
func executeCommand(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	resetFlags(rootCmd)
	t.Cleanup(func() { resetFlags(rootCmd) })

	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	return stdout.String(), stderr.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func decode(t *testing.T, out string, v any) {
	t.Helper()
	require.NoError(t, json.Unmarshal([]byte(out), v), out)
}

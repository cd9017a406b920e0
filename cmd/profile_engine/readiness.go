package main

import (
	"github.com/jonathan/profile-engine/internal/readiness"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var readinessCmd = &cobra.Command{
	Use:   "readiness",
	Short: "Score how ready a profile is for a target role",
	Long:  "Computes the readiness score, its Critical/Developing/Ready state and a roadmap of the next steps.",
	RunE:  runReadiness,
}

var (
	readinessProfileFile string
	readinessRole        string
	readinessOutputFile  string
)

func init() {
	readinessCmd.Flags().StringVarP(&readinessProfileFile, "profile", "p", "", "Path to raw profile JSON file (required)")
	readinessCmd.Flags().StringVarP(&readinessRole, "role", "r", "", "Target role (default: config, then the profile's career goal)")
	readinessCmd.Flags().StringVarP(&readinessOutputFile, "out", "o", "", "Path to output JSON file (default stdout)")

	_ = readinessCmd.MarkFlagRequired("profile")

	rootCmd.AddCommand(readinessCmd)
}

func runReadiness(cmd *cobra.Command, _ []string) error {
	p, err := loadProfile(readinessProfileFile)
	if err != nil {
		return err
	}

	role := readinessRole
	if role == "" {
		role = appConfig.Readiness.TargetRole
	}

	report, err := readiness.ScoreReadiness(p, role)
	if err != nil {
		return err
	}

	if pr := printer(cmd); pr != nil {
		pr.PrintReadiness(report)
	}
	appLogger.Info("readiness scored",
		zap.String("profile_id", p.ID),
		zap.Int("score", report.Score),
		zap.String("state", string(report.State)))

	return writeJSON(cmd, readinessOutputFile, report)
}

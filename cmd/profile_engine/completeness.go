package main

import (
	"github.com/jonathan/profile-engine/internal/completeness"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var completenessCmd = &cobra.Command{
	Use:   "completeness",
	Short: "Score whether a profile is complete enough to build a document",
	RunE:  runCompleteness,
}

var (
	completenessProfileFile string
	completenessOutputFile  string
)

func init() {
	completenessCmd.Flags().StringVarP(&completenessProfileFile, "profile", "p", "", "Path to raw profile JSON file (required)")
	completenessCmd.Flags().StringVarP(&completenessOutputFile, "out", "o", "", "Path to output JSON file (default stdout)")

	_ = completenessCmd.MarkFlagRequired("profile")

	rootCmd.AddCommand(completenessCmd)
}

func runCompleteness(cmd *cobra.Command, _ []string) error {
	p, err := loadProfile(completenessProfileFile)
	if err != nil {
		return err
	}

	breakdown, err := completeness.Explain(p)
	if err != nil {
		return err
	}

	if pr := printer(cmd); pr != nil {
		pr.PrintCompleteness(breakdown)
	}
	appLogger.Info("completeness scored", zap.String("profile_id", p.ID), zap.Int("score", breakdown.Total))

	return writeJSON(cmd, completenessOutputFile, breakdown)
}

package main

import (
	"github.com/jonathan/profile-engine/internal/profile"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var normalizeCmd = &cobra.Command{
	Use:   "normalize",
	Short: "Normalize a raw profile record into the canonical shape",
	Long:  "Resolves legacy field aliases, case-normalizes skills and interests, and writes the canonical profile as JSON.",
	RunE:  runNormalize,
}

var (
	normalizeInputFile  string
	normalizeOutputFile string
	normalizeLegacy     bool
)

func init() {
	normalizeCmd.Flags().StringVarP(&normalizeInputFile, "in", "i", "", "Path to raw profile JSON file (required)")
	normalizeCmd.Flags().StringVarP(&normalizeOutputFile, "out", "o", "", "Path to output JSON file (default stdout)")
	normalizeCmd.Flags().BoolVar(&normalizeLegacy, "legacy", false, "Mirror resolved aliases into both legacy keys")

	_ = normalizeCmd.MarkFlagRequired("in")

	rootCmd.AddCommand(normalizeCmd)
}

func runNormalize(cmd *cobra.Command, _ []string) error {
	p, err := loadProfile(normalizeInputFile)
	if err != nil {
		return err
	}

	if pr := printer(cmd); pr != nil {
		pr.PrintProfile(p)
	}

	appLogger.Info("profile normalized",
		zap.String("profile_id", p.ID),
		zap.Int("skills", len(p.Skills)),
		zap.Bool("legacy", normalizeLegacy))

	if normalizeLegacy {
		return writeJSON(cmd, normalizeOutputFile, profile.ToLegacy(p))
	}
	return writeJSON(cmd, normalizeOutputFile, p)
}

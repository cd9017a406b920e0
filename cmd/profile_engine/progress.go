package main

import (
	"fmt"

	"github.com/jonathan/profile-engine/internal/progress"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var progressCmd = &cobra.Command{
	Use:   "progress",
	Short: "Compute percent-complete of multi-step plans",
	Long: "Computes progress for one plan given by --plan/--steps, or for every plan in the config " +
		"when --plan is omitted.",
	RunE: runProgress,
}

var (
	progressProfileFile string
	progressPlanID      string
	progressSteps       int
	progressOutputFile  string
)

func init() {
	progressCmd.Flags().StringVarP(&progressProfileFile, "profile", "p", "", "Path to raw profile JSON file (required)")
	progressCmd.Flags().StringVar(&progressPlanID, "plan", "", "Plan ID (default: every configured plan)")
	progressCmd.Flags().IntVar(&progressSteps, "steps", 0, "Total steps of --plan (default: the configured value)")
	progressCmd.Flags().StringVarP(&progressOutputFile, "out", "o", "", "Path to output JSON file (default stdout)")

	_ = progressCmd.MarkFlagRequired("profile")

	rootCmd.AddCommand(progressCmd)
}

func runProgress(cmd *cobra.Command, _ []string) error {
	p, err := loadProfile(progressProfileFile)
	if err != nil {
		return err
	}

	plans := appConfig.PlanSteps()
	if progressPlanID != "" {
		steps := progressSteps
		if !cmd.Flags().Changed("steps") {
			configured, ok := plans[progressPlanID]
			if !ok {
				return fmt.Errorf("plan %q is not configured; pass --steps", progressPlanID)
			}
			steps = configured
		}
		plans = map[string]int{progressPlanID: steps}
	}

	result, err := progress.ForPlans(p, plans)
	if err != nil {
		return err
	}

	if pr := printer(cmd); pr != nil {
		pr.PrintProgress(result)
	}
	appLogger.Info("progress computed", zap.String("profile_id", p.ID), zap.Int("plans", len(result)))

	return writeJSON(cmd, progressOutputFile, result)
}

package main

import (
	"github.com/jonathan/profile-engine/internal/layout"
	"github.com/jonathan/profile-engine/internal/types"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var layoutCmd = &cobra.Command{
	Use:   "layout",
	Short: "Select a document layout strategy for a profile",
	RunE:  runLayout,
}

var (
	layoutProfileFile string
	layoutTheme       string
	layoutOutputFile  string
)

func init() {
	layoutCmd.Flags().StringVarP(&layoutProfileFile, "profile", "p", "", "Path to raw profile JSON file (required)")
	layoutCmd.Flags().StringVarP(&layoutTheme, "theme", "t", "", "Theme hint: modern, minimalist, creative, academic (default: config, then inferred)")
	layoutCmd.Flags().StringVarP(&layoutOutputFile, "out", "o", "", "Path to output JSON file (default stdout)")

	_ = layoutCmd.MarkFlagRequired("profile")

	rootCmd.AddCommand(layoutCmd)
}

// themeHint resolves a --theme flag value, falling back to the configured hint.
func themeHint(flagValue string) (types.Theme, error) {
	if flagValue == "" {
		return appConfig.ThemeHint(), nil
	}
	return types.ParseTheme(flagValue)
}

func runLayout(cmd *cobra.Command, _ []string) error {
	p, err := loadProfile(layoutProfileFile)
	if err != nil {
		return err
	}
	hint, err := themeHint(layoutTheme)
	if err != nil {
		return err
	}

	strategy, err := layout.SelectStrategy(p, hint)
	if err != nil {
		return err
	}

	if pr := printer(cmd); pr != nil {
		pr.PrintLayout(strategy)
	}
	appLogger.Info("layout selected",
		zap.String("profile_id", p.ID),
		zap.Stringer("theme", strategy.Theme),
		zap.String("density", string(strategy.Density)))

	return writeJSON(cmd, layoutOutputFile, strategy)
}

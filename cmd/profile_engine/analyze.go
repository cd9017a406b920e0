package main

import (
	"github.com/jonathan/profile-engine/internal/engine"
	"github.com/jonathan/profile-engine/internal/logging"
	"github.com/jonathan/profile-engine/internal/types"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze PROFILE.json [PROFILE.json...]",
	Short: "Run every component over one or more profiles",
	Long: "Normalizes each profile and runs completeness, career matching, readiness, plan progress, " +
		"layout selection and document assembly. Profiles are analyzed concurrently.",
	Args: cobra.MinimumNArgs(1),
	RunE: runAnalyze,
}

var (
	analyzeCatalogFile string
	analyzeOutputFile  string
)

func init() {
	analyzeCmd.Flags().StringVar(&analyzeCatalogFile, "catalog", "", "Path to career catalog JSON file (default: config, then bundled)")
	analyzeCmd.Flags().StringVarP(&analyzeOutputFile, "out", "o", "", "Path to output JSON file (default stdout)")

	rootCmd.AddCommand(analyzeCmd)
}

// analyzeOutput is one entry of the analyze report.
type analyzeOutput struct {
	Source   string           `json:"source"`
	Analysis *engine.Analysis `json:"analysis,omitempty"`
	Error    string           `json:"error,omitempty"`
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	careers, err := loadCatalog(analyzeCatalogFile)
	if err != nil {
		return err
	}

	out := make([]analyzeOutput, len(args))
	profiles := make([]*types.Profile, 0, len(args))
	sources := make([]int, 0, len(args))
	for i, path := range args {
		out[i].Source = path
		p, err := loadProfile(path)
		if err != nil {
			appLogger.Warn("profile skipped", zap.String("path", path), zap.Error(err))
			out[i].Error = err.Error()
			continue
		}
		profiles = append(profiles, p)
		sources = append(sources, i)
	}

	opts := engine.OptionsFromConfig(appConfig, appLogger)
	items, err := engine.AnalyzeBatch(cmd.Context(), profiles, careers, opts)
	if err != nil {
		return err
	}

	pr := printer(cmd)
	for _, item := range items {
		slot := &out[sources[item.Index]]
		if item.Err != nil {
			slot.Error = item.Err.Error()
			continue
		}
		slot.Analysis = item.Analysis
		logging.Skipped(appLogger, "malformed career", item.Analysis.Skipped)
		if pr != nil {
			pr.PrintCompleteness(item.Analysis.Completeness)
			pr.PrintReadiness(item.Analysis.Readiness)
			pr.PrintProgress(item.Analysis.Progress)
			pr.PrintDocument(item.Analysis.Document)
		}
	}

	appLogger.Info("analysis complete", zap.Int("profiles", len(args)), zap.Int("analyzed", len(profiles)))
	return writeJSON(cmd, analyzeOutputFile, out)
}

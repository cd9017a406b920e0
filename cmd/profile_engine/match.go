package main

import (
	"fmt"

	"github.com/jonathan/profile-engine/internal/catalog"
	"github.com/jonathan/profile-engine/internal/logging"
	"github.com/jonathan/profile-engine/internal/ranking"
	"github.com/jonathan/profile-engine/internal/types"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var matchCmd = &cobra.Command{
	Use:   "match",
	Short: "Rank catalog careers against a profile",
	Long:  "Scores every career in the catalog against the profile and writes the top matches with their rationale.",
	RunE:  runMatch,
}

var (
	matchProfileFile string
	matchCatalogFile string
	matchTopN        int
	matchCareerID    string
	matchOutputFile  string
)

func init() {
	matchCmd.Flags().StringVarP(&matchProfileFile, "profile", "p", "", "Path to raw profile JSON file (required)")
	matchCmd.Flags().StringVar(&matchCatalogFile, "catalog", "", "Path to career catalog JSON file (default: config, then bundled)")
	matchCmd.Flags().IntVarP(&matchTopN, "top", "n", 0, "Number of matches to keep (default: config ranking.top_n)")
	matchCmd.Flags().StringVar(&matchCareerID, "career", "", "Score only the career with this id")
	matchCmd.Flags().StringVarP(&matchOutputFile, "out", "o", "", "Path to output JSON file (default stdout)")

	_ = matchCmd.MarkFlagRequired("profile")

	rootCmd.AddCommand(matchCmd)
}

func runMatch(cmd *cobra.Command, _ []string) error {
	p, err := loadProfile(matchProfileFile)
	if err != nil {
		return err
	}
	careers, err := loadCatalog(matchCatalogFile)
	if err != nil {
		return err
	}

	if matchCareerID != "" {
		return runMatchOne(cmd, p, careers)
	}

	topN := matchTopN
	if topN <= 0 {
		topN = appConfig.Ranking.TopN
	}

	result, err := ranking.RankMatches(p, careers, topN)
	if err != nil {
		return err
	}
	logging.Skipped(appLogger, "malformed career", result.Skipped)

	if pr := printer(cmd); pr != nil {
		pr.PrintMatches(result)
	}
	appLogger.Info("careers ranked",
		zap.String("profile_id", p.ID),
		zap.Int("candidates", len(careers)),
		zap.Int("matches", len(result.Matches)))

	return writeJSON(cmd, matchOutputFile, result)
}

// runMatchOne scores the single career named by --career, zero scores included.
func runMatchOne(cmd *cobra.Command, p *types.Profile, careers catalog.Catalog) error {
	career, ok := careers.Find(matchCareerID)
	if !ok {
		return fmt.Errorf("career %q not found in catalog", matchCareerID)
	}

	report, err := ranking.ScoreMatch(p, &career)
	if err != nil {
		return err
	}
	result := types.MatchResult{Career: career, Report: *report}

	if pr := printer(cmd); pr != nil {
		pr.PrintMatches(&types.RankResult{Matches: []types.MatchResult{result}})
	}
	appLogger.Info("career scored",
		zap.String("profile_id", p.ID),
		zap.String("career_id", career.ID),
		zap.Int("score", report.Score))

	return writeJSON(cmd, matchOutputFile, result)
}

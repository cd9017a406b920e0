// Package engine runs every profile component over one snapshot, or over a batch of
// independent snapshots in parallel.
package engine

import (
	"context"
	"fmt"

	"github.com/jonathan/profile-engine/internal/completeness"
	"github.com/jonathan/profile-engine/internal/config"
	"github.com/jonathan/profile-engine/internal/layout"
	"github.com/jonathan/profile-engine/internal/progress"
	"github.com/jonathan/profile-engine/internal/ranking"
	"github.com/jonathan/profile-engine/internal/readiness"
	"github.com/jonathan/profile-engine/internal/rendering"
	"github.com/jonathan/profile-engine/internal/types"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency bounds AnalyzeBatch when Options.Concurrency is unset.
const DefaultConcurrency = 4

// Options holds the caller-supplied parameters of an analysis.
type Options struct {
	TopN        int
	ThemeHint   types.Theme
	TargetRole  string
	Plans       map[string]int
	Concurrency int
	Logger      *zap.Logger
}

// OptionsFromConfig maps the CLI configuration onto Options.
func OptionsFromConfig(cfg *config.Config, log *zap.Logger) Options {
	return Options{
		TopN:        cfg.Ranking.TopN,
		ThemeHint:   cfg.ThemeHint(),
		TargetRole:  cfg.Readiness.TargetRole,
		Plans:       cfg.PlanSteps(),
		Concurrency: cfg.Batch.Concurrency,
		Logger:      log,
	}
}

func (o Options) logger() *zap.Logger {
	if o.Logger == nil {
		return zap.NewNop()
	}
	return o.Logger
}

// Analysis is the combined output of every component for one profile.
type Analysis struct {
	ProfileID    string                  `json:"profile_id"`
	Completeness *completeness.Breakdown `json:"completeness"`
	Matches      []types.MatchResult     `json:"matches"`
	Readiness    *types.ReadinessReport  `json:"readiness"`
	Progress     []progress.PlanProgress `json:"progress"`
	Layout       *types.LayoutStrategy   `json:"layout"`
	Document     *types.DocumentTree     `json:"document"`

	// Skipped holds catalog entries the ranking left out.
	Skipped []error `json:"-"`
}

// Analyze runs every component over profile. Components read the same snapshot and
// never see each other's output, except the assembler which renders the selected layout.
func Analyze(profile *types.Profile, catalog []types.CareerEntry, opts Options) (*Analysis, error) {
	if err := profile.Validate(); err != nil {
		return nil, err
	}

	breakdown, err := completeness.Explain(profile)
	if err != nil {
		return nil, fmt.Errorf("completeness failed: %w", err)
	}

	ranked, err := ranking.RankMatches(profile, catalog, opts.TopN)
	if err != nil {
		return nil, fmt.Errorf("ranking failed: %w", err)
	}

	ready, err := readiness.ScoreReadiness(profile, opts.TargetRole)
	if err != nil {
		return nil, fmt.Errorf("readiness failed: %w", err)
	}

	plans, err := progress.ForPlans(profile, opts.Plans)
	if err != nil {
		return nil, fmt.Errorf("progress failed: %w", err)
	}

	strategy, err := layout.SelectStrategy(profile, opts.ThemeHint)
	if err != nil {
		return nil, fmt.Errorf("layout selection failed: %w", err)
	}

	doc, err := rendering.Assemble(profile, strategy)
	if err != nil {
		return nil, fmt.Errorf("assembly failed: %w", err)
	}

	return &Analysis{
		ProfileID:    profile.ID,
		Completeness: breakdown,
		Matches:      ranked.Matches,
		Readiness:    ready,
		Progress:     plans,
		Layout:       strategy,
		Document:     doc,
		Skipped:      ranked.Skipped,
	}, nil
}

// BatchItem is the outcome for one profile of a batch. Exactly one of Analysis and
// Err is set.
type BatchItem struct {
	Index    int
	Analysis *Analysis
	Err      error
}

// AnalyzeBatch analyzes independent profiles concurrently, at most opts.Concurrency at
// a time. Results keep input order. A failing profile only fails its own item; the
// returned error is non-nil only when ctx is cancelled before the batch finishes.
func AnalyzeBatch(ctx context.Context, profiles []*types.Profile, catalog []types.CareerEntry, opts Options) ([]BatchItem, error) {
	log := opts.logger()
	limit := opts.Concurrency
	if limit <= 0 {
		limit = DefaultConcurrency
	}

	items := make([]BatchItem, len(profiles))
	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(limit)

	for i, p := range profiles {
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			analysis, err := Analyze(p, catalog, opts)
			// each goroutine writes only its own slot
			items[i] = BatchItem{Index: i, Analysis: analysis, Err: err}
			if err != nil {
				log.Warn("profile analysis failed", zap.Int("index", i), zap.Error(err))
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("batch cancelled: %w", err)
	}
	log.Debug("batch analyzed", zap.Int("profiles", len(profiles)), zap.Int("concurrency", limit))
	return items, nil
}

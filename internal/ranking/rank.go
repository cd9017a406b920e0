// Package ranking scores profiles against career catalog entries.
package ranking

import (
	"sort"

	"github.com/jonathan/profile-engine/internal/types"
)

// DefaultTopN is the number of matches RankMatches keeps when n <= 0.
const DefaultTopN = 3

// RankMatches scores every catalog entry, drops zero scores, sorts by score descending
// (ties keep catalog order) and keeps the top n. Malformed entries are skipped and
// returned in Skipped so the caller can log them.
func RankMatches(profile *types.Profile, catalog []types.CareerEntry, n int) (*types.RankResult, error) {
	if err := profile.Validate(); err != nil {
		return nil, err
	}
	if n <= 0 {
		n = DefaultTopN
	}

	result := &types.RankResult{Matches: make([]types.MatchResult, 0, len(catalog))}
	for i := range catalog {
		career := catalog[i]
		if err := career.Validate(); err != nil {
			if invalid, ok := err.(*types.InvalidCatalogEntryError); ok {
				invalid.Index = i
			}
			result.Skipped = append(result.Skipped, err)
			continue
		}

		report := scoreMatch(profile, &career)
		if report.Score == 0 {
			continue
		}
		result.Matches = append(result.Matches, types.MatchResult{
			Career: career,
			Report: *report,
		})
	}

	sort.SliceStable(result.Matches, func(i, j int) bool {
		return result.Matches[i].Report.Score > result.Matches[j].Report.Score
	})

	if len(result.Matches) > n {
		result.Matches = result.Matches[:n]
	}
	return result, nil
}

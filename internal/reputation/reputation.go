// Package reputation derives a trust score and tier from a user's deal
// history counters.
package reputation

import entity "bibtrade/internal/domain"

const (
	TierNew           = "new"
	TierTrusted       = "trusted"
	TierHighlyTrusted = "highly_trusted"
)

// Score maps the deal counters to a 0-100 trust score. Completions earn 5,
// cancellations cost 15 and unresponsiveness costs 10 off a neutral base of
// 50. A missing stats record scores the same as all-zero counters.
func Score(stats *entity.UserStats) int {
	if stats == nil {
		return 50
	}
	score := 50 + stats.CompletedDeals*5 - stats.CancelledDeals*15 - stats.NoResponseCount*10
	if score > 100 {
		return 100
	}
	if score < 0 {
		return 0
	}
	return score
}

func Tier(score int) string {
	switch {
	case score >= 81:
		return TierHighlyTrusted
	case score >= 56:
		return TierTrusted
	default:
		return TierNew
	}
}

// AverageRating returns the mean rating and true, or 0 and false when the
// user has no ratings. Callers must render the false case as "no ratings
// yet", never as zero stars.
func AverageRating(stats *entity.UserStats) (float64, bool) {
	if stats == nil || stats.RatingCount == 0 {
		return 0, false
	}
	return float64(stats.TotalRatingSum) / float64(stats.RatingCount), true
}

package reputation

import (
	"testing"

	entity "bibtrade/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestScoreNeutralBase(t *testing.T) {
	assert.Equal(t, 50, Score(&entity.UserStats{}))
	assert.Equal(t, 50, Score(nil))
}

func TestScoreRewardsAndPenalties(t *testing.T) {
	assert.Equal(t, 100, Score(&entity.UserStats{CompletedDeals: 10}))
	assert.Equal(t, 20, Score(&entity.UserStats{CancelledDeals: 2}))
	assert.Equal(t, 70, Score(&entity.UserStats{CompletedDeals: 4}))
	assert.Equal(t, 40, Score(&entity.UserStats{NoResponseCount: 1}))
}

func TestScoreClamped(t *testing.T) {
	assert.Equal(t, 100, Score(&entity.UserStats{CompletedDeals: 1000}))
	assert.Equal(t, 0, Score(&entity.UserStats{CancelledDeals: 1000}))
}

func TestTierCutoffs(t *testing.T) {
	assert.Equal(t, TierNew, Tier(0))
	assert.Equal(t, TierNew, Tier(50))
	assert.Equal(t, TierNew, Tier(55))
	assert.Equal(t, TierTrusted, Tier(56))
	assert.Equal(t, TierTrusted, Tier(80))
	assert.Equal(t, TierHighlyTrusted, Tier(81))
	assert.Equal(t, TierHighlyTrusted, Tier(100))
}

func TestTierFromStats(t *testing.T) {
	assert.Equal(t, TierNew, Tier(Score(&entity.UserStats{})))
	assert.Equal(t, TierTrusted, Tier(Score(&entity.UserStats{CompletedDeals: 4})))
	assert.Equal(t, TierHighlyTrusted, Tier(Score(&entity.UserStats{CompletedDeals: 10})))
}

func TestAverageRating(t *testing.T) {
	avg, ok := AverageRating(&entity.UserStats{RatingCount: 4, TotalRatingSum: 18})
	assert.True(t, ok)
	assert.InDelta(t, 4.5, avg, 0.0001)
}

func TestAverageRatingNone(t *testing.T) {
	_, ok := AverageRating(&entity.UserStats{})
	assert.False(t, ok)

	_, ok = AverageRating(nil)
	assert.False(t, ok)
}

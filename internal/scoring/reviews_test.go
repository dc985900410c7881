package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/digitalmovement/airbnb-analyzer-sub000/internal/core/domain"
)

func reviewListing(rating float64, count int, favorite bool) *domain.Listing {
	l := domain.NewListing("")
	l.Reviews = domain.Reviews{
		OverallRating:   rating,
		ReviewCount:     count,
		IsGuestFavorite: favorite,
	}
	return l
}

func TestScoreReviews_Formula(t *testing.T) {
	scorer := NewScorer()

	tests := []struct {
		name     string
		rating   float64
		count    int
		favorite bool
		score    int
		status   domain.CategoryStatus
	}{
		// 4.6 rounds to 5: 6.0 rating part + 1.92 volume = 7.92 -> 8.
		{"strong rating modest volume", 4.6, 12, false, 8, domain.StatusExcellent},
		{"no reviews", 0, 0, false, 0, domain.StatusPoor},
		{"perfect with badge", 5.0, 100, true, 10, domain.StatusExcellent},
		// 3.4 rounds to 3: 3.6 + 4 (capped volume) = 7.6 -> 8.
		{"mediocre rating high volume", 3.4, 200, false, 8, domain.StatusExcellent},
		// 4.0: 4.8 + 0.16 = 4.96 -> 5.
		{"good rating one review", 4.0, 1, false, 5, domain.StatusAverage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := scorer.scoreReviews(reviewListing(tt.rating, tt.count, tt.favorite))
			assert.Equal(t, tt.score, result.Score)
			assert.Equal(t, tt.status, result.Status)
		})
	}
}

func TestScoreReviews_RatingCappedAtFive(t *testing.T) {
	scorer := NewScorer()

	// A provider reporting >5 must not leak extra points.
	inflated := scorer.scoreReviews(reviewListing(9.8, 25, false))
	legit := scorer.scoreReviews(reviewListing(5.0, 25, false))

	assert.Equal(t, legit.Score, inflated.Score)
}

func TestScoreReviews_BadgeWorthOnePoint(t *testing.T) {
	scorer := NewScorer()

	with := scorer.scoreReviews(reviewListing(4.0, 50, true))
	without := scorer.scoreReviews(reviewListing(4.0, 50, false))

	assert.Equal(t, without.Score+1, with.Score)
}

func TestScoreReviews_NoReviewsRecommendation(t *testing.T) {
	scorer := NewScorer()

	result := scorer.scoreReviews(reviewListing(0, 0, false))
	assert.NotEmpty(t, result.Recommendations)
	assert.Equal(t, "No reviews yet.", result.Message)
}

package scoring

import (
	"fmt"
	"math"

	"github.com/digitalmovement/airbnb-analyzer-sub000/internal/core/domain"
)

// scoreReviews rewards rating, review volume and the guest favorite
// badge: round(min(5, rating)) x 1.2 + min(4, count/25 x 4) + badge.
func (s *Scorer) scoreReviews(l *domain.Listing) domain.CategoryResult {
	rating := math.Min(5, l.Reviews.OverallRating)
	count := l.Reviews.ReviewCount

	ratingPart := float64(roundHalfUp(rating)) * 1.2
	volumePart := math.Min(4, float64(count)/25*4)
	badgePart := 0.0
	if l.Reviews.IsGuestFavorite {
		badgePart = 1
	}

	score := clamp(roundHalfUp(ratingPart+volumePart+badgePart), 0, maxReviews)

	var message string
	var recs []string
	switch {
	case count == 0:
		message = "No reviews yet."
		recs = append(recs, "Encourage your first guests to leave a review; early reviews drive bookings.")
	case l.Reviews.OverallRating < 4.5:
		message = fmt.Sprintf("Rated %.2f across %d reviews.", l.Reviews.OverallRating, count)
		recs = append(recs, "Address recurring complaints in low-rated categories to lift the overall rating.")
	default:
		message = fmt.Sprintf("Rated %.2f across %d reviews.", l.Reviews.OverallRating, count)
	}

	if count > 0 && !l.Reviews.IsGuestFavorite {
		recs = append(recs, "Consistent high ratings across categories earn the Guest Favorite badge.")
	}

	return domain.CategoryResult{
		Category:        domain.CategoryReviews,
		Score:           score,
		MaxScore:        maxReviews,
		Status:          fourLevelStatus(score, maxReviews),
		Message:         message,
		Recommendations: recs,
	}
}

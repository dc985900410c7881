package scoring

import (
	"fmt"

	"github.com/digitalmovement/airbnb-analyzer-sub000/internal/core/domain"
)

// scorePhotos bands on photo count. Ten or more photos earn the full
// band; a listing with none scores zero.
func (s *Scorer) scorePhotos(l *domain.Listing) domain.CategoryResult {
	count := len(l.Photos)

	var score int
	var message string
	var recs []string

	switch {
	case count == 0:
		score = 0
		message = "No photos found. Listings without photos rarely get booked."
		recs = append(recs, "Add at least 10 well-lit photos, starting with your best exterior or living space shot.")
	case count < 5:
		score = 10
		message = fmt.Sprintf("Only %d photos. Guests expect a full visual tour.", count)
		recs = append(recs, "Add photos of every room plus any outdoor space.")
	case count < 10:
		score = 20
		message = fmt.Sprintf("%d photos is decent, but more coverage performs better.", count)
		recs = append(recs, "Reach 10+ photos to cover every room and detail guests ask about.")
	default:
		score = 30
		message = fmt.Sprintf("%d photos gives guests a complete picture.", count)
	}

	return domain.CategoryResult{
		Category:        domain.CategoryPhotos,
		Score:           score,
		MaxScore:        maxPhotos,
		Status:          threeLevelStatus(score, maxPhotos),
		Message:         message,
		Recommendations: recs,
	}
}

package scoring

import (
	"fmt"
	"math"
	"strings"

	"github.com/digitalmovement/airbnb-analyzer-sub000/internal/core/domain"
)

// scoreAmenities combines essentials coverage (0-7) with a quantity
// bonus (0-3). Coverage counts checklist groups where any advertised
// amenity matches any group item by case-insensitive substring.
func (s *Scorer) scoreAmenities(l *domain.Listing) domain.CategoryResult {
	var covered int
	var missing []EssentialCategory
	for _, group := range s.essentials {
		if s.groupCovered(l, group) {
			covered++
		} else {
			missing = append(missing, group)
		}
	}

	total := len(s.essentials)
	var coverage float64
	if total > 0 {
		coverage = float64(covered) / float64(total) * 7
	}
	quantity := math.Min(3, float64(len(l.Amenities))/20*3)

	score := clamp(roundHalfUp(coverage+quantity), 0, maxAmenities)

	message := fmt.Sprintf("%d of %d essential amenity groups covered (%d amenities listed).",
		covered, total, len(l.Amenities))

	var recs []string
	for _, group := range missing {
		recs = append(recs, fmt.Sprintf("Add %s amenities, e.g. %s.",
			strings.ToLower(group.Name), strings.Join(group.Items[:min(2, len(group.Items))], " or ")))
	}

	return domain.CategoryResult{
		Category:        domain.CategoryAmenities,
		Score:           score,
		MaxScore:        maxAmenities,
		Status:          fourLevelStatus(score, maxAmenities),
		Message:         message,
		Recommendations: recs,
	}
}

func (s *Scorer) groupCovered(l *domain.Listing, group EssentialCategory) bool {
	for _, item := range group.Items {
		if l.HasAmenity(item) {
			return true
		}
	}
	return false
}

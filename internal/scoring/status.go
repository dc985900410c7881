package scoring

import (
	"math"
	"strings"

	"github.com/digitalmovement/airbnb-analyzer-sub000/internal/core/domain"
)

// threeLevelStatus tags the content categories (Title, Description,
// Photos): success at 80% of max, error below a third.
func threeLevelStatus(score, max int) domain.CategoryStatus {
	ratio := float64(score) / float64(max)
	switch {
	case ratio >= 0.8:
		return domain.StatusSuccess
	case ratio >= 1.0/3.0:
		return domain.StatusWarning
	default:
		return domain.StatusError
	}
}

// fourLevelStatus tags the quality categories (Amenities, Reviews,
// CancellationPolicy) at 40/60/80% of max.
func fourLevelStatus(score, max int) domain.CategoryStatus {
	ratio := float64(score) / float64(max)
	switch {
	case ratio >= 0.8:
		return domain.StatusExcellent
	case ratio >= 0.6:
		return domain.StatusGood
	case ratio >= 0.4:
		return domain.StatusAverage
	default:
		return domain.StatusPoor
	}
}

// roundHalfUp is standard round-half-up, applied before clamping.
func roundHalfUp(f float64) int {
	return int(math.Floor(f + 0.5))
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func containsAnyFold(s string, terms []string) bool {
	lower := strings.ToLower(s)
	for _, t := range terms {
		if strings.Contains(lower, strings.ToLower(t)) {
			return true
		}
	}
	return false
}

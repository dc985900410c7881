// Package scoring computes the deterministic optimization score for a
// canonical listing. Six independent sub-scorers each produce a bounded
// category result; the overall score is their clamped sum. Scoring is a
// pure function of the listing: no I/O, no randomness, no clock.
package scoring

import "github.com/digitalmovement/airbnb-analyzer-sub000/internal/core/domain"

// Category maximums. The raw sum can reach 110; the overall score is
// clamped to 100, so a listing can max out without being perfect
// everywhere.
const (
	maxTitle       = 20
	maxDescription = 30
	maxPhotos      = 30
	maxAmenities   = 10
	maxReviews     = 10
	maxPolicy      = 10
)

// Scorer derives a score report from a canonical listing. The essential
// amenity checklist and luxury keyword list are editorial reference
// data injected at construction.
type Scorer struct {
	essentials     []EssentialCategory
	luxuryKeywords []string
}

// NewScorer creates a scorer with the bundled reference data.
func NewScorer() *Scorer {
	return NewScorerWithRefData(DefaultEssentials(), DefaultLuxuryKeywords())
}

// NewScorerWithRefData creates a scorer with custom reference data.
func NewScorerWithRefData(essentials []EssentialCategory, luxuryKeywords []string) *Scorer {
	return &Scorer{
		essentials:     essentials,
		luxuryKeywords: luxuryKeywords,
	}
}

// Score computes the full report. It is total and deterministic:
// identical listings yield identical reports, and every well-formed
// listing produces one.
func (s *Scorer) Score(l *domain.Listing) domain.ScoreReport {
	categories := []domain.CategoryResult{
		s.scoreTitle(l),
		s.scoreDescription(l),
		s.scorePhotos(l),
		s.scoreAmenities(l),
		s.scoreReviews(l),
		s.scorePolicy(l),
	}

	total := 0
	for _, c := range categories {
		total += c.Score
	}
	overall := clamp(total, 0, 100)

	return domain.ScoreReport{
		OverallScore:   overall,
		SummaryTier:    domain.TierForScore(overall),
		CategoryScores: categories,
	}
}

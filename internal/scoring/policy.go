package scoring

import (
	"fmt"

	"github.com/digitalmovement/airbnb-analyzer-sub000/internal/core/domain"
)

// Base scores by strictness 1-5. Luxury properties are expected to run
// stricter policies, so their table peaks in the middle; standard
// properties are rewarded for leniency.
var (
	standardPolicyScores = [5]int{9, 8, 6, 4, 2}
	luxuryPolicyScores   = [5]int{6, 7, 8, 8, 7}
)

// scorePolicy looks up the base score by property class and strictness,
// then adds an instant-book bonus, clamped to the category max.
func (s *Scorer) scorePolicy(l *domain.Listing) domain.CategoryResult {
	strictness := l.CancellationPolicy.Strictness
	if strictness < 1 {
		strictness = 1
	}
	if strictness > 5 {
		strictness = 5
	}

	luxury := containsAnyFold(l.PropertyType, s.luxuryKeywords)

	var score int
	if luxury {
		score = luxuryPolicyScores[strictness-1]
	} else {
		score = standardPolicyScores[strictness-1]
	}
	if l.CancellationPolicy.CanInstantBook {
		score++
	}
	score = clamp(score, 0, maxPolicy)

	name := l.CancellationPolicy.Name
	var message string
	if name == "" {
		message = fmt.Sprintf("Cancellation strictness %d of 5.", strictness)
	} else {
		message = fmt.Sprintf("%q policy, strictness %d of 5.", name, strictness)
	}

	var recs []string
	if !luxury && strictness >= 4 {
		recs = append(recs, "A strict cancellation policy deters guests for this property type; consider a moderate one.")
	}
	if !l.CancellationPolicy.CanInstantBook {
		recs = append(recs, "Enable Instant Book; listings with it rank higher and convert better.")
	}

	return domain.CategoryResult{
		Category:        domain.CategoryCancellationPolicy,
		Score:           score,
		MaxScore:        maxPolicy,
		Status:          fourLevelStatus(score, maxPolicy),
		Message:         message,
		Recommendations: recs,
	}
}

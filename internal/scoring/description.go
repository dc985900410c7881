package scoring

import (
	"fmt"
	"strings"

	"github.com/digitalmovement/airbnb-analyzer-sub000/internal/core/domain"
)

// scoreDescription bands on description length, with a readability
// penalty for long unbroken walls of text.
func (s *Scorer) scoreDescription(l *domain.Listing) domain.CategoryResult {
	length := len([]rune(l.Description))

	var score int
	var message string
	var recs []string

	switch {
	case length < 100:
		score = 5
		message = fmt.Sprintf("Description is only %d characters; guests have little to go on.", length)
		recs = append(recs, "Describe the space, guest access and the neighbourhood in a few paragraphs.")
	case length < 300:
		score = 15
		message = fmt.Sprintf("Description is %d characters; a fuller write-up builds more trust.", length)
		recs = append(recs, "Aim for at least 300 characters covering the space and nearby attractions.")
	case length < 1000:
		score = 25
		message = "Description has good depth."
	default:
		score = 30
		message = "Description is thorough."
	}

	if length > 300 && !strings.Contains(l.Description, "\n") {
		score -= 5
		if score < 5 {
			score = 5
		}
		recs = append(recs, "Break the description into paragraphs or sections; one solid block is hard to scan.")
	}

	if len(l.DescriptionSections) < 2 && length >= 300 {
		recs = append(recs, "Use bolded headers like \"The space\" and \"Guest access\" to structure the text.")
	}

	return domain.CategoryResult{
		Category:        domain.CategoryDescription,
		Score:           score,
		MaxScore:        maxDescription,
		Status:          threeLevelStatus(score, maxDescription),
		Message:         message,
		Recommendations: recs,
	}
}

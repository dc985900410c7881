package scoring

import (
	"fmt"

	"github.com/digitalmovement/airbnb-analyzer-sub000/internal/core/domain"
)

// descriptiveKeywords gate a wording recommendation only; keyword
// presence never changes the title score.
var descriptiveKeywords = []string{
	"cozy", "modern", "spacious", "charming", "stunning",
	"private", "quiet", "bright", "beautiful", "central",
}

// scoreTitle bands on title length. 60 characters is the inclusive
// upper edge of the optimal band; 61 drops to the truncation band.
func (s *Scorer) scoreTitle(l *domain.Listing) domain.CategoryResult {
	length := len([]rune(l.Title))

	var score int
	var message string
	var recs []string

	switch {
	case length < 15:
		score = 5
		message = fmt.Sprintf("Title is only %d characters, too short to stand out in search.", length)
		recs = append(recs, "Expand the title to 30-60 characters highlighting the space and location.")
	case length < 30:
		score = 10
		message = fmt.Sprintf("Title is %d characters; there is room for more detail.", length)
		recs = append(recs, "Use the full 60 characters to mention standout features.")
	case length <= 60:
		score = 20
		message = "Title length is in the optimal range."
	default:
		score = 15
		message = fmt.Sprintf("Title is %d characters and will be truncated in search results.", length)
		recs = append(recs, "Shorten the title to 60 characters or fewer.")
	}

	if l.Title != "" && !containsAnyFold(l.Title, descriptiveKeywords) {
		recs = append(recs, "Add a descriptive word guests search for, like \"cozy\" or \"spacious\".")
	}

	return domain.CategoryResult{
		Category:        domain.CategoryTitle,
		Score:           score,
		MaxScore:        maxTitle,
		Status:          threeLevelStatus(score, maxTitle),
		Message:         message,
		Recommendations: recs,
	}
}

package listingtext

import (
	"regexp"
	"strconv"
	"strings"
)

// Quantities are the structural counts extracted from free-text
// fragments like "2 bedrooms" or "1.5 baths".
type Quantities struct {
	Bedrooms  int
	Bathrooms float64 // fractional values allowed
	Beds      int
	MaxGuests int
}

var leadingNumber = regexp.MustCompile(`\d+(?:\.\d+)?`)

// ExtractQuantities scans fragments for bedroom/bathroom/bed/guest
// counts. A fragment mentioning "bedroom" is never also counted as
// "bed"; the first fragment to yield each quantity wins.
func ExtractQuantities(fragments []string) Quantities {
	var q Quantities
	for _, f := range fragments {
		lower := strings.ToLower(f)
		num := leadingNumber.FindString(lower)
		if num == "" {
			continue
		}
		n, err := strconv.ParseFloat(num, 64)
		if err != nil {
			continue
		}

		switch {
		case strings.Contains(lower, "bedroom"):
			if q.Bedrooms == 0 {
				q.Bedrooms = int(n)
			}
		case strings.Contains(lower, "bath"):
			if q.Bathrooms == 0 {
				q.Bathrooms = n
			}
		case strings.Contains(lower, "bed"):
			if q.Beds == 0 {
				q.Beds = int(n)
			}
		case strings.Contains(lower, "guest"):
			if q.MaxGuests == 0 {
				q.MaxGuests = int(n)
			}
		}
	}
	return q
}

package listingtext

import (
	"regexp"
	"strings"
)

// titlePattern matches Airbnb-style headlines like
// "Entire rental unit in Lisbon" or "Private room in Brooklyn".
var titlePattern = regexp.MustCompile(`(?i)^((?:entire|private|shared)\s[^,]+?|room)\s+in\s+(.+)$`)

// InferFromTitle derives property type and location from a title-like
// string when the provider supplies no explicit fields. Both results
// are empty when the title does not follow the known pattern.
func InferFromTitle(title string) (propertyType, location string) {
	m := titlePattern.FindStringSubmatch(strings.TrimSpace(title))
	if m == nil {
		return "", ""
	}
	return strings.TrimSpace(m[1]), strings.TrimSpace(m[2])
}

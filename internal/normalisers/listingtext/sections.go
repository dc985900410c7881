package listingtext

import (
	"regexp"

	"github.com/digitalmovement/airbnb-analyzer-sub000/internal/core/domain"
)

// boldHeader matches the bolded headers hosts use to structure their
// descriptions ("<b>The space</b>", "<strong>Guest access</strong>").
var boldHeader = regexp.MustCompile(`(?is)<(?:b|strong)[^>]*>(.*?)</(?:b|strong)>`)

// SplitSections splits an HTML-flavoured description on bolded headers
// into ordered sections. Text preceding the first header becomes an
// untitled section. Returns nil for an effectively empty description.
func SplitSections(raw string) []domain.DescriptionSection {
	matches := boldHeader.FindAllStringSubmatchIndex(raw, -1)
	if len(matches) == 0 {
		if body := CleanHTML(raw); body != "" {
			return []domain.DescriptionSection{{Body: body}}
		}
		return nil
	}

	var sections []domain.DescriptionSection
	if lead := CleanHTML(raw[:matches[0][0]]); lead != "" {
		sections = append(sections, domain.DescriptionSection{Body: lead})
	}

	for i, m := range matches {
		title := CleanHTML(raw[m[2]:m[3]])
		end := len(raw)
		if i+1 < len(matches) {
			end = matches[i+1][0]
		}
		body := CleanHTML(raw[m[1]:end])
		if title == "" && body == "" {
			continue
		}
		sections = append(sections, domain.DescriptionSection{Title: title, Body: body})
	}
	return sections
}

// JoinSections renders sections back into one plain-text description,
// headers on their own line, sections separated by blank lines.
func JoinSections(sections []domain.DescriptionSection) string {
	var out string
	for i, s := range sections {
		if i > 0 {
			out += "\n\n"
		}
		if s.Title != "" {
			out += s.Title + "\n"
		}
		out += s.Body
	}
	return out
}

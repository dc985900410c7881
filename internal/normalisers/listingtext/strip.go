// Package listingtext holds the text extraction helpers shared by the
// provider-shape normalisers: HTML cleanup, description sectioning,
// structured-quantity parsing, amenity flattening and title inference.
package listingtext

import (
	"html"
	"regexp"
	"strings"
)

// Pre-compiled regular expressions for HTML cleanup performance.
var (
	scriptTag     = regexp.MustCompile(`(?is)<script[^>]*>.*?</script>`)
	styleTag      = regexp.MustCompile(`(?is)<style[^>]*>.*?</style>`)
	htmlComments  = regexp.MustCompile(`(?s)<!--.*?-->`)
	brTags        = regexp.MustCompile(`(?i)<br\s*/?>`)
	blockCloses   = regexp.MustCompile(`(?i)</(p|div|h[1-6]|li|blockquote|section)>`)
	allTags       = regexp.MustCompile(`<[^>]+>`)
	multiSpaces   = regexp.MustCompile(`[ \t]+`)
	multiNewlines = regexp.MustCompile(`\n{3,}`)
)

// CleanHTML converts an HTML-flavoured fragment to plain text: tags
// stripped, <br> and block closes become line breaks, entities decoded,
// runs of 3+ newlines collapsed to exactly 2.
func CleanHTML(content string) string {
	content = scriptTag.ReplaceAllString(content, "")
	content = styleTag.ReplaceAllString(content, "")
	content = htmlComments.ReplaceAllString(content, "")

	content = brTags.ReplaceAllString(content, "\n")
	content = blockCloses.ReplaceAllString(content, "\n")
	content = allTags.ReplaceAllString(content, "")

	content = html.UnescapeString(content)
	content = multiSpaces.ReplaceAllString(content, " ")

	// Trim line edges without flattening paragraph breaks.
	lines := strings.Split(content, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(line)
	}
	content = strings.Join(lines, "\n")
	content = multiNewlines.ReplaceAllString(content, "\n\n")

	return strings.TrimSpace(content)
}

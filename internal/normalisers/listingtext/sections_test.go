package listingtext

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/digitalmovement/airbnb-analyzer-sub000/internal/core/domain"
)

func TestSplitSections_NoHeaders(t *testing.T) {
	sections := SplitSections("Just a plain description with no structure.")

	require.Len(t, sections, 1)
	assert.Empty(t, sections[0].Title)
	assert.Equal(t, "Just a plain description with no structure.", sections[0].Body)
}

func TestSplitSections_Empty(t *testing.T) {
	assert.Nil(t, SplitSections(""))
	assert.Nil(t, SplitSections("<p>  </p>"))
}

func TestSplitSections_LeadingTextBecomesUntitledSection(t *testing.T) {
	raw := "A sunny two-bedroom flat.<br><b>The space</b>Open plan living room.<b>Guest access</b>You have the entire place."

	sections := SplitSections(raw)

	require.Len(t, sections, 3)
	assert.Empty(t, sections[0].Title)
	assert.Equal(t, "A sunny two-bedroom flat.", sections[0].Body)
	assert.Equal(t, "The space", sections[1].Title)
	assert.Equal(t, "Open plan living room.", sections[1].Body)
	assert.Equal(t, "Guest access", sections[2].Title)
	assert.Equal(t, "You have the entire place.", sections[2].Body)
}

func TestSplitSections_StrongTagsAndCaseInsensitive(t *testing.T) {
	raw := "<STRONG>Other things to note</STRONG>Quiet hours after 22:00."

	sections := SplitSections(raw)

	require.Len(t, sections, 1)
	assert.Equal(t, "Other things to note", sections[0].Title)
	assert.Equal(t, "Quiet hours after 22:00.", sections[0].Body)
}

func TestJoinSections_RoundTrip(t *testing.T) {
	sections := []domain.DescriptionSection{
		{Body: "Lead paragraph."},
		{Title: "The space", Body: "Open plan."},
	}

	joined := JoinSections(sections)
	assert.Equal(t, "Lead paragraph.\n\nThe space\nOpen plan.", joined)
}

func TestJoinSections_Empty(t *testing.T) {
	assert.Equal(t, "", JoinSections(nil))
}

package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewListing_Defaults(t *testing.T) {
	l := NewListing("https://www.airbnb.com/rooms/1")

	require.NotNil(t, l)
	assert.Equal(t, "https://www.airbnb.com/rooms/1", l.SourceURL)
	assert.Equal(t, DefaultStrictness, l.CancellationPolicy.Strictness)
	assert.Zero(t, l.Bedrooms)
	assert.Zero(t, l.Bathrooms)
	assert.Empty(t, l.Amenities)
}

func TestIsEmpty_NewListing(t *testing.T) {
	// The source URL and default strictness don't count as content.
	assert.True(t, NewListing("https://www.airbnb.com/rooms/1").IsEmpty())
}

func TestIsEmpty_NilListing(t *testing.T) {
	var l *Listing
	assert.True(t, l.IsEmpty())
}

func TestIsEmpty_AnyContentFieldMakesItNonEmpty(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Listing)
	}{
		{"title", func(l *Listing) { l.Title = "x" }},
		{"description", func(l *Listing) { l.Description = "x" }},
		{"photos", func(l *Listing) { l.Photos = []string{"x"} }},
		{"bedrooms", func(l *Listing) { l.Bedrooms = 1 }},
		{"bathrooms", func(l *Listing) { l.Bathrooms = 0.5 }},
		{"amenities", func(l *Listing) { l.Amenities = []string{"Wifi"} }},
		{"host name", func(l *Listing) { l.Host.Name = "Ana" }},
		{"rating", func(l *Listing) { l.Reviews.OverallRating = 4.5 }},
		{"guest favorite", func(l *Listing) { l.Reviews.IsGuestFavorite = true }},
		{"property type", func(l *Listing) { l.PropertyType = "Apartment" }},
		{"policy name", func(l *Listing) { l.CancellationPolicy.Name = "Flexible" }},
		{"price", func(l *Listing) { l.PriceAmount = 80 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := NewListing("")
			tt.mutate(l)
			assert.False(t, l.IsEmpty())
		})
	}
}

func TestHasAmenity(t *testing.T) {
	l := NewListing("")
	l.Amenities = []string{"Fast WiFi (300 Mbps)", "Full kitchen"}

	assert.True(t, l.HasAmenity("wifi"))
	assert.True(t, l.HasAmenity("KITCHEN"))
	assert.False(t, l.HasAmenity("parking"))
}

func TestRatingCategories_KnownSet(t *testing.T) {
	cats := RatingCategories()
	require.Len(t, cats, 6)
	assert.Contains(t, cats, RatingCleanliness)
	assert.Contains(t, cats, RatingCheckIn)
}

package domain

import "strings"

// Listing is the canonical normalised representation of a scraped
// property listing. Every provider payload is reconciled into this one
// shape before scoring; downstream code performs unconditional
// arithmetic on the numeric fields, so absence in the source always
// maps to the zero value here, never to a distinct null state.
type Listing struct {
	// ID is the provider-assigned identifier, treated as opaque.
	ID string `json:"id"`

	// SourceURL is the public listing URL the payload was scraped from.
	SourceURL string `json:"sourceUrl"`

	// Title is the listing headline.
	Title string `json:"title"`

	// Description is the full plain-text description after HTML stripping.
	Description string `json:"description"`

	// DescriptionSections is the description split on bolded headers.
	// Text preceding the first header becomes an untitled section.
	DescriptionSections []DescriptionSection `json:"descriptionSections"`

	// Photos holds photo URLs in display order. The first entry is the
	// representative image.
	Photos []string `json:"photos"`

	// Bedrooms, Beds and MaxGuests are whole counts; Bathrooms may be
	// fractional (e.g. 1.5). Zero means unknown.
	Bedrooms  int     `json:"bedrooms"`
	Bathrooms float64 `json:"bathrooms"`
	Beds      int     `json:"beds"`
	MaxGuests int     `json:"maxGuests"`

	// Amenities is a flat deduplicated set of amenity names. Original
	// casing of the first occurrence is preserved; matching downstream
	// is case-insensitive.
	Amenities []string `json:"amenities"`

	// Host details.
	Host Host `json:"host"`

	// Reviews details.
	Reviews Reviews `json:"reviews"`

	// PropertyType is free text, e.g. "Entire rental unit".
	PropertyType string `json:"propertyType"`

	// Location is the place name, derived from the title when no
	// explicit field exists.
	Location string `json:"location"`

	// CancellationPolicy describes the booking policy.
	CancellationPolicy CancellationPolicy `json:"cancellationPolicy"`

	// PriceAmount and PriceCurrency describe the nightly price.
	PriceAmount   float64 `json:"priceAmount"`
	PriceCurrency string  `json:"priceCurrency"`
}

// DescriptionSection is one block of the description, delimited by a
// bolded header in the source HTML.
type DescriptionSection struct {
	// Title is the header text. Empty for the leading untitled section.
	Title string `json:"title,omitempty"`

	// Body is the plain-text section content.
	Body string `json:"body"`
}

// Host holds the host-related signals used for scoring context.
type Host struct {
	Name                string   `json:"hostName"`
	Since               int      `json:"hostSince"` // year the host joined
	IsSuperhost         bool     `json:"hostIsSuperhost"`
	ResponseRatePercent int      `json:"hostResponseRatePercent"`
	ResponseTime        string   `json:"hostResponseTime"`
	About               string   `json:"hostAboutText"`
	Highlights          []string `json:"hostHighlights"`
	Rating              float64  `json:"hostRating"`      // 0-5
	ReviewCount         int      `json:"hostReviewCount"` // >= 0
}

// Reviews holds guest review signals.
type Reviews struct {
	// OverallRating is 0-5; zero means no reviews.
	OverallRating float64 `json:"overallRating"`

	// ReviewCount is the number of guest reviews.
	ReviewCount int `json:"reviewCount"`

	// IsGuestFavorite is the upstream badge, a positive scoring signal.
	IsGuestFavorite bool `json:"isGuestFavorite"`

	// CategoryRatings maps category name to a 0-5 value. Any subset of
	// the six known keys may be present.
	CategoryRatings map[string]float64 `json:"categoryRatings"`
}

// Review category rating keys a provider may supply.
const (
	RatingAccuracy      = "Accuracy"
	RatingCheckIn       = "Check-in"
	RatingCleanliness   = "Cleanliness"
	RatingCommunication = "Communication"
	RatingLocation      = "Location"
	RatingValue         = "Value"
)

// RatingCategories lists the known review rating categories in display order.
func RatingCategories() []string {
	return []string{
		RatingAccuracy,
		RatingCheckIn,
		RatingCleanliness,
		RatingCommunication,
		RatingLocation,
		RatingValue,
	}
}

// DefaultStrictness is the cancellation strictness assumed when the
// provider supplies none.
const DefaultStrictness = 3

// CancellationPolicy describes the listing's cancellation terms.
type CancellationPolicy struct {
	Name        string `json:"name"`
	Description string `json:"description"`

	// Strictness is 1 (most lenient) to 5 (most strict).
	Strictness int `json:"strictness"`

	// CanInstantBook reports whether guests can book without approval.
	CanInstantBook bool `json:"canInstantBook"`
}

// NewListing returns a listing with all fields at their defined
// defaults for the given source URL.
func NewListing(sourceURL string) *Listing {
	return &Listing{
		SourceURL:          sourceURL,
		CancellationPolicy: CancellationPolicy{Strictness: DefaultStrictness},
	}
}

// IsEmpty reports whether every content field simultaneously equals its
// default. A well-formed but empty upstream payload normalises to an
// empty listing, which must not be scored as a real one.
func (l *Listing) IsEmpty() bool {
	if l == nil {
		return true
	}
	return l.Title == "" &&
		l.Description == "" &&
		len(l.DescriptionSections) == 0 &&
		len(l.Photos) == 0 &&
		l.Bedrooms == 0 &&
		l.Bathrooms == 0 &&
		l.Beds == 0 &&
		l.MaxGuests == 0 &&
		len(l.Amenities) == 0 &&
		l.Host.Name == "" &&
		l.Host.Rating == 0 &&
		l.Host.ReviewCount == 0 &&
		l.Reviews.OverallRating == 0 &&
		l.Reviews.ReviewCount == 0 &&
		!l.Reviews.IsGuestFavorite &&
		len(l.Reviews.CategoryRatings) == 0 &&
		l.PropertyType == "" &&
		l.Location == "" &&
		l.CancellationPolicy.Name == "" &&
		l.PriceAmount == 0
}

// HasAmenity reports whether the listing advertises an amenity whose
// name contains the given term, case-insensitively.
func (l *Listing) HasAmenity(term string) bool {
	for _, a := range l.Amenities {
		if containsFold(a, term) {
			return true
		}
	}
	return false
}

// containsFold is a case-insensitive substring test.
func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

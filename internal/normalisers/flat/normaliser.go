// Package flat normalises the flat-provider payload shape: scalar
// top-level fields, photo URLs as plain strings and amenities as either
// strings or {name} objects. It doubles as the fallback for unknown
// shapes, since every extraction degrades to a default on absence.
package flat

import (
	"github.com/digitalmovement/airbnb-analyzer-sub000/internal/core/domain"
	"github.com/digitalmovement/airbnb-analyzer-sub000/internal/core/ports/driven"
	"github.com/digitalmovement/airbnb-analyzer-sub000/internal/normalisers/listingtext"
	"github.com/digitalmovement/airbnb-analyzer-sub000/internal/normalisers/payload"
)

// Ensure Normaliser implements the interface.
var _ driven.ShapeNormaliser = (*Normaliser)(nil)

// Normaliser handles the flat provider shape.
type Normaliser struct{}

// New creates a flat-shape normaliser.
func New() *Normaliser {
	return &Normaliser{}
}

// Name identifies the provider shape.
func (n *Normaliser) Name() string { return "flat" }

// Priority returns the selection priority. Lowest: flat is the fallback.
func (n *Normaliser) Priority() int { return 1 }

// Supports always reports true; any mapping can be read as the flat
// shape, yielding defaults for whatever is missing.
func (n *Normaliser) Supports(map[string]any, string) bool { return true }

// Normalise maps a flat payload into a canonical listing.
func (n *Normaliser) Normalise(m map[string]any) *domain.Listing {
	l := domain.NewListing(payload.String(m, "url", "source_url", "listing_url"))
	l.ID = payload.ID(m, "id", "listing_id")
	l.Title = payload.String(m, "title", "name")

	rawDesc := payload.String(m, "description", "summary")
	l.DescriptionSections = listingtext.SplitSections(rawDesc)
	l.Description = listingtext.JoinSections(l.DescriptionSections)

	l.Photos = payload.StringSlice(m, "photos", "images", "pictures")
	l.Amenities = listingtext.FlattenAmenities(payload.Slice(m, "amenities"))

	n.fillStructure(m, l)
	n.fillHost(m, l)
	n.fillReviews(m, l)
	n.fillPolicy(m, l)

	l.PropertyType = payload.String(m, "property_type", "room_type")
	l.Location = payload.String(m, "location", "city")
	if l.PropertyType == "" || l.Location == "" {
		pt, loc := listingtext.InferFromTitle(l.Title)
		if l.PropertyType == "" {
			l.PropertyType = pt
		}
		if l.Location == "" {
			l.Location = loc
		}
	}

	l.PriceAmount = payload.Float(m, "price", "price_per_night", "nightly_price")
	l.PriceCurrency = payload.String(m, "currency", "price_currency")

	return l
}

// fillStructure resolves the structural counts: direct numeric fields
// first, then free-text fragments under "details".
func (n *Normaliser) fillStructure(m map[string]any, l *domain.Listing) {
	l.Bedrooms = payload.Int(m, "bedrooms")
	l.Bathrooms = payload.Float(m, "bathrooms")
	l.Beds = payload.Int(m, "beds")
	l.MaxGuests = payload.Int(m, "max_guests", "guests", "accommodates")

	if l.Bedrooms == 0 && l.Bathrooms == 0 && l.Beds == 0 && l.MaxGuests == 0 {
		q := listingtext.ExtractQuantities(payload.StringSlice(m, "details"))
		l.Bedrooms, l.Bathrooms, l.Beds, l.MaxGuests = q.Bedrooms, q.Bathrooms, q.Beds, q.MaxGuests
	}
}

func (n *Normaliser) fillHost(m map[string]any, l *domain.Listing) {
	l.Host = domain.Host{
		Name:                payload.String(m, "host_name"),
		Since:               payload.Int(m, "host_since"),
		IsSuperhost:         payload.Bool(m, "host_is_superhost", "is_superhost"),
		ResponseRatePercent: payload.Int(m, "host_response_rate"),
		ResponseTime:        payload.String(m, "host_response_time"),
		About:               payload.String(m, "host_about"),
		Highlights:          payload.StringSlice(m, "host_highlights"),
		Rating:              payload.Float(m, "host_rating"),
		ReviewCount:         payload.Int(m, "host_review_count"),
	}
}

func (n *Normaliser) fillReviews(m map[string]any, l *domain.Listing) {
	l.Reviews = domain.Reviews{
		OverallRating:   payload.Float(m, "rating", "overall_rating", "stars"),
		ReviewCount:     payload.Int(m, "review_count", "reviews_count", "number_of_reviews"),
		IsGuestFavorite: payload.Bool(m, "is_guest_favorite", "guest_favorite"),
	}

	if ratings := payload.Map(m, "category_ratings"); ratings != nil {
		l.Reviews.CategoryRatings = make(map[string]float64)
		for _, cat := range domain.RatingCategories() {
			for key, val := range ratings {
				if !payload.KeyEqual(key, cat) {
					continue
				}
				if f, ok := payload.AsFloat(val); ok && f != 0 {
					l.Reviews.CategoryRatings[cat] = f
				}
			}
		}
		if len(l.Reviews.CategoryRatings) == 0 {
			l.Reviews.CategoryRatings = nil
		}
	}
}

func (n *Normaliser) fillPolicy(m map[string]any, l *domain.Listing) {
	if policy := payload.Map(m, "cancellation_policy"); policy != nil {
		l.CancellationPolicy.Name = payload.String(policy, "name")
		l.CancellationPolicy.Description = payload.String(policy, "description")
		if s := payload.Int(policy, "strictness"); s >= 1 && s <= 5 {
			l.CancellationPolicy.Strictness = s
		}
		l.CancellationPolicy.CanInstantBook = payload.Bool(policy, "can_instant_book", "instant_book")
		return
	}
	l.CancellationPolicy.Name = payload.String(m, "cancellation_policy")
	l.CancellationPolicy.CanInstantBook = payload.Bool(m, "can_instant_book", "instant_book", "is_instant_bookable")
}

// Package grouped normalises the grouped-provider payload shape:
// nested objects for host, price and rating, free-text structural
// fragments under sub_description, photos as {url} objects and
// amenities grouped by category with availability flags.
package grouped

import (
	"github.com/digitalmovement/airbnb-analyzer-sub000/internal/core/domain"
	"github.com/digitalmovement/airbnb-analyzer-sub000/internal/core/ports/driven"
	"github.com/digitalmovement/airbnb-analyzer-sub000/internal/normalisers/listingtext"
	"github.com/digitalmovement/airbnb-analyzer-sub000/internal/normalisers/payload"
)

// Ensure Normaliser implements the interface.
var _ driven.ShapeNormaliser = (*Normaliser)(nil)

// Normaliser handles the grouped provider shape.
type Normaliser struct{}

// New creates a grouped-shape normaliser.
func New() *Normaliser {
	return &Normaliser{}
}

// Name identifies the provider shape.
func (n *Normaliser) Name() string { return "grouped" }

// Priority returns the selection priority.
func (n *Normaliser) Priority() int { return 60 }

// Supports detects the grouped shape by its discriminating keys: any of
// the nested objects this provider is known for.
func (n *Normaliser) Supports(m map[string]any, _ string) bool {
	if payload.Map(m, "sub_description") != nil {
		return true
	}
	if payload.Map(m, "rating") != nil {
		return true
	}
	if payload.Map(m, "host") != nil {
		return true
	}
	if payload.Map(m, "price") != nil {
		return true
	}
	// Grouped amenities: first element carries an items sequence.
	if amenities := payload.Slice(m, "amenities"); len(amenities) > 0 {
		if first, ok := amenities[0].(map[string]any); ok {
			if _, ok := first["items"]; ok {
				return true
			}
		}
	}
	return false
}

// Normalise maps a grouped payload into a canonical listing.
func (n *Normaliser) Normalise(m map[string]any) *domain.Listing {
	l := domain.NewListing(payload.String(m, "url", "source_url"))
	l.ID = payload.ID(m, "id", "listing_id")
	l.Title = payload.String(m, "title", "name")

	rawDesc := payload.String(m, "description")
	if rawDesc == "" {
		if desc := payload.Map(m, "description"); desc != nil {
			rawDesc = payload.String(desc, "html", "text")
		}
	}
	l.DescriptionSections = listingtext.SplitSections(rawDesc)
	l.Description = listingtext.JoinSections(l.DescriptionSections)

	l.Photos = extractPhotos(m)
	l.Amenities = listingtext.FlattenAmenities(payload.Slice(m, "amenities"))

	n.fillStructure(m, l)
	n.fillHost(m, l)
	n.fillReviews(m, l)
	n.fillPolicy(m, l)

	l.PropertyType = payload.String(m, "property_type")
	l.Location = payload.String(m, "location")
	if l.PropertyType == "" || l.Location == "" {
		// The grouped provider encodes both in the headline.
		pt, loc := listingtext.InferFromTitle(payload.String(m, "sub_title", "title", "name"))
		if l.PropertyType == "" {
			l.PropertyType = pt
		}
		if l.Location == "" {
			l.Location = loc
		}
	}

	if price := payload.Map(m, "price"); price != nil {
		l.PriceAmount = payload.Float(price, "amount", "value", "per_night")
		l.PriceCurrency = payload.String(price, "currency", "currency_code")
	} else {
		l.PriceAmount = payload.Float(m, "price")
		l.PriceCurrency = payload.String(m, "currency")
	}

	return l
}

// extractPhotos reads photos as {url} objects, falling back to plain
// strings for providers that mix both encodings.
func extractPhotos(m map[string]any) []string {
	raw := payload.Slice(m, "images", "photos")
	if raw == nil {
		return nil
	}
	out := make([]string, 0, len(raw))
	for _, el := range raw {
		switch v := el.(type) {
		case string:
			if v != "" {
				out = append(out, v)
			}
		case map[string]any:
			if url := payload.String(v, "url", "src"); url != "" {
				out = append(out, url)
			}
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// fillStructure parses the free-text fragments under
// sub_description.items ("2 bedrooms", "1.5 baths"), then falls back to
// direct numeric fields for whatever the fragments did not yield.
func (n *Normaliser) fillStructure(m map[string]any, l *domain.Listing) {
	if sub := payload.Map(m, "sub_description"); sub != nil {
		q := listingtext.ExtractQuantities(payload.StringSlice(sub, "items"))
		l.Bedrooms, l.Bathrooms, l.Beds, l.MaxGuests = q.Bedrooms, q.Bathrooms, q.Beds, q.MaxGuests
	}
	if l.Bedrooms == 0 {
		l.Bedrooms = payload.Int(m, "bedrooms")
	}
	if l.Bathrooms == 0 {
		l.Bathrooms = payload.Float(m, "bathrooms")
	}
	if l.Beds == 0 {
		l.Beds = payload.Int(m, "beds")
	}
	if l.MaxGuests == 0 {
		l.MaxGuests = payload.Int(m, "max_guests", "guests", "person_capacity")
	}
}

func (n *Normaliser) fillHost(m map[string]any, l *domain.Listing) {
	host := payload.Map(m, "host")
	if host == nil {
		return
	}
	l.Host = domain.Host{
		Name:                payload.String(host, "name"),
		Since:               payload.Int(host, "since", "host_since", "member_since"),
		IsSuperhost:         payload.Bool(host, "is_superhost", "superhost"),
		ResponseRatePercent: payload.Int(host, "response_rate"),
		ResponseTime:        payload.String(host, "response_time"),
		About:               payload.String(host, "about"),
		Highlights:          payload.StringSlice(host, "highlights"),
		Rating:              payload.Float(host, "rating"),
		ReviewCount:         payload.Int(host, "review_count", "reviews"),
	}
}

// fillReviews reconciles the composite rating object. The explicit
// guest satisfaction value wins; otherwise the overall rating is the
// arithmetic mean of whichever named sub-ratings are present.
func (n *Normaliser) fillReviews(m map[string]any, l *domain.Listing) {
	l.Reviews.IsGuestFavorite = payload.Bool(m, "is_guest_favorite", "guest_favorite")

	rating := payload.Map(m, "rating")
	if rating == nil {
		l.Reviews.OverallRating = payload.Float(m, "rating")
		l.Reviews.ReviewCount = payload.Int(m, "review_count", "reviews_count")
		return
	}

	l.Reviews.ReviewCount = payload.Int(rating, "review_count", "reviews_count")
	if l.Reviews.ReviewCount == 0 {
		l.Reviews.ReviewCount = payload.Int(m, "review_count", "reviews_count")
	}

	categories := make(map[string]float64)
	for _, cat := range domain.RatingCategories() {
		for key, val := range rating {
			if !payload.KeyEqual(key, cat) {
				continue
			}
			if f, ok := payload.AsFloat(val); ok && f != 0 {
				categories[cat] = f
			}
		}
	}
	if len(categories) > 0 {
		l.Reviews.CategoryRatings = categories
	}

	if overall := payload.Float(rating, "guest_satisfaction", "overall"); overall != 0 {
		l.Reviews.OverallRating = overall
		return
	}
	if len(categories) == 0 {
		return
	}
	var sum float64
	for _, v := range categories {
		sum += v
	}
	l.Reviews.OverallRating = sum / float64(len(categories))
}

func (n *Normaliser) fillPolicy(m map[string]any, l *domain.Listing) {
	policy := payload.Map(m, "cancellation_policy", "cancellation")
	if policy == nil {
		l.CancellationPolicy.Name = payload.String(m, "cancellation_policy")
		return
	}
	l.CancellationPolicy.Name = payload.String(policy, "name")
	l.CancellationPolicy.Description = payload.String(policy, "description")
	if s := payload.Int(policy, "strictness"); s >= 1 && s <= 5 {
		l.CancellationPolicy.Strictness = s
	}
	l.CancellationPolicy.CanInstantBook = payload.Bool(policy, "can_instant_book", "instant_book")
}

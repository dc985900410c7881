package driven

import "github.com/digitalmovement/airbnb-analyzer-sub000/internal/core/domain"

// ShapeNormaliser converts one known provider payload shape into the
// canonical listing. Each normaliser recognises its shape structurally
// (presence of discriminating keys) or via the provider hint.
type ShapeNormaliser interface {
	// Name identifies the provider shape (e.g. "flat", "grouped").
	Name() string

	// Priority returns the selection priority (higher = preferred).
	// Shape-specific normalisers should return 50-100.
	// Fallback normalisers should return 1-9.
	Priority() int

	// Supports reports whether this normaliser recognises the payload.
	Supports(payload map[string]any, hint string) bool

	// Normalise maps the payload into a canonical listing. Missing
	// fields degrade to defaults; it never fails on a valid mapping.
	Normalise(payload map[string]any) *domain.Listing
}

// ListingNormaliser dispatches a raw payload to the best matching shape
// normaliser. The only error it can produce is domain.ErrMalformedPayload
// for a payload that is not a mapping at all.
type ListingNormaliser interface {
	Normalise(payload any, hint string) (*domain.Listing, error)
}

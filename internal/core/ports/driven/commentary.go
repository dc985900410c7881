package driven

import (
	"context"

	"github.com/digitalmovement/airbnb-analyzer-sub000/internal/core/domain"
)

// CommentaryProvider produces optional per-category AI commentary for a
// normalised listing. This is an optional collaborator - when nil,
// reports simply carry no AI insights. The core never calls it during a
// state transition; its output is handed to Advance as input.
type CommentaryProvider interface {
	// Commentary returns a mapping of category name to a provider-shaped
	// commentary object. Unknown categories and malformed entries are
	// tolerated downstream.
	Commentary(ctx context.Context, listing *domain.Listing) (map[string]any, error)
}

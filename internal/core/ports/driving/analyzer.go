package driving

import (
	"context"

	"github.com/digitalmovement/airbnb-analyzer-sub000/internal/core/domain"
)

// AdvanceInput carries the outcome of the external fetch step for one
// pending request. Exactly one of Payload or FetchErr is meaningful:
// a non-nil FetchErr drives the request to error regardless of Payload.
type AdvanceInput struct {
	// Payload is the raw provider payload, decoded from JSON.
	Payload any

	// ProviderHint optionally names the payload shape.
	ProviderHint string

	// Commentary is optional AI commentary, keyed by category. It is
	// merged into the report without affecting any score.
	Commentary map[string]any

	// FetchErr is the fetch collaborator's failure, if any.
	FetchErr error
}

// Analyzer is the driving port for the scrape-and-score lifecycle.
type Analyzer interface {
	// Submit creates a new pending request for a listing URL.
	Submit(ctx context.Context, sourceURL, contactAddress string) (*domain.Request, error)

	// Advance moves a pending request to its terminal state using the
	// fetch outcome. It is idempotent: advancing a terminal request is a
	// no-op returning the existing record. Concurrent calls for the same
	// request resolve to exactly one recorded transition.
	Advance(ctx context.Context, requestID string, in AdvanceInput) (*domain.Request, error)

	// Get returns a request by ID.
	Get(ctx context.Context, requestID string) (*domain.Request, error)

	// List returns all requests.
	List(ctx context.Context) ([]domain.Request, error)
}

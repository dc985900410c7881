package driven

import (
	"context"

	"github.com/digitalmovement/airbnb-analyzer-sub000/internal/core/domain"
)

// RequestStore persists analysis requests.
// Save must be atomic per record; Transition is the compare-and-swap
// primitive the lifecycle state machine relies on for its at-most-once
// transition guarantee. Read access is unrestricted.
type RequestStore interface {
	// Save stores a new request. Returns domain.ErrAlreadyExists if the
	// request ID is already taken.
	Save(ctx context.Context, req *domain.Request) error

	// Get retrieves a request by ID. Returns domain.ErrNotFound if absent.
	Get(ctx context.Context, requestID string) (*domain.Request, error)

	// List returns all requests.
	List(ctx context.Context) ([]domain.Request, error)

	// ListByState returns requests currently in the given state.
	ListByState(ctx context.Context, state domain.RequestState) ([]domain.Request, error)

	// Transition atomically replaces the stored record with req if and
	// only if its current state equals from. It returns the record now
	// in the store and whether the swap was applied. Concurrent callers
	// racing on the same request see applied=false and the winner's
	// record. Returns domain.ErrNotFound for an unknown request ID.
	Transition(ctx context.Context, req *domain.Request, from domain.RequestState) (*domain.Request, bool, error)
}

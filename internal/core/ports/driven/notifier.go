package driven

import (
	"context"

	"github.com/digitalmovement/airbnb-analyzer-sub000/internal/core/domain"
)

// Notifier delivers the outcome of a terminal request to its submitter.
// Delivery mechanics (email or otherwise) are an external concern;
// failures are logged, never propagated into the state machine.
type Notifier interface {
	Notify(ctx context.Context, req *domain.Request) error
}

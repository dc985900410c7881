// Package notify provides outcome notification adapters. Notification is
// best-effort: a failed notification never changes a request's state.
package notify

import (
	"context"

	"github.com/digitalmovement/airbnb-analyzer-sub000/internal/core/domain"
	"github.com/digitalmovement/airbnb-analyzer-sub000/internal/core/ports/driven"
	"github.com/digitalmovement/airbnb-analyzer-sub000/internal/logger"
)

// Ensure LogNotifier implements the interface.
var _ driven.Notifier = (*LogNotifier)(nil)

// LogNotifier reports request outcomes through the application logger.
// It stands in for a delivery channel (email, webhook) in deployments
// that have none configured.
type LogNotifier struct{}

// NewLogNotifier creates a log-based notifier.
func NewLogNotifier() *LogNotifier {
	return &LogNotifier{}
}

// Notify logs the terminal outcome of a request.
func (n *LogNotifier) Notify(_ context.Context, req *domain.Request) error {
	switch req.State {
	case domain.StateCompleted:
		score := 0
		if req.ScoreReport != nil {
			score = req.ScoreReport.OverallScore
		}
		logger.Info("request %s completed: %s scored %d/100 (notify: %s)",
			req.RequestID, req.SourceURL, score, contactOrNone(req.ContactAddress))
	case domain.StateError:
		logger.Info("request %s failed: %s (%s) (notify: %s)",
			req.RequestID, req.SourceURL, req.FailureReason, contactOrNone(req.ContactAddress))
	default:
		logger.Warn("notify called for non-terminal request %s in state %s",
			req.RequestID, req.State)
	}
	return nil
}

func contactOrNone(addr string) string {
	if addr == "" {
		return "none"
	}
	return addr
}

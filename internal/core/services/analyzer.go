// Package services contains the core use-case implementations: the
// request lifecycle state machine and the poller that drives pending
// requests through it.
package services

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/google/uuid"

	"github.com/digitalmovement/airbnb-analyzer-sub000/internal/core/domain"
	"github.com/digitalmovement/airbnb-analyzer-sub000/internal/core/ports/driven"
	"github.com/digitalmovement/airbnb-analyzer-sub000/internal/core/ports/driving"
	"github.com/digitalmovement/airbnb-analyzer-sub000/internal/enrichment"
	"github.com/digitalmovement/airbnb-analyzer-sub000/internal/logger"
	"github.com/digitalmovement/airbnb-analyzer-sub000/internal/metrics"
	"github.com/digitalmovement/airbnb-analyzer-sub000/internal/scoring"
)

// Failure reason labels carried on error-state requests.
const (
	ReasonFetchFailed      = "FetchFailed"
	ReasonMalformedPayload = "MalformedPayload"
	ReasonNoUsableData     = "NoUsableData"
)

// Ensure AnalyzerService implements the interface.
var _ driving.Analyzer = (*AnalyzerService)(nil)

// AnalyzerService is the request lifecycle state machine. Requests move
// pending -> completed | error exactly once; the store's compare-and-swap
// transition enforces the at-most-once guarantee under concurrency.
type AnalyzerService struct {
	store      driven.RequestStore
	normaliser driven.ListingNormaliser
	scorer     *scoring.Scorer
	notifier   driven.Notifier
	metrics    *metrics.Metrics
}

// NewAnalyzerService creates the lifecycle service. Notifier and
// metrics are optional - nil disables them.
func NewAnalyzerService(
	store driven.RequestStore,
	normaliser driven.ListingNormaliser,
	scorer *scoring.Scorer,
	notifier driven.Notifier,
	m *metrics.Metrics,
) *AnalyzerService {
	return &AnalyzerService{
		store:      store,
		normaliser: normaliser,
		scorer:     scorer,
		notifier:   notifier,
		metrics:    m,
	}
}

// Submit creates a new pending request for a listing URL.
func (s *AnalyzerService) Submit(ctx context.Context, sourceURL, contactAddress string) (*domain.Request, error) {
	parsed, err := url.Parse(sourceURL)
	if err != nil || parsed.Host == "" {
		return nil, fmt.Errorf("%w: source URL must be absolute", domain.ErrInvalidInput)
	}

	now := time.Now().UTC()
	req := &domain.Request{
		RequestID:      uuid.New().String(),
		SourceURL:      sourceURL,
		ContactAddress: contactAddress,
		State:          domain.StatePending,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := s.store.Save(ctx, req); err != nil {
		return nil, fmt.Errorf("save request: %w", err)
	}

	logger.Info("submitted request %s for %s", req.RequestID, sourceURL)
	return req, nil
}

// Advance moves a pending request to its terminal state from the fetch
// outcome. Idempotent: a terminal request is returned unchanged, and
// concurrent callers racing on the same request resolve to exactly one
// recorded transition, with every caller observing the winner's record.
func (s *AnalyzerService) Advance(ctx context.Context, requestID string, in driving.AdvanceInput) (*domain.Request, error) {
	start := time.Now()
	defer func() { s.metrics.ObserveAdvance(time.Since(start)) }()

	current, err := s.store.Get(ctx, requestID)
	if err != nil {
		return nil, fmt.Errorf("get request: %w", err)
	}
	if current.IsTerminal() {
		logger.Debug("advance: request %s already %s", requestID, current.State)
		return current, nil
	}

	if in.FetchErr != nil {
		return s.fail(ctx, current, ReasonFetchFailed, fmt.Sprintf("%s: %v", ReasonFetchFailed, in.FetchErr))
	}

	listing, err := s.normaliser.Normalise(in.Payload, in.ProviderHint)
	if err != nil {
		if errors.Is(err, domain.ErrMalformedPayload) {
			return s.fail(ctx, current, ReasonMalformedPayload,
				ReasonMalformedPayload+": provider payload is not a mapping")
		}
		return nil, fmt.Errorf("normalise: %w", err)
	}
	s.metrics.IncNormalised()

	if listing.IsEmpty() {
		return s.fail(ctx, current, ReasonNoUsableData,
			ReasonNoUsableData+": payload contained no listing fields")
	}
	if listing.SourceURL == "" {
		listing.SourceURL = current.SourceURL
	}

	report := s.scorer.Score(listing)
	report = enrichment.Merge(report, in.Commentary)

	next := *current
	next.State = domain.StateCompleted
	next.ScoreReport = &report
	next.FailureReason = ""
	next.UpdatedAt = time.Now().UTC()

	return s.commit(ctx, &next, "completed")
}

// Get returns a request by ID.
func (s *AnalyzerService) Get(ctx context.Context, requestID string) (*domain.Request, error) {
	return s.store.Get(ctx, requestID)
}

// List returns all requests.
func (s *AnalyzerService) List(ctx context.Context) ([]domain.Request, error) {
	return s.store.List(ctx)
}

// fail records a terminal error state with one human-readable reason.
func (s *AnalyzerService) fail(ctx context.Context, current *domain.Request, label, reason string) (*domain.Request, error) {
	next := *current
	next.State = domain.StateError
	next.ScoreReport = nil
	next.FailureReason = reason
	next.UpdatedAt = time.Now().UTC()

	stored, err := s.commit(ctx, &next, "error")
	if err == nil && stored.State == domain.StateError {
		s.metrics.IncFailure(label)
	}
	return stored, err
}

// commit performs the compare-and-swap transition from pending and
// fires the completion notification when this caller won the swap.
func (s *AnalyzerService) commit(ctx context.Context, next *domain.Request, outcome string) (*domain.Request, error) {
	stored, applied, err := s.store.Transition(ctx, next, domain.StatePending)
	if err != nil {
		return nil, fmt.Errorf("transition request: %w", err)
	}
	if !applied {
		// A concurrent advance won; its terminal record stands.
		logger.Debug("advance: lost transition race for %s, observing %s", next.RequestID, stored.State)
		return stored, nil
	}

	s.metrics.IncRequest(outcome)
	logger.Info("request %s -> %s", stored.RequestID, stored.State)

	if s.notifier != nil {
		if err := s.notifier.Notify(ctx, stored); err != nil {
			logger.Warn("notify %s: %v", stored.RequestID, err)
		}
	}
	return stored, nil
}

package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/digitalmovement/airbnb-analyzer-sub000/internal/adapters/driven/storage/memory"
	"github.com/digitalmovement/airbnb-analyzer-sub000/internal/core/domain"
	"github.com/digitalmovement/airbnb-analyzer-sub000/internal/core/ports/driven"
	"github.com/digitalmovement/airbnb-analyzer-sub000/internal/normalisers"
	"github.com/digitalmovement/airbnb-analyzer-sub000/internal/normalisers/flat"
	"github.com/digitalmovement/airbnb-analyzer-sub000/internal/normalisers/grouped"
	"github.com/digitalmovement/airbnb-analyzer-sub000/internal/scoring"
)

// stubFetcher serves canned payloads keyed by source URL.
type stubFetcher struct {
	payloads map[string]map[string]any
	err      error
}

func (f *stubFetcher) Fetch(_ context.Context, sourceURL string) (*driven.FetchResult, error) {
	if f.err != nil {
		return nil, f.err
	}
	payload, ok := f.payloads[sourceURL]
	if !ok {
		return nil, errors.New("unexpected url: " + sourceURL)
	}
	return &driven.FetchResult{Payload: payload, Provider: "flat"}, nil
}

// stubCommentary returns fixed commentary and records invocations.
type stubCommentary struct {
	calls int
}

func (c *stubCommentary) Commentary(_ context.Context, _ *domain.Listing) (map[string]any, error) {
	c.calls++
	return map[string]any{
		"Title": map[string]any{"summary": "Fine title."},
	}, nil
}

func newPollerFixture(fetcher driven.ListingFetcher, commentary driven.CommentaryProvider) (*Poller, *AnalyzerService, *memory.RequestStore) {
	store := memory.NewRequestStore()
	registry := normalisers.NewRegistry(flat.New(), grouped.New())
	svc := NewAnalyzerService(store, registry, scoring.NewScorer(), nil, nil)
	poller := NewPoller(PollerConfig{Interval: 10 * time.Millisecond},
		store, fetcher, commentary, registry, svc, nil)
	return poller, svc, store
}

func TestPoller_ProcessesPendingToCompleted(t *testing.T) {
	fetcher := &stubFetcher{payloads: map[string]map[string]any{
		"https://www.airbnb.com/rooms/1": {
			"title":  "Entire rental unit in Lisbon",
			"photos": []any{"a.jpg"},
		},
	}}
	poller, svc, _ := newPollerFixture(fetcher, nil)
	ctx := context.Background()

	req, err := svc.Submit(ctx, "https://www.airbnb.com/rooms/1", "")
	require.NoError(t, err)

	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = poller.Start(ctx)
	}()

	require.Eventually(t, func() bool {
		got, err := svc.Get(ctx, req.RequestID)
		return err == nil && got.State == domain.StateCompleted
	}, 2*time.Second, 10*time.Millisecond)

	poller.Stop()
	<-done
}

func TestPoller_FetchFailureBecomesErrorState(t *testing.T) {
	fetcher := &stubFetcher{err: errors.New("connection refused")}
	poller, svc, _ := newPollerFixture(fetcher, nil)
	ctx := context.Background()

	req, err := svc.Submit(ctx, "https://www.airbnb.com/rooms/1", "")
	require.NoError(t, err)

	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = poller.Start(ctx)
	}()

	require.Eventually(t, func() bool {
		got, err := svc.Get(ctx, req.RequestID)
		return err == nil && got.State == domain.StateError
	}, 2*time.Second, 10*time.Millisecond)

	poller.Stop()
	<-done

	got, err := svc.Get(ctx, req.RequestID)
	require.NoError(t, err)
	assert.Contains(t, got.FailureReason, ReasonFetchFailed)
}

func TestPoller_AttachesCommentary(t *testing.T) {
	fetcher := &stubFetcher{payloads: map[string]map[string]any{
		"https://www.airbnb.com/rooms/1": {
			"title":  "Entire rental unit in Lisbon",
			"photos": []any{"a.jpg"},
		},
	}}
	commentary := &stubCommentary{}
	poller, svc, _ := newPollerFixture(fetcher, commentary)
	ctx := context.Background()

	req, err := svc.Submit(ctx, "https://www.airbnb.com/rooms/1", "")
	require.NoError(t, err)

	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = poller.Start(ctx)
	}()

	require.Eventually(t, func() bool {
		got, err := svc.Get(ctx, req.RequestID)
		return err == nil && got.State == domain.StateCompleted
	}, 2*time.Second, 10*time.Millisecond)

	poller.Stop()
	<-done

	got, err := svc.Get(ctx, req.RequestID)
	require.NoError(t, err)
	require.NotNil(t, got.ScoreReport)
	assert.Contains(t, got.ScoreReport.AIInsights, domain.CategoryTitle)
	assert.GreaterOrEqual(t, commentary.calls, 1)
}

func TestPoller_StopIsIdempotent(t *testing.T) {
	poller, _, _ := newPollerFixture(&stubFetcher{}, nil)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = poller.Start(ctx)
	}()

	time.Sleep(20 * time.Millisecond)
	poller.Stop()
	poller.Stop()
	cancel()
	<-done
}

func TestPoller_ContextCancellationStopsStart(t *testing.T) {
	poller, _, _ := newPollerFixture(&stubFetcher{}, nil)

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() {
		errCh <- poller.Start(ctx)
	}()

	time.Sleep(20 * time.Millisecond)
	cancel()

	select {
	case err := <-errCh:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(time.Second):
		t.Fatal("poller did not stop on context cancellation")
	}
}

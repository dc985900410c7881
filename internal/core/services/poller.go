package services

import (
	"context"
	"sync"
	"time"

	"github.com/digitalmovement/airbnb-analyzer-sub000/internal/core/domain"
	"github.com/digitalmovement/airbnb-analyzer-sub000/internal/core/ports/driven"
	"github.com/digitalmovement/airbnb-analyzer-sub000/internal/core/ports/driving"
	"github.com/digitalmovement/airbnb-analyzer-sub000/internal/logger"
	"github.com/digitalmovement/airbnb-analyzer-sub000/internal/metrics"
)

// DefaultPollInterval is used when the config supplies none.
const DefaultPollInterval = 30 * time.Second

// PollerConfig configures the pending-request poller.
type PollerConfig struct {
	Interval time.Duration
}

// Poller drives pending requests to a terminal state at its own
// cadence: it fetches the provider payload, optionally obtains AI
// commentary, and hands both to the analyzer's Advance. The state
// machine itself has no timing logic; this is the scheduling
// collaborator around it.
type Poller struct {
	cfg        PollerConfig
	store      driven.RequestStore
	fetcher    driven.ListingFetcher
	commentary driven.CommentaryProvider
	normaliser driven.ListingNormaliser
	analyzer   driving.Analyzer
	metrics    *metrics.Metrics

	mu      sync.Mutex
	running bool
	stopCh  chan struct{}
	wg      sync.WaitGroup
}

// NewPoller creates a poller. Commentary and metrics are optional.
func NewPoller(
	cfg PollerConfig,
	store driven.RequestStore,
	fetcher driven.ListingFetcher,
	commentary driven.CommentaryProvider,
	normaliser driven.ListingNormaliser,
	analyzer driving.Analyzer,
	m *metrics.Metrics,
) *Poller {
	if cfg.Interval <= 0 {
		cfg.Interval = DefaultPollInterval
	}
	return &Poller{
		cfg:        cfg,
		store:      store,
		fetcher:    fetcher,
		commentary: commentary,
		normaliser: normaliser,
		analyzer:   analyzer,
		metrics:    m,
	}
}

// Start begins the polling loop. This method blocks until Stop is
// called or the context is cancelled.
func (p *Poller) Start(ctx context.Context) error {
	p.mu.Lock()
	if p.running {
		p.mu.Unlock()
		return nil // Already running
	}
	p.running = true
	p.stopCh = make(chan struct{})
	p.mu.Unlock()

	// Drain whatever is already pending before the first tick.
	p.drainPending(ctx)

	ticker := time.NewTicker(p.cfg.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-p.stopCh:
			return nil
		case <-ticker.C:
			p.drainPending(ctx)
		}
	}
}

// Stop gracefully shuts down the poller and waits for in-flight
// requests to finish.
func (p *Poller) Stop() {
	p.mu.Lock()
	if !p.running {
		p.mu.Unlock()
		return
	}
	p.running = false
	close(p.stopCh)
	p.mu.Unlock()

	p.wg.Wait()
}

// drainPending processes every currently pending request once.
func (p *Poller) drainPending(ctx context.Context) {
	pending, err := p.store.ListByState(ctx, domain.StatePending)
	if err != nil {
		logger.Error("poller: list pending: %v", err)
		return
	}
	if len(pending) == 0 {
		return
	}
	logger.Info("poller: processing %d pending request(s)", len(pending))

	for i := range pending {
		req := pending[i]
		p.wg.Add(1)
		func() {
			defer p.wg.Done()
			p.process(ctx, &req)
		}()
	}
}

// process runs the fetch step for one request and advances it.
func (p *Poller) process(ctx context.Context, req *domain.Request) {
	var in driving.AdvanceInput

	res, err := p.fetcher.Fetch(ctx, req.SourceURL)
	if err != nil {
		p.metrics.IncFetch("error")
		in.FetchErr = err
	} else {
		p.metrics.IncFetch("ok")
		in.Payload = res.Payload
		in.ProviderHint = res.Provider
		in.Commentary = p.collectCommentary(ctx, res)
	}

	if _, err := p.analyzer.Advance(ctx, req.RequestID, in); err != nil {
		logger.Error("poller: advance %s: %v", req.RequestID, err)
	}
}

// collectCommentary asks the optional AI collaborator for per-category
// commentary. Any failure here is non-fatal; the report simply ships
// without insights.
func (p *Poller) collectCommentary(ctx context.Context, res *driven.FetchResult) map[string]any {
	if p.commentary == nil {
		return nil
	}
	listing, err := p.normaliser.Normalise(res.Payload, res.Provider)
	if err != nil || listing.IsEmpty() {
		return nil
	}
	commentary, err := p.commentary.Commentary(ctx, listing)
	if err != nil {
		logger.Warn("poller: commentary unavailable: %v", err)
		return nil
	}
	return commentary
}

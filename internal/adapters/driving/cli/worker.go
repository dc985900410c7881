package cli

import (
	"context"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/digitalmovement/airbnb-analyzer-sub000/internal/adapters/driven/commentary/openai"
	"github.com/digitalmovement/airbnb-analyzer-sub000/internal/adapters/driven/config/file"
	"github.com/digitalmovement/airbnb-analyzer-sub000/internal/adapters/driven/fetch"
	"github.com/digitalmovement/airbnb-analyzer-sub000/internal/core/ports/driven"
	"github.com/digitalmovement/airbnb-analyzer-sub000/internal/core/services"
	"github.com/digitalmovement/airbnb-analyzer-sub000/internal/logger"
)

var (
	workerInterval    int
	workerMetricsAddr string
)

var workerCmd = &cobra.Command{
	Use:   "worker",
	Short: "Process pending analysis requests",
	Long: `Runs the polling worker: pending requests are fetched from the
scraping provider, normalised, scored, and driven to a terminal state.
Runs until interrupted.

Requires fetch.endpoint to be configured (see 'config set').`,
	RunE: runWorker,
}

func init() {
	workerCmd.Flags().IntVar(&workerInterval, "interval", 0, "poll interval in seconds (default 30)")
	workerCmd.Flags().StringVar(&workerMetricsAddr, "metrics-addr", "", "serve Prometheus metrics on this address (e.g. :9090)")
	rootCmd.AddCommand(workerCmd)
}

func runWorker(cmd *cobra.Command, _ []string) error {
	if err := initAnalyzer(); err != nil {
		return err
	}

	fetcher, err := buildFetcher()
	if err != nil {
		return err
	}

	commentaryProvider, err := buildCommentary()
	if err != nil {
		return err
	}

	interval := time.Duration(workerInterval) * time.Second
	if workerInterval <= 0 {
		interval = time.Duration(configStore.GetInt(file.KeyWorkerIntervalSecs)) * time.Second
	}

	poller := services.NewPoller(
		services.PollerConfig{Interval: interval},
		requestStore, fetcher, commentaryProvider, listingRegistry,
		analyzerService, appMetrics)

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if workerMetricsAddr != "" {
		go serveMetrics(ctx, workerMetricsAddr)
	}

	cmd.Printf("Worker started (interval %s). Press Ctrl+C to stop.\n", interval)
	return poller.Start(ctx)
}

// buildFetcher creates the provider API client from configuration.
func buildFetcher() (driven.ListingFetcher, error) {
	endpoint := configStore.GetString(file.KeyFetchEndpoint)
	if endpoint == "" {
		return nil, fmt.Errorf("fetch.endpoint is not configured (config set %s <url>)", file.KeyFetchEndpoint)
	}

	return fetch.New(fetch.Config{
		Endpoint:  endpoint,
		APIKey:    configStore.GetString(file.KeyFetchAPIKey),
		Provider:  configStore.GetString(file.KeyFetchProvider),
		Timeout:   time.Duration(configStore.GetInt(file.KeyFetchTimeoutSecs)) * time.Second,
		CacheSize: configStore.GetInt(file.KeyFetchCacheSize),
	})
}

// buildCommentary creates the AI collaborator if it is enabled in
// configuration. Returns nil when disabled; the poller treats a nil
// provider as "no commentary".
func buildCommentary() (driven.CommentaryProvider, error) {
	if !configStore.GetBool(file.KeyCommentaryEnabled) {
		return nil, nil
	}

	apiKey := configStore.GetString(file.KeyCommentaryAPIKey)
	if apiKey == "" {
		logger.Warn("commentary enabled but %s is not set; continuing without AI commentary",
			file.KeyCommentaryAPIKey)
		return nil, nil
	}

	systemPrompt, err := promptStore.Load(driven.PromptCommentarySystem)
	if err != nil {
		logger.Warn("loading commentary prompt: %v", err)
		systemPrompt = ""
	}

	return openai.New(openai.Config{
		APIKey:       apiKey,
		BaseURL:      configStore.GetString(file.KeyCommentaryBaseURL),
		Model:        configStore.GetString(file.KeyCommentaryModel),
		SystemPrompt: systemPrompt,
	})
}

// serveMetrics exposes the Prometheus registry until the context ends.
func serveMetrics(ctx context.Context, addr string) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(appMetrics.Registry, promhttp.HandlerOpts{}))

	srv := &http.Server{Addr: addr, Handler: mux}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	logger.Info("metrics listening on %s", addr)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Warn("metrics server: %v", err)
	}
}

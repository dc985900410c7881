// Package cli provides the command-line interface for the listing
// analyzer. Commands are thin: they wire adapters to the core services
// and format output.
package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/digitalmovement/airbnb-analyzer-sub000/internal/adapters/driven/config/file"
	"github.com/digitalmovement/airbnb-analyzer-sub000/internal/adapters/driven/notify"
	"github.com/digitalmovement/airbnb-analyzer-sub000/internal/adapters/driven/storage/memory"
	"github.com/digitalmovement/airbnb-analyzer-sub000/internal/adapters/driven/storage/sqlite"
	"github.com/digitalmovement/airbnb-analyzer-sub000/internal/core/domain"
	"github.com/digitalmovement/airbnb-analyzer-sub000/internal/core/ports/driven"
	"github.com/digitalmovement/airbnb-analyzer-sub000/internal/core/ports/driving"
	"github.com/digitalmovement/airbnb-analyzer-sub000/internal/core/services"
	"github.com/digitalmovement/airbnb-analyzer-sub000/internal/logger"
	"github.com/digitalmovement/airbnb-analyzer-sub000/internal/metrics"
	"github.com/digitalmovement/airbnb-analyzer-sub000/internal/normalisers"
	"github.com/digitalmovement/airbnb-analyzer-sub000/internal/normalisers/flat"
	"github.com/digitalmovement/airbnb-analyzer-sub000/internal/normalisers/grouped"
	"github.com/digitalmovement/airbnb-analyzer-sub000/internal/scoring"
)

var version = "dev"

var (
	verbose   bool
	configDir string
)

// Shared dependencies, built lazily by the commands that need them.
var (
	configStore     *file.ConfigStore
	promptStore     *file.PromptStore
	requestStore    driven.RequestStore
	analyzerService driving.Analyzer
	listingRegistry *normalisers.Registry
	scorer          *scoring.Scorer
	appMetrics      *metrics.Metrics
	sqliteStore     *sqlite.Store
)

var rootCmd = &cobra.Command{
	Use:   "airbnb-analyzer",
	Short: "Score Airbnb listings for completeness and appeal",
	Long: `airbnb-analyzer evaluates Airbnb listings with a deterministic
heuristic scoring engine. Listings are fetched through a scraping
provider, normalised into a canonical shape, and scored across six
categories (title, description, photos, amenities, reviews,
cancellation policy) on a 0-100 scale.

Analysis requests are asynchronous: submit a URL, let the worker
process it, then retrieve the report.`,
	SilenceUsage:      true,
	PersistentPreRunE: setupBase,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "", "configuration directory (default ~/.airbnb-analyzer)")
}

// SetVersion sets the version string printed by the version command.
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}

// Execute runs the root command.
func Execute() error {
	defer closeStores()
	return rootCmd.Execute()
}

// setupBase prepares the cheap, always-needed dependencies: logging and
// configuration. Heavier collaborators are built on demand.
func setupBase(_ *cobra.Command, _ []string) error {
	logger.SetVerbose(verbose)

	var err error
	configStore, err = file.NewConfigStore(configDir)
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}

	promptStore, err = file.NewPromptStore("")
	if err != nil {
		return fmt.Errorf("loading prompts: %w", err)
	}

	scorer = scoring.NewScorer()
	listingRegistry = normalisers.NewRegistry(flat.New(), grouped.New())
	appMetrics = metrics.New()
	return nil
}

// initAnalyzer builds the request store and lifecycle service. Commands
// that only score local payloads never pay for this.
func initAnalyzer() error {
	if analyzerService != nil {
		return nil
	}
	if configStore == nil {
		return errors.New("configuration not initialised")
	}

	driver := configStore.GetString(file.KeyStorageDriver)
	switch driver {
	case "", "sqlite":
		store, err := sqlite.NewStore(configStore.GetString(file.KeyStorageDataDir))
		if err != nil {
			return fmt.Errorf("opening request store: %w", err)
		}
		sqliteStore = store
		requestStore = store.RequestStore()
	case "memory":
		requestStore = memory.NewRequestStore()
	default:
		return fmt.Errorf("unknown storage driver %q", driver)
	}

	analyzerService = services.NewAnalyzerService(
		requestStore, listingRegistry, scorer, notify.NewLogNotifier(), appMetrics)
	return nil
}

func closeStores() {
	if sqliteStore != nil {
		if err := sqliteStore.Close(); err != nil {
			logger.Warn("closing request store: %v", err)
		}
		sqliteStore = nil
	}
}

// scoreListingPayload normalises and scores a raw payload without
// touching the request lifecycle. Used by the analyze command.
func scoreListingPayload(payload any, hint string) (*scoredListing, error) {
	listing, err := listingRegistry.Normalise(payload, hint)
	if err != nil {
		return nil, err
	}
	report := scorer.Score(listing)
	return &scoredListing{Listing: listing, Report: report}, nil
}

type scoredListing struct {
	Listing *domain.Listing    `json:"listing"`
	Report  domain.ScoreReport `json:"report"`
}

package driven

import "context"

// FetchResult is a raw provider payload plus the provider hint the
// fetch adapter learned while obtaining it.
type FetchResult struct {
	// Payload is the opaque provider mapping, decoded from JSON.
	Payload map[string]any

	// Provider is an optional hint naming the upstream shape
	// (e.g. "flat", "grouped"). Empty means detect structurally.
	Provider string
}

// ListingFetcher obtains raw provider payloads for listing URLs.
// Fetch mechanics (HTTP, retries, timeouts, anti-bot handling) live
// entirely behind this port; the core only distinguishes "payload" from
// "fetch error".
type ListingFetcher interface {
	Fetch(ctx context.Context, sourceURL string) (*FetchResult, error)
}

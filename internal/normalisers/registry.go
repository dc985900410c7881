package normalisers

import (
	"sort"
	"strings"

	"github.com/digitalmovement/airbnb-analyzer-sub000/internal/core/domain"
	"github.com/digitalmovement/airbnb-analyzer-sub000/internal/core/ports/driven"
	"github.com/digitalmovement/airbnb-analyzer-sub000/internal/logger"
)

// Ensure Registry implements the interface.
var _ driven.ListingNormaliser = (*Registry)(nil)

// Registry dispatches raw payloads to the best matching shape
// normaliser. Selection order: provider hint match, then structural
// detection by descending priority.
type Registry struct {
	normalisers []driven.ShapeNormaliser
}

// NewRegistry creates a registry with the given normalisers.
func NewRegistry(normalisers ...driven.ShapeNormaliser) *Registry {
	r := &Registry{}
	for _, n := range normalisers {
		r.Register(n)
	}
	return r
}

// Register adds a normaliser, keeping the list sorted by priority.
func (r *Registry) Register(n driven.ShapeNormaliser) {
	if n == nil {
		return
	}
	r.normalisers = append(r.normalisers, n)
	sort.SliceStable(r.normalisers, func(i, j int) bool {
		return r.normalisers[i].Priority() > r.normalisers[j].Priority()
	})
}

// Normalise converts a raw provider payload into a canonical listing.
// The only fatal condition is a payload that is not a mapping at all;
// every per-field problem degrades to that field's default.
func (r *Registry) Normalise(payload any, hint string) (*domain.Listing, error) {
	m, ok := payload.(map[string]any)
	if !ok || m == nil {
		return nil, domain.ErrMalformedPayload
	}

	hint = strings.ToLower(strings.TrimSpace(hint))

	// A hint names a shape directly.
	if hint != "" {
		for _, n := range r.normalisers {
			if strings.EqualFold(n.Name(), hint) {
				logger.Debug("normalise: using %q normaliser (hint)", n.Name())
				return n.Normalise(m), nil
			}
		}
		logger.Warn("normalise: unknown provider hint %q, detecting structurally", hint)
	}

	for _, n := range r.normalisers {
		if n.Supports(m, hint) {
			logger.Debug("normalise: using %q normaliser (detected)", n.Name())
			return n.Normalise(m), nil
		}
	}

	// No registered normaliser recognised the shape. The payload is
	// still a valid mapping, so it normalises to an empty listing
	// rather than an error; the lifecycle's no-usable-data guard
	// handles it from there.
	logger.Warn("normalise: no normaliser matched, producing empty listing")
	return domain.NewListing(""), nil
}

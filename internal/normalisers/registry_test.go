package normalisers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/digitalmovement/airbnb-analyzer-sub000/internal/core/domain"
	"github.com/digitalmovement/airbnb-analyzer-sub000/internal/normalisers/flat"
	"github.com/digitalmovement/airbnb-analyzer-sub000/internal/normalisers/grouped"
)

func newTestRegistry() *Registry {
	return NewRegistry(flat.New(), grouped.New())
}

func TestNormalise_NonMappingPayloadIsMalformed(t *testing.T) {
	r := newTestRegistry()

	for _, payload := range []any{nil, "a string", 42.0, []any{"list"}} {
		_, err := r.Normalise(payload, "")
		assert.ErrorIs(t, err, domain.ErrMalformedPayload)
	}
}

func TestNormalise_HintSelectsShapeDirectly(t *testing.T) {
	r := newTestRegistry()

	// A grouped-looking payload forced through the flat normaliser:
	// the nested host object is not a flat field, so it stays empty.
	m := map[string]any{
		"title": "Entire loft in Porto",
		"host":  map[string]any{"name": "Ana"},
	}

	asFlat, err := r.Normalise(m, "flat")
	require.NoError(t, err)
	assert.Empty(t, asFlat.Host.Name)

	asGrouped, err := r.Normalise(m, "grouped")
	require.NoError(t, err)
	assert.Equal(t, "Ana", asGrouped.Host.Name)
}

func TestNormalise_HintIsCaseInsensitive(t *testing.T) {
	r := newTestRegistry()

	m := map[string]any{"host": map[string]any{"name": "Ana"}}
	l, err := r.Normalise(m, "GROUPED")
	require.NoError(t, err)
	assert.Equal(t, "Ana", l.Host.Name)
}

func TestNormalise_UnknownHintFallsBackToDetection(t *testing.T) {
	r := newTestRegistry()

	m := map[string]any{"host": map[string]any{"name": "Ana"}}
	l, err := r.Normalise(m, "no-such-provider")
	require.NoError(t, err)
	assert.Equal(t, "Ana", l.Host.Name)
}

func TestNormalise_StructuralDetectionPrefersGrouped(t *testing.T) {
	r := newTestRegistry()

	m := map[string]any{
		"title":           "Entire loft in Porto",
		"sub_description": map[string]any{"items": []any{"2 bedrooms"}},
	}
	l, err := r.Normalise(m, "")
	require.NoError(t, err)
	assert.Equal(t, 2, l.Bedrooms)
}

func TestNormalise_FlatIsTheFallback(t *testing.T) {
	r := newTestRegistry()

	m := map[string]any{"title": "Plain flat payload", "bedrooms": 3.0}
	l, err := r.Normalise(m, "")
	require.NoError(t, err)
	assert.Equal(t, 3, l.Bedrooms)
}

func TestNormalise_EmptyMappingYieldsEmptyListing(t *testing.T) {
	r := newTestRegistry()

	l, err := r.Normalise(map[string]any{}, "")
	require.NoError(t, err)
	assert.True(t, l.IsEmpty())
}

func TestNormalise_NoNormalisersRegistered(t *testing.T) {
	r := NewRegistry()

	l, err := r.Normalise(map[string]any{"title": "x"}, "")
	require.NoError(t, err)
	assert.True(t, l.IsEmpty())
}

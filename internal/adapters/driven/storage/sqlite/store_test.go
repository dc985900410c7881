package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/digitalmovement/airbnb-analyzer-sub000/internal/core/domain"
	"github.com/digitalmovement/airbnb-analyzer-sub000/internal/core/ports/driven"
)

func newTestStore(t *testing.T) (*Store, driven.RequestStore) {
	t.Helper()
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store, store.RequestStore()
}

func newRequest(id string) *domain.Request {
	now := time.Now().UTC().Truncate(time.Second)
	return &domain.Request{
		RequestID:      id,
		SourceURL:      "https://www.airbnb.com/rooms/" + id,
		ContactAddress: "host@example.com",
		State:          domain.StatePending,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

func TestNewStore_CreatesDatabaseFile(t *testing.T) {
	dir := t.TempDir()

	store, err := NewStore(dir)
	require.NoError(t, err)
	defer store.Close()

	assert.Equal(t, filepath.Join(dir, "requests.db"), store.Path())
}

func TestNewStore_MigrationsAreIdempotent(t *testing.T) {
	dir := t.TempDir()

	first, err := NewStore(dir)
	require.NoError(t, err)
	require.NoError(t, first.Close())

	// Re-opening the same directory must not re-run applied migrations.
	second, err := NewStore(dir)
	require.NoError(t, err)
	assert.NoError(t, second.Close())
}

func TestSaveAndGet(t *testing.T) {
	_, requests := newTestStore(t)
	ctx := context.Background()

	req := newRequest("r1")
	require.NoError(t, requests.Save(ctx, req))

	got, err := requests.Get(ctx, "r1")
	require.NoError(t, err)
	assert.Equal(t, req.SourceURL, got.SourceURL)
	assert.Equal(t, req.ContactAddress, got.ContactAddress)
	assert.Equal(t, domain.StatePending, got.State)
	assert.Nil(t, got.ScoreReport)
}

func TestSave_DuplicateID(t *testing.T) {
	_, requests := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, requests.Save(ctx, newRequest("r1")))
	assert.ErrorIs(t, requests.Save(ctx, newRequest("r1")), domain.ErrAlreadyExists)
}

func TestGet_NotFound(t *testing.T) {
	_, requests := newTestStore(t)

	_, err := requests.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestScoreReportRoundTrip(t *testing.T) {
	_, requests := newTestStore(t)
	ctx := context.Background()

	req := newRequest("r1")
	require.NoError(t, requests.Save(ctx, req))

	next := *req
	next.State = domain.StateCompleted
	next.ScoreReport = &domain.ScoreReport{
		OverallScore: 85,
		SummaryTier:  domain.TierExcellent,
		CategoryScores: []domain.CategoryResult{
			{Category: domain.CategoryTitle, Score: 20, MaxScore: 20, Status: domain.StatusSuccess},
		},
		AIInsights: map[string]map[string]any{
			domain.CategoryTitle: {"summary": "Great."},
		},
	}
	next.UpdatedAt = time.Now().UTC()

	_, applied, err := requests.Transition(ctx, &next, domain.StatePending)
	require.NoError(t, err)
	require.True(t, applied)

	got, err := requests.Get(ctx, "r1")
	require.NoError(t, err)
	require.NotNil(t, got.ScoreReport)
	assert.Equal(t, 85, got.ScoreReport.OverallScore)
	assert.Equal(t, domain.TierExcellent, got.ScoreReport.SummaryTier)
	require.Len(t, got.ScoreReport.CategoryScores, 1)
	assert.Equal(t, domain.CategoryTitle, got.ScoreReport.CategoryScores[0].Category)
	assert.Equal(t, "Great.", got.ScoreReport.AIInsights[domain.CategoryTitle]["summary"])
}

func TestListOrdersNewestFirst(t *testing.T) {
	_, requests := newTestStore(t)
	ctx := context.Background()

	older := newRequest("r1")
	older.CreatedAt = time.Now().UTC().Add(-time.Hour)
	require.NoError(t, requests.Save(ctx, older))

	newer := newRequest("r2")
	require.NoError(t, requests.Save(ctx, newer))

	all, err := requests.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "r2", all[0].RequestID)
	assert.Equal(t, "r1", all[1].RequestID)
}

func TestListByState(t *testing.T) {
	_, requests := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, requests.Save(ctx, newRequest("r1")))
	require.NoError(t, requests.Save(ctx, newRequest("r2")))

	pending, err := requests.ListByState(ctx, domain.StatePending)
	require.NoError(t, err)
	assert.Len(t, pending, 2)

	completed, err := requests.ListByState(ctx, domain.StateCompleted)
	require.NoError(t, err)
	assert.Empty(t, completed)
}

func TestTransition_CompareAndSwap(t *testing.T) {
	_, requests := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, requests.Save(ctx, newRequest("r1")))

	winner := newRequest("r1")
	winner.State = domain.StateCompleted
	winner.UpdatedAt = time.Now().UTC()

	stored, applied, err := requests.Transition(ctx, winner, domain.StatePending)
	require.NoError(t, err)
	require.True(t, applied)
	assert.Equal(t, domain.StateCompleted, stored.State)

	// Second transition from pending must lose and observe the winner.
	loser := newRequest("r1")
	loser.State = domain.StateError
	loser.FailureReason = "FetchFailed: too late"

	stored, applied, err = requests.Transition(ctx, loser, domain.StatePending)
	require.NoError(t, err)
	assert.False(t, applied)
	assert.Equal(t, domain.StateCompleted, stored.State)
}

func TestTransition_NotFound(t *testing.T) {
	_, requests := newTestStore(t)

	_, _, err := requests.Transition(context.Background(), newRequest("ghost"), domain.StatePending)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

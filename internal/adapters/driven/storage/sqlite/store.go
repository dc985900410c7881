// Package sqlite provides a SQLite-backed request store.
package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/digitalmovement/airbnb-analyzer-sub000/internal/adapters/driven/storage/sqlite/migrations"
	"github.com/digitalmovement/airbnb-analyzer-sub000/internal/core/domain"
	"github.com/digitalmovement/airbnb-analyzer-sub000/internal/core/ports/driven"
)

// Store is a SQLite-backed store for analysis requests.
type Store struct {
	db   *sql.DB
	path string
}

// NewStore creates a SQLite store at the specified data directory.
// If dataDir is empty, defaults to ~/.airbnb-analyzer/data/requests.db.
func NewStore(dataDir string) (*Store, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".airbnb-analyzer", "data")
	}

	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, "requests.db")

	// WAL mode for better concurrency between the poller and readers.
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{db: db, path: dbPath}
	if err := s.migrate(migrations.FS); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}
	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// RequestStore returns a RequestStore interface backed by this store.
func (s *Store) RequestStore() driven.RequestStore {
	return &requestStore{store: s}
}

// migrate runs all pending migrations.
func (s *Store) migrate(fsys embed.FS) error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("creating schema_migrations table: %w", err)
	}

	var currentVersion int
	row := s.db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_migrations")
	if err := row.Scan(&currentVersion); err != nil {
		return fmt.Errorf("getting current version: %w", err)
	}

	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return fmt.Errorf("reading migrations directory: %w", err)
	}

	var upFiles []string
	for _, entry := range entries {
		if strings.HasSuffix(entry.Name(), ".up.sql") {
			upFiles = append(upFiles, entry.Name())
		}
	}
	sort.Strings(upFiles)

	for _, name := range upFiles {
		var version int
		if _, err := fmt.Sscanf(name, "%d_", &version); err != nil {
			continue // Skip files that don't match pattern
		}
		if version <= currentVersion {
			continue // Already applied
		}

		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", name, err)
		}
		if _, err := s.db.Exec(string(content)); err != nil {
			return fmt.Errorf("executing migration %s: %w", name, err)
		}
		if _, err := s.db.Exec("INSERT INTO schema_migrations (version) VALUES (?)", version); err != nil {
			return fmt.Errorf("recording migration %s: %w", name, err)
		}
	}
	return nil
}

// requestStore implements driven.RequestStore.
type requestStore struct {
	store *Store
}

var _ driven.RequestStore = (*requestStore)(nil)

// Save stores a new request.
func (s *requestStore) Save(ctx context.Context, req *domain.Request) error {
	reportJSON, err := marshalReport(req.ScoreReport)
	if err != nil {
		return err
	}

	_, err = s.store.db.ExecContext(ctx, `
		INSERT INTO requests (request_id, source_url, contact_address, state, score_report, failure_reason, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, req.RequestID, req.SourceURL, req.ContactAddress, string(req.State),
		reportJSON, req.FailureReason, req.CreatedAt.UTC(), req.UpdatedAt.UTC())
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return domain.ErrAlreadyExists
		}
		return fmt.Errorf("inserting request: %w", err)
	}
	return nil
}

// Get retrieves a request by ID.
func (s *requestStore) Get(ctx context.Context, requestID string) (*domain.Request, error) {
	row := s.store.db.QueryRowContext(ctx, `
		SELECT request_id, source_url, contact_address, state, score_report, failure_reason, created_at, updated_at
		FROM requests WHERE request_id = ?
	`, requestID)
	return scanRequest(row)
}

// List returns all requests, newest first.
func (s *requestStore) List(ctx context.Context) ([]domain.Request, error) {
	return s.query(ctx, `
		SELECT request_id, source_url, contact_address, state, score_report, failure_reason, created_at, updated_at
		FROM requests ORDER BY created_at DESC
	`)
}

// ListByState returns requests currently in the given state.
func (s *requestStore) ListByState(ctx context.Context, state domain.RequestState) ([]domain.Request, error) {
	return s.query(ctx, `
		SELECT request_id, source_url, contact_address, state, score_report, failure_reason, created_at, updated_at
		FROM requests WHERE state = ? ORDER BY created_at ASC
	`, string(state))
}

// Transition replaces the record iff its current state equals from.
// The state guard in the UPDATE is the compare-and-swap: affected rows
// zero means another writer got there first.
func (s *requestStore) Transition(ctx context.Context, req *domain.Request, from domain.RequestState) (*domain.Request, bool, error) {
	reportJSON, err := marshalReport(req.ScoreReport)
	if err != nil {
		return nil, false, err
	}

	res, err := s.store.db.ExecContext(ctx, `
		UPDATE requests
		SET state = ?, score_report = ?, failure_reason = ?, updated_at = ?
		WHERE request_id = ? AND state = ?
	`, string(req.State), reportJSON, req.FailureReason, req.UpdatedAt.UTC(),
		req.RequestID, string(from))
	if err != nil {
		return nil, false, fmt.Errorf("updating request: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return nil, false, fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		current, err := s.Get(ctx, req.RequestID)
		if err != nil {
			return nil, false, err
		}
		return current, false, nil
	}

	stored := *req
	return &stored, true, nil
}

func (s *requestStore) query(ctx context.Context, q string, args ...any) ([]domain.Request, error) {
	rows, err := s.store.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("querying requests: %w", err)
	}
	defer rows.Close()

	var out []domain.Request
	for rows.Next() {
		req, err := scanRequest(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *req)
	}
	return out, rows.Err()
}

// scanner covers *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanRequest(row scanner) (*domain.Request, error) {
	var req domain.Request
	var state string
	var reportJSON sql.NullString
	var createdAt, updatedAt time.Time

	err := row.Scan(&req.RequestID, &req.SourceURL, &req.ContactAddress, &state,
		&reportJSON, &req.FailureReason, &createdAt, &updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scanning request: %w", err)
	}

	req.State = domain.RequestState(state)
	req.CreatedAt = createdAt
	req.UpdatedAt = updatedAt

	if reportJSON.Valid && reportJSON.String != "" {
		var report domain.ScoreReport
		if err := json.Unmarshal([]byte(reportJSON.String), &report); err != nil {
			return nil, fmt.Errorf("unmarshalling score report: %w", err)
		}
		req.ScoreReport = &report
	}
	return &req, nil
}

func marshalReport(report *domain.ScoreReport) (sql.NullString, error) {
	if report == nil {
		return sql.NullString{}, nil
	}
	data, err := json.Marshal(report)
	if err != nil {
		return sql.NullString{}, fmt.Errorf("marshalling score report: %w", err)
	}
	return sql.NullString{String: string(data), Valid: true}, nil
}

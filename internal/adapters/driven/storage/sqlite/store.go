package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // SQLite driver

	"github.com/custodia-labs/profscout/internal/adapters/driven/storage/sqlite/migrations"
	"github.com/custodia-labs/profscout/internal/core/domain"
	"github.com/custodia-labs/profscout/internal/core/ports/driven"
)

// Store is a SQLite-backed harvest history store.
type Store struct {
	db   *sql.DB
	path string
}

var _ driven.HarvestRunStore = (*Store)(nil)

// NewStore creates a new SQLite store at the specified data directory.
// If dataDir is empty, defaults to ~/.profscout/data/history.db.
func NewStore(dataDir string) (*Store, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".profscout", "data")
	}

	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, "history.db")

	// Open database with WAL mode for better concurrency
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{
		db:   db,
		path: dbPath,
	}

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

// SaveRun records one completed harvest and returns the run ID.
func (s *Store) SaveRun(ctx context.Context, run domain.HarvestRun) (string, error) {
	if run.ID == "" {
		run.ID = uuid.NewString()
	}
	if run.CreatedAt.IsZero() {
		run.CreatedAt = time.Now().UTC()
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO harvest_runs
			(id, organization_id, organization_key, record_count, pages_fetched, indexed, document, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, run.ID, run.OrganizationID, run.OrganizationKey, run.RecordCount,
		run.PagesFetched, run.Indexed, run.Document, run.CreatedAt)

	if err != nil {
		return "", fmt.Errorf("saving harvest run: %w", err)
	}
	return run.ID, nil
}

// ListRuns returns recorded runs, newest first, without their documents.
func (s *Store) ListRuns(ctx context.Context) ([]domain.HarvestRun, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, organization_id, organization_key, record_count, pages_fetched, indexed, created_at
		FROM harvest_runs
		ORDER BY created_at DESC, id
	`)
	if err != nil {
		return nil, fmt.Errorf("querying harvest runs: %w", err)
	}
	defer rows.Close()

	var runs []domain.HarvestRun //nolint:prealloc // size unknown from query
	for rows.Next() {
		var run domain.HarvestRun
		var createdAt sql.NullTime
		if err := rows.Scan(&run.ID, &run.OrganizationID, &run.OrganizationKey,
			&run.RecordCount, &run.PagesFetched, &run.Indexed, &createdAt); err != nil {
			return nil, fmt.Errorf("scanning harvest run: %w", err)
		}
		if createdAt.Valid {
			run.CreatedAt = createdAt.Time
		}
		runs = append(runs, run)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating harvest runs: %w", err)
	}

	return runs, nil
}

// GetRun returns one run by ID, including its document.
func (s *Store) GetRun(ctx context.Context, id string) (*domain.HarvestRun, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, organization_id, organization_key, record_count, pages_fetched, indexed, document, created_at
		FROM harvest_runs WHERE id = ?
	`, id)

	var run domain.HarvestRun
	var createdAt sql.NullTime
	if err := row.Scan(&run.ID, &run.OrganizationID, &run.OrganizationKey,
		&run.RecordCount, &run.PagesFetched, &run.Indexed, &run.Document, &createdAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("scanning harvest run: %w", err)
	}
	if createdAt.Valid {
		run.CreatedAt = createdAt.Time
	}

	return &run, nil
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
		name := entry.Name()
		if strings.HasSuffix(name, ".up.sql") {
			upFiles = append(upFiles, name)
		}
	}
	sort.Strings(upFiles)

	for _, name := range upFiles {
		// Extract version number (e.g., "001_initial.up.sql" -> 1)
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
	}

	return nil
}

// ABOUTME: SQLite-backed storage for persisted diff history
// ABOUTME: Keeps per-pair diff records across runs so history survives restarts

package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/atomicul/website-differ/core/domain"
)

// Store implements the DiffHistoryStorage interface using SQLite
type Store struct {
	db       *sql.DB
	filePath string
}

// NewStore opens (or creates) the history database at filePath
func NewStore(filePath string) (*Store, error) {
	if filePath == "" {
		filePath = "differ.db"
	}

	db, err := sql.Open("sqlite3", filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open SQLite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to connect to SQLite database: %w", err)
	}

	store := &Store{
		db:       db,
		filePath: filePath,
	}

	if err := store.initSchema(); err != nil {
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}
	return store, nil
}

// initSchema creates the history table if it doesn't exist
func (s *Store) initSchema() error {
	query := `
		CREATE TABLE IF NOT EXISTS diff_history (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			site TEXT NOT NULL,
			old_snapshot TEXT NOT NULL,
			new_snapshot TEXT NOT NULL,
			score REAL NOT NULL,
			label TEXT NOT NULL,
			landmark_difference REAL NOT NULL,
			skeleton_difference REAL NOT NULL,
			created_at INTEGER NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_diff_history_site ON diff_history(site, created_at DESC);
	`

	_, err := s.db.Exec(query)
	return err
}

// SaveRecord persists one diff record
func (s *Store) SaveRecord(ctx context.Context, record domain.DiffRecord) error {
	query := `
		INSERT INTO diff_history
			(site, old_snapshot, new_snapshot, score, label, landmark_difference, skeleton_difference, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`

	createdAt := record.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	_, err := s.db.ExecContext(ctx, query,
		record.Site,
		record.OldSnapshot,
		record.NewSnapshot,
		record.Result.Score,
		record.Result.Label,
		record.Result.LandmarkDifference,
		record.Result.SkeletonDifference,
		createdAt.Unix(),
	)
	if err != nil {
		return fmt.Errorf("failed to save diff record: %w", err)
	}
	return nil
}

// History returns a site's diff records, newest first. Zero limit means
// no limit.
func (s *Store) History(ctx context.Context, site string, limit int) ([]domain.DiffRecord, error) {
	query := `
		SELECT site, old_snapshot, new_snapshot, score, label, landmark_difference, skeleton_difference, created_at
		FROM diff_history
		WHERE site = ?
		ORDER BY created_at DESC, id DESC
	`
	args := []interface{}{site}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query diff history: %w", err)
	}
	defer rows.Close()

	var records []domain.DiffRecord
	for rows.Next() {
		var rec domain.DiffRecord
		var createdAt int64
		if err := rows.Scan(
			&rec.Site,
			&rec.OldSnapshot,
			&rec.NewSnapshot,
			&rec.Result.Score,
			&rec.Result.Label,
			&rec.Result.LandmarkDifference,
			&rec.Result.SkeletonDifference,
			&createdAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan diff record: %w", err)
		}
		rec.CreatedAt = time.Unix(createdAt, 0).UTC()
		records = append(records, rec)
	}
	return records, rows.Err()
}

// Close closes the underlying database
func (s *Store) Close() error {
	return s.db.Close()
}

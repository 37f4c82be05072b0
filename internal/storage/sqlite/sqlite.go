// Package sqlite provides a SQLite-backed implementation of the
// storage.DrawingStore interface.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver (no CGO)

	"github.com/gourmetdelight/diner/internal/models"
	"github.com/gourmetdelight/diner/internal/storage"
)

// Ensure SQLiteStore implements storage.DrawingStore
var _ storage.DrawingStore = (*SQLiteStore)(nil)

// SQLiteStore implements storage.DrawingStore using SQLite.
type SQLiteStore struct {
	db *sql.DB
}

// New creates a new SQLiteStore with the given database path.
// It creates the parent directories and runs migrations automatically.
func New(dbPath string) (*SQLiteStore, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := runMigrations(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// Save persists a new drawing, assigning an ID and creation time when unset.
func (s *SQLiteStore) Save(ctx context.Context, d *models.Drawing) error {
	if d.ID == "" {
		d.ID = uuid.New().String()
	}
	if d.CreatedDate.IsZero() {
		d.CreatedDate = time.Now()
	}

	_, err := s.db.ExecContext(ctx,
		"INSERT INTO drawings (id, name, data_url, format, width, height, created_at) VALUES (?, ?, ?, ?, ?, ?, ?)",
		d.ID, d.Name, d.DataURL, d.Format, d.Width, d.Height, d.CreatedDate.Unix(),
	)
	if err != nil {
		return fmt.Errorf("failed to insert drawing: %w", err)
	}
	return nil
}

// Get retrieves a drawing by ID.
func (s *SQLiteStore) Get(ctx context.Context, id string) (*models.Drawing, error) {
	d := &models.Drawing{}
	var createdAt int64
	err := s.db.QueryRowContext(ctx,
		"SELECT id, name, data_url, format, width, height, created_at FROM drawings WHERE id = ?",
		id,
	).Scan(&d.ID, &d.Name, &d.DataURL, &d.Format, &d.Width, &d.Height, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get drawing %s: %w", id, storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get drawing: %w", err)
	}
	d.CreatedDate = time.Unix(createdAt, 0)
	return d, nil
}

// List returns all stored drawings, oldest first.
func (s *SQLiteStore) List(ctx context.Context) ([]models.Drawing, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, name, data_url, format, width, height, created_at FROM drawings ORDER BY created_at",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list drawings: %w", err)
	}
	defer rows.Close()

	drawings := make([]models.Drawing, 0)
	for rows.Next() {
		var d models.Drawing
		var createdAt int64
		if err := rows.Scan(&d.ID, &d.Name, &d.DataURL, &d.Format, &d.Width, &d.Height, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan drawing: %w", err)
		}
		d.CreatedDate = time.Unix(createdAt, 0)
		drawings = append(drawings, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate drawings: %w", err)
	}
	return drawings, nil
}

// Delete removes a drawing by ID.
func (s *SQLiteStore) Delete(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM drawings WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete drawing: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("delete drawing %s: %w", id, storage.ErrNotFound)
	}
	return nil
}

// Clear removes all drawings.
func (s *SQLiteStore) Clear(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, "DELETE FROM drawings"); err != nil {
		return fmt.Errorf("failed to clear drawings: %w", err)
	}
	return nil
}

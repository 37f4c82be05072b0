// Package storage provides abstractions for drawing storage.
package storage

import (
	"context"
	"errors"

	"github.com/gourmetdelight/diner/internal/models"
)

// ErrNotFound is returned when no drawing exists for the requested ID.
var ErrNotFound = errors.New("drawing not found")

// DrawingStore defines the interface for drawing storage operations.
// This abstraction allows swapping storage backends (in-memory, SQLite)
// without changing the service layer, and lets tests run against an
// isolated instance.
//
// Implementations must be safe for concurrent use: an HTTP server calls
// these methods from multiple goroutines. Per-ID operations are atomic;
// no ordering is guaranteed across different IDs.
type DrawingStore interface {
	// Save persists a new drawing. The ID and CreatedDate fields are
	// populated by the store when unset.
	Save(ctx context.Context, d *models.Drawing) error

	// Get retrieves a drawing by ID. Returns ErrNotFound if absent.
	Get(ctx context.Context, id string) (*models.Drawing, error)

	// List returns all stored drawings. The result may be empty, never nil.
	List(ctx context.Context) ([]models.Drawing, error)

	// Delete removes a drawing by ID. Returns ErrNotFound if absent.
	Delete(ctx context.Context, id string) error

	// Clear removes all drawings.
	Clear(ctx context.Context) error

	// Close releases any resources held by the store.
	Close() error
}

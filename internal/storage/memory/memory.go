// Package memory provides an in-memory implementation of storage.DrawingStore.
package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/gourmetdelight/diner/internal/models"
	"github.com/gourmetdelight/diner/internal/storage"
)

// Ensure Store implements storage.DrawingStore
var _ storage.DrawingStore = (*Store)(nil)

// Store implements storage.DrawingStore with a mutex-guarded map.
// Drawings live until deleted or the process exits.
type Store struct {
	mu       sync.RWMutex
	drawings map[string]models.Drawing
}

// New creates an empty in-memory store.
func New() *Store {
	return &Store{drawings: make(map[string]models.Drawing)}
}

// Save stores a drawing, assigning an ID and creation time when unset.
func (s *Store) Save(_ context.Context, d *models.Drawing) error {
	if d.ID == "" {
		d.ID = uuid.New().String()
	}
	if d.CreatedDate.IsZero() {
		d.CreatedDate = time.Now()
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.drawings[d.ID] = *d
	return nil
}

// Get retrieves a drawing by ID.
func (s *Store) Get(_ context.Context, id string) (*models.Drawing, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	d, ok := s.drawings[id]
	if !ok {
		return nil, fmt.Errorf("get drawing %s: %w", id, storage.ErrNotFound)
	}
	return &d, nil
}

// List returns all stored drawings in no particular order.
func (s *Store) List(_ context.Context) ([]models.Drawing, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Drawing, 0, len(s.drawings))
	for _, d := range s.drawings {
		out = append(out, d)
	}
	return out, nil
}

// Delete removes a drawing by ID.
func (s *Store) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.drawings[id]; !ok {
		return fmt.Errorf("delete drawing %s: %w", id, storage.ErrNotFound)
	}
	delete(s.drawings, id)
	return nil
}

// Clear removes all drawings.
func (s *Store) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.drawings = make(map[string]models.Drawing)
	return nil
}

// Close is a no-op for the in-memory store.
func (s *Store) Close() error {
	return nil
}

package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/gourmetdelight/diner/internal/models"
	"github.com/gourmetdelight/diner/internal/storage"
)

// dataURLPrefix is the required prefix for canvas exports.
const dataURLPrefix = "data:image"

// ErrInvalidImageData is returned when a drawing's data URL is not an
// image data URL. The API maps it to a client error.
var ErrInvalidImageData = errors.New("invalid image data")

// DrawingService validates and stores drawings on top of a DrawingStore.
type DrawingService struct {
	store storage.DrawingStore
}

// NewDrawingService creates a DrawingService with the given storage backend.
func NewDrawingService(store storage.DrawingStore) *DrawingService {
	return &DrawingService{store: store}
}

// Save validates and stores a drawing, returning it with its generated ID
// and creation time populated. The ID is always assigned here; a
// client-supplied ID is discarded so a save can never overwrite an existing
// drawing. Drawings whose data URL does not begin with "data:image" are
// rejected and never reach the store.
func (s *DrawingService) Save(ctx context.Context, d *models.Drawing) (*models.Drawing, error) {
	if !strings.HasPrefix(d.DataURL, dataURLPrefix) {
		return nil, ErrInvalidImageData
	}

	d.ID = uuid.New().String()
	d.CreatedDate = time.Now()

	if err := s.store.Save(ctx, d); err != nil {
		slog.Error("Failed to save drawing", "name", d.Name, "error", err)
		return nil, err
	}
	slog.Info("Drawing saved", "id", d.ID, "name", d.Name, "format", d.Format)
	return d, nil
}

// Get retrieves a drawing by ID.
func (s *DrawingService) Get(ctx context.Context, id string) (*models.Drawing, error) {
	return s.store.Get(ctx, id)
}

// List returns all stored drawings.
func (s *DrawingService) List(ctx context.Context) ([]models.Drawing, error) {
	return s.store.List(ctx)
}

// Delete removes a drawing by ID.
func (s *DrawingService) Delete(ctx context.Context, id string) error {
	if err := s.store.Delete(ctx, id); err != nil {
		return err
	}
	slog.Info("Drawing deleted", "id", id)
	return nil
}

// Clear removes all drawings.
func (s *DrawingService) Clear(ctx context.Context) error {
	if err := s.store.Clear(ctx); err != nil {
		slog.Error("Failed to clear drawings", "error", err)
		return err
	}
	slog.Info("All drawings cleared")
	return nil
}

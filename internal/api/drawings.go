package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/gourmetdelight/diner/internal/models"
	"github.com/gourmetdelight/diner/internal/service"
	"github.com/gourmetdelight/diner/internal/storage"
)

// SaveDrawing handles POST /api/drawings/save.
// Rejects payloads whose data URL is not an image data URL.
func (h *Handler) SaveDrawing(w http.ResponseWriter, r *http.Request) {
	var d models.Drawing
	if err := decodeJSON(w, r, &d); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	saved, err := h.drawings.Save(r.Context(), &d)
	if errors.Is(err, service.ErrInvalidImageData) {
		writeError(w, http.StatusBadRequest, "Invalid image data")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Error saving drawing: "+err.Error())
		return
	}

	writeJSON(w, http.StatusOK, saved)
}

// GetDrawing handles GET /api/drawings/{id}.
func (h *Handler) GetDrawing(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	d, err := h.drawings.Get(r.Context(), id)
	if errors.Is(err, storage.ErrNotFound) {
		writeError(w, http.StatusNotFound, "drawing not found")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, d)
}

// ListDrawings handles GET /api/drawings/all.
func (h *Handler) ListDrawings(w http.ResponseWriter, r *http.Request) {
	drawings, err := h.drawings.List(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, drawings)
}

// DeleteDrawing handles DELETE /api/drawings/{id}.
func (h *Handler) DeleteDrawing(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	err := h.drawings.Delete(r.Context(), id)
	if errors.Is(err, storage.ErrNotFound) {
		writeError(w, http.StatusNotFound, "drawing not found")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"deleted": true})
}

// ClearDrawings handles DELETE /api/drawings/clear.
func (h *Handler) ClearDrawings(w http.ResponseWriter, r *http.Request) {
	if err := h.drawings.Clear(r.Context()); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"cleared": true})
}

// Health handles GET /api/drawings/health.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":    "UP",
		"timestamp": time.Now().Format(time.RFC3339),
		"service":   "Drawing Application",
	})
}

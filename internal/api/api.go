// Package api exposes the drawing and ordering services over HTTP.
package api

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/gourmetdelight/diner/internal/menu"
	"github.com/gourmetdelight/diner/internal/service"
)

// MaxBodyBytes caps request bodies; drawing data URLs can be large but a
// canvas export should never exceed this.
const MaxBodyBytes = 8 << 20

// Handler holds the HTTP handlers for the drawing and ordering APIs.
type Handler struct {
	drawings *service.DrawingService
	orders   *service.OrderService
	catalog  *menu.Catalog
}

// NewHandler creates a Handler over the given services.
func NewHandler(drawings *service.DrawingService, orders *service.OrderService, catalog *menu.Catalog) *Handler {
	return &Handler{drawings: drawings, orders: orders, catalog: catalog}
}

// RegisterRoutes mounts all API routes on the router.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/api/drawings", func(r chi.Router) {
		r.Post("/save", h.SaveDrawing)
		r.Get("/all", h.ListDrawings)
		r.Get("/health", h.Health)
		r.Get("/{id}", h.GetDrawing)
		r.Delete("/clear", h.ClearDrawings)
		r.Delete("/{id}", h.DeleteDrawing)
	})

	r.Get("/api/menu", h.GetMenu)
	r.Post("/order", h.PlaceOrder)
}

// writeJSON encodes v as the response body with the given status.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("Failed to encode response", "error", err)
	}
}

// writeError encodes a plain error payload with the given status.
func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// decodeJSON decodes the request body into v, capping its size.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	r.Body = http.MaxBytesReader(w, r.Body, MaxBodyBytes)
	return json.NewDecoder(r.Body).Decode(v)
}

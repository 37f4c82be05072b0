package main

import (
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/gourmetdelight/diner/internal/api"
	"github.com/gourmetdelight/diner/internal/menu"
	"github.com/gourmetdelight/diner/internal/middleware"
	"github.com/gourmetdelight/diner/internal/service"
	"github.com/gourmetdelight/diner/internal/storage"
	"github.com/gourmetdelight/diner/internal/storage/memory"
	"github.com/gourmetdelight/diner/internal/storage/sqlite"
	"github.com/gourmetdelight/diner/pkg/logging"
)

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// newStore selects the drawing storage backend from DRAWINGS_STORE.
// Defaults to the in-memory store; "sqlite" opens DB_PATH instead.
func newStore() (storage.DrawingStore, error) {
	if getEnv("DRAWINGS_STORE", "memory") == "sqlite" {
		return sqlite.New(getEnv("DB_PATH", "./data/drawings.db"))
	}
	return memory.New(), nil
}

func main() {
	// .env is optional; real env vars win either way.
	_ = godotenv.Load()
	logging.Setup()

	store, err := newStore()
	if err != nil {
		slog.Error("Failed to initialize storage", "error", err)
		os.Exit(1)
	}
	defer store.Close()

	catalog := menu.Default()
	handler := api.NewHandler(
		service.NewDrawingService(store),
		service.NewOrderService(catalog),
		catalog,
	)

	r := chi.NewRouter()
	// Metrics sits on the router so it can label by matched route pattern.
	r.Use(middleware.Metrics)
	handler.RegisterRoutes(r)
	r.Handle("/metrics", promhttp.Handler())

	// Serve static frontend files for non-API paths
	staticDir, err := filepath.Abs(getEnv("STATIC_PATH", "./static"))
	if err != nil {
		slog.Error("Failed to resolve static path", "error", err)
		os.Exit(1)
	}
	slog.Info("Serving static files", "path", staticDir)
	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		if strings.HasPrefix(req.URL.Path, "/api/") {
			http.NotFound(w, req)
			return
		}

		urlPath := req.URL.Path
		if urlPath == "/" {
			urlPath = "/index.html"
		}

		filePath := filepath.Join(staticDir, filepath.Clean(urlPath))
		if _, err := os.Stat(filePath); os.IsNotExist(err) {
			http.ServeFile(w, req, filepath.Join(staticDir, "index.html"))
			return
		}
		http.ServeFile(w, req, filePath)
	})

	wrapped := middleware.Logging(middleware.CORS(r))

	// Wrap with h2c for HTTP/2 without TLS
	h2cHandler := h2c.NewHandler(wrapped, &http2.Server{})

	addr := getEnv("ADDR", ":8080")
	slog.Info("Server starting", "address", addr)
	if err := http.ListenAndServe(addr, h2cHandler); err != nil {
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	}
}

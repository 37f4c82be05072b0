package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestMetricsLabelsByRoutePattern(t *testing.T) {
	r := chi.NewRouter()
	r.Use(Metrics)
	r.Get("/api/drawings/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	server := httptest.NewServer(r)
	defer server.Close()

	before := testutil.ToFloat64(requestsTotal.WithLabelValues("GET", "/api/drawings/{id}", "200"))

	// Two different IDs must land on the same route-pattern label.
	for _, id := range []string{"11111111-aaaa", "22222222-bbbb"} {
		resp, err := http.Get(server.URL + "/api/drawings/" + id)
		if err != nil {
			t.Fatalf("GET failed: %v", err)
		}
		resp.Body.Close()
	}

	after := testutil.ToFloat64(requestsTotal.WithLabelValues("GET", "/api/drawings/{id}", "200"))
	if after-before != 2 {
		t.Errorf("pattern-labeled count increased by %v, want 2", after-before)
	}

	for _, id := range []string{"11111111-aaaa", "22222222-bbbb"} {
		raw := testutil.ToFloat64(requestsTotal.WithLabelValues("GET", "/api/drawings/"+id, "200"))
		if raw != 0 {
			t.Errorf("raw path %s recorded %v requests, want 0 (no per-ID labels)", id, raw)
		}
	}
}

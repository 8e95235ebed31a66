package httpserver_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	httpserver "largebnb_seeder/internal/adapters/http_server"
	"largebnb_seeder/internal/adapters/observability"
)

func TestHealthAndMetricsRoutes(t *testing.T) {
	reg := observability.InitRegistry()
	srv := httpserver.New(":0", reg, zerolog.Nop())

	rec := httptest.NewRecorder()
	srv.Mux().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("healthz status: %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"ok"`) {
		t.Fatalf("healthz body: %s", rec.Body.String())
	}

	observability.ObserveGenerated("property", 3)

	rec = httptest.NewRecorder()
	srv.Mux().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("metrics status: %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "largebnb_entities_generated_total") {
		t.Fatal("generated counter missing from scrape")
	}
}

package observability_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"largebnb_seeder/internal/adapters/observability"
)

func TestMetricsRegistryAndHandler(t *testing.T) {
	reg := observability.InitRegistry()

	// record samples so counters are non-zero
	observability.ObserveGenerated("properties", 3)
	observability.ObserveSkip("graph", "unresolved_room")

	mh := observability.MetricsHandler(reg)
	req := httptest.NewRequest("GET", "/metrics", nil)
	rr := httptest.NewRecorder()
	mh.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("metrics status: %d", rr.Code)
	}
	body, _ := io.ReadAll(rr.Body)
	out := string(body)
	if !strings.Contains(out, "largebnb_entities_generated_total") {
		t.Fatalf("expected largebnb_entities_generated_total in output")
	}
	if !strings.Contains(out, "largebnb_skipped_records_total") {
		t.Fatalf("expected largebnb_skipped_records_total in output")
	}
}

package insideairbnb_test

import (
	"bytes"
	"compress/gzip"
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"largebnb_seeder/internal/adapters/insideairbnb"
	"largebnb_seeder/internal/domain"
)

func gzCSV(t *testing.T, csv string) []byte {
	t.Helper()
	var buf bytes.Buffer
	gw := gzip.NewWriter(&buf)
	if _, err := gw.Write([]byte(csv)); err != nil {
		t.Fatalf("gzip write: %v", err)
	}
	if err := gw.Close(); err != nil {
		t.Fatalf("gzip close: %v", err)
	}
	return buf.Bytes()
}

func TestClient_FetchRows_RetriesThenSuccess(t *testing.T) {
	payload := gzCSV(t, "id,name,latitude\n1,Loft,41.89\n2,Studio,41.90\n")

	var hits int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch atomic.AddInt32(&hits, 1) {
		case 1, 2:
			w.WriteHeader(500)
		default:
			w.WriteHeader(200)
			_, _ = w.Write(payload)
		}
	}))
	defer ts.Close()

	cl := insideairbnb.New(100, nil, 0) // high RPS for tests, no cache
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	rows, err := cl.FetchRows(ctx, ts.URL+"/listings.csv.gz")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if rows[0]["name"] != "Loft" || rows[1]["latitude"] != "41.90" {
		t.Fatalf("unexpected rows: %+v", rows)
	}
	if atomic.LoadInt32(&hits) < 3 {
		t.Fatalf("expected at least 3 calls due to retries, got %d", hits)
	}
}

func TestClient_FetchRows_404(t *testing.T) {
	ts := httptest.NewServer(http.NotFoundHandler())
	defer ts.Close()

	cl := insideairbnb.New(100, nil, 0)
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	_, err := cl.FetchRows(ctx, ts.URL+"/missing.csv.gz")
	if err == nil {
		t.Fatalf("expected error for 404")
	}
}

// memCache is a map-backed domain.Cache for tests.
type memCache struct{ store map[string][]domain.Row }

func (m *memCache) Get(_ context.Context, key string, dst any) (bool, error) {
	v, ok := m.store[key]
	if !ok {
		return false, nil
	}
	*(dst.(*[]domain.Row)) = v
	return true, nil
}
func (m *memCache) Set(_ context.Context, key string, v any, _ int) error {
	if m.store == nil {
		m.store = map[string][]domain.Row{}
	}
	m.store[key] = v.([]domain.Row)
	return nil
}
func (m *memCache) Del(_ context.Context, key string) error {
	delete(m.store, key)
	return nil
}

func TestClient_FetchRows_CacheHitSkipsNetwork(t *testing.T) {
	payload := gzCSV(t, "id,name\n1,Loft\n")
	var hits int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		_, _ = w.Write(payload)
	}))
	defer ts.Close()

	cl := insideairbnb.New(100, &memCache{}, 900)
	ctx := context.Background()
	url := ts.URL + "/listings.csv.gz"

	if _, err := cl.FetchRows(ctx, url); err != nil {
		t.Fatalf("first fetch: %v", err)
	}
	if _, err := cl.FetchRows(ctx, url); err != nil {
		t.Fatalf("second fetch: %v", err)
	}
	if got := atomic.LoadInt32(&hits); got != 1 {
		t.Fatalf("expected 1 network hit, got %d", got)
	}
}

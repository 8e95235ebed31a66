package observability

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	FeedRows = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "largebnb", Name: "feed_rows_total", Help: "Seed feed rows fetched."},
		[]string{"city", "feed"}, // feed: listings|reviews
	)
	FeedRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "largebnb", Name: "feed_requests_total", Help: "Outbound feed requests."},
		[]string{"status"},
	)
	EntitiesGenerated = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "largebnb", Name: "entities_generated_total", Help: "Entities generated by kind."},
		[]string{"kind"},
	)
	CacheEvents = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "largebnb", Name: "cache_events_total", Help: "Cache hits/misses/sets/dels."},
		[]string{"cache", "event"},
	)
	BatchesWritten = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "largebnb", Name: "store_batches_total", Help: "Batches committed per store and unit."},
		[]string{"store", "unit"},
	)
	BatchLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "largebnb", Name: "store_batch_duration_seconds",
			Help:    "Store batch write duration seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"store", "unit"},
	)
	SkippedRecords = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "largebnb", Name: "skipped_records_total", Help: "Records dropped from a projection and why."},
		[]string{"projection", "reason"},
	)
)

func InitRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(FeedRows, FeedRequests, EntitiesGenerated, CacheEvents,
		BatchesWritten, BatchLatency, SkippedRecords)
	return reg
}

func MetricsHandler(reg *prometheus.Registry) http.Handler {
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{})
}

func ObserveFeed(city, feed string, rows int) {
	FeedRows.WithLabelValues(city, feed).Add(float64(rows))
}

func ObserveFeedRequest(status int) {
	FeedRequests.WithLabelValues(strconv.Itoa(status)).Inc()
}

func ObserveGenerated(kind string, n int) {
	EntitiesGenerated.WithLabelValues(kind).Add(float64(n))
}

func ObserveCache(cache, event string) { // event: hit|miss|set|del
	CacheEvents.WithLabelValues(cache, event).Inc()
}

func ObserveBatch(store, unit string, dur time.Duration) {
	BatchesWritten.WithLabelValues(store, unit).Inc()
	BatchLatency.WithLabelValues(store, unit).Observe(dur.Seconds())
}

func ObserveSkip(projection, reason string) {
	SkippedRecords.WithLabelValues(projection, reason).Inc()
}

package insideairbnb

import (
	"compress/gzip"
	"context"
	crand "crypto/rand"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"largebnb_seeder/internal/adapters/observability"
	"largebnb_seeder/internal/domain"
)

// Client downloads InsideAirbnb csv.gz archives and parses them into loose
// rows. Responses are cached (when a cache is wired) so repeated runs with
// a pinned snapshot date never re-download the same archive.
type Client struct {
	hc     *http.Client
	rl     *rate.Limiter
	cache  domain.Cache
	ttlSec int
}

func New(rps int, cache domain.Cache, ttlSec int) *Client {
	if rps <= 0 {
		rps = 5
	}
	return &Client{
		hc:     &http.Client{Timeout: 60 * time.Second},
		rl:     rate.NewLimiter(rate.Limit(rps), rps),
		cache:  cache,
		ttlSec: ttlSec,
	}
}

var (
	ErrNotFound  = errors.New("insideairbnb: not found")
	ErrForbidden = errors.New("insideairbnb: forbidden")
)

// FetchRows returns every record of the archive at url as a field-name map.
// Missing or short records are kept with whatever fields they carry.
func (c *Client) FetchRows(ctx context.Context, url string) ([]domain.Row, error) {
	key := "feed:" + url
	if c.cache != nil {
		var cached []domain.Row
		if ok, _ := c.cache.Get(ctx, key, &cached); ok {
			return cached, nil
		}
	}

	body, err := c.get(ctx, url)
	if err != nil {
		return nil, err
	}
	defer body.Close()

	rows, err := parseCSVGz(body)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", url, err)
	}

	if c.cache != nil {
		_ = c.cache.Set(ctx, key, rows, c.ttlSec)
	}
	return rows, nil
}

func parseCSVGz(r io.Reader) ([]domain.Row, error) {
	gz, err := gzip.NewReader(r)
	if err != nil {
		return nil, err
	}
	defer gz.Close()

	cr := csv.NewReader(gz)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var rows []domain.Row
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		row := make(domain.Row, len(header))
		for i, name := range header {
			if i < len(rec) {
				row[name] = rec[i]
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// get performs a GET with client-side rate limiting and retries on 429 and
// transient 5xx, honoring Retry-After when provided. The caller owns the
// returned body.
func (c *Client) get(ctx context.Context, url string) (io.ReadCloser, error) {
	if err := c.rl.Wait(ctx); err != nil {
		return nil, err
	}

	var lastErr error
	for i := 0; i < 4; i++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return nil, err
		}
		req.Header.Set("Accept", "application/gzip")
		req.Header.Set("User-Agent", "largebnb-seeder/1.0")

		resp, err := c.hc.Do(req)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			lastErr = err
			if i < 3 && sleepCtx(ctx, backoff(i)) {
				continue
			}
			return nil, lastErr
		}
		observability.ObserveFeedRequest(resp.StatusCode)

		switch resp.StatusCode {
		case http.StatusOK:
			return resp.Body, nil

		case http.StatusNotFound:
			resp.Body.Close()
			return nil, ErrNotFound

		case http.StatusForbidden, http.StatusUnauthorized:
			resp.Body.Close()
			return nil, ErrForbidden

		case http.StatusTooManyRequests, http.StatusInternalServerError,
			http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
			wait := retryAfter(resp)
			resp.Body.Close()
			if wait == 0 {
				wait = backoff(i)
			}
			lastErr = fmt.Errorf("remote %d", resp.StatusCode)
			if i < 3 && sleepCtx(ctx, wait) {
				continue
			}
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			return nil, lastErr

		default:
			b, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
			resp.Body.Close()
			return nil, fmt.Errorf("bad status %d: %s", resp.StatusCode, strings.TrimSpace(string(b)))
		}
	}
	return nil, lastErr
}

// sleepCtx waits for d or returns early if ctx is done.
func sleepCtx(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return true
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}

// retryAfter parses Retry-After (seconds or HTTP-date). Returns 0 if absent.
func retryAfter(resp *http.Response) time.Duration {
	h := resp.Header.Get("Retry-After")
	if h == "" {
		return 0
	}
	if secs, err := strconv.Atoi(strings.TrimSpace(h)); err == nil && secs >= 0 {
		return time.Duration(secs) * time.Second
	}
	if t, err := http.ParseTime(h); err == nil {
		if d := time.Until(t); d > 0 {
			return d
		}
	}
	return 0
}

// backoff doubles per attempt (200ms, 400ms, 800ms...) with up to +50%
// jitter from crypto/rand so concurrent fetchers never sleep in lockstep.
func backoff(i int) time.Duration {
	base := time.Duration(1<<i) * 200 * time.Millisecond
	var b [1]byte
	if _, err := crand.Read(b[:]); err != nil {
		return base
	}
	f := float64(b[0]) / 255.0
	j := time.Duration(0.5 * f * float64(base))
	return base + j
}

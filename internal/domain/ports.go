package domain

import (
	"context"
	"errors"
)

// ErrMissingProperties is fatal at projection time: without the properties
// artifact neither projection can produce anything useful.
var ErrMissingProperties = errors.New("properties artifact missing or empty")

// Row is one loosely typed record from the seed feed. Any field may be
// absent; consumers fall back to synthetic values.
type Row map[string]string

// FeedClient fetches gzip-compressed CSV row sets from the seed provider.
type FeedClient interface {
	FetchRows(ctx context.Context, url string) ([]Row, error)
}

// Cache is the feed-response cache. Get reports whether the key was present.
type Cache interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, v any, ttlSec int) error
	Del(ctx context.Context, key string) error
}

// Dataset is the complete entity graph produced by one generation run.
// It is immutable once generation finishes; both projectors read it
// without mutating shared state.
type Dataset struct {
	Managers      []Manager      `json:"managers"`
	Customers     []Customer     `json:"customers"`
	Properties    []Property     `json:"properties"`
	Rooms         []Room         `json:"rooms"`
	Reservations  []Reservation  `json:"reservations"`
	Reviews       []Review       `json:"reviews"`
	POIs          []POI          `json:"pois"`
	Messages      []Message      `json:"messages"`
	Notifications []Notification `json:"notifications"`
}

// RoomToProperty builds the Room id -> owning Property id index used when
// resolving reservations to properties.
func (d *Dataset) RoomToProperty() map[string]string {
	idx := make(map[string]string, len(d.Rooms))
	for _, r := range d.Rooms {
		if r.PropertyID != "" {
			idx[r.ID] = r.PropertyID
		}
	}
	return idx
}

// AmenityUniverse returns the distinct amenity strings across all
// properties, in first-seen order.
func (d *Dataset) AmenityUniverse() []string {
	seen := make(map[string]struct{})
	var out []string
	for _, p := range d.Properties {
		for _, a := range p.Amenities {
			if _, ok := seen[a]; ok {
				continue
			}
			seen[a] = struct{}{}
			out = append(out, a)
		}
	}
	return out
}

// Package dataset persists the generated entity graph as one JSON file per
// entity kind. The files are the seam between generation and projection:
// either projector can be re-run from them without regenerating data.
package dataset

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"

	"largebnb_seeder/internal/domain"
)

const (
	FileManagers      = "managers.json"
	FileCustomers     = "customers.json"
	FileProperties    = "properties.json"
	FileRooms         = "rooms.json"
	FileReservations  = "reservations.json"
	FileReviews       = "reviews.json"
	FilePOIs          = "pois.json"
	FileMessages      = "messages.json"
	FileNotifications = "notifications.json"
)

// Write stores every collection of ds under dir, creating dir if needed.
func Write(dir string, ds *domain.Dataset) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create artifact dir: %w", err)
	}
	writes := []struct {
		file string
		v    any
	}{
		{FileManagers, ds.Managers},
		{FileCustomers, ds.Customers},
		{FileProperties, ds.Properties},
		{FileRooms, ds.Rooms},
		{FileReservations, ds.Reservations},
		{FileReviews, ds.Reviews},
		{FilePOIs, ds.POIs},
		{FileMessages, ds.Messages},
		{FileNotifications, ds.Notifications},
	}
	for _, w := range writes {
		if err := writeJSON(filepath.Join(dir, w.file), w.v); err != nil {
			return err
		}
	}
	return nil
}

// Load reads a dataset back from dir. A missing or empty properties file is
// fatal; any other missing collection degrades to empty with a warning.
func Load(dir string) (*domain.Dataset, error) {
	ds := &domain.Dataset{}

	ok, err := readJSON(filepath.Join(dir, FileProperties), &ds.Properties)
	if err != nil {
		return nil, err
	}
	if !ok || len(ds.Properties) == 0 {
		return nil, domain.ErrMissingProperties
	}

	optional := []struct {
		file string
		dst  any
	}{
		{FileManagers, &ds.Managers},
		{FileCustomers, &ds.Customers},
		{FileRooms, &ds.Rooms},
		{FileReservations, &ds.Reservations},
		{FileReviews, &ds.Reviews},
		{FilePOIs, &ds.POIs},
		{FileMessages, &ds.Messages},
		{FileNotifications, &ds.Notifications},
	}
	for _, o := range optional {
		ok, err := readJSON(filepath.Join(dir, o.file), o.dst)
		if err != nil {
			return nil, err
		}
		if !ok {
			log.Warn().Str("file", o.file).Msg("artifact missing; collection empty")
		}
	}
	return ds, nil
}

func writeJSON(path string, v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal %s: %w", path, err)
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

func readJSON(path string, dst any) (bool, error) {
	b, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("read %s: %w", path, err)
	}
	if err := json.Unmarshal(b, dst); err != nil {
		return false, fmt.Errorf("decode %s: %w", path, err)
	}
	return true, nil
}

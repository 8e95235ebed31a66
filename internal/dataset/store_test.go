package dataset_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"largebnb_seeder/internal/dataset"
	"largebnb_seeder/internal/domain"
)

func TestWriteLoad_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	ds := &domain.Dataset{
		Properties: []domain.Property{{
			ID: "p1", Name: "Loft", City: "Rome",
			Coordinates: [2]float64{41.8902, 12.4922},
			Amenities:   []string{"Wifi"},
		}},
		Rooms:     []domain.Room{{ID: "r1", PropertyID: "p1", Name: "Room 1"}},
		Customers: []domain.Customer{{ID: "c1", Username: "anna", Email: "anna@example.com"}},
	}
	require.NoError(t, dataset.Write(dir, ds))

	got, err := dataset.Load(dir)
	require.NoError(t, err)
	assert.Equal(t, ds.Properties, got.Properties)
	assert.Equal(t, ds.Rooms, got.Rooms)
	assert.Equal(t, ds.Customers, got.Customers)
	assert.Empty(t, got.Messages) // written as empty, read back empty
}

func TestLoad_MissingPropertiesIsFatal(t *testing.T) {
	_, err := dataset.Load(t.TempDir())
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrMissingProperties))
}

func TestLoad_MissingOptionalDegrades(t *testing.T) {
	dir := t.TempDir()
	// only properties present
	ds := &domain.Dataset{Properties: []domain.Property{{ID: "p1"}}}
	require.NoError(t, dataset.Write(dir, ds))

	got, err := dataset.Load(dir)
	require.NoError(t, err)
	assert.Len(t, got.Properties, 1)
	assert.Empty(t, got.Reservations)
}

package mongodoc

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"largebnb_seeder/internal/domain"
)

func TestMapUsersDedupByEmail(t *testing.T) {
	customers := []domain.Customer{
		{ID: "c1", Username: "alice", Email: "shared@example.com", Birthdate: "1990-04-12"},
		{ID: "c2", Username: "bob", Email: "bob@example.com", Birthdate: "not-a-date"},
	}
	managers := []domain.Manager{
		{ID: "m1", Username: "host", Email: "shared@example.com"},
		{ID: "m2", Username: "owner", Email: "owner@example.com", IBAN: "DE0012345"},
	}

	users := MapUsers(customers, managers)
	require.Len(t, users, 3, "duplicate email must be dropped")

	byID := make(map[string]UserDoc)
	for _, u := range users {
		byID[u.ID] = u
	}
	require.Contains(t, byID, "c1", "first occurrence of the email wins")
	require.NotContains(t, byID, "m1")

	require.Equal(t, "CUSTOMER", byID["c1"].Role)
	require.Equal(t, "MANAGER", byID["m2"].Role)
	require.Equal(t, "DE0012345", byID["m2"].IBAN)

	require.NotNil(t, byID["c1"].Birthdate)
	require.Equal(t, 1990, byID["c1"].Birthdate.Year())
	require.Nil(t, byID["c2"].Birthdate, "unparseable birthdate is omitted")
}

func TestMapPropertiesGeoJSONOrder(t *testing.T) {
	props := []domain.Property{{
		ID:          "p1",
		Name:        "Colosseum View",
		Coordinates: [2]float64{41.8902, 12.4922}, // lat, lon
	}}
	rooms := []domain.Room{
		{ID: "r1", PropertyID: "p1", Name: "Suite"},
		{ID: "r2", PropertyID: "other", Name: "Elsewhere"},
	}
	pois := []domain.POI{
		{ID: "poi1", PropertyID: "p1", Name: "Colosseum", Coordinates: [2]float64{41.8902, 12.4922}},
	}

	docs := MapProperties(props, rooms, pois)
	require.Len(t, docs, 1)
	doc := docs[0]

	require.Equal(t, "Point", doc.Location.Type)
	require.Equal(t, [2]float64{12.4922, 41.8902}, doc.Location.Coordinates, "GeoJSON is lon,lat")

	require.Len(t, doc.Rooms, 1, "only own rooms are embedded")
	require.Equal(t, "r1", doc.Rooms[0].RoomID)
	require.Len(t, doc.POIs, 1)
	require.Equal(t, [2]float64{41.8902, 12.4922}, doc.POIs[0].Coordinates, "POI coordinates stay lat,lon")
}

func TestMapReservationsDates(t *testing.T) {
	in := []domain.Reservation{{
		ID:           "res1",
		RoomID:       "r1",
		CustomerID:   "c1",
		CheckInDate:  "2025-03-10",
		CheckOutDate: "2025-03-14",
		CreationDate: "2025-02-01",
		Adults:       2,
		Status:       domain.StatusConfirmed,
	}}

	docs := MapReservations(in)
	require.Len(t, docs, 1)
	require.Equal(t, "c1", docs[0].UserID)
	require.Equal(t, time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC), docs[0].Dates.CheckIn)
	require.Equal(t, time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC), docs[0].Dates.CheckOut)
	require.Equal(t, time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC), docs[0].CreatedAt)
}

func TestMapReservationsBadDateFallsBack(t *testing.T) {
	before := time.Now()
	docs := MapReservations([]domain.Reservation{{ID: "res1", CheckInDate: "garbage"}})
	require.Len(t, docs, 1)
	require.False(t, docs[0].Dates.CheckIn.Before(before), "bad date collapses to now, not zero")
}

func TestNormalizeAmenities(t *testing.T) {
	got := NormalizeAmenities([]string{`{"Wifi","Heating"}`, "[Kitchen, TV]", ""})
	require.Equal(t, []string{"Wifi", "Heating", "Kitchen", "TV"}, got)
}

func TestMapReviewsCarriesScores(t *testing.T) {
	reply := "thanks!"
	docs := MapReviews([]domain.Review{{
		ID: "rv1", PropertyID: "p1", UserID: "u1", ReservationID: "res1",
		CreationDate: "2025-01-05T10:30:00", Rating: 4,
		Cleanliness: 4, Communication: 5, Location: 3, Value: 4,
		ManagerReply: &reply,
	}})
	require.Len(t, docs, 1)
	require.Equal(t, 4.0, docs[0].Rating)
	require.Equal(t, 10, docs[0].CreationDate.Hour())
	require.NotNil(t, docs[0].ManagerReply)
	require.Equal(t, "thanks!", *docs[0].ManagerReply)
}

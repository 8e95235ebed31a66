//go:build integration || !unit

package mongodoc_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"largebnb_seeder/internal/domain"
	"largebnb_seeder/internal/projector/mongodoc"
)

func TestStore_Mongo_LoadAll(t *testing.T) {
	pool, err := dockertest.NewPool("")
	if err != nil {
		t.Fatalf("dockertest: %v", err)
	}

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "mongo",
		Tag:        "7.0",
	}, func(hc *docker.HostConfig) {
		hc.AutoRemove = true
		hc.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		t.Fatalf("run mongo: %v", err)
	}
	t.Cleanup(func() { _ = pool.Purge(resource) })

	uri := fmt.Sprintf("mongodb://127.0.0.1:%s", resource.GetPort("27017/tcp"))
	ctx := context.Background()

	var store *mongodoc.Store
	if err := pool.Retry(func() error {
		var e error
		store, e = mongodoc.NewStore(ctx, uri, "large_bnb_test", zerolog.Nop())
		return e
	}); err != nil {
		t.Fatalf("connect mongo: %v", err)
	}
	t.Cleanup(func() { _ = store.Close(ctx) })

	ds := &domain.Dataset{
		Managers: []domain.Manager{{ID: "m1", Username: "host", Email: "host@example.com"}},
		Customers: []domain.Customer{
			{ID: "c1", Username: "alice", Email: "alice@example.com", Birthdate: "1991-07-01"},
		},
		Properties: []domain.Property{{
			ID: "p1", Name: "Trastevere Loft", ManagerID: "m1",
			City: "Rome", Country: "Italy",
			Coordinates: [2]float64{41.8902, 12.4922},
		}},
		Rooms: []domain.Room{{ID: "r1", PropertyID: "p1", Name: "Main room", Beds: 2}},
		Reservations: []domain.Reservation{{
			ID: "res1", RoomID: "r1", CustomerID: "c1",
			CheckInDate: "2025-05-01", CheckOutDate: "2025-05-04",
			CreationDate: "2025-04-01", Adults: 2, Status: domain.StatusConfirmed,
		}},
		Reviews: []domain.Review{{
			ID: "rv1", PropertyID: "p1", UserID: "c1", ReservationID: "res1",
			CreationDate: "2025-05-05T09:00:00", Rating: 5,
		}},
	}

	if err := store.LoadAll(ctx, ds); err != nil {
		t.Fatalf("LoadAll: %v", err)
	}

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		t.Fatalf("verify connect: %v", err)
	}
	t.Cleanup(func() { _ = client.Disconnect(ctx) })
	db := client.Database("large_bnb_test")

	// users: manager + customer, keyed by _id
	n, err := db.Collection(mongodoc.CollUsers).CountDocuments(ctx, bson.D{})
	if err != nil {
		t.Fatalf("count users: %v", err)
	}
	if n != 2 {
		t.Fatalf("users: want 2, got %d", n)
	}

	// property carries GeoJSON location and the embedded room
	var prop struct {
		Location struct {
			Type        string     `bson:"type"`
			Coordinates [2]float64 `bson:"coordinates"`
		} `bson:"location"`
		Rooms []struct {
			RoomID string `bson:"roomId"`
		} `bson:"rooms"`
	}
	if err := db.Collection(mongodoc.CollProperties).FindOne(ctx, bson.D{{Key: "_id", Value: "p1"}}).Decode(&prop); err != nil {
		t.Fatalf("find property: %v", err)
	}
	if prop.Location.Type != "Point" {
		t.Fatalf("location type: %q", prop.Location.Type)
	}
	if prop.Location.Coordinates != [2]float64{12.4922, 41.8902} {
		t.Fatalf("location coordinates not lon,lat: %v", prop.Location.Coordinates)
	}
	if len(prop.Rooms) != 1 || prop.Rooms[0].RoomID != "r1" {
		t.Fatalf("embedded rooms: %+v", prop.Rooms)
	}

	// 2dsphere index exists on location
	cur, err := db.Collection(mongodoc.CollProperties).Indexes().List(ctx)
	if err != nil {
		t.Fatalf("list indexes: %v", err)
	}
	var geoIndexed bool
	for cur.Next(ctx) {
		var ix struct {
			Key bson.M `bson:"key"`
		}
		if err := cur.Decode(&ix); err != nil {
			t.Fatalf("decode index: %v", err)
		}
		if ix.Key["location"] == "2dsphere" {
			geoIndexed = true
		}
	}
	if !geoIndexed {
		t.Fatal("2dsphere index on location missing")
	}

	// a second load is a clean refresh, not an append
	if err := store.LoadAll(ctx, ds); err != nil {
		t.Fatalf("second LoadAll: %v", err)
	}
	n, err = db.Collection(mongodoc.CollReservations).CountDocuments(ctx, bson.D{})
	if err != nil {
		t.Fatalf("count reservations: %v", err)
	}
	if n != 1 {
		t.Fatalf("reservations after re-run: want 1, got %d", n)
	}
}

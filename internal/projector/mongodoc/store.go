package mongodoc

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"largebnb_seeder/internal/adapters/observability"
	"largebnb_seeder/internal/domain"
)

// Collection names in the document store.
const (
	CollUsers         = "users"
	CollProperties    = "properties"
	CollReviews       = "reviews"
	CollReservations  = "reservations"
	CollMessages      = "messages"
	CollNotifications = "notifications"
)

// Store writes projected documents into MongoDB. Each collection is
// replaced wholesale: a load is a full refresh, not an incremental merge.
type Store struct {
	client *mongo.Client
	db     *mongo.Database
	log    zerolog.Logger
}

func NewStore(ctx context.Context, uri, dbName string, log zerolog.Logger) (*Store, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}
	pingCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("mongo ping: %w", err)
	}
	return &Store{client: client, db: client.Database(dbName), log: log}, nil
}

func (s *Store) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

// Replace clears a collection and inserts the given documents. An empty
// batch still clears, so a re-run with a smaller dataset leaves no strays.
func (s *Store) Replace(ctx context.Context, coll string, docs []any) error {
	c := s.db.Collection(coll)
	if _, err := c.DeleteMany(ctx, bson.D{}); err != nil {
		return fmt.Errorf("clear %s: %w", coll, err)
	}
	if len(docs) == 0 {
		s.log.Warn().Str("collection", coll).Msg("no documents to insert")
		return nil
	}
	start := time.Now()
	res, err := c.InsertMany(ctx, docs)
	if err != nil {
		return fmt.Errorf("insert %s: %w", coll, err)
	}
	observability.ObserveBatch("mongo", coll, time.Since(start))
	s.log.Info().Str("collection", coll).Int("count", len(res.InsertedIDs)).Msg("collection replaced")
	return nil
}

// EnsureGeoIndex creates the 2dsphere index geo queries on properties need.
// Index creation is idempotent on the server side.
func (s *Store) EnsureGeoIndex(ctx context.Context) error {
	_, err := s.db.Collection(CollProperties).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "location", Value: "2dsphere"}},
	})
	if err != nil {
		return fmt.Errorf("create 2dsphere index: %w", err)
	}
	return nil
}

// LoadAll projects the whole dataset into the document store.
func (s *Store) LoadAll(ctx context.Context, ds *domain.Dataset) error {
	steps := []struct {
		coll string
		docs []any
	}{
		{CollUsers, toAny(MapUsers(ds.Customers, ds.Managers))},
		{CollProperties, toAny(MapProperties(ds.Properties, ds.Rooms, ds.POIs))},
		{CollReviews, toAny(MapReviews(ds.Reviews))},
		{CollReservations, toAny(MapReservations(ds.Reservations))},
		{CollMessages, toAny(MapMessages(ds.Messages))},
		{CollNotifications, toAny(MapNotifications(ds.Notifications))},
	}
	for _, step := range steps {
		if err := s.Replace(ctx, step.coll, step.docs); err != nil {
			return err
		}
	}
	return s.EnsureGeoIndex(ctx)
}

func toAny[T any](in []T) []any {
	out := make([]any, len(in))
	for i := range in {
		out[i] = in[i]
	}
	return out
}

package neograph

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"github.com/rs/zerolog"

	"largebnb_seeder/internal/adapters/observability"
	"largebnb_seeder/internal/domain"
)

// Cypher statements. Every write is a MERGE so re-running a load converges
// on the same graph instead of duplicating nodes or relationships.
const (
	stmtUserConstraint     = "CREATE CONSTRAINT user_username IF NOT EXISTS FOR (u:User) REQUIRE u.username IS UNIQUE"
	stmtPropertyConstraint = "CREATE CONSTRAINT property_id IF NOT EXISTS FOR (p:Property) REQUIRE p.propertyId IS UNIQUE"
	stmtAmenityConstraint  = "CREATE CONSTRAINT amenity_name IF NOT EXISTS FOR (a:Amenity) REQUIRE a.name IS UNIQUE"

	stmtMergeUsers = `UNWIND $rows AS row
MERGE (u:User {username: row.username})
SET u.userId = row.userId, u.name = row.name, u.surname = row.surname,
    u.email = row.email, u.role = row.role`

	stmtMergeProperties = `UNWIND $rows AS row
MERGE (p:Property {propertyId: row.propertyId})
SET p.name = row.name, p.city = row.city, p.country = row.country`

	stmtMergeBookings = `UNWIND $rows AS row
MATCH (u:User {userId: row.userId})
MATCH (p:Property {propertyId: row.propertyId})
MERGE (u)-[:BOOKED {date: date(row.date)}]->(p)`

	stmtMergeAmenities = `UNWIND $rows AS row
MERGE (:Amenity {name: row.name})`

	stmtMergeHas = `UNWIND $rows AS row
MATCH (p:Property {propertyId: row.propertyId})
MATCH (a:Amenity {name: row.amenity})
MERGE (p)-[:HAS]->(a)`
)

// Executor runs a single write statement. The production executor wraps a
// driver session; tests substitute a recorder.
type Executor interface {
	Write(ctx context.Context, cypher string, params map[string]any) error
}

type driverExecutor struct {
	driver neo4j.DriverWithContext
}

func (e *driverExecutor) Write(ctx context.Context, cypher string, params map[string]any) error {
	session := e.driver.NewSession(ctx, neo4j.SessionConfig{})
	defer session.Close(ctx)
	_, err := session.ExecuteWrite(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
		return tx.Run(ctx, cypher, params)
	})
	return err
}

// Config tunes the load. Node and relationship statements take different
// batch sizes; relationships do two MATCHes per row and stay smaller.
type Config struct {
	NodeBatchSize int
	RelBatchSize  int
	BoostFraction float64
	Seed          int64
}

func DefaultConfig() Config {
	return Config{NodeBatchSize: 1000, RelBatchSize: 500, BoostFraction: 0.10, Seed: 42}
}

// Store writes the graph projection into Neo4j.
type Store struct {
	exec   Executor
	driver neo4j.DriverWithContext
	cfg    Config
	log    zerolog.Logger
}

func NewStore(ctx context.Context, uri, user, pass string, cfg Config, log zerolog.Logger) (*Store, error) {
	driver, err := neo4j.NewDriverWithContext(uri, neo4j.BasicAuth(user, pass, ""))
	if err != nil {
		return nil, fmt.Errorf("neo4j driver: %w", err)
	}
	if err := driver.VerifyConnectivity(ctx); err != nil {
		_ = driver.Close(ctx)
		return nil, fmt.Errorf("neo4j connectivity: %w", err)
	}
	return &Store{exec: &driverExecutor{driver: driver}, driver: driver, cfg: cfg, log: log}, nil
}

// NewWithExecutor wires a custom executor; used by tests.
func NewWithExecutor(exec Executor, cfg Config, log zerolog.Logger) *Store {
	return &Store{exec: exec, cfg: cfg, log: log}
}

func (s *Store) Close(ctx context.Context) error {
	if s.driver == nil {
		return nil
	}
	return s.driver.Close(ctx)
}

func (s *Store) EnsureConstraints(ctx context.Context) error {
	for _, stmt := range []string{stmtUserConstraint, stmtPropertyConstraint, stmtAmenityConstraint} {
		if err := s.exec.Write(ctx, stmt, nil); err != nil {
			return fmt.Errorf("constraint: %w", err)
		}
	}
	return nil
}

// LoadAll projects the dataset into the graph: nodes first, then the
// relationships that match on them.
func (s *Store) LoadAll(ctx context.Context, ds *domain.Dataset) error {
	if err := s.EnsureConstraints(ctx); err != nil {
		return err
	}

	users := UserRows(ds.Customers, ds.Managers)
	if err := s.runBatches(ctx, stmtMergeUsers, users, s.cfg.NodeBatchSize, "users"); err != nil {
		return err
	}
	if err := s.runBatches(ctx, stmtMergeProperties, PropertyRows(ds.Properties), s.cfg.NodeBatchSize, "properties"); err != nil {
		return err
	}

	bookings, skips := BookingRows(ds.Reservations, ds.RoomToProperty())
	if skips.Total() > 0 {
		s.log.Warn().
			Int("unknown_room", skips.UnknownRoom).
			Int("missing_customer", skips.MissingCustomer).
			Msg("unresolvable reservations dropped from graph")
		for i := 0; i < skips.UnknownRoom; i++ {
			observability.ObserveSkip("neo4j", "unknown_room")
		}
		for i := 0; i < skips.MissingCustomer; i++ {
			observability.ObserveSkip("neo4j", "missing_customer")
		}
	}
	if err := s.runBatches(ctx, stmtMergeBookings, bookings, s.cfg.RelBatchSize, "booked"); err != nil {
		return err
	}

	rng := rand.New(rand.NewSource(s.cfg.Seed))
	boost := SyntheticBookingRows(rng, userIDs(ds), propertyIDs(ds), s.cfg.BoostFraction)
	if err := s.runBatches(ctx, stmtMergeBookings, boost, s.cfg.RelBatchSize, "booked_boost"); err != nil {
		return err
	}

	if err := s.runBatches(ctx, stmtMergeAmenities, AmenityRows(ds.AmenityUniverse()), s.cfg.NodeBatchSize, "amenities"); err != nil {
		return err
	}
	return s.runBatches(ctx, stmtMergeHas, HasRows(ds.Properties), s.cfg.RelBatchSize, "has")
}

func (s *Store) runBatches(ctx context.Context, cypher string, rows []map[string]any, size int, unit string) error {
	if size <= 0 {
		size = 1000
	}
	for start := 0; start < len(rows); start += size {
		end := start + size
		if end > len(rows) {
			end = len(rows)
		}
		began := time.Now()
		if err := s.exec.Write(ctx, cypher, map[string]any{"rows": rows[start:end]}); err != nil {
			return fmt.Errorf("merge %s batch %d-%d: %w", unit, start, end, err)
		}
		observability.ObserveBatch("neo4j", unit, time.Since(began))
	}
	s.log.Info().Str("unit", unit).Int("rows", len(rows)).Msg("graph batches written")
	return nil
}

// userIDs spans every User node the graph holds, managers included, so the
// boost fraction applies to the same pool UserRows merges.
func userIDs(ds *domain.Dataset) []string {
	ids := make([]string, 0, len(ds.Customers)+len(ds.Managers))
	for _, c := range ds.Customers {
		ids = append(ids, c.ID)
	}
	for _, m := range ds.Managers {
		ids = append(ids, m.ID)
	}
	return ids
}

func propertyIDs(ds *domain.Dataset) []string {
	ids := make([]string, 0, len(ds.Properties))
	for _, p := range ds.Properties {
		ids = append(ids, p.ID)
	}
	return ids
}

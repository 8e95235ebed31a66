package neograph_test

import (
	"context"
	"math/rand"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"largebnb_seeder/internal/domain"
	"largebnb_seeder/internal/projector/neograph"
)

type recordedWrite struct {
	cypher string
	rows   []map[string]any
}

type fakeExecutor struct {
	writes []recordedWrite
}

func (f *fakeExecutor) Write(_ context.Context, cypher string, params map[string]any) error {
	var rows []map[string]any
	if params != nil {
		if r, ok := params["rows"].([]map[string]any); ok {
			rows = r
		}
	}
	f.writes = append(f.writes, recordedWrite{cypher: cypher, rows: rows})
	return nil
}

func (f *fakeExecutor) matching(fragment string) []recordedWrite {
	var out []recordedWrite
	for _, w := range f.writes {
		if strings.Contains(w.cypher, fragment) {
			out = append(out, w)
		}
	}
	return out
}

func sampleDataset() *domain.Dataset {
	return &domain.Dataset{
		Managers:  []domain.Manager{{ID: "m1", Username: "host", Email: "host@example.com"}},
		Customers: []domain.Customer{{ID: "c1", Username: "alice", Email: "alice@example.com"}},
		Properties: []domain.Property{
			{ID: "p1", Name: "Loft", City: "Rome", Country: "Italy", Amenities: []string{`{"Wifi","Heating"}`}},
		},
		Rooms: []domain.Room{{ID: "r1", PropertyID: "p1"}},
		Reservations: []domain.Reservation{
			{ID: "res1", RoomID: "r1", CustomerID: "c1", CheckInDate: "2025-05-01"},
			{ID: "res2", RoomID: "ghost", CustomerID: "c1", CheckInDate: "2025-06-01"},
		},
	}
}

func TestLoadAllOrderAndMergeKeys(t *testing.T) {
	exec := &fakeExecutor{}
	store := neograph.NewWithExecutor(exec, neograph.DefaultConfig(), zerolog.Nop())

	require.NoError(t, store.LoadAll(context.Background(), sampleDataset()))

	// constraints come first
	require.GreaterOrEqual(t, len(exec.writes), 3)
	for i := 0; i < 3; i++ {
		require.Contains(t, exec.writes[i].cypher, "CREATE CONSTRAINT")
	}

	users := exec.matching("MERGE (u:User {username: row.username})")
	require.Len(t, users, 1)
	require.Len(t, users[0].rows, 2, "customers and managers share the User label")

	// the reservation whose room is unknown never reaches the graph
	booked := exec.matching("MERGE (u)-[:BOOKED")
	var bookedRows int
	for _, w := range booked {
		bookedRows += len(w.rows)
	}
	require.Equal(t, 1, bookedRows, "a 10% boost over two users rounds down to zero synthetic rows")

	has := exec.matching("MERGE (p)-[:HAS]->(a)")
	require.Len(t, has, 1)
	require.Len(t, has[0].rows, 2, "amenity list is normalized before HAS rows")
}

func TestBookingRowsSkipUnresolvable(t *testing.T) {
	rows, skips := neograph.BookingRows(
		[]domain.Reservation{
			{RoomID: "r1", CustomerID: "c1", CheckInDate: "2025-05-01T14:00:00"},
			{RoomID: "missing", CustomerID: "c2", CheckInDate: "2025-05-02"},
			{RoomID: "r1", CustomerID: "", CheckInDate: "2025-05-03"},
		},
		map[string]string{"r1": "p1"},
	)
	require.Equal(t, 1, skips.UnknownRoom)
	require.Equal(t, 1, skips.MissingCustomer, "empty customer reference is a counted drop")
	require.Equal(t, 2, skips.Total())
	require.Len(t, rows, 1)
	require.Equal(t, "p1", rows[0]["propertyId"])
	require.Equal(t, "2025-05-01", rows[0]["date"], "relationship dates are day precision")
}

func TestSyntheticBookingRowsDeterministic(t *testing.T) {
	users := []string{"u1", "u2", "u3", "u4", "u5", "u6", "u7", "u8", "u9", "u10"}
	props := []string{"p1", "p2", "p3"}

	a := neograph.SyntheticBookingRows(rand.New(rand.NewSource(42)), users, props, 0.5)
	b := neograph.SyntheticBookingRows(rand.New(rand.NewSource(42)), users, props, 0.5)
	require.Equal(t, a, b, "same seed draws the same boost")

	require.NotEmpty(t, a)
	seen := map[string]bool{}
	for _, row := range a {
		seen[row["userId"].(string)] = true
		date := row["date"].(string)
		require.Regexp(t, `^2024-\d{2}-\d{2}$`, date)
	}
	require.Len(t, seen, 5, "half of ten users get boosted")
}

func TestBoostDrawsFromAllUsers(t *testing.T) {
	exec := &fakeExecutor{}
	cfg := neograph.DefaultConfig()
	cfg.BoostFraction = 1.0
	store := neograph.NewWithExecutor(exec, cfg, zerolog.Nop())

	// a dataset with only manager users: the boost pool is every User node,
	// not just customers
	ds := &domain.Dataset{
		Managers: []domain.Manager{
			{ID: "m1", Username: "host1", Email: "host1@example.com"},
			{ID: "m2", Username: "host2", Email: "host2@example.com"},
		},
		Properties: []domain.Property{{ID: "p1", Name: "Loft"}},
	}
	require.NoError(t, store.LoadAll(context.Background(), ds))

	var synthetic []map[string]any
	for _, w := range exec.matching("MERGE (u)-[:BOOKED") {
		synthetic = append(synthetic, w.rows...)
	}
	require.NotEmpty(t, synthetic, "managers are User nodes and receive boost bookings")

	users := map[string]bool{}
	for _, row := range synthetic {
		users[row["userId"].(string)] = true
	}
	require.Len(t, users, 2, "a full boost covers every user")
}

func TestBatchSplitting(t *testing.T) {
	exec := &fakeExecutor{}
	cfg := neograph.DefaultConfig()
	cfg.NodeBatchSize = 2
	cfg.BoostFraction = 0
	store := neograph.NewWithExecutor(exec, cfg, zerolog.Nop())

	ds := &domain.Dataset{}
	for i := 0; i < 5; i++ {
		ds.Customers = append(ds.Customers, domain.Customer{
			ID:       string(rune('a' + i)),
			Username: string(rune('a' + i)),
		})
	}
	require.NoError(t, store.LoadAll(context.Background(), ds))

	users := exec.matching("MERGE (u:User")
	require.Len(t, users, 3, "5 rows at batch size 2 make 3 batches")
	require.Len(t, users[0].rows, 2)
	require.Len(t, users[2].rows, 1)
}

func TestLoadAllIdempotentWriteSet(t *testing.T) {
	first := &fakeExecutor{}
	second := &fakeExecutor{}
	ds := sampleDataset()

	require.NoError(t, neograph.NewWithExecutor(first, neograph.DefaultConfig(), zerolog.Nop()).LoadAll(context.Background(), ds))
	require.NoError(t, neograph.NewWithExecutor(second, neograph.DefaultConfig(), zerolog.Nop()).LoadAll(context.Background(), ds))

	require.Equal(t, first.writes, second.writes, "re-running a load issues the identical MERGE set")
}

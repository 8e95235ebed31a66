package neograph

import (
	"fmt"
	"math/rand"

	"largebnb_seeder/internal/domain"
	"largebnb_seeder/internal/projector/mongodoc"
)

// Row builders produce the parameter maps the UNWIND statements consume.
// They are pure so the merge semantics can be tested without a database.

// UserRows flattens customers and managers into User node parameters.
// Username is the merge key; userId carries the document-store _id so the
// two projections can be joined back together.
func UserRows(customers []domain.Customer, managers []domain.Manager) []map[string]any {
	rows := make([]map[string]any, 0, len(customers)+len(managers))
	for _, c := range customers {
		rows = append(rows, map[string]any{
			"username": c.Username,
			"userId":   c.ID,
			"name":     c.Name,
			"surname":  c.Surname,
			"email":    c.Email,
			"role":     "CUSTOMER",
		})
	}
	for _, m := range managers {
		rows = append(rows, map[string]any{
			"username": m.Username,
			"userId":   m.ID,
			"name":     m.Name,
			"surname":  m.Surname,
			"email":    m.Email,
			"role":     "MANAGER",
		})
	}
	return rows
}

func PropertyRows(props []domain.Property) []map[string]any {
	rows := make([]map[string]any, 0, len(props))
	for _, p := range props {
		rows = append(rows, map[string]any{
			"propertyId": p.ID,
			"name":       p.Name,
			"city":       p.City,
			"country":    p.Country,
		})
	}
	return rows
}

// BookingSkips counts reservations that cannot reach the graph and why.
type BookingSkips struct {
	UnknownRoom     int
	MissingCustomer int
}

func (s BookingSkips) Total() int { return s.UnknownRoom + s.MissingCustomer }

// BookingRows maps reservations onto BOOKED relationship parameters. The
// reservation points at a room; the relationship targets the room's
// property, resolved through roomToProperty. Reservations whose room is
// unknown or whose customer reference is absent are skipped and counted,
// never fatal.
func BookingRows(reservations []domain.Reservation, roomToProperty map[string]string) (rows []map[string]any, skips BookingSkips) {
	for _, r := range reservations {
		propID, ok := roomToProperty[r.RoomID]
		if !ok {
			skips.UnknownRoom++
			continue
		}
		if r.CustomerID == "" {
			skips.MissingCustomer++
			continue
		}
		rows = append(rows, map[string]any{
			"userId":     r.CustomerID,
			"propertyId": propID,
			"date":       dayOf(r.CheckInDate),
		})
	}
	return rows, skips
}

// SyntheticBookingRows boosts graph connectivity: a fraction of users each
// book one or two random properties on a random day in 2024. Drawing from
// the supplied source keeps the boost reproducible for a given seed.
func SyntheticBookingRows(rng *rand.Rand, userIDs, propertyIDs []string, fraction float64) []map[string]any {
	if len(propertyIDs) == 0 || fraction <= 0 {
		return nil
	}
	picked := int(float64(len(userIDs)) * fraction)
	var rows []map[string]any
	for _, idx := range rng.Perm(len(userIDs))[:picked] {
		userID := userIDs[idx]
		for i := 0; i < 1+rng.Intn(2); i++ {
			rows = append(rows, map[string]any{
				"userId":     userID,
				"propertyId": propertyIDs[rng.Intn(len(propertyIDs))],
				"date":       fmt.Sprintf("2024-%02d-%02d", 1+rng.Intn(12), 1+rng.Intn(28)),
			})
		}
	}
	return rows
}

// AmenityRows normalizes the universe the same way HasRows normalizes the
// per-property lists, so every HAS relationship finds its Amenity node.
func AmenityRows(universe []string) []map[string]any {
	seen := make(map[string]struct{}, len(universe))
	var rows []map[string]any
	for _, name := range mongodoc.NormalizeAmenities(universe) {
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		rows = append(rows, map[string]any{"name": name})
	}
	return rows
}

// HasRows pairs each property with its normalized amenities.
func HasRows(props []domain.Property) []map[string]any {
	var rows []map[string]any
	for _, p := range props {
		for _, a := range mongodoc.NormalizeAmenities(p.Amenities) {
			rows = append(rows, map[string]any{
				"propertyId": p.ID,
				"amenity":    a,
			})
		}
	}
	return rows
}

// dayOf truncates an ISO timestamp to day precision; relationship dates in
// the graph never carry a time component.
func dayOf(iso string) string {
	if len(iso) > 10 {
		return iso[:10]
	}
	return iso
}

package generator

import (
	"math"
	"sort"
	"time"

	"largebnb_seeder/internal/domain"
)

// generateReviews consumes up to ReviewsPerProperty seed review rows for the
// property, links each review to one of the property's reservations (the
// reviewer is always that reservation's customer), and fills the property's
// ratingStats and latestReviews.
func (g *Generator) generateReviews(ds *domain.Dataset, prop *domain.Property, rows []domain.Row, reservations []domain.Reservation, customers []domain.Customer) {
	n := len(rows)
	if n > g.cfg.ReviewsPerProperty {
		n = g.cfg.ReviewsPerProperty
	}

	var sums domain.RatingStats
	var propReviews []domain.Review

	for _, row := range rows[:n] {
		clean := float64(g.intn(3, 5))
		comm := float64(g.intn(3, 5))
		loc := float64(g.intn(3, 5))
		val := float64(g.intn(3, 5))
		sums.Cleanliness += clean
		sums.Communication += comm
		sums.Location += loc
		sums.Value += val

		// Referential correctness beats seed-row fidelity: prefer an actual
		// reservation (reviewer = its customer), then any customer of the
		// property, then a fresh id as last resort.
		reviewerID := g.newID()
		reservationID := g.newID()
		if len(reservations) > 0 {
			sel := reservations[g.rng.Intn(len(reservations))]
			reservationID = sel.ID
			reviewerID = sel.CustomerID
		} else if len(customers) > 0 {
			reviewerID = customers[g.rng.Intn(len(customers))].ID
		}

		var reply *string
		if g.rng.Intn(2) == 0 {
			s := g.fake.Sentence(8)
			reply = &s
		}

		review := domain.Review{
			ID:            g.newID(),
			PropertyID:    prop.ID,
			UserID:        reviewerID,
			ReservationID: reservationID,
			CreationDate:  g.reviewDate(row["date"]),
			Text:          fallback(row["comments"], func() string { return g.fake.Paragraph(1, 2, 14, " ") }),
			Rating:        g.intn(3, 5),
			Cleanliness:   clean,
			Communication: comm,
			Location:      loc,
			Value:         val,
			ManagerReply:  reply,
		}
		ds.Reviews = append(ds.Reviews, review)
		propReviews = append(propReviews, review)
	}

	if len(propReviews) == 0 {
		return // stats stay zero, latestReviews stays empty
	}

	count := float64(len(propReviews))
	prop.RatingStats = domain.RatingStats{
		Cleanliness:   round1(sums.Cleanliness / count),
		Communication: round1(sums.Communication / count),
		Location:      round1(sums.Location / count),
		Value:         round1(sums.Value / count),
	}

	// Newest first; date ties keep generation order.
	sort.SliceStable(propReviews, func(i, j int) bool {
		return propReviews[i].CreationDate > propReviews[j].CreationDate
	})
	if len(propReviews) > 10 {
		propReviews = propReviews[:10]
	}
	prop.LatestReviews = propReviews
}

func (g *Generator) reviewDate(raw string) string {
	if raw != "" {
		return raw
	}
	return g.fake.DateRange(time.Now().AddDate(-1, 0, 0), time.Now()).Format(dateLayout)
}

func round1(f float64) float64 {
	return math.Round(f*10) / 10
}

package generator

import (
	"time"

	"largebnb_seeder/internal/domain"
)

const eventLayout = "2006-01-02T15:04:05"

func (g *Generator) newReservation(rooms []domain.Room, customerID string) domain.Reservation {
	checkIn := time.Now().AddDate(0, 0, g.intn(-30, 30)).Truncate(24 * time.Hour)
	checkOut := checkIn.AddDate(0, 0, g.intn(1, 7))

	earliest := time.Now().AddDate(0, 0, -60).Truncate(24 * time.Hour)
	span := checkIn.Sub(earliest)
	creation := earliest.Add(time.Duration(g.rng.Int63n(int64(span) + 1))).Truncate(24 * time.Hour)

	return domain.Reservation{
		ID:           g.newID(),
		RoomID:       rooms[g.rng.Intn(len(rooms))].ID,
		CustomerID:   customerID,
		CheckInDate:  checkIn.Format(dateLayout),
		CheckOutDate: checkOut.Format(dateLayout),
		CreationDate: creation.Format(dateLayout),
		Adults:       g.intn(1, 4),
		Children:     g.intn(0, 2),
		Status:       domain.StatusConfirmed,
	}
}

// playLifecycle draws one lifecycle outcome for the reservation and emits
// the notification/message chain it implies. Every derived timestamp is
// offset forward from the reservation's creation date, never backward.
func (g *Generator) playLifecycle(ds *domain.Dataset, res *domain.Reservation, customer domain.Customer, manager domain.Manager) {
	created, err := time.Parse(dateLayout, res.CreationDate)
	if err != nil {
		created = time.Now().Truncate(24 * time.Hour)
	}

	ds.Notifications = append(ds.Notifications, g.newNotification(
		manager.ID, "New Booking",
		"Customer "+customer.Name+" has made a new reservation.",
		domain.NotifReservationCreated, res.ID, res.CreationDate,
	))

	switch draw := g.rng.Float64(); {
	case draw > 0.9:
		res.Status = domain.StatusCancelled
		cancelAt := created.Add(time.Duration(g.intn(1, 24)) * time.Hour)
		ds.Notifications = append(ds.Notifications, g.newNotification(
			manager.ID, "Booking Cancelled",
			"Customer "+customer.Name+" has cancelled their reservation.",
			domain.NotifReservationCancelled, res.ID, cancelAt.Format(eventLayout),
		))

	case draw > 0.8:
		res.Status = domain.StatusModified
		modAt := created.Add(time.Duration(g.intn(1, 12)) * time.Hour)
		ds.Notifications = append(ds.Notifications, g.newNotification(
			manager.ID, "Booking Modified",
			"Customer "+customer.Name+" modified their reservation details.",
			domain.NotifReservationModified, res.ID, modAt.Format(eventLayout),
		))
	}

	// Half of all reservations come with a short message exchange.
	if g.rng.Float64() > 0.5 {
		return
	}

	askAt := created.Add(time.Duration(g.intn(10, 120)) * time.Minute)
	ask := domain.Message{
		ID:          g.newID(),
		SenderID:    customer.ID,
		RecipientID: manager.ID,
		Timestamp:   askAt.Format(eventLayout),
		Content:     g.fake.Sentence(10),
		IsRead:      true,
	}
	ds.Messages = append(ds.Messages, ask)
	ds.Notifications = append(ds.Notifications, g.newNotification(
		manager.ID, "New Message",
		"User "+customer.Username+" wrote to you",
		domain.NotifMessage, ask.ID, ask.Timestamp,
	))

	replyAt := askAt.Add(time.Duration(g.intn(5, 60)) * time.Minute)
	reply := domain.Message{
		ID:          g.newID(),
		SenderID:    manager.ID,
		RecipientID: customer.ID,
		Timestamp:   replyAt.Format(eventLayout),
		Content:     g.fake.Sentence(12),
		IsRead:      g.rng.Intn(2) == 0,
	}
	ds.Messages = append(ds.Messages, reply)
	ds.Notifications = append(ds.Notifications, g.newNotification(
		customer.ID, "New Message",
		"Manager wrote to you",
		domain.NotifMessage, reply.ID, reply.Timestamp,
	))
}

func (g *Generator) newNotification(recipientID, title, body, typ, refID, timestamp string) domain.Notification {
	return domain.Notification{
		ID:          g.newID(),
		RecipientID: recipientID,
		Title:       title,
		Body:        body,
		Type:        typ,
		ReferenceID: refID,
		Read:        g.rng.Intn(2) == 0,
		Timestamp:   timestamp,
	}
}

package mongodoc

import (
	"strings"
	"time"

	"largebnb_seeder/internal/domain"
)

// Document shapes for the store. Primary keys move into the reserved _id
// field; foreign keys take the store's camelCase convention.

type BillingAddressDoc struct {
	Street        string `bson:"street"`
	City          string `bson:"city"`
	ZipCode       string `bson:"zipCode"`
	Country       string `bson:"country"`
	StateProvince string `bson:"stateProvince"`
}

type PaymentMethodDoc struct {
	ID             string `bson:"id"`
	GatewayToken   string `bson:"gatewayToken"`
	CardType       string `bson:"cardType"`
	Last4Digits    string `bson:"last4Digits"`
	ExpiryDate     string `bson:"expiryDate"`
	CardHolderName string `bson:"cardHolderName"`
}

// UserDoc is the merged customer/manager document; Role discriminates.
type UserDoc struct {
	ID                 string             `bson:"_id"`
	Role               string             `bson:"role"`
	Username           string             `bson:"username"`
	Email              string             `bson:"email"`
	Password           string             `bson:"password"`
	Name               string             `bson:"name"`
	Surname            string             `bson:"surname"`
	PhoneNumber        string             `bson:"phoneNumber"`
	Birthdate          *time.Time         `bson:"birthdate,omitempty"`
	PaymentMethod      *PaymentMethodDoc  `bson:"paymentMethod,omitempty"`
	FavoredPropertyIDs []string           `bson:"favoredPropertyIds,omitempty"`
	IBAN               string             `bson:"iban,omitempty"`
	VATNumber          string             `bson:"vatNumber,omitempty"`
	BillingAddress     *BillingAddressDoc `bson:"billingAddress,omitempty"`
}

// GeoPoint is a GeoJSON point: longitude first, then latitude. The 2dsphere
// index on properties.location depends on this ordering.
type GeoPoint struct {
	Type        string     `bson:"type"`
	Coordinates [2]float64 `bson:"coordinates"`
}

// RoomDoc is a Room embedded in its property; the parent reference is
// dropped and the id renamed so it cannot collide with the document _id.
type RoomDoc struct {
	RoomID                string   `bson:"roomId"`
	RoomType              string   `bson:"roomType"`
	Amenities             []string `bson:"amenities"`
	Name                  string   `bson:"name"`
	Beds                  int      `bson:"beds"`
	Photos                []string `bson:"photos"`
	Status                string   `bson:"status"`
	CapacityAdults        int      `bson:"capacityAdults"`
	CapacityChildren      int      `bson:"capacityChildren"`
	PricePerNightAdults   float64  `bson:"pricePerNightAdults"`
	PricePerNightChildren float64  `bson:"pricePerNightChildren"`
}

type POIDoc struct {
	ID          string     `bson:"id"`
	Name        string     `bson:"name"`
	Coordinates [2]float64 `bson:"coordinates"` // lat, lon as generated
	Type        string     `bson:"type"`
}

type RatingStatsDoc struct {
	Cleanliness   float64 `bson:"cleanliness"`
	Communication float64 `bson:"communication"`
	Location      float64 `bson:"location"`
	Value         float64 `bson:"value"`
}

type PropertyDoc struct {
	ID            string         `bson:"_id"`
	Name          string         `bson:"name"`
	Address       string         `bson:"address"`
	Description   string         `bson:"description"`
	Amenities     []string       `bson:"amenities"`
	Photos        []string       `bson:"photos"`
	Email         string         `bson:"email"`
	Country       string         `bson:"country"`
	Region        string         `bson:"region"`
	City          string         `bson:"city"`
	ManagerID     string         `bson:"managerId"`
	Location      GeoPoint       `bson:"location"`
	RatingStats   RatingStatsDoc `bson:"ratingStats"`
	LatestReviews []ReviewDoc    `bson:"latestReviews"`
	Rooms         []RoomDoc      `bson:"rooms"`
	POIs          []POIDoc       `bson:"pois"`
}

type ReviewDoc struct {
	ID            string    `bson:"_id"`
	PropertyID    string    `bson:"propertyId"`
	UserID        string    `bson:"userId"`
	ReservationID string    `bson:"reservationId"`
	CreationDate  time.Time `bson:"creationDate"`
	Text          string    `bson:"text"`
	Rating        float64   `bson:"rating"`
	Cleanliness   float64   `bson:"cleanliness"`
	Communication float64   `bson:"communication"`
	Location      float64   `bson:"location"`
	Value         float64   `bson:"value"`
	ManagerReply  *string   `bson:"managerReply,omitempty"`
}

type ReservationDatesDoc struct {
	CheckIn  time.Time `bson:"checkIn"`
	CheckOut time.Time `bson:"checkOut"`
}

type ReservationDoc struct {
	ID        string              `bson:"_id"`
	UserID    string              `bson:"userId"`
	RoomID    string              `bson:"roomId"`
	Dates     ReservationDatesDoc `bson:"dates"`
	CreatedAt time.Time           `bson:"createdAt"`
	Adults    int                 `bson:"adults"`
	Children  int                 `bson:"children"`
	Status    string              `bson:"status"`
}

type MessageDoc struct {
	ID          string    `bson:"_id"`
	SenderID    string    `bson:"senderId"`
	RecipientID string    `bson:"recipientId"`
	Timestamp   time.Time `bson:"timestamp"`
	Content     string    `bson:"content"`
	IsRead      bool      `bson:"isRead"`
}

type NotificationDoc struct {
	ID          string    `bson:"_id"`
	RecipientID string    `bson:"recipientId"`
	Title       string    `bson:"title"`
	Body        string    `bson:"body"`
	Type        string    `bson:"type"`
	ReferenceID string    `bson:"referenceId"`
	Read        bool      `bson:"read"`
	Timestamp   time.Time `bson:"timestamp"`
}

/********** mappers **********/

// MapUsers merges customers and managers into one collection, deduplicated
// by email. First occurrence wins; customers are processed before managers.
func MapUsers(customers []domain.Customer, managers []domain.Manager) []UserDoc {
	seen := make(map[string]struct{}, len(customers)+len(managers))
	out := make([]UserDoc, 0, len(customers)+len(managers))

	for _, c := range customers {
		if _, dup := seen[c.Email]; dup {
			continue
		}
		seen[c.Email] = struct{}{}

		doc := UserDoc{
			ID:                 c.ID,
			Role:               "CUSTOMER",
			Username:           c.Username,
			Email:              c.Email,
			Password:           c.Password,
			Name:               c.Name,
			Surname:            c.Surname,
			PhoneNumber:        c.PhoneNumber,
			PaymentMethod:      &PaymentMethodDoc{ID: c.PaymentMethod.ID, GatewayToken: c.PaymentMethod.GatewayToken, CardType: c.PaymentMethod.CardType, Last4Digits: c.PaymentMethod.Last4Digits, ExpiryDate: c.PaymentMethod.ExpiryDate, CardHolderName: c.PaymentMethod.CardHolderName},
			FavoredPropertyIDs: c.FavoredPropertyIDs,
		}
		if t, err := parseWhen(c.Birthdate); err == nil {
			doc.Birthdate = &t
		}
		out = append(out, doc)
	}

	for _, m := range managers {
		if _, dup := seen[m.Email]; dup {
			continue
		}
		seen[m.Email] = struct{}{}

		out = append(out, UserDoc{
			ID:          m.ID,
			Role:        "MANAGER",
			Username:    m.Username,
			Email:       m.Email,
			Password:    m.Password,
			Name:        m.Name,
			Surname:     m.Surname,
			PhoneNumber: m.PhoneNumber,
			IBAN:        m.IBAN,
			VATNumber:   m.VATNumber,
			BillingAddress: &BillingAddressDoc{
				Street: m.BillingAddress.Street, City: m.BillingAddress.City,
				ZipCode: m.BillingAddress.ZipCode, Country: m.BillingAddress.Country,
				StateProvince: m.BillingAddress.StateProvince,
			},
		})
	}
	return out
}

// MapProperties embeds each property's rooms and POIs and rewrites the
// coordinate pair into a GeoJSON point. The canonical model stores
// (lat, lon); GeoJSON wants (lon, lat).
func MapProperties(props []domain.Property, rooms []domain.Room, pois []domain.POI) []PropertyDoc {
	roomsByProp := make(map[string][]RoomDoc)
	for _, r := range rooms {
		if r.PropertyID == "" {
			continue
		}
		roomsByProp[r.PropertyID] = append(roomsByProp[r.PropertyID], RoomDoc{
			RoomID: r.ID, RoomType: r.RoomType, Amenities: NormalizeAmenities(r.Amenities),
			Name: r.Name, Beds: r.Beds, Photos: r.Photos, Status: r.Status,
			CapacityAdults: r.CapacityAdults, CapacityChildren: r.CapacityChildren,
			PricePerNightAdults: r.PricePerNightAdults, PricePerNightChildren: r.PricePerNightChildren,
		})
	}
	poisByProp := make(map[string][]POIDoc)
	for _, p := range pois {
		if p.PropertyID == "" {
			continue
		}
		poisByProp[p.PropertyID] = append(poisByProp[p.PropertyID], POIDoc{
			ID: p.ID, Name: p.Name, Coordinates: p.Coordinates, Type: p.Type,
		})
	}

	out := make([]PropertyDoc, 0, len(props))
	for _, p := range props {
		lat, lon := p.Coordinates[0], p.Coordinates[1]
		out = append(out, PropertyDoc{
			ID:            p.ID,
			Name:          p.Name,
			Address:       p.Address,
			Description:   p.Description,
			Amenities:     NormalizeAmenities(p.Amenities),
			Photos:        p.Photos,
			Email:         p.Email,
			Country:       p.Country,
			Region:        p.Region,
			City:          p.City,
			ManagerID:     p.ManagerID,
			Location:      GeoPoint{Type: "Point", Coordinates: [2]float64{lon, lat}},
			RatingStats:   RatingStatsDoc(p.RatingStats),
			LatestReviews: MapReviews(p.LatestReviews),
			Rooms:         roomsByProp[p.ID],
			POIs:          poisByProp[p.ID],
		})
	}
	return out
}

func MapReviews(in []domain.Review) []ReviewDoc {
	out := make([]ReviewDoc, 0, len(in))
	for _, rv := range in {
		out = append(out, ReviewDoc{
			ID:            rv.ID,
			PropertyID:    rv.PropertyID,
			UserID:        rv.UserID,
			ReservationID: rv.ReservationID,
			CreationDate:  parseWhenOrNow(rv.CreationDate),
			Text:          rv.Text,
			Rating:        float64(rv.Rating),
			Cleanliness:   rv.Cleanliness,
			Communication: rv.Communication,
			Location:      rv.Location,
			Value:         rv.Value,
			ManagerReply:  rv.ManagerReply,
		})
	}
	return out
}

func MapReservations(in []domain.Reservation) []ReservationDoc {
	out := make([]ReservationDoc, 0, len(in))
	for _, r := range in {
		out = append(out, ReservationDoc{
			ID:     r.ID,
			UserID: r.CustomerID,
			RoomID: r.RoomID,
			Dates: ReservationDatesDoc{
				CheckIn:  parseWhenOrNow(r.CheckInDate),
				CheckOut: parseWhenOrNow(r.CheckOutDate),
			},
			CreatedAt: parseWhenOrNow(r.CreationDate),
			Adults:    r.Adults,
			Children:  r.Children,
			Status:    r.Status,
		})
	}
	return out
}

func MapMessages(in []domain.Message) []MessageDoc {
	out := make([]MessageDoc, 0, len(in))
	for _, m := range in {
		out = append(out, MessageDoc{
			ID:          m.ID,
			SenderID:    m.SenderID,
			RecipientID: m.RecipientID,
			Timestamp:   parseWhenOrNow(m.Timestamp),
			Content:     m.Content,
			IsRead:      m.IsRead,
		})
	}
	return out
}

func MapNotifications(in []domain.Notification) []NotificationDoc {
	out := make([]NotificationDoc, 0, len(in))
	for _, n := range in {
		out = append(out, NotificationDoc{
			ID:          n.ID,
			RecipientID: n.RecipientID,
			Title:       n.Title,
			Body:        n.Body,
			Type:        n.Type,
			ReferenceID: n.ReferenceID,
			Read:        n.Read,
			Timestamp:   parseWhenOrNow(n.Timestamp),
		})
	}
	return out
}

/********** helpers **********/

var whenLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02",
	time.RFC3339,
}

func parseWhen(s string) (time.Time, error) {
	var lastErr error
	for _, layout := range whenLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}

// parseWhenOrNow fails soft: an unparseable date-like field becomes the
// current time rather than aborting the batch.
func parseWhenOrNow(s string) time.Time {
	if t, err := parseWhen(s); err == nil {
		return t
	}
	return time.Now()
}

// NormalizeAmenities flattens whatever shape the amenities field arrived in
// into a clean list of strings: bracket/brace/quote characters stripped,
// comma-joined entries split, empty tokens dropped.
func NormalizeAmenities(in []string) []string {
	var out []string
	for _, a := range in {
		cleaned := amenityCleaner.Replace(a)
		for _, tok := range strings.Split(cleaned, ",") {
			if tok = strings.TrimSpace(tok); tok != "" {
				out = append(out, tok)
			}
		}
	}
	return out
}

var amenityCleaner = strings.NewReplacer("{", "", "}", "", "[", "", "]", "", `"`, "")

package domain

// Reservation statuses. A modified reservation keeps its own status value so
// the stored record agrees with the RESERVATION_MODIFIED notification stream.
const (
	StatusConfirmed = "confirmed"
	StatusModified  = "modified"
	StatusCancelled = "cancelled"
)

// Notification types; ReferenceID points at an entity of the named kind.
const (
	NotifReservationCreated   = "RESERVATION_CREATED"
	NotifReservationModified  = "RESERVATION_MODIFIED"
	NotifReservationCancelled = "RESERVATION_CANCELLED"
	NotifMessage              = "MESSAGE"
)

// Date-like fields are ISO-8601 strings in the canonical model and in the
// artifact files; the document projector parses them into native times.

type Reservation struct {
	ID           string `json:"id"`
	RoomID       string `json:"room_id"`
	CustomerID   string `json:"customer_id"`
	CheckInDate  string `json:"checkInDate"`
	CheckOutDate string `json:"checkOutDate"`
	CreationDate string `json:"creationDate"`
	Adults       int    `json:"adults"`
	Children     int    `json:"children"`
	Status       string `json:"status"`
}

type Review struct {
	ID            string  `json:"id"`
	PropertyID    string  `json:"propertyId"`
	UserID        string  `json:"userId"`
	ReservationID string  `json:"reservationId"`
	CreationDate  string  `json:"creationDate"`
	Text          string  `json:"text"`
	Rating        int     `json:"rating"`
	Cleanliness   float64 `json:"cleanliness"`
	Communication float64 `json:"communication"`
	Location      float64 `json:"location"`
	Value         float64 `json:"value"`
	ManagerReply  *string `json:"managerReply"`
}

type Message struct {
	ID          string `json:"id"`
	SenderID    string `json:"sender_id"`
	RecipientID string `json:"recipient_id"`
	Timestamp   string `json:"timestamp"`
	Content     string `json:"content"`
	IsRead      bool   `json:"is_read"`
}

type Notification struct {
	ID          string `json:"id"`
	RecipientID string `json:"recipientId"`
	Title       string `json:"title"`
	Body        string `json:"body"`
	Type        string `json:"type"`
	ReferenceID string `json:"referenceId"`
	Read        bool   `json:"read"`
	Timestamp   string `json:"timestamp"`
}

package domain

// Coordinates are stored (lat, lon) everywhere in the canonical model.
// Only the document projection flips them to GeoJSON (lon, lat) order.

type RatingStats struct {
	Cleanliness   float64 `json:"cleanliness"`
	Communication float64 `json:"communication"`
	Location      float64 `json:"location"`
	Value         float64 `json:"value"`
}

type Property struct {
	ID            string      `json:"id"`
	Name          string      `json:"name"`
	Address       string      `json:"address"`
	Description   string      `json:"description"`
	Amenities     []string    `json:"amenities"`
	Photos        []string    `json:"photos"`
	Email         string      `json:"email"`
	Country       string      `json:"country"`
	Region        string      `json:"region"`
	City          string      `json:"city"`
	ManagerID     string      `json:"manager_id"`
	Coordinates   [2]float64  `json:"coordinates"` // lat, lon
	RatingStats   RatingStats `json:"ratingStats"`
	LatestReviews []Review    `json:"latestReviews"`
}

type Room struct {
	ID                    string   `json:"id"`
	PropertyID            string   `json:"property_id"`
	RoomType              string   `json:"roomType"`
	Amenities             []string `json:"amenities"`
	Name                  string   `json:"name"`
	Beds                  int      `json:"beds"`
	Photos                []string `json:"photos"`
	Status                string   `json:"status"`
	CapacityAdults        int      `json:"capacityAdults"`
	CapacityChildren      int      `json:"capacityChildren"`
	PricePerNightAdults   float64  `json:"pricePerNightAdults"`
	PricePerNightChildren float64  `json:"pricePerNightChildren"`
}

type POI struct {
	ID          string     `json:"id"`
	PropertyID  string     `json:"property_id"`
	Name        string     `json:"name"`
	Coordinates [2]float64 `json:"coordinates"` // lat, lon
	Type        string     `json:"type"`
}

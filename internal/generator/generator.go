package generator

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"largebnb_seeder/internal/adapters/observability"
	"largebnb_seeder/internal/domain"
)

const dateLayout = "2006-01-02"

type Config struct {
	MaxProperties      int     // listing rows consumed per city
	POIsPerProperty    int     // catalog entries attached per property
	FavoriteProb       float64 // chance a customer favors the current property
	ReviewsPerProperty int     // seed review rows consumed per property
}

func DefaultConfig() Config {
	return Config{
		MaxProperties:      150,
		POIsPerProperty:    6,
		FavoriteProb:       0.3,
		ReviewsPerProperty: 50,
	}
}

// Generator synthesizes the entity graph. All randomness flows through one
// seeded rand.Rand and one seeded faker, so identical seeds and feed rows
// reproduce identical datasets.
type Generator struct {
	rng  *rand.Rand
	fake *gofakeit.Faker
	cfg  Config

	// property ids minted so far in this run, across cities; customers
	// sample favorites from a snapshot of this list
	propertyIDs []string
}

func New(seed int64, cfg Config) *Generator {
	if cfg.MaxProperties <= 0 {
		cfg.MaxProperties = 150
	}
	if cfg.POIsPerProperty <= 0 {
		cfg.POIsPerProperty = 6
	}
	if cfg.ReviewsPerProperty <= 0 {
		cfg.ReviewsPerProperty = 50
	}
	return &Generator{
		rng:  rand.New(rand.NewSource(seed)),
		fake: gofakeit.New(seed),
		cfg:  cfg,
	}
}

// GenerateCity consumes one city's listing and review rows and appends the
// resulting entities to ds. Cities must be processed sequentially: customers
// may favor properties from earlier cities in the same run.
func (g *Generator) GenerateCity(ds *domain.Dataset, city, country, region string, listings, reviews []domain.Row) {
	n := len(listings)
	if n > g.cfg.MaxProperties {
		n = g.cfg.MaxProperties
	}

	for _, row := range listings[:n] {
		propertyID := g.newID()
		g.propertyIDs = append(g.propertyIDs, propertyID)

		amenities := parseRawAmenities(row["amenities"])
		if len(amenities) == 0 {
			amenities = g.randomWords(5)
		}
		lat := parseFloat(row["latitude"])
		lon := parseFloat(row["longitude"])

		manager := g.newManager()
		ds.Managers = append(ds.Managers, manager)

		prop := domain.Property{
			ID:          propertyID,
			Name:        fallback(row["name"], g.fake.Company),
			Address:     fallback(row["neighbourhood_cleansed"], g.fake.Street),
			Description: fallback(row["description"], func() string { return g.fake.Paragraph(1, 3, 12, " ") }),
			Amenities:   amenities,
			Photos:      g.imageURLs(5),
			Email:       g.fake.Email(),
			Country:     country,
			Region:      region,
			City:        city,
			ManagerID:   manager.ID,
			Coordinates: [2]float64{lat, lon},
		}

		rooms := g.newRooms(propertyID, amenities)
		ds.Rooms = append(ds.Rooms, rooms...)

		var (
			propCustomers    []domain.Customer
			propReservations []domain.Reservation
		)
		snapshot := append([]string(nil), g.propertyIDs...)
		for i := 0; i < g.intn(10, 20); i++ {
			customer := g.newCustomer(snapshot)
			// favorites stay capped at three per customer
			if g.rng.Float64() < g.cfg.FavoriteProb &&
				len(customer.FavoredPropertyIDs) < 3 &&
				!contains(customer.FavoredPropertyIDs, propertyID) {
				customer.FavoredPropertyIDs = append(customer.FavoredPropertyIDs, propertyID)
			}
			ds.Customers = append(ds.Customers, customer)
			propCustomers = append(propCustomers, customer)

			res := g.newReservation(rooms, customer.ID)
			g.playLifecycle(ds, &res, customer, manager)
			ds.Reservations = append(ds.Reservations, res)
			propReservations = append(propReservations, res)
		}

		g.generateReviews(ds, &prop, reviews, propReservations, propCustomers)

		ds.Properties = append(ds.Properties, prop)
		ds.POIs = append(ds.POIs, g.newPOIs(city, propertyID)...)
	}

	observability.ObserveGenerated("properties", n)
	log.Info().
		Str("city", city).
		Int("listings", n).
		Int("customers", len(ds.Customers)).
		Msg("city generated")
}

func (g *Generator) newManager() domain.Manager {
	first, last := g.fake.FirstName(), g.fake.LastName()
	return domain.Manager{
		ID:          g.newID(),
		Username:    g.fake.Username(),
		Email:       g.fake.Email(),
		Password:    g.fake.Password(true, true, true, false, false, 12),
		Name:        first,
		Surname:     last,
		PhoneNumber: g.fake.Phone(),
		IBAN:        g.iban(),
		VATNumber:   strings.ToUpper(g.fake.LetterN(2) + g.fake.DigitN(11)),
		BillingAddress: domain.BillingAddress{
			Street:        g.fake.Street(),
			City:          g.fake.City(),
			ZipCode:       g.fake.Zip(),
			Country:       g.fake.Country(),
			StateProvince: g.fake.State(),
		},
	}
}

func (g *Generator) newCustomer(availablePropertyIDs []string) domain.Customer {
	first, last := g.fake.FirstName(), g.fake.LastName()

	var favored []string
	if len(availablePropertyIDs) > 0 {
		k := g.rng.Intn(min(3, len(availablePropertyIDs)) + 1)
		favored = g.sample(availablePropertyIDs, k)
	}

	return domain.Customer{
		ID:          g.newID(),
		Username:    g.fake.Username(),
		Email:       g.fake.Email(),
		Password:    g.fake.Password(true, true, true, false, false, 12),
		Name:        first,
		Surname:     last,
		Birthdate:   g.fake.DateRange(time.Now().AddDate(-90, 0, 0), time.Now().AddDate(-18, 0, 0)).Format(dateLayout),
		PhoneNumber: g.fake.Phone(),
		PaymentMethod: domain.PaymentMethod{
			ID:             g.newID(),
			GatewayToken:   g.fake.UUID() + g.fake.UUID(),
			CardType:       pick(g.rng, []string{"VISA", "MASTERCARD", "PAYPAL", "AMEX"}),
			Last4Digits:    g.fake.DigitN(4),
			ExpiryDate:     g.fake.CreditCardExp(),
			CardHolderName: strings.ToUpper(first + " " + last),
		},
		FavoredPropertyIDs: favored,
	}
}

func (g *Generator) newRooms(propertyID string, amenities []string) []domain.Room {
	count := g.intn(3, 5)
	rooms := make([]domain.Room, 0, count)
	for i := 0; i < count; i++ {
		rooms = append(rooms, domain.Room{
			ID:                    g.newID(),
			PropertyID:            propertyID,
			RoomType:              pick(g.rng, []string{"single", "matrimonial", "double", "suite"}),
			Amenities:             amenities,
			Name:                  fmt.Sprintf("Room %d", i+1),
			Beds:                  g.intn(1, 3),
			Photos:                g.imageURLs(g.intn(3, 5)),
			Status:                "available",
			CapacityAdults:        g.intn(1, 4),
			CapacityChildren:      g.intn(0, 3),
			PricePerNightAdults:   round2(30 + g.rng.Float64()*170),
			PricePerNightChildren: round2(10 + g.rng.Float64()*40),
		})
	}
	return rooms
}

func (g *Generator) newPOIs(city, propertyID string) []domain.POI {
	catalog := append(append([]poiSeed(nil), landmarkCatalog[city]...), diningCatalog[city]...)
	g.rng.Shuffle(len(catalog), func(i, j int) { catalog[i], catalog[j] = catalog[j], catalog[i] })

	k := g.cfg.POIsPerProperty
	if k > len(catalog) {
		k = len(catalog)
	}
	pois := make([]domain.POI, 0, k)
	for _, seed := range catalog[:k] {
		pois = append(pois, domain.POI{
			ID:          g.newID(),
			PropertyID:  propertyID,
			Name:        seed.name,
			Coordinates: [2]float64{seed.lat, seed.lon},
			Type:        seed.typ,
		})
	}
	return pois
}

/********** small helpers **********/

func parseRawAmenities(raw string) []string {
	cleaned := strings.NewReplacer("{", "", "}", "", "[", "", "]", "", `"`, "").Replace(raw)
	var out []string
	for _, tok := range strings.Split(cleaned, ",") {
		if t := strings.TrimSpace(tok); t != "" {
			out = append(out, t)
		}
	}
	return out
}

func parseFloat(s string) float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return f
}

func fallback(v string, gen func() string) string {
	if strings.TrimSpace(v) != "" {
		return v
	}
	return gen()
}

func (g *Generator) randomWords(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = g.fake.Word()
	}
	return out
}

func (g *Generator) imageURLs(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = g.fake.ImageURL(640, 480)
	}
	return out
}

func (g *Generator) iban() string {
	return strings.ToUpper(g.fake.LetterN(2)) + g.fake.DigitN(2) + g.fake.DigitN(18)
}

// newID mints a UUID from the seeded rng so identical seeds reproduce
// identical identifiers.
func (g *Generator) newID() string {
	id, err := uuid.NewRandomFromReader(g.rng)
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

// intn returns a uniform int in [lo, hi].
func (g *Generator) intn(lo, hi int) int {
	return lo + g.rng.Intn(hi-lo+1)
}

// sample returns k distinct elements of pool, order randomized.
func (g *Generator) sample(pool []string, k int) []string {
	idx := g.rng.Perm(len(pool))[:k]
	out := make([]string, 0, k)
	for _, i := range idx {
		out = append(out, pool[i])
	}
	return out
}

func pick(rng *rand.Rand, opts []string) string {
	return opts[rng.Intn(len(opts))]
}

func contains(xs []string, s string) bool {
	for _, x := range xs {
		if x == s {
			return true
		}
	}
	return false
}

func round2(f float64) float64 {
	return float64(int(f*100+0.5)) / 100
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

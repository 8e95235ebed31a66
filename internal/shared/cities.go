package shared

// City describes one seed-feed source: an InsideAirbnb city snapshot with
// its listings and reviews CSV archives.
type City struct {
	Name        string
	Country     string
	Region      string
	ListingsURL string
	ReviewsURL  string
}

// Cities is the default run scope. Snapshot dates are pinned so repeated
// runs with the same seed reproduce the same dataset.
var Cities = []City{
	{
		Name: "Rome", Country: "Italy", Region: "Lazio",
		ListingsURL: "https://data.insideairbnb.com/italy/lazio/rome/2025-09-14/data/listings.csv.gz",
		ReviewsURL:  "https://data.insideairbnb.com/italy/lazio/rome/2025-09-14/data/reviews.csv.gz",
	},
	{
		Name: "Paris", Country: "France", Region: "Île-de-France",
		ListingsURL: "https://data.insideairbnb.com/france/ile-de-france/paris/2025-09-12/data/listings.csv.gz",
		ReviewsURL:  "https://data.insideairbnb.com/france/ile-de-france/paris/2025-09-12/data/reviews.csv.gz",
	},
	{
		Name: "London", Country: "United Kingdom", Region: "England",
		ListingsURL: "https://data.insideairbnb.com/united-kingdom/england/london/2025-09-14/data/listings.csv.gz",
		ReviewsURL:  "https://data.insideairbnb.com/united-kingdom/england/london/2025-09-14/data/reviews.csv.gz",
	},
	{
		Name: "Berlin", Country: "Germany", Region: "Berlin",
		ListingsURL: "https://data.insideairbnb.com/germany/be/berlin/2025-09-23/data/listings.csv.gz",
		ReviewsURL:  "https://data.insideairbnb.com/germany/be/berlin/2025-09-23/data/reviews.csv.gz",
	},
	{
		Name: "Madrid", Country: "Spain", Region: "Community of Madrid",
		ListingsURL: "https://data.insideairbnb.com/spain/comunidad-de-madrid/madrid/2025-09-14/data/listings.csv.gz",
		ReviewsURL:  "https://data.insideairbnb.com/spain/comunidad-de-madrid/madrid/2025-09-14/data/reviews.csv.gz",
	},
	{
		Name: "Lisbon", Country: "Portugal", Region: "Lisbon",
		ListingsURL: "https://data.insideairbnb.com/portugal/lisbon/lisbon/2025-09-21/data/listings.csv.gz",
		ReviewsURL:  "https://data.insideairbnb.com/portugal/lisbon/lisbon/2025-09-21/data/reviews.csv.gz",
	},
	{
		Name: "Vienna", Country: "Austria", Region: "Vienna",
		ListingsURL: "https://data.insideairbnb.com/austria/vienna/vienna/2025-09-14/data/listings.csv.gz",
		ReviewsURL:  "https://data.insideairbnb.com/austria/vienna/vienna/2025-09-14/data/reviews.csv.gz",
	},
	{
		Name: "Athens", Country: "Greece", Region: "Attica",
		ListingsURL: "https://data.insideairbnb.com/greece/attica/athens/2025-09-26/data/listings.csv.gz",
		ReviewsURL:  "https://data.insideairbnb.com/greece/attica/athens/2025-09-26/data/reviews.csv.gz",
	},
	{
		Name: "Budapest", Country: "Hungary", Region: "Central Hungary",
		ListingsURL: "https://data.insideairbnb.com/hungary/k%C3%B6z%C3%A9p-magyarorsz%C3%A1g/budapest/2025-09-25/data/listings.csv.gz",
		ReviewsURL:  "https://data.insideairbnb.com/hungary/k%C3%B6z%C3%A9p-magyarorsz%C3%A1g/budapest/2025-09-25/data/reviews.csv.gz",
	},
	{
		Name: "Prague", Country: "Czech Republic", Region: "Prague",
		ListingsURL: "https://data.insideairbnb.com/czech-republic/prague/prague/2025-09-23/data/listings.csv.gz",
		ReviewsURL:  "https://data.insideairbnb.com/czech-republic/prague/prague/2025-09-23/data/reviews.csv.gz",
	},
	{
		Name: "Oslo", Country: "Norway", Region: "Oslo",
		ListingsURL: "https://data.insideairbnb.com/norway/oslo/oslo/2025-09-29/data/listings.csv.gz",
		ReviewsURL:  "https://data.insideairbnb.com/norway/oslo/oslo/2025-09-29/data/reviews.csv.gz",
	},
	{
		Name: "Copenhagen", Country: "Denmark", Region: "Capital Region of Denmark",
		ListingsURL: "https://data.insideairbnb.com/denmark/hovedstaden/copenhagen/2025-09-29/data/listings.csv.gz",
		ReviewsURL:  "https://data.insideairbnb.com/denmark/hovedstaden/copenhagen/2025-09-29/data/reviews.csv.gz",
	},
	{
		Name: "Stockholm", Country: "Sweden", Region: "Stockholm County",
		ListingsURL: "https://data.insideairbnb.com/sweden/stockholms-l%C3%A4n/stockholm/2025-09-29/data/listings.csv.gz",
		ReviewsURL:  "https://data.insideairbnb.com/sweden/stockholms-l%C3%A4n/stockholm/2025-09-29/data/reviews.csv.gz",
	},
}

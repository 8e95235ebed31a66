package generator

// Fixed per-city POI catalogs. A property in a cataloged city gets a shuffled
// mix of landmarks and dining/nightlife spots; a city absent from both maps
// yields zero POIs.

type poiSeed struct {
	name     string
	lat, lon float64
	typ      string
}

var landmarkCatalog = map[string][]poiSeed{
	"Rome": {
		{"Colosseum", 41.8902, 12.4922, "historical"},
		{"Pantheon", 41.8986, 12.4768, "historical"},
		{"Roman Forum", 41.8925, 12.4853, "historical"},
		{"Piazza Navona", 41.8992, 12.4731, "landmark"},
		{"Vatican Museums", 41.9029, 12.4534, "museum"},
	},
	"Paris": {
		{"Eiffel Tower", 48.8584, 2.2945, "monument"},
		{"Louvre Museum", 48.8606, 2.3376, "museum"},
		{"Notre-Dame Cathedral", 48.8530, 2.3499, "historical"},
		{"Montmartre", 48.8867, 2.3431, "landmark"},
		{"Musée d'Orsay", 48.8600, 2.3266, "museum"},
	},
	"London": {
		{"Big Ben", 51.5007, -0.1246, "monument"},
		{"Tower Bridge", 51.5055, -0.0754, "landmark"},
		{"London Eye", 51.5033, -0.1196, "landmark"},
		{"Buckingham Palace", 51.5014, -0.1419, "historical"},
		{"British Museum", 51.5194, -0.1270, "museum"},
	},
	"Berlin": {
		{"Brandenburg Gate", 52.5163, 13.3777, "monument"},
		{"Reichstag Building", 52.5186, 13.3762, "historical"},
		{"Museum Island", 52.5169, 13.4010, "museum"},
		{"Checkpoint Charlie", 52.5076, 13.3904, "historical"},
		{"Alexanderplatz", 52.5219, 13.4132, "landmark"},
	},
	"Madrid": {
		{"Plaza Mayor", 40.4154, -3.7074, "landmark"},
		{"Prado Museum", 40.4138, -3.6921, "museum"},
		{"Royal Palace of Madrid", 40.4170, -3.7143, "historical"},
		{"El Retiro Park", 40.4153, -3.6846, "park"},
		{"Puerta del Sol", 40.4169, -3.7038, "landmark"},
	},
	"Lisbon": {
		{"Belém Tower", 38.6916, -9.2156, "historical"},
		{"Alfama District", 38.7129, -9.1305, "landmark"},
		{"São Jorge Castle", 38.7139, -9.1334, "historical"},
		{"Jerónimos Monastery", 38.6971, -9.2065, "historical"},
		{"Commerce Square", 38.7071, -9.1366, "landmark"},
	},
	"Vienna": {
		{"Schönbrunn Palace", 48.1845, 16.3122, "historical"},
		{"St. Stephen's Cathedral", 48.2082, 16.3738, "historical"},
		{"Belvedere Palace", 48.1915, 16.3805, "museum"},
		{"Prater Park", 48.2162, 16.3989, "park"},
		{"Hofburg Imperial Palace", 48.2060, 16.3658, "historical"},
	},
	"Athens": {
		{"Acropolis of Athens", 37.9715, 23.7257, "historical"},
		{"Parthenon", 37.9715, 23.7266, "historical"},
		{"Plaka District", 37.9755, 23.7346, "landmark"},
		{"Temple of Olympian Zeus", 37.9699, 23.7333, "historical"},
		{"National Archaeological Museum", 37.9890, 23.7330, "museum"},
	},
	"Budapest": {
		{"Buda Castle", 47.4969, 19.0396, "historical"},
		{"Hungarian Parliament Building", 47.5070, 19.0450, "landmark"},
		{"Széchenyi Chain Bridge", 47.4980, 19.0396, "landmark"},
		{"Fisherman's Bastion", 47.5020, 19.0344, "historical"},
		{"Heroes' Square", 47.5143, 19.0773, "landmark"},
	},
	"Prague": {
		{"Charles Bridge", 50.0865, 14.4114, "landmark"},
		{"Prague Castle", 50.0903, 14.3988, "historical"},
		{"Old Town Square", 50.0870, 14.4208, "landmark"},
		{"Prague Astronomical Clock", 50.0871, 14.4210, "landmark"},
		{"Wenceslas Square", 50.0810, 14.4265, "landmark"},
	},
	"Oslo": {
		{"Oslo Opera House", 59.9076, 10.7532, "landmark"},
		{"Vigeland Park", 59.9270, 10.6983, "park"},
		{"Akershus Fortress", 59.9078, 10.7384, "historical"},
		{"Nobel Peace Center", 59.9120, 10.7382, "museum"},
		{"Karl Johans Gate", 59.9122, 10.7461, "landmark"},
	},
	"Copenhagen": {
		{"Tivoli Gardens", 55.6735, 12.5681, "park"},
		{"Nyhavn", 55.6803, 12.5937, "landmark"},
		{"The Little Mermaid", 55.6929, 12.5994, "monument"},
		{"Rosenborg Castle", 55.6850, 12.5833, "historical"},
		{"Christiansborg Palace", 55.6759, 12.5831, "historical"},
	},
	"Stockholm": {
		{"Gamla Stan (Old Town)", 59.3250, 18.0700, "historical"},
		{"Vasa Museum", 59.3275, 18.0916, "museum"},
		{"The Royal Palace", 59.3276, 18.0717, "historical"},
		{"ABBA The Museum", 59.3277, 18.0924, "museum"},
		{"Skansen Open-Air Museum", 59.3270, 18.0970, "museum"},
	},
}

var diningCatalog = map[string][]poiSeed{
	"Rome": {
		{"Salotto 42", 41.8995, 12.4786, "bar"},
		{"Roscioli Salumeria con Cucina", 41.8940, 12.4722, "restaurant"},
		{"The Jerry Thomas Project", 41.8973, 12.4716, "bar"},
		{"Antico Caffè Greco", 41.9056, 12.4823, "cafe"},
	},
	"Paris": {
		{"Le Comptoir Général", 48.8716, 2.3662, "bar"},
		{"Café de Flore", 48.8541, 2.3326, "cafe"},
		{"Harry's New York Bar", 48.8698, 2.3314, "bar"},
		{"Le Relais de l'Entrecôte", 48.8710, 2.3013, "restaurant"},
	},
	"London": {
		{"The Churchill Arms", 51.5073, -0.1960, "pub"},
		{"Sketch", 51.5126, -0.1413, "restaurant"},
		{"Gordon's Wine Bar", 51.5079, -0.1245, "bar"},
		{"Dishoom Covent Garden", 51.5133, -0.1265, "restaurant"},
	},
	"Berlin": {
		{"Monkey Bar", 52.5057, 13.3364, "bar"},
		{"Hofbräu Wirtshaus Berlin", 52.5222, 13.4137, "restaurant"},
		{"Burgermeister Schlesisches Tor", 52.5013, 13.4419, "restaurant"},
		{"Berghain", 52.5111, 13.4431, "club"},
	},
	"Madrid": {
		{"Chocolatería San Ginés", 40.4168, -3.7075, "cafe"},
		{"Mercado de San Miguel", 40.4155, -3.7090, "restaurant"},
		{"Salmon Guru", 40.4152, -3.6974, "bar"},
		{"Botín", 40.4147, -3.7073, "restaurant"},
	},
	"Lisbon": {
		{"Pavilhão Chinês", 38.7153, -9.1465, "bar"},
		{"Time Out Market", 38.7071, -9.1462, "restaurant"},
		{"Park Bar", 38.7111, -9.1450, "bar"},
		{"Cervejaria Ramiro", 38.7214, -9.1338, "restaurant"},
	},
	"Vienna": {
		{"Café Central", 48.2104, 16.3653, "cafe"},
		{"Figlmüller Wollzeile", 48.2093, 16.3752, "restaurant"},
		{"Loos American Bar", 48.2085, 16.3707, "bar"},
		{"Plachutta Wollzeile", 48.2089, 16.3791, "restaurant"},
	},
	"Athens": {
		{"The Clumsies", 37.9785, 23.7297, "bar"},
		{"Baba Au Rum", 37.9774, 23.7314, "bar"},
		{"Brettos", 37.9723, 23.7296, "bar"},
		{"Karamanlidika", 37.9803, 23.7259, "restaurant"},
	},
	"Budapest": {
		{"Szimpla Kert", 47.4971, 19.0638, "bar"},
		{"New York Café", 47.4987, 19.0700, "cafe"},
		{"Mazel Tov", 47.4988, 19.0658, "restaurant"},
		{"Instant-Fogas Complex", 47.5003, 19.0617, "club"},
	},
	"Prague": {
		{"U Fleků", 50.0784, 14.4172, "pub"},
		{"Hemingway Bar", 50.0841, 14.4137, "bar"},
		{"Café Louvre", 50.0822, 14.4191, "cafe"},
		{"Lokál Dlouhááá", 50.0903, 14.4251, "restaurant"},
	},
	"Oslo": {
		{"Himkok", 59.9149, 10.7497, "bar"},
		{"Mathallen Oslo", 59.9221, 10.7516, "restaurant"},
		{"Crow Bar & Brewery", 59.9175, 10.7558, "pub"},
		{"Fiskeriet Youngstorget", 59.9148, 10.7486, "restaurant"},
	},
	"Copenhagen": {
		{"WarPigs", 55.6669, 12.5605, "pub"},
		{"Ruby", 55.6766, 12.5768, "bar"},
		{"Gasoline Grill", 55.6833, 12.5858, "restaurant"},
		{"Noma (approx)", 55.6828, 12.6102, "restaurant"},
	},
	"Stockholm": {
		{"ICEBAR Stockholm", 59.3323, 18.0569, "bar"},
		{"Pelikan", 59.3116, 18.0817, "restaurant"},
		{"Pharmarium", 59.3250, 18.0706, "bar"},
		{"Fotografiska Restaurant", 59.3177, 18.0864, "restaurant"},
	},
}

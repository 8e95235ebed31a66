package domain

// Customers and Managers are projected into a single users collection on
// the document side and into User nodes on the graph side. Email is the
// document dedup key; username is the graph merge key. Both are unique per
// generated user, so the two joins select the same user set.

type BillingAddress struct {
	Street        string `json:"street"`
	City          string `json:"city"`
	ZipCode       string `json:"zipCode"`
	Country       string `json:"country"`
	StateProvince string `json:"stateProvince"`
}

type Manager struct {
	ID             string         `json:"id"`
	Username       string         `json:"username"`
	Email          string         `json:"email"`
	Password       string         `json:"password"`
	Name           string         `json:"name"`
	Surname        string         `json:"surname"`
	PhoneNumber    string         `json:"phoneNumber"`
	IBAN           string         `json:"iban"`
	VATNumber      string         `json:"vatNumber"`
	BillingAddress BillingAddress `json:"billingAddress"`
}

type PaymentMethod struct {
	ID             string `json:"id"`
	GatewayToken   string `json:"gatewayToken"`
	CardType       string `json:"cardType"`
	Last4Digits    string `json:"last4Digits"`
	ExpiryDate     string `json:"expiryDate"`
	CardHolderName string `json:"cardHolderName"`
}

type Customer struct {
	ID                 string        `json:"id"`
	Username           string        `json:"username"`
	Email              string        `json:"email"`
	Password           string        `json:"password"`
	Name               string        `json:"name"`
	Surname            string        `json:"surname"`
	Birthdate          string        `json:"birthdate"`
	PhoneNumber        string        `json:"phoneNumber"`
	PaymentMethod      PaymentMethod `json:"paymentMethod"`
	FavoredPropertyIDs []string      `json:"favoredPropertyIds"`
}

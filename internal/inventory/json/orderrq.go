package json

type OrderRQ struct {
	SelectedOffers []string           `json:"selected_offers"`
	Passengers     []OrderRQPassenger `json:"passengers"`
	Payments       []OrderRQPayment   `json:"payments"`
}

type OrderRQPassenger struct {
	Type        string `json:"type"`
	Title       string `json:"title"`
	GivenName   string `json:"given_name"`
	FamilyName  string `json:"family_name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phone_number"`
	BornOn      string `json:"born_on"`
}

type OrderRQPayment struct {
	Type     string `json:"type"`
	Amount   string `json:"amount"`
	Currency string `json:"currency"`
}

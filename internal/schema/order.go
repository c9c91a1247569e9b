package schema

// OrderParams is the finalized package sent to the booking authority:
// offer id, validated passenger manifest and the settlement reference
// carrying the exact authorized amount.
type OrderParams struct {
	OfferId    string
	Passengers []PassengerRecord
	Payment    PaymentReference
}

// PaymentReference settles the order against the account balance held
// with the booking authority. Amount and Currency must be byte-identical
// to the PriceBreakdown used for the authorization.
type PaymentReference struct {
	Amount   string
	Currency string
}

// Order is the terminal artifact of the pipeline, owned by the booking
// authority. Never mutated or deleted by this service.
type Order struct {
	Id               string `json:"id"`
	BookingReference string `json:"bookingReference"`
	Status           string `json:"status"`
}

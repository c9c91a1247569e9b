package schema

// OfferQuote is the priced quote fetched from the inventory authority for
// one offer id. Amounts stay decimal strings until the fare calculator
// parses them; no binary floats cross this type.
type OfferQuote struct {
	Id         string `json:"id"`
	BaseAmount string `json:"baseAmount"`
	TaxAmount  string `json:"taxAmount"`
	Currency   string `json:"currency"`
}

// PriceBreakdown is derived from one OfferQuote and one passenger mix and
// discarded after the request. TotalAmount is the exact string forwarded
// to both the payment and the booking authority.
type PriceBreakdown struct {
	AdultAmount  string `json:"adultAmount"`
	ChildAmount  string `json:"childAmount"`
	InfantAmount string `json:"infantAmount"`
	TotalAmount  string `json:"totalAmount"`
	Currency     string `json:"currency"`
}

package json

type OfferRS struct {
	Errors
	Data OfferRSOffer `json:"data"`
}

type OfferRSOffer struct {
	Id         string `json:"id"`
	BaseAmount string `json:"base_amount"`
	TaxAmount  string `json:"tax_amount"`
	Currency   string `json:"currency"`
}

package json

type AuthorizationRQ struct {
	Amount             string   `json:"amount"`
	Currency           string   `json:"currency"`
	PaymentMethodTypes []string `json:"payment_method_types"`
	ReturnUrl          string   `json:"return_url"`
}

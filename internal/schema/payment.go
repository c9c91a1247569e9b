package schema

// AuthorizationParams is everything the payment authority needs to create
// a charge authorization for one submission.
type AuthorizationParams struct {
	Amount    string        `json:"amount"`
	Currency  string        `json:"currency"`
	Method    PaymentMethod `json:"method"`
	ReturnUrl string        `json:"returnUrl"`
}

// PaymentAuthorization is the authority's handle for a created
// authorization. The ClientSecret is handed to the caller for any
// client-side confirmation step; this service never updates the
// authorization after creation.
type PaymentAuthorization struct {
	Id           string `json:"id"`
	Status       string `json:"status"`
	ClientSecret string `json:"clientSecret"`
}

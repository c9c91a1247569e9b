package json

type AuthorizationRS struct {
	Errors
	Id     string `json:"id"`
	Status string `json:"status"`
	// null until the authority finishes risk checks on some methods
	ClientSecret *string `json:"client_secret"`
}

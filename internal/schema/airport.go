package schema

// Airport is one fuzzy-search hit from the external place index.
type Airport struct {
	IataCode string `json:"iataCode"`
	Name     string `json:"name"`
	CityName string `json:"cityName"`
}

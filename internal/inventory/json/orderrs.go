package json

type OrderRS struct {
	Errors
	Data OrderRSOrder `json:"data"`
}

type OrderRSOrder struct {
	Id string `json:"id"`
	// null while the authority is still ticketing the order
	BookingReference *string `json:"booking_reference"`
	Status           string  `json:"status"`
}

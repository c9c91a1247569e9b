package booking

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"

	openapiTypes "github.com/oapi-codegen/runtime/types"

	"bitbucket.org/crgw/booking-hub/internal/schema"
)

var (
	emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

	// Lexical shape only. "2024-02-30" passes on purpose: the original
	// flow never calendar-checked birth dates and the booking authority
	// rejects impossible ones itself.
	birthDatePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
)

// Validate turns a raw form payload into a BookingSubmission or reports
// the first offending field. Every passenger is checked independently,
// but the submission is rejected with the first invalid passenger's
// aggregated message; nothing downstream runs after that. Pure function,
// no side effects.
func Validate(raw schema.RawBookingSubmission) (schema.BookingSubmission, *schema.ValidationError) {
	passengers := make([]schema.PassengerRecord, 0, len(raw.Passengers))
	passengerErrors := make([][]string, len(raw.Passengers))

	for i, passenger := range raw.Passengers {
		passengerErrors[i] = validatePassenger(passenger)

		passengers = append(passengers, schema.PassengerRecord{
			Type:       schema.PassengerType(passenger.Type),
			Title:      passenger.Title,
			GivenName:  passenger.GivenName,
			FamilyName: passenger.FamilyName,
			Email:      openapiTypes.Email(passenger.Email),
			Phone:      passenger.Phone,
			BirthDate:  passenger.BirthDate,
		})
	}

	for i, messages := range passengerErrors {
		if len(messages) > 0 {
			// passenger indexes are 1-based anywhere a human reads them
			return schema.BookingSubmission{}, &schema.ValidationError{
				Field:   fmt.Sprintf("passengers[%d]", i+1),
				Message: fmt.Sprintf("Passenger %d: %s", i+1, strings.Join(messages, "; ")),
			}
		}
	}

	if len(raw.Passengers) == 0 {
		return schema.BookingSubmission{}, &schema.ValidationError{
			Field:   "passengers",
			Message: "at least one passenger is required",
		}
	}

	paymentMethod := schema.PaymentMethod(raw.PaymentMethod)
	if !paymentMethod.Valid() {
		return schema.BookingSubmission{}, &schema.ValidationError{
			Field:   "paymentMethod",
			Message: fmt.Sprintf("unsupported payment method %q", raw.PaymentMethod),
		}
	}

	parsedUrl, err := url.Parse(raw.ReturnUrl)
	if err != nil || !parsedUrl.IsAbs() {
		return schema.BookingSubmission{}, &schema.ValidationError{
			Field:   "returnUrl",
			Message: "must be an absolute URL",
		}
	}

	return schema.BookingSubmission{
		OfferId:       raw.OfferId,
		Passengers:    passengers,
		PaymentMethod: paymentMethod,
		ReturnUrl:     raw.ReturnUrl,
	}, nil
}

func validatePassenger(passenger schema.RawPassenger) []string {
	var messages []string

	if !schema.PassengerType(passenger.Type).Valid() {
		messages = append(messages, fmt.Sprintf("unsupported passenger type %q", passenger.Type))
	}

	if passenger.Title == "" {
		messages = append(messages, "title is required")
	}

	if passenger.GivenName == "" {
		messages = append(messages, "given name is required")
	}

	if passenger.FamilyName == "" {
		messages = append(messages, "family name is required")
	}

	if !emailPattern.MatchString(passenger.Email) {
		messages = append(messages, "email must be a valid address")
	}

	if passenger.Phone == "" {
		messages = append(messages, "phone is required")
	}

	if !birthDatePattern.MatchString(passenger.BirthDate) {
		messages = append(messages, "birth date must use the YYYY-MM-DD format")
	}

	return messages
}

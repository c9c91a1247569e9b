package booking_test

import (
	"testing"

	"bitbucket.org/crgw/booking-hub/internal/booking"
	"bitbucket.org/crgw/booking-hub/internal/schema"
	"github.com/stretchr/testify/assert"
)

func validPassenger() schema.RawPassenger {
	return schema.RawPassenger{
		Type:       "adult",
		Title:      "mr",
		GivenName:  "Jane",
		FamilyName: "Doe",
		Email:      "jane@example.com",
		Phone:      "+4912345678",
		BirthDate:  "1988-04-12",
	}
}

func validSubmission() schema.RawBookingSubmission {
	return schema.RawBookingSubmission{
		OfferId:       "off_123",
		Passengers:    []schema.RawPassenger{validPassenger()},
		PaymentMethod: "applePay",
		ReturnUrl:     "https://booking.example.com/confirm",
	}
}

func TestValidate(t *testing.T) {
	t.Run("should accept a well-formed submission", func(t *testing.T) {
		submission, validationErr := booking.Validate(validSubmission())

		assert.Nil(t, validationErr)
		assert.Equal(t, "off_123", submission.OfferId)
		assert.Equal(t, schema.PaymentMethodApplePay, submission.PaymentMethod)
		assert.Len(t, submission.Passengers, 1)
		assert.Equal(t, schema.PassengerTypeAdult, submission.Passengers[0].Type)
	})

	t.Run("should reject an empty passenger list", func(t *testing.T) {
		raw := validSubmission()
		raw.Passengers = nil

		_, validationErr := booking.Validate(raw)

		assert.NotNil(t, validationErr)
		assert.Equal(t, "passengers", validationErr.Field)
	})

	t.Run("should report the first invalid passenger with a 1-based index", func(t *testing.T) {
		raw := validSubmission()
		third := validPassenger()
		third.Email = "not-an-address"
		raw.Passengers = []schema.RawPassenger{validPassenger(), validPassenger(), third}

		_, validationErr := booking.Validate(raw)

		assert.NotNil(t, validationErr)
		assert.Equal(t, "passengers[3]", validationErr.Field)
		assert.Contains(t, validationErr.Message, "Passenger 3")
		assert.Contains(t, validationErr.Message, "email must be a valid address")
	})

	t.Run("should aggregate all messages of the failing passenger", func(t *testing.T) {
		raw := validSubmission()
		broken := validPassenger()
		broken.GivenName = ""
		broken.Phone = ""
		raw.Passengers = []schema.RawPassenger{broken, {Type: "pet"}}

		_, validationErr := booking.Validate(raw)

		assert.NotNil(t, validationErr)
		assert.Equal(t, "passengers[1]", validationErr.Field)
		assert.Contains(t, validationErr.Message, "given name is required")
		assert.Contains(t, validationErr.Message, "phone is required")
	})

	t.Run("should check birth dates lexically only", func(t *testing.T) {
		tests := []struct {
			birthDate string
			valid     bool
		}{
			{"1988-04-12", true},
			// no calendar check beyond the lexical shape
			{"2024-02-30", true},
			{"12-31-2000", false},
			{"1988/04/12", false},
			{"", false},
		}

		for _, test := range tests {
			raw := validSubmission()
			raw.Passengers[0].BirthDate = test.birthDate

			_, validationErr := booking.Validate(raw)

			if test.valid {
				assert.Nil(t, validationErr, test.birthDate)
			} else {
				assert.NotNil(t, validationErr, test.birthDate)
			}
		}
	})

	t.Run("should reject unsupported payment methods", func(t *testing.T) {
		raw := validSubmission()
		raw.PaymentMethod = "cheque"

		_, validationErr := booking.Validate(raw)

		assert.NotNil(t, validationErr)
		assert.Equal(t, "paymentMethod", validationErr.Field)
	})

	t.Run("should require an absolute return url", func(t *testing.T) {
		for _, returnUrl := range []string{"/confirm", "confirm", ""} {
			raw := validSubmission()
			raw.ReturnUrl = returnUrl

			_, validationErr := booking.Validate(raw)

			assert.NotNil(t, validationErr, returnUrl)
			assert.Equal(t, "returnUrl", validationErr.Field)
		}
	})
}

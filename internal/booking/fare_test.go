package booking_test

import (
	"errors"
	"testing"

	"bitbucket.org/crgw/booking-hub/internal/booking"
	"bitbucket.org/crgw/booking-hub/internal/schema"
	"github.com/stretchr/testify/assert"
)

func submissionWithMix(adults, children, infants int) schema.BookingSubmission {
	var passengers []schema.PassengerRecord
	for i := 0; i < adults; i++ {
		passengers = append(passengers, schema.PassengerRecord{Type: schema.PassengerTypeAdult})
	}
	for i := 0; i < children; i++ {
		passengers = append(passengers, schema.PassengerRecord{Type: schema.PassengerTypeChild})
	}
	for i := 0; i < infants; i++ {
		passengers = append(passengers, schema.PassengerRecord{Type: schema.PassengerTypeInfantWithoutSeat})
	}
	return schema.BookingSubmission{Passengers: passengers}
}

func TestCalculatePrice(t *testing.T) {
	t.Run("should weight the per-person cost by passenger mix", func(t *testing.T) {
		tests := []struct {
			name          string
			baseAmount    string
			taxAmount     string
			adults        int
			children      int
			infants       int
			expectedTotal string
		}{
			{"single adult", "100.00", "20.00", 1, 0, 0, "120.00"},
			{"two adults one child", "100.00", "20.00", 2, 1, 0, "330.00"},
			{"full family", "100.00", "20.00", 1, 1, 1, "222.00"},
			{"larger group", "100.00", "20.00", 3, 2, 1, "552.00"},
			{"infants nearly free", "100.00", "20.00", 1, 0, 2, "144.00"},
			{"rounds half up", "33.33", "0.00", 0, 1, 0, "25.00"},
			{"sub-cent result", "0.10", "0.01", 1, 0, 1, "0.12"},
		}

		for _, test := range tests {
			t.Run(test.name, func(t *testing.T) {
				offer := schema.OfferQuote{
					Id:         "off_123",
					BaseAmount: test.baseAmount,
					TaxAmount:  test.taxAmount,
					Currency:   "USD",
				}
				submission := submissionWithMix(test.adults, test.children, test.infants)

				price, err := booking.CalculatePrice(offer, &submission)

				assert.Nil(t, err)
				assert.Equal(t, test.expectedTotal, price.TotalAmount)
				assert.Equal(t, "USD", price.Currency)
			})
		}
	})

	t.Run("should carry per-type subtotals", func(t *testing.T) {
		offer := schema.OfferQuote{BaseAmount: "100.00", TaxAmount: "20.00", Currency: "EUR"}
		submission := submissionWithMix(2, 1, 1)

		price, err := booking.CalculatePrice(offer, &submission)

		assert.Nil(t, err)
		assert.Equal(t, "240.00", price.AdultAmount)
		assert.Equal(t, "90.00", price.ChildAmount)
		assert.Equal(t, "12.00", price.InfantAmount)
		assert.Equal(t, "342.00", price.TotalAmount)
		assert.Equal(t, "EUR", price.Currency)
	})

	t.Run("should fail on unparseable fare components", func(t *testing.T) {
		tests := []struct {
			name       string
			baseAmount string
			taxAmount  string
		}{
			{"garbage base", "abc", "20.00"},
			{"empty tax", "100.00", ""},
			{"binary float artifact", "100,00", "20.00"},
		}

		for _, test := range tests {
			t.Run(test.name, func(t *testing.T) {
				offer := schema.OfferQuote{BaseAmount: test.baseAmount, TaxAmount: test.taxAmount, Currency: "USD"}
				submission := submissionWithMix(1, 0, 0)

				_, err := booking.CalculatePrice(offer, &submission)

				var pricingErr schema.PricingDataError
				assert.True(t, errors.As(err, &pricingErr))
			})
		}
	})
}

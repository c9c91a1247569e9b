package booking

import (
	"github.com/shopspring/decimal"

	"bitbucket.org/crgw/booking-hub/internal/schema"
)

// Per-type fare weights. Business constants, not configurable per offer.
var (
	childWeight  = decimal.New(75, -2)
	infantWeight = decimal.New(10, -2)
)

// CalculatePrice derives the charge for one submission from the offer's
// fare components: perPersonCost = base + tax, weighted by the passenger
// mix (adult 1.00, child 0.75, infant without seat 0.10), rounded half-up
// to 2 fraction digits. All arithmetic is fixed-point; the amounts never
// pass through a binary float.
func CalculatePrice(offer schema.OfferQuote, submission *schema.BookingSubmission) (schema.PriceBreakdown, error) {
	base, err := decimal.NewFromString(offer.BaseAmount)
	if err != nil {
		return schema.PriceBreakdown{}, schema.PricingDataError{Field: "base_amount", Value: offer.BaseAmount}
	}

	tax, err := decimal.NewFromString(offer.TaxAmount)
	if err != nil {
		return schema.PriceBreakdown{}, schema.PricingDataError{Field: "tax_amount", Value: offer.TaxAmount}
	}

	perPersonCost := base.Add(tax)

	adults, children, infants := submission.CountByType()

	adultAmount := perPersonCost.Mul(decimal.NewFromInt(int64(adults)))
	childAmount := perPersonCost.Mul(childWeight).Mul(decimal.NewFromInt(int64(children)))
	infantAmount := perPersonCost.Mul(infantWeight).Mul(decimal.NewFromInt(int64(infants)))

	total := adultAmount.Add(childAmount).Add(infantAmount)

	return schema.PriceBreakdown{
		AdultAmount:  adultAmount.Round(2).StringFixed(2),
		ChildAmount:  childAmount.Round(2).StringFixed(2),
		InfantAmount: infantAmount.Round(2).StringFixed(2),
		TotalAmount:  total.Round(2).StringFixed(2),
		Currency:     offer.Currency,
	}, nil
}

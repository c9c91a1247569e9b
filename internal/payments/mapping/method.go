package mapping

import "bitbucket.org/crgw/booking-hub/internal/schema"

// The payment authority speaks snake_case method names. The submission
// enum is closed, so the default branches below are only reachable for
// raw strings that never passed validation; those deliberately fall back
// to card instead of failing.

func ToAuthorityMethod(method schema.PaymentMethod) string {
	switch method {
	case schema.PaymentMethodApplePay:
		return "apple_pay"
	case schema.PaymentMethodGooglePay:
		return "google_pay"
	case schema.PaymentMethodCard:
		return "card"
	default:
		return "card"
	}
}

func FromAuthorityMethod(method string) schema.PaymentMethod {
	switch method {
	case "apple_pay":
		return schema.PaymentMethodApplePay
	case "google_pay":
		return schema.PaymentMethodGooglePay
	case "card":
		return schema.PaymentMethodCard
	default:
		return schema.PaymentMethodCard
	}
}

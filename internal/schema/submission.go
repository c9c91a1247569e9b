package schema

import (
	openapiTypes "github.com/oapi-codegen/runtime/types"
)

type PassengerType string

const (
	PassengerTypeAdult             PassengerType = "adult"
	PassengerTypeChild             PassengerType = "child"
	PassengerTypeInfantWithoutSeat PassengerType = "infant_without_seat"
)

func (t PassengerType) Valid() bool {
	switch t {
	case PassengerTypeAdult, PassengerTypeChild, PassengerTypeInfantWithoutSeat:
		return true
	}
	return false
}

type PaymentMethod string

const (
	PaymentMethodCard      PaymentMethod = "card"
	PaymentMethodApplePay  PaymentMethod = "applePay"
	PaymentMethodGooglePay PaymentMethod = "googlePay"
)

func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentMethodCard, PaymentMethodApplePay, PaymentMethodGooglePay:
		return true
	}
	return false
}

// RawBookingSubmission is the form payload as it arrives on the wire,
// before any validation has run.
type RawBookingSubmission struct {
	OfferId       string         `json:"offerId"`
	Passengers    []RawPassenger `json:"passengers"`
	PaymentMethod string         `json:"paymentMethod"`
	ReturnUrl     string         `json:"returnUrl"`
}

type RawPassenger struct {
	Type       string `json:"type"`
	Title      string `json:"title"`
	GivenName  string `json:"givenName"`
	FamilyName string `json:"familyName"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	BirthDate  string `json:"birthDate"`
}

// PassengerRecord is a validated passenger. Not mutated after validation.
type PassengerRecord struct {
	Type       PassengerType      `json:"type"`
	Title      string             `json:"title"`
	GivenName  string             `json:"givenName"`
	FamilyName string             `json:"familyName"`
	Email      openapiTypes.Email `json:"email"`
	Phone      string             `json:"phone"`
	BirthDate  string             `json:"birthDate"`
}

// BookingSubmission is the validated counterpart of RawBookingSubmission.
// Constructed once per request, never mutated.
type BookingSubmission struct {
	OfferId       string            `json:"offerId"`
	Passengers    []PassengerRecord `json:"passengers"`
	PaymentMethod PaymentMethod     `json:"paymentMethod"`
	ReturnUrl     string            `json:"returnUrl"`
}

func (s *BookingSubmission) CountByType() (adults, children, infants int) {
	for _, passenger := range s.Passengers {
		switch passenger.Type {
		case PassengerTypeAdult:
			adults++
		case PassengerTypeChild:
			children++
		case PassengerTypeInfantWithoutSeat:
			infants++
		}
	}
	return
}

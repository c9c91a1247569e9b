package schema

import (
	"errors"
	"fmt"
)

// ErrOfferNotFound is returned when the inventory authority does not know
// the submitted offer id (expired or never existed).
var ErrOfferNotFound = errors.New("offer not found")

// ValidationError points at a single offending field of the raw
// submission. Field uses a 1-based passenger index, e.g. "passengers[3]";
// the per-field details go into Message.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// PricingDataError means the offer's fare components could not be parsed
// as decimal numbers. The quote is unusable, not the submission.
type PricingDataError struct {
	Field string
	Value string
}

func (e PricingDataError) Error() string {
	return fmt.Sprintf("offer %s is not a decimal amount: %q", e.Field, e.Value)
}

type AuthorityErrorKind string

const (
	AuthorityErrorTimeout    AuthorityErrorKind = "timeout"
	AuthorityErrorConnection AuthorityErrorKind = "connection"
	AuthorityErrorDeclined   AuthorityErrorKind = "declined"
	AuthorityErrorMalformed  AuthorityErrorKind = "malformed"
)

// PaymentAuthorityError wraps any failure of the payment authority call.
type PaymentAuthorityError struct {
	Kind  AuthorityErrorKind
	Cause error
}

func (e PaymentAuthorityError) Error() string {
	return fmt.Sprintf("payment authority %s: %v", e.Kind, e.Cause)
}

func (e PaymentAuthorityError) Unwrap() error {
	return e.Cause
}

// BookingAuthorityError wraps any failure of the booking authority call.
type BookingAuthorityError struct {
	Kind  AuthorityErrorKind
	Cause error
}

func (e BookingAuthorityError) Error() string {
	return fmt.Sprintf("booking authority %s: %v", e.Kind, e.Cause)
}

func (e BookingAuthorityError) Unwrap() error {
	return e.Cause
}

// ConfigurationError is fatal at process start, never request-scoped.
type ConfigurationError struct {
	Cause error
}

func (e ConfigurationError) Error() string {
	return fmt.Sprintf("configuration: %v", e.Cause)
}

func (e ConfigurationError) Unwrap() error {
	return e.Cause
}

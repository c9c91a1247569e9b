package booking

import (
	"context"

	"github.com/rs/zerolog"

	"bitbucket.org/crgw/booking-hub/internal/schema"
)

type OfferFetcher interface {
	GetOffer(context.Context, string, *zerolog.Logger) (schema.OfferQuote, error)
}

type PaymentAuthorizer interface {
	CreateAuthorization(context.Context, schema.AuthorizationParams, *zerolog.Logger) (schema.PaymentAuthorization, error)
	VoidAuthorization(context.Context, string, *zerolog.Logger) error
}

type OrderCommitter interface {
	CreateOrder(context.Context, schema.OrderParams, *zerolog.Logger) (schema.Order, error)
}

// Pipeline sequences one booking submission through its stages. Each run
// is independent and strictly serial: the commit needs the authorization
// id, so the two calls are never issued concurrently, and no stage is
// retried or revisited.
type Pipeline struct {
	offers   OfferFetcher
	payments PaymentAuthorizer
	orders   OrderCommitter
}

func NewPipeline(offers OfferFetcher, payments PaymentAuthorizer, orders OrderCommitter) *Pipeline {
	return &Pipeline{
		offers:   offers,
		payments: payments,
		orders:   orders,
	}
}

// Success is the terminal payload of a completed pipeline run. The three
// amounts seen by the fare calculator, the payment authority and the
// booking authority are the same string in Price.TotalAmount.
type Success struct {
	Order         schema.Order                `json:"order"`
	Authorization schema.PaymentAuthorization `json:"authorization"`
	Price         schema.PriceBreakdown       `json:"price"`
}

// Failure names the stage a run died in and keeps the authorization id
// whenever a charge authorization already existed at that point, so a
// reconciliation job can find it even after a failed void.
type Failure struct {
	Stage              schema.Stage
	Err                error
	AuthorizationId    string
	CompensationFailed bool
}

func (f *Failure) Error() string {
	return string(f.Stage) + ": " + f.Err.Error()
}

func (f *Failure) Unwrap() error {
	return f.Err
}

// Submit runs the whole pipeline for one raw submission. The first failing
// stage short-circuits everything after it. When the commit fails after a
// successful authorization, the authorization is voided; a failed void is
// logged and flagged, never fatal on top of the commit failure.
func (p *Pipeline) Submit(ctx context.Context, raw schema.RawBookingSubmission, logger *zerolog.Logger) (*Success, *Failure) {
	stage := schema.StageValidating

	submission, validationErr := Validate(raw)
	if validationErr != nil {
		return nil, &Failure{Stage: stage, Err: *validationErr}
	}

	stage = schema.StageFetchingOffer
	logger.Debug().Str("stage", string(stage)).Str("offerId", submission.OfferId).Msg("")

	offer, err := p.offers.GetOffer(ctx, submission.OfferId, logger)
	if err != nil {
		return nil, &Failure{Stage: stage, Err: err}
	}

	stage = schema.StagePricing
	logger.Debug().Str("stage", string(stage)).Msg("")

	price, err := CalculatePrice(offer, &submission)
	if err != nil {
		return nil, &Failure{Stage: stage, Err: err}
	}

	stage = schema.StageAuthorizing
	logger.Debug().Str("stage", string(stage)).Str("amount", price.TotalAmount).Str("currency", price.Currency).Msg("")

	authorization, err := p.payments.CreateAuthorization(ctx, schema.AuthorizationParams{
		Amount:    price.TotalAmount,
		Currency:  price.Currency,
		Method:    submission.PaymentMethod,
		ReturnUrl: submission.ReturnUrl,
	}, logger)
	if err != nil {
		return nil, &Failure{Stage: stage, Err: err}
	}

	stage = schema.StageCommitting
	logger.Debug().Str("stage", string(stage)).Str("authorizationId", authorization.Id).Msg("")

	order, err := p.orders.CreateOrder(ctx, schema.OrderParams{
		OfferId:    submission.OfferId,
		Passengers: submission.Passengers,
		Payment: schema.PaymentReference{
			Amount:   price.TotalAmount,
			Currency: price.Currency,
		},
	}, logger)
	if err != nil {
		return nil, p.compensate(ctx, authorization, err, logger)
	}

	logger.Info().
		Str("stage", string(schema.StageSucceeded)).
		Str("orderId", order.Id).
		Str("bookingReference", order.BookingReference).
		Msg("booking confirmed")

	return &Success{
		Order:         order,
		Authorization: authorization,
		Price:         price,
	}, nil
}

// compensate voids the orphaned authorization left behind by a failed
// commit. The commit failure stays the reported error either way.
func (p *Pipeline) compensate(ctx context.Context, authorization schema.PaymentAuthorization, commitErr error, logger *zerolog.Logger) *Failure {
	failure := &Failure{
		Stage:           schema.StageCommitting,
		Err:             commitErr,
		AuthorizationId: authorization.Id,
	}

	if voidErr := p.payments.VoidAuthorization(ctx, authorization.Id, logger); voidErr != nil {
		failure.CompensationFailed = true
		logger.Error().
			Err(voidErr).
			Str("authorizationId", authorization.Id).
			Msg("voiding authorization failed, manual reconciliation required")

		return failure
	}

	logger.Info().
		Str("authorizationId", authorization.Id).
		Msg("authorization voided after failed commit")

	return failure
}

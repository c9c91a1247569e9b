package inventory

import (
	"context"
	"net/http"
	"time"

	"bitbucket.org/crgw/booking-hub/internal/config"
	"bitbucket.org/crgw/booking-hub/internal/schema"
	"github.com/rs/zerolog"
)

// Client talks to the external flight-inventory authority, which owns both
// the offer quotes and the finalized orders. All booking persistence lives
// on that side; this service never stores an order.
type Client struct {
	apiUrl        string
	apiToken      string
	timeout       time.Duration
	httpTransport *http.Transport
}

func New(cfg *config.Config) *Client {
	transport := http.DefaultTransport.(*http.Transport)
	// improves durations a lot
	transport.DisableKeepAlives = true

	return &Client{
		apiUrl:        cfg.InventoryApiUrl,
		apiToken:      cfg.InventoryApiToken,
		timeout:       time.Duration(cfg.ExternalCallTimeout) * time.Millisecond,
		httpTransport: transport,
	}
}

func (c *Client) GetOffer(ctx context.Context, offerId string, logger *zerolog.Logger) (schema.OfferQuote, error) {
	request := offerRequest{
		apiUrl:   c.apiUrl,
		apiToken: c.apiToken,
		timeout:  c.timeout,
		offerId:  offerId,
		logger:   logger,
	}

	return request.Execute(ctx, c.httpTransport)
}

func (c *Client) CreateOrder(ctx context.Context, params schema.OrderParams, logger *zerolog.Logger) (schema.Order, error) {
	request := orderRequest{
		apiUrl:   c.apiUrl,
		apiToken: c.apiToken,
		timeout:  c.timeout,
		params:   params,
		logger:   logger,
	}

	return request.Execute(ctx, c.httpTransport)
}

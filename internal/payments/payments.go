package payments

import (
	"context"
	"net/http"
	"time"

	"bitbucket.org/crgw/booking-hub/internal/config"
	"bitbucket.org/crgw/booking-hub/internal/schema"
	"github.com/rs/zerolog"
)

// Client talks to the external payment authority. Each CreateAuthorization
// call opens a new live authorization on the authority's side; no
// idempotency key is sent, so a caller retrying after a timeout can end up
// with duplicates. That risk is inherited from the original flow and left
// visible rather than papered over.
type Client struct {
	apiUrl        string
	secretKey     string
	timeout       time.Duration
	httpTransport *http.Transport
}

func New(cfg *config.Config) *Client {
	transport := http.DefaultTransport.(*http.Transport)
	// improves durations a lot
	transport.DisableKeepAlives = true

	return &Client{
		apiUrl:        cfg.PaymentApiUrl,
		secretKey:     cfg.PaymentSecretKey,
		timeout:       time.Duration(cfg.ExternalCallTimeout) * time.Millisecond,
		httpTransport: transport,
	}
}

func (c *Client) CreateAuthorization(ctx context.Context, params schema.AuthorizationParams, logger *zerolog.Logger) (schema.PaymentAuthorization, error) {
	request := authorizeRequest{
		apiUrl:    c.apiUrl,
		secretKey: c.secretKey,
		timeout:   c.timeout,
		params:    params,
		logger:    logger,
	}

	return request.Execute(ctx, c.httpTransport)
}

func (c *Client) VoidAuthorization(ctx context.Context, authorizationId string, logger *zerolog.Logger) error {
	request := voidRequest{
		apiUrl:          c.apiUrl,
		secretKey:       c.secretKey,
		timeout:         c.timeout,
		authorizationId: authorizationId,
		logger:          logger,
	}

	return request.Execute(ctx, c.httpTransport)
}

package inventory

import (
	"context"
	jsonEncoding "encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"bitbucket.org/crgw/booking-hub/internal/inventory/json"
	"bitbucket.org/crgw/booking-hub/internal/schema"
	"bitbucket.org/crgw/booking-hub/internal/tools/requesting"
	"github.com/rs/zerolog"
)

type offerRequest struct {
	apiUrl   string
	apiToken string
	timeout  time.Duration
	offerId  string
	logger   *zerolog.Logger
}

func (o *offerRequest) Execute(ctx context.Context, httpTransport *http.Transport) (schema.OfferQuote, error) {
	client := &http.Client{
		Timeout: o.timeout,
		Transport: &requesting.InterceptorTransport{
			Transport: httpTransport,
			Middlewares: []requesting.TransportMiddleware{
				requesting.NewLoggingTransportMiddleware(o.logger),
			},
		},
	}

	url := o.apiUrl + "/v1/offers/" + o.offerId

	httpRequest, _ := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	httpRequest.Header.Set("Authorization", "Bearer "+o.apiToken)

	response, err := client.Do(httpRequest)
	if err == nil && response.StatusCode == http.StatusNotFound {
		response.Body.Close()
		return schema.OfferQuote{}, schema.ErrOfferNotFound
	}

	rs, callErr := requesting.RequestErrors(response, err)
	if callErr != nil {
		return schema.OfferQuote{}, schema.BookingAuthorityError{Kind: callErr.Kind, Cause: callErr.Err}
	}
	defer rs.Body.Close()

	bodyBytes, _ := io.ReadAll(rs.Body)

	var jsonResponse json.OfferRS
	if jsonErr := jsonEncoding.Unmarshal(bodyBytes, &jsonResponse); jsonErr != nil {
		return schema.OfferQuote{}, schema.BookingAuthorityError{Kind: schema.AuthorityErrorMalformed, Cause: jsonErr}
	}

	if message := jsonResponse.ErrorMessage(); message != "" {
		return schema.OfferQuote{}, schema.BookingAuthorityError{Kind: schema.AuthorityErrorDeclined, Cause: errors.New(message)}
	}

	return schema.OfferQuote{
		Id:         jsonResponse.Data.Id,
		BaseAmount: jsonResponse.Data.BaseAmount,
		TaxAmount:  jsonResponse.Data.TaxAmount,
		Currency:   jsonResponse.Data.Currency,
	}, nil
}

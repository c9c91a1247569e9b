package payments

import (
	"context"
	jsonEncoding "encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"bitbucket.org/crgw/booking-hub/internal/payments/json"
	"bitbucket.org/crgw/booking-hub/internal/schema"
	"bitbucket.org/crgw/booking-hub/internal/tools/requesting"
	"github.com/rs/zerolog"
)

// voidRequest cancels a previously created authorization. It is the
// compensating half of the two-step commit: the pipeline calls it when the
// order commit fails after the charge was already authorized.
type voidRequest struct {
	apiUrl          string
	secretKey       string
	timeout         time.Duration
	authorizationId string
	logger          *zerolog.Logger
}

func (v *voidRequest) Execute(ctx context.Context, httpTransport *http.Transport) error {
	client := &http.Client{
		Timeout: v.timeout,
		Transport: &requesting.InterceptorTransport{
			Transport: httpTransport,
			Middlewares: []requesting.TransportMiddleware{
				requesting.NewLoggingTransportMiddleware(v.logger),
			},
		},
	}

	url := v.apiUrl + "/v1/authorizations/" + v.authorizationId + "/void"

	httpRequest, _ := http.NewRequestWithContext(ctx, http.MethodPost, url, nil)
	httpRequest.Header.Set("Authorization", "Bearer "+v.secretKey)

	rs, callErr := requesting.RequestErrors(client.Do(httpRequest))
	if callErr != nil {
		return schema.PaymentAuthorityError{Kind: callErr.Kind, Cause: callErr.Err}
	}
	defer rs.Body.Close()

	bodyBytes, _ := io.ReadAll(rs.Body)

	var jsonResponse json.Errors
	if jsonErr := jsonEncoding.Unmarshal(bodyBytes, &jsonResponse); jsonErr != nil {
		return schema.PaymentAuthorityError{Kind: schema.AuthorityErrorMalformed, Cause: jsonErr}
	}

	if message := jsonResponse.ErrorMessage(); message != "" {
		return schema.PaymentAuthorityError{Kind: schema.AuthorityErrorDeclined, Cause: errors.New(message)}
	}

	return nil
}

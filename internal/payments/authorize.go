package payments

import (
	"bytes"
	"context"
	jsonEncoding "encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"bitbucket.org/crgw/booking-hub/internal/payments/json"
	"bitbucket.org/crgw/booking-hub/internal/payments/mapping"
	"bitbucket.org/crgw/booking-hub/internal/schema"
	"bitbucket.org/crgw/booking-hub/internal/tools/converting"
	"bitbucket.org/crgw/booking-hub/internal/tools/requesting"
	"github.com/rs/zerolog"
)

type authorizeRequest struct {
	apiUrl    string
	secretKey string
	timeout   time.Duration
	params    schema.AuthorizationParams
	logger    *zerolog.Logger
}

func (a *authorizeRequest) Execute(ctx context.Context, httpTransport *http.Transport) (schema.PaymentAuthorization, error) {
	client := &http.Client{
		Timeout: a.timeout,
		Transport: &requesting.InterceptorTransport{
			Transport: httpTransport,
			Middlewares: []requesting.TransportMiddleware{
				requesting.NewLoggingTransportMiddleware(a.logger),
			},
		},
	}

	response, err := a.makeRequest(ctx, client)
	if err != nil {
		return schema.PaymentAuthorization{}, err
	}

	return schema.PaymentAuthorization{
		Id:           response.Id,
		Status:       response.Status,
		ClientSecret: converting.Unwrap(response.ClientSecret),
	}, nil
}

func (a *authorizeRequest) makeRequest(ctx context.Context, client *http.Client) (json.AuthorizationRS, error) {
	body := bytes.NewBuffer(a.requestBody())

	url := a.apiUrl + "/v1/authorizations"

	httpRequest, _ := http.NewRequestWithContext(ctx, http.MethodPost, url, body)
	httpRequest.Header.Set("Content-Type", "application/json")
	httpRequest.Header.Set("Authorization", "Bearer "+a.secretKey)

	rs, callErr := requesting.RequestErrors(client.Do(httpRequest))
	if callErr != nil {
		return json.AuthorizationRS{}, schema.PaymentAuthorityError{Kind: callErr.Kind, Cause: callErr.Err}
	}
	defer rs.Body.Close()

	bodyBytes, _ := io.ReadAll(rs.Body)

	var jsonResponse json.AuthorizationRS
	if jsonErr := jsonEncoding.Unmarshal(bodyBytes, &jsonResponse); jsonErr != nil {
		return json.AuthorizationRS{}, schema.PaymentAuthorityError{Kind: schema.AuthorityErrorMalformed, Cause: jsonErr}
	}

	if message := jsonResponse.ErrorMessage(); message != "" {
		return json.AuthorizationRS{}, schema.PaymentAuthorityError{Kind: schema.AuthorityErrorDeclined, Cause: errors.New(message)}
	}

	if jsonResponse.Id == "" {
		return json.AuthorizationRS{}, schema.PaymentAuthorityError{
			Kind:  schema.AuthorityErrorMalformed,
			Cause: errors.New("authorization response carries no id"),
		}
	}

	return jsonResponse, nil
}

func (a *authorizeRequest) requestBody() []byte {
	body, _ := jsonEncoding.Marshal(&json.AuthorizationRQ{
		Amount:             a.params.Amount,
		Currency:           a.params.Currency,
		PaymentMethodTypes: []string{mapping.ToAuthorityMethod(a.params.Method)},
		ReturnUrl:          a.params.ReturnUrl,
	})

	return body
}

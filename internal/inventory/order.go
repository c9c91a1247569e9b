package inventory

import (
	"bytes"
	"context"
	jsonEncoding "encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"bitbucket.org/crgw/booking-hub/internal/inventory/json"
	"bitbucket.org/crgw/booking-hub/internal/schema"
	"bitbucket.org/crgw/booking-hub/internal/tools/converting"
	"bitbucket.org/crgw/booking-hub/internal/tools/requesting"
	"github.com/rs/zerolog"
)

// balancePaymentType is the authority's name for settling an order against
// the account balance held with it.
const balancePaymentType = "balance"

type orderRequest struct {
	apiUrl   string
	apiToken string
	timeout  time.Duration
	params   schema.OrderParams
	logger   *zerolog.Logger
}

func (o *orderRequest) Execute(ctx context.Context, httpTransport *http.Transport) (schema.Order, error) {
	client := &http.Client{
		Timeout: o.timeout,
		Transport: &requesting.InterceptorTransport{
			Transport: httpTransport,
			Middlewares: []requesting.TransportMiddleware{
				requesting.NewLoggingTransportMiddleware(o.logger),
			},
		},
	}

	response, err := o.makeRequest(ctx, client)
	if err != nil {
		return schema.Order{}, err
	}

	return schema.Order{
		Id:               response.Data.Id,
		BookingReference: converting.Unwrap(response.Data.BookingReference),
		Status:           response.Data.Status,
	}, nil
}

func (o *orderRequest) makeRequest(ctx context.Context, client *http.Client) (json.OrderRS, error) {
	body := bytes.NewBuffer(o.requestBody())

	url := o.apiUrl + "/v1/orders"

	httpRequest, _ := http.NewRequestWithContext(ctx, http.MethodPost, url, body)
	httpRequest.Header.Set("Content-Type", "application/json")
	httpRequest.Header.Set("Authorization", "Bearer "+o.apiToken)

	rs, callErr := requesting.RequestErrors(client.Do(httpRequest))
	if callErr != nil {
		return json.OrderRS{}, schema.BookingAuthorityError{Kind: callErr.Kind, Cause: callErr.Err}
	}
	defer rs.Body.Close()

	bodyBytes, _ := io.ReadAll(rs.Body)

	var jsonResponse json.OrderRS
	if jsonErr := jsonEncoding.Unmarshal(bodyBytes, &jsonResponse); jsonErr != nil {
		return json.OrderRS{}, schema.BookingAuthorityError{Kind: schema.AuthorityErrorMalformed, Cause: jsonErr}
	}

	if message := jsonResponse.ErrorMessage(); message != "" {
		return json.OrderRS{}, schema.BookingAuthorityError{Kind: schema.AuthorityErrorDeclined, Cause: errors.New(message)}
	}

	if jsonResponse.Data.Id == "" {
		return json.OrderRS{}, schema.BookingAuthorityError{
			Kind:  schema.AuthorityErrorMalformed,
			Cause: errors.New("order response carries no id"),
		}
	}

	return jsonResponse, nil
}

func (o *orderRequest) requestBody() []byte {
	passengers := make([]json.OrderRQPassenger, 0, len(o.params.Passengers))

	// the primary passenger's address covers anyone submitted without one
	primaryEmail := ""
	if len(o.params.Passengers) > 0 {
		primaryEmail = string(o.params.Passengers[0].Email)
	}

	for _, passenger := range o.params.Passengers {
		email := string(passenger.Email)
		if email == "" {
			email = primaryEmail
		}

		passengers = append(passengers, json.OrderRQPassenger{
			Type:        string(passenger.Type),
			Title:       passenger.Title,
			GivenName:   passenger.GivenName,
			FamilyName:  passenger.FamilyName,
			Email:       email,
			PhoneNumber: passenger.Phone,
			BornOn:      passenger.BirthDate,
		})
	}

	body, _ := jsonEncoding.Marshal(&json.OrderRQ{
		SelectedOffers: []string{o.params.OfferId},
		Passengers:     passengers,
		Payments: []json.OrderRQPayment{{
			Type:     balancePaymentType,
			Amount:   o.params.Payment.Amount,
			Currency: o.params.Payment.Currency,
		}},
	})

	return body
}

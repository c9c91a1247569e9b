package inventory_test

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"bitbucket.org/crgw/booking-hub/internal/config"
	"bitbucket.org/crgw/booking-hub/internal/inventory"
	"bitbucket.org/crgw/booking-hub/internal/schema"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func testClient(url string) *inventory.Client {
	return inventory.New(&config.Config{
		InventoryApiUrl:     url,
		InventoryApiToken:   "inv_test_token",
		ExternalCallTimeout: 2000,
	})
}

func TestGetOffer(t *testing.T) {
	out := &bytes.Buffer{}
	log := zerolog.New(out)

	t.Run("should fetch and parse an offer quote", func(t *testing.T) {
		handlerFuncCalledCount := 0

		testServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			handlerFuncCalledCount++

			assert.Equal(t, "/v1/offers/off_123", r.RequestURI)
			assert.Equal(t, "GET", r.Method)
			assert.Equal(t, "Bearer inv_test_token", r.Header.Get("Authorization"))

			w.WriteHeader(http.StatusOK)
			w.Write([]byte(`{"data":{"id":"off_123","base_amount":"100.00","tax_amount":"20.00","currency":"USD"}}`))
		}))
		defer testServer.Close()

		offer, err := testClient(testServer.URL).GetOffer(context.Background(), "off_123", &log)

		assert.Nil(t, err)
		assert.Equal(t, 1, handlerFuncCalledCount)
		assert.Equal(t, schema.OfferQuote{
			Id:         "off_123",
			BaseAmount: "100.00",
			TaxAmount:  "20.00",
			Currency:   "USD",
		}, offer)
	})

	t.Run("should report a missing offer distinctly", func(t *testing.T) {
		testServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"errors":[{"code":"not_found","message":"Offer expired or unknown"}]}`))
		}))
		defer testServer.Close()

		_, err := testClient(testServer.URL).GetOffer(context.Background(), "off_gone", &log)

		assert.ErrorIs(t, err, schema.ErrOfferNotFound)
	})

	t.Run("should classify other authority failures", func(t *testing.T) {
		tests := []struct {
			name         string
			responseCode int
			responseBody string
			expectedKind schema.AuthorityErrorKind
		}{
			{
				name:         "server error",
				responseCode: http.StatusInternalServerError,
				responseBody: `{}`,
				expectedKind: schema.AuthorityErrorDeclined,
			},
			{
				name:         "error envelope",
				responseCode: http.StatusOK,
				responseBody: `{"errors":[{"code":"stale","message":"Offer no longer priceable"}]}`,
				expectedKind: schema.AuthorityErrorDeclined,
			},
			{
				name:         "malformed body",
				responseCode: http.StatusOK,
				responseBody: `not json`,
				expectedKind: schema.AuthorityErrorMalformed,
			},
		}

		for _, test := range tests {
			t.Run(test.name, func(t *testing.T) {
				testServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
					w.WriteHeader(test.responseCode)
					w.Write([]byte(test.responseBody))
				}))
				defer testServer.Close()

				_, err := testClient(testServer.URL).GetOffer(context.Background(), "off_123", &log)

				var authorityErr schema.BookingAuthorityError
				assert.True(t, errors.As(err, &authorityErr))
				assert.Equal(t, test.expectedKind, authorityErr.Kind)
			})
		}
	})
}

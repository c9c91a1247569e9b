package requesting_test

import (
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"

	"bitbucket.org/crgw/booking-hub/internal/schema"
	"bitbucket.org/crgw/booking-hub/internal/tools/requesting"
	"github.com/stretchr/testify/assert"
)

type timeoutError struct{}

func (timeoutError) Error() string { return "deadline exceeded" }

func (timeoutError) Timeout() bool { return true }

type closeTrackingBody struct {
	io.Reader
	closed bool
}

func (b *closeTrackingBody) Close() error {
	b.closed = true

	return nil
}

func TestRequestErrors(t *testing.T) {
	t.Run("should pass a successful response through", func(t *testing.T) {
		response := &http.Response{StatusCode: http.StatusOK, Body: io.NopCloser(strings.NewReader("{}"))}

		result, callErr := requesting.RequestErrors(response, nil)

		assert.Nil(t, callErr)
		assert.Equal(t, response, result)
	})

	t.Run("should classify transport errors by kind", func(t *testing.T) {
		tests := []struct {
			name         string
			err          error
			expectedKind schema.AuthorityErrorKind
		}{
			{
				name:         "deadline exceeded",
				err:          timeoutError{},
				expectedKind: schema.AuthorityErrorTimeout,
			},
			{
				name:         "connection refused",
				err:          errors.New("dial tcp: connection refused"),
				expectedKind: schema.AuthorityErrorConnection,
			},
		}

		for _, test := range tests {
			t.Run(test.name, func(t *testing.T) {
				result, callErr := requesting.RequestErrors(nil, test.err)

				assert.Nil(t, result)
				assert.Equal(t, test.expectedKind, callErr.Kind)
			})
		}
	})

	t.Run("should close the body of a declined response", func(t *testing.T) {
		body := &closeTrackingBody{Reader: strings.NewReader(`{"errors":[]}`)}
		response := &http.Response{StatusCode: http.StatusUnprocessableEntity, Body: body}

		result, callErr := requesting.RequestErrors(response, nil)

		assert.Nil(t, result)
		assert.Equal(t, schema.AuthorityErrorDeclined, callErr.Kind)
		assert.True(t, body.closed)
	})
}

package requesting

import (
	"fmt"
	"net/http"
	"os"

	"bitbucket.org/crgw/booking-hub/internal/schema"
)

// CallError classifies a failed outbound authority call so the caller can
// wrap it into its own typed error. Timeouts are surfaced as a distinct
// kind rather than folded into connection failures.
type CallError struct {
	Kind schema.AuthorityErrorKind
	Err  error
}

func (e *CallError) Error() string {
	return fmt.Sprintf("%s: %v", e.Kind, e.Err)
}

func (e *CallError) Unwrap() error {
	return e.Err
}

func isValidResponse(code int) bool {
	return code >= 200 && code <= 299
}

// RequestErrors folds a (response, error) pair from http.Client.Do into
// either a usable response or a classified CallError. Non-2xx statuses
// count as the authority declining the request.
func RequestErrors(response *http.Response, err error) (*http.Response, *CallError) {
	if err != nil {
		if os.IsTimeout(err) {
			return nil, &CallError{Kind: schema.AuthorityErrorTimeout, Err: err}
		}

		return nil, &CallError{Kind: schema.AuthorityErrorConnection, Err: err}
	}

	if !isValidResponse(response.StatusCode) {
		// the response is swallowed here, nobody else can close it
		response.Body.Close()

		return nil, &CallError{
			Kind: schema.AuthorityErrorDeclined,
			Err:  fmt.Errorf("authority returned status code %d", response.StatusCode),
		}
	}

	return response, nil
}

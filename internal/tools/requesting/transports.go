package requesting

import (
	"net/http"
	"time"

	"github.com/rs/zerolog"
)

type TransportMiddleware func(http.RoundTripper) http.RoundTripper

// InterceptorTransport lets callers stack round-tripper middlewares on a
// shared base transport per request.
type InterceptorTransport struct {
	Transport   http.RoundTripper
	Middlewares []TransportMiddleware
}

func (t *InterceptorTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	transport := t.Transport
	for _, middleware := range t.Middlewares {
		transport = middleware(transport)
	}

	resp, err := transport.RoundTrip(req)
	if err != nil {
		return nil, err
	}

	return resp, nil
}

type LoggingTransportMiddleware struct {
	Transport http.RoundTripper
	log       *zerolog.Logger
}

func NewLoggingTransportMiddleware(log *zerolog.Logger) TransportMiddleware {
	return func(rt http.RoundTripper) http.RoundTripper {
		return &LoggingTransportMiddleware{
			log:       log,
			Transport: rt,
		}
	}
}

func (t *LoggingTransportMiddleware) RoundTrip(req *http.Request) (*http.Response, error) {
	startTime := time.Now()

	message := t.log.Info().
		Str("label", "outgoing-request").
		Str("method", req.Method).
		Str("url", req.URL.String())

	defer func() {
		message.
			Float64("duration", time.Since(startTime).Seconds()).
			Msg("")
	}()

	resp, err := t.Transport.RoundTrip(req)
	if err != nil {
		message.Str("error", err.Error())
		return nil, err
	}

	message.Int("code", resp.StatusCode)

	return resp, nil
}

package airports

import (
	"context"
	jsonEncoding "encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/go-querystring/query"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"bitbucket.org/crgw/booking-hub/internal/config"
	"bitbucket.org/crgw/booking-hub/internal/schema"
	"bitbucket.org/crgw/booking-hub/internal/tools/caching"
	"bitbucket.org/crgw/booking-hub/internal/tools/requesting"
)

// Client proxies the external airport fuzzy-search index. The index is
// stateless string matching, so identical queries are served from redis
// for a while instead of going upstream every keystroke.
type Client struct {
	apiUrl        string
	apiToken      string
	timeout       time.Duration
	cacheTtl      time.Duration
	cache         *caching.Cacher
	httpTransport *http.Transport
}

type searchParams struct {
	Query string `url:"query"`
	Limit int    `url:"limit"`
}

type searchRS struct {
	Data []searchRSPlace `json:"data"`
}

type searchRSPlace struct {
	IataCode string `json:"iata_code"`
	Name     string `json:"name"`
	CityName string `json:"city_name"`
}

func New(cfg *config.Config, redisClient *redis.Client) *Client {
	transport := http.DefaultTransport.(*http.Transport)
	transport.DisableKeepAlives = true

	return &Client{
		apiUrl:        cfg.AirportsApiUrl,
		apiToken:      cfg.InventoryApiToken,
		timeout:       time.Duration(cfg.ExternalCallTimeout) * time.Millisecond,
		cacheTtl:      time.Duration(cfg.AirportsCacheTtl) * time.Second,
		cache:         caching.NewRedisCache(redisClient),
		httpTransport: transport,
	}
}

func (c *Client) Search(ctx context.Context, searchQuery string, limit int, logger *zerolog.Logger) ([]schema.Airport, error) {
	cacheKey := fmt.Sprintf("airports:search:%d:%s", limit, searchQuery)

	var cached []schema.Airport
	if c.cache.Fetch(ctx, cacheKey, &cached) {
		return cached, nil
	}

	airports, err := c.search(ctx, searchQuery, limit, logger)
	if err != nil {
		return nil, err
	}

	_ = c.cache.Store(ctx, cacheKey, airports, c.cacheTtl)

	return airports, nil
}

func (c *Client) search(ctx context.Context, searchQuery string, limit int, logger *zerolog.Logger) ([]schema.Airport, error) {
	client := &http.Client{
		Timeout: c.timeout,
		Transport: &requesting.InterceptorTransport{
			Transport: c.httpTransport,
			Middlewares: []requesting.TransportMiddleware{
				requesting.NewLoggingTransportMiddleware(logger),
			},
		},
	}

	values, _ := query.Values(searchParams{
		Query: searchQuery,
		Limit: limit,
	})

	url := c.apiUrl + "/v1/places?" + values.Encode()

	httpRequest, _ := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	httpRequest.Header.Set("Authorization", "Bearer "+c.apiToken)

	rs, callErr := requesting.RequestErrors(client.Do(httpRequest))
	if callErr != nil {
		return nil, callErr
	}
	defer rs.Body.Close()

	bodyBytes, _ := io.ReadAll(rs.Body)

	var jsonResponse searchRS
	if err := jsonEncoding.Unmarshal(bodyBytes, &jsonResponse); err != nil {
		return nil, err
	}

	airports := make([]schema.Airport, 0, len(jsonResponse.Data))
	for _, place := range jsonResponse.Data {
		airports = append(airports, schema.Airport{
			IataCode: place.IataCode,
			Name:     place.Name,
			CityName: place.CityName,
		})
	}

	return airports, nil
}

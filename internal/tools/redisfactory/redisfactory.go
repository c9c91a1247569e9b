package redisfactory

import (
	"time"

	"github.com/redis/go-redis/v9"
)

// Factory hands out the redis connections this service uses. Only the
// airport-search response cache needs one today; a second backend gets a
// second constructor here, not a second ParseURL call at the use site.
type Factory struct {
	airportsCache *redis.Client
}

func New(airportsCacheUri string) (*Factory, error) {
	opt, err := redis.ParseURL(airportsCacheUri)
	if err != nil {
		return nil, err
	}

	opt.DialTimeout = 4 * time.Second
	opt.ReadTimeout = 3 * time.Second
	opt.WriteTimeout = 3 * time.Second

	return &Factory{
		airportsCache: redis.NewClient(opt),
	}, nil
}

func (f *Factory) AirportsCacheClient() *redis.Client {
	return f.airportsCache
}

package config

import (
	"github.com/kelseyhightower/envconfig"

	"bitbucket.org/crgw/booking-hub/internal/schema"
)

// Config carries everything the process reads from the environment.
// Processed once at startup; both authority credentials are required and
// their absence is fatal there, never surfaced as a per-request error.
type Config struct {
	Port            string `envconfig:"PORT" default:"8080"`
	Env             string `envconfig:"ENV" default:"development"`
	LogLevel        string `envconfig:"LOG_LEVEL" default:"info"`
	OpenapiLocation string `envconfig:"OPENAPI_LOCATION" default:"./api/openapi.json"`

	InventoryApiUrl   string `envconfig:"INVENTORY_API_URL" default:"https://api.inventory.example.com"`
	InventoryApiToken string `envconfig:"INVENTORY_API_TOKEN" required:"true"`

	PaymentApiUrl    string `envconfig:"PAYMENT_API_URL" default:"https://api.payments.example.com"`
	PaymentSecretKey string `envconfig:"PAYMENT_SECRET_KEY" required:"true"`

	// The airport search lives on the inventory provider unless pointed
	// elsewhere.
	AirportsApiUrl        string `envconfig:"AIRPORTS_API_URL"`
	AirportsCacheRedisUri string `envconfig:"AIRPORTS_CACHE_REDIS_URI" default:"redis://localhost:6379/0"`
	AirportsCacheTtl      int    `envconfig:"AIRPORTS_CACHE_TTL_SECONDS" default:"3600"`

	// Upper bound for every outbound authority call, in milliseconds.
	ExternalCallTimeout int `envconfig:"EXTERNAL_CALL_TIMEOUT_MS" default:"15000"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, schema.ConfigurationError{Cause: err}
	}

	if cfg.AirportsApiUrl == "" {
		cfg.AirportsApiUrl = cfg.InventoryApiUrl
	}

	return &cfg, nil
}

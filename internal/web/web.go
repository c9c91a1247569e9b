package web

import (
	"net/http"
	"os"
	"time"

	"github.com/gin-contrib/pprof"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"bitbucket.org/crgw/booking-hub/internal/airports"
	"bitbucket.org/crgw/booking-hub/internal/booking"
	"bitbucket.org/crgw/booking-hub/internal/config"
	"bitbucket.org/crgw/booking-hub/internal/inventory"
	"bitbucket.org/crgw/booking-hub/internal/payments"
	"bitbucket.org/crgw/booking-hub/internal/tools/redisfactory"
)

func SetupRouter(log *zerolog.Logger, cfg *config.Config, redisFactory *redisfactory.Factory) *gin.Engine {
	startTime := time.Now()

	openApiContent, _ := os.ReadFile(cfg.OpenapiLocation)

	router := gin.New()

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router.
		Use(StartRequest).
		Use(CorrelationId).
		Use(RegisterLogger(log)).
		Use(TraceLog).
		Use(PanicRecovery).
		Use(OpenapiValidator(openApiContent))

	router.GET("/status", func(c *gin.Context) {
		response := struct {
			Uptime float64 `json:"uptime"`
		}{
			Uptime: time.Since(startTime).Seconds(),
		}

		c.JSON(http.StatusOK, response)
	})

	router.GET("/openapi.json", func(c *gin.Context) {
		c.Header("Content-Type", "application/json")
		c.String(http.StatusOK, string(openApiContent))
	})

	pprof.Register(router)

	inventoryClient := inventory.New(cfg)
	pipeline := booking.NewPipeline(inventoryClient, payments.New(cfg), inventoryClient)

	booking.RegisterRoutes(router, pipeline)
	airports.RegisterRoutes(router, airports.New(cfg, redisFactory.AirportsCacheClient()))

	return router
}

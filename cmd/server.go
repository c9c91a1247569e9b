//go:build !integration

package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"bitbucket.org/crgw/booking-hub/internal/config"
	"bitbucket.org/crgw/booking-hub/internal/tools/logging"
	"bitbucket.org/crgw/booking-hub/internal/tools/redisfactory"
	"bitbucket.org/crgw/booking-hub/internal/web"
)

func serverApp(httpServer *http.Server, logger *zerolog.Logger) int {
	shutdown := false
	done := make(chan error, 1)
	stop := make(chan os.Signal, 1)
	go func() {
		logger.
			Info().
			Msg("Listening on address " + httpServer.Addr)
		done <- httpServer.ListenAndServe()
	}()
	go func() {
		// Wait for stop
		<-stop
		shutdown = true
		logger.Info().Msg("Shutting down server...")
		_ = httpServer.Shutdown(context.Background())
	}()

	// Notify stop channel if SIGINT or SIGTERM is received
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	err := <-done
	if err != nil && !shutdown {
		logger.
			Error().
			Err(err).
			Msg("Server failed")
		return 1
	}
	return 0
}

func main() {
	_ = godotenv.Load(".env")

	cfg, err := config.Load()
	if err != nil {
		// a missing authority credential must kill the process here, not
		// surface per request
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	log := logging.New(cfg.LogLevel)

	redisFactory, err := redisfactory.New(cfg.AirportsCacheRedisUri)
	if err != nil {
		log.Error().Err(err).Msg("Failed to set up redis")
		os.Exit(1)
	}

	appRouter := web.SetupRouter(log, cfg, redisFactory)

	var host string
	if os.Getenv("TEST") == "true" {
		host = "localhost"
	}

	httpServer := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", host, cfg.Port),
		Handler: appRouter,
	}

	os.Exit(serverApp(httpServer, log))
}

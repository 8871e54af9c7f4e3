package main

import (
	"context"
	"net/http"
	"os"

	"presentation-gallery/pkg/catalog"
	"presentation-gallery/pkg/config"
	"presentation-gallery/pkg/handlers"
	"presentation-gallery/pkg/logging"
	"presentation-gallery/pkg/provider"
	"presentation-gallery/pkg/services"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		l := logging.L()
		l.Fatal().Err(err).Msg("failed to load configuration")
	}
	logging.Configure(cfg.LogLevel)

	// Initialize the media provider and gallery service
	prov, err := provider.New(context.Background(), cfg)
	if err != nil {
		l := logging.L()
		l.Fatal().Err(err).Msg("failed to initialize media provider")
	}
	svc := services.NewService(catalog.Default(), prov)

	// Set up HTTP handlers
	h := handlers.New(svc, prov, catalog.Default())

	// Start server
	cfg.PrintServerStartMessage()
	if err := http.ListenAndServe(cfg.ServerAddress(), h.Router()); err != nil {
		l := logging.L()
		l.Error().Err(err).Msg("server error")
		os.Exit(1)
	}
}

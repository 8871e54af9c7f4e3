package cmd

import (
	"context"
	"net/http"
	"os"

	"github.com/spf13/cobra"

	"presentation-gallery/pkg/catalog"
	"presentation-gallery/pkg/config"
	"presentation-gallery/pkg/handlers"
	"presentation-gallery/pkg/logging"
)

// newServeCmd creates a new command for serving the web application
func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the web server",
		Long:  `Start the web server to serve the gallery content via HTTP.`,
		Run: func(cmd *cobra.Command, args []string) {
			cfg, err := LoadConfig()
			if err != nil {
				l := logging.L()
				l.Fatal().Err(err).Msg("failed to load configuration")
			}
			logging.Configure(cfg.LogLevel)

			svc, prov, err := newService(context.Background(), cfg)
			if err != nil {
				l := logging.L()
				l.Fatal().Err(err).Msg("failed to initialize media provider")
			}

			h := handlers.New(svc, prov, catalog.Default())
			serveWebsite(cfg, h)
		},
	}
}

// serveWebsite runs the web server to serve the gallery content
func serveWebsite(cfg *config.Config, h *handlers.Handlers) {
	cfg.PrintServerStartMessage()
	if err := http.ListenAndServe(cfg.ServerAddress(), h.Router()); err != nil {
		l := logging.L()
		l.Error().Err(err).Msg("server error")
		os.Exit(1)
	}
}

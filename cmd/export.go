package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"presentation-gallery/pkg/logging"
	"presentation-gallery/pkg/models"
)

// newExportCmd creates a new command for exporting gallery data
func newExportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "export [format]",
		Short: "Export gallery data",
		Long:  `Export the aggregated gallery feed in the specified format. Currently supported formats: json.`,
		Args:  cobra.MaximumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			cfg, err := LoadConfig()
			if err != nil {
				l := logging.L()
				l.Fatal().Err(err).Msg("failed to load configuration")
			}
			logging.Configure(cfg.LogLevel)

			svc, _, err := newService(context.Background(), cfg)
			if err != nil {
				l := logging.L()
				l.Fatal().Err(err).Msg("failed to initialize media provider")
			}

			records, err := svc.Aggregate(context.Background())
			if err != nil {
				l := logging.L()
				l.Fatal().Err(err).Msg("aggregation failed")
			}

			format := "json"
			if len(args) > 0 {
				format = args[0]
			}
			exportData(format, records)
		},
	}
}

// exportData exports gallery data in the specified format
func exportData(format string, records []models.MediaRecord) {
	if format != "json" {
		fmt.Printf("Unsupported export format: %s\n", format)
		fmt.Println("Supported formats: json")
		os.Exit(1)
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		fmt.Printf("Error marshaling data: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(string(data))
}

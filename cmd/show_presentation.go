package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"presentation-gallery/pkg/logging"
	"presentation-gallery/pkg/models"
)

// newShowPresentationCmd creates a new command for showing presentation details
func newShowPresentationCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show-presentation [key]",
		Short: "Show media in a specific presentation",
		Long:  `Show detailed information about the media of a specific presentation identified by its catalog key.`,
		Args:  cobra.ExactArgs(1),
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

			records, err := svc.AggregatePresentation(context.Background(), args[0])
			if err != nil {
				fmt.Printf("Error: %v\n", err)
				os.Exit(1)
			}
			showPresentation(args[0], records)
		},
	}
}

// showPresentation displays details about a specific presentation's media
func showPresentation(key string, records []models.MediaRecord) {
	fmt.Printf("Presentation: %s\n", key)
	fmt.Printf("Media items: %d\n", len(records))
	fmt.Println("================")

	for i, r := range records {
		fmt.Printf("%d. %s (%s)\n", i+1, r.Title, r.Type)
		if r.IsImage() {
			fmt.Printf("   Source: %s\n", r.HQSrc)
		} else {
			fmt.Printf("   Source: %s\n", r.Src)
			if r.Duration != "" {
				fmt.Printf("   Duration: %s\n", r.Duration)
			}
		}
		fmt.Printf("   Created: %s\n", r.CreatedTime.Format("2006-01-02 15:04:05"))
		fmt.Println()
	}
}

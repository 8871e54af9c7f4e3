package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"presentation-gallery/pkg/catalog"
	"presentation-gallery/pkg/logging"
	"presentation-gallery/pkg/models"
)

// newListPresentationsCmd creates a new command for listing presentations
func newListPresentationsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list-presentations",
		Short: "List all presentations",
		Long:  `List all presentations in the catalog with the number of images and videos in each.`,
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
			listPresentations(records)
		},
	}
}

// listPresentations displays all presentations and their media counts
func listPresentations(records []models.MediaRecord) {
	images := make(map[string]int)
	videos := make(map[string]int)
	for _, r := range records {
		if r.IsImage() {
			images[r.Presentation]++
		} else {
			videos[r.Presentation]++
		}
	}

	fmt.Println("Presentations:")
	fmt.Println("==============")

	for _, p := range catalog.Default() {
		fmt.Printf("%s\n", p.Name)
		fmt.Printf("  Key: %s\n", p.Key)
		fmt.Printf("  Images: %d, Videos: %d\n", images[p.Key], videos[p.Key])
		fmt.Println()
	}

	fmt.Printf("Total: %d media items across %d presentations\n", len(records), len(catalog.Default()))
}

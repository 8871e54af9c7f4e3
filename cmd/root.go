package cmd

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"presentation-gallery/pkg/catalog"
	"presentation-gallery/pkg/config"
	"presentation-gallery/pkg/provider"
	"presentation-gallery/pkg/services"
)

// Configuration flags
var (
	portNumber      string
	providerName    string
	credentialsFile string
	bucketName      string
)

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "presentation-gallery",
		Short: "Presentation Gallery aggregates and serves event media galleries",
		Long: `Presentation Gallery is a command line application that aggregates images and
videos stored in cloud folders, grouped by named presentations, and serves
them via a web gallery with a JSON feed and streaming proxies.`,
	}

	// Define persistent flags that will be available for all commands
	rootCmd.PersistentFlags().StringVarP(&portNumber, "port", "p", "", "Set the PORT (overrides environment variable)")
	rootCmd.PersistentFlags().StringVarP(&providerName, "provider", "m", "", "Set the MEDIA_PROVIDER (overrides environment variable)")
	rootCmd.PersistentFlags().StringVarP(&credentialsFile, "credentials", "c", "", "Set the CREDENTIALS_FILE (overrides environment variable)")
	rootCmd.PersistentFlags().StringVarP(&bucketName, "bucket", "b", "", "Set the BUCKET_NAME (overrides environment variable)")

	// Add commands to root
	rootCmd.AddCommand(newListPresentationsCmd())
	rootCmd.AddCommand(newShowPresentationCmd())
	rootCmd.AddCommand(newExportCmd())
	rootCmd.AddCommand(newServeCmd())

	return rootCmd
}

// LoadConfig loads configuration with respect to command line flags
func LoadConfig() (*config.Config, error) {
	// Set environment variables from flags if provided
	if portNumber != "" {
		os.Setenv("PORT", portNumber)
	}

	if providerName != "" {
		os.Setenv("MEDIA_PROVIDER", providerName)
	}

	if credentialsFile != "" {
		os.Setenv("CREDENTIALS_FILE", credentialsFile)
	}

	if bucketName != "" {
		os.Setenv("BUCKET_NAME", bucketName)
	}

	// Load configuration from environment variables (potentially set above)
	return config.Load()
}

// newService builds the media provider and gallery service for a command run.
func newService(ctx context.Context, cfg *config.Config) (*services.Service, provider.Provider, error) {
	prov, err := provider.New(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}
	return services.NewService(catalog.Default(), prov), prov, nil
}

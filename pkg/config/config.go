package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Provider names accepted in MEDIA_PROVIDER.
const (
	ProviderDrive = "drive"
	ProviderGCS   = "gcs"
)

// Config holds all configuration for the application
type Config struct {
	Port            string
	Provider        string
	CredentialsFile string
	BucketName      string
	LogLevel        string
}

// ErrCredentialsNotFound is returned when the service account credentials
// file does not exist. This is the one fatal startup condition.
var ErrCredentialsNotFound = errors.New("service account credentials file not found")

// ErrBucketNameNotSet is returned when the GCS provider is selected without a
// BUCKET_NAME environment variable.
var ErrBucketNameNotSet = errors.New("BUCKET_NAME environment variable not set")

// ErrUnknownProvider is returned for an unrecognized MEDIA_PROVIDER value.
var ErrUnknownProvider = errors.New("unknown MEDIA_PROVIDER")

// Load loads configuration from a .env file (if present) and environment
// variables, and validates the startup requirements of the selected provider.
func Load() (*Config, error) {
	// Missing .env is fine; environment variables win either way.
	_ = godotenv.Load()

	cfg := &Config{
		Port:            os.Getenv("PORT"),
		Provider:        os.Getenv("MEDIA_PROVIDER"),
		CredentialsFile: os.Getenv("CREDENTIALS_FILE"),
		BucketName:      os.Getenv("BUCKET_NAME"),
		LogLevel:        os.Getenv("LOG_LEVEL"),
	}

	if cfg.Port == "" {
		cfg.Port = "3000"
	}
	if cfg.Provider == "" {
		cfg.Provider = ProviderDrive
	}
	if cfg.CredentialsFile == "" {
		cfg.CredentialsFile = "./apikey.json"
	}

	switch cfg.Provider {
	case ProviderDrive:
		if _, err := os.Stat(cfg.CredentialsFile); err != nil {
			return nil, fmt.Errorf("%w: %s", ErrCredentialsNotFound, cfg.CredentialsFile)
		}
	case ProviderGCS:
		if cfg.BucketName == "" {
			return nil, ErrBucketNameNotSet
		}
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownProvider, cfg.Provider)
	}

	return cfg, nil
}

// ServerAddress returns the server address with port
func (c *Config) ServerAddress() string {
	return fmt.Sprintf(":%s", c.Port)
}

// PrintServerStartMessage prints a message when the server starts
func (c *Config) PrintServerStartMessage() {
	fmt.Printf("Starting server at port %s\n", c.Port)
	fmt.Printf("Gallery URL: http://localhost:%s/\n", c.Port)
	fmt.Printf("Feed URL: http://localhost:%s/api/gallery\n", c.Port)
}

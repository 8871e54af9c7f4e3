package provider

import (
	"context"
	"fmt"
	"io"
	"time"

	"presentation-gallery/pkg/config"
)

// File is the provider-neutral metadata for one stored file.
type File struct {
	ID             string
	Name           string
	MimeType       string
	CreatedTime    time.Time
	DurationMillis int64 // 0 when unknown
}

// Provider lists and reads media files from an external storage service.
type Provider interface {
	// ListFolder returns the not-trashed files in a folder, newest first.
	ListFolder(ctx context.Context, folderID string) ([]File, error)
	// ReadFile opens a file's byte stream and reports its content type.
	ReadFile(ctx context.Context, id string) (io.ReadCloser, string, error)
	// ThumbnailURL derives the thumbnail URL for a file id.
	ThumbnailURL(id string) string
	// PreviewURL derives the embeddable playback URL for a video file id.
	PreviewURL(id string) string
}

// New builds the provider selected by the configuration.
func New(ctx context.Context, cfg *config.Config) (Provider, error) {
	switch cfg.Provider {
	case config.ProviderDrive:
		return NewDrive(ctx, cfg.CredentialsFile)
	case config.ProviderGCS:
		return NewGCS(ctx, cfg.BucketName)
	default:
		return nil, fmt.Errorf("%w: %s", config.ErrUnknownProvider, cfg.Provider)
	}
}

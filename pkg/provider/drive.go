package provider

import (
	"context"
	"fmt"
	"io"
	"time"

	drive "google.golang.org/api/drive/v3"
	"google.golang.org/api/option"
)

// Drive reads media from Google Drive folders using a read-only
// service account.
type Drive struct {
	svc *drive.Service
}

// NewDrive builds a Drive provider from a service account credentials file.
func NewDrive(ctx context.Context, credentialsFile string) (*Drive, error) {
	svc, err := drive.NewService(ctx,
		option.WithCredentialsFile(credentialsFile),
		option.WithScopes(drive.DriveReadonlyScope))
	if err != nil {
		return nil, fmt.Errorf("failed to create drive service: %w", err)
	}
	return &Drive{svc: svc}, nil
}

// ListFolder returns the not-trashed files in a folder, newest first.
func (d *Drive) ListFolder(ctx context.Context, folderID string) ([]File, error) {
	query := fmt.Sprintf("'%s' in parents and trashed = false", folderID)
	res, err := d.svc.Files.List().
		Q(query).
		Fields("files(id, name, mimeType, videoMediaMetadata, createdTime)").
		OrderBy("createdTime desc").
		PageSize(1000).
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("failed to list folder %s: %w", folderID, err)
	}

	files := make([]File, 0, len(res.Files))
	for _, f := range res.Files {
		// Drive reports RFC3339 creation times; a file with an unparsable
		// timestamp sorts to the end rather than being dropped.
		created, _ := time.Parse(time.RFC3339, f.CreatedTime)

		var durationMillis int64
		if f.VideoMediaMetadata != nil {
			durationMillis = f.VideoMediaMetadata.DurationMillis
		}

		files = append(files, File{
			ID:             f.Id,
			Name:           f.Name,
			MimeType:       f.MimeType,
			CreatedTime:    created,
			DurationMillis: durationMillis,
		})
	}
	return files, nil
}

// ReadFile opens a file's byte stream and reports its content type.
func (d *Drive) ReadFile(ctx context.Context, id string) (io.ReadCloser, string, error) {
	resp, err := d.svc.Files.Get(id).Context(ctx).Download()
	if err != nil {
		return nil, "", fmt.Errorf("failed to download file %s: %w", id, err)
	}
	return resp.Body, resp.Header.Get("Content-Type"), nil
}

// ThumbnailURL derives the public Drive thumbnail URL for a file id.
func (d *Drive) ThumbnailURL(id string) string {
	return fmt.Sprintf("https://drive.google.com/thumbnail?id=%s&sz=w500", id)
}

// PreviewURL derives the embeddable Drive preview URL for a file id.
func (d *Drive) PreviewURL(id string) string {
	return fmt.Sprintf("https://drive.google.com/file/d/%s/preview", id)
}

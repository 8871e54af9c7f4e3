package provider

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"sort"
	"strconv"

	"cloud.google.com/go/storage"
	"google.golang.org/api/iterator"
)

// GCS reads media from a Cloud Storage bucket where each "folder id" is an
// object name prefix. Video durations come from the duration-millis object
// metadata key when the uploader recorded one.
type GCS struct {
	client *storage.Client
	bucket string
}

// NewGCS builds a GCS provider using application default credentials.
func NewGCS(ctx context.Context, bucketName string) (*GCS, error) {
	client, err := storage.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create storage client: %w", err)
	}
	return &GCS{client: client, bucket: bucketName}, nil
}

// ListFolder returns the files under the folder prefix, newest first.
func (g *GCS) ListFolder(ctx context.Context, folderID string) ([]File, error) {
	it := g.client.Bucket(g.bucket).Objects(ctx, &storage.Query{Prefix: folderID + "/"})

	var files []File
	for {
		attrs, err := it.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to list folder %s: %w", folderID, err)
		}

		// Skip the zero-byte placeholder some tools create for the folder.
		if attrs.Name == folderID+"/" {
			continue
		}

		var durationMillis int64
		if v := attrs.Metadata["duration-millis"]; v != "" {
			durationMillis, _ = strconv.ParseInt(v, 10, 64)
		}

		files = append(files, File{
			ID:             attrs.Name,
			Name:           path.Base(attrs.Name),
			MimeType:       attrs.ContentType,
			CreatedTime:    attrs.Created,
			DurationMillis: durationMillis,
		})
	}

	// Object listing is lexicographic; match the newest-first contract.
	sort.Slice(files, func(i, j int) bool {
		return files[i].CreatedTime.After(files[j].CreatedTime)
	})
	return files, nil
}

// ReadFile opens an object's byte stream and reports its content type.
func (g *GCS) ReadFile(ctx context.Context, id string) (io.ReadCloser, string, error) {
	r, err := g.client.Bucket(g.bucket).Object(id).NewReader(ctx)
	if err != nil {
		return nil, "", fmt.Errorf("failed to open object %s: %w", id, err)
	}
	return r, r.Attrs.ContentType, nil
}

// ThumbnailURL points at this server's own image proxy; the bucket holds no
// derived thumbnails.
func (g *GCS) ThumbnailURL(id string) string {
	return "/api/image/" + id
}

// PreviewURL points at this server's own video proxy.
func (g *GCS) PreviewURL(id string) string {
	return "/api/video/" + id
}

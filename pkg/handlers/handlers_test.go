package handlers

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"presentation-gallery/pkg/catalog"
	"presentation-gallery/pkg/provider"
	"presentation-gallery/pkg/services"
)

type stubProvider struct {
	failList bool
}

func (p *stubProvider) ListFolder(_ context.Context, folderID string) ([]provider.File, error) {
	if p.failList {
		return nil, errors.New("listing failed")
	}
	if strings.HasSuffix(folderID, "-vid") {
		return []provider.File{
			{ID: "v1", Name: "Opening.mp4", CreatedTime: time.Date(2024, 3, 10, 14, 0, 0, 0, time.UTC), DurationMillis: 59000},
		}, nil
	}
	return []provider.File{
		{ID: "i1", Name: "Stage.jpg", CreatedTime: time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)},
	}, nil
}

func (p *stubProvider) ReadFile(_ context.Context, id string) (io.ReadCloser, string, error) {
	if id == "missing" {
		return nil, "", errors.New("file not found")
	}
	return io.NopCloser(strings.NewReader("payload")), "image/jpeg", nil
}

func (p *stubProvider) ThumbnailURL(id string) string { return "https://thumbs.example/" + id }
func (p *stubProvider) PreviewURL(id string) string   { return "https://videos.example/" + id }

func newTestRouter(p provider.Provider) http.Handler {
	cat := catalog.Catalog{
		{Key: "rise-up", Name: "Rise Up", ImagesFolderID: "rise-img", VideosFolderID: "rise-vid"},
	}
	svc := services.NewService(cat, p)
	return New(svc, p, cat).Router()
}

func TestGalleryFeed(t *testing.T) {
	router := newTestRouter(&stubProvider{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/gallery", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.Equal(t, "public, max-age=3600", rec.Header().Get("Cache-Control"))
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))

	body := rec.Body.String()
	assert.Contains(t, body, `"type":"image"`)
	assert.Contains(t, body, `"type":"video"`)
	assert.Contains(t, body, `"duration":"0:59"`)
	assert.Contains(t, body, `"presentationName":"Rise Up"`)

	// Newest first: the video was created after the image.
	assert.Less(t, strings.Index(body, `"v1"`), strings.Index(body, `"i1"`))
}

func TestGalleryFeedAllFailuresReturnsEmptyArray(t *testing.T) {
	router := newTestRouter(&stubProvider{failList: true})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/gallery", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())
}

func TestImageProxy(t *testing.T) {
	router := newTestRouter(&stubProvider{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/image/i1", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/jpeg", rec.Header().Get("Content-Type"))
	assert.Equal(t, "public, max-age=86400", rec.Header().Get("Cache-Control"))
	assert.Equal(t, "payload", rec.Body.String())
}

func TestImageProxyFailure(t *testing.T) {
	router := newTestRouter(&stubProvider{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/image/missing", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "Error fetching image")
}

func TestVideoProxyForcesContentType(t *testing.T) {
	router := newTestRouter(&stubProvider{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/video/v1", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "video/mp4", rec.Header().Get("Content-Type"))
	assert.Equal(t, "public, max-age=86400", rec.Header().Get("Cache-Control"))
}

func TestPreflight(t *testing.T) {
	router := newTestRouter(&stubProvider{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodOptions, "/api/gallery", nil))

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.NotEmpty(t, rec.Header().Get("Access-Control-Allow-Headers"))
	assert.NotEmpty(t, rec.Header().Get("Access-Control-Allow-Methods"))
}

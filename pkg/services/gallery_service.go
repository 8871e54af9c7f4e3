package services

import (
	"context"
	"fmt"
	"regexp"
	"sort"

	"github.com/rs/zerolog"

	"presentation-gallery/pkg/catalog"
	"presentation-gallery/pkg/logging"
	"presentation-gallery/pkg/models"
	"presentation-gallery/pkg/provider"
)

// Service aggregates per-presentation provider listings into one
// globally ordered media feed.
type Service struct {
	catalog  catalog.Catalog
	provider provider.Provider
	log      zerolog.Logger
}

// NewService creates a gallery service over the given catalog and provider.
func NewService(cat catalog.Catalog, p provider.Provider) *Service {
	return &Service{
		catalog:  cat,
		provider: p,
		log:      logging.L(),
	}
}

// extensionRegex matches a single trailing file extension.
var extensionRegex = regexp.MustCompile(`\.[^./]+$`)

// StripExtension removes exactly one trailing extension from a file name.
func StripExtension(name string) string {
	return extensionRegex.ReplaceAllString(name, "")
}

// FormatDuration renders a millisecond duration as minutes:seconds with the
// seconds zero-padded to two digits.
func FormatDuration(millis int64) string {
	totalSeconds := millis / 1000
	return fmt.Sprintf("%d:%02d", totalSeconds/60, totalSeconds%60)
}

// Aggregate fetches both folders of every presentation in catalog order and
// returns all records sorted by creation time, newest first.
//
// Each folder query is contained on its own: a failure is logged with the
// presentation name and both folder ids and contributes zero records, so one
// misconfigured folder never takes down the whole feed. A failed image query
// still admits the presentation's videos. Only a dead context aborts the run.
func (s *Service) Aggregate(ctx context.Context) ([]models.MediaRecord, error) {
	records := make([]models.MediaRecord, 0)

	for _, pres := range s.catalog {
		s.log.Debug().Str("presentation", pres.Name).Msg("processing presentation")

		images, err := s.provider.ListFolder(ctx, pres.ImagesFolderID)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			s.logQueryFailure(pres, "images", err)
		} else {
			for _, f := range images {
				records = append(records, s.imageRecord(pres, f))
			}
		}

		videos, err := s.provider.ListFolder(ctx, pres.VideosFolderID)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			s.logQueryFailure(pres, "videos", err)
		} else {
			for _, f := range videos {
				records = append(records, s.videoRecord(pres, f))
			}
		}

		s.log.Debug().
			Str("presentation", pres.Name).
			Int("images", len(images)).
			Int("videos", len(videos)).
			Msg("presentation processed")
	}

	sort.Slice(records, func(i, j int) bool {
		return records[i].CreatedTime.After(records[j].CreatedTime)
	})
	return records, nil
}

// AggregatePresentation returns the ordered records of a single presentation.
func (s *Service) AggregatePresentation(ctx context.Context, key string) ([]models.MediaRecord, error) {
	if _, ok := s.catalog.Lookup(key); !ok {
		return nil, fmt.Errorf("presentation not found: %s", key)
	}

	all, err := s.Aggregate(ctx)
	if err != nil {
		return nil, err
	}

	records := make([]models.MediaRecord, 0)
	for _, r := range all {
		if r.Presentation == key {
			records = append(records, r)
		}
	}
	return records, nil
}

func (s *Service) imageRecord(pres catalog.Presentation, f provider.File) models.MediaRecord {
	return models.MediaRecord{
		ID:               f.ID,
		Title:            StripExtension(f.Name),
		Thumbnail:        s.provider.ThumbnailURL(f.ID),
		HQSrc:            "/api/image/" + f.ID,
		Type:             models.TypeImage,
		Presentation:     pres.Key,
		PresentationName: pres.Name,
		CreatedTime:      f.CreatedTime,
	}
}

func (s *Service) videoRecord(pres catalog.Presentation, f provider.File) models.MediaRecord {
	record := models.MediaRecord{
		ID:               f.ID,
		Title:            StripExtension(f.Name),
		Thumbnail:        s.provider.ThumbnailURL(f.ID),
		Src:              s.provider.PreviewURL(f.ID),
		Type:             models.TypeVideo,
		Presentation:     pres.Key,
		PresentationName: pres.Name,
		CreatedTime:      f.CreatedTime,
	}
	if f.DurationMillis > 0 {
		record.Duration = FormatDuration(f.DurationMillis)
	}
	return record
}

func (s *Service) logQueryFailure(pres catalog.Presentation, query string, err error) {
	s.log.Error().
		Err(err).
		Str("presentation", pres.Name).
		Str("query", query).
		Str("images_folder", pres.ImagesFolderID).
		Str("videos_folder", pres.VideosFolderID).
		Msg("presentation fetch failed")
}

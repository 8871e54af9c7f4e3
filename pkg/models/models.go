package models

import "time"

// Media type values used in the JSON feed.
const (
	TypeImage = "image"
	TypeVideo = "video"
)

// MediaRecord is the unified image-or-video entry served to clients.
// Image records carry HQSrc (a proxy path on this server); video records
// carry Src (an external embeddable preview URL) and optionally Duration.
type MediaRecord struct {
	ID               string    `json:"id"`
	Title            string    `json:"title"`
	Thumbnail        string    `json:"thumbnail"`
	HQSrc            string    `json:"hqSrc,omitempty"`
	Src              string    `json:"src,omitempty"`
	Type             string    `json:"type"`
	Presentation     string    `json:"presentation"`
	PresentationName string    `json:"presentationName"`
	Duration         string    `json:"duration,omitempty"`
	CreatedTime      time.Time `json:"createdTime"`
}

// IsImage reports whether the record is an image.
func (m MediaRecord) IsImage() bool {
	return m.Type == TypeImage
}

// Index represents the landing page data.
type Index struct {
	Presentations []Filter
}

// Filter is one filter button on the landing page.
type Filter struct {
	Key  string
	Name string
}

package viewer

import (
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"presentation-gallery/pkg/logging"
	"presentation-gallery/pkg/models"
)

// Phase is the lightbox display phase.
type Phase int

// Lightbox phases.
const (
	Closed Phase = iota
	Loading
	Ready
)

// LoadResult is the tagged outcome of a high-quality image fetch.
type LoadResult struct {
	URL string
	Err error
}

// Loader fetches high-quality image variants. Load reports its outcome on
// the returned channel; Preload is fire-and-forget.
type Loader interface {
	Load(url string) <-chan LoadResult
	Preload(url string)
}

// View is what the lightbox currently shows.
type View struct {
	Phase  Phase
	Index  int
	Title  string
	Source string
	Video  bool
}

// Lightbox is the modal viewer state machine over the visible subset, with
// wraparound navigation and adjacent preloading on every move.
type Lightbox struct {
	state        *State
	loader       Loader
	sessionToken string
	log          zerolog.Logger

	view      View
	pending   <-chan LoadResult
	pendingID string
}

// NewLightbox creates a closed lightbox over the given state. The session
// token is appended to high-quality requests as a cache buster.
func NewLightbox(state *State, loader Loader) *Lightbox {
	return &Lightbox{
		state:        state,
		loader:       loader,
		sessionToken: strconv.FormatInt(time.Now().UnixMilli(), 10),
		log:          logging.L(),
		view:         View{Phase: Closed, Index: -1},
	}
}

// SessionToken returns the per-session cache-busting token.
func (lb *Lightbox) SessionToken() string {
	return lb.sessionToken
}

// Current returns the current view.
func (lb *Lightbox) Current() View {
	return lb.view
}

// Open shows the record at index (wrapped into range). Videos and images
// whose high-quality variant is already loaded go straight to Ready; other
// images show the thumbnail while the high-quality variant loads. Every open
// also warms the adjacent records.
func (lb *Lightbox) Open(index int) View {
	n := lb.state.Len()
	if n == 0 {
		return lb.view
	}
	index = mod(index, n)
	record := lb.state.Record(index)

	// Navigating away drops any in-flight load; the stale fetch completes
	// unobserved.
	lb.pending = nil
	lb.pendingID = ""

	switch {
	case !record.IsImage():
		lb.view = View{Phase: Ready, Index: index, Title: record.Title, Source: record.Src, Video: true}
	case lb.state.HQLoaded(record.ID):
		lb.view = View{Phase: Ready, Index: index, Title: record.Title, Source: record.HQSrc}
	default:
		lb.view = View{Phase: Loading, Index: index, Title: record.Title, Source: record.Thumbnail}
		lb.pending = lb.loader.Load(lb.hqURL(record))
		lb.pendingID = record.ID
	}

	lb.preloadAdjacent(index)
	return lb.view
}

// Pending returns the in-flight high-quality load, or nil when there is none.
func (lb *Lightbox) Pending() <-chan LoadResult {
	return lb.pending
}

// Apply completes the pending load. Success swaps in the high-quality source
// and marks the record loaded; failure keeps the already-displayed thumbnail.
// Either way the view reaches Ready.
func (lb *Lightbox) Apply(result LoadResult) View {
	if lb.pending == nil || lb.view.Phase != Loading {
		return lb.view
	}

	if result.Err == nil {
		lb.state.MarkHQLoaded(lb.pendingID)
		lb.view.Source = result.URL
	} else {
		lb.log.Debug().Err(result.Err).Str("url", result.URL).Msg("high-quality load failed, keeping thumbnail")
	}

	lb.view.Phase = Ready
	lb.pending = nil
	lb.pendingID = ""
	return lb.view
}

// Next moves to the following record, wrapping past the end.
func (lb *Lightbox) Next() View {
	return lb.Open(lb.view.Index + 1)
}

// Prev moves to the preceding record, wrapping past the start.
func (lb *Lightbox) Prev() View {
	return lb.Open(lb.view.Index - 1)
}

// Close dismisses the lightbox. The source is cleared so any video playback
// stops.
func (lb *Lightbox) Close() View {
	lb.view = View{Phase: Closed, Index: -1}
	lb.pending = nil
	lb.pendingID = ""
	return lb.view
}

// preloadAdjacent warms up to five neighbors in each direction around the
// current index. The reservation flag is set when the fetch is issued, not
// when it lands, which deduplicates concurrent preload triggers for the same
// record. A failed preload does not clear the reservation.
func (lb *Lightbox) preloadAdjacent(current int) {
	n := lb.state.Len()
	for offset := 1; offset <= 5; offset++ {
		lb.preloadIndex(mod(current+offset, n))
		lb.preloadIndex(mod(current-offset, n))
	}
}

func (lb *Lightbox) preloadIndex(i int) {
	record := lb.state.Record(i)
	if !record.IsImage() || lb.state.HQLoaded(record.ID) {
		return
	}
	lb.state.MarkHQLoaded(record.ID)
	lb.loader.Preload(lb.hqURL(record))
}

func (lb *Lightbox) hqURL(record models.MediaRecord) string {
	return record.HQSrc + "?t=" + lb.sessionToken
}

// mod wraps i into [0, n), handling negative values.
func mod(i, n int) int {
	return ((i % n) + n) % n
}

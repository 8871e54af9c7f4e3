package handlers

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/eknkc/pug"
	"github.com/rs/zerolog"

	"presentation-gallery/pkg/catalog"
	"presentation-gallery/pkg/logging"
	"presentation-gallery/pkg/models"
	"presentation-gallery/pkg/provider"
	"presentation-gallery/pkg/services"
)

// Handlers holds the HTTP surface of the gallery server.
type Handlers struct {
	service  *services.Service
	provider provider.Provider
	catalog  catalog.Catalog
	log      zerolog.Logger
}

// New wires the handlers to their collaborators.
func New(svc *services.Service, p provider.Provider, cat catalog.Catalog) *Handlers {
	return &Handlers{
		service:  svc,
		provider: p,
		catalog:  cat,
		log:      logging.L(),
	}
}

// Router builds the route table. Specific routes win over the static file
// server at the root.
func (h *Handlers) Router() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/gallery", h.Gallery)
	mux.HandleFunc("GET /api/image/{id...}", h.Image)
	mux.HandleFunc("GET /api/video/{id...}", h.Video)
	mux.HandleFunc("GET /{$}", h.Index)
	mux.Handle("/", http.FileServer(http.Dir("./public")))
	return CORS(mux)
}

// CORS wraps a handler with permissive cross-origin headers and answers
// preflight requests directly.
func CORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Headers", "Origin, X-Requested-With, Content-Type, Accept")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// Gallery handles requests for the aggregated media feed (JSON).
func (h *Handlers) Gallery(w http.ResponseWriter, r *http.Request) {
	h.log.Info().Msg("generating feed")

	records, err := h.service.Aggregate(r.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("gallery aggregation failed")
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "Failed to fetch gallery data"})
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	if err := json.NewEncoder(w).Encode(records); err != nil {
		h.log.Error().Err(err).Msg("failed to write feed")
	}
}

// Image relays one image's bytes, keeping the provider's content type.
func (h *Handlers) Image(w http.ResponseWriter, r *http.Request) {
	h.stream(w, r, "", "Error fetching image")
}

// Video relays one video's bytes with a forced video content type.
func (h *Handlers) Video(w http.ResponseWriter, r *http.Request) {
	h.stream(w, r, "video/mp4", "Error fetching video")
}

// stream relays a single file from the provider. File ids are immutable once
// issued, so responses carry a one-day cache directive. Failures get a plain
// 500 with no retry; the browser's own retry behavior covers transient blips.
func (h *Handlers) stream(w http.ResponseWriter, r *http.Request, forceType, failMessage string) {
	id := r.PathValue("id")

	body, contentType, err := h.provider.ReadFile(r.Context(), id)
	if err != nil {
		h.log.Error().Err(err).Str("file_id", id).Msg("stream fetch failed")
		http.Error(w, failMessage, http.StatusInternalServerError)
		return
	}
	defer body.Close()

	if forceType != "" {
		contentType = forceType
	}
	if contentType != "" {
		w.Header().Set("Content-Type", contentType)
	}
	w.Header().Set("Cache-Control", "public, max-age=86400")

	if _, err := io.Copy(w, body); err != nil {
		h.log.Debug().Err(err).Str("file_id", id).Msg("stream interrupted")
	}
}

// Index handles requests for the landing page.
func (h *Handlers) Index(w http.ResponseWriter, _ *http.Request) {
	h.log.Info().Msg("generating index")

	template, err := pug.CompileFile("./views/index.pug", pug.Options{})
	if err != nil {
		h.log.Error().Err(err).Msg("failed to compile index template")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	filters := make([]models.Filter, 0, len(h.catalog))
	for _, p := range h.catalog {
		filters = append(filters, models.Filter{Key: p.Key, Name: p.Name})
	}

	if err := template.Execute(w, models.Index{Presentations: filters}); err != nil {
		h.log.Error().Err(err).Msg("failed to render index template")
	}
}

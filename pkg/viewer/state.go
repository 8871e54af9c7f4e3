package viewer

import "presentation-gallery/pkg/models"

// FilterAll selects the full sequence.
const FilterAll = "all"

// State is the gallery store held by the viewing client: the full fetched
// sequence, the active filter, the visible subset derived from it, and the
// per-image high-quality reservation flags.
type State struct {
	records  []models.MediaRecord
	filter   string
	visible  []models.MediaRecord
	hqLoaded map[string]bool
}

// NewState creates a state over the fetched records with the "all" filter
// active.
func NewState(records []models.MediaRecord) *State {
	s := &State{
		records:  records,
		hqLoaded: make(map[string]bool),
	}
	s.SetFilter(FilterAll)
	return s
}

// SetFilter recomputes the visible subset for the given presentation key.
// The full sequence is never mutated; relative order is preserved.
func (s *State) SetFilter(key string) {
	s.filter = key
	if key == FilterAll {
		s.visible = append([]models.MediaRecord(nil), s.records...)
		return
	}

	visible := make([]models.MediaRecord, 0)
	for _, r := range s.records {
		if r.Presentation == key {
			visible = append(visible, r)
		}
	}
	s.visible = visible
}

// ActiveFilter returns the currently active filter key.
func (s *State) ActiveFilter() string {
	return s.filter
}

// Visible returns the currently visible subset.
func (s *State) Visible() []models.MediaRecord {
	return s.visible
}

// Len returns the size of the visible subset.
func (s *State) Len() int {
	return len(s.visible)
}

// Record returns the visible record at index i.
func (s *State) Record(i int) models.MediaRecord {
	return s.visible[i]
}

// HQLoaded reports whether a record's high-quality variant has been loaded
// (or reserved by an in-flight preload) this session.
func (s *State) HQLoaded(id string) bool {
	return s.hqLoaded[id]
}

// MarkHQLoaded flags a record's high-quality variant as loaded.
func (s *State) MarkHQLoaded(id string) {
	s.hqLoaded[id] = true
}

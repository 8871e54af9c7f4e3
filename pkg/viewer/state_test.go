package viewer

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"presentation-gallery/pkg/models"
)

func sampleRecords() []models.MediaRecord {
	records := make([]models.MediaRecord, 0, 10)
	for i := 0; i < 10; i++ {
		key := "jmj"
		if i%3 == 0 { // indices 0, 3, 6, 9... capped below
			key = "rise-up"
		}
		records = append(records, models.MediaRecord{
			ID:           fmt.Sprintf("m%d", i),
			Title:        fmt.Sprintf("Media %d", i),
			Type:         models.TypeImage,
			Presentation: key,
		})
	}
	// Exactly three rise-up records.
	records[9].Presentation = "jmj"
	return records
}

func TestSetFilter(t *testing.T) {
	state := NewState(sampleRecords())
	require.Equal(t, FilterAll, state.ActiveFilter())
	require.Len(t, state.Visible(), 10)

	state.SetFilter("rise-up")
	assert.Equal(t, "rise-up", state.ActiveFilter())
	require.Len(t, state.Visible(), 3)

	// Original relative order is preserved.
	ids := []string{}
	for _, r := range state.Visible() {
		ids = append(ids, r.ID)
	}
	assert.Equal(t, []string{"m0", "m3", "m6"}, ids)

	state.SetFilter(FilterAll)
	assert.Len(t, state.Visible(), 10)
}

func TestSetFilterUnknownKey(t *testing.T) {
	state := NewState(sampleRecords())
	state.SetFilter("does-not-exist")
	assert.Empty(t, state.Visible())

	// The full sequence is untouched.
	state.SetFilter(FilterAll)
	assert.Len(t, state.Visible(), 10)
}

func TestHQLoadedFlags(t *testing.T) {
	state := NewState(sampleRecords())
	assert.False(t, state.HQLoaded("m1"))

	state.MarkHQLoaded("m1")
	assert.True(t, state.HQLoaded("m1"))

	// Flags survive filter changes.
	state.SetFilter("rise-up")
	assert.True(t, state.HQLoaded("m1"))
}

package catalog

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/auralabs/aura/internal/library"
)

// TestSeedTracks tests the invariants the session relies on when
// seeding a fresh library.
func TestSeedTracks(t *testing.T) {
	tracks := SeedTracks()
	require.NotEmpty(t, tracks)

	seen := make(map[string]bool)
	for _, tr := range tracks {
		assert.True(t, strings.HasPrefix(tr.ID, library.SeedPrefix), "id %q not in seed namespace", tr.ID)
		assert.False(t, seen[tr.ID], "duplicate id %q", tr.ID)
		seen[tr.ID] = true

		assert.NotEmpty(t, tr.Title)
		assert.NotEmpty(t, tr.Artist)
		assert.NotEmpty(t, tr.SourceURL)
		assert.Greater(t, tr.Duration, 0, "seed %q needs a known duration", tr.ID)
		assert.NotEmpty(t, tr.AccentColor)
	}
}

// TestSeedTracksReturnsFreshCopies tests that callers cannot corrupt
// the catalog through a returned slice.
func TestSeedTracksReturnsFreshCopies(t *testing.T) {
	first := SeedTracks()
	first[0].Title = "mutated"

	second := SeedTracks()
	assert.Equal(t, "Cyber Drift", second[0].Title)
}

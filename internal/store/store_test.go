package store

import (
	"path/filepath"
	"slices"
	"testing"
	"time"

	"github.com/auralabs/aura/internal/library"
	"github.com/auralabs/aura/internal/lyrics"
	"github.com/auralabs/aura/internal/playlists"
)

// setupTestStore creates a store over an in-memory SQLite database.
func setupTestStore(t *testing.T) *Manager {
	t.Helper()

	m, err := OpenPath(":memory:")
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	t.Cleanup(func() { m.Close() })
	return m
}

// TestMetadataRoundTrip tests saving and loading the track library,
// including timed lyrics.
func TestMetadataRoundTrip(t *testing.T) {
	m := setupTestStore(t)

	in := []library.Track{
		{
			ID: "seed-1", Title: "Cyber Drift", Artist: "Neon Architect",
			Album: "Future City", SourceURL: "https://example.com/1.mp3",
			Duration: 372, AccentColor: "#6366f1", Rating: 4,
			Lyrics: []lyrics.Line{
				{Time: 0, Text: "Wait for the neon lights"},
				{Time: 5 * time.Second, Text: "Streaming through the digital night"},
			},
		},
		{ID: "user-abc", Title: "Upload", Artist: "Local", Album: "Uploaded"},
	}
	if err := m.PutAllMetadata(in); err != nil {
		t.Fatalf("PutAllMetadata failed: %v", err)
	}

	out, err := m.AllMetadata()
	if err != nil {
		t.Fatalf("AllMetadata failed: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("expected 2 tracks, got %d", len(out))
	}
	if out[0].ID != "seed-1" || out[1].ID != "user-abc" {
		t.Errorf("expected position order preserved, got %v then %v", out[0].ID, out[1].ID)
	}
	if out[0].Rating != 4 || out[0].AccentColor != "#6366f1" {
		t.Errorf("expected fields round-tripped, got %+v", out[0])
	}
	if len(out[0].Lyrics) != 2 || out[0].Lyrics[1].Time != 5*time.Second {
		t.Errorf("expected lyrics round-tripped, got %v", out[0].Lyrics)
	}
	if out[1].Lyrics != nil {
		t.Errorf("expected no lyrics on second track, got %v", out[1].Lyrics)
	}
}

// TestPutAllMetadataSkipsEphemeral tests that online-namespace tracks
// are never written to durable storage.
func TestPutAllMetadataSkipsEphemeral(t *testing.T) {
	m := setupTestStore(t)

	in := []library.Track{
		{ID: "seed-1", Title: "Durable"},
		{ID: "online-xyz", Title: "Ephemeral"},
		{ID: "user-abc", Title: "Also durable"},
	}
	if err := m.PutAllMetadata(in); err != nil {
		t.Fatalf("PutAllMetadata failed: %v", err)
	}

	out, err := m.AllMetadata()
	if err != nil {
		t.Fatalf("AllMetadata failed: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("expected 2 tracks, got %d", len(out))
	}
	for _, tr := range out {
		if library.IsEphemeral(tr.ID) {
			t.Errorf("ephemeral track persisted: %q", tr.ID)
		}
	}
}

// TestPutAllMetadataReplacesWholesale tests that a second save fully
// replaces the first.
func TestPutAllMetadataReplacesWholesale(t *testing.T) {
	m := setupTestStore(t)

	if err := m.PutAllMetadata([]library.Track{{ID: "seed-1"}, {ID: "seed-2"}}); err != nil {
		t.Fatalf("first save failed: %v", err)
	}
	if err := m.PutAllMetadata([]library.Track{{ID: "seed-2"}}); err != nil {
		t.Fatalf("second save failed: %v", err)
	}

	out, _ := m.AllMetadata()
	if len(out) != 1 || out[0].ID != "seed-2" {
		t.Errorf("expected only seed-2, got %v", out)
	}
}

// TestBlobs tests blob storage, absence, overwrite and deletion.
func TestBlobs(t *testing.T) {
	m := setupTestStore(t)

	if data, err := m.Blob("user-abc"); err != nil || data != nil {
		t.Fatalf("expected nil for missing blob, got %v, %v", data, err)
	}

	if err := m.PutBlob("user-abc", []byte("audio")); err != nil {
		t.Fatalf("PutBlob failed: %v", err)
	}
	data, err := m.Blob("user-abc")
	if err != nil || string(data) != "audio" {
		t.Fatalf("expected audio back, got %q, %v", data, err)
	}

	if err := m.PutBlob("user-abc", []byte("longer audio")); err != nil {
		t.Fatalf("overwrite failed: %v", err)
	}
	data, _ = m.Blob("user-abc")
	if string(data) != "longer audio" {
		t.Errorf("expected overwritten blob, got %q", data)
	}

	if err := m.DeleteBlob("user-abc"); err != nil {
		t.Fatalf("DeleteBlob failed: %v", err)
	}
	if data, _ := m.Blob("user-abc"); data != nil {
		t.Errorf("expected blob gone, got %q", data)
	}

	if err := m.DeleteBlob("never-existed"); err != nil {
		t.Errorf("expected no-op delete, got %v", err)
	}
}

// TestInitializedFlag tests the first-run gate.
func TestInitializedFlag(t *testing.T) {
	m := setupTestStore(t)

	initialized, err := m.IsInitialized()
	if err != nil {
		t.Fatalf("IsInitialized failed: %v", err)
	}
	if initialized {
		t.Error("expected fresh store to be uninitialized")
	}

	if err := m.MarkInitialized(); err != nil {
		t.Fatalf("MarkInitialized failed: %v", err)
	}
	initialized, _ = m.IsInitialized()
	if !initialized {
		t.Error("expected store initialized after marking")
	}
}

// TestPlaylistsRoundTrip tests playlist persistence including order
// and per-playlist track order.
func TestPlaylistsRoundTrip(t *testing.T) {
	m := setupTestStore(t)

	in := []playlists.Playlist{
		{ID: "p1", Name: "First", TrackIDs: []string{"a", "b"}},
		{ID: "p2", Name: "Second", TrackIDs: []string{}},
	}
	if err := m.PutPlaylists(in); err != nil {
		t.Fatalf("PutPlaylists failed: %v", err)
	}

	out, err := m.Playlists()
	if err != nil {
		t.Fatalf("Playlists failed: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("expected 2 playlists, got %d", len(out))
	}
	if out[0].ID != "p1" || out[1].ID != "p2" {
		t.Errorf("expected creation order, got %v", out)
	}
	if !slices.Equal(out[0].TrackIDs, []string{"a", "b"}) {
		t.Errorf("expected track order, got %v", out[0].TrackIDs)
	}
	if out[1].TrackIDs == nil {
		t.Error("expected empty slice, not nil, for trackless playlist")
	}
}

// TestQueueStateRoundTrip tests queue persistence, including the
// no-saved-state case.
func TestQueueStateRoundTrip(t *testing.T) {
	m := setupTestStore(t)

	state, err := m.QueueState()
	if err != nil {
		t.Fatalf("QueueState failed: %v", err)
	}
	if state != nil {
		t.Fatalf("expected nil state on fresh store, got %+v", state)
	}

	if err := m.saveQueueState(QueueState{
		TrackIDs:         []string{"a", "b", "c"},
		Cursor:           2,
		SourcePlaylistID: "p1",
	}); err != nil {
		t.Fatalf("saveQueueState failed: %v", err)
	}

	state, err = m.QueueState()
	if err != nil {
		t.Fatalf("QueueState failed: %v", err)
	}
	if !slices.Equal(state.TrackIDs, []string{"a", "b", "c"}) || state.Cursor != 2 || state.SourcePlaylistID != "p1" {
		t.Errorf("unexpected state: %+v", state)
	}

	// Saving a sourceless queue clears the source column.
	if err := m.saveQueueState(QueueState{TrackIDs: []string{"a"}, Cursor: 0}); err != nil {
		t.Fatalf("second save failed: %v", err)
	}
	state, _ = m.QueueState()
	if state.SourcePlaylistID != "" || len(state.TrackIDs) != 1 {
		t.Errorf("unexpected state after overwrite: %+v", state)
	}
}

// TestScheduleQueueSaveDebounces tests that rapid saves collapse into
// the latest pending state, flushed on Close.
func TestScheduleQueueSaveDebounces(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "aura.db")
	m, err := OpenPath(dbPath)
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}

	m.ScheduleQueueSave(QueueState{TrackIDs: []string{"a"}, Cursor: 0})
	m.ScheduleQueueSave(QueueState{TrackIDs: []string{"a", "b"}, Cursor: 1})

	// Close before the debounce window elapses: the pending state must
	// be flushed synchronously.
	if err := m.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	reopened, err := OpenPath(dbPath)
	if err != nil {
		t.Fatalf("failed to reopen store: %v", err)
	}
	defer reopened.Close()

	state, err := reopened.QueueState()
	if err != nil {
		t.Fatalf("QueueState failed: %v", err)
	}
	if state == nil {
		t.Fatal("expected flushed state after Close")
	}
	if !slices.Equal(state.TrackIDs, []string{"a", "b"}) || state.Cursor != 1 {
		t.Errorf("expected latest scheduled state, got %+v", state)
	}
}

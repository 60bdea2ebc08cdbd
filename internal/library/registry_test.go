package library

import (
	"strings"
	"testing"
)

// TestUpsertManyKeepsInsertionOrder tests insertion order and the
// overwrite-in-place behavior used for duration fill-in.
func TestUpsertManyKeepsInsertionOrder(t *testing.T) {
	r := NewRegistry()
	r.UpsertMany(
		Track{ID: "seed-1", Title: "One"},
		Track{ID: "seed-2", Title: "Two"},
	)
	r.UpsertMany(Track{ID: "seed-1", Title: "One", Duration: 372})

	ids := r.IDs()
	if len(ids) != 2 || ids[0] != "seed-1" || ids[1] != "seed-2" {
		t.Fatalf("expected order preserved on overwrite, got %v", ids)
	}
	if got := r.ByID("seed-1"); got == nil || got.Duration != 372 {
		t.Errorf("expected duration filled in, got %+v", got)
	}
}

// TestUpsertManySkipsEmptyID tests that tracks without an id are
// silently dropped.
func TestUpsertManySkipsEmptyID(t *testing.T) {
	r := NewRegistry()
	r.UpsertMany(Track{Title: "no id"})
	if r.Len() != 0 {
		t.Errorf("expected empty registry, got %d tracks", r.Len())
	}
}

// TestRemove tests deletion and that removing an unknown id is a no-op.
func TestRemove(t *testing.T) {
	r := NewRegistry()
	r.UpsertMany(Track{ID: "a"}, Track{ID: "b"})

	r.Remove("a")
	if r.ByID("a") != nil {
		t.Error("expected a removed")
	}
	if len(r.IDs()) != 1 {
		t.Errorf("expected one id, got %v", r.IDs())
	}

	r.Remove("unknown")
	if r.Len() != 1 {
		t.Error("expected no-op removal of unknown id")
	}
}

// TestByTitleArtist tests the fuzzy lookup used to resolve external
// candidates: case-insensitive substring on both fields, first match.
func TestByTitleArtist(t *testing.T) {
	r := NewRegistry()
	r.UpsertMany(
		Track{ID: "1", Title: "Cyber Drift", Artist: "Neon Architect"},
		Track{ID: "2", Title: "Cyber Drift (Remix)", Artist: "Neon Architect"},
		Track{ID: "3", Title: "Midnight Rain", Artist: "Lofi Soul"},
	)

	if got := r.ByTitleArtist("cyber drift", "neon"); got == nil || got.ID != "1" {
		t.Errorf("expected first match id 1, got %+v", got)
	}
	if got := r.ByTitleArtist("MIDNIGHT RAIN", "LOFI SOUL"); got == nil || got.ID != "3" {
		t.Errorf("expected case-insensitive match, got %+v", got)
	}
	if got := r.ByTitleArtist("unknown", "nobody"); got != nil {
		t.Errorf("expected no match, got %+v", got)
	}
	if got := r.ByTitleArtist("", ""); got != nil {
		t.Errorf("expected nil for empty inputs, got %+v", got)
	}
}

// TestFilter tests the library search box behavior.
func TestFilter(t *testing.T) {
	r := NewRegistry()
	r.UpsertMany(
		Track{ID: "1", Title: "Cyber Drift", Artist: "Neon Architect"},
		Track{ID: "2", Title: "Stellar Pulse", Artist: "Galactic Voyager"},
	)

	if got := r.Filter("stellar"); len(got) != 1 || got[0].ID != "2" {
		t.Errorf("expected title match, got %v", got)
	}
	if got := r.Filter("neon"); len(got) != 1 || got[0].ID != "1" {
		t.Errorf("expected artist match, got %v", got)
	}
	if got := r.Filter(""); len(got) != 2 {
		t.Errorf("expected full library for empty query, got %v", got)
	}
	if got := r.Filter("zzz"); len(got) != 0 {
		t.Errorf("expected no matches, got %v", got)
	}
}

// TestIDNamespaces tests the ephemeral/upload id classification.
func TestIDNamespaces(t *testing.T) {
	userID := NewUserID()
	if !strings.HasPrefix(userID, UserPrefix) || !IsUpload(userID) {
		t.Errorf("expected user id, got %q", userID)
	}

	onlineID := NewOnlineID()
	if !strings.HasPrefix(onlineID, OnlinePrefix) || !IsEphemeral(onlineID) {
		t.Errorf("expected online id, got %q", onlineID)
	}

	if IsEphemeral("seed-1") || IsUpload("seed-1") {
		t.Error("seed ids are neither ephemeral nor uploads")
	}
}

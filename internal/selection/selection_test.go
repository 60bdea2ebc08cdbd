package selection

import (
	"slices"
	"testing"

	"github.com/auralabs/aura/internal/playlists"
)

// TestToggle tests membership flipping.
func TestToggle(t *testing.T) {
	s := New()

	s.Toggle("a")
	s.Toggle("b")
	if !s.Contains("a") || !s.Contains("b") {
		t.Error("expected a and b selected")
	}

	s.Toggle("a")
	if s.Contains("a") {
		t.Error("expected a deselected")
	}
	if got := s.IDs(); !slices.Equal(got, []string{"b"}) {
		t.Errorf("expected [b], got %v", got)
	}
}

// TestSetTargetClearsOnChange tests that retargeting resets the set.
func TestSetTargetClearsOnChange(t *testing.T) {
	s := New()
	s.SetTarget("p1")
	s.Toggle("a")

	s.SetTarget("p1")
	if s.Len() != 1 {
		t.Error("expected same target to keep selection")
	}

	s.SetTarget("p2")
	if s.Len() != 0 {
		t.Error("expected target change to clear selection")
	}
}

// TestSelectAllVisible tests the toggle-all semantics: exact set match
// clears, anything else replaces.
func TestSelectAllVisible(t *testing.T) {
	s := New()
	visible := []string{"a", "b", "c"}

	s.SelectAllVisible(visible)
	if s.Len() != 3 {
		t.Fatalf("expected 3 selected, got %d", s.Len())
	}

	// Same set again, different order: clears.
	s.SelectAllVisible([]string{"c", "b", "a"})
	if s.Len() != 0 {
		t.Errorf("expected toggle-all to clear, got %d selected", s.Len())
	}

	// Partial overlap replaces rather than unions.
	s.Toggle("a")
	s.SelectAllVisible([]string{"b", "c"})
	if got := s.IDs(); !slices.Equal(got, []string{"b", "c"}) {
		t.Errorf("expected replacement with [b c], got %v", got)
	}
}

// TestCommit tests the bulk-add handoff: all selected ids end up in
// the playlist exactly once and the selection is cleared.
func TestCommit(t *testing.T) {
	store := playlists.NewStore()
	p, _ := store.Create("Mix")
	store.AddTrack(p.ID, "b")

	s := New()
	s.SetTarget(p.ID)
	s.Toggle("a")
	s.Toggle("b")
	s.Toggle("c")

	s.Commit(store, p.ID)

	got := store.Get(p.ID).TrackIDs
	want := []string{"b", "a", "c"}
	if !slices.Equal(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
	if s.Len() != 0 {
		t.Error("expected selection cleared after commit")
	}
}

// TestCommitMissingPlaylist tests that committing to a vanished
// playlist silently clears the selection.
func TestCommitMissingPlaylist(t *testing.T) {
	s := New()
	s.Toggle("a")
	s.Commit(playlists.NewStore(), "gone")
	if s.Len() != 0 {
		t.Error("expected selection cleared even when playlist is gone")
	}
}

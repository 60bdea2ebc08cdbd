// Package selection tracks the multi-select set for bulk playlist adds.
package selection

import (
	"slices"

	"github.com/auralabs/aura/internal/playlists"
)

// Selection is the set of candidate track ids picked from the library
// for one "add to playlist" interaction. It is scoped to a target
// playlist and cleared when the target changes or a commit succeeds.
type Selection struct {
	target string
	ids    []string // insertion order, so commits append predictably
}

// New creates an empty selection.
func New() *Selection {
	return &Selection{}
}

// SetTarget points the selection at a playlist, clearing it when the
// target actually changes.
func (s *Selection) SetTarget(playlistID string) {
	if s.target == playlistID {
		return
	}
	s.target = playlistID
	s.ids = s.ids[:0]
}

// Target returns the playlist id the selection is scoped to.
func (s *Selection) Target() string {
	return s.target
}

// Toggle flips membership of the track id. Callers are expected to
// block ids already present in the target playlist before calling.
func (s *Selection) Toggle(trackID string) {
	for i, existing := range s.ids {
		if existing == trackID {
			s.ids = append(s.ids[:i], s.ids[i+1:]...)
			return
		}
	}
	s.ids = append(s.ids, trackID)
}

// Contains reports whether the track id is selected.
func (s *Selection) Contains(trackID string) bool {
	return slices.Contains(s.ids, trackID)
}

// SelectAllVisible implements the select-all toggle: if the selection
// already equals visibleIDs exactly (as a set), it clears; otherwise it
// becomes exactly visibleIDs.
func (s *Selection) SelectAllVisible(visibleIDs []string) {
	if s.equalsSet(visibleIDs) {
		s.ids = s.ids[:0]
		return
	}
	s.ids = make([]string, len(visibleIDs))
	copy(s.ids, visibleIDs)
}

// IDs returns the selected ids in insertion order.
func (s *Selection) IDs() []string {
	result := make([]string, len(s.ids))
	copy(result, s.ids)
	return result
}

// Len returns the number of selected ids.
func (s *Selection) Len() int {
	return len(s.ids)
}

// Clear empties the selection without changing the target.
func (s *Selection) Clear() {
	s.ids = s.ids[:0]
}

// Commit adds the selected ids to the playlist and clears the
// selection. Add cannot fail and a vanished playlist is a silent
// no-op, so there is nothing to roll back.
func (s *Selection) Commit(store *playlists.Store, playlistID string) {
	store.AddTracks(playlistID, s.IDs())
	s.ids = s.ids[:0]
}

func (s *Selection) equalsSet(other []string) bool {
	if len(s.ids) != len(other) || len(s.ids) == 0 {
		return false
	}
	set := make(map[string]struct{}, len(s.ids))
	for _, id := range s.ids {
		set[id] = struct{}{}
	}
	for _, id := range other {
		if _, ok := set[id]; !ok {
			return false
		}
	}
	return true
}

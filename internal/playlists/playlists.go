// Package playlists provides the named, ordered track collections.
package playlists

import (
	"errors"
	"slices"
	"strings"

	"github.com/google/uuid"
)

// ErrEmptyName is returned when creating or renaming a playlist with a
// name that is empty after trimming.
var ErrEmptyName = errors.New("playlist name is empty")

// Playlist is a user-curated named ordered collection of track ids.
type Playlist struct {
	ID       string
	Name     string
	TrackIDs []string
}

// Store holds playlists in memory, in creation order. Operations on a
// missing playlist id are silent no-ops: deletion races between async
// UI actions are expected and tolerated, not errors.
type Store struct {
	order     []string
	playlists map[string]*Playlist
}

// NewStore creates an empty playlist store.
func NewStore() *Store {
	return &Store{
		playlists: make(map[string]*Playlist),
	}
}

// Create adds a new empty playlist. Fails only on an empty name.
func (s *Store) Create(name string) (*Playlist, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	p := &Playlist{
		ID:       uuid.NewString(),
		Name:     name,
		TrackIDs: []string{},
	}
	s.playlists[p.ID] = p
	s.order = append(s.order, p.ID)
	return s.snapshot(p), nil
}

// Rename changes a playlist's name. No-op if the playlist is missing.
func (s *Store) Rename(id, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyName
	}
	if p, ok := s.playlists[id]; ok {
		p.Name = name
	}
	return nil
}

// Delete removes the playlist. Callers that loaded the queue from this
// playlist must notify the queue themselves; the store does not know
// about the queue.
func (s *Store) Delete(id string) {
	if _, ok := s.playlists[id]; !ok {
		return
	}
	delete(s.playlists, id)
	for i, existing := range s.order {
		if existing == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
}

// Get returns a copy of the playlist, or nil if absent.
func (s *Store) Get(id string) *Playlist {
	p, ok := s.playlists[id]
	if !ok {
		return nil
	}
	return s.snapshot(p)
}

// List returns copies of all playlists in creation order.
func (s *Store) List() []Playlist {
	result := make([]Playlist, 0, len(s.order))
	for _, id := range s.order {
		result = append(result, *s.snapshot(s.playlists[id]))
	}
	return result
}

// AddTrack appends the track id unless already present. Idempotent.
func (s *Store) AddTrack(playlistID, trackID string) {
	p, ok := s.playlists[playlistID]
	if !ok || trackID == "" {
		return
	}
	if slices.Contains(p.TrackIDs, trackID) {
		return
	}
	p.TrackIDs = append(p.TrackIDs, trackID)
}

// AddTracks applies AddTrack for each id, preserving input order.
func (s *Store) AddTracks(playlistID string, trackIDs []string) {
	for _, id := range trackIDs {
		s.AddTrack(playlistID, id)
	}
}

// RemoveTrack removes the first occurrence of the track id.
func (s *Store) RemoveTrack(playlistID, trackID string) {
	p, ok := s.playlists[playlistID]
	if !ok {
		return
	}
	for i, existing := range p.TrackIDs {
		if existing == trackID {
			p.TrackIDs = append(p.TrackIDs[:i], p.TrackIDs[i+1:]...)
			return
		}
	}
}

// RemoveTrackEverywhere prunes the track id from every playlist. Used
// by the track deletion cascade.
func (s *Store) RemoveTrackEverywhere(trackID string) {
	for _, id := range s.order {
		s.RemoveTrack(id, trackID)
	}
}

// ReplaceOrder replaces the playlist's id list wholesale. The new list
// is not validated as a permutation of the old one: the drag controller
// always passes one, and rejecting other callers here would turn a
// consistency bug into a silently ignored reorder.
func (s *Store) ReplaceOrder(playlistID string, newTrackIDs []string) {
	p, ok := s.playlists[playlistID]
	if !ok {
		return
	}
	p.TrackIDs = make([]string, len(newTrackIDs))
	copy(p.TrackIDs, newTrackIDs)
}

// Restore replaces the store's full contents, used when loading
// persisted playlists at startup.
func (s *Store) Restore(playlists []Playlist) {
	s.order = s.order[:0]
	s.playlists = make(map[string]*Playlist, len(playlists))
	for i := range playlists {
		p := playlists[i]
		if p.ID == "" {
			continue
		}
		ids := make([]string, len(p.TrackIDs))
		copy(ids, p.TrackIDs)
		p.TrackIDs = ids
		s.playlists[p.ID] = &p
		s.order = append(s.order, p.ID)
	}
}

func (s *Store) snapshot(p *Playlist) *Playlist {
	ids := make([]string, len(p.TrackIDs))
	copy(ids, p.TrackIDs)
	return &Playlist{ID: p.ID, Name: p.Name, TrackIDs: ids}
}

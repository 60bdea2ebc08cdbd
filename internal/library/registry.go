// Package library holds the canonical set of known tracks.
package library

import "strings"

// Registry is the source of truth for track existence. It keeps tracks
// in insertion order so "play the whole library" is deterministic.
//
// The registry does not cascade: removing a track leaves playlist and
// queue references dangling, and callers prune them (see the session).
type Registry struct {
	order  []string
	tracks map[string]Track
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		tracks: make(map[string]Track),
	}
}

// UpsertMany inserts or replaces tracks by id. Overwriting is allowed:
// it is how durations get filled in after playback reports them.
func (r *Registry) UpsertMany(tracks ...Track) {
	for _, t := range tracks {
		if t.ID == "" {
			continue
		}
		if _, exists := r.tracks[t.ID]; !exists {
			r.order = append(r.order, t.ID)
		}
		r.tracks[t.ID] = t
	}
}

// Remove deletes a track. No-op if the id is unknown.
func (r *Registry) Remove(id string) {
	if _, exists := r.tracks[id]; !exists {
		return
	}
	delete(r.tracks, id)
	for i, existing := range r.order {
		if existing == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
}

// ByID returns the track with the given id, or nil if absent.
func (r *Registry) ByID(id string) *Track {
	t, ok := r.tracks[id]
	if !ok {
		return nil
	}
	return &t
}

// ByTitleArtist finds a track by case-insensitive substring match on
// both title and artist. First match in insertion order wins; ambiguity
// is accepted because this lookup only reconciles external search
// results, never primary identity.
func (r *Registry) ByTitleArtist(title, artist string) *Track {
	title = strings.ToLower(strings.TrimSpace(title))
	artist = strings.ToLower(strings.TrimSpace(artist))
	if title == "" && artist == "" {
		return nil
	}
	for _, id := range r.order {
		t := r.tracks[id]
		if strings.Contains(strings.ToLower(t.Title), title) &&
			strings.Contains(strings.ToLower(t.Artist), artist) {
			return &t
		}
	}
	return nil
}

// Filter returns tracks whose title or artist contains the query,
// case-insensitively. An empty query returns the full library.
func (r *Registry) Filter(query string) []Track {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return r.All()
	}
	var result []Track
	for _, id := range r.order {
		t := r.tracks[id]
		if strings.Contains(strings.ToLower(t.Title), query) ||
			strings.Contains(strings.ToLower(t.Artist), query) {
			result = append(result, t)
		}
	}
	return result
}

// All returns every track in insertion order.
func (r *Registry) All() []Track {
	result := make([]Track, 0, len(r.order))
	for _, id := range r.order {
		result = append(result, r.tracks[id])
	}
	return result
}

// IDs returns every track id in insertion order.
func (r *Registry) IDs() []string {
	result := make([]string, len(r.order))
	copy(result, r.order)
	return result
}

// Len returns the number of tracks in the registry.
func (r *Registry) Len() int {
	return len(r.tracks)
}

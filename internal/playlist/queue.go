// Package playlist implements the active playback queue.
package playlist

import (
	"slices"

	"github.com/auralabs/aura/internal/library"
)

// Queue is the ordered sequence of track ids currently eligible for
// playback, plus a cursor. The id list is a snapshot: reordering the
// queue never reaches back into a stored playlist, and a stored
// playlist's changes only reach the queue through ReconcileOrder.
type Queue struct {
	registry *library.Registry
	ids      []string
	cursor   int
	sourceID string // playlist id the queue was loaded from, "" for the registry
}

// NewQueue creates an empty queue resolving tracks through the registry.
func NewQueue(registry *library.Registry) *Queue {
	return &Queue{registry: registry}
}

// Load replaces the queue wholesale. startIndex is clamped into range;
// an out-of-range value falls back to 0. sourcePlaylistID records which
// playlist the ids came from ("" when loading the whole registry or an
// ad hoc list).
func (q *Queue) Load(ids []string, startIndex int, sourcePlaylistID string) {
	q.ids = make([]string, len(ids))
	copy(q.ids, ids)
	q.sourceID = sourcePlaylistID
	if len(q.ids) == 0 {
		q.cursor = 0
		return
	}
	if startIndex < 0 || startIndex >= len(q.ids) {
		startIndex = 0
	}
	q.cursor = startIndex
}

// LoadRegistry loads the full registry id list at cursor 0.
func (q *Queue) LoadRegistry() {
	q.Load(q.registry.IDs(), 0, "")
}

// Current resolves the track at the cursor through the registry.
// Returns nil when the queue is empty or the id is dangling.
func (q *Queue) Current() *library.Track {
	id := q.CurrentID()
	if id == "" {
		return nil
	}
	return q.registry.ByID(id)
}

// CurrentID returns the id at the cursor, or "" for an empty queue.
func (q *Queue) CurrentID() string {
	if len(q.ids) == 0 || q.cursor < 0 || q.cursor >= len(q.ids) {
		return ""
	}
	return q.ids[q.cursor]
}

// CurrentIndex returns the cursor position.
func (q *Queue) CurrentIndex() int {
	return q.cursor
}

// SourcePlaylistID returns the playlist id the queue was loaded from,
// or "" when the queue came from the registry or an ad hoc list.
func (q *Queue) SourcePlaylistID() string {
	return q.sourceID
}

// Advance moves the cursor forward with wraparound. No-op when empty.
func (q *Queue) Advance() {
	if len(q.ids) == 0 {
		return
	}
	q.cursor = (q.cursor + 1) % len(q.ids)
}

// Retreat moves the cursor backward with wraparound. No-op when empty.
func (q *Queue) Retreat() {
	if len(q.ids) == 0 {
		return
	}
	q.cursor = (q.cursor - 1 + len(q.ids)) % len(q.ids)
}

// PrependAndPlay inserts the id at position 0 and resets the cursor to
// it. An occurrence elsewhere in the queue is left in place, so the id
// may now appear twice; deduplicating here would silently change what
// "play next" means for a queue the user already arranged.
func (q *Queue) PrependAndPlay(id string) {
	q.ids = append([]string{id}, q.ids...)
	q.cursor = 0
}

// ReconcileOrder applies a playlist's new order to the queue, but only
// when that playlist is the queue's source. The cursor follows the
// track it was on: reordering a playlist mid-playback must not change
// what is playing. If that track is gone from the new order, the old
// cursor position is kept, clamped into range.
func (q *Queue) ReconcileOrder(playlistID string, newOrder []string) {
	if playlistID == "" || playlistID != q.sourceID {
		return
	}
	currentID := q.CurrentID()
	q.ids = make([]string, len(newOrder))
	copy(q.ids, newOrder)
	if len(q.ids) == 0 {
		q.cursor = 0
		return
	}
	if currentID != "" {
		if idx := slices.Index(q.ids, currentID); idx >= 0 {
			q.cursor = idx
			return
		}
	}
	if q.cursor >= len(q.ids) {
		q.cursor = len(q.ids) - 1
	}
}

// SourceDeleted handles deletion of the playlist the queue was loaded
// from: fall back to the full registry at cursor 0. Deleting any other
// playlist leaves the queue alone.
func (q *Queue) SourceDeleted(playlistID string) {
	if playlistID == "" || playlistID != q.sourceID {
		return
	}
	q.LoadRegistry()
}

// Remove prunes every occurrence of the id from the queue, adjusting
// the cursor so the same position keeps playing where possible.
func (q *Queue) Remove(id string) {
	kept := q.ids[:0]
	cursor := q.cursor
	for i, existing := range q.ids {
		if existing == id {
			if i < cursor {
				cursor--
			}
			continue
		}
		kept = append(kept, existing)
	}
	q.ids = kept
	if cursor >= len(q.ids) {
		cursor = len(q.ids) - 1
	}
	if cursor < 0 {
		cursor = 0
	}
	q.cursor = cursor
}

// IDs returns a copy of the queued ids.
func (q *Queue) IDs() []string {
	result := make([]string, len(q.ids))
	copy(result, q.ids)
	return result
}

// Len returns the number of queued ids.
func (q *Queue) Len() int {
	return len(q.ids)
}

// IsEmpty reports whether nothing is eligible for playback.
func (q *Queue) IsEmpty() bool {
	return len(q.ids) == 0
}

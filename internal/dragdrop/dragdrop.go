// Package dragdrop turns per-item drag-over events into playlist
// reorders, propagating them to the queue when the dragged playlist is
// the queue's source.
package dragdrop

import (
	"github.com/auralabs/aura/internal/playlist"
	"github.com/auralabs/aura/internal/playlists"
)

// Controller tracks one in-flight drag within a playlist. Reordering
// happens live on every drag-over event so the list follows the
// pointer; there is no revert on cancel — ending a drag leaves the last
// computed order in place.
type Controller struct {
	store *playlists.Store
	queue *playlist.Queue

	playlistID string
	dragIndex  int // current position of the dragged item, -1 when idle
}

// New creates a drag controller over the given store and queue.
func New(store *playlists.Store, queue *playlist.Queue) *Controller {
	return &Controller{
		store:     store,
		queue:     queue,
		dragIndex: -1,
	}
}

// BeginDrag records the item picked up within the playlist's track
// list. An out-of-range index leaves the controller idle.
func (c *Controller) BeginDrag(playlistID string, sourceIndex int) {
	p := c.store.Get(playlistID)
	if p == nil || sourceIndex < 0 || sourceIndex >= len(p.TrackIDs) {
		c.playlistID = ""
		c.dragIndex = -1
		return
	}
	c.playlistID = playlistID
	c.dragIndex = sourceIndex
}

// DragOver moves the dragged item to targetIndex, writes the new order
// to the store, and reconciles the queue. Each pointer-over event is a
// real order mutation; the queue reconciliation moves the cursor with
// the playing track so reordering never changes what is heard.
func (c *Controller) DragOver(targetIndex int) {
	if c.dragIndex < 0 {
		return
	}
	p := c.store.Get(c.playlistID)
	if p == nil {
		// Playlist deleted mid-drag; drop the drag.
		c.playlistID = ""
		c.dragIndex = -1
		return
	}
	if targetIndex < 0 {
		targetIndex = 0
	}
	if targetIndex >= len(p.TrackIDs) {
		targetIndex = len(p.TrackIDs) - 1
	}
	if targetIndex == c.dragIndex {
		return
	}

	newOrder := playlist.Reorder(p.TrackIDs, c.dragIndex, targetIndex)
	c.store.ReplaceOrder(c.playlistID, newOrder)
	c.queue.ReconcileOrder(c.playlistID, newOrder)
	c.dragIndex = targetIndex
}

// DropFromLibrary is the terminal action of a cross-panel drag: a
// library track dropped onto a playlist. Plain idempotent append, no
// reorder involved.
func (c *Controller) DropFromLibrary(targetPlaylistID, trackID string) {
	c.store.AddTrack(targetPlaylistID, trackID)
}

// End clears the drag state. The last computed order stays.
func (c *Controller) End() {
	c.playlistID = ""
	c.dragIndex = -1
}

// Dragging reports whether a drag is in flight.
func (c *Controller) Dragging() bool {
	return c.dragIndex >= 0
}

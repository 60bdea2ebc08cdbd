// Package store persists library metadata, uploaded audio blobs,
// playlists and the queue. The core only ever calls get/put/delete;
// everything else about storage is this package's business.
package store

import (
	"github.com/auralabs/aura/internal/library"
	"github.com/auralabs/aura/internal/playlists"
)

// QueueState is the persisted shape of the playback queue.
type QueueState struct {
	TrackIDs         []string
	Cursor           int
	SourcePlaylistID string
}

// Store is the persistence collaborator contract.
type Store interface {
	// AllMetadata returns every persisted track.
	AllMetadata() ([]library.Track, error)
	// PutAllMetadata replaces the persisted library. Tracks in the
	// ephemeral online namespace are skipped, never stored.
	PutAllMetadata(tracks []library.Track) error

	// Blob returns the uploaded audio bytes for a track id, or nil
	// when absent.
	Blob(id string) ([]byte, error)
	PutBlob(id string, data []byte) error
	DeleteBlob(id string) error

	// IsInitialized and MarkInitialized gate first-run seeding.
	IsInitialized() (bool, error)
	MarkInitialized() error

	Playlists() ([]playlists.Playlist, error)
	PutPlaylists(lists []playlists.Playlist) error

	// QueueState returns the saved queue, or nil when none was saved.
	QueueState() (*QueueState, error)
	// ScheduleQueueSave persists the queue after a short debounce, so
	// rapid advance/reorder bursts collapse into one write. A pending
	// save is flushed by Close.
	ScheduleQueueSave(state QueueState)

	Close() error
}

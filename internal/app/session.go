// Package app wires the core pieces together into one session object.
// There are no ambient singletons: everything the player needs hangs
// off the Session, which owns load-at-startup and save-on-change.
package app

import (
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/auralabs/aura/internal/catalog"
	"github.com/auralabs/aura/internal/config"
	"github.com/auralabs/aura/internal/dragdrop"
	"github.com/auralabs/aura/internal/errmsg"
	"github.com/auralabs/aura/internal/genai"
	"github.com/auralabs/aura/internal/importer"
	"github.com/auralabs/aura/internal/library"
	"github.com/auralabs/aura/internal/playback"
	"github.com/auralabs/aura/internal/playlist"
	"github.com/auralabs/aura/internal/playlists"
	"github.com/auralabs/aura/internal/selection"
	"github.com/auralabs/aura/internal/store"
)

// Session is the root composition point. All mutations of the registry,
// playlist store and queue go through it so that every change schedules
// a save and cross-component contracts (deletion cascades, queue
// reconciliation) fire in one place.
//
// Core mutations are synchronous and guarded by one mutex; the only
// other writer is the playback event pump.
type Session struct {
	cfg         *config.Config
	store       store.Store
	recommender genai.Service // nil when the AI DJ is not configured
	player      playback.Service
	importer    *importer.Importer
	log         *logrus.Entry

	mu        sync.Mutex
	registry  *library.Registry
	lists     *playlists.Store
	queue     *playlist.Queue
	selection *selection.Selection
	drag      *dragdrop.Controller

	playing  bool
	position time.Duration

	recommendGen uint64
	searchGen    uint64

	pumpDone  chan struct{}
	closeOnce sync.Once
}

// New wires a session from its collaborators. recommender may be nil;
// the AI DJ operations then fail with ErrNotConfigured.
func New(cfg *config.Config, st store.Store, recommender genai.Service, player playback.Service, log *logrus.Logger) *Session {
	registry := library.NewRegistry()
	lists := playlists.NewStore()
	queue := playlist.NewQueue(registry)
	return &Session{
		cfg:         cfg,
		store:       st,
		recommender: recommender,
		player:      player,
		importer:    importer.New(st, log),
		log:         log.WithField("component", "session"),
		registry:    registry,
		lists:       lists,
		queue:       queue,
		selection:   selection.New(),
		drag:        dragdrop.New(lists, queue),
		pumpDone:    make(chan struct{}),
	}
}

// Start loads persisted state, seeding the starter catalog on first
// run, and begins consuming playback events.
func (s *Session) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	initialized, err := s.store.IsInitialized()
	if err != nil {
		return fmt.Errorf("%s: %w", errmsg.OpInitialize, err)
	}

	if !initialized {
		if err := s.seed(); err != nil {
			return err
		}
	} else if err := s.load(); err != nil {
		return err
	}

	if s.queue.IsEmpty() {
		s.queue.LoadRegistry()
	}

	go s.pumpEvents()
	return nil
}

func (s *Session) seed() error {
	if s.cfg.ShouldSeedLibrary() {
		s.registry.UpsertMany(catalog.SeedTracks()...)
		if err := s.store.PutAllMetadata(s.registry.All()); err != nil {
			return fmt.Errorf("%s: %w", errmsg.OpLibrarySeed, err)
		}
	}
	if err := s.store.MarkInitialized(); err != nil {
		return fmt.Errorf("%s: %w", errmsg.OpInitialize, err)
	}
	s.log.WithField("tracks", s.registry.Len()).Info("library seeded")
	return nil
}

func (s *Session) load() error {
	tracks, err := s.store.AllMetadata()
	if err != nil {
		return fmt.Errorf("%s: %w", errmsg.OpLibraryLoad, err)
	}

	// Uploads are only playable while their audio blob survives; a
	// track whose blob is gone is dropped rather than shown unplayable.
	kept := tracks[:0]
	for _, t := range tracks {
		if library.IsUpload(t.ID) {
			data, err := s.store.Blob(t.ID)
			if err != nil {
				return fmt.Errorf("%s: %w", errmsg.OpLibraryLoad, err)
			}
			if data == nil {
				s.log.WithField("id", t.ID).Warn("upload blob missing, dropping track")
				continue
			}
		}
		kept = append(kept, t)
	}
	s.registry.UpsertMany(kept...)
	if len(kept) != len(tracks) {
		if err := s.store.PutAllMetadata(s.registry.All()); err != nil {
			s.log.Error(errmsg.Format(errmsg.OpLibrarySave, err))
		}
	}

	lists, err := s.store.Playlists()
	if err != nil {
		return fmt.Errorf("%s: %w", errmsg.OpLibraryLoad, err)
	}
	s.lists.Restore(lists)

	state, err := s.store.QueueState()
	if err != nil {
		return fmt.Errorf("%s: %w", errmsg.OpQueueRestore, err)
	}
	if state != nil {
		ids := s.existingIDs(state.TrackIDs)
		if s.lists.Get(state.SourcePlaylistID) == nil {
			state.SourcePlaylistID = ""
		}
		s.queue.Load(ids, state.Cursor, state.SourcePlaylistID)
	}
	return nil
}

// Close stops the event pump and flushes pending saves. Safe to call
// more than once; later calls do nothing.
func (s *Session) Close() error {
	var err error
	s.closeOnce.Do(func() {
		close(s.pumpDone)
		err = s.store.Close()
	})
	return err
}

// Upload ingests one uploaded audio file and adds it to the library.
func (s *Session) Upload(filename string, data []byte) (library.Track, error) {
	track, err := s.importer.Import(filename, data)
	if err != nil {
		return library.Track{}, fmt.Errorf("%s: %w", errmsg.OpTrackUpload, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.registry.UpsertMany(track)
	s.saveLibrary()
	return track, nil
}

// DeleteTrack removes a track and every reference to it: its blob, its
// playlist entries and its queue occurrences. The registry does not
// cascade, so the session does.
func (s *Session) DeleteTrack(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	wasCurrent := s.queue.CurrentID() == id

	if library.IsUpload(id) {
		if err := s.store.DeleteBlob(id); err != nil {
			s.log.Error(errmsg.FormatWith(errmsg.OpTrackDelete, id, err))
		}
	}
	s.registry.Remove(id)
	s.lists.RemoveTrackEverywhere(id)
	s.queue.Remove(id)

	if wasCurrent {
		s.playing = false
		s.player.Pause()
	}

	s.saveLibrary()
	s.savePlaylists()
	s.saveQueue()
}

// SetRating stores a 0-5 rating on the track.
func (s *Session) SetRating(id string, rating int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t := s.registry.ByID(id)
	if t == nil {
		return
	}
	t.Rating = rating
	s.registry.UpsertMany(*t)
	s.saveLibrary()
}

// ReportDuration fills in a track's real duration once the playback
// collaborator has decoded it.
func (s *Session) ReportDuration(id string, seconds int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reportDurationLocked(id, seconds)
}

func (s *Session) reportDurationLocked(id string, seconds int) {
	t := s.registry.ByID(id)
	if t == nil || t.Duration == seconds || seconds <= 0 {
		return
	}
	t.Duration = seconds
	s.registry.UpsertMany(*t)
	s.saveLibrary()
}

// CreatePlaylist adds a new empty playlist.
func (s *Session) CreatePlaylist(name string) (*playlists.Playlist, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, err := s.lists.Create(name)
	if err != nil {
		return nil, err
	}
	s.savePlaylists()
	return p, nil
}

// RenamePlaylist changes a playlist's name.
func (s *Session) RenamePlaylist(id, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.lists.Rename(id, name); err != nil {
		return err
	}
	s.savePlaylists()
	return nil
}

// DeletePlaylist removes a playlist. If the queue was loaded from it,
// the queue falls back to the full library.
func (s *Session) DeletePlaylist(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lists.Delete(id)
	s.queue.SourceDeleted(id)
	s.savePlaylists()
	s.saveQueue()
}

// AddToPlaylist appends a track to a playlist. Idempotent; a vanished
// playlist is a silent no-op.
func (s *Session) AddToPlaylist(playlistID, trackID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lists.AddTrack(playlistID, trackID)
	s.savePlaylists()
}

// RemoveFromPlaylist removes a track's first occurrence in a playlist.
func (s *Session) RemoveFromPlaylist(playlistID, trackID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lists.RemoveTrack(playlistID, trackID)
	s.savePlaylists()
}

// CommitSelection adds the bulk-add selection to its target playlist
// and clears it.
func (s *Session) CommitSelection(playlistID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.selection.Commit(s.lists, playlistID)
	s.savePlaylists()
}

// existingIDs filters out ids whose track no longer exists. Dangling
// references are filtered at load time, never surfaced as errors.
func (s *Session) existingIDs(ids []string) []string {
	kept := make([]string, 0, len(ids))
	for _, id := range ids {
		if s.registry.ByID(id) != nil {
			kept = append(kept, id)
		}
	}
	return kept
}

func (s *Session) saveLibrary() {
	if err := s.store.PutAllMetadata(s.registry.All()); err != nil {
		s.log.Error(errmsg.Format(errmsg.OpLibrarySave, err))
	}
}

func (s *Session) savePlaylists() {
	if err := s.store.PutPlaylists(s.lists.List()); err != nil {
		s.log.Error(errmsg.Format(errmsg.OpPlaylistSave, err))
	}
}

func (s *Session) saveQueue() {
	s.store.ScheduleQueueSave(store.QueueState{
		TrackIDs:         s.queue.IDs(),
		Cursor:           s.queue.CurrentIndex(),
		SourcePlaylistID: s.queue.SourcePlaylistID(),
	})
}

// Library returns the tracks matching the query, or the full library
// for an empty query.
func (s *Session) Library(query string) []library.Track {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.registry.Filter(query)
}

// Playlists returns all playlists in creation order.
func (s *Session) Playlists() []playlists.Playlist {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lists.List()
}

// Playlist returns one playlist, or nil if absent.
func (s *Session) Playlist(id string) *playlists.Playlist {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lists.Get(id)
}

// Selection exposes the bulk-add selection for the UI shell.
func (s *Session) Selection() *selection.Selection {
	return s.selection
}

// BeginDrag starts a drag within the playlist's track list.
func (s *Session) BeginDrag(playlistID string, sourceIndex int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.drag.BeginDrag(playlistID, sourceIndex)
}

// DragOver applies one drag-over event. The reorder lands in the
// playlist store and queue immediately, so the changed order is saved
// right away rather than waiting for the drop.
func (s *Session) DragOver(targetIndex int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.drag.Dragging() {
		return
	}
	s.drag.DragOver(targetIndex)
	s.savePlaylists()
	s.saveQueue()
}

// EndDrag finishes the drag, leaving the last computed order in place.
func (s *Session) EndDrag() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.drag.End()
}

// DropOnPlaylist handles a library track dropped onto a playlist.
func (s *Session) DropOnPlaylist(playlistID, trackID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.drag.DropFromLibrary(playlistID, trackID)
	s.savePlaylists()
}

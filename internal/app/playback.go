package app

import (
	"time"

	"github.com/auralabs/aura/internal/errmsg"
	"github.com/auralabs/aura/internal/library"
	"github.com/auralabs/aura/internal/playback"
)

// PlayPlaylist loads a playlist into the queue at the given index and
// starts playback. Dangling track ids are filtered out at load time; a
// missing playlist is a silent no-op.
func (s *Session) PlayPlaylist(playlistID string, startIndex int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := s.lists.Get(playlistID)
	if p == nil {
		return
	}
	s.queue.Load(s.existingIDs(p.TrackIDs), startIndex, playlistID)
	s.saveQueue()
	s.playCurrentLocked()
}

// PlayLibrary loads the whole library into the queue at the given
// index and starts playback.
func (s *Session) PlayLibrary(startIndex int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.queue.Load(s.registry.IDs(), startIndex, "")
	s.saveQueue()
	s.playCurrentLocked()
}

// TogglePlay pauses or resumes the current track.
func (s *Session) TogglePlay() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.playing {
		s.playing = false
		s.player.Pause()
		return
	}
	s.playCurrentLocked()
}

// Next skips forward, wrapping at the end of the queue.
func (s *Session) Next() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.queue.Advance()
	s.saveQueue()
	s.playCurrentLocked()
}

// Previous skips backward, wrapping at the start of the queue.
func (s *Session) Previous() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.queue.Retreat()
	s.saveQueue()
	s.playCurrentLocked()
}

// SeekTo moves the playback position within the current track.
func (s *Session) SeekTo(pos time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.position = pos
	s.player.Seek(pos)
}

// CurrentTrack returns the track at the queue cursor, or nil when the
// queue is empty or the entry is dangling.
func (s *Session) CurrentTrack() *library.Track {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.queue.Current()
}

// QueueIDs returns a copy of the queued track ids.
func (s *Session) QueueIDs() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.queue.IDs()
}

// IsPlaying reports whether playback is running.
func (s *Session) IsPlaying() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.playing
}

// Position returns the last reported playback position.
func (s *Session) Position() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.position
}

// playCurrentLocked starts playback of the track at the cursor. An
// empty queue or dangling entry stops playback instead of erroring.
func (s *Session) playCurrentLocked() {
	t := s.queue.Current()
	if t == nil {
		s.playing = false
		s.player.Pause()
		return
	}
	s.position = 0
	if err := s.player.Play(t.SourceURL); err != nil {
		s.playing = false
		s.log.Error(errmsg.FormatWith(errmsg.OpPlaybackStart, t.Title, err))
		return
	}
	s.playing = true
}

// pumpEvents consumes playback events until Close. A natural track end
// advances the queue and keeps playing.
func (s *Session) pumpEvents() {
	events := s.player.Events()
	for {
		select {
		case <-s.pumpDone:
			return
		case ev, ok := <-events:
			if !ok {
				return
			}
			s.handleEvent(ev)
		}
	}
}

func (s *Session) handleEvent(ev playback.Event) {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch ev := ev.(type) {
	case playback.TimeUpdate:
		s.position = ev.Position
	case playback.DurationKnown:
		if id := s.queue.CurrentID(); id != "" {
			s.reportDurationLocked(id, int(ev.Duration/time.Second))
		}
	case playback.Ended:
		if !s.playing {
			return
		}
		s.queue.Advance()
		s.saveQueue()
		s.playCurrentLocked()
	}
}

package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/auralabs/aura/internal/errmsg"
	"github.com/auralabs/aura/internal/genai"
	"github.com/auralabs/aura/internal/library"
)

// ErrNotConfigured is returned by AI DJ operations when no
// recommendation service was configured.
var ErrNotConfigured = errors.New("generative API is not configured")

// ErrSuperseded is returned when a newer request on the same slot was
// issued while this one was in flight. Callers drop the result.
var ErrSuperseded = errors.New("superseded by a newer request")

// Recommend asks the AI DJ for tracks matching a mood, steering it with
// the user's top-rated tracks and the library contents. Only the latest
// in-flight recommendation counts; an older call that resolves after a
// newer one returns ErrSuperseded.
func (s *Session) Recommend(ctx context.Context, mood string) (*genai.Recommendation, error) {
	if s.recommender == nil {
		return nil, ErrNotConfigured
	}

	s.mu.Lock()
	s.recommendGen++
	gen := s.recommendGen
	favorites := s.favoritesLocked()
	hint := s.libraryHintLocked()
	s.mu.Unlock()

	rec, err := s.recommender.Recommend(ctx, mood, favorites, hint)

	s.mu.Lock()
	stale := gen != s.recommendGen
	s.mu.Unlock()
	if stale {
		return nil, ErrSuperseded
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errmsg.OpRecommend, err)
	}
	return rec, nil
}

// SearchOnline performs a web search for tracks. Same staleness rule as
// Recommend, on its own slot.
func (s *Session) SearchOnline(ctx context.Context, query string) ([]genai.Candidate, error) {
	if s.recommender == nil {
		return nil, ErrNotConfigured
	}

	s.mu.Lock()
	s.searchGen++
	gen := s.searchGen
	s.mu.Unlock()

	candidates, err := s.recommender.Search(ctx, query)

	s.mu.Lock()
	stale := gen != s.searchGen
	s.mu.Unlock()
	if stale {
		return nil, ErrSuperseded
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errmsg.OpWebSearch, err)
	}
	return candidates, nil
}

// SongInsight returns a short fact about the given song.
func (s *Session) SongInsight(ctx context.Context, title, artist string) (string, error) {
	if s.recommender == nil {
		return "", ErrNotConfigured
	}
	text, err := s.recommender.SongInsight(ctx, title, artist)
	if err != nil {
		return "", fmt.Errorf("%s: %w", errmsg.OpSongInsight, err)
	}
	return text, nil
}

// SongStory returns the story behind the given song.
func (s *Session) SongStory(ctx context.Context, title, artist string, alternate bool) (string, error) {
	if s.recommender == nil {
		return "", ErrNotConfigured
	}
	text, err := s.recommender.SongStory(ctx, title, artist, alternate)
	if err != nil {
		return "", fmt.Errorf("%s: %w", errmsg.OpSongStory, err)
	}
	return text, nil
}

// PlayCandidate plays a recommended or found track immediately. A
// fuzzy registry match plays the library's own copy; otherwise an
// ephemeral online track is minted over the preview stream. Either way
// the id goes to the front of the queue.
func (s *Session) PlayCandidate(c genai.Candidate) library.Track {
	s.mu.Lock()
	defer s.mu.Unlock()

	t := s.registry.ByTitleArtist(c.Title, c.Artist)
	if t == nil {
		album := c.Album
		if album == "" {
			album = "Web"
		}
		minted := library.Track{
			ID:          library.NewOnlineID(),
			Title:       c.Title,
			Artist:      c.Artist,
			Album:       album,
			SourceURL:   s.cfg.GetPreviewURL(),
			AccentColor: "#6366f1",
		}
		s.registry.UpsertMany(minted)
		t = &minted
	}

	s.queue.PrependAndPlay(t.ID)
	s.saveQueue()
	s.playCurrentLocked()
	return *t
}

// favoritesLocked returns "Title by Artist" strings for the top-rated
// tracks, used to steer recommendations.
func (s *Session) favoritesLocked() []string {
	var favorites []string
	for _, t := range s.registry.All() {
		if t.Rating >= 4 {
			favorites = append(favorites, fmt.Sprintf("%s by %s", t.Title, t.Artist))
		}
	}
	return favorites
}

// libraryHintLocked returns "Title by Artist" strings for the whole
// library so the model can prefer tracks the user can play directly.
func (s *Session) libraryHintLocked() []string {
	var hint []string
	for _, t := range s.registry.All() {
		hint = append(hint, fmt.Sprintf("%s by %s", t.Title, t.Artist))
	}
	return hint
}

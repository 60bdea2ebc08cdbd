// Package genai talks to the generative-language API behind the AI DJ
// panel: mood recommendations, web search of tracks, and per-song
// insight/story text. The core only consumes candidate lists back;
// resolving them against the library happens in the session.
package genai

import "context"

// Candidate is one recommended or found track, not yet resolved
// against the library.
type Candidate struct {
	Title    string `json:"title"`
	Artist   string `json:"artist"`
	Album    string `json:"album,omitempty"`
	CoverURL string `json:"coverUrl,omitempty"`
}

// Recommendation is the structured answer to a mood prompt.
type Recommendation struct {
	Vibe            string      `json:"vibe"`
	Description     string      `json:"description"`
	SuggestedArtist string      `json:"suggestedArtist"`
	SuggestedGenre  string      `json:"suggestedGenre"`
	Candidates      []Candidate `json:"suggestedPlaylist"`
}

// Service is the recommendation/search collaborator contract.
type Service interface {
	// Recommend asks for tracks matching a mood. favorites and
	// libraryHint steer the model toward tracks the user can play
	// immediately; both may be empty.
	Recommend(ctx context.Context, mood string, favorites, libraryHint []string) (*Recommendation, error)

	// Search performs a web search for tracks matching the query.
	Search(ctx context.Context, query string) ([]Candidate, error)

	// SongInsight returns a short fact about the song.
	SongInsight(ctx context.Context, title, artist string) (string, error)

	// SongStory returns the story behind the song; alternate requests
	// a different telling for the same song.
	SongStory(ctx context.Context, title, artist string, alternate bool) (string, error)
}

package library

import (
	"strings"

	"github.com/google/uuid"

	"github.com/auralabs/aura/internal/lyrics"
)

// Id namespace prefixes. The persistence layer uses them to decide
// whether a track is durable or ephemeral.
const (
	SeedPrefix   = "seed-"   // shipped catalog tracks
	UserPrefix   = "user-"   // locally uploaded, blob-backed
	OnlinePrefix = "online-" // resolved from web search, never persisted
)

// Track represents a single playable item in the registry.
type Track struct {
	ID          string
	Title       string
	Artist      string
	Album       string
	SourceURL   string // playable media reference, opaque to the core
	Duration    int    // seconds; 0 until playback reports the real value
	AccentColor string
	Lyrics      []lyrics.Line
	Rating      int
}

// NewUserID mints an id for a locally uploaded track.
func NewUserID() string {
	return UserPrefix + uuid.NewString()
}

// NewOnlineID mints an id for a track resolved from a web search.
func NewOnlineID() string {
	return OnlinePrefix + uuid.NewString()
}

// IsEphemeral reports whether the track id belongs to the online
// namespace. Ephemeral tracks are never written to durable storage.
func IsEphemeral(id string) bool {
	return strings.HasPrefix(id, OnlinePrefix)
}

// IsUpload reports whether the track id belongs to the upload
// namespace. Upload metadata is only usable while its blob exists.
func IsUpload(id string) bool {
	return strings.HasPrefix(id, UserPrefix)
}

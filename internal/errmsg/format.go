// Package errmsg provides consistent error formatting for user-facing messages.
package errmsg

import "fmt"

// Op represents an operation that can fail.
type Op string

// Operation constants - grouped by domain.
const (
	// Library operations
	OpLibraryLoad Op = "load library"
	OpLibrarySave Op = "save library"
	OpLibrarySeed Op = "seed starter library"
	OpTrackUpload Op = "upload track"
	OpTrackDelete Op = "delete track"

	// Playlist operations
	OpPlaylistSave Op = "save playlists"

	// Queue operations
	OpQueueRestore Op = "restore queue"

	// Playback operations
	OpPlaybackStart Op = "start playback"

	// AI DJ operations
	OpRecommend   Op = "fetch recommendation"
	OpWebSearch   Op = "search music online"
	OpSongStory   Op = "fetch song story"
	OpSongInsight Op = "fetch song insight"

	// Initialization
	OpInitialize Op = "initialize application"
)

// Format creates a user-friendly error message.
func Format(op Op, err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Failed to %s: %v", op, err)
}

// FormatWith creates an error message with additional context.
func FormatWith(op Op, context string, err error) string {
	if err == nil {
		return ""
	}
	if context == "" {
		return Format(op, err)
	}
	return fmt.Sprintf("Failed to %s '%s': %v", op, context, err)
}

// Package catalog holds the built-in starter library seeded on first run.
package catalog

import (
	"time"

	"github.com/auralabs/aura/internal/library"
	"github.com/auralabs/aura/internal/lyrics"
)

// SeedTracks returns the starter tracks written to a fresh library so
// the player is usable before the user uploads anything.
func SeedTracks() []library.Track {
	return []library.Track{
		{
			ID:          library.SeedPrefix + "1",
			Title:       "Cyber Drift",
			Artist:      "Neon Architect",
			Album:       "Future City",
			SourceURL:   "https://www.soundhelix.com/examples/mp3/SoundHelix-Song-1.mp3",
			Duration:    372,
			AccentColor: "#6366f1",
			Lyrics: lyrics.Lines{
				{Time: 0, Text: "Wait for the neon lights"},
				{Time: 5 * time.Second, Text: "Streaming through the digital night"},
				{Time: 10 * time.Second, Text: "Circuit boards and heavy bass"},
				{Time: 15 * time.Second, Text: "Vanishing in binary space"},
				{Time: 20 * time.Second, Text: "The architectural glow..."},
				{Time: 25 * time.Second, Text: "Is all we ever need to know"},
			},
		},
		{
			ID:          library.SeedPrefix + "2",
			Title:       "Stellar Pulse",
			Artist:      "Galactic Voyager",
			Album:       "Deep Space",
			SourceURL:   "https://www.soundhelix.com/examples/mp3/SoundHelix-Song-2.mp3",
			Duration:    425,
			AccentColor: "#a855f7",
			Lyrics: lyrics.Lines{
				{Time: 0, Text: "Floating in the silence"},
				{Time: 4 * time.Second, Text: "Between the stars so cold"},
				{Time: 8 * time.Second, Text: "A pulsing rhythm calls me"},
				{Time: 12 * time.Second, Text: "To secrets yet untold"},
			},
		},
		{
			ID:          library.SeedPrefix + "3",
			Title:       "Midnight Rain",
			Artist:      "Lofi Soul",
			Album:       "Cloud Nine",
			SourceURL:   "https://www.soundhelix.com/examples/mp3/SoundHelix-Song-3.mp3",
			Duration:    312,
			AccentColor: "#ec4899",
			Lyrics: lyrics.Lines{
				{Time: 0, Text: "Coffee's getting cold now"},
				{Time: 5 * time.Second, Text: "Watching rain against the glass"},
				{Time: 10 * time.Second, Text: "Memories like shadows"},
				{Time: 15 * time.Second, Text: "As the minutes slowly pass"},
			},
		},
		{
			ID:          library.SeedPrefix + "4",
			Title:       "Digital Horizon",
			Artist:      "Bit Master",
			Album:       "Data Stream",
			SourceURL:   "https://www.soundhelix.com/examples/mp3/SoundHelix-Song-4.mp3",
			Duration:    388,
			AccentColor: "#06b6d4",
		},
	}
}

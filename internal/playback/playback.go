// Package playback defines the contract with the media playback
// collaborator. The core hands it a source URL and transport commands
// and receives time-position and end-of-track events back; decoding and
// spectrum analysis live entirely on the other side of this interface.
package playback

import "time"

// Service is the playback collaborator contract.
type Service interface {
	// Play starts playback of the given media reference.
	Play(sourceURL string) error
	// Pause pauses playback, keeping the position.
	Pause()
	// Seek moves the playback position.
	Seek(pos time.Duration)
	// Events delivers TimeUpdate and Ended events in emission order.
	Events() <-chan Event
	// Close releases the player. Events is closed afterwards.
	Close() error
}

// Event is a playback notification. One of the concrete types below.
type Event interface{ playbackEvent() }

// TimeUpdate reports the current playback position.
type TimeUpdate struct {
	Position time.Duration
}

// Ended signals natural end of the current track. The session reacts
// by advancing the queue.
type Ended struct{}

// DurationKnown reports the real duration of the playing media once
// the collaborator has decoded enough to know it.
type DurationKnown struct {
	Duration time.Duration
}

func (TimeUpdate) playbackEvent()    {}
func (Ended) playbackEvent()         {}
func (DurationKnown) playbackEvent() {}

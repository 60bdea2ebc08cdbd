package playback

import (
	"sync"
	"time"
)

// Mock is an in-memory playback service for tests and the demo shell.
// It records transport calls and lets tests emit events by hand.
type Mock struct {
	mu     sync.Mutex
	events chan Event
	closed bool

	Played []string
	Paused int
	Seeks  []time.Duration
}

// NewMock creates a mock playback service.
func NewMock() *Mock {
	return &Mock{events: make(chan Event, 16)}
}

func (m *Mock) Play(sourceURL string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Played = append(m.Played, sourceURL)
	return nil
}

func (m *Mock) Pause() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Paused++
}

func (m *Mock) Seek(pos time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Seeks = append(m.Seeks, pos)
}

func (m *Mock) Events() <-chan Event {
	return m.events
}

// Emit delivers an event to the consumer, as the real collaborator
// would from its decoder loop.
func (m *Mock) Emit(ev Event) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return
	}
	m.events <- ev
}

func (m *Mock) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.closed {
		m.closed = true
		close(m.events)
	}
	return nil
}

// LastPlayed returns the most recent Play argument, or "".
func (m *Mock) LastPlayed() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.Played) == 0 {
		return ""
	}
	return m.Played[len(m.Played)-1]
}

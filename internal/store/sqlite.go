package store

import (
	"database/sql"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/adrg/xdg"
	"github.com/sirupsen/logrus"
	_ "modernc.org/sqlite" // SQLite driver
)

const (
	appName      = "aura"
	dbFileName   = "aura.db"
	saveDebounce = 500 * time.Millisecond
)

// Manager is the SQLite-backed Store implementation.
type Manager struct {
	db  *sql.DB
	log *logrus.Entry

	saveMu    sync.Mutex
	saveTimer *time.Timer
	pending   *QueueState
}

// Open opens the store at the default XDG data location.
func Open() (*Manager, error) {
	dbPath, err := xdg.DataFile(filepath.Join(appName, dbFileName))
	if err != nil {
		return nil, err
	}
	return OpenPath(dbPath)
}

// OpenPath opens the store at an explicit path. Used when the config
// overrides the data location and by tests (":memory:").
func OpenPath(dbPath string) (*Manager, error) {
	if dir := filepath.Dir(dbPath); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, err
		}
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, err
	}

	if err := initSchema(db); err != nil {
		db.Close()
		return nil, err
	}

	return &Manager{
		db:  db,
		log: logrus.WithField("component", "store"),
	}, nil
}

// ScheduleQueueSave implements Store. The latest state wins; the write
// happens after the debounce window or on Close, whichever is first.
func (m *Manager) ScheduleQueueSave(state QueueState) {
	m.saveMu.Lock()
	defer m.saveMu.Unlock()

	m.pending = &state

	if m.saveTimer != nil {
		m.saveTimer.Stop()
	}

	m.saveTimer = time.AfterFunc(saveDebounce, func() {
		m.saveMu.Lock()
		pending := m.pending
		m.pending = nil
		m.saveMu.Unlock()

		if pending != nil {
			if err := m.saveQueueState(*pending); err != nil {
				m.log.WithError(err).Warn("queue save failed")
			}
		}
	})
}

// Close flushes any pending queue save and closes the database.
func (m *Manager) Close() error {
	m.saveMu.Lock()
	if m.saveTimer != nil {
		m.saveTimer.Stop()
	}
	pending := m.pending
	m.pending = nil
	m.saveMu.Unlock()

	if pending != nil {
		if err := m.saveQueueState(*pending); err != nil {
			m.log.WithError(err).Warn("final queue save failed")
		}
	}

	return m.db.Close()
}

// IsInitialized implements Store.
func (m *Manager) IsInitialized() (bool, error) {
	var initialized bool
	err := m.db.QueryRow(`SELECT initialized FROM app_state WHERE id = 1`).Scan(&initialized)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return initialized, nil
}

// MarkInitialized implements Store.
func (m *Manager) MarkInitialized() error {
	_, err := m.db.Exec(`
		INSERT INTO app_state (id, initialized) VALUES (1, 1)
		ON CONFLICT(id) DO UPDATE SET initialized = 1
	`)
	return err
}

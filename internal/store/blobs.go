package store

import (
	"database/sql"

	"github.com/dustin/go-humanize"
)

// Blob implements Store. Returns nil bytes when no blob is stored,
// which the session treats as "upload lost, drop the track".
func (m *Manager) Blob(id string) ([]byte, error) {
	var data []byte
	err := m.db.QueryRow(`SELECT data FROM blobs WHERE id = ?`, id).Scan(&data)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return data, nil
}

// PutBlob implements Store.
func (m *Manager) PutBlob(id string, data []byte) error {
	_, err := m.db.Exec(`
		INSERT INTO blobs (id, data) VALUES (?, ?)
		ON CONFLICT(id) DO UPDATE SET data = excluded.data
	`, id, data)
	if err != nil {
		return err
	}
	m.log.WithFields(map[string]any{
		"id":   id,
		"size": humanize.Bytes(uint64(len(data))),
	}).Debug("blob stored")
	return nil
}

// DeleteBlob implements Store. No-op for unknown ids.
func (m *Manager) DeleteBlob(id string) error {
	_, err := m.db.Exec(`DELETE FROM blobs WHERE id = ?`, id)
	return err
}

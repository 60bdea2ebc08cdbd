package store

import (
	"database/sql"

	dbutil "github.com/auralabs/aura/internal/db"
	"github.com/auralabs/aura/internal/playlists"
)

// Playlists implements Store.
func (m *Manager) Playlists() ([]playlists.Playlist, error) {
	rows, err := m.db.Query(`SELECT id, name FROM playlists ORDER BY position`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var lists []playlists.Playlist
	for rows.Next() {
		var p playlists.Playlist
		if err := rows.Scan(&p.ID, &p.Name); err != nil {
			return nil, err
		}
		lists = append(lists, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range lists {
		ids, err := m.playlistTrackIDs(lists[i].ID)
		if err != nil {
			return nil, err
		}
		lists[i].TrackIDs = ids
	}
	return lists, nil
}

func (m *Manager) playlistTrackIDs(playlistID string) ([]string, error) {
	rows, err := m.db.Query(`
		SELECT track_id FROM playlist_tracks
		WHERE playlist_id = ?
		ORDER BY position
	`, playlistID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ids := []string{}
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// PutPlaylists implements Store.
func (m *Manager) PutPlaylists(lists []playlists.Playlist) error {
	return dbutil.WithTx(m.db, func(tx *sql.Tx) error {
		if _, err := tx.Exec(`DELETE FROM playlist_tracks`); err != nil {
			return err
		}
		if _, err := tx.Exec(`DELETE FROM playlists`); err != nil {
			return err
		}

		listStmt, err := tx.Prepare(`INSERT INTO playlists (id, position, name) VALUES (?, ?, ?)`)
		if err != nil {
			return err
		}
		defer listStmt.Close()

		trackStmt, err := tx.Prepare(`
			INSERT INTO playlist_tracks (playlist_id, position, track_id)
			VALUES (?, ?, ?)
		`)
		if err != nil {
			return err
		}
		defer trackStmt.Close()

		for i, p := range lists {
			if _, err := listStmt.Exec(p.ID, i, p.Name); err != nil {
				return err
			}
			for j, trackID := range p.TrackIDs {
				if _, err := trackStmt.Exec(p.ID, j, trackID); err != nil {
					return err
				}
			}
		}
		return nil
	})
}

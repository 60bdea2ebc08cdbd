package store

import (
	"database/sql"
	"errors"

	dbutil "github.com/auralabs/aura/internal/db"
)

// QueueState implements Store. Returns nil when no queue was saved.
func (m *Manager) QueueState() (*QueueState, error) {
	var cursor int
	var sourceID sql.NullString
	row := m.db.QueryRow(`SELECT cursor, source_playlist_id FROM queue_state WHERE id = 1`)
	err := row.Scan(&cursor, &sourceID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	rows, err := m.db.Query(`SELECT track_id FROM queue_tracks ORDER BY position`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &QueueState{
		TrackIDs:         ids,
		Cursor:           cursor,
		SourcePlaylistID: dbutil.NullStringValue(sourceID),
	}, nil
}

func (m *Manager) saveQueueState(state QueueState) error {
	return dbutil.WithTx(m.db, func(tx *sql.Tx) error {
		if _, err := tx.Exec(`DELETE FROM queue_tracks`); err != nil {
			return err
		}

		var sourceID any
		if state.SourcePlaylistID != "" {
			sourceID = state.SourcePlaylistID
		}
		_, err := tx.Exec(`
			INSERT INTO queue_state (id, cursor, source_playlist_id)
			VALUES (1, ?, ?)
			ON CONFLICT(id) DO UPDATE SET
				cursor = excluded.cursor,
				source_playlist_id = excluded.source_playlist_id
		`, state.Cursor, sourceID)
		if err != nil {
			return err
		}

		stmt, err := tx.Prepare(`INSERT INTO queue_tracks (position, track_id) VALUES (?, ?)`)
		if err != nil {
			return err
		}
		defer stmt.Close()

		for i, id := range state.TrackIDs {
			if _, err := stmt.Exec(i, id); err != nil {
				return err
			}
		}
		return nil
	})
}

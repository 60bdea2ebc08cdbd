package store

import (
	"database/sql"
	"encoding/json"
	"time"

	dbutil "github.com/auralabs/aura/internal/db"
	"github.com/auralabs/aura/internal/library"
	"github.com/auralabs/aura/internal/lyrics"
)

// lyricLine is the persisted shape of one lyric line.
type lyricLine struct {
	Ms   int64  `json:"ms"`
	Text string `json:"text"`
}

// AllMetadata implements Store.
func (m *Manager) AllMetadata() ([]library.Track, error) {
	rows, err := m.db.Query(`
		SELECT id, title, artist, album, source_url, duration, accent_color, rating, lyrics
		FROM tracks
		ORDER BY position
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tracks []library.Track
	for rows.Next() {
		var t library.Track
		var accent, rawLyrics sql.NullString
		if err := rows.Scan(&t.ID, &t.Title, &t.Artist, &t.Album,
			&t.SourceURL, &t.Duration, &accent, &t.Rating, &rawLyrics); err != nil {
			return nil, err
		}
		t.AccentColor = dbutil.NullStringValue(accent)
		t.Lyrics = decodeLyrics(dbutil.NullStringValue(rawLyrics))
		tracks = append(tracks, t)
	}
	return tracks, rows.Err()
}

// PutAllMetadata implements Store. Online-namespace tracks are dropped
// on the way in: they only exist for the lifetime of the session.
func (m *Manager) PutAllMetadata(tracks []library.Track) error {
	return dbutil.WithTx(m.db, func(tx *sql.Tx) error {
		if _, err := tx.Exec(`DELETE FROM tracks`); err != nil {
			return err
		}

		stmt, err := tx.Prepare(`
			INSERT INTO tracks (id, position, title, artist, album, source_url, duration, accent_color, rating, lyrics)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		`)
		if err != nil {
			return err
		}
		defer stmt.Close()

		pos := 0
		for _, t := range tracks {
			if library.IsEphemeral(t.ID) {
				continue
			}
			encoded, err := encodeLyrics(t.Lyrics)
			if err != nil {
				return err
			}
			if _, err := stmt.Exec(t.ID, pos, t.Title, t.Artist, t.Album,
				t.SourceURL, t.Duration, t.AccentColor, t.Rating, encoded); err != nil {
				return err
			}
			pos++
		}
		return nil
	})
}

func encodeLyrics(lines []lyrics.Line) (any, error) {
	if len(lines) == 0 {
		return nil, nil
	}
	persisted := make([]lyricLine, len(lines))
	for i, l := range lines {
		persisted[i] = lyricLine{Ms: l.Time.Milliseconds(), Text: l.Text}
	}
	raw, err := json.Marshal(persisted)
	if err != nil {
		return nil, err
	}
	return string(raw), nil
}

func decodeLyrics(raw string) []lyrics.Line {
	if raw == "" {
		return nil
	}
	var persisted []lyricLine
	if err := json.Unmarshal([]byte(raw), &persisted); err != nil {
		// Unreadable lyrics are not worth failing a library load over.
		return nil
	}
	lines := make([]lyrics.Line, len(persisted))
	for i, l := range persisted {
		lines[i] = lyrics.Line{Time: time.Duration(l.Ms) * time.Millisecond, Text: l.Text}
	}
	return lines
}

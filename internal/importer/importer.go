// Package importer turns uploaded audio files into library tracks.
package importer

import (
	"bytes"
	"hash/fnv"
	"path/filepath"
	"strings"

	"github.com/dhowden/tag"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/sirupsen/logrus"

	"github.com/auralabs/aura/internal/library"
	"github.com/auralabs/aura/internal/lyrics"
	"github.com/auralabs/aura/internal/store"
)

// Importer reads tags from uploaded audio, stores the raw bytes as a
// blob and returns the track metadata for the registry. Duration stays
// zero until the playback collaborator reports it.
type Importer struct {
	store store.Store
	log   *logrus.Entry
}

// New creates an Importer persisting blobs through the given store.
func New(s store.Store, log *logrus.Logger) *Importer {
	return &Importer{
		store: s,
		log:   log.WithField("component", "importer"),
	}
}

// Import stores the file bytes and builds a user-namespace track.
// Missing or unreadable tags fall back to the filename stem so an
// untagged file still shows up with something usable.
func (im *Importer) Import(filename string, data []byte) (library.Track, error) {
	id := library.NewUserID()
	if err := im.store.PutBlob(id, data); err != nil {
		return library.Track{}, err
	}

	track := library.Track{
		ID:          id,
		Title:       titleFromFilename(filename),
		Artist:      "Local",
		Album:       "Uploaded",
		AccentColor: accentColor(id),
	}

	m, err := tag.ReadFrom(bytes.NewReader(data))
	if err != nil {
		im.log.WithField("file", filename).WithError(err).Debug("no readable tags, using filename")
		return track, nil
	}
	if title := strings.TrimSpace(m.Title()); title != "" {
		track.Title = title
	}
	if artist := strings.TrimSpace(m.Artist()); artist != "" {
		track.Artist = artist
	}
	if album := strings.TrimSpace(m.Album()); album != "" {
		track.Album = album
	}
	if raw := strings.TrimSpace(m.Lyrics()); raw != "" {
		if lines, err := lyrics.ParseLRC(strings.NewReader(raw)); err == nil {
			track.Lyrics = lines
		}
	}
	return track, nil
}

func titleFromFilename(filename string) string {
	base := filepath.Base(filename)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	if stem == "" {
		return base
	}
	return stem
}

// accentColor derives a stable, reasonably saturated color from the
// track id. Blending in HCL keeps the palette perceptually even.
func accentColor(id string) string {
	h := fnv.New32a()
	h.Write([]byte(id))
	t := float64(h.Sum32()%360) / 360.0

	from, _ := colorful.Hex("#6366f1")
	to, _ := colorful.Hex("#ec4899")
	return from.BlendHcl(to, t).Hex()
}

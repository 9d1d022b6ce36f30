package library

import (
	"errors"
	"log"
	"os"

	"github.com/dhowden/tag"
)

// Enrich fills missing title/artist fields from the audio file's embedded tags.
func Enrich(lib *Library) {
	if lib == nil {
		return
	}
	for _, g := range lib.Groups {
		for _, t := range g.Tracks {
			if t.Title != "" && t.Artist != "" {
				continue
			}
			if err := enrichTrack(t); err != nil && !errors.Is(err, tag.ErrNoTagsFound) {
				log.Printf("library: read tags %q: %v", t.AudioPath(), err)
			}
		}
	}
}

func enrichTrack(t *Track) error {
	path := t.AudioPath()
	if path == "" {
		return nil
	}
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	m, err := tag.ReadFrom(f)
	if err != nil {
		return err
	}
	if t.Title == "" {
		t.Title = m.Title()
	}
	if t.Artist == "" {
		t.Artist = m.Artist()
		if t.Artist == "" {
			t.Artist = m.AlbumArtist()
		}
	}
	return nil
}

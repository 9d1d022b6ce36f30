package library

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

//go:embed songs.yaml
var SongsFS embed.FS

// LoadDefault loads the embedded demo index.
func LoadDefault() (*Library, error) {
	return LoadFromFS(SongsFS, "songs.yaml")
}

// Load reads a song index from disk. Relative group dirs resolve against the index's directory.
func Load(path string) (*Library, error) {
	lib, err := LoadFromFS(os.DirFS(filepath.Dir(path)), filepath.Base(path))
	if err != nil {
		return nil, err
	}
	root := filepath.Dir(path)
	for _, g := range lib.Groups {
		if !filepath.IsAbs(g.Dir) {
			g.Dir = filepath.Join(root, g.Dir)
		}
		for _, t := range g.Tracks {
			t.Dir = g.Dir
		}
	}
	Enrich(lib)
	return lib, nil
}

func LoadFromFS(fsys fs.FS, name string) (*Library, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("library: read %s: %w", name, err)
	}
	return Parse(data)
}

// Parse decodes a YAML song index.
func Parse(data []byte) (*Library, error) {
	var lib Library
	if err := yaml.Unmarshal(data, &lib); err != nil {
		return nil, fmt.Errorf("library: unmarshal: %w", err)
	}
	if err := lib.validate(); err != nil {
		return nil, err
	}
	return &lib, nil
}

// AudioPath returns the on-disk location of the track's audio, or "" for embedded/no audio.
func (t *Track) AudioPath() string {
	if t == nil || t.Audio == "" || t.Dir == "" {
		return ""
	}
	if filepath.IsAbs(t.Audio) {
		return t.Audio
	}
	return filepath.Join(t.Dir, t.Audio)
}

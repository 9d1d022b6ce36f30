package library

import "errors"

var (
	ErrEmptyGroup = errors.New("library: group has no tracks")
	ErrNoSongs    = errors.New("library: index has no songs")
)

// Track is one playable difficulty of a song. Times are in milliseconds.
type Track struct {
	Title       string `yaml:"title"`
	Artist      string `yaml:"artist"`
	Creator     string `yaml:"creator"`
	Version     string `yaml:"version"`
	BPMMin      int    `yaml:"bpm_min"`
	BPMMax      int    `yaml:"bpm_max"`
	EndTime     int    `yaml:"end_time"`
	PreviewTime int    `yaml:"preview_time"`
	Audio       string `yaml:"audio"`

	// Dir is the directory Audio is resolved against. Empty means the embedded assets.
	Dir string `yaml:"-"`
}

// Group is a set of tracks sharing one song, shown as a single row in the browser.
type Group struct {
	Dir    string   `yaml:"dir"`
	Tracks []*Track `yaml:"tracks"`
}

// First returns the track that represents the group for title/artist/creator/BPM.
func (g *Group) First() *Track {
	if g == nil || len(g.Tracks) == 0 {
		return &Track{}
	}
	return g.Tracks[0]
}

// LongestEndTime returns the largest end time across every track in the group.
func (g *Group) LongestEndTime() int {
	longest := 0
	if g == nil {
		return longest
	}
	for _, t := range g.Tracks {
		if t != nil && t.EndTime > longest {
			longest = t.EndTime
		}
	}
	return longest
}

// Label is the browser row text.
func (g *Group) Label() string {
	first := g.First()
	if first.Artist == "" {
		return first.Title
	}
	return first.Artist + " - " + first.Title
}

// Library is an ordered set of song groups.
type Library struct {
	Groups []*Group `yaml:"songs"`
}

func (l *Library) validate() error {
	if len(l.Groups) == 0 {
		return ErrNoSongs
	}
	for i, g := range l.Groups {
		if g == nil || len(g.Tracks) == 0 {
			return ErrEmptyGroup
		}
		for _, t := range g.Tracks {
			if t == nil {
				return ErrEmptyGroup
			}
			if t.BPMMax < t.BPMMin {
				t.BPMMax = t.BPMMin
			}
			t.Dir = l.Groups[i].Dir
		}
	}
	return nil
}

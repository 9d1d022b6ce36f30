package music

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

// stream is the subset of *audio.Player the controller drives.
type stream interface {
	Play()
	Pause()
	IsPlaying() bool
	SetPosition(offset time.Duration) error
	Position() time.Duration
	SetVolume(volume float64)
	Volume() float64
	Close() error
}

var _ stream = (*audio.Player)(nil)

// clockStream stands in for a track whose audio could not be decoded. It keeps
// the position on the wall clock so gameplay timing still works.
type clockStream struct {
	now     func() time.Time
	length  time.Duration
	base    time.Duration
	started time.Time
	playing bool
	volume  float64
}

func newClockStream(now func() time.Time, length time.Duration) *clockStream {
	return &clockStream{now: now, length: length, volume: 1}
}

func (c *clockStream) Play() {
	if c.playing {
		return
	}
	c.started = c.now()
	c.playing = true
}

func (c *clockStream) Pause() {
	if !c.playing {
		return
	}
	c.base = c.Position()
	c.playing = false
}

func (c *clockStream) IsPlaying() bool {
	if !c.playing {
		return false
	}
	return c.length <= 0 || c.Position() < c.length
}

func (c *clockStream) SetPosition(offset time.Duration) error {
	c.base = offset
	c.started = c.now()
	return nil
}

func (c *clockStream) Position() time.Duration {
	pos := c.base
	if c.playing {
		pos += c.now().Sub(c.started)
	}
	if c.length > 0 && pos > c.length {
		pos = c.length
	}
	return pos
}

func (c *clockStream) SetVolume(volume float64) { c.volume = volume }

func (c *clockStream) Volume() float64 { return c.volume }

func (c *clockStream) Close() error { return nil }

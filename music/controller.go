// Package music is the transport for the current song: load, play, pause, fade.
package music

import (
	"errors"
	"log"
	"time"

	"github.com/tapbeat/tapbeat/assets"
	"github.com/tapbeat/tapbeat/common"
	"github.com/tapbeat/tapbeat/library"
)

var errNoAudio = errors.New("music: track has no audio")

type State int

const (
	Stopped State = iota
	Playing
	Paused
)

func (s State) String() string {
	switch s {
	case Stopped:
		return "Stopped"
	case Playing:
		return "Playing"
	case Paused:
		return "Paused"
	default:
		return "Unknown"
	}
}

// opener decodes a track into a playable stream.
type opener func(t *library.Track) (stream, error)

// Controller owns at most one song at a time. Fades and loops are checked in Update.
type Controller struct {
	now    func() time.Time
	open   opener
	volume float64

	track  *library.Track
	stream stream
	state  State

	loop     bool
	loopFrom time.Duration

	fading    bool
	fadeStart time.Time
	fadeDur   time.Duration
	fadeFrom  float64
}

type Option func(*Controller)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(c *Controller) { c.now = now }
}

func withOpener(open opener) Option {
	return func(c *Controller) { c.open = open }
}

func NewController(volume float64, opts ...Option) *Controller {
	c := &Controller{
		now:    time.Now,
		volume: common.Clamp01(volume),
	}
	c.open = openTrack
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func openTrack(t *library.Track) (stream, error) {
	if path := t.AudioPath(); path != "" {
		return assets.OpenAudioPlayer(path)
	}
	if t.Audio != "" && assets.Exists(t.Audio) {
		return assets.LoadAudioPlayer(t.Audio)
	}
	return nil, errNoAudio
}

// Load makes t the current song, stopped at zero. Undecodable audio falls back to a silent clock.
func (c *Controller) Load(t *library.Track) {
	if t == nil {
		return
	}
	if c.track == t && c.stream != nil {
		return
	}
	c.closeStream()

	s, err := c.open(t)
	if err != nil {
		if !errors.Is(err, errNoAudio) {
			log.Printf("music: load %q: %v", t.Audio, err)
		}
		s = newClockStream(c.now, time.Duration(t.EndTime)*time.Millisecond)
	}
	c.track = t
	c.stream = s
	c.state = Stopped
	c.loop = false
	c.fading = false
	c.stream.SetVolume(c.volume)
}

func (c *Controller) closeStream() {
	if c.stream == nil {
		return
	}
	c.stream.Pause()
	if err := c.stream.Close(); err != nil {
		log.Printf("music: close: %v", err)
	}
	c.stream = nil
}

func (c *Controller) Track() *library.Track {
	return c.track
}

func (c *Controller) State() State {
	return c.state
}

// PreviewTime is where the browser preview starts for the current track.
func (c *Controller) PreviewTime() time.Duration {
	if c.track == nil {
		return 0
	}
	return time.Duration(c.track.PreviewTime) * time.Millisecond
}

// Position is the playback offset of the current track.
func (c *Controller) Position() time.Duration {
	if c.stream == nil {
		return 0
	}
	return c.stream.Position()
}

// PlayAt seeks to pos and starts playback, looping back to pos when the track ends if loop is set.
func (c *Controller) PlayAt(pos time.Duration, loop bool) {
	if c.stream == nil {
		return
	}
	c.fading = false
	c.stream.SetVolume(c.volume)
	if err := c.stream.SetPosition(pos); err != nil {
		log.Printf("music: seek %s: %v", pos, err)
	}
	c.stream.Play()
	c.state = Playing
	c.loop = loop
	c.loopFrom = pos
}

func (c *Controller) Play() {
	c.PlayAt(0, false)
}

func (c *Controller) Pause() {
	if c.stream == nil || c.state != Playing {
		return
	}
	c.fading = false
	c.stream.Pause()
	c.state = Paused
}

func (c *Controller) Resume() {
	if c.stream == nil || c.state != Paused {
		return
	}
	c.stream.SetVolume(c.volume)
	c.stream.Play()
	c.state = Playing
}

func (c *Controller) Stop() {
	if c.stream == nil {
		return
	}
	c.fading = false
	c.loop = false
	c.stream.Pause()
	if err := c.stream.SetPosition(0); err != nil {
		log.Printf("music: rewind: %v", err)
	}
	c.stream.SetVolume(c.volume)
	c.state = Stopped
}

// FadeOut ramps the volume to silence over d, then pauses.
func (c *Controller) FadeOut(d time.Duration) {
	if c.stream == nil || c.state != Playing {
		return
	}
	if d <= 0 {
		c.Pause()
		return
	}
	c.fading = true
	c.fadeStart = c.now()
	c.fadeDur = d
	c.fadeFrom = c.stream.Volume()
}

// Fading reports whether a fade-out is in progress.
func (c *Controller) Fading() bool {
	return c.fading
}

// Ended reports whether a non-looping track played to its end.
func (c *Controller) Ended() bool {
	return c.stream != nil && c.state == Playing && !c.loop && !c.stream.IsPlaying()
}

func (c *Controller) Volume() float64 {
	return c.volume
}

func (c *Controller) SetVolume(v float64) {
	c.volume = common.Clamp01(v)
	if c.stream != nil && !c.fading {
		c.stream.SetVolume(c.volume)
	}
}

// Update advances fades and loops. Call once per frame.
func (c *Controller) Update() {
	if c.stream == nil {
		return
	}

	if c.fading {
		t := common.Clamp01(float64(c.now().Sub(c.fadeStart)) / float64(c.fadeDur))
		c.stream.SetVolume(c.fadeFrom * (1 - t))
		if t >= 1 {
			c.fading = false
			c.stream.Pause()
			c.state = Paused
		}
		return
	}

	if c.state == Playing && c.loop && !c.stream.IsPlaying() {
		if err := c.stream.SetPosition(c.loopFrom); err != nil {
			log.Printf("music: loop seek: %v", err)
		}
		c.stream.SetVolume(c.volume)
		c.stream.Play()
	}
}

// Close releases the current stream.
func (c *Controller) Close() {
	c.closeStream()
	c.track = nil
	c.state = Stopped
}

// Package sound plays short UI cues.
package sound

import (
	"encoding/binary"
	"fmt"
	"log"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/tapbeat/tapbeat/assets"
	"github.com/tapbeat/tapbeat/common"
)

type Cue int

const (
	// MenuHit is the confirm cue.
	MenuHit Cue = iota
	// MenuBack plays when leaving a menu or resuming.
	MenuBack
	Fail
	cueCount
)

func (c Cue) String() string {
	switch c {
	case MenuHit:
		return "menuhit"
	case MenuBack:
		return "menuback"
	case Fail:
		return "fail"
	default:
		return fmt.Sprintf("cue(%d)", int(c))
	}
}

// Path is the embedded asset checked before falling back to a generated tone.
func (c Cue) Path() string {
	return "sounds/" + c.String() + ".wav"
}

type tone struct {
	freq     float64
	duration time.Duration
	slide    float64
}

var tones = [cueCount]tone{
	MenuHit:  {freq: 880, duration: 70 * time.Millisecond, slide: 1.2},
	MenuBack: {freq: 660, duration: 90 * time.Millisecond, slide: 0.75},
	Fail:     {freq: 330, duration: 700 * time.Millisecond, slide: 0.5},
}

// Player keeps one audio player per cue.
type Player struct {
	players [cueCount]*audio.Player
	volume  float64
}

func NewPlayer(volume float64) *Player {
	p := &Player{volume: common.Clamp01(volume)}
	for c := Cue(0); c < cueCount; c++ {
		p.players[c] = load(c)
	}
	return p
}

func load(c Cue) *audio.Player {
	if assets.Exists(c.Path()) {
		player, err := assets.LoadAudioPlayer(c.Path())
		if err == nil {
			return player
		}
		log.Printf("sound: load %s: %v", c.Path(), err)
	}
	t := tones[c]
	return assets.AudioContext().NewPlayerFromBytes(Synth(t.freq, t.slide, t.duration, assets.SampleRate))
}

// Play restarts the cue from the beginning.
func (p *Player) Play(c Cue) {
	if c < 0 || c >= cueCount {
		return
	}
	player := p.players[c]
	if player == nil {
		return
	}
	if err := player.Rewind(); err != nil {
		log.Printf("sound: rewind %s: %v", c, err)
	}
	player.SetVolume(p.volume)
	player.Play()
}

func (p *Player) SetVolume(v float64) {
	p.volume = common.Clamp01(v)
}

// Synth renders a decaying sine sweep as 16-bit little-endian stereo PCM.
// slide is the frequency ratio reached at the end of the tone.
func Synth(freq, slide float64, d time.Duration, sampleRate int) []byte {
	n := int(d.Seconds() * float64(sampleRate))
	buf := make([]byte, n*4)
	phase := 0.0
	for i := 0; i < n; i++ {
		progress := float64(i) / float64(n)
		f := freq * math.Pow(slide, progress)
		phase += 2 * math.Pi * f / float64(sampleRate)
		env := (1 - progress) * (1 - progress)
		v := int16(math.Sin(phase) * env * 0.4 * math.MaxInt16)
		binary.LittleEndian.PutUint16(buf[i*4:], uint16(v))
		binary.LittleEndian.PutUint16(buf[i*4+2:], uint16(v))
	}
	return buf
}

// Package play is the gameplay scene: tap on the beat to keep health up.
package play

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tapbeat/tapbeat/common"
	"github.com/tapbeat/tapbeat/scene"
	"github.com/tapbeat/tapbeat/session"
	"github.com/tapbeat/tapbeat/skin"
)

const (
	defaultBPM = 120
	hitScore   = 100
)

type Music interface {
	PlayAt(pos time.Duration, loop bool)
	Resume()
	Stop()
	Position() time.Duration
	Ended() bool
	PreviewTime() time.Duration
}

// Rules are the judging and health parameters of a run.
type Rules struct {
	HitWindow      time.Duration
	HitHealth      float64
	MissHealth     float64
	DrainPerSecond float64
}

func DefaultRules() Rules {
	return Rules{
		HitWindow:      120 * time.Millisecond,
		HitHealth:      4,
		MissHealth:     12,
		DrainPerSecond: 2.5,
	}
}

type Options struct {
	Width, Height     int
	KeyLeft, KeyRight ebiten.Key
	// Rules is used when there is no skin.
	Rules Rules
}

type Judgement int

const (
	None Judgement = iota
	Hit
	Miss
)

type Scene struct {
	host    scene.Host
	music   Music
	session *session.Session
	skin    *skin.Skin
	opts    Options

	nextBeat int
	lastPos  time.Duration
	last     Judgement
	// done is set once the run has failed or finished so later frames do nothing.
	done bool
}

var _ scene.Scene = (*Scene)(nil)

func New(host scene.Host, m Music, sess *session.Session, sk *skin.Skin, opts Options) *Scene {
	if opts.Width <= 0 || opts.Height <= 0 {
		opts.Width, opts.Height = common.BaseWidth, common.BaseHeight
	}
	if opts.Rules == (Rules{}) {
		opts.Rules = DefaultRules()
	}
	return &Scene{
		host:    host,
		music:   m,
		session: sess,
		skin:    sk,
		opts:    opts,
	}
}

func (s *Scene) ID() scene.ID {
	return scene.Playing
}

func (s *Scene) rules() Rules {
	if s.skin == nil || s.skin.Spec == nil {
		return s.opts.Rules
	}
	p := s.skin.Spec.Play
	return Rules{
		HitWindow:      time.Duration(p.HitWindowMs) * time.Millisecond,
		HitHealth:      p.HitHealth,
		MissHealth:     p.MissHealth,
		DrainPerSecond: p.DrainPerSecond,
	}
}

// BeatInterval is the time between beats of the selected track.
func (s *Scene) BeatInterval() time.Duration {
	bpm := defaultBPM
	if s.session != nil && s.session.Track != nil && s.session.Track.BPMMax > 0 {
		bpm = s.session.Track.BPMMax
	}
	return time.Minute / time.Duration(bpm)
}

// BeatTime is when beat n is due. Beat 0 is skipped so a run starts with a lead-in.
func (s *Scene) BeatTime(n int) time.Duration {
	return time.Duration(n) * s.BeatInterval()
}

// NextBeat is the index of the first beat not yet judged.
func (s *Scene) NextBeat() int {
	return s.nextBeat
}

// Last is the most recent judgement.
func (s *Scene) Last() Judgement {
	return s.last
}

// Enter consumes the session's restart reason. A resume continues where the
// pause left off; anything else starts the track over.
func (s *Scene) Enter() {
	s.done = false
	switch s.session.Restart {
	case session.RestartResume:
		s.music.Resume()
		s.lastPos = s.music.Position()
	default:
		s.session.Reset()
		s.nextBeat = 1
		s.lastPos = 0
		s.last = None
		s.music.PlayAt(0, false)
	}
	s.session.Restart = session.RestartNone
}

func (s *Scene) Leave() {}

func (s *Scene) Update() error {
	if s.done {
		return nil
	}
	r := s.rules()
	pos := s.music.Position()

	if elapsed := pos - s.lastPos; elapsed > 0 {
		s.session.AddHealth(-r.DrainPerSecond * elapsed.Seconds())
	}
	s.lastPos = pos

	for s.BeatTime(s.nextBeat)+r.HitWindow < pos {
		s.judge(Miss, r)
	}

	if s.session.Health <= 0 {
		s.fail()
		return nil
	}
	if s.music.Ended() {
		s.finish()
	}
	return nil
}

// Tap judges a tap against the next beat. Taps outside the hit window are ignored.
func (s *Scene) Tap() Judgement {
	if s.done {
		return None
	}
	r := s.rules()
	delta := s.music.Position() - s.BeatTime(s.nextBeat)
	if delta < -r.HitWindow || delta > r.HitWindow {
		return None
	}
	s.judge(Hit, r)
	return Hit
}

func (s *Scene) judge(j Judgement, r Rules) {
	s.nextBeat++
	s.last = j
	switch j {
	case Hit:
		s.session.Combo++
		s.session.Score += hitScore * (1 + s.session.Combo/10)
		s.session.AddHealth(r.HitHealth)
	case Miss:
		s.session.Combo = 0
		s.session.Misses++
		s.session.AddHealth(-r.MissHealth)
	}
}

func (s *Scene) fail() {
	s.done = true
	s.session.Restart = session.RestartFailed
	s.host.Enter(scene.PauseMenu, scene.TransitionNone)
}

func (s *Scene) finish() {
	s.done = true
	s.music.Stop()
	s.music.PlayAt(s.music.PreviewTime(), true)
	s.host.Enter(scene.SongBrowser, scene.TransitionFade)
}

func (s *Scene) KeyPressed(key ebiten.Key) {
	switch key {
	case s.opts.KeyLeft, s.opts.KeyRight:
		s.Tap()
	case ebiten.KeyEscape:
		if !s.done {
			s.host.Enter(scene.PauseMenu, scene.TransitionNone)
		}
	case ebiten.KeyF12:
		s.host.RequestScreenshot()
	}
}

func (s *Scene) MousePressed(button ebiten.MouseButton, x, y int) {
	if button == ebiten.MouseButtonLeft || button == ebiten.MouseButtonRight {
		s.Tap()
	}
}

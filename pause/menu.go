// Package pause is the pause/fail menu shown over gameplay.
//
//	[Continue] resume the song (hidden after a fail)
//	[Retry]    restart the song
//	[Back]     return to the song browser
package pause

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tapbeat/tapbeat/common"
	"github.com/tapbeat/tapbeat/scene"
	"github.com/tapbeat/tapbeat/session"
	"github.com/tapbeat/tapbeat/skin"
	"github.com/tapbeat/tapbeat/sound"
)

// FadeOutTime is how long the music fades after a fail. Pointer input is
// ignored for this long so the fail cue is not skipped.
const FadeOutTime = 1000 * time.Millisecond

// Music is the transport the menu drives.
type Music interface {
	Pause()
	Stop()
	FadeOut(d time.Duration)
	PlayAt(pos time.Duration, loop bool)
	PreviewTime() time.Duration
}

type Sounds interface {
	Play(c sound.Cue)
}

type Button int

const (
	Continue Button = iota
	Retry
	Back
	buttonCount
)

func (b Button) String() string {
	switch b {
	case Continue:
		return "continue"
	case Retry:
		return "retry"
	case Back:
		return "back"
	default:
		return "unknown"
	}
}

// Options configures a Menu.
type Options struct {
	Width, Height     int
	KeyLeft, KeyRight ebiten.Key
	Now               func() time.Time
	// Backdrop is drawn under the overlay, usually the gameplay scene.
	Backdrop interface{ Draw(screen *ebiten.Image) }
}

type Menu struct {
	host    scene.Host
	music   Music
	sounds  Sounds
	session *session.Session
	skin    *skin.Skin
	opts    Options

	buttons   [buttonCount]common.Rect
	failed    bool
	enteredAt time.Time
}

var _ scene.Scene = (*Menu)(nil)

func New(host scene.Host, music Music, sounds Sounds, sess *session.Session, sk *skin.Skin, opts Options) *Menu {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Width <= 0 || opts.Height <= 0 {
		opts.Width, opts.Height = common.BaseWidth, common.BaseHeight
	}
	m := &Menu{
		host:    host,
		music:   music,
		sounds:  sounds,
		session: sess,
		skin:    sk,
		opts:    opts,
	}
	m.layout()
	return m
}

func (m *Menu) ID() scene.ID {
	return scene.PauseMenu
}

func (m *Menu) buttonSize(b Button) (float32, float32) {
	if m.skin == nil || m.skin.Spec == nil {
		return 320, 72
	}
	p := m.skin.Spec.Pause
	spec := [buttonCount]struct{ w, h float64 }{
		Continue: {p.Continue.Width, p.Continue.Height},
		Retry:    {p.Retry.Width, p.Retry.Height},
		Back:     {p.Back.Width, p.Back.Height},
	}[b]
	return float32(spec.w), float32(spec.h)
}

// layout centres the buttons at a quarter, half and three quarters of the screen height.
func (m *Menu) layout() {
	w, h := float32(m.opts.Width), float32(m.opts.Height)
	ys := [buttonCount]float32{Continue: h * 0.25, Retry: h * 0.5, Back: h * 0.75}
	for b := Button(0); b < buttonCount; b++ {
		bw, bh := m.buttonSize(b)
		m.buttons[b] = common.CenteredRect(w/2, ys[b], bw, bh)
	}
}

// Rect returns the hit box of a button.
func (m *Menu) Rect(b Button) common.Rect {
	return m.buttons[b]
}

// Failed reports whether the menu was entered because health ran out.
func (m *Menu) Failed() bool {
	return m.failed
}

// Visible reports whether b is drawn. Continue is hidden after a fail.
func (m *Menu) Visible(b Button) bool {
	return b != Continue || !m.failed
}

func (m *Menu) Enter() {
	m.layout()
	m.enteredAt = m.opts.Now()
	m.failed = m.session != nil && m.session.Failed()
	if m.failed {
		m.music.FadeOut(FadeOutTime)
		m.sounds.Play(sound.Fail)
		return
	}
	m.music.Pause()
}

func (m *Menu) Leave() {}

func (m *Menu) Update() error {
	return nil
}

// inGracePeriod is true while the fail fade-out is still running.
func (m *Menu) inGracePeriod() bool {
	return m.failed && m.opts.Now().Sub(m.enteredAt) < FadeOutTime
}

func (m *Menu) KeyPressed(key ebiten.Key) {
	switch key {
	case m.opts.KeyLeft:
		x, y := m.host.Cursor()
		m.MousePressed(ebiten.MouseButtonLeft, x, y)
		return
	case m.opts.KeyRight:
		x, y := m.host.Cursor()
		m.MousePressed(ebiten.MouseButtonRight, x, y)
		return
	}

	switch key {
	case ebiten.KeyEscape:
		// Escape skips the grace period.
		if m.failed {
			m.backToBrowser()
			return
		}
		m.unpause(session.RestartResume, sound.MenuBack)
	case ebiten.KeyF12:
		m.host.RequestScreenshot()
	}
}

func (m *Menu) MousePressed(button ebiten.MouseButton, x, y int) {
	if button == ebiten.MouseButtonMiddle {
		return
	}
	if m.inGracePeriod() {
		return
	}

	fx, fy := float32(x), float32(y)
	switch {
	case !m.failed && m.buttons[Continue].Contains(fx, fy):
		m.unpause(session.RestartResume, sound.MenuHit)
	case m.buttons[Retry].Contains(fx, fy):
		m.unpause(session.RestartManual, sound.MenuHit)
	case m.buttons[Back].Contains(fx, fy):
		m.backToBrowser()
	}
}

func (m *Menu) unpause(restart session.Restart, cue sound.Cue) {
	m.sounds.Play(cue)
	if m.session != nil {
		m.session.Restart = restart
	}
	m.host.Enter(scene.Playing, scene.TransitionNone)
}

func (m *Menu) backToBrowser() {
	m.music.Stop()
	m.music.PlayAt(m.music.PreviewTime(), true)
	m.sounds.Play(sound.MenuBack)
	m.host.Enter(scene.SongBrowser, scene.TransitionFade)
}

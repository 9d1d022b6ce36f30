package play

import (
	"testing"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tapbeat/tapbeat/library"
	"github.com/tapbeat/tapbeat/scene"
	"github.com/tapbeat/tapbeat/session"
)

type fakeHost struct {
	entered     []scene.ID
	screenshots int
}

func (h *fakeHost) Enter(id scene.ID, fx scene.Transition) { h.entered = append(h.entered, id) }
func (h *fakeHost) RequestScreenshot()                      { h.screenshots++ }
func (h *fakeHost) Cursor() (int, int)                      { return 0, 0 }
func (h *fakeHost) Quit()                                   {}

type fakeMusic struct {
	pos   time.Duration
	ended bool
	calls []string
	plays []time.Duration
}

func (m *fakeMusic) PlayAt(pos time.Duration, loop bool) {
	m.calls = append(m.calls, "play")
	m.plays = append(m.plays, pos)
	m.pos = pos
}
func (m *fakeMusic) Resume()                    { m.calls = append(m.calls, "resume") }
func (m *fakeMusic) Stop()                      { m.calls = append(m.calls, "stop") }
func (m *fakeMusic) Position() time.Duration    { return m.pos }
func (m *fakeMusic) Ended() bool                { return m.ended }
func (m *fakeMusic) PreviewTime() time.Duration { return 7 * time.Second }

type fixture struct {
	scene   *Scene
	host    *fakeHost
	music   *fakeMusic
	session *session.Session
}

// newFixture builds a 120 BPM run, so beats fall every 500ms.
func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		host:    &fakeHost{},
		music:   &fakeMusic{},
		session: session.New(),
	}
	f.session.Select(&library.Group{Tracks: []*library.Track{{Title: "Song", BPMMax: 120}}})
	f.scene = New(f.host, f.music, f.session, nil, Options{
		KeyLeft:  ebiten.KeyZ,
		KeyRight: ebiten.KeyX,
	})
	return f
}

func TestBeatInterval(t *testing.T) {
	f := newFixture(t)
	assert.Equal(t, 500*time.Millisecond, f.scene.BeatInterval())
	assert.Equal(t, 1500*time.Millisecond, f.scene.BeatTime(3))

	f.session.Track.BPMMax = 200
	assert.Equal(t, 300*time.Millisecond, f.scene.BeatInterval())

	f.session.Track.BPMMax = 0
	assert.Equal(t, 500*time.Millisecond, f.scene.BeatInterval())
}

func TestEnterRestartReasons(t *testing.T) {
	cases := []struct {
		name      string
		restart   session.Restart
		wantCalls []string
		wantReset bool
	}{
		{"none", session.RestartNone, []string{"play"}, true},
		{"manual", session.RestartManual, []string{"play"}, true},
		{"resume", session.RestartResume, []string{"resume"}, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			f := newFixture(t)
			f.session.Health = 40
			f.session.Score = 900
			f.session.Restart = c.restart

			f.scene.Enter()
			assert.Equal(t, c.wantCalls, f.music.calls)
			assert.Equal(t, session.RestartNone, f.session.Restart)
			if c.wantReset {
				assert.Equal(t, float64(session.MaxHealth), f.session.Health)
				assert.Zero(t, f.session.Score)
				assert.Equal(t, []time.Duration{0}, f.music.plays)
				assert.Equal(t, 1, f.scene.NextBeat())
			} else {
				assert.Equal(t, 40.0, f.session.Health)
				assert.Equal(t, 900, f.session.Score)
			}
		})
	}
}

func TestTapWithinWindow(t *testing.T) {
	f := newFixture(t)
	f.scene.Enter()

	f.music.pos = 200 * time.Millisecond
	assert.Equal(t, None, f.scene.Tap())
	assert.Equal(t, 1, f.scene.NextBeat())

	f.music.pos = 450 * time.Millisecond
	assert.Equal(t, Hit, f.scene.Tap())
	assert.Equal(t, 2, f.scene.NextBeat())
	assert.Equal(t, 1, f.session.Combo)
	assert.Equal(t, 100, f.session.Score)
	assert.Equal(t, Hit, f.scene.Last())

	f.music.pos = 1120 * time.Millisecond
	assert.Equal(t, Hit, f.scene.Tap())
	assert.Equal(t, 2, f.session.Combo)
}

func TestMissedBeatCostsHealth(t *testing.T) {
	f := newFixture(t)
	f.scene.Enter()

	f.music.pos = 700 * time.Millisecond
	require.NoError(t, f.scene.Update())
	assert.Equal(t, 1, f.session.Misses)
	assert.Equal(t, 2, f.scene.NextBeat())
	assert.Equal(t, Miss, f.scene.Last())
	assert.InDelta(t, 100-1.75-12, f.session.Health, 1e-9)
	assert.Empty(t, f.host.entered)
}

func TestHealthDrainsWithPlayback(t *testing.T) {
	f := newFixture(t)
	f.scene.Enter()

	f.music.pos = 400 * time.Millisecond
	require.NoError(t, f.scene.Update())
	assert.InDelta(t, 99.0, f.session.Health, 1e-9)

	require.NoError(t, f.scene.Update())
	assert.InDelta(t, 99.0, f.session.Health, 1e-9)
}

func TestFailEntersPauseMenu(t *testing.T) {
	f := newFixture(t)
	f.scene.Enter()
	f.session.Health = 5

	f.music.pos = 630 * time.Millisecond
	require.NoError(t, f.scene.Update())
	assert.Zero(t, f.session.Health)
	assert.True(t, f.session.Failed())
	assert.Equal(t, []scene.ID{scene.PauseMenu}, f.host.entered)

	f.music.pos = 5 * time.Second
	require.NoError(t, f.scene.Update())
	assert.Len(t, f.host.entered, 1)
	assert.Equal(t, None, f.scene.Tap())
}

func TestTrackEndReturnsToBrowser(t *testing.T) {
	f := newFixture(t)
	f.scene.Enter()
	f.music.calls = nil

	f.music.pos = 100 * time.Millisecond
	f.music.ended = true
	require.NoError(t, f.scene.Update())
	assert.Equal(t, []string{"stop", "play"}, f.music.calls)
	assert.Equal(t, 7*time.Second, f.music.plays[len(f.music.plays)-1])
	assert.Equal(t, []scene.ID{scene.SongBrowser}, f.host.entered)
}

func TestInput(t *testing.T) {
	f := newFixture(t)
	f.scene.Enter()

	f.music.pos = 500 * time.Millisecond
	f.scene.MousePressed(ebiten.MouseButtonMiddle, 0, 0)
	assert.Equal(t, 1, f.scene.NextBeat())

	f.scene.KeyPressed(ebiten.KeyX)
	assert.Equal(t, 2, f.scene.NextBeat())

	f.music.pos = time.Second
	f.scene.MousePressed(ebiten.MouseButtonRight, 0, 0)
	assert.Equal(t, 3, f.scene.NextBeat())

	f.scene.KeyPressed(ebiten.KeyF12)
	assert.Equal(t, 1, f.host.screenshots)

	f.scene.KeyPressed(ebiten.KeyEscape)
	assert.Equal(t, []scene.ID{scene.PauseMenu}, f.host.entered)
	assert.False(t, f.session.Failed())
}

func TestResumeDoesNotDrainPausedTime(t *testing.T) {
	f := newFixture(t)
	f.scene.Enter()
	f.music.pos = 200 * time.Millisecond
	require.NoError(t, f.scene.Update())
	health := f.session.Health

	f.session.Restart = session.RestartResume
	f.scene.Enter()
	require.NoError(t, f.scene.Update())
	assert.Equal(t, health, f.session.Health)
}

func TestCustomRules(t *testing.T) {
	f := newFixture(t)
	f.scene = New(f.host, f.music, f.session, nil, Options{
		Rules: Rules{HitWindow: 10 * time.Millisecond, HitHealth: 1, MissHealth: 50},
	})
	f.scene.Enter()

	f.music.pos = 480 * time.Millisecond
	assert.Equal(t, None, f.scene.Tap())

	f.music.pos = 520 * time.Millisecond
	require.NoError(t, f.scene.Update())
	assert.Equal(t, 50.0, f.session.Health)
}

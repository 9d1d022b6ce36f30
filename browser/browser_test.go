package browser

import (
	"testing"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tapbeat/tapbeat/library"
	"github.com/tapbeat/tapbeat/music"
	"github.com/tapbeat/tapbeat/scene"
	"github.com/tapbeat/tapbeat/session"
	"github.com/tapbeat/tapbeat/songsort"
	"github.com/tapbeat/tapbeat/sound"
)

type fakeHost struct {
	entered     []scene.ID
	screenshots int
	quit        bool
}

func (h *fakeHost) Enter(id scene.ID, fx scene.Transition) { h.entered = append(h.entered, id) }
func (h *fakeHost) RequestScreenshot()                      { h.screenshots++ }
func (h *fakeHost) Cursor() (int, int)                      { return 0, 0 }
func (h *fakeHost) Quit()                                   { h.quit = true }

type fakeMusic struct {
	track *library.Track
	state music.State
	loads int
	plays []time.Duration
}

func (m *fakeMusic) Load(t *library.Track) {
	if t != m.track {
		m.loads++
	}
	m.track = t
	m.state = music.Stopped
}
func (m *fakeMusic) Track() *library.Track { return m.track }
func (m *fakeMusic) State() music.State    { return m.state }
func (m *fakeMusic) PlayAt(pos time.Duration, loop bool) {
	m.state = music.Playing
	m.plays = append(m.plays, pos)
}
func (m *fakeMusic) PreviewTime() time.Duration {
	if m.track == nil {
		return 0
	}
	return time.Duration(m.track.PreviewTime) * time.Millisecond
}

type fakeSounds struct{ cues []sound.Cue }

func (s *fakeSounds) Play(c sound.Cue) { s.cues = append(s.cues, c) }

func testLibrary() *library.Library {
	return &library.Library{Groups: []*library.Group{
		{Tracks: []*library.Track{{Title: "Charlie", Artist: "Alpha", BPMMax: 200, PreviewTime: 3000}}},
		{Tracks: []*library.Track{{Title: "alpha", Artist: "Charlie", BPMMax: 90, PreviewTime: 1000}}},
		{Tracks: []*library.Track{{Title: "Bravo", Artist: "bravo", BPMMax: 140, PreviewTime: 2000}}},
	}}
}

type fixture struct {
	browser *Browser
	host    *fakeHost
	music   *fakeMusic
	sounds  *fakeSounds
	session *session.Session
}

func newFixture(initial songsort.Sort) *fixture {
	f := &fixture{
		host:    &fakeHost{},
		music:   &fakeMusic{},
		sounds:  &fakeSounds{},
		session: session.New(),
	}
	f.browser = New(f.host, f.music, f.sounds, f.session, songsort.NewRegistry(initial), testLibrary(), nil, Options{Width: 1280, Height: 720})
	return f
}

func titles(groups []*library.Group) []string {
	out := make([]string, len(groups))
	for i, g := range groups {
		out[i] = g.First().Title
	}
	return out
}

func TestNewSortsByRegistry(t *testing.T) {
	f := newFixture(songsort.BPM)
	assert.Equal(t, []string{"alpha", "Bravo", "Charlie"}, titles(f.browser.Groups()))

	f = newFixture(songsort.Title)
	assert.Equal(t, []string{"alpha", "Bravo", "Charlie"}, titles(f.browser.Groups()))

	f = newFixture(songsort.Artist)
	assert.Equal(t, []string{"Charlie", "Bravo", "alpha"}, titles(f.browser.Groups()))
}

func TestEnterStartsPreview(t *testing.T) {
	f := newFixture(songsort.Title)
	f.browser.Enter()

	require.NotNil(t, f.music.track)
	assert.Equal(t, "alpha", f.music.track.Title)
	assert.Equal(t, []time.Duration{time.Second}, f.music.plays)
	assert.Equal(t, music.Playing, f.music.state)
}

func TestEnterKeepsPlayingMusic(t *testing.T) {
	f := newFixture(songsort.Title)
	playing := &library.Track{Title: "Other"}
	f.music.track = playing
	f.music.state = music.Playing

	f.browser.Enter()
	assert.Same(t, playing, f.music.track)
	assert.Empty(t, f.music.plays)
}

func TestEnterHighlightsSessionGroup(t *testing.T) {
	f := newFixture(songsort.Title)
	f.session.Select(f.browser.Groups()[2])
	f.browser.Enter()
	assert.Same(t, f.browser.Groups()[2], f.browser.Selected())
	assert.Equal(t, "Charlie", f.music.track.Title)
}

func TestHighlightClampsAndPreviews(t *testing.T) {
	f := newFixture(songsort.Title)
	f.browser.Enter()

	f.browser.KeyPressed(ebiten.KeyDown)
	assert.Equal(t, "Bravo", f.browser.Selected().First().Title)
	assert.Equal(t, "Bravo", f.music.track.Title)

	f.browser.Highlight(99)
	assert.Equal(t, "Charlie", f.browser.Selected().First().Title)

	f.browser.KeyPressed(ebiten.KeyUp)
	f.browser.KeyPressed(ebiten.KeyUp)
	f.browser.KeyPressed(ebiten.KeyUp)
	assert.Equal(t, "alpha", f.browser.Selected().First().Title)
	assert.Equal(t, 5, f.music.loads)
}

func TestSetSortKeepsSelection(t *testing.T) {
	f := newFixture(songsort.Title)
	f.browser.Highlight(2)
	chosen := f.browser.Selected()

	f.browser.SetSort(songsort.Artist)
	assert.Equal(t, songsort.Artist, f.browser.Sort())
	assert.Same(t, chosen, f.browser.Selected())
	assert.Equal(t, 0, f.browser.selected)
}

func TestTabPressSwitchesSort(t *testing.T) {
	f := newFixture(songsort.Title)
	tabW, tabH := f.browser.tabSize()
	r := songsort.TabRect(songsort.Length, 1280, 720, tabW, tabH)
	cx, cy := r.Center()

	f.browser.MousePressed(ebiten.MouseButtonLeft, int(cx+tabW/2-2), int(cy))
	assert.Equal(t, songsort.Length, f.browser.Sort())
	assert.Equal(t, []sound.Cue{sound.MenuHit}, f.sounds.cues)

	f.browser.MousePressed(ebiten.MouseButtonLeft, 5, 700)
	assert.Equal(t, songsort.Length, f.browser.Sort())
	assert.Len(t, f.sounds.cues, 1)
}

func TestRightPressIgnoresTabs(t *testing.T) {
	f := newFixture(songsort.Title)
	tabW, tabH := f.browser.tabSize()
	cx, cy := songsort.TabCenter(songsort.BPM, 1280, 720, tabW, tabH)
	f.browser.MousePressed(ebiten.MouseButtonRight, int(cx), int(cy))
	assert.Equal(t, songsort.Title, f.browser.Sort())
}

func TestTabKeyCyclesSort(t *testing.T) {
	f := newFixture(songsort.Length)
	f.browser.KeyPressed(ebiten.KeyTab)
	assert.Equal(t, songsort.Title, f.browser.Sort())
}

func TestStart(t *testing.T) {
	f := newFixture(songsort.Title)
	f.session.Restart = session.RestartFailed
	f.browser.Highlight(1)

	f.browser.KeyPressed(ebiten.KeyEnter)
	assert.Equal(t, []scene.ID{scene.Playing}, f.host.entered)
	assert.Same(t, f.browser.Groups()[1], f.session.Group)
	assert.Equal(t, "Bravo", f.session.Track.Title)
	assert.Equal(t, session.RestartNone, f.session.Restart)
	assert.Same(t, f.session.Track, f.music.track)
	assert.Equal(t, []sound.Cue{sound.MenuHit}, f.sounds.cues)
}

func TestEmptyLibrary(t *testing.T) {
	h := &fakeHost{}
	m := &fakeMusic{}
	b := New(h, m, &fakeSounds{}, session.New(), nil, &library.Library{}, nil, Options{})
	b.Enter()
	b.KeyPressed(ebiten.KeyDown)
	b.Start()
	assert.Nil(t, b.Selected())
	assert.Empty(t, h.entered)
	assert.Nil(t, m.track)
}

func TestEscapeQuitsAndF12Screenshots(t *testing.T) {
	f := newFixture(songsort.Title)
	f.browser.KeyPressed(ebiten.KeyF12)
	f.browser.KeyPressed(ebiten.KeyEscape)
	assert.Equal(t, 1, f.host.screenshots)
	assert.True(t, f.host.quit)
}

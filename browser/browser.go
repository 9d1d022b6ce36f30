// Package browser is the song selection screen.
package browser

import (
	"slices"
	"time"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tapbeat/tapbeat/common"
	"github.com/tapbeat/tapbeat/library"
	"github.com/tapbeat/tapbeat/music"
	"github.com/tapbeat/tapbeat/scene"
	"github.com/tapbeat/tapbeat/session"
	"github.com/tapbeat/tapbeat/skin"
	"github.com/tapbeat/tapbeat/songsort"
	"github.com/tapbeat/tapbeat/sound"
)

type Music interface {
	Load(t *library.Track)
	Track() *library.Track
	State() music.State
	PlayAt(pos time.Duration, loop bool)
	PreviewTime() time.Duration
}

type Sounds interface {
	Play(c sound.Cue)
}

type Options struct {
	Width, Height int
}

type Browser struct {
	host     scene.Host
	music    Music
	sounds   Sounds
	session  *session.Session
	registry *songsort.Registry
	skin     *skin.Skin
	opts     Options

	groups   []*library.Group
	selected int

	ui   *ebitenui.UI
	list *widget.List
	// suppressEvents keeps programmatic list selections from being treated as clicks.
	suppressEvents bool
}

var _ scene.Scene = (*Browser)(nil)

func New(host scene.Host, m Music, sounds Sounds, sess *session.Session, registry *songsort.Registry, lib *library.Library, sk *skin.Skin, opts Options) *Browser {
	if opts.Width <= 0 || opts.Height <= 0 {
		opts.Width, opts.Height = common.BaseWidth, common.BaseHeight
	}
	if registry == nil {
		registry = songsort.NewRegistry(songsort.Title)
	}
	var groups []*library.Group
	if lib != nil {
		groups = slices.Clone(lib.Groups)
	}
	registry.Sort(groups)
	return &Browser{
		host:     host,
		music:    m,
		sounds:   sounds,
		session:  sess,
		registry: registry,
		skin:     sk,
		opts:     opts,
		groups:   groups,
	}
}

func (b *Browser) ID() scene.ID {
	return scene.SongBrowser
}

// Groups returns the groups in display order.
func (b *Browser) Groups() []*library.Group {
	return b.groups
}

// Selected returns the highlighted group, or nil when the library is empty.
func (b *Browser) Selected() *library.Group {
	if b.selected < 0 || b.selected >= len(b.groups) {
		return nil
	}
	return b.groups[b.selected]
}

func (b *Browser) Sort() songsort.Sort {
	return b.registry.Current()
}

// SetSort switches the active sort and reorders the list, keeping the
// highlighted group highlighted.
func (b *Browser) SetSort(s songsort.Sort) {
	if !s.Valid() {
		return
	}
	prev := b.Selected()
	b.registry.SetCurrent(s)
	b.registry.Sort(b.groups)
	if i := slices.Index(b.groups, prev); i >= 0 {
		b.selected = i
	}
	b.refreshList()
}

// Highlight moves the selection to index i and starts its preview.
func (b *Browser) Highlight(i int) {
	if len(b.groups) == 0 {
		return
	}
	i = max(0, min(i, len(b.groups)-1))
	if i == b.selected && b.music.Track() == b.groups[i].First() {
		return
	}
	b.selected = i
	b.preview()
	b.syncSelection()
}

func (b *Browser) preview() {
	g := b.Selected()
	if g == nil {
		return
	}
	b.music.Load(g.First())
	b.music.PlayAt(b.music.PreviewTime(), true)
}

// Start plays the highlighted group.
func (b *Browser) Start() {
	g := b.Selected()
	if g == nil {
		return
	}
	b.session.Select(g)
	b.music.Load(b.session.Track)
	b.sounds.Play(sound.MenuHit)
	b.host.Enter(scene.Playing, scene.TransitionFade)
}

func (b *Browser) Enter() {
	if b.session != nil && b.session.Group != nil {
		if i := slices.Index(b.groups, b.session.Group); i >= 0 {
			b.selected = i
		}
	}
	b.syncSelection()
	if b.music.State() != music.Playing {
		b.preview()
	}
}

func (b *Browser) Leave() {}

func (b *Browser) Update() error {
	b.ensureUI()
	b.ui.Update()
	return nil
}

func (b *Browser) KeyPressed(key ebiten.Key) {
	switch key {
	case ebiten.KeyUp:
		b.Highlight(b.selected - 1)
	case ebiten.KeyDown:
		b.Highlight(b.selected + 1)
	case ebiten.KeyEnter, ebiten.KeyNumpadEnter:
		b.Start()
	case ebiten.KeyTab:
		b.SetSort(songsort.Sort((b.Sort().ID() + 1) % songsort.Count))
	case ebiten.KeyEscape:
		b.host.Quit()
	case ebiten.KeyF12:
		b.host.RequestScreenshot()
	}
}

// MousePressed handles the sort tabs. List clicks go through ebitenui.
func (b *Browser) MousePressed(button ebiten.MouseButton, x, y int) {
	if button != ebiten.MouseButtonLeft {
		return
	}
	w, h := float32(b.opts.Width), float32(b.opts.Height)
	tabW, tabH := b.tabSize()
	s, ok := songsort.TabAt(b.Sort(), w, h, tabW, tabH, float32(x), float32(y))
	if !ok || s == b.Sort() {
		return
	}
	b.sounds.Play(sound.MenuHit)
	b.SetSort(s)
}

func (b *Browser) tabSize() (float32, float32) {
	if b.skin == nil || b.skin.Spec == nil {
		return 110, 34
	}
	return float32(b.skin.Spec.SortTab.Width), float32(b.skin.Spec.SortTab.Height)
}

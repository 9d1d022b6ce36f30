package main

import (
	"fmt"
	"log"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/tapbeat/tapbeat/browser"
	"github.com/tapbeat/tapbeat/common"
	"github.com/tapbeat/tapbeat/config"
	"github.com/tapbeat/tapbeat/library"
	"github.com/tapbeat/tapbeat/music"
	"github.com/tapbeat/tapbeat/pause"
	"github.com/tapbeat/tapbeat/play"
	"github.com/tapbeat/tapbeat/prefabs"
	"github.com/tapbeat/tapbeat/scene"
	"github.com/tapbeat/tapbeat/screenshot"
	"github.com/tapbeat/tapbeat/session"
	"github.com/tapbeat/tapbeat/skin"
	"github.com/tapbeat/tapbeat/songsort"
	"github.com/tapbeat/tapbeat/sound"
)

type Game struct {
	frames int
	debug  bool

	skinName string
	skin     *skin.Skin
	watcher  *prefabs.Watcher

	music   *music.Controller
	machine *scene.Machine
}

func NewGame(cfg *config.Config, lib *library.Library, debug bool) (*Game, error) {
	sk, err := skin.Load(cfg.Skin, common.BaseWidth, common.BaseHeight)
	if err != nil {
		return nil, err
	}
	initialSort, err := songsort.Parse(cfg.Sort)
	if err != nil {
		log.Printf("config: %v, using %s", err, songsort.Title)
		initialSort = songsort.Title
	}

	keyLeft, keyRight, err := scene.GameKeys(cfg.KeyLeft, cfg.KeyRight)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	mc := music.NewController(cfg.MusicVolume)
	sounds := sound.NewPlayer(cfg.EffectVolume)
	sess := session.New()
	machine := scene.NewMachine(scene.NewEbitenInput())

	shots := screenshot.New(cfg.ScreenshotDir)
	machine.OnScreenshot = func(screen *ebiten.Image) {
		if _, err := shots.Capture(screen); err != nil {
			log.Printf("screenshot: %v", err)
		}
	}

	machine.Register(browser.New(machine, mc, sounds, sess, songsort.NewRegistry(initialSort), lib, sk, browser.Options{
		Width:  common.BaseWidth,
		Height: common.BaseHeight,
	}))
	playing := play.New(machine, mc, sess, sk, play.Options{
		Width:    common.BaseWidth,
		Height:   common.BaseHeight,
		KeyLeft:  keyLeft,
		KeyRight: keyRight,
	})
	machine.Register(playing)
	machine.Register(pause.New(machine, mc, sounds, sess, sk, pause.Options{
		Width:    common.BaseWidth,
		Height:   common.BaseHeight,
		KeyLeft:  keyLeft,
		KeyRight: keyRight,
		Backdrop: playing,
	}))
	if err := machine.Start(scene.SongBrowser); err != nil {
		return nil, err
	}

	g := &Game{
		debug:    debug,
		skinName: cfg.Skin,
		skin:     sk,
		music:    mc,
		machine:  machine,
	}
	if debug {
		w, err := prefabs.NewWatcher(prefabs.Dir)
		if err != nil {
			log.Printf("prefabs: watch %s: %v", prefabs.Dir, err)
		} else {
			g.watcher = w
		}
	}
	return g, nil
}

func (g *Game) Update() error {
	g.frames++

	if g.watcher != nil {
		for _, name := range g.watcher.Drain() {
			if filepath.Base(name) != filepath.Base(g.skinName) {
				continue
			}
			if err := g.skin.Reload(g.skinName); err != nil {
				log.Printf("skin: reload %s: %v", g.skinName, err)
			}
		}
	}

	g.music.Update()
	return g.machine.Update()
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.machine.Draw(screen)

	if g.debug {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("Frames: %d    FPS: %.2f    Scene: %s", g.frames, ebiten.ActualFPS(), g.machine.Current()))
	}
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return common.BaseWidth, common.BaseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}

// Close releases audio and the skin watcher.
func (g *Game) Close() {
	if g.watcher != nil {
		if err := g.watcher.Close(); err != nil {
			log.Printf("prefabs: close watcher: %v", err)
		}
	}
	g.music.Close()
}

package main

import (
	"errors"
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tapbeat/tapbeat/config"
	"github.com/tapbeat/tapbeat/library"
)

func main() {
	debug := flag.Bool("debug", false, "enable debug mode (skin hot reload, FPS overlay)")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	libraryPath := flag.String("library", "", "song index yaml (overrides config)")
	sortLabel := flag.String("sort", "", "initial song sort: Title, Artist, Creator, BPM or Length")
	configPath := flag.String("config", "", "extra config.toml loaded after the defaults")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal(err)
	}
	if *libraryPath != "" {
		cfg.Library = *libraryPath
	}
	if *sortLabel != "" {
		cfg.Sort = *sortLabel
	}

	var lib *library.Library
	if cfg.Library != "" {
		lib, err = library.Load(cfg.Library)
	} else {
		lib, err = library.LoadDefault()
	}
	if err != nil {
		log.Fatal(err)
	}

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	w, h := ebiten.Monitor().Size()
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle("tapbeat")

	game, err := NewGame(cfg, lib, *debug)
	if err != nil {
		log.Fatal(err)
	}
	defer game.Close()

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}

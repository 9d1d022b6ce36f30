// Package config loads user options from TOML.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const appName = "tapbeat"

type Config struct {
	Library       string  `koanf:"library"`        // path to a song index; empty uses the built-in demo
	Skin          string  `koanf:"skin"`           // skin yaml name under prefabs/
	ScreenshotDir string  `koanf:"screenshot_dir"` // default: XDG pictures dir
	KeyLeft       string  `koanf:"key_left"`       // game key acting as a left click
	KeyRight      string  `koanf:"key_right"`      // game key acting as a right click
	MusicVolume   float64 `koanf:"music_volume"`   // 0.0-1.0
	EffectVolume  float64 `koanf:"effect_volume"`  // 0.0-1.0
	Sort          string  `koanf:"sort"`           // initial song sort label
}

func Default() *Config {
	return &Config{
		Skin:          "skin.yaml",
		ScreenshotDir: filepath.Join(xdg.UserDirs.Pictures, appName),
		KeyLeft:       "Z",
		KeyRight:      "X",
		MusicVolume:   0.8,
		EffectVolume:  0.7,
		Sort:          "Title",
	}
}

// Load reads the XDG config file, then ./config.toml, then extra (last wins).
func Load(extra ...string) (*Config, error) {
	k := koanf.New(".")

	for _, path := range append(getConfigPaths(), extra...) {
		if path == "" {
			continue
		}
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
			return nil, fmt.Errorf("config: load %s: %w", path, err)
		}
	}

	cfg := Default()
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}

	cfg.Library = expandPath(cfg.Library)
	cfg.ScreenshotDir = expandPath(cfg.ScreenshotDir)
	cfg.MusicVolume = clampVolume(cfg.MusicVolume)
	cfg.EffectVolume = clampVolume(cfg.EffectVolume)
	return cfg, nil
}

func getConfigPaths() []string {
	paths := []string{}

	// 1. $XDG_CONFIG_HOME/tapbeat/config.toml
	if p, err := xdg.SearchConfigFile(filepath.Join(appName, "config.toml")); err == nil {
		paths = append(paths, p)
	}

	// 2. ./config.toml
	paths = append(paths, "config.toml")

	return paths
}

func clampVolume(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

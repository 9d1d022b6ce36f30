package prefabs

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

// SkinSpec describes how the menus and playfield look, plus gameplay tuning.
type SkinSpec struct {
	Name     string      `yaml:"name"`
	FontSize float64     `yaml:"font_size"`
	Pause    PauseSpec   `yaml:"pause"`
	SortTab  TabSpec     `yaml:"sort_tab"`
	Browser  BrowserSpec `yaml:"browser"`
	Play     PlaySpec    `yaml:"play"`
}

type PauseSpec struct {
	Overlay        *YAMLColor `yaml:"overlay"`
	OverlayImage   string     `yaml:"overlay_image"`
	FailBackground *YAMLColor `yaml:"fail_background"`
	FailImage      string     `yaml:"fail_image"`
	Alpha          float64    `yaml:"alpha"`
	Button         ButtonSpec `yaml:"button"`
	Continue       ButtonSpec `yaml:"continue"`
	Retry          ButtonSpec `yaml:"retry"`
	Back           ButtonSpec `yaml:"back"`
}

type ButtonSpec struct {
	Label     string     `yaml:"label"`
	Image     string     `yaml:"image"`
	Width     float64    `yaml:"width"`
	Height    float64    `yaml:"height"`
	Color     *YAMLColor `yaml:"color"`
	TextColor *YAMLColor `yaml:"text_color"`
}

// merge fills unset fields of b from def.
func (b ButtonSpec) merge(def ButtonSpec) ButtonSpec {
	if b.Label == "" {
		b.Label = def.Label
	}
	if b.Image == "" {
		b.Image = def.Image
	}
	if b.Width <= 0 {
		b.Width = def.Width
	}
	if b.Height <= 0 {
		b.Height = def.Height
	}
	if b.Color == nil {
		b.Color = def.Color
	}
	if b.TextColor == nil {
		b.TextColor = def.TextColor
	}
	return b
}

type TabSpec struct {
	Image     string     `yaml:"image"`
	Width     float64    `yaml:"width"`
	Height    float64    `yaml:"height"`
	Color     *YAMLColor `yaml:"color"`
	TextColor *YAMLColor `yaml:"text_color"`
}

type BrowserSpec struct {
	Background    *YAMLColor `yaml:"background"`
	ListColor     *YAMLColor `yaml:"list_color"`
	TextColor     *YAMLColor `yaml:"text_color"`
	SelectedColor *YAMLColor `yaml:"selected_color"`
	ListWidth     float64    `yaml:"list_width"`
	ListHeight    float64    `yaml:"list_height"`
}

type PlaySpec struct {
	Background     *YAMLColor `yaml:"background"`
	BeatColor      *YAMLColor `yaml:"beat_color"`
	HealthColor    *YAMLColor `yaml:"health_color"`
	HitWindowMs    int        `yaml:"hit_window_ms"`
	HitHealth      float64    `yaml:"hit_health"`
	MissHealth     float64    `yaml:"miss_health"`
	DrainPerSecond float64    `yaml:"drain_per_second"`
}

func LoadSkinSpec(name string) (*SkinSpec, error) {
	if name == "" {
		name = "skin.yaml"
	}
	spec, err := LoadSpec[SkinSpec](name)
	if err != nil {
		return nil, err
	}
	spec.ApplyDefaults()
	return &spec, nil
}

// ApplyDefaults fills anything the yaml left out.
func (s *SkinSpec) ApplyDefaults() {
	if s.FontSize <= 0 {
		s.FontSize = 20
	}

	p := &s.Pause
	if p.Overlay == nil {
		p.Overlay = rgba(0, 0, 0, 255)
	}
	if p.FailBackground == nil {
		p.FailBackground = rgba(0x50, 0x08, 0x10, 255)
	}
	if p.Alpha <= 0 || p.Alpha > 1 {
		p.Alpha = 0.7
	}
	p.Button = p.Button.merge(ButtonSpec{
		Width:     320,
		Height:    72,
		Color:     rgba(0x33, 0x33, 0x33, 255),
		TextColor: rgba(0xff, 0xff, 0xff, 255),
	})
	p.Continue = p.Continue.merge(p.Button.merge(ButtonSpec{Label: "Continue"}))
	p.Retry = p.Retry.merge(p.Button.merge(ButtonSpec{Label: "Retry"}))
	p.Back = p.Back.merge(p.Button.merge(ButtonSpec{Label: "Back to menu"}))

	t := &s.SortTab
	if t.Width <= 0 {
		t.Width = 110
	}
	if t.Height <= 0 {
		t.Height = 34
	}
	if t.Color == nil {
		t.Color = rgba(0x2a, 0x5d, 0xb0, 255)
	}
	if t.TextColor == nil {
		t.TextColor = rgba(0xff, 0xff, 0xff, 255)
	}

	b := &s.Browser
	if b.Background == nil {
		b.Background = rgba(0x10, 0x12, 0x1c, 255)
	}
	if b.ListColor == nil {
		b.ListColor = rgba(0x1c, 0x20, 0x30, 255)
	}
	if b.TextColor == nil {
		b.TextColor = rgba(0xee, 0xee, 0xee, 255)
	}
	if b.SelectedColor == nil {
		b.SelectedColor = rgba(0x2a, 0x5d, 0xb0, 255)
	}
	if b.ListWidth <= 0 {
		b.ListWidth = 560
	}
	if b.ListHeight <= 0 {
		b.ListHeight = 480
	}

	pl := &s.Play
	if pl.Background == nil {
		pl.Background = rgba(0x08, 0x08, 0x10, 255)
	}
	if pl.BeatColor == nil {
		pl.BeatColor = rgba(0xff, 0x66, 0xaa, 255)
	}
	if pl.HealthColor == nil {
		pl.HealthColor = rgba(0x66, 0xdd, 0x88, 255)
	}
	if pl.HitWindowMs <= 0 {
		pl.HitWindowMs = 120
	}
	if pl.HitHealth <= 0 {
		pl.HitHealth = 4
	}
	if pl.MissHealth <= 0 {
		pl.MissHealth = 12
	}
	if pl.DrainPerSecond < 0 {
		pl.DrainPerSecond = 0
	}
}

func rgba(r, g, b, a uint8) *YAMLColor {
	return &YAMLColor{Color: color.NRGBA{R: r, G: g, B: b, A: a}}
}

type YAMLColor struct {
	color.Color
}

// Or returns def when c is unset.
func (c *YAMLColor) Or(def color.Color) color.Color {
	if c == nil || c.Color == nil {
		return def
	}
	return c.Color
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}

	s := strings.TrimPrefix(value.Value, "#")

	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("invalid color format: %s", value.Value)
	}

	parse := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(v), err
	}

	r, err := parse(0)
	if err != nil {
		return err
	}
	g, err := parse(2)
	if err != nil {
		return err
	}
	b, err := parse(4)
	if err != nil {
		return err
	}

	a := uint8(255)
	if len(s) == 8 {
		a, err = parse(6)
		if err != nil {
			return err
		}
	}

	c.Color = color.NRGBA{R: r, G: g, B: b, A: a}
	return nil
}

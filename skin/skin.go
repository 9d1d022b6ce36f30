// Package skin turns a skin spec into ready-to-draw images and fonts.
package skin

import (
	"bytes"
	"fmt"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/tapbeat/tapbeat/assets"
	"github.com/tapbeat/tapbeat/prefabs"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
)

// Skin is shared by every scene. Reload swaps its contents in place.
type Skin struct {
	Spec *prefabs.SkinSpec
	Face text.Face

	PauseOverlay   *ebiten.Image
	FailBackground *ebiten.Image
	Continue       *ebiten.Image
	Retry          *ebiten.Image
	Back           *ebiten.Image
	Tab            *ebiten.Image

	width, height int
}

var faceSource *text.GoTextFaceSource

func fontSource() (*text.GoTextFaceSource, error) {
	if faceSource != nil {
		return faceSource, nil
	}
	s, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("skin: load font: %w", err)
	}
	faceSource = s
	return s, nil
}

// Load reads the named skin spec and builds it for a width*height screen.
func Load(name string, width, height int) (*Skin, error) {
	spec, err := prefabs.LoadSkinSpec(name)
	if err != nil {
		return nil, err
	}
	return Build(spec, width, height)
}

func Build(spec *prefabs.SkinSpec, width, height int) (*Skin, error) {
	src, err := fontSource()
	if err != nil {
		return nil, err
	}
	s := &Skin{
		Spec:   spec,
		Face:   &text.GoTextFace{Source: src, Size: spec.FontSize},
		width:  width,
		height: height,
	}

	p := spec.Pause
	s.PauseOverlay = image(p.OverlayImage, p.Overlay.Or(color.Black), width, height)
	s.FailBackground = image(p.FailImage, p.FailBackground.Or(color.Black), width, height)
	s.Continue = button(p.Continue, s.Face)
	s.Retry = button(p.Retry, s.Face)
	s.Back = button(p.Back, s.Face)

	t := spec.SortTab
	s.Tab = image(t.Image, t.Color.Or(color.White), int(t.Width), int(t.Height))
	return s, nil
}

// Reload rebuilds from the named spec and replaces s's contents.
func (s *Skin) Reload(name string) error {
	next, err := Load(name, s.width, s.height)
	if err != nil {
		return err
	}
	s.dispose()
	*s = *next
	log.Printf("skin: reloaded %s", name)
	return nil
}

func (s *Skin) dispose() {
	for _, img := range []*ebiten.Image{s.PauseOverlay, s.FailBackground, s.Continue, s.Retry, s.Back, s.Tab} {
		if img != nil {
			img.Deallocate()
		}
	}
}

// FaceOf returns the skin font, or the built-in bitmap font when there is no skin.
func FaceOf(s *Skin) text.Face {
	if s != nil && s.Face != nil {
		return s.Face
	}
	return text.NewGoXFace(basicfont.Face7x13)
}

func (s *Skin) Size() (int, int) {
	return s.width, s.height
}

// image loads an asset scaled to w*h, or a solid fill when there is none.
func image(path string, fill color.Color, w, h int) *ebiten.Image {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	dst := ebiten.NewImage(w, h)
	if path != "" {
		src, err := assets.LoadImage(path)
		if err == nil {
			b := src.Bounds()
			op := &ebiten.DrawImageOptions{}
			op.GeoM.Scale(float64(w)/float64(b.Dx()), float64(h)/float64(b.Dy()))
			dst.DrawImage(src, op)
			return dst
		}
		log.Printf("skin: load image %s: %v", path, err)
	}
	dst.Fill(fill)
	return dst
}

func button(spec prefabs.ButtonSpec, face text.Face) *ebiten.Image {
	img := image(spec.Image, spec.Color.Or(color.Gray{Y: 0x33}), int(spec.Width), int(spec.Height))
	if spec.Label != "" {
		DrawCentered(img, spec.Label, face, spec.Width/2, spec.Height/2, spec.TextColor.Or(color.White), 1)
	}
	return img
}

// DrawCentered draws s centred on (cx, cy) with the given opacity.
func DrawCentered(dst *ebiten.Image, s string, face text.Face, cx, cy float64, clr color.Color, alpha float32) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(cx, cy)
	op.ColorScale.ScaleWithColor(clr)
	op.ColorScale.ScaleAlpha(alpha)
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	text.Draw(dst, s, face, op)
}

// DrawAt draws s with its top-left corner at (x, y).
func DrawAt(dst *ebiten.Image, s string, face text.Face, x, y float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(dst, s, face, op)
}

// DrawImageCentered draws img centred on (cx, cy) at the given opacity.
func DrawImageCentered(dst, img *ebiten.Image, cx, cy float64, alpha float32) {
	b := img.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(cx-float64(b.Dx())/2, cy-float64(b.Dy())/2)
	op.ColorScale.ScaleAlpha(alpha)
	dst.DrawImage(img, op)
}

package play

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tapbeat/tapbeat/common"
	"github.com/tapbeat/tapbeat/session"
	"github.com/tapbeat/tapbeat/skin"
	"golang.org/x/image/colornames"
)

const (
	beatRadius = 64
	barHeight  = 16
)

// BeatProgress is how far the clock is from the previous beat to the next
// one, in [0, 1].
func (s *Scene) BeatProgress() float64 {
	interval := s.BeatInterval()
	until := s.BeatTime(s.nextBeat) - s.music.Position()
	return common.Clamp01(1 - float64(until)/float64(interval))
}

func (s *Scene) colors() (bg, beat, health color.Color) {
	bg, beat, health = color.RGBA{0x08, 0x08, 0x10, 0xff}, colornames.Hotpink, colornames.Mediumseagreen
	if s.skin == nil || s.skin.Spec == nil {
		return bg, beat, health
	}
	p := s.skin.Spec.Play
	return p.Background.Or(bg), p.BeatColor.Or(beat), p.HealthColor.Or(health)
}

func (s *Scene) Draw(screen *ebiten.Image) {
	bg, beat, health := s.colors()
	screen.Fill(bg)

	w, h := float32(s.opts.Width), float32(s.opts.Height)
	cx, cy := w/2, h/2

	vector.StrokeCircle(screen, cx, cy, beatRadius, 3, beat, true)
	r := common.Lerp(beatRadius*0.2, beatRadius, float32(s.BeatProgress()))
	vector.FillCircle(screen, cx, cy, r, beat, true)

	frac := float32(s.session.Health / session.MaxHealth)
	vector.FillRect(screen, 20, 20, (w-40)*frac, barHeight, health, false)
	vector.StrokeRect(screen, 20, 20, w-40, barHeight, 1, colornames.White, false)

	face := skin.FaceOf(s.skin)
	status := fmt.Sprintf("Score %d   Combo %d   Misses %d", s.session.Score, s.session.Combo, s.session.Misses)
	skin.DrawAt(screen, status, face, 20, 48, colornames.White)
	if t := s.session.Track; t != nil {
		skin.DrawCentered(screen, t.Title, face, float64(cx), float64(h-48), colornames.White, 0.8)
	}
	switch s.last {
	case Hit:
		skin.DrawCentered(screen, "HIT", face, float64(cx), float64(cy+beatRadius+32), beat, 1)
	case Miss:
		skin.DrawCentered(screen, "MISS", face, float64(cx), float64(cy+beatRadius+32), colornames.Red, 1)
	}
}

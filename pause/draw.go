package pause

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tapbeat/tapbeat/skin"
)

func (m *Menu) Draw(screen *ebiten.Image) {
	if m.opts.Backdrop != nil {
		m.opts.Backdrop.Draw(screen)
	}
	if m.skin == nil {
		return
	}
	alpha := float32(m.skin.Spec.Pause.Alpha)

	bg := m.skin.PauseOverlay
	if m.failed {
		bg = m.skin.FailBackground
	}
	op := &ebiten.DrawImageOptions{}
	op.ColorScale.ScaleAlpha(alpha)
	screen.DrawImage(bg, op)

	images := [buttonCount]*ebiten.Image{
		Continue: m.skin.Continue,
		Retry:    m.skin.Retry,
		Back:     m.skin.Back,
	}
	for b := Button(0); b < buttonCount; b++ {
		if !m.Visible(b) {
			continue
		}
		cx, cy := m.buttons[b].Center()
		skin.DrawImageCentered(screen, images[b], float64(cx), float64(cy), 1)
	}
}

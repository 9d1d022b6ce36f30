package browser

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tapbeat/tapbeat/skin"
	"github.com/tapbeat/tapbeat/songsort"
)

func (b *Browser) Draw(screen *ebiten.Image) {
	screen.Fill(b.browserSpec().Background.Or(color.RGBA{0x10, 0x12, 0x1c, 0xff}))
	if b.ui != nil {
		b.ui.Draw(screen)
	}
	b.drawTabs(screen)
}

func (b *Browser) drawTabs(screen *ebiten.Image) {
	w, h := float32(b.opts.Width), float32(b.opts.Height)
	tabW, tabH := b.tabSize()
	current := b.Sort()
	face := b.face()

	tabColor := color.Color(color.RGBA{0x2a, 0x5d, 0xb0, 0xff})
	textColor := color.Color(color.White)
	if b.skin != nil && b.skin.Spec != nil {
		tabColor = b.skin.Spec.SortTab.Color.Or(tabColor)
		textColor = b.skin.Spec.SortTab.TextColor.Or(textColor)
	}

	baseline := songsort.LabelBaseline(current, w, h, tabW, tabH)
	for _, s := range songsort.DrawOrder(current) {
		alpha := songsort.TabAlpha(s, current)
		label, x, y := songsort.LabelAndPosition(s, w, h, tabW, tabH)
		if b.skin != nil && b.skin.Tab != nil {
			skin.DrawImageCentered(screen, b.skin.Tab, float64(x), float64(y), alpha)
		} else {
			r, g, bl, _ := tabColor.RGBA()
			c := color.NRGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(bl >> 8), A: uint8(alpha * 255)}
			vector.FillRect(screen, x-tabW/2, y-tabH/2, tabW, tabH, c, false)
		}
		skin.DrawCentered(screen, label, face, float64(x), float64(baseline+tabH/2), textColor, alpha)
	}
}

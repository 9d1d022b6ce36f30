package scene

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Input is polled once per frame for presses that started this frame.
type Input interface {
	JustPressedKeys() []ebiten.Key
	JustPressedButtons() []ebiten.MouseButton
	Cursor() (int, int)
}

var mouseButtons = []ebiten.MouseButton{
	ebiten.MouseButtonLeft,
	ebiten.MouseButtonRight,
	ebiten.MouseButtonMiddle,
}

// EbitenInput reads the real keyboard and mouse.
type EbitenInput struct {
	keys []ebiten.Key
}

func NewEbitenInput() *EbitenInput {
	return &EbitenInput{}
}

func (e *EbitenInput) JustPressedKeys() []ebiten.Key {
	e.keys = inpututil.AppendJustPressedKeys(e.keys[:0])
	return e.keys
}

func (e *EbitenInput) JustPressedButtons() []ebiten.MouseButton {
	var out []ebiten.MouseButton
	for _, b := range mouseButtons {
		if inpututil.IsMouseButtonJustPressed(b) {
			out = append(out, b)
		}
	}
	return out
}

func (e *EbitenInput) Cursor() (int, int) {
	return ebiten.CursorPosition()
}

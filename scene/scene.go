// Package scene hosts the game's screens and moves between them.
package scene

import (
	"errors"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

var ErrUnknownScene = errors.New("scene: unknown scene")

type ID int

const (
	SongBrowser ID = iota
	Playing
	PauseMenu
)

func (id ID) String() string {
	switch id {
	case SongBrowser:
		return "song-browser"
	case Playing:
		return "playing"
	case PauseMenu:
		return "pause-menu"
	default:
		return fmt.Sprintf("scene(%d)", int(id))
	}
}

// Scene is one screen. The machine calls Enter/Leave around every switch and
// delivers input as press callbacks between frames.
type Scene interface {
	ID() ID
	Enter()
	Leave()
	Update() error
	Draw(screen *ebiten.Image)
	KeyPressed(key ebiten.Key)
	MousePressed(button ebiten.MouseButton, x, y int)
}

// Host is what scenes use to request changes from the machine.
type Host interface {
	Enter(id ID, fx Transition)
	RequestScreenshot()
	Cursor() (int, int)
	Quit()
}

type Transition int

const (
	TransitionNone Transition = iota
	// TransitionFade fades to black, switches, then fades back in.
	TransitionFade
)

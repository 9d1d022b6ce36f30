package scene

import (
	"fmt"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const fadeFrames = 30

type fadePhase int

const (
	fadeNone fadePhase = iota
	fadeOut
	fadeIn
)

type fade struct {
	phase fadePhase
	timer int
	alpha float64
	next  ID
}

// Machine owns the registered scenes and the active one.
type Machine struct {
	scenes  map[ID]Scene
	current Scene
	input   Input

	pending    *ID
	fade       fade
	screenshot bool
	quit       bool

	// OnScreenshot receives the rendered frame after a RequestScreenshot.
	OnScreenshot func(screen *ebiten.Image)
}

var _ Host = (*Machine)(nil)

func NewMachine(input Input) *Machine {
	return &Machine{
		scenes: make(map[ID]Scene),
		input:  input,
	}
}

// Register adds a scene. A later scene with the same ID replaces the earlier one.
func (m *Machine) Register(s Scene) {
	if s == nil {
		return
	}
	m.scenes[s.ID()] = s
}

// Start enters the first scene immediately.
func (m *Machine) Start(id ID) error {
	s, ok := m.scenes[id]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownScene, id)
	}
	m.current = s
	s.Enter()
	return nil
}

// Current returns the active scene ID.
func (m *Machine) Current() ID {
	if m.current == nil {
		return -1
	}
	return m.current.ID()
}

func (m *Machine) Transitioning() bool {
	return m.fade.phase != fadeNone || m.pending != nil
}

// FadeAlpha is the opacity of the black transition overlay.
func (m *Machine) FadeAlpha() float64 {
	return m.fade.alpha
}

// Enter requests a switch to id. It takes effect at the end of the current Update.
func (m *Machine) Enter(id ID, fx Transition) {
	if _, ok := m.scenes[id]; !ok {
		log.Printf("scene: enter %s: %v", id, ErrUnknownScene)
		return
	}
	if m.Transitioning() {
		return
	}
	if fx == TransitionFade {
		m.fade = fade{phase: fadeOut, timer: fadeFrames, next: id}
		return
	}
	m.pending = &id
}

func (m *Machine) RequestScreenshot() {
	m.screenshot = true
}

func (m *Machine) Cursor() (int, int) {
	if m.input == nil {
		return 0, 0
	}
	return m.input.Cursor()
}

func (m *Machine) Quit() {
	m.quit = true
}

func (m *Machine) switchTo(id ID) {
	next := m.scenes[id]
	if m.current != nil {
		m.current.Leave()
	}
	m.current = next
	next.Enter()
}

// Update delivers this frame's input, updates the active scene and advances transitions.
func (m *Machine) Update() error {
	if m.quit {
		return ebiten.Termination
	}
	if m.current == nil {
		return nil
	}

	if !m.Transitioning() && m.input != nil {
		m.dispatchInput()
	}

	if err := m.current.Update(); err != nil {
		return err
	}

	if m.pending != nil {
		id := *m.pending
		m.pending = nil
		m.switchTo(id)
	}
	m.updateFade()

	if m.quit {
		return ebiten.Termination
	}
	return nil
}

func (m *Machine) dispatchInput() {
	for _, k := range m.input.JustPressedKeys() {
		m.current.KeyPressed(k)
		if m.Transitioning() {
			return
		}
	}
	x, y := m.input.Cursor()
	for _, b := range m.input.JustPressedButtons() {
		m.current.MousePressed(b, x, y)
		if m.Transitioning() {
			return
		}
	}
}

func (m *Machine) updateFade() {
	switch m.fade.phase {
	case fadeOut:
		m.fade.timer--
		m.fade.alpha = 1 - float64(m.fade.timer)/float64(fadeFrames)
		if m.fade.timer <= 0 {
			m.switchTo(m.fade.next)
			m.fade.phase = fadeIn
			m.fade.timer = fadeFrames
			m.fade.alpha = 1
		}
	case fadeIn:
		m.fade.timer--
		m.fade.alpha = float64(m.fade.timer) / float64(fadeFrames)
		if m.fade.timer <= 0 {
			m.fade = fade{}
		}
	}
}

// Draw renders the active scene, services a pending screenshot, then the fade overlay.
func (m *Machine) Draw(screen *ebiten.Image) {
	if m.current != nil {
		m.current.Draw(screen)
	}

	if m.screenshot {
		m.screenshot = false
		if m.OnScreenshot != nil {
			m.OnScreenshot(screen)
		}
	}

	if m.fade.alpha > 0 {
		b := screen.Bounds()
		a := uint8(m.fade.alpha * 255)
		vector.FillRect(screen, 0, 0, float32(b.Dx()), float32(b.Dy()), color.RGBA{A: a}, false)
	}
}

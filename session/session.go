// Package session holds the state shared between the browser, gameplay and pause scenes.
package session

import "github.com/tapbeat/tapbeat/library"

// Restart says why gameplay is being (re)entered.
type Restart int

const (
	RestartNone Restart = iota
	RestartResume
	RestartManual
	RestartFailed
)

func (r Restart) String() string {
	switch r {
	case RestartNone:
		return "none"
	case RestartResume:
		return "resume"
	case RestartManual:
		return "manual-retry"
	case RestartFailed:
		return "failed-retry"
	default:
		return "unknown"
	}
}

const MaxHealth = 100.0

type Session struct {
	Group   *library.Group
	Track   *library.Track
	Restart Restart

	Health float64
	Score  int
	Combo  int
	Misses int
}

func New() *Session {
	return &Session{Health: MaxHealth}
}

// Select makes the group's first track the one to play next.
func (s *Session) Select(g *library.Group) {
	s.Group = g
	s.Track = g.First()
	s.Restart = RestartNone
}

// Failed reports whether the last run ended because health ran out.
func (s *Session) Failed() bool {
	return s.Restart == RestartFailed
}

// Reset clears per-run progress.
func (s *Session) Reset() {
	s.Health = MaxHealth
	s.Score = 0
	s.Combo = 0
	s.Misses = 0
}

// AddHealth changes health, clamped to [0, MaxHealth].
func (s *Session) AddHealth(delta float64) {
	s.Health += delta
	if s.Health > MaxHealth {
		s.Health = MaxHealth
	}
	if s.Health < 0 {
		s.Health = 0
	}
}

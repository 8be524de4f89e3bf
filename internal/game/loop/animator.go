// Package loop holds the two periodic tasks of the game view: the
// frame-driven animation and the 100ms countdown.
package loop

import (
	"trading_game/internal/game/session"
)

// Animator advances the session once per frame while running.
type Animator struct {
	running bool
	frames  uint64
}

// NewAnimator creates a stopped animator
func NewAnimator() *Animator {
	return &Animator{}
}

// Start starts the animator
func (a *Animator) Start() {
	a.running = true
}

// Stop stops the animator
func (a *Animator) Stop() {
	a.running = false
}

func (a *Animator) Running() bool {
	return a.running
}

// Frames counts the frames stepped since creation.
func (a *Animator) Frames() uint64 {
	return a.frames
}

// Step is called from the frame callback.
func (a *Animator) Step(s session.Session) session.Session {
	if !a.running {
		return s
	}
	a.frames++
	return s.Advance()
}

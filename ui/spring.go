package ui

import (
	"math"

	"github.com/charmbracelet/harmonica"
)

// SpringAnim drives a spring-physics animation from 0 to a target value.
// The palette view uses it to unfold swatches left to right after each
// regenerate: target is the number of swatches.
type SpringAnim struct {
	spring  harmonica.Spring
	pos     float64
	vel     float64
	target  float64
	settled bool
}

// NewSpringAnim creates a spring animation targeting the given value.
func NewSpringAnim(target float64) *SpringAnim {
	return &SpringAnim{
		spring: harmonica.NewSpring(harmonica.FPS(20), 4.0, 0.8),
		target: target,
	}
}

// Tick advances the spring by one frame. Returns true while still animating.
func (s *SpringAnim) Tick() bool {
	if s.settled {
		return false
	}
	s.pos, s.vel = s.spring.Update(s.pos, s.vel, s.target)
	if math.Abs(s.pos-s.target) < 0.01 && math.Abs(s.vel) < 0.01 {
		s.pos = s.target
		s.vel = 0
		s.settled = true
	}
	return !s.settled
}

// Visible returns how many swatches to draw, clamped to [0, target].
func (s *SpringAnim) Visible() int {
	n := int(math.Round(s.pos))
	if n < 0 {
		return 0
	}
	if maxN := int(s.target); n > maxN {
		return maxN
	}
	return n
}

// Skip jumps straight to the settled state.
func (s *SpringAnim) Skip() {
	s.pos = s.target
	s.vel = 0
	s.settled = true
}

func (s *SpringAnim) Settled() bool {
	return s.settled
}

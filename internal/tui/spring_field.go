package tui

import (
	"math"

	"github.com/charmbracelet/harmonica"
)

// springField animates displayed displacements toward their solved
// targets, one damped spring per mass.
type springField struct {
	spring harmonica.Spring
	pos    []float64
	vel    []float64
}

func newSpringField(fps int, frequency, damping float64) springField {
	return springField{spring: harmonica.NewSpring(harmonica.FPS(fps), frequency, damping)}
}

// step advances every spring one frame toward its target and returns
// the current positions. The field resizes itself when the number of
// targets changes.
func (s *springField) step(targets []float64) []float64 {
	if len(s.pos) != len(targets) {
		s.pos = make([]float64, len(targets))
		s.vel = make([]float64, len(targets))
	}
	for i, target := range targets {
		s.pos[i], s.vel[i] = s.spring.Update(s.pos[i], s.vel[i], target)
	}
	return s.pos
}

// settled reports whether every spring has come to rest on its target.
func (s *springField) settled(targets []float64) bool {
	if len(s.pos) != len(targets) {
		return false
	}
	for i, target := range targets {
		if math.Abs(s.pos[i]-target) > 1e-4 || math.Abs(s.vel[i]) > 1e-4 {
			return false
		}
	}
	return true
}

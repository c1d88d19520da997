// Package noise generates scalar noise fields: fractal value noise, Worley
// cellular distance noise, and a ridged transform, all normalized to [0,1].
package noise

import (
	"errors"
	"fmt"
)

// ErrInvalidSize is returned when a map dimension is not positive.
var ErrInvalidSize = errors.New("noise: width and height must be positive")

// ErrInvalidPoints is returned when a Worley point count is not positive.
var ErrInvalidPoints = errors.New("noise: point count must be positive")

func errInvalidPoints(n int) error {
	return fmt.Errorf("%w: %d", ErrInvalidPoints, n)
}

// Map is a width x height field of float64 samples. After generation every
// value lies in [0,1].
type Map struct {
	Width  int
	Height int
	values []float64
}

func newMap(width, height int) (*Map, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}
	return &Map{
		Width:  width,
		Height: height,
		values: make([]float64, width*height),
	}, nil
}

// At returns the sample at (x, y), or 0 when out of bounds.
func (m *Map) At(x, y int) float64 {
	if x < 0 || x >= m.Width || y < 0 || y >= m.Height {
		return 0
	}
	return m.values[y*m.Width+x]
}

func (m *Map) set(x, y int, v float64) {
	m.values[y*m.Width+x] = v
}

// normalize rescales all samples so the minimum maps to 0 and the maximum to
// 1. A flat map becomes all zeros rather than dividing by zero.
func (m *Map) normalize() {
	lo, hi := m.values[0], m.values[0]
	for _, v := range m.values {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	if hi == lo {
		for i := range m.values {
			m.values[i] = 0
		}
		return
	}
	span := hi - lo
	for i, v := range m.values {
		m.values[i] = (v - lo) / span
	}
}

package noise

import (
	"github.com/aquilax/go-perlin"
	opensimplex "github.com/ojrac/opensimplex-go"
)

// Primitive selects the smooth 2D function underlying fractal composition.
type Primitive string

const (
	// PrimitiveSimplex is normalized OpenSimplex noise, the default.
	PrimitiveSimplex Primitive = "simplex"
	// PrimitivePerlin is classic interpolated gradient noise.
	PrimitivePerlin Primitive = "perlin"
)

// Sampler is a continuous, band-limited 2D noise function. Implementations
// must be deterministic per seed and return values in [0,1].
type Sampler interface {
	Sample(x, y float64) float64
}

type simplexSampler struct {
	n opensimplex.Noise
}

func (s simplexSampler) Sample(x, y float64) float64 {
	return s.n.Eval2(x, y)
}

type perlinSampler struct {
	p *perlin.Perlin
}

func (s perlinSampler) Sample(x, y float64) float64 {
	// Noise2D is roughly in [-1,1]; shift into [0,1] to match simplex.
	return (s.p.Noise2D(x, y) + 1) / 2
}

// newSampler constructs the seeded primitive. Unknown primitives fall back
// to simplex.
func newSampler(p Primitive, seed int64) Sampler {
	switch p {
	case PrimitivePerlin:
		return perlinSampler{p: perlin.NewPerlin(2, 2, 3, seed)}
	default:
		return simplexSampler{n: opensimplex.NewNormalized(seed)}
	}
}

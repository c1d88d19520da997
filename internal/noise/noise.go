package noise

import (
	"context"
	"math"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/worldforge/internal/rng"
	"github.com/samdwyer/worldforge/internal/telemetry"
)

// minScale replaces non-positive scales to keep sampling total.
const minScale = 1e-4

// per-octave domain offsets are drawn in ±offsetSpread so octaves sample
// uncorrelated regions of the primitive.
const offsetSpread = 100000.0

// FractalParams configures Fractal and Ridged generation.
type FractalParams struct {
	Width       int
	Height      int
	Scale       float64 // zoom; non-positive values are clamped, not rejected
	Octaves     int
	Persistence float64 // per-octave amplitude decay
	Lacunarity  float64 // per-octave frequency growth
	OffsetX     float64 // caller-supplied domain pan
	OffsetY     float64
	Seed        int64
	Primitive   Primitive // empty means PrimitiveSimplex
}

// WorleyParams configures Worley generation.
type WorleyParams struct {
	Width     int
	Height    int
	NumPoints int
	Seed      int64
	Invert    bool
}

// Fractal generates multi-octave value noise. Each octave samples the seeded
// primitive at an independently offset, frequency-scaled position and
// accumulates it with decaying amplitude; the full raster is then min-max
// rescaled into [0,1].
func Fractal(ctx context.Context, p FractalParams) (*Map, error) {
	tracer := telemetry.Tracer("noise")
	_, span := tracer.Start(ctx, "noise.fractal")
	defer span.End()

	m, err := fractalRaw(p)
	if err != nil {
		return nil, err
	}
	m.normalize()

	span.SetAttributes(
		attribute.Int("noise.width", p.Width),
		attribute.Int("noise.height", p.Height),
		attribute.Int("noise.octaves", p.Octaves),
	)
	return m, nil
}

// Ridged generates fractal noise folded into ridges: each normalized sample v
// becomes 1-|2v-1|, peaking where the fractal crosses its midpoint. The fold
// is renormalized so the map still spans [0,1].
func Ridged(ctx context.Context, p FractalParams) (*Map, error) {
	tracer := telemetry.Tracer("noise")
	_, span := tracer.Start(ctx, "noise.ridged")
	defer span.End()

	m, err := fractalRaw(p)
	if err != nil {
		return nil, err
	}
	m.normalize()
	for i, v := range m.values {
		m.values[i] = 1 - math.Abs(2*v-1)
	}
	m.normalize()

	span.SetAttributes(
		attribute.Int("noise.width", p.Width),
		attribute.Int("noise.height", p.Height),
	)
	return m, nil
}

// Worley generates cellular distance noise: NumPoints seed points are
// scattered uniformly and every sample is the Euclidean distance to the
// nearest point, scaled by the grid diagonal, optionally inverted, then
// min-max rescaled.
func Worley(ctx context.Context, p WorleyParams) (*Map, error) {
	tracer := telemetry.Tracer("noise")
	_, span := tracer.Start(ctx, "noise.worley")
	defer span.End()

	m, err := newMap(p.Width, p.Height)
	if err != nil {
		return nil, err
	}
	if p.NumPoints < 1 {
		return nil, errInvalidPoints(p.NumPoints)
	}

	src := rng.New(p.Seed)
	points := make([][2]float64, p.NumPoints)
	for i := range points {
		points[i] = [2]float64{
			src.FloatRange(0, float64(p.Width)),
			src.FloatRange(0, float64(p.Height)),
		}
	}

	diagonal := math.Hypot(float64(p.Width), float64(p.Height))
	for y := 0; y < p.Height; y++ {
		for x := 0; x < p.Width; x++ {
			nearest := math.Inf(1)
			for _, pt := range points {
				d := math.Hypot(float64(x)-pt[0], float64(y)-pt[1])
				if d < nearest {
					nearest = d
				}
			}
			v := nearest / diagonal
			if p.Invert {
				v = 1 - v
			}
			m.set(x, y, v)
		}
	}
	m.normalize()

	span.SetAttributes(
		attribute.Int("noise.width", p.Width),
		attribute.Int("noise.height", p.Height),
		attribute.Int("noise.points", p.NumPoints),
	)
	return m, nil
}

// fractalRaw runs the accumulation pass without normalization.
func fractalRaw(p FractalParams) (*Map, error) {
	m, err := newMap(p.Width, p.Height)
	if err != nil {
		return nil, err
	}

	octaves := p.Octaves
	if octaves < 1 {
		octaves = 1
	}
	scale := p.Scale
	if scale <= 0 {
		scale = minScale
	}

	// Octave offsets come from the seeded source before any sampling, so the
	// draw order is fixed regardless of raster size.
	src := rng.New(p.Seed)
	offsets := make([][2]float64, octaves)
	for i := range offsets {
		offsets[i] = [2]float64{
			src.FloatRange(-offsetSpread, offsetSpread),
			src.FloatRange(-offsetSpread, offsetSpread),
		}
	}

	sampler := newSampler(p.Primitive, p.Seed)
	halfW := float64(p.Width) / 2
	halfH := float64(p.Height) / 2

	for y := 0; y < p.Height; y++ {
		for x := 0; x < p.Width; x++ {
			amplitude := 1.0
			frequency := 1.0
			sum := 0.0
			for i := 0; i < octaves; i++ {
				sx := (float64(x) - halfW + p.OffsetX + offsets[i][0]) / scale * frequency
				sy := (float64(y) - halfH + p.OffsetY + offsets[i][1]) / scale * frequency
				sum += sampler.Sample(sx, sy) * amplitude
				amplitude *= p.Persistence
				frequency *= p.Lacunarity
			}
			m.set(x, y, sum)
		}
	}
	return m, nil
}

package dungeon

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/worldforge/internal/grid"
	"github.com/samdwyer/worldforge/internal/rng"
	"github.com/samdwyer/worldforge/internal/telemetry"
)

// CaveParams configures GenerateCave.
type CaveParams struct {
	Width            int
	Height           int
	FillProbability  float64 // initial wall probability for interior cells
	SmoothIterations int
	Seed             int64
}

// GenerateCave builds a cave system with a cellular automaton: the interior
// is seeded with random walls, then majority-rule smoothing passes pull the
// noise into cavern shapes. Border cells are always walls. Rooms are
// extracted afterwards by flood fill.
func GenerateCave(ctx context.Context, p CaveParams) (*Map, error) {
	tracer := telemetry.Tracer("dungeon")
	_, span := tracer.Start(ctx, "dungeon.generate_cave")
	defer span.End()

	startTime := time.Now()

	if p.FillProbability < 0 || p.FillProbability > 1 {
		return nil, fmt.Errorf("%w: fill probability %v", ErrInvalidParams, p.FillProbability)
	}
	if p.SmoothIterations < 0 {
		return nil, fmt.Errorf("%w: %d smoothing iterations", ErrInvalidParams, p.SmoothIterations)
	}

	g, err := grid.New(p.Width, p.Height)
	if err != nil {
		return nil, err
	}

	src := rng.New(p.Seed)

	// Seed pass: walls on the border, Bernoulli walls inside. Cells are
	// visited in raster order so the draw sequence is fixed per seed.
	for y := 0; y < p.Height; y++ {
		for x := 0; x < p.Width; x++ {
			switch {
			case x == 0 || y == 0 || x == p.Width-1 || y == p.Height-1:
				g.Set(x, y, grid.TileWall)
			case src.Chance(p.FillProbability):
				g.Set(x, y, grid.TileWall)
			default:
				g.Set(x, y, grid.TileFloor)
			}
		}
	}

	for i := 0; i < p.SmoothIterations; i++ {
		smooth(g)
	}

	rooms := AnalyzeRooms(g)

	span.SetAttributes(
		attribute.Int("dungeon.width", p.Width),
		attribute.Int("dungeon.height", p.Height),
		attribute.Int("dungeon.room_count", len(rooms)),
		attribute.Int("dungeon.smooth_iterations", p.SmoothIterations),
		attribute.Int64("dungeon.generation_ms", time.Since(startTime).Milliseconds()),
	)

	return &Map{Grid: g, Rooms: rooms, Seed: p.Seed}, nil
}

// smooth applies one majority-rule pass. Every cell is recomputed from a
// snapshot of the previous state so the outcome does not depend on scan
// order: more than 4 wall neighbors makes a wall, fewer than 4 a floor, and
// a tie leaves the cell unchanged.
func smooth(g *grid.TileGrid) {
	prev := g.Clone()
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			walls := wallNeighbors(prev, x, y)
			switch {
			case walls > 4:
				g.Set(x, y, grid.TileWall)
			case walls < 4:
				g.Set(x, y, grid.TileFloor)
			}
		}
	}
}

// wallNeighbors counts wall cells in the Moore neighborhood of (x, y).
// Cells beyond the edge count as walls, which keeps the border solid.
func wallNeighbors(g *grid.TileGrid, x, y int) int {
	count := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx, ny := x+dx, y+dy
			if !g.InBounds(nx, ny) || g.At(nx, ny) == grid.TileWall {
				count++
			}
		}
	}
	return count
}

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

// WalkParams configures GenerateWalk.
type WalkParams struct {
	Width      int
	Height     int
	WalkLength int
	NumWalkers int
	Seed       int64
}

// GenerateWalk builds an organic cavern by running NumWalkers independent
// random walks of WalkLength steps from the grid center. Every visited cell
// becomes floor; connectivity is whatever emerges from overlapping walks.
// Rooms are extracted afterwards by flood fill.
func GenerateWalk(ctx context.Context, p WalkParams) (*Map, error) {
	tracer := telemetry.Tracer("dungeon")
	_, span := tracer.Start(ctx, "dungeon.generate_walk")
	defer span.End()

	startTime := time.Now()

	if p.WalkLength < 1 || p.NumWalkers < 1 {
		return nil, fmt.Errorf("%w: %d walkers of %d steps", ErrInvalidParams, p.NumWalkers, p.WalkLength)
	}

	g, err := grid.New(p.Width, p.Height)
	if err != nil {
		return nil, err
	}
	if p.Width < 3 || p.Height < 3 {
		// The walk stays strictly inside the border, so there must be one.
		return nil, fmt.Errorf("%w: %dx%d leaves no interior", ErrInvalidParams, p.Width, p.Height)
	}
	g.Fill(grid.TileWall)

	src := rng.New(p.Seed)

	// All walks start from the same interior point: the center, clamped
	// inside the border so the first step cannot leave the grid.
	startX := clampInterior(p.Width/2, p.Width)
	startY := clampInterior(p.Height/2, p.Height)

	for walker := 0; walker < p.NumWalkers; walker++ {
		x, y := startX, startY
		g.Set(x, y, grid.TileFloor)
		for step := 0; step < p.WalkLength; step++ {
			dx, dy := src.Direction()
			x = clampInterior(x+dx, p.Width)
			y = clampInterior(y+dy, p.Height)
			g.Set(x, y, grid.TileFloor)
		}
	}

	rooms := AnalyzeRooms(g)

	span.SetAttributes(
		attribute.Int("dungeon.width", p.Width),
		attribute.Int("dungeon.height", p.Height),
		attribute.Int("dungeon.room_count", len(rooms)),
		attribute.Int("dungeon.walkers", p.NumWalkers),
		attribute.Int64("dungeon.generation_ms", time.Since(startTime).Milliseconds()),
	)

	return &Map{Grid: g, Rooms: rooms, Seed: p.Seed}, nil
}

// clampInterior keeps a coordinate strictly inside the border of an axis of
// the given length.
func clampInterior(v, length int) int {
	if v < 1 {
		return 1
	}
	if v > length-2 {
		return length - 2
	}
	return v
}

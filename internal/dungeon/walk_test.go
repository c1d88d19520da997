package dungeon

import (
	"context"
	"errors"
	"testing"

	"github.com/samdwyer/worldforge/internal/grid"
)

func defaultWalkParams() WalkParams {
	return WalkParams{
		Width:      40,
		Height:     30,
		WalkLength: 200,
		NumWalkers: 4,
		Seed:       12345,
	}
}

func TestWalkReproducibility(t *testing.T) {
	ctx := context.Background()
	p := defaultWalkParams()

	m1, err := GenerateWalk(ctx, p)
	if err != nil {
		t.Fatal(err)
	}
	m2, err := GenerateWalk(ctx, p)
	if err != nil {
		t.Fatal(err)
	}
	if !m1.Grid.Equal(m2.Grid) {
		t.Error("Walk carvings with the same seed differ")
	}
	if len(m1.Rooms) != len(m2.Rooms) {
		t.Errorf("Room count mismatch: %d != %d", len(m1.Rooms), len(m2.Rooms))
	}
}

func TestWalkStaysInsideBorder(t *testing.T) {
	m, err := GenerateWalk(context.Background(), defaultWalkParams())
	if err != nil {
		t.Fatal(err)
	}
	g := m.Grid

	for x := 0; x < g.Width; x++ {
		if g.At(x, 0) != grid.TileWall || g.At(x, g.Height-1) != grid.TileWall {
			t.Fatalf("Walk carved the border in column %d", x)
		}
	}
	for y := 0; y < g.Height; y++ {
		if g.At(0, y) != grid.TileWall || g.At(g.Width-1, y) != grid.TileWall {
			t.Fatalf("Walk carved the border in row %d", y)
		}
	}
}

func TestWalkCarvesBoundedFloor(t *testing.T) {
	p := defaultWalkParams()
	m, err := GenerateWalk(context.Background(), p)
	if err != nil {
		t.Fatal(err)
	}

	floors := m.Grid.Count(grid.TileFloor)
	if floors == 0 {
		t.Fatal("Walk carved no floor")
	}
	// Each walker visits at most WalkLength+1 distinct cells.
	max := p.NumWalkers * (p.WalkLength + 1)
	if floors > max {
		t.Errorf("Floor count = %d, exceeds visit bound %d", floors, max)
	}
}

func TestWalkOverlappingWalksStayConnected(t *testing.T) {
	// All walks start from the same center cell, so the carved floor is one
	// connected component and the analyzer finds exactly one room (given a
	// long enough walk).
	m, err := GenerateWalk(context.Background(), WalkParams{
		Width: 30, Height: 30, WalkLength: 300, NumWalkers: 3, Seed: 7,
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(m.Rooms) != 1 {
		t.Errorf("Room count = %d, want 1 connected region", len(m.Rooms))
	}
	if got := m.Grid.Count(grid.TileFloor); got != len(m.Rooms[0].Tiles) {
		t.Errorf("Room owns %d tiles, grid has %d floor cells", len(m.Rooms[0].Tiles), got)
	}
}

func TestWalkInvalidParams(t *testing.T) {
	ctx := context.Background()

	if _, err := GenerateWalk(ctx, WalkParams{Width: -1, Height: 10, WalkLength: 10, NumWalkers: 1}); err == nil {
		t.Error("Expected error for negative width")
	}
	if _, err := GenerateWalk(ctx, WalkParams{Width: 10, Height: 10, WalkLength: 0, NumWalkers: 1}); !errors.Is(err, ErrInvalidParams) {
		t.Error("Expected ErrInvalidParams for zero walk length")
	}
	if _, err := GenerateWalk(ctx, WalkParams{Width: 10, Height: 10, WalkLength: 10, NumWalkers: 0}); !errors.Is(err, ErrInvalidParams) {
		t.Error("Expected ErrInvalidParams for zero walkers")
	}
	if _, err := GenerateWalk(ctx, WalkParams{Width: 2, Height: 10, WalkLength: 10, NumWalkers: 1}); !errors.Is(err, ErrInvalidParams) {
		t.Error("Expected ErrInvalidParams for a grid with no interior")
	}
}

package grid

import (
	"errors"
	"testing"
)

func TestNewRejectsBadDimensions(t *testing.T) {
	for _, dims := range [][2]int{{0, 10}, {10, 0}, {-1, 5}, {5, -1}, {0, 0}} {
		if _, err := New(dims[0], dims[1]); !errors.Is(err, ErrInvalidSize) {
			t.Errorf("New(%d,%d) error = %v, want ErrInvalidSize", dims[0], dims[1], err)
		}
	}
}

func TestOutOfBoundsAccess(t *testing.T) {
	g, err := New(4, 3)
	if err != nil {
		t.Fatal(err)
	}
	g.Fill(TileWall)

	// Reads outside the grid return TileEmpty, never panic.
	for _, p := range [][2]int{{-1, 0}, {0, -1}, {4, 0}, {0, 3}, {100, 100}} {
		if tile := g.At(p[0], p[1]); tile != TileEmpty {
			t.Errorf("At(%d,%d) = %v, want TileEmpty", p[0], p[1], tile)
		}
	}

	// Writes outside the grid are dropped.
	g.Set(-1, 0, TileFloor)
	g.Set(4, 2, TileFloor)
	g.Set(0, 3, TileFloor)
	if n := g.Count(TileFloor); n != 0 {
		t.Errorf("Out-of-bounds writes landed: %d floor tiles", n)
	}
}

func TestSetAndAt(t *testing.T) {
	g, _ := New(5, 5)
	g.Set(2, 3, TileDoor)
	if tile := g.At(2, 3); tile != TileDoor {
		t.Errorf("At(2,3) = %v, want TileDoor", tile)
	}
	if tile := g.At(3, 2); tile != TileEmpty {
		t.Errorf("At(3,2) = %v, want TileEmpty", tile)
	}
}

func TestCloneIsIndependent(t *testing.T) {
	g, _ := New(3, 3)
	g.Fill(TileFloor)

	c := g.Clone()
	c.Set(1, 1, TileWall)

	if g.At(1, 1) != TileFloor {
		t.Error("Mutating the clone changed the original")
	}
	if !g.Equal(g.Clone()) {
		t.Error("Clone is not Equal to its source")
	}
}

func TestWalkable(t *testing.T) {
	walkable := []Tile{TileFloor, TileCorridor, TileDoor}
	blocked := []Tile{TileEmpty, TileWall, TileStairs, TileWater, TileLava}

	for _, tile := range walkable {
		if !tile.IsWalkable() {
			t.Errorf("%v.IsWalkable() = false, want true", tile)
		}
	}
	for _, tile := range blocked {
		if tile.IsWalkable() {
			t.Errorf("%v.IsWalkable() = true, want false", tile)
		}
	}
}

func TestStringRendering(t *testing.T) {
	g, _ := New(2, 2)
	g.Set(0, 0, TileWall)
	g.Set(1, 0, TileFloor)
	g.Set(0, 1, TileCorridor)

	want := "#.\n, \n"
	if s := g.String(); s != want {
		t.Errorf("String() = %q, want %q", s, want)
	}
}

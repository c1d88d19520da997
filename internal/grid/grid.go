package grid

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidSize is returned when a grid dimension is not positive.
var ErrInvalidSize = errors.New("grid: width and height must be positive")

// TileGrid is a 2D buffer of tiles stored in row-major order.
//
// All accesses are bounds checked: writes outside the grid are dropped and
// reads outside the grid return TileEmpty. Generators intentionally probe
// neighbor cells past the edges, so out-of-range coordinates are routine,
// not errors.
type TileGrid struct {
	Width  int
	Height int
	tiles  []Tile
}

// New creates a grid of the given dimensions filled with TileEmpty.
func New(width, height int) (*TileGrid, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}
	return &TileGrid{
		Width:  width,
		Height: height,
		tiles:  make([]Tile, width*height),
	}, nil
}

// At returns the tile at (x, y), or TileEmpty when out of bounds.
func (g *TileGrid) At(x, y int) Tile {
	if !g.InBounds(x, y) {
		return TileEmpty
	}
	return g.tiles[y*g.Width+x]
}

// Set stores the tile at (x, y). Out-of-bounds writes are no-ops.
func (g *TileGrid) Set(x, y int, t Tile) {
	if !g.InBounds(x, y) {
		return
	}
	g.tiles[y*g.Width+x] = t
}

// InBounds returns true if (x, y) lies inside the grid.
func (g *TileGrid) InBounds(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// Fill sets every tile to t.
func (g *TileGrid) Fill(t Tile) {
	for i := range g.tiles {
		g.tiles[i] = t
	}
}

// Clone returns a deep copy of the grid. Smoothing passes read the prior
// snapshot while writing the next one.
func (g *TileGrid) Clone() *TileGrid {
	tiles := make([]Tile, len(g.tiles))
	copy(tiles, g.tiles)
	return &TileGrid{Width: g.Width, Height: g.Height, tiles: tiles}
}

// Equal reports whether two grids have identical dimensions and tiles.
func (g *TileGrid) Equal(other *TileGrid) bool {
	if g.Width != other.Width || g.Height != other.Height {
		return false
	}
	for i := range g.tiles {
		if g.tiles[i] != other.tiles[i] {
			return false
		}
	}
	return true
}

// Count returns the number of tiles equal to t.
func (g *TileGrid) Count(t Tile) int {
	n := 0
	for _, v := range g.tiles {
		if v == t {
			n++
		}
	}
	return n
}

// String renders the grid as one rune per tile, one row per line.
func (g *TileGrid) String() string {
	var b strings.Builder
	b.Grow((g.Width + 1) * g.Height)
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			b.WriteRune(g.At(x, y).Rune())
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// Package grid provides the tile buffer shared by all map generators.
package grid

// Tile represents a single map tile kind.
type Tile uint8

const (
	// TileEmpty is the default, unset tile. Out-of-bounds reads return it.
	TileEmpty Tile = iota
	// TileWall represents an impassable wall tile.
	TileWall
	// TileFloor represents a passable floor tile.
	TileFloor
	// TileCorridor represents a carved passage between rooms.
	TileCorridor
	// TileDoor represents a doorway between a room and a corridor.
	TileDoor
	// TileStairs represents a level transition.
	TileStairs
	// TileWater represents impassable shallow water.
	TileWater
	// TileLava represents impassable lava.
	TileLava
	// TileTrap represents a passable trapped floor tile.
	TileTrap
)

// IsWalkable returns true if the tile can be walked on.
func (t Tile) IsWalkable() bool {
	return t == TileFloor || t == TileCorridor || t == TileDoor
}

// Rune returns the tile's display character.
func (t Tile) Rune() rune {
	switch t {
	case TileWall:
		return '#'
	case TileFloor:
		return '.'
	case TileCorridor:
		return ','
	case TileDoor:
		return '+'
	case TileStairs:
		return '>'
	case TileWater:
		return '~'
	case TileLava:
		return '^'
	case TileTrap:
		return '_'
	default:
		return ' '
	}
}

// String returns a human-readable tile name.
func (t Tile) String() string {
	switch t {
	case TileEmpty:
		return "empty"
	case TileWall:
		return "wall"
	case TileFloor:
		return "floor"
	case TileCorridor:
		return "corridor"
	case TileDoor:
		return "door"
	case TileStairs:
		return "stairs"
	case TileWater:
		return "water"
	case TileLava:
		return "lava"
	case TileTrap:
		return "trap"
	default:
		return "unknown"
	}
}

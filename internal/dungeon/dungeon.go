// Package dungeon generates grid-based dungeon layouts. Three algorithms are
// provided: binary space partitioning with corridors, multi-walker random
// walk carving, and cellular-automaton cave smoothing. All of them are
// deterministic per seed and return a tile grid plus an ordered room list.
package dungeon

import "github.com/samdwyer/worldforge/internal/grid"

// Map is the result of a dungeon generation call: the carved tile grid and
// the rooms extracted from it, in creation order.
type Map struct {
	Grid  *grid.TileGrid
	Rooms []Room
	Seed  int64
}

// StartRoom returns the room tagged RoomStart, falling back to the first
// room. It returns nil when the map has no rooms.
func (m *Map) StartRoom() *Room {
	for i := range m.Rooms {
		if m.Rooms[i].Kind == RoomStart {
			return &m.Rooms[i]
		}
	}
	if len(m.Rooms) > 0 {
		return &m.Rooms[0]
	}
	return nil
}

// Room returns the room with the given id, or nil when no such room exists.
func (m *Map) Room(id int) *Room {
	if id < 0 || id >= len(m.Rooms) {
		return nil
	}
	return &m.Rooms[id]
}

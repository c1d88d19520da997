package dungeon

// RoomKind tags a room with its gameplay role.
type RoomKind int

const (
	// RoomNormal is an untagged room.
	RoomNormal RoomKind = iota
	// RoomStart is the room the party enters the level in.
	RoomStart
	// RoomBoss holds the level's boss encounter.
	RoomBoss
	// RoomTreasure holds bonus loot.
	RoomTreasure
	// RoomShop holds a vendor.
	RoomShop
	// RoomSecret is hidden until discovered.
	RoomSecret
)

// String returns a human-readable kind name.
func (k RoomKind) String() string {
	switch k {
	case RoomNormal:
		return "normal"
	case RoomStart:
		return "start"
	case RoomBoss:
		return "boss"
	case RoomTreasure:
		return "treasure"
	case RoomShop:
		return "shop"
	case RoomSecret:
		return "secret"
	default:
		return "unknown"
	}
}

// Point is a tile coordinate.
type Point struct {
	X, Y int
}

// Room is a connected walkable region of the dungeon. Rooms live in the
// Map's flat slice and reference each other by id, so the connection graph
// carries no pointers.
type Room struct {
	ID     int
	X, Y   int // top-left corner of the bounding rectangle
	Width  int
	Height int
	Kind   RoomKind
	Tiles  []Point // member tile coordinates
	// Connections lists ids of rooms this room has a corridor to. These are
	// back-references into Map.Rooms, not ownership.
	Connections []int
}

// Center returns the center coordinates of the room's bounding rectangle.
func (r Room) Center() (int, int) {
	return r.X + r.Width/2, r.Y + r.Height/2
}

// Contains returns true if the given point is inside the bounding rectangle.
func (r Room) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

// Intersects returns true if this room's bounding rectangle overlaps another's.
func (r Room) Intersects(other Room) bool {
	return r.X < other.X+other.Width &&
		r.X+r.Width > other.X &&
		r.Y < other.Y+other.Height &&
		r.Y+r.Height > other.Y
}

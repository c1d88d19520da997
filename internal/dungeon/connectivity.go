package dungeon

import "github.com/samdwyer/worldforge/internal/grid"

// minRoomTiles is the component size a flood-filled region must exceed to be
// registered as a room. Smaller pockets are dead space left by carving.
const minRoomTiles = 9

// 4-neighbor steps in fixed order: north, south, east, west. The order fixes
// BFS traversal, which keeps extracted tile lists deterministic.
var cardinalSteps = [4][2]int{{0, -1}, {0, 1}, {1, 0}, {-1, 0}}

// AnalyzeRooms extracts connected walkable regions from a grid. Cells are
// scanned in raster order; each unvisited walkable cell seeds a breadth-first
// flood fill that collects the component's tiles and bounding rectangle.
// Components with more than minRoomTiles tiles become rooms, in discovery
// order; smaller ones are discarded.
func AnalyzeRooms(g *grid.TileGrid) []Room {
	visited := make([]bool, g.Width*g.Height)
	var rooms []Room

	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			if visited[y*g.Width+x] || !g.At(x, y).IsWalkable() {
				continue
			}

			tiles, minX, minY, maxX, maxY := floodFill(g, visited, x, y)
			if len(tiles) <= minRoomTiles {
				continue
			}

			rooms = append(rooms, Room{
				ID:     len(rooms),
				X:      minX,
				Y:      minY,
				Width:  maxX - minX + 1,
				Height: maxY - minY + 1,
				Kind:   RoomNormal,
				Tiles:  tiles,
			})
		}
	}
	return rooms
}

// floodFill runs a 4-neighbor BFS from (startX, startY) over walkable cells,
// marking them visited and returning the component's tiles and bounds.
func floodFill(g *grid.TileGrid, visited []bool, startX, startY int) (tiles []Point, minX, minY, maxX, maxY int) {
	minX, minY = startX, startY
	maxX, maxY = startX, startY

	queue := []Point{{X: startX, Y: startY}}
	visited[startY*g.Width+startX] = true

	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		tiles = append(tiles, p)

		if p.X < minX {
			minX = p.X
		}
		if p.X > maxX {
			maxX = p.X
		}
		if p.Y < minY {
			minY = p.Y
		}
		if p.Y > maxY {
			maxY = p.Y
		}

		for _, step := range cardinalSteps {
			nx, ny := p.X+step[0], p.Y+step[1]
			if !g.InBounds(nx, ny) || visited[ny*g.Width+nx] || !g.At(nx, ny).IsWalkable() {
				continue
			}
			visited[ny*g.Width+nx] = true
			queue = append(queue, Point{X: nx, Y: ny})
		}
	}
	return tiles, minX, minY, maxX, maxY
}

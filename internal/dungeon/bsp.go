package dungeon

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/worldforge/internal/grid"
	"github.com/samdwyer/worldforge/internal/rng"
	"github.com/samdwyer/worldforge/internal/telemetry"
)

// ErrInvalidParams is returned when generation parameters fail validation.
var ErrInvalidParams = errors.New("dungeon: invalid parameters")

// aspect ratio beyond which the split axis is forced instead of random.
const forcedSplitRatio = 1.25

// BSPParams configures GenerateBSP.
type BSPParams struct {
	Width       int
	Height      int
	MinRoomSize int
	MaxRoomSize int
	Iterations  int // recursive split budget
	Seed        int64
}

// GenerateBSP builds a dungeon by recursive binary space partitioning: the
// grid is split into a tree of rectangles, each leaf is carved with one room,
// and sibling subtrees are joined with L-shaped corridors in post-order.
func GenerateBSP(ctx context.Context, p BSPParams) (*Map, error) {
	tracer := telemetry.Tracer("dungeon")
	_, span := tracer.Start(ctx, "dungeon.generate_bsp")
	defer span.End()

	startTime := time.Now()

	if p.MinRoomSize < 1 || p.MaxRoomSize < p.MinRoomSize {
		return nil, fmt.Errorf("%w: room size range [%d,%d]", ErrInvalidParams, p.MinRoomSize, p.MaxRoomSize)
	}

	g, err := grid.New(p.Width, p.Height)
	if err != nil {
		return nil, err
	}
	g.Fill(grid.TileWall)

	b := &bspBuilder{grid: g, params: p, src: rng.New(p.Seed)}

	root := &partitionNode{width: p.Width, height: p.Height, roomID: -1}
	b.split(root, p.Iterations)
	b.carveRooms(root)
	b.connect(root)
	b.assignKinds()

	span.SetAttributes(
		attribute.Int("dungeon.width", p.Width),
		attribute.Int("dungeon.height", p.Height),
		attribute.Int("dungeon.room_count", len(b.rooms)),
		attribute.Int64("dungeon.generation_ms", time.Since(startTime).Milliseconds()),
	)

	return &Map{Grid: g, Rooms: b.rooms, Seed: p.Seed}, nil
}

// partitionNode is a node in the binary partition tree. Children are owned
// exclusively by their parent; a carved leaf records its room's id.
type partitionNode struct {
	x, y          int
	width, height int
	left, right   *partitionNode
	roomID        int
}

// isLeaf returns true if this node has no children.
func (n *partitionNode) isLeaf() bool {
	return n.left == nil && n.right == nil
}

type bspBuilder struct {
	grid   *grid.TileGrid
	params BSPParams
	src    *rng.Source
	rooms  []Room
}

// split recursively partitions a node until the budget runs out or the node
// is too small to divide.
func (b *bspBuilder) split(node *partitionNode, budget int) {
	if budget <= 0 {
		return
	}

	// Split axis: random by default, forced along the long dimension when
	// the node is noticeably elongated.
	horizontal := b.src.Bool()
	if float64(node.height) > forcedSplitRatio*float64(node.width) {
		horizontal = true
	} else if float64(node.width) > forcedSplitRatio*float64(node.height) {
		horizontal = false
	}

	minSize := b.params.MinRoomSize
	axisLen := node.width
	if horizontal {
		axisLen = node.height
	}
	if axisLen-minSize <= minSize {
		// Cannot fit two partitions of minSize; this node stays a leaf.
		return
	}
	pos := b.src.Range(minSize, axisLen-minSize)

	if horizontal {
		node.left = &partitionNode{x: node.x, y: node.y, width: node.width, height: pos, roomID: -1}
		node.right = &partitionNode{x: node.x, y: node.y + pos, width: node.width, height: node.height - pos, roomID: -1}
	} else {
		node.left = &partitionNode{x: node.x, y: node.y, width: pos, height: node.height, roomID: -1}
		node.right = &partitionNode{x: node.x + pos, y: node.y, width: node.width - pos, height: node.height, roomID: -1}
	}

	b.split(node.left, budget-1)
	b.split(node.right, budget-1)
}

// carveRooms walks the tree and carves exactly one room in each leaf.
func (b *bspBuilder) carveRooms(node *partitionNode) {
	if node == nil {
		return
	}
	if !node.isLeaf() {
		b.carveRooms(node.left)
		b.carveRooms(node.right)
		return
	}

	p := b.params

	// Random dimensions within configured bounds, clamped to the leaf minus
	// a one-cell margin. Clamping can shrink below MinRoomSize in cramped
	// leaves; a small room beats no room.
	roomW := clampRoomDim(b.src.Range(p.MinRoomSize, p.MaxRoomSize), node.width-2)
	roomH := clampRoomDim(b.src.Range(p.MinRoomSize, p.MaxRoomSize), node.height-2)

	roomX := b.src.Range(node.x+1, node.x+node.width-1-roomW)
	roomY := b.src.Range(node.y+1, node.y+node.height-1-roomH)

	room := Room{
		ID:     len(b.rooms),
		X:      roomX,
		Y:      roomY,
		Width:  roomW,
		Height: roomH,
		Kind:   RoomNormal,
	}
	for y := roomY; y < roomY+roomH; y++ {
		for x := roomX; x < roomX+roomW; x++ {
			b.grid.Set(x, y, grid.TileFloor)
			room.Tiles = append(room.Tiles, Point{X: x, Y: y})
		}
	}

	node.roomID = room.ID
	b.rooms = append(b.rooms, room)
}

func clampRoomDim(v, max int) int {
	if v > max {
		v = max
	}
	if v < 1 {
		v = 1
	}
	return v
}

// connect joins each internal node's two subtrees with a corridor between
// one representative room per side, post-order. It returns the subtree's
// representative room id, or -1 when the subtree carved no room. When both
// sides have one, the representative passed upward is chosen uniformly at
// random.
func (b *bspBuilder) connect(node *partitionNode) int {
	if node == nil {
		return -1
	}
	if node.isLeaf() {
		return node.roomID
	}

	left := b.connect(node.left)
	right := b.connect(node.right)

	switch {
	case left < 0:
		return right
	case right < 0:
		return left
	}

	b.carveCorridor(left, right)
	if b.src.Bool() {
		return left
	}
	return right
}

// carveCorridor connects two rooms' centers with an L-shaped corridor:
// along x first, then along y. Cells already carved as floor stay floor.
func (b *bspBuilder) carveCorridor(a, c int) {
	x1, y1 := b.rooms[a].Center()
	x2, y2 := b.rooms[c].Center()

	x, y := x1, y1
	b.markCorridor(x, y)
	for x != x2 {
		if x < x2 {
			x++
		} else {
			x--
		}
		b.markCorridor(x, y)
	}
	for y != y2 {
		if y < y2 {
			y++
		} else {
			y--
		}
		b.markCorridor(x, y)
	}

	b.rooms[a].Connections = append(b.rooms[a].Connections, c)
	b.rooms[c].Connections = append(b.rooms[c].Connections, a)
}

func (b *bspBuilder) markCorridor(x, y int) {
	if b.grid.At(x, y) != grid.TileFloor {
		b.grid.Set(x, y, grid.TileCorridor)
	}
}

// assignKinds tags the first room as the start, the last as the boss, and
// promotes up to max(1, n/5) interior rooms to treasure. Promotion draws
// indices uniformly and skips collisions with already-promoted rooms rather
// than retrying, so fewer than the target may result.
func (b *bspBuilder) assignKinds() {
	n := len(b.rooms)
	if n == 0 {
		return
	}

	b.rooms[0].Kind = RoomStart
	if n > 1 {
		b.rooms[n-1].Kind = RoomBoss
	}
	if n <= 2 {
		return
	}

	target := n / 5
	if target < 1 {
		target = 1
	}
	for i := 0; i < target; i++ {
		idx := b.src.Range(1, n-2)
		if b.rooms[idx].Kind == RoomNormal {
			b.rooms[idx].Kind = RoomTreasure
		}
	}
}

package dungeon

import (
	"context"
	"errors"
	"testing"
)

func defaultBSPParams() BSPParams {
	return BSPParams{
		Width:       60,
		Height:      40,
		MinRoomSize: 5,
		MaxRoomSize: 10,
		Iterations:  4,
		Seed:        12345,
	}
}

func TestBSPReproducibility(t *testing.T) {
	ctx := context.Background()
	p := defaultBSPParams()

	m1, err := GenerateBSP(ctx, p)
	if err != nil {
		t.Fatal(err)
	}
	m2, err := GenerateBSP(ctx, p)
	if err != nil {
		t.Fatal(err)
	}

	if len(m1.Rooms) != len(m2.Rooms) {
		t.Fatalf("Room count mismatch: %d != %d", len(m1.Rooms), len(m2.Rooms))
	}
	for i := range m1.Rooms {
		r1, r2 := m1.Rooms[i], m2.Rooms[i]
		if r1.X != r2.X || r1.Y != r2.Y || r1.Width != r2.Width || r1.Height != r2.Height || r1.Kind != r2.Kind {
			t.Errorf("Room %d mismatch: (%d,%d,%d,%d,%v) != (%d,%d,%d,%d,%v)",
				i, r1.X, r1.Y, r1.Width, r1.Height, r1.Kind,
				r2.X, r2.Y, r2.Width, r2.Height, r2.Kind)
		}
	}
	if !m1.Grid.Equal(m2.Grid) {
		t.Error("Grids with the same seed differ")
	}
}

func TestBSPDifferentSeeds(t *testing.T) {
	ctx := context.Background()
	p := defaultBSPParams()

	m1, _ := GenerateBSP(ctx, p)
	p.Seed = 54321
	m2, _ := GenerateBSP(ctx, p)

	if m1.Grid.Equal(m2.Grid) {
		t.Error("Dungeons with different seeds should not be identical")
	}
}

func TestBSPRoomsDoNotOverlap(t *testing.T) {
	m, err := GenerateBSP(context.Background(), defaultBSPParams())
	if err != nil {
		t.Fatal(err)
	}

	for i := 0; i < len(m.Rooms); i++ {
		for j := i + 1; j < len(m.Rooms); j++ {
			if m.Rooms[i].Intersects(m.Rooms[j]) {
				t.Errorf("Rooms %d and %d overlap", i, j)
			}
		}
	}
}

func TestBSPConnectivity(t *testing.T) {
	m, err := GenerateBSP(context.Background(), defaultBSPParams())
	if err != nil {
		t.Fatal(err)
	}
	if len(m.Rooms) < 2 {
		t.Skip("single-room dungeon has nothing to connect")
	}

	// BFS over the room connection graph from room 0.
	reached := make(map[int]bool)
	queue := []int{0}
	reached[0] = true
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		for _, next := range m.Rooms[id].Connections {
			if !reached[next] {
				reached[next] = true
				queue = append(queue, next)
			}
		}
	}

	for _, r := range m.Rooms {
		if !reached[r.ID] {
			t.Errorf("Room %d is not reachable from the start room", r.ID)
		}
	}
}

func TestBSPRoomKinds(t *testing.T) {
	m, err := GenerateBSP(context.Background(), defaultBSPParams())
	if err != nil {
		t.Fatal(err)
	}
	n := len(m.Rooms)
	if n == 0 {
		t.Fatal("No rooms generated")
	}

	if m.Rooms[0].Kind != RoomStart {
		t.Errorf("First room kind = %v, want start", m.Rooms[0].Kind)
	}
	if n > 1 && m.Rooms[n-1].Kind != RoomBoss {
		t.Errorf("Last room kind = %v, want boss", m.Rooms[n-1].Kind)
	}

	target := n / 5
	if target < 1 {
		target = 1
	}
	treasures := 0
	for i, r := range m.Rooms {
		if r.Kind == RoomTreasure {
			treasures++
			if i == 0 || i == n-1 {
				t.Errorf("Terminal room %d promoted to treasure", i)
			}
		}
	}
	// Collisions skip rather than retry, so the count may fall short but
	// must never exceed the target.
	if treasures > target {
		t.Errorf("Treasure rooms = %d, want at most %d", treasures, target)
	}
}

func TestBSPSmallDungeon(t *testing.T) {
	// 2 iterations means at most 4 leaves, so at most 4 rooms.
	m, err := GenerateBSP(context.Background(), BSPParams{
		Width: 20, Height: 20, MinRoomSize: 4, MaxRoomSize: 8, Iterations: 2, Seed: 7,
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(m.Rooms) == 0 || len(m.Rooms) > 4 {
		t.Errorf("Room count = %d, want 1..4", len(m.Rooms))
	}
	if m.Rooms[0].Kind != RoomStart {
		t.Errorf("First room kind = %v, want start", m.Rooms[0].Kind)
	}
}

func TestBSPUnsplittableBecomesOneRoom(t *testing.T) {
	// A grid barely larger than the minimum room cannot be split at all.
	m, err := GenerateBSP(context.Background(), BSPParams{
		Width: 10, Height: 10, MinRoomSize: 5, MaxRoomSize: 8, Iterations: 5, Seed: 1,
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(m.Rooms) != 1 {
		t.Errorf("Room count = %d, want 1", len(m.Rooms))
	}
}

func TestBSPInvalidParams(t *testing.T) {
	ctx := context.Background()

	if _, err := GenerateBSP(ctx, BSPParams{Width: 0, Height: 20, MinRoomSize: 4, MaxRoomSize: 8}); err == nil {
		t.Error("Expected error for zero width")
	}
	p := defaultBSPParams()
	p.MaxRoomSize = p.MinRoomSize - 1
	if _, err := GenerateBSP(ctx, p); !errors.Is(err, ErrInvalidParams) {
		t.Errorf("Inverted room size range error = %v, want ErrInvalidParams", err)
	}
}

func TestStartRoomLookup(t *testing.T) {
	m, err := GenerateBSP(context.Background(), defaultBSPParams())
	if err != nil {
		t.Fatal(err)
	}
	start := m.StartRoom()
	if start == nil {
		t.Fatal("StartRoom returned nil")
	}
	if start.Kind != RoomStart {
		t.Errorf("StartRoom kind = %v, want start", start.Kind)
	}
}

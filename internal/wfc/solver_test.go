package wfc

import (
	"context"
	"errors"
	"testing"
)

// openPatterns returns n patterns that all allow each other (and themselves)
// in every direction.
func openPatterns(n int) []Pattern {
	ids := make([]int, n)
	for i := range ids {
		ids[i] = i
	}
	patterns := make([]Pattern, n)
	for i := range patterns {
		patterns[i] = Pattern{
			ID:     i,
			Weight: 1,
			Allowed: map[Direction][]int{
				North: ids, South: ids, East: ids, West: ids,
			},
		}
	}
	return patterns
}

// exclusivePatterns returns two patterns that only tolerate themselves as
// neighbors in any direction.
func exclusivePatterns() []Pattern {
	self := func(id int) map[Direction][]int {
		return map[Direction][]int{
			North: {id}, South: {id}, East: {id}, West: {id},
		}
	}
	return []Pattern{
		{ID: 0, Weight: 1, Allowed: self(0)},
		{ID: 1, Weight: 1, Allowed: self(1)},
	}
}

func TestSolveOpenPatternsAlwaysSucceeds(t *testing.T) {
	ctx := context.Background()
	for seed := int64(0); seed < 20; seed++ {
		res, err := Solve(ctx, Params{Width: 3, Height: 3, Patterns: openPatterns(2), Seed: seed})
		if err != nil {
			t.Fatal(err)
		}
		if res.Contradiction {
			t.Fatalf("Seed %d: unconstrained patterns contradicted", seed)
		}
		for y := 0; y < 3; y++ {
			for x := 0; x < 3; x++ {
				if res.Patterns[y][x] < 0 {
					t.Fatalf("Seed %d: cell (%d,%d) left unassigned on success", seed, x, y)
				}
			}
		}
	}
}

func TestSolveExclusivePatternsAgree(t *testing.T) {
	// Mutually exclusive patterns on a 1x2 grid: propagation forces the
	// second cell to match the first, never contradicting.
	ctx := context.Background()
	for seed := int64(0); seed < 20; seed++ {
		res, err := Solve(ctx, Params{Width: 2, Height: 1, Patterns: exclusivePatterns(), Seed: seed})
		if err != nil {
			t.Fatal(err)
		}
		if res.Contradiction {
			t.Fatalf("Seed %d: exclusive pair contradicted", seed)
		}
		if res.Patterns[0][0] != res.Patterns[0][1] {
			t.Fatalf("Seed %d: cells disagree: %d vs %d", seed, res.Patterns[0][0], res.Patterns[0][1])
		}
	}
}

func TestSolveReproducibility(t *testing.T) {
	ctx := context.Background()
	p := Params{Width: 8, Height: 8, Patterns: openPatterns(4), Seed: 42}

	r1, err := Solve(ctx, p)
	if err != nil {
		t.Fatal(err)
	}
	r2, err := Solve(ctx, p)
	if err != nil {
		t.Fatal(err)
	}

	for y := 0; y < p.Height; y++ {
		for x := 0; x < p.Width; x++ {
			if r1.Patterns[y][x] != r2.Patterns[y][x] {
				t.Fatalf("Cell (%d,%d) differs between identical solves", x, y)
			}
		}
	}
}

func TestSolveAdjacencySatisfied(t *testing.T) {
	// Checkerboard rules: each pattern only allows the other beside it.
	patterns := []Pattern{
		{ID: 0, Weight: 1, Allowed: map[Direction][]int{North: {1}, South: {1}, East: {1}, West: {1}}},
		{ID: 1, Weight: 1, Allowed: map[Direction][]int{North: {0}, South: {0}, East: {0}, West: {0}}},
	}
	byID := map[int]Pattern{0: patterns[0], 1: patterns[1]}

	res, err := Solve(context.Background(), Params{Width: 6, Height: 6, Patterns: patterns, Seed: 9})
	if err != nil {
		t.Fatal(err)
	}
	if res.Contradiction {
		t.Fatal("Checkerboard rules contradicted")
	}

	for y := 0; y < res.Height; y++ {
		for x := 0; x < res.Width; x++ {
			id := res.Patterns[y][x]
			if x+1 < res.Width && !byID[id].Allows(East, res.Patterns[y][x+1]) {
				t.Fatalf("East constraint violated at (%d,%d)", x, y)
			}
			if y+1 < res.Height && !byID[id].Allows(South, res.Patterns[y+1][x]) {
				t.Fatalf("South constraint violated at (%d,%d)", x, y)
			}
		}
	}
}

func TestSolveContradictionIsReported(t *testing.T) {
	// Neither pattern allows anything to its east, so a 2x1 grid cannot be
	// completed.
	patterns := []Pattern{
		{ID: 0, Weight: 1, Allowed: map[Direction][]int{North: {0, 1}, South: {0, 1}, West: {0, 1}}},
		{ID: 1, Weight: 1, Allowed: map[Direction][]int{North: {0, 1}, South: {0, 1}, West: {0, 1}}},
	}

	res, err := Solve(context.Background(), Params{Width: 2, Height: 1, Patterns: patterns, Seed: 3})
	if err != nil {
		t.Fatal(err)
	}
	if !res.Contradiction {
		t.Fatal("Expected a contradiction result")
	}

	// The partial grid is preserved: one collapsed cell, one unassigned.
	assigned := 0
	for _, id := range res.Patterns[0] {
		if id >= 0 {
			assigned++
		}
	}
	if assigned != 1 {
		t.Errorf("Partial grid has %d assigned cells, want 1", assigned)
	}
}

func TestSolveWeightBias(t *testing.T) {
	// With a heavily skewed weight the dominant pattern should win most
	// cells across seeds. Not a tight statistical bound, just a sanity
	// check that weights feed the draw.
	patterns := openPatterns(2)
	patterns[0].Weight = 100
	patterns[1].Weight = 1

	wins := 0
	total := 0
	for seed := int64(0); seed < 10; seed++ {
		res, err := Solve(context.Background(), Params{Width: 5, Height: 5, Patterns: patterns, Seed: seed})
		if err != nil {
			t.Fatal(err)
		}
		for y := 0; y < 5; y++ {
			for x := 0; x < 5; x++ {
				total++
				if res.Patterns[y][x] == 0 {
					wins++
				}
			}
		}
	}
	if wins*2 < total {
		t.Errorf("Pattern with weight 100 won only %d of %d cells", wins, total)
	}
}

func TestPropagationMonotonicity(t *testing.T) {
	// Drive the solver stepwise and check no possibility set ever grows.
	s, err := newSolver(Params{Width: 4, Height: 4, Patterns: openPatterns(3), Seed: 11})
	if err != nil {
		t.Fatal(err)
	}

	before := make([]int, len(s.cells))
	for {
		cell := s.selectCell()
		if cell == nil || cell.Entropy() == 0 {
			break
		}
		for i, c := range s.cells {
			before[i] = c.Entropy()
		}
		s.collapse(cell)
		s.propagate(cell)
		for i, c := range s.cells {
			if c.Entropy() > before[i] {
				t.Fatalf("Cell (%d,%d) possibility set grew from %d to %d", c.X, c.Y, before[i], c.Entropy())
			}
		}
	}
}

func TestSolveParamValidation(t *testing.T) {
	ctx := context.Background()

	if _, err := Solve(ctx, Params{Width: 0, Height: 3, Patterns: openPatterns(1)}); !errors.Is(err, ErrInvalidSize) {
		t.Errorf("Zero width error = %v, want ErrInvalidSize", err)
	}
	if _, err := Solve(ctx, Params{Width: 3, Height: 3}); !errors.Is(err, ErrNoPatterns) {
		t.Errorf("Empty patterns error = %v, want ErrNoPatterns", err)
	}

	dup := openPatterns(2)
	dup[1].ID = 0
	if _, err := Solve(ctx, Params{Width: 3, Height: 3, Patterns: dup}); !errors.Is(err, ErrDuplicatePattern) {
		t.Errorf("Duplicate id error = %v, want ErrDuplicatePattern", err)
	}

	neg := openPatterns(1)
	neg[0].Weight = -1
	if _, err := Solve(ctx, Params{Width: 3, Height: 3, Patterns: neg}); !errors.Is(err, ErrInvalidWeight) {
		t.Errorf("Negative weight error = %v, want ErrInvalidWeight", err)
	}
}

func TestDirectionOpposite(t *testing.T) {
	pairs := map[Direction]Direction{North: South, South: North, East: West, West: East}
	for d, want := range pairs {
		if got := d.Opposite(); got != want {
			t.Errorf("%v.Opposite() = %v, want %v", d, got, want)
		}
	}
}

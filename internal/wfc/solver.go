package wfc

import (
	"context"
	"fmt"
	"sort"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/worldforge/internal/rng"
	"github.com/samdwyer/worldforge/internal/telemetry"
)

// Params configures a Solve call.
type Params struct {
	Width    int
	Height   int
	Patterns []Pattern
	Seed     int64
}

// Cell is one grid position during solving. Its possibility set only ever
// shrinks after initialization.
type Cell struct {
	X, Y      int
	possible  map[int]bool
	collapsed bool
	patternID int
}

// Entropy returns the number of still-possible pattern ids.
func (c *Cell) Entropy() int {
	return len(c.possible)
}

// Collapsed returns the assigned pattern id and true once the cell has been
// collapsed.
func (c *Cell) Collapsed() (int, bool) {
	return c.patternID, c.collapsed
}

// Result is the outcome of a solve. When Contradiction is set the grid is
// only partially collapsed and Patterns holds -1 for unassigned cells;
// callers must check the flag before trusting the output.
type Result struct {
	Width          int
	Height         int
	Patterns       [][]int // [y][x] pattern id, -1 where unassigned
	Contradiction  bool
	ContradictionX int
	ContradictionY int
}

// Solve runs wave function collapse to completion. Cells start with the full
// pattern set; each iteration collapses the minimum-entropy cell (raster
// order breaks ties) with a weighted draw and propagates the constraint
// consequences. There is no backtracking: the first empty possibility set
// ends the solve with a contradiction result.
func Solve(ctx context.Context, p Params) (*Result, error) {
	tracer := telemetry.Tracer("wfc")
	_, span := tracer.Start(ctx, "wfc.solve")
	defer span.End()

	s, err := newSolver(p)
	if err != nil {
		return nil, err
	}
	res := s.run()

	span.SetAttributes(
		attribute.Int("wfc.width", p.Width),
		attribute.Int("wfc.height", p.Height),
		attribute.Int("wfc.patterns", len(p.Patterns)),
		attribute.Bool("wfc.contradiction", res.Contradiction),
	)
	return res, nil
}

type solver struct {
	width    int
	height   int
	patterns map[int]Pattern
	cells    []*Cell
	src      *rng.Source
}

func newSolver(p Params) (*solver, error) {
	if p.Width <= 0 || p.Height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, p.Width, p.Height)
	}
	if len(p.Patterns) == 0 {
		return nil, ErrNoPatterns
	}

	patterns := make(map[int]Pattern, len(p.Patterns))
	for _, pat := range p.Patterns {
		if pat.Weight < 0 {
			return nil, fmt.Errorf("%w: pattern %d has weight %v", ErrInvalidWeight, pat.ID, pat.Weight)
		}
		if _, dup := patterns[pat.ID]; dup {
			return nil, fmt.Errorf("%w: %d", ErrDuplicatePattern, pat.ID)
		}
		patterns[pat.ID] = pat
	}

	s := &solver{
		width:    p.Width,
		height:   p.Height,
		patterns: patterns,
		cells:    make([]*Cell, p.Width*p.Height),
		src:      rng.New(p.Seed),
	}
	for y := 0; y < p.Height; y++ {
		for x := 0; x < p.Width; x++ {
			possible := make(map[int]bool, len(patterns))
			for id := range patterns {
				possible[id] = true
			}
			s.cells[y*p.Width+x] = &Cell{X: x, Y: y, possible: possible, patternID: -1}
		}
	}
	return s, nil
}

// run drives the select/collapse/propagate loop. Termination is guaranteed:
// every iteration either collapses one more cell or stops on a contradiction.
func (s *solver) run() *Result {
	for {
		cell := s.selectCell()
		if cell == nil {
			return s.result(nil)
		}
		if cell.Entropy() == 0 {
			return s.result(cell)
		}
		s.collapse(cell)
		s.propagate(cell)
	}
}

// selectCell returns the uncollapsed cell with the smallest entropy, scanning
// in raster order so the first minimum wins ties. It returns nil when every
// cell is collapsed.
func (s *solver) selectCell() *Cell {
	var best *Cell
	for _, c := range s.cells {
		if c.collapsed {
			continue
		}
		if best == nil || c.Entropy() < best.Entropy() {
			best = c
		}
	}
	return best
}

// collapse assigns the cell a pattern by weighted random draw over its
// possibility set and shrinks the set to that singleton.
func (s *solver) collapse(cell *Cell) {
	ids := make([]int, 0, len(cell.possible))
	for id := range cell.possible {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	total := 0.0
	for _, id := range ids {
		total += s.patterns[id].Weight
	}

	var chosen int
	if total <= 0 {
		// All candidate weights are zero; draw uniformly.
		chosen = ids[s.src.Intn(len(ids))]
	} else {
		r := s.src.Float64() * total
		chosen = ids[len(ids)-1]
		for _, id := range ids {
			r -= s.patterns[id].Weight
			if r < 0 {
				chosen = id
				break
			}
		}
	}

	cell.possible = map[int]bool{chosen: true}
	cell.patternID = chosen
	cell.collapsed = true
}

// propagate pushes the collapsed cell and repeatedly intersects each popped
// cell's neighbors with the union of neighbor sets its remaining patterns
// allow. Neighbors that shrink are pushed in turn, so possibility sets are
// monotonically non-increasing.
func (s *solver) propagate(start *Cell) {
	stack := []*Cell{start}

	for len(stack) > 0 {
		cell := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		for dir := Direction(0); dir < directionCount; dir++ {
			nx := cell.X + deltas[dir][0]
			ny := cell.Y + deltas[dir][1]
			if nx < 0 || nx >= s.width || ny < 0 || ny >= s.height {
				continue
			}
			neighbor := s.cells[ny*s.width+nx]

			allowed := make(map[int]bool)
			for id := range cell.possible {
				for _, nid := range s.patterns[id].Allowed[dir] {
					allowed[nid] = true
				}
			}

			shrank := false
			for id := range neighbor.possible {
				if !allowed[id] {
					delete(neighbor.possible, id)
					shrank = true
				}
			}
			if shrank {
				stack = append(stack, neighbor)
			}
		}
	}
}

// result snapshots the grid. failed, when non-nil, is the cell whose empty
// possibility set ended the solve.
func (s *solver) result(failed *Cell) *Result {
	res := &Result{
		Width:    s.width,
		Height:   s.height,
		Patterns: make([][]int, s.height),
	}
	for y := 0; y < s.height; y++ {
		res.Patterns[y] = make([]int, s.width)
		for x := 0; x < s.width; x++ {
			cell := s.cells[y*s.width+x]
			if cell.collapsed {
				res.Patterns[y][x] = cell.patternID
			} else {
				res.Patterns[y][x] = -1
			}
		}
	}
	if failed != nil {
		res.Contradiction = true
		res.ContradictionX = failed.X
		res.ContradictionY = failed.Y
	}
	return res
}

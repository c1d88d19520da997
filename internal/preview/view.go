// Package preview provides an interactive terminal viewer for generated
// maps: switch algorithms, reseed, and inspect the result without leaving
// the terminal.
package preview

// View selects what the viewer is rendering.
type View int

const (
	// ViewBSP shows the space-partitioning dungeon.
	ViewBSP View = iota
	// ViewWalk shows the random-walk carving.
	ViewWalk
	// ViewCave shows the cellular-automaton cave.
	ViewCave
	// ViewNoise shows a fractal noise field.
	ViewNoise
)

// String returns a human-readable view name.
func (v View) String() string {
	switch v {
	case ViewBSP:
		return "bsp"
	case ViewWalk:
		return "walk"
	case ViewCave:
		return "cave"
	case ViewNoise:
		return "noise"
	default:
		return "unknown"
	}
}

package preview

import (
	"context"
	"fmt"

	"github.com/gdamore/tcell/v2"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/worldforge/internal/dungeon"
	"github.com/samdwyer/worldforge/internal/noise"
	"github.com/samdwyer/worldforge/internal/telemetry"
	"github.com/samdwyer/worldforge/internal/ui"
)

// Viewer is the interactive preview loop.
type Viewer struct {
	screen   *ui.Screen
	renderer *ui.Renderer
	view     View
	seed     int64
	running  bool
}

// New creates a viewer starting on the BSP view with the given seed.
func New(seed int64) (*Viewer, error) {
	screen, err := ui.NewScreen()
	if err != nil {
		return nil, err
	}
	return &Viewer{
		screen:   screen,
		renderer: ui.NewRenderer(screen),
		view:     ViewBSP,
		seed:     seed,
		running:  true,
	}, nil
}

// Run executes the viewer loop until the user quits.
func (v *Viewer) Run(ctx context.Context) error {
	defer v.screen.Close()

	tracer := telemetry.Tracer("preview")
	ctx, span := tracer.Start(ctx, "preview.session")
	defer span.End()

	regenerations := 0
	for v.running {
		if err := v.generate(ctx); err != nil {
			return err
		}
		regenerations++
		v.handleInput()
	}

	span.SetAttributes(attribute.Int("preview.regenerations", regenerations))
	return nil
}

// generate builds the current view sized to the terminal and renders it,
// with a status line on the bottom row.
func (v *Viewer) generate(ctx context.Context) error {
	width, height := v.screen.Size()
	mapH := height - 1
	if width < 5 || mapH < 5 {
		v.renderer.RenderMessage("terminal too small", 0)
		return nil
	}

	status := ""
	switch v.view {
	case ViewNoise:
		m, err := noise.Fractal(ctx, noise.FractalParams{
			Width: width, Height: mapH,
			Scale: 24, Octaves: 4, Persistence: 0.5, Lacunarity: 2,
			Seed: v.seed,
		})
		if err != nil {
			return err
		}
		v.renderer.RenderNoise(m)
		status = fmt.Sprintf("noise seed=%d", v.seed)
	default:
		m, err := v.generateDungeon(ctx, width, mapH)
		if err != nil {
			return err
		}
		v.renderer.RenderGrid(m.Grid)
		if start := m.StartRoom(); start != nil {
			x, y := start.Center()
			v.renderer.RenderMarker(x, y)
		}
		status = fmt.Sprintf("%s seed=%d rooms=%d", v.view, v.seed, len(m.Rooms))
	}

	v.renderer.RenderMessage(status+"  [1/2/3 algorithm, n noise, r reseed, q quit]", height-1)
	return nil
}

func (v *Viewer) generateDungeon(ctx context.Context, width, height int) (*dungeon.Map, error) {
	switch v.view {
	case ViewWalk:
		return dungeon.GenerateWalk(ctx, dungeon.WalkParams{
			Width: width, Height: height,
			WalkLength: width * height / 4, NumWalkers: 4,
			Seed: v.seed,
		})
	case ViewCave:
		return dungeon.GenerateCave(ctx, dungeon.CaveParams{
			Width: width, Height: height,
			FillProbability: 0.45, SmoothIterations: 4,
			Seed: v.seed,
		})
	default:
		return dungeon.GenerateBSP(ctx, dungeon.BSPParams{
			Width: width, Height: height,
			MinRoomSize: 4, MaxRoomSize: 10, Iterations: 4,
			Seed: v.seed,
		})
	}
}

// handleInput blocks for the next event and updates viewer state.
func (v *Viewer) handleInput() {
	ev := v.screen.PollEvent()
	switch ev := ev.(type) {
	case *tcell.EventResize:
		v.screen.Sync()
	case *tcell.EventKey:
		switch {
		case ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC:
			v.running = false
		case ev.Rune() == 'q':
			v.running = false
		case ev.Rune() == '1':
			v.view = ViewBSP
		case ev.Rune() == '2':
			v.view = ViewWalk
		case ev.Rune() == '3':
			v.view = ViewCave
		case ev.Rune() == 'n':
			v.view = ViewNoise
		case ev.Rune() == 'r':
			// Step the seed instead of drawing a random one, so walking
			// back and forth over seeds is possible.
			v.seed++
		}
	}
}

package ui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/worldforge/internal/grid"
	"github.com/samdwyer/worldforge/internal/noise"
)

// noiseRamp maps a [0,1] sample to a shade character, darkest to brightest.
var noiseRamp = []rune(" .:-=+*#%@")

// Renderer draws generated maps to the screen.
type Renderer struct {
	screen *Screen
}

// NewRenderer creates a new renderer for the given screen.
func NewRenderer(screen *Screen) *Renderer {
	return &Renderer{screen: screen}
}

// RenderGrid draws a tile grid to the screen.
func (r *Renderer) RenderGrid(g *grid.TileGrid) {
	r.screen.Clear()
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			tile := g.At(x, y)
			r.screen.SetContent(x, y, tile.Rune(), r.tileStyle(tile))
		}
	}
	r.screen.Show()
}

// RenderNoise draws a noise map as a character ramp.
func (r *Renderer) RenderNoise(m *noise.Map) {
	r.screen.Clear()
	style := tcell.StyleDefault.Foreground(tcell.ColorGray)
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			idx := int(m.At(x, y) * float64(len(noiseRamp)-1))
			r.screen.SetContent(x, y, noiseRamp[idx], style)
		}
	}
	r.screen.Show()
}

// RenderMarker draws a highlighted marker, used for the start room's center.
func (r *Renderer) RenderMarker(x, y int) {
	style := tcell.StyleDefault.
		Foreground(tcell.ColorYellow).
		Bold(true)
	r.screen.SetContent(x, y, '@', style)
	r.screen.Show()
}

// RenderMessage displays a message at the given row.
func (r *Renderer) RenderMessage(msg string, y int) {
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	for i, ch := range msg {
		r.screen.SetContent(i, y, ch, style)
	}
	r.screen.Show()
}

// tileStyle returns the appropriate style for a tile kind.
func (r *Renderer) tileStyle(tile grid.Tile) tcell.Style {
	switch tile {
	case grid.TileWall:
		return tcell.StyleDefault.Foreground(tcell.ColorDarkGray)
	case grid.TileFloor:
		return tcell.StyleDefault.Foreground(tcell.ColorGray)
	case grid.TileCorridor:
		return tcell.StyleDefault.Foreground(tcell.ColorDarkGoldenrod)
	case grid.TileDoor:
		return tcell.StyleDefault.Foreground(tcell.ColorSaddleBrown)
	case grid.TileWater:
		return tcell.StyleDefault.Foreground(tcell.ColorBlue)
	case grid.TileLava:
		return tcell.StyleDefault.Foreground(tcell.ColorRed)
	default:
		return tcell.StyleDefault
	}
}

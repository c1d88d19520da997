package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/samdwyer/worldforge/internal/wfc"
)

// ErrNoGlyph is returned when a pattern spec has an empty glyph.
var ErrNoGlyph = errors.New("config: pattern glyph must be a single character")

// PatternSpec is the TOML shape of one WFC pattern: an id, a selection
// weight, a display glyph, and the allowed neighbor ids per direction.
type PatternSpec struct {
	ID     int     `toml:"id"`
	Weight float64 `toml:"weight"`
	Glyph  string  `toml:"glyph"`
	North  []int   `toml:"north"`
	South  []int   `toml:"south"`
	East   []int   `toml:"east"`
	West   []int   `toml:"west"`
}

// PatternFile is a parsed WFC pattern set.
type PatternFile struct {
	Patterns []PatternSpec `toml:"patterns"`
}

// LoadPatterns reads and parses a WFC pattern file.
func LoadPatterns(path string) (*PatternFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: reading %s: %w", path, err)
	}
	return ParsePatterns(data)
}

// ParsePatterns decodes pattern TOML.
func ParsePatterns(data []byte) (*PatternFile, error) {
	var f PatternFile
	if err := toml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("config: parsing patterns: %w", err)
	}
	for _, p := range f.Patterns {
		if len([]rune(p.Glyph)) != 1 {
			return nil, fmt.Errorf("%w: pattern %d has glyph %q", ErrNoGlyph, p.ID, p.Glyph)
		}
	}
	return &f, nil
}

// Solver converts the file into solver patterns.
func (f *PatternFile) Solver() []wfc.Pattern {
	patterns := make([]wfc.Pattern, 0, len(f.Patterns))
	for _, spec := range f.Patterns {
		patterns = append(patterns, wfc.Pattern{
			ID:     spec.ID,
			Weight: spec.Weight,
			Allowed: map[wfc.Direction][]int{
				wfc.North: spec.North,
				wfc.South: spec.South,
				wfc.East:  spec.East,
				wfc.West:  spec.West,
			},
		})
	}
	return patterns
}

// Glyphs returns the id-to-glyph mapping for rendering solved grids.
func (f *PatternFile) Glyphs() map[int]rune {
	glyphs := make(map[int]rune, len(f.Patterns))
	for _, spec := range f.Patterns {
		glyphs[spec.ID] = []rune(spec.Glyph)[0]
	}
	return glyphs
}

// DefaultPatterns returns a small built-in terrain pattern set (water, sand,
// grass) with beach-style adjacency: water only touches grass through sand.
func DefaultPatterns() *PatternFile {
	all := []int{0, 1, 2}
	waterSand := []int{0, 1}
	sandGrass := []int{1, 2}
	return &PatternFile{Patterns: []PatternSpec{
		{ID: 0, Weight: 3, Glyph: "~", North: waterSand, South: waterSand, East: waterSand, West: waterSand},
		{ID: 1, Weight: 1, Glyph: ":", North: all, South: all, East: all, West: all},
		{ID: 2, Weight: 3, Glyph: "\"", North: sandGrass, South: sandGrass, East: sandGrass, West: sandGrass},
	}}
}

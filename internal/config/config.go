// Package config loads generation presets and pattern sets from TOML files.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Default dungeon dimensions, used when a preset or flag leaves them unset.
const (
	DefaultWidth  = 80
	DefaultHeight = 24
)

// ErrUnknownPreset is returned when a requested preset name is not defined.
var ErrUnknownPreset = errors.New("config: unknown preset")

// Preset bundles the parameters for one named dungeon recipe.
// A Seed of 0 means a random seed will be chosen at generation time.
type Preset struct {
	Algorithm string `toml:"algorithm"` // "bsp", "walk" or "cave"
	Width     int    `toml:"width"`
	Height    int    `toml:"height"`
	Seed      int64  `toml:"seed"`

	// BSP
	MinRoomSize int `toml:"min_room_size"`
	MaxRoomSize int `toml:"max_room_size"`
	Iterations  int `toml:"iterations"`

	// Random walk
	WalkLength int `toml:"walk_length"`
	NumWalkers int `toml:"num_walkers"`

	// Cellular automaton
	FillProbability  float64 `toml:"fill_probability"`
	SmoothIterations int     `toml:"smooth_iterations"`
}

// File is a parsed preset file.
type File struct {
	Presets map[string]Preset `toml:"presets"`
}

// Load reads and parses a preset file.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: reading %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes preset TOML.
func Parse(data []byte) (*File, error) {
	var f File
	if err := toml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("config: parsing presets: %w", err)
	}
	return &f, nil
}

// Preset returns the named preset.
func (f *File) Preset(name string) (Preset, error) {
	p, ok := f.Presets[name]
	if !ok {
		return Preset{}, fmt.Errorf("%w: %q", ErrUnknownPreset, name)
	}
	return p, nil
}

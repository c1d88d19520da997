package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/samdwyer/worldforge/internal/config"
	"github.com/samdwyer/worldforge/internal/dungeon"
)

// newDungeonCmd builds the dungeon generation subcommand.
func newDungeonCmd() *cobra.Command {
	var (
		configPath string
		presetName string
		seed       int64
	)
	preset := config.Preset{
		Algorithm:        "bsp",
		Width:            config.DefaultWidth,
		Height:           config.DefaultHeight,
		MinRoomSize:      4,
		MaxRoomSize:      10,
		Iterations:       4,
		WalkLength:       1000,
		NumWalkers:       4,
		FillProbability:  0.45,
		SmoothIterations: 4,
	}

	cmd := &cobra.Command{
		Use:   "dungeon",
		Short: "Generate a dungeon layout",
		Long:  `Generate a dungeon with one of three algorithms (bsp, walk, cave) and print the tile grid to stdout. Parameters can come from flags or from a named preset in a TOML file.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)

			if presetName != "" {
				if configPath == "" {
					return fmt.Errorf("--preset requires --config")
				}
				file, err := config.Load(configPath)
				if err != nil {
					return err
				}
				loaded, err := file.Preset(presetName)
				if err != nil {
					return err
				}
				preset = loaded
				logger.Debug("loaded preset", "name", presetName, "algorithm", preset.Algorithm)
			}
			if cmd.Flags().Changed("seed") || preset.Seed == 0 {
				preset.Seed = resolveSeed(seed)
			}

			m, err := generatePreset(cmd, preset)
			if err != nil {
				return err
			}

			kinds := make(map[dungeon.RoomKind]int)
			for _, r := range m.Rooms {
				kinds[r.Kind]++
			}

			fmt.Fprint(cmd.OutOrStdout(), m.Grid.String())
			fmt.Fprint(cmd.OutOrStdout(), renderSummary("dungeon", [][2]string{
				{"algorithm", preset.Algorithm},
				{"size", fmt.Sprintf("%dx%d", preset.Width, preset.Height)},
				{"seed", strconv.FormatInt(preset.Seed, 10)},
				{"rooms", strconv.Itoa(len(m.Rooms))},
				{"start", strconv.Itoa(kinds[dungeon.RoomStart])},
				{"boss", strconv.Itoa(kinds[dungeon.RoomBoss])},
				{"treasure", strconv.Itoa(kinds[dungeon.RoomTreasure])},
			}))
			return nil
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "preset TOML file")
	cmd.Flags().StringVar(&presetName, "preset", "", "preset name within --config")
	cmd.Flags().StringVar(&preset.Algorithm, "algorithm", preset.Algorithm, "bsp, walk or cave")
	cmd.Flags().IntVar(&preset.Width, "width", preset.Width, "map width in cells")
	cmd.Flags().IntVar(&preset.Height, "height", preset.Height, "map height in cells")
	cmd.Flags().IntVar(&preset.MinRoomSize, "min-room-size", preset.MinRoomSize, "minimum room dimension (bsp)")
	cmd.Flags().IntVar(&preset.MaxRoomSize, "max-room-size", preset.MaxRoomSize, "maximum room dimension (bsp)")
	cmd.Flags().IntVar(&preset.Iterations, "iterations", preset.Iterations, "split budget (bsp)")
	cmd.Flags().IntVar(&preset.WalkLength, "walk-length", preset.WalkLength, "steps per walker (walk)")
	cmd.Flags().IntVar(&preset.NumWalkers, "num-walkers", preset.NumWalkers, "walker count (walk)")
	cmd.Flags().Float64Var(&preset.FillProbability, "fill-probability", preset.FillProbability, "initial wall probability (cave)")
	cmd.Flags().IntVar(&preset.SmoothIterations, "smooth-iterations", preset.SmoothIterations, "smoothing passes (cave)")
	cmd.Flags().Int64Var(&seed, "seed", 0, "generation seed (0 picks one)")

	return cmd
}

// generatePreset dispatches a preset to the matching generator.
func generatePreset(cmd *cobra.Command, p config.Preset) (*dungeon.Map, error) {
	ctx := cmd.Context()
	switch p.Algorithm {
	case "bsp":
		return dungeon.GenerateBSP(ctx, dungeon.BSPParams{
			Width:       p.Width,
			Height:      p.Height,
			MinRoomSize: p.MinRoomSize,
			MaxRoomSize: p.MaxRoomSize,
			Iterations:  p.Iterations,
			Seed:        p.Seed,
		})
	case "walk":
		return dungeon.GenerateWalk(ctx, dungeon.WalkParams{
			Width:      p.Width,
			Height:     p.Height,
			WalkLength: p.WalkLength,
			NumWalkers: p.NumWalkers,
			Seed:       p.Seed,
		})
	case "cave":
		return dungeon.GenerateCave(ctx, dungeon.CaveParams{
			Width:            p.Width,
			Height:           p.Height,
			FillProbability:  p.FillProbability,
			SmoothIterations: p.SmoothIterations,
			Seed:             p.Seed,
		})
	default:
		return nil, fmt.Errorf("unknown algorithm %q (want bsp, walk or cave)", p.Algorithm)
	}
}

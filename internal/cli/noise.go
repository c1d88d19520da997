package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/samdwyer/worldforge/internal/config"
	"github.com/samdwyer/worldforge/internal/noise"
)

// newNoiseCmd builds the noise generation subcommand.
func newNoiseCmd() *cobra.Command {
	var (
		width       int
		height      int
		kind        string
		scale       float64
		octaves     int
		persistence float64
		lacunarity  float64
		offsetX     float64
		offsetY     float64
		primitive   string
		points      int
		invert      bool
		seed        int64
	)

	cmd := &cobra.Command{
		Use:   "noise",
		Short: "Generate a normalized noise field",
		Long:  `Generate a fractal, ridged, or Worley noise field and print it to stdout as a shade ramp. All values are normalized into [0,1].`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)

			seed = resolveSeed(seed)
			logger.Debug("generating noise", "kind", kind, "seed", seed)

			var (
				m   *noise.Map
				err error
			)
			switch kind {
			case "fractal", "ridged":
				p := noise.FractalParams{
					Width:       width,
					Height:      height,
					Scale:       scale,
					Octaves:     octaves,
					Persistence: persistence,
					Lacunarity:  lacunarity,
					OffsetX:     offsetX,
					OffsetY:     offsetY,
					Seed:        seed,
					Primitive:   noise.Primitive(primitive),
				}
				if kind == "ridged" {
					m, err = noise.Ridged(ctx, p)
				} else {
					m, err = noise.Fractal(ctx, p)
				}
			case "worley":
				m, err = noise.Worley(ctx, noise.WorleyParams{
					Width:     width,
					Height:    height,
					NumPoints: points,
					Seed:      seed,
					Invert:    invert,
				})
			default:
				return fmt.Errorf("unknown noise kind %q (want fractal, ridged or worley)", kind)
			}
			if err != nil {
				return err
			}

			fmt.Fprint(cmd.OutOrStdout(), renderNoise(m))
			fmt.Fprint(cmd.OutOrStdout(), renderSummary("noise", [][2]string{
				{"kind", kind},
				{"size", fmt.Sprintf("%dx%d", width, height)},
				{"seed", strconv.FormatInt(seed, 10)},
			}))
			return nil
		},
	}

	cmd.Flags().IntVar(&width, "width", config.DefaultWidth, "map width in cells")
	cmd.Flags().IntVar(&height, "height", config.DefaultHeight, "map height in cells")
	cmd.Flags().StringVar(&kind, "kind", "fractal", "noise kind: fractal, ridged or worley")
	cmd.Flags().Float64Var(&scale, "scale", 24, "zoom factor (fractal/ridged)")
	cmd.Flags().IntVar(&octaves, "octaves", 4, "octave count (fractal/ridged)")
	cmd.Flags().Float64Var(&persistence, "persistence", 0.5, "per-octave amplitude decay")
	cmd.Flags().Float64Var(&lacunarity, "lacunarity", 2, "per-octave frequency growth")
	cmd.Flags().Float64Var(&offsetX, "offset-x", 0, "domain pan on x")
	cmd.Flags().Float64Var(&offsetY, "offset-y", 0, "domain pan on y")
	cmd.Flags().StringVar(&primitive, "primitive", string(noise.PrimitiveSimplex), "smooth primitive: simplex or perlin")
	cmd.Flags().IntVar(&points, "points", 16, "seed point count (worley)")
	cmd.Flags().BoolVar(&invert, "invert", false, "invert distances (worley)")
	cmd.Flags().Int64Var(&seed, "seed", 0, "generation seed (0 picks one)")

	return cmd
}

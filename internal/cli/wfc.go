package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/samdwyer/worldforge/internal/config"
	"github.com/samdwyer/worldforge/internal/wfc"
)

// newWfcCmd builds the wave-function-collapse subcommand.
func newWfcCmd() *cobra.Command {
	var (
		width        int
		height       int
		patternsPath string
		seed         int64
	)

	cmd := &cobra.Command{
		Use:   "wfc",
		Short: "Solve a constraint tile map",
		Long: `Run wave function collapse over a grid with the patterns from a TOML
file (or a built-in terrain set) and print the solved map, one glyph per
cell. The solver performs no backtracking: a contradiction prints the
partial grid and exits non-zero. Retry with another seed.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)

			file := config.DefaultPatterns()
			if patternsPath != "" {
				loaded, err := config.LoadPatterns(patternsPath)
				if err != nil {
					return err
				}
				file = loaded
			}

			seed = resolveSeed(seed)
			logger.Debug("solving", "patterns", len(file.Patterns), "seed", seed)

			res, err := wfc.Solve(ctx, wfc.Params{
				Width:    width,
				Height:   height,
				Patterns: file.Solver(),
				Seed:     seed,
			})
			if err != nil {
				return err
			}

			fmt.Fprint(cmd.OutOrStdout(), renderPatternGrid(res, file.Glyphs()))
			fmt.Fprint(cmd.OutOrStdout(), renderSummary("wfc", [][2]string{
				{"size", fmt.Sprintf("%dx%d", width, height)},
				{"patterns", strconv.Itoa(len(file.Patterns))},
				{"seed", strconv.FormatInt(seed, 10)},
				{"solved", strconv.FormatBool(!res.Contradiction)},
			}))

			if res.Contradiction {
				return fmt.Errorf("contradiction at (%d,%d); retry with a different seed", res.ContradictionX, res.ContradictionY)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&width, "width", 24, "grid width in cells")
	cmd.Flags().IntVar(&height, "height", 12, "grid height in cells")
	cmd.Flags().StringVar(&patternsPath, "patterns", "", "pattern TOML file (default: built-in terrain set)")
	cmd.Flags().Int64Var(&seed, "seed", 0, "generation seed (0 picks one)")

	return cmd
}

// renderPatternGrid formats a solve result with one glyph per cell.
// Unassigned cells (after a contradiction) render as '?'.
func renderPatternGrid(res *wfc.Result, glyphs map[int]rune) string {
	var b strings.Builder
	b.Grow((res.Width + 1) * res.Height)
	for y := 0; y < res.Height; y++ {
		for x := 0; x < res.Width; x++ {
			id := res.Patterns[y][x]
			glyph, ok := glyphs[id]
			if id < 0 || !ok {
				glyph = '?'
			}
			b.WriteRune(glyph)
		}
		b.WriteByte('\n')
	}
	return b.String()
}

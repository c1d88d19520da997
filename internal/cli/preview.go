package cli

import (
	"github.com/spf13/cobra"

	"github.com/samdwyer/worldforge/internal/preview"
)

// newPreviewCmd builds the interactive preview subcommand.
func newPreviewCmd() *cobra.Command {
	var seed int64

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Interactively preview generated maps in the terminal",
		Long:  `Open a full-screen terminal viewer. Keys 1/2/3 switch between the bsp, walk and cave dungeon algorithms, n shows a fractal noise field, r advances the seed and regenerates, q quits.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := preview.New(resolveSeed(seed))
			if err != nil {
				return err
			}
			return v.Run(cmd.Context())
		},
	}

	cmd.Flags().Int64Var(&seed, "seed", 0, "starting seed (0 picks one)")

	return cmd
}

package cli

import (
	"os"
	"time"

	charmlog "github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var (
	version string // semantic version (e.g., "v1.2.3")
	commit  string // git commit SHA
	date    string // build timestamp
)

// SetVersion sets the version information displayed by --version.
// This is typically called by the main package during initialization with
// values injected via ldflags at build time.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Execute runs the worldforge CLI and returns an error if any command fails.
// This is the main entry point for the CLI application.
//
// Logging:
//   - Default: info level (logs to stderr)
//   - With --verbose (-v): debug level
//
// Every invocation is tagged with a fresh run id so traces and log lines
// from interleaved runs can be told apart. The run id never feeds the
// generators; output depends only on parameters and seed.
func Execute() error {
	var verbose bool

	root := &cobra.Command{
		Use:          "worldforge",
		Short:        "WorldForge generates reproducible game worlds from a seed",
		Long:         `WorldForge is a deterministic procedural generation toolkit: fractal noise fields, dungeon layouts (space partitioning, random walk, cellular automaton), and wave-function-collapse tile maps, all reproducible from a single integer seed.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			logger := newLogger(os.Stderr, level).With("run", uuid.NewString())
			cmd.SetContext(withLogger(cmd.Context(), logger))
		},
	}

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(newNoiseCmd())
	root.AddCommand(newDungeonCmd())
	root.AddCommand(newWfcCmd())
	root.AddCommand(newPreviewCmd())

	return root.Execute()
}

// resolveSeed replaces the zero seed with a time-derived one. Callers print
// the resolved seed in their summary so the run can be reproduced later.
func resolveSeed(seed int64) int64 {
	if seed != 0 {
		return seed
	}
	return time.Now().UnixNano()
}

// Package cli implements the lvcluster command-line interface.
//
// # Commands
//
//   - solve: read a point file and print the BoundedMerge and
//     FullConnectivity answers
//   - edges: print the cheapest edges of a point file
//
// # Configuration
//
// --config points at a TOML or YAML file (see internal/config). Flags given
// on the command line override values from the file.
//
// # Logging
//
// Logs go to stderr through charmbracelet/log; --verbose (-v) switches to
// debug level. Each run carries a short run id. The logger and the loaded
// config travel to subcommands on the command context.
package cli

import (
	"context"
	"fmt"
	"io"

	charmlog "github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvcluster/internal/config"
)

var (
	version = "dev"
	commit  string
	date    string
)

// SetVersion sets the values printed by --version. main calls it with
// values injected through ldflags.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// NewRootCommand builds the command tree. Logs are written to logOut.
func NewRootCommand(logOut io.Writer) *cobra.Command {
	var (
		verbose    bool
		configPath string
	)

	root := &cobra.Command{
		Use:           "lvcluster",
		Short:         "lvcluster clusters 3-D points by pairwise distance",
		Long:          `lvcluster builds the complete Euclidean graph over a set of 3-D points and answers clustering and connectivity queries over its cheapest edges.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Default()
			if configPath != "" {
				loaded, err := config.Load(configPath)
				if err != nil {
					return err
				}
				cfg = loaded
			}

			level, err := cfg.Level()
			if err != nil {
				return err
			}
			if verbose {
				level = charmlog.DebugLevel
			}

			runID := uuid.NewString()[:8]
			logger := newLogger(logOut, level).With("run", runID)
			if configPath != "" {
				logger.Debug("loaded config", "path", configPath)
			}

			ctx := withConfig(withLogger(cmd.Context(), logger), cfg)
			cmd.SetContext(ctx)

			return nil
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("lvcluster %s\ncommit: %s\nbuilt: %s\n", version, commit, date))
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to a TOML or YAML config file")

	root.AddCommand(newSolveCmd())
	root.AddCommand(newEdgesCmd())

	return root
}

// Execute runs the CLI with ctx, logging to logOut.
func Execute(ctx context.Context, logOut io.Writer) error {
	return NewRootCommand(logOut).ExecuteContext(ctx)
}

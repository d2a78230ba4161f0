// Package cli implements the gotransect command-line interface: a `view`
// command that opens the interactive cross-section viewer and a `demo`
// command that runs the geometry pipeline headless. Logging uses
// charmbracelet/log at info level, or debug with --verbose, and travels
// through the command context.
package cli

import (
	"context"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var version = "dev"

// SetVersion overrides the version reported by --version; main wires this
// from ldflags at build time.
func SetVersion(v string) { version = v }

// Execute runs the CLI and returns the first command error.
func Execute() error {
	var verbose bool

	root := &cobra.Command{
		Use:          "gotransect",
		Short:        "Extract and preview channel cross-section transects",
		Long: `gotransect resamples a channel centerline into equally spaced points
along its arc length and builds perpendicular cross-section transects at
each interior point, ready for elevation sampling. The view command shows
the result in the terminal; demo runs the pipeline without a UI.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			cmd.SetContext(withLogger(cmd.Context(), newLogger(os.Stderr, level)))
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	root.AddCommand(newViewCmd(), newDemoCmd())
	return root.ExecuteContext(context.Background())
}

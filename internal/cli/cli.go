// Package cli implements the asciigraph command-line interface: a
// cobra command tree with render, reverse and watch subcommands, each
// with its own flag set instead of one flat namespace. All commands
// carry a *log.Logger through context, filtered to debug level by
// --verbose.
package cli

import (
	"context"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	version string
	commit  string
)

// SetVersion sets the version metadata reported by --version,
// normally injected via ldflags at build time.
func SetVersion(v, c string) {
	version = v
	commit = c
}

// Execute runs the asciigraph CLI and returns an error if any command
// fails.
func Execute() error {
	var verbose bool

	root := &cobra.Command{
		Use:          "asciigraph",
		Short:        "Render Mermaid flowcharts as ASCII/Unicode character art",
		Long:         "asciigraph lays out and routes Mermaid flowchart diagrams onto a character canvas, and can parse rendered diagrams back into Mermaid source.",
		Version:      version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := log.InfoLevel
			if verbose {
				level = log.DebugLevel
			}
			ctx := withLogger(cmd.Context(), newLogger(level))
			cmd.SetContext(ctx)
		},
	}

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	root.SetVersionTemplate("asciigraph " + version + " (" + commit + ")\n")

	root.AddCommand(newRenderCmd())
	root.AddCommand(newReverseCmd())
	root.AddCommand(newWatchCmd())

	return root.ExecuteContext(context.Background())
}

package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"asciigraph/flowchart"
	"asciigraph/graph"
)

type reverseOpts struct {
	output    string
	direction string
}

func newReverseCmd() *cobra.Command {
	opts := reverseOpts{direction: "LR"}

	cmd := &cobra.Command{
		Use:   "reverse [file]",
		Short: "Parse rendered character art back into Mermaid source",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReverse(cmd, args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default: stdout)")
	cmd.Flags().StringVar(&opts.direction, "direction", "LR", "flow direction of the diagram being parsed: LR or TD")

	return cmd
}

func runReverse(cmd *cobra.Command, inputPath string, opts *reverseOpts) error {
	logger := loggerFromContext(cmd.Context())

	content, err := os.ReadFile(inputPath)
	if err != nil {
		return fmt.Errorf("reading %q: %w", inputPath, err)
	}

	dir := graph.FlowLR
	if strings.EqualFold(opts.direction, "TD") || strings.EqualFold(opts.direction, "TB") {
		dir = graph.FlowTD
	}

	logger.Debug("reversing", "file", inputPath, "direction", opts.direction)
	out := flowchart.Reverse(string(content), dir)

	if opts.output == "" {
		fmt.Fprintln(cmd.OutOrStdout(), out)
		return nil
	}
	if err := os.WriteFile(opts.output, []byte(out+"\n"), 0o644); err != nil {
		return fmt.Errorf("writing %q: %w", opts.output, err)
	}
	logger.Info("wrote mermaid source", "path", opts.output)
	return nil
}

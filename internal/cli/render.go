package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"asciigraph/config"
	"asciigraph/flowchart"
)

type renderOpts struct {
	configPath string
	output     string
	color      bool
	ascii      bool
	direction  string
}

func newRenderCmd() *cobra.Command {
	opts := renderOpts{}

	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Render a Mermaid flowchart to character art",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.configPath, "config", "c", "", "TOML configuration file")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default: stdout)")
	cmd.Flags().BoolVar(&opts.color, "color", false, "colorize borders and arrowheads for terminal display")
	cmd.Flags().BoolVar(&opts.ascii, "ascii", false, "restrict output to plain ASCII characters")
	cmd.Flags().StringVar(&opts.direction, "direction", "", "override the diagram's flow direction: LR, RL, TD, TB, BT")

	return cmd
}

func runRender(cmd *cobra.Command, inputPath string, opts *renderOpts) error {
	logger := loggerFromContext(cmd.Context())

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if opts.ascii {
		cfg.UseASCII = true
	}
	if opts.direction != "" {
		cfg.GraphDirection = opts.direction
	}

	content, err := os.ReadFile(inputPath)
	if err != nil {
		return fmt.Errorf("reading %q: %w", inputPath, err)
	}

	logger.Debug("rendering", "file", inputPath, "direction", cfg.GraphDirection)
	out, err := flowchart.Render(string(content), cfg)
	if err != nil {
		return fmt.Errorf("rendering %q: %w", inputPath, err)
	}

	if opts.color {
		out = colorize(out)
	}

	if opts.output == "" {
		fmt.Fprintln(cmd.OutOrStdout(), out)
		return nil
	}
	if err := os.WriteFile(opts.output, []byte(out+"\n"), 0o644); err != nil {
		return fmt.Errorf("writing %q: %w", opts.output, err)
	}
	logger.Info("wrote diagram", "path", opts.output)
	return nil
}

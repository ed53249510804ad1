package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"

	"asciigraph/config"
	"asciigraph/flowchart"
)

type watchOpts struct {
	configPath string
	poll       time.Duration
}

func newWatchCmd() *cobra.Command {
	opts := watchOpts{poll: 500 * time.Millisecond}

	cmd := &cobra.Command{
		Use:   "watch [file]",
		Short: "Redraw a rendered flowchart to the terminal on file change",
		Long:  "watch redraws the rendered canvas to a real terminal screen every time the source file changes on disk. Display only; there is no editing.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWatch(cmd, args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.configPath, "config", "c", "", "TOML configuration file")
	cmd.Flags().DurationVar(&opts.poll, "poll", opts.poll, "how often to check the source file for changes")

	return cmd
}

func runWatch(cmd *cobra.Command, path string, opts *watchOpts) error {
	logger := loggerFromContext(cmd.Context())

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("creating terminal screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("initializing terminal screen: %w", err)
	}
	defer screen.Fini()
	screen.Clear()

	quit := make(chan struct{})
	go pollKeys(screen, quit)

	var lastMod time.Time
	ticker := time.NewTicker(opts.poll)
	defer ticker.Stop()

	redraw := func() error {
		info, err := os.Stat(path)
		if err != nil {
			return fmt.Errorf("stat %q: %w", path, err)
		}
		if !info.ModTime().After(lastMod) {
			return nil
		}
		lastMod = info.ModTime()

		content, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading %q: %w", path, err)
		}
		out, err := flowchart.Render(string(content), cfg)
		if err != nil {
			logger.Error("render failed", "err", err)
			return nil
		}
		drawToScreen(screen, out)
		return nil
	}

	if err := redraw(); err != nil {
		return err
	}

	for {
		select {
		case <-quit:
			return nil
		case <-ticker.C:
			if err := redraw(); err != nil {
				return err
			}
		}
	}
}

func drawToScreen(screen tcell.Screen, rendered string) {
	screen.Clear()
	x, y := 0, 0
	for _, r := range rendered {
		if r == '\n' {
			x = 0
			y++
			continue
		}
		screen.SetContent(x, y, r, nil, tcell.StyleDefault)
		x++
	}
	screen.Show()
}

func pollKeys(screen tcell.Screen, quit chan<- struct{}) {
	for {
		ev := screen.PollEvent()
		switch ev := ev.(type) {
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC || ev.Rune() == 'q' {
				close(quit)
				return
			}
		case *tcell.EventResize:
			screen.Sync()
		}
	}
}

// Package config loads and validates the renderer's runtime
// configuration: character set (ASCII or Unicode), spacing, and
// overall flowchart direction.
package config

import (
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"

	"asciigraph/graph"
)

// Config is the renderer's tunable knobs.
type Config struct {
	UseASCII         bool   `toml:"use_ascii"`
	PaddingX         int    `toml:"padding_x" validate:"min=1,max=20"`
	PaddingY         int    `toml:"padding_y" validate:"min=1,max=20"`
	BoxBorderPadding int    `toml:"box_border_padding" validate:"min=0,max=10"`
	GraphDirection   string `toml:"graph_direction" validate:"oneof=LR TD RL TB BT"`
}

// Default returns the configuration used when no file is supplied.
func Default() Config {
	return Config{
		UseASCII:         false,
		PaddingX:         2,
		PaddingY:         1,
		BoxBorderPadding: 1,
		GraphDirection:   "LR",
	}
}

var validate = validator.New()

// Load reads a TOML configuration file, applying Default() values
// underneath whatever the file overrides, then validates the result.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("loading config %q: %w", path, err)
	}
	if err := validate.Struct(cfg); err != nil {
		return Config{}, fmt.Errorf("validating config %q: %w", path, err)
	}
	return cfg, nil
}

// ResolveDirection folds the three extra Mermaid direction keywords
// (RL, TB, BT) down to the renderer's two internal axes (LR, TD),
// reporting whether the caller must vertically flip the finished
// canvas to honour a bottom-to-top or right-to-left request.
func (c Config) ResolveDirection() (dir graph.FlowDirection, flip bool) {
	switch c.GraphDirection {
	case "RL":
		return graph.FlowLR, true
	case "TB":
		return graph.FlowTD, false
	case "BT":
		return graph.FlowTD, true
	case "TD":
		return graph.FlowTD, false
	default:
		return graph.FlowLR, false
	}
}

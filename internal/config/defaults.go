package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultSnakeConfig returns the default snake configuration.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		TickMS:        100,
		InitialLength: 3,
		Seed:          0,
		Color:         true,
		Intro:         true,
		MinWidth:      40,
		MinHeight:     10,
		Glyphs: GlyphsConfig{
			Head: "@",
			Body: "#",
			Food: "*",
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

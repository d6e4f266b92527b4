// Package config provides YAML-based configuration loading for the snake game.
package config

import (
	"errors"
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/charmbracelet/log"
	"github.com/mattn/go-runewidth"
)

// ErrInvalid is returned by Validate for out-of-range settings.
var ErrInvalid = errors.New("invalid config")

// Tick interval limits in milliseconds.
const (
	MinTickMS = 20
	MaxTickMS = 1000
)

// SnakeConfig contains all configuration for the snake game.
type SnakeConfig struct {
	TickMS        int          `yaml:"tick_ms"`
	InitialLength int          `yaml:"initial_length"`
	Seed          int64        `yaml:"seed"`
	Color         bool         `yaml:"color"`
	Intro         bool         `yaml:"intro"`
	MinWidth      int          `yaml:"min_width"`
	MinHeight     int          `yaml:"min_height"`
	Glyphs        GlyphsConfig `yaml:"glyphs"`
	Log           LogConfig    `yaml:"log"`
}

// GlyphsConfig defines the characters used to draw the board.
type GlyphsConfig struct {
	Head          string `yaml:"head"`
	Body          string `yaml:"body"`
	Food          string `yaml:"food"`
	UnicodeBorder bool   `yaml:"unicode_border"`
}

// LogConfig defines where diagnostics go while the game owns the terminal.
type LogConfig struct {
	File  string `yaml:"file"`
	Level string `yaml:"level"`
}

// TickInterval returns the tick length as a duration.
func (c SnakeConfig) TickInterval() time.Duration {
	return time.Duration(c.TickMS) * time.Millisecond
}

// Validate checks that every setting is usable.
func (c SnakeConfig) Validate() error {
	if c.TickMS < MinTickMS || c.TickMS > MaxTickMS {
		return fmt.Errorf("config: tick_ms %d outside %d-%d: %w", c.TickMS, MinTickMS, MaxTickMS, ErrInvalid)
	}
	if c.InitialLength < 1 {
		return fmt.Errorf("config: initial_length must be at least 1, got %d: %w", c.InitialLength, ErrInvalid)
	}
	if c.MinWidth < 10 || c.MinHeight < 6 {
		return fmt.Errorf("config: minimum terminal %dx%d is below 10x6: %w", c.MinWidth, c.MinHeight, ErrInvalid)
	}
	for name, g := range map[string]string{"head": c.Glyphs.Head, "body": c.Glyphs.Body, "food": c.Glyphs.Food} {
		if utf8.RuneCountInString(g) != 1 || runewidth.StringWidth(g) != 1 {
			return fmt.Errorf("config: glyph %s must be a single narrow character, got %q: %w", name, g, ErrInvalid)
		}
	}
	if c.Log.Level != "" {
		if _, err := log.ParseLevel(c.Log.Level); err != nil {
			return fmt.Errorf("config: log level %q: %w", c.Log.Level, ErrInvalid)
		}
	}
	return nil
}

// Rune returns the first rune of a glyph string.
func Rune(glyph string) rune {
	r, _ := utf8.DecodeRuneInString(glyph)
	return r
}

package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
)

// errNotTerminal is returned when stdout cannot host the game.
var errNotTerminal = errors.New("stdout is not a terminal")

func runGame(cmd *cobra.Command, _ []string) error {
	setupLog := newLogger(os.Stderr, "warn")

	cfg, source, err := config.Load(os.Getenv(config.EnvConfigPath), setupLog)
	if err != nil {
		return err
	}

	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return errNotTerminal
	}
	width, height, err := term.GetSize(fd)
	if err != nil {
		return fmt.Errorf("cannot read terminal size: %w", err)
	}
	if err := checkSize(width, height, cfg.MinWidth, cfg.MinHeight); err != nil {
		return err
	}

	gameLog, closeLog, err := openGameLogger(cfg.Log)
	if err != nil {
		return err
	}
	defer closeLog()

	// Last terminal line is reserved for the controls help.
	gridW, gridH := snake.GridSize(width, height-1)

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	game, err := snake.New(snake.Options{
		Width:         gridW,
		Height:        gridH,
		InitialLength: cfg.InitialLength,
		Seed:          seed,
		Glyphs: snake.Glyphs{
			Head:          config.Rune(cfg.Glyphs.Head),
			Body:          config.Rune(cfg.Glyphs.Body),
			Food:          config.Rune(cfg.Glyphs.Food),
			UnicodeBorder: cfg.Glyphs.UnicodeBorder,
		},
	})
	if err != nil {
		return fmt.Errorf("cannot start game: %w", err)
	}

	color := tui.ColorSupported(cfg.Color)
	gameLog.Info("game started",
		"config", source,
		"grid", fmt.Sprintf("%dx%d", gridW, gridH),
		"seed", seed,
		"color", color,
	)

	state, err := tui.Run(game, tui.Options{
		TickInterval: cfg.TickInterval(),
		Color:        color,
		Intro:        cfg.Intro,
		Logger:       gameLog,
	})
	if err != nil {
		return err
	}

	gameLog.Info("game finished", "score", state.Score, "length", state.Length, "status", state.Status)
	fmt.Fprintf(cmd.OutOrStdout(), "Final score: %d\n", state.Score)
	return nil
}

// checkSize rejects terminals smaller than the configured minimum.
func checkSize(width, height, minWidth, minHeight int) error {
	if width < minWidth || height < minHeight {
		return fmt.Errorf("terminal too small: need at least %dx%d, have %dx%d", minWidth, minHeight, width, height)
	}
	return nil
}

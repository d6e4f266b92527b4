// snake is a terminal snake game.
//
// Usage:
//
//	snake
//
// Controls:
//
//	Arrow keys / WASD  - Move
//	P                  - Pause / resume
//	Q / Ctrl+C         - Quit
//
// Settings are read from $SNAKE_CONFIG, ~/.snake/config.yaml or
// ./configs/snake.yaml, falling back to the built-in defaults.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Classic snake in your terminal",
	Long: `Steer the snake around the board, eat food to grow and score
10 points per bite. Hitting a wall or yourself ends the game.

Controls:
  Arrow keys / WASD  - Move
  P                  - Pause / resume
  Q / Ctrl+C         - Quit

The terminal must be at least 40x10 characters.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runGame,
}

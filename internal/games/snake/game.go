// Package snake implements the snake game: grid state, the per-tick update
// step and rendering into a core.Screen. It knows nothing about terminals.
package snake

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// FoodPoints is the score awarded for each food eaten.
const FoodPoints = 10

// DefaultInitialLength is the snake length used when Options leaves it unset.
const DefaultInitialLength = 3

// ErrGridTooSmall is returned when the grid cannot hold the starting snake.
var ErrGridTooSmall = errors.New("grid too small")

// Options configures a new game.
type Options struct {
	Width         int   // Grid width in cells
	Height        int   // Grid height in cells
	InitialLength int   // Starting snake length (0 = DefaultInitialLength)
	Seed          int64 // RNG seed for food placement
	Glyphs        Glyphs
}

// Game holds the single authoritative state of a running snake game.
type Game struct {
	rng    *rand.Rand
	tick   uint64
	width  int
	height int
	bounds core.Rect
	glyphs Glyphs

	// Snake state
	snake     []core.Point   // Head at index 0
	direction core.Direction // Direction of the last move
	nextDir   core.Direction // Applied on the next Advance
	free      *cellSet       // Cells not covered by the snake

	food    core.Point
	hasFood bool

	score     int
	foodEaten int
	status    core.Status
	cleared   bool // Snake filled the grid
}

// GridSize returns the grid that fits a screen of the given size:
// one border cell on each side plus a status line below the box.
func GridSize(screenW, screenH int) (int, int) {
	return screenW - 2, screenH - 3
}

// ScreenSize is the inverse of GridSize.
func ScreenSize(gridW, gridH int) (int, int) {
	return gridW + 2, gridH + 3
}

// New creates a game with the snake centered and heading right.
func New(opts Options) (*Game, error) {
	length := opts.InitialLength
	if length == 0 {
		length = DefaultInitialLength
	}
	if length < 0 {
		return nil, fmt.Errorf("snake: invalid initial length %d", length)
	}
	if opts.Width < 1 || opts.Height < 1 || opts.Width/2 < length-1 || opts.Width*opts.Height <= length {
		return nil, fmt.Errorf("snake: %dx%d cannot hold a snake of length %d: %w",
			opts.Width, opts.Height, length, ErrGridTooSmall)
	}

	glyphs := opts.Glyphs
	if glyphs == (Glyphs{}) {
		glyphs = DefaultGlyphs()
	}

	g := &Game{
		rng:       rand.New(rand.NewSource(opts.Seed)),
		width:     opts.Width,
		height:    opts.Height,
		bounds:    core.NewRect(0, 0, opts.Width, opts.Height),
		glyphs:    glyphs,
		free:      newCellSet(opts.Width, opts.Height),
		direction: core.DirRight,
		nextDir:   core.DirRight,
		status:    core.StatusRunning,
	}

	head := core.Point{X: opts.Width / 2, Y: opts.Height / 2}
	g.snake = make([]core.Point, 0, length)
	for i := 0; i < length; i++ {
		p := head.Add(-i, 0)
		g.snake = append(g.snake, p)
		g.free.remove(p)
	}

	g.spawnFood()
	return g, nil
}

// spawnFood moves the food to a random free cell.
func (g *Game) spawnFood() {
	g.food, g.hasFood = g.free.pick(g.rng)
}

// occupied reports whether an in-bounds cell is covered by the snake.
func (g *Game) occupied(p core.Point) bool {
	return !g.free.contains(p)
}

// ApplyDirection queues a direction change for the next move.
// A request opposite to the last move is ignored.
func (g *Game) ApplyDirection(d core.Direction) {
	if d == g.direction.Opposite() {
		return
	}
	g.nextDir = d
}

// Advance moves the snake one cell. It returns true if food was eaten.
// Hitting a wall or the body ends the game without touching the snake.
func (g *Game) Advance() bool {
	if g.status != core.StatusRunning || len(g.snake) == 0 {
		return false
	}

	g.direction = g.nextDir
	dx, dy := g.direction.Vector()
	newHead := g.snake[0].Add(dx, dy)

	if !g.bounds.ContainsPoint(newHead) {
		g.status = core.StatusOver
		return false
	}

	// The tail moves out of the way this tick unless food is eaten,
	// and food is never on the snake.
	tail := g.snake[len(g.snake)-1]
	if g.occupied(newHead) && newHead != tail {
		g.status = core.StatusOver
		return false
	}

	ate := g.hasFood && newHead == g.food
	if !ate {
		g.snake = g.snake[:len(g.snake)-1]
		g.free.add(tail)
	}
	g.snake = append([]core.Point{newHead}, g.snake...)
	g.free.remove(newHead)

	if ate {
		g.score += FoodPoints
		g.foodEaten++
		g.spawnFood()
		if !g.hasFood {
			g.cleared = true
			g.status = core.StatusOver
		}
	}
	return ate
}

// TogglePause flips between running and paused. It does nothing once over.
func (g *Game) TogglePause() {
	switch g.status {
	case core.StatusRunning:
		g.status = core.StatusPaused
	case core.StatusPaused:
		g.status = core.StatusRunning
	}
}

// Step applies one tick's action to the game.
func (g *Game) Step(action core.Action) core.StepResult {
	before := g.status
	ate := false

	switch g.status {
	case core.StatusRunning:
		g.tick++
		switch {
		case action == core.ActionPause:
			g.TogglePause()
		case action == core.ActionQuit:
			// Quit is handled by the caller.
		default:
			if dir, ok := action.Direction(); ok {
				g.ApplyDirection(dir)
			}
			ate = g.Advance()
		}
	case core.StatusPaused:
		if action == core.ActionPause {
			g.TogglePause()
		}
	}

	return core.StepResult{
		State:   g.State(),
		Changed: g.status != before,
		Ate:     ate,
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:  g.score,
		Length: len(g.snake),
		Status: g.status,
	}
}

// Status returns the current lifecycle status.
func (g *Game) Status() core.Status {
	return g.status
}

// Score returns the current score.
func (g *Game) Score() int {
	return g.score
}

// Width returns the grid width.
func (g *Game) Width() int {
	return g.width
}

// Height returns the grid height.
func (g *Game) Height() int {
	return g.height
}

// Head returns the head cell.
func (g *Game) Head() core.Point {
	return g.snake[0]
}

// Body returns a copy of the snake cells, head first.
func (g *Game) Body() []core.Point {
	body := make([]core.Point, len(g.snake))
	copy(body, g.snake)
	return body
}

// Food returns the food cell. The second result is false once the grid is full.
func (g *Game) Food() (core.Point, bool) {
	return g.food, g.hasFood
}

// Direction returns the direction of the last move.
func (g *Game) Direction() core.Direction {
	return g.direction
}

// Cleared reports whether the game ended because the snake filled the grid.
func (g *Game) Cleared() bool {
	return g.cleared
}

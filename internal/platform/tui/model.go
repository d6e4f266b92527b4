package tui

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

// DefaultTickInterval is used when Options leaves the interval unset.
const DefaultTickInterval = 100 * time.Millisecond

// Options configures the game loop.
type Options struct {
	TickInterval time.Duration
	Color        bool // Styled output; see ColorSupported
	Intro        bool // Show a start screen until a key is pressed
	Logger       *log.Logger
}

// Model is the Bubble Tea model driving one snake game.
// Keys are buffered as they arrive and consumed once per tick.
type Model struct {
	game   *snake.Game
	screen *core.Screen
	input  *core.InputQueue
	keys   KeyMap
	help   help.Model
	opts   Options
	logger *log.Logger

	needW, needH int // Terminal size the board needs, help line included
	width        int
	height       int
	tooSmall     bool
	started      bool
	quitting     bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game *snake.Game, opts Options) Model {
	if opts.TickInterval <= 0 {
		opts.TickInterval = DefaultTickInterval
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	screenW, screenH := snake.ScreenSize(game.Width(), game.Height())
	return Model{
		game:    game,
		screen:  core.NewScreen(screenW, screenH),
		input:   core.NewInputQueue(),
		keys:    DefaultKeyMap(),
		help:    help.New(),
		opts:    opts,
		logger:  logger,
		needW:   screenW,
		needH:   screenH + 1,
		width:   screenW,
		height:  screenH + 1,
		started: !opts.Intro,
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.opts.TickInterval)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if !m.started {
			return m.handleStart(msg)
		}
		m.input.Push(m.keys.Action(msg))
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleResize keeps the board size fixed; it only tracks whether it still fits.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.help.Width = msg.Width

	tooSmall := msg.Width < m.needW || msg.Height < m.needH
	if tooSmall != m.tooSmall {
		m.logger.Info("terminal resized", "width", msg.Width, "height", msg.Height, "fits", !tooSmall)
	}
	m.tooSmall = tooSmall

	if !tooSmall {
		m.screen.Resize(msg.Width, m.screen.Height())
	}
	return m, nil
}

// handleStart leaves the start screen. Quit still exits straight away.
func (m Model) handleStart(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.keys.Action(msg) == core.ActionQuit {
		m.logger.Info("quit before start")
		m.quitting = true
		return m, tea.Quit
	}
	m.started = true
	m.logger.Info("start screen dismissed")
	return m, nil
}

// handleTick runs one loop iteration: read one action, update, schedule the next tick.
// Rendering follows in View.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	pressed := m.input.Pressed()
	action := m.input.Poll()

	if action == core.ActionQuit {
		m.logger.Info("quit", "score", m.game.Score(), "status", m.game.Status())
		m.quitting = true
		return m, tea.Quit
	}

	// The game waits on the start screen.
	if !m.started {
		return m, tickCmd(m.opts.TickInterval)
	}

	// The final frame has been shown; any key leaves.
	if m.game.State().GameOver() {
		if pressed {
			m.quitting = true
			return m, tea.Quit
		}
		return m, tickCmd(m.opts.TickInterval)
	}

	// Hold the game while the board cannot be shown; keys pressed blind are dropped.
	if m.tooSmall {
		m.input.Clear()
		return m, tickCmd(m.opts.TickInterval)
	}

	result := m.game.Step(action)
	if result.Ate {
		m.logger.Debug("food eaten", "score", result.State.Score, "length", result.State.Length)
	}
	if result.Changed {
		m.logger.Info("status changed", "status", result.State.Status, "score", result.State.Score)
	}

	return m, tickCmd(m.opts.TickInterval)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if m.tooSmall {
		return fmt.Sprintf("Terminal too small: need %dx%d, have %dx%d.\nResize to continue or press Q to quit.",
			m.needW, m.needH, m.width, m.height)
	}

	if m.started {
		m.game.Render(m.screen)
	} else {
		renderIntro(m.screen)
	}
	return RenderScreen(m.screen, m.opts.Color) + "\n" + m.help.View(m.keys)
}

// Game returns the game driven by the model.
func (m Model) Game() *snake.Game {
	return m.game
}

// Quitting reports whether the loop has ended.
func (m Model) Quitting() bool {
	return m.quitting
}

// Run starts the Bubble Tea program and blocks until the player quits.
// It returns the final game state.
func Run(game *snake.Game, opts Options) (core.GameState, error) {
	model := NewModel(game, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	if _, err := p.Run(); err != nil {
		return game.State(), fmt.Errorf("tui: %w", err)
	}
	return game.State(), nil
}

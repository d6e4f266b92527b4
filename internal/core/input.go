package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows the game to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone  Action = iota
	ActionUp           // W, Up arrow
	ActionDown         // S, Down arrow
	ActionLeft         // A, Left arrow
	ActionRight        // D, Right arrow
	ActionPause        // P - toggle pause
	ActionQuit         // Q, Ctrl+C - exit the game
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionPause:
		return "Pause"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// IsMove reports whether the action is one of the four movement actions.
func (a Action) IsMove() bool {
	return a >= ActionUp && a <= ActionRight
}

// Direction returns the movement direction for a move action.
// The second result is false for non-movement actions.
func (a Action) Direction() (Direction, bool) {
	switch a {
	case ActionUp:
		return DirUp, true
	case ActionDown:
		return DirDown, true
	case ActionLeft:
		return DirLeft, true
	case ActionRight:
		return DirRight, true
	default:
		return DirRight, false
	}
}

// MaxQueuedMoves bounds how many movement presses are kept between ticks.
const MaxQueuedMoves = 4

// InputQueue buffers actions between ticks and hands out at most one per tick.
// Poll never blocks: an empty queue yields ActionNone.
type InputQueue struct {
	moves   []Action
	pauses  int
	quit    bool
	pressed bool
}

// NewInputQueue creates an empty input queue.
func NewInputQueue() *InputQueue {
	return &InputQueue{
		moves: make([]Action, 0, MaxQueuedMoves),
	}
}

// Push records a key press mapped to the given action.
// ActionNone only marks that a key was pressed.
func (q *InputQueue) Push(a Action) {
	q.pressed = true

	switch {
	case a == ActionQuit:
		q.quit = true
	case a == ActionPause:
		q.pauses++
	case a.IsMove():
		if len(q.moves) < MaxQueuedMoves {
			q.moves = append(q.moves, a)
		}
	}
}

// Poll returns the action for the current tick.
// Priority: Quit, then a pause toggle, then the oldest movement.
// A pause toggle drops buffered moves so none carries across it.
func (q *InputQueue) Poll() Action {
	q.pressed = false

	switch {
	case q.quit:
		q.quit = false
		return ActionQuit
	case q.pauses > 0:
		q.pauses--
		q.moves = q.moves[:0]
		return ActionPause
	case len(q.moves) > 0:
		a := q.moves[0]
		q.moves = q.moves[1:]
		return a
	}
	return ActionNone
}

// Pressed reports whether any key arrived since the previous Poll.
func (q *InputQueue) Pressed() bool {
	return q.pressed
}

// Clear drops all buffered input.
func (q *InputQueue) Clear() {
	q.moves = q.moves[:0]
	q.pauses = 0
	q.quit = false
	q.pressed = false
}

package core

// Status is the lifecycle state of a game.
type Status int

const (
	StatusRunning Status = iota
	StatusPaused
	StatusOver
)

func (s Status) String() string {
	switch s {
	case StatusRunning:
		return "running"
	case StatusPaused:
		return "paused"
	case StatusOver:
		return "over"
	default:
		return "unknown"
	}
}

// GameState is the summary the platform needs after each tick.
type GameState struct {
	Score  int    // Current score
	Length int    // Snake length
	Status Status // Running, paused or over
}

// GameOver reports whether the game has ended.
func (s GameState) GameOver() bool {
	return s.Status == StatusOver
}

// StepResult is returned by Step after each simulation tick.
type StepResult struct {
	State   GameState
	Changed bool // Status changed during this tick
	Ate     bool // Food was eaten during this tick
}

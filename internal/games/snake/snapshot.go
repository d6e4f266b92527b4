package snake

import "github.com/vovakirdan/tui-snake/internal/core"

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick      uint64
	Score     int
	FoodEaten int
	Body      []core.Point // Head first
	Dir       core.Direction
	NextDir   core.Direction
	Food      core.Point
	HasFood   bool
	Status    core.Status
	Cleared   bool
}

// Snapshot returns a deep copy of the current game state.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:      g.tick,
		Score:     g.score,
		FoodEaten: g.foodEaten,
		Body:      g.Body(),
		Dir:       g.direction,
		NextDir:   g.nextDir,
		Food:      g.food,
		HasFood:   g.hasFood,
		Status:    g.status,
		Cleared:   g.cleared,
	}
}

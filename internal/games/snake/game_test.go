package snake

import (
	"errors"
	"reflect"
	"testing"

	"github.com/vovakirdan/tui-snake/internal/core"
)

func newTestGame(t *testing.T, opts Options) *Game {
	t.Helper()
	g, err := New(opts)
	if err != nil {
		t.Fatalf("New(%+v) failed: %v", opts, err)
	}
	return g
}

// placeFood moves the food to p, keeping it out of the free-cell bookkeeping.
func placeFood(g *Game, p core.Point) {
	g.food = p
	g.hasFood = true
}

// setSnake replaces the snake body and rebuilds the free-cell set.
func setSnake(g *Game, body []core.Point, dir core.Direction) {
	g.snake = append([]core.Point(nil), body...)
	g.free = newCellSet(g.width, g.height)
	for _, p := range body {
		g.free.remove(p)
	}
	g.direction = dir
	g.nextDir = dir
}

func TestNewPlacesSnakeAndFood(t *testing.T) {
	g := newTestGame(t, Options{Width: 20, Height: 10, Seed: 1})

	body := g.Body()
	expected := []core.Point{{X: 10, Y: 5}, {X: 9, Y: 5}, {X: 8, Y: 5}}
	if !reflect.DeepEqual(body, expected) {
		t.Errorf("initial body = %v, expected %v", body, expected)
	}
	if g.Direction() != core.DirRight {
		t.Errorf("initial direction = %v, expected right", g.Direction())
	}
	if g.Status() != core.StatusRunning {
		t.Errorf("initial status = %v, expected running", g.Status())
	}
	if g.Score() != 0 {
		t.Errorf("initial score = %d, expected 0", g.Score())
	}

	food, ok := g.Food()
	if !ok {
		t.Fatal("food should be placed")
	}
	for _, p := range body {
		if p == food {
			t.Errorf("food placed on snake at %v", food)
		}
	}
	if g.free.len() != 20*10-3 {
		t.Errorf("free cells = %d, expected %d", g.free.len(), 20*10-3)
	}
}

func TestNewRejectsTinyGrid(t *testing.T) {
	tests := []struct {
		name string
		opts Options
	}{
		{"zero size", Options{Width: 0, Height: 0}},
		{"snake does not fit", Options{Width: 3, Height: 3, InitialLength: 3}},
		{"no room for food", Options{Width: 1, Height: 1, InitialLength: 1}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := New(tc.opts)
			if !errors.Is(err, ErrGridTooSmall) {
				t.Errorf("New() error = %v, expected ErrGridTooSmall", err)
			}
		})
	}

	if _, err := New(Options{Width: 10, Height: 10, InitialLength: -1}); err == nil {
		t.Error("negative initial length should fail")
	}
}

// Scenario A: single cell moving right on an empty 10x10 grid.
func TestAdvanceMovesHead(t *testing.T) {
	g := newTestGame(t, Options{Width: 10, Height: 10, InitialLength: 1, Seed: 7})
	placeFood(g, core.Point{X: 0, Y: 0})

	if g.Head() != (core.Point{X: 5, Y: 5}) {
		t.Fatalf("head = %v, expected (5,5)", g.Head())
	}

	g.Step(core.ActionNone)

	if g.Head() != (core.Point{X: 6, Y: 5}) {
		t.Errorf("head after one tick = %v, expected (6,5)", g.Head())
	}
	if len(g.Body()) != 1 {
		t.Errorf("length = %d, expected 1", len(g.Body()))
	}
}

func TestLengthInvariantWithoutFood(t *testing.T) {
	g := newTestGame(t, Options{Width: 30, Height: 20, Seed: 3})
	placeFood(g, core.Point{X: 0, Y: 0})

	moves := []core.Action{
		core.ActionNone, core.ActionUp, core.ActionNone, core.ActionLeft,
		core.ActionNone, core.ActionDown, core.ActionDown, core.ActionRight,
	}
	for _, a := range moves {
		before := g.Snapshot()
		g.Step(a)
		after := g.Snapshot()

		if len(after.Body) != len(before.Body) {
			t.Fatalf("length changed from %d to %d on %v", len(before.Body), len(after.Body), a)
		}
		dx, dy := after.Dir.Vector()
		if after.Body[0] != before.Body[0].Add(dx, dy) {
			t.Fatalf("head %v is not old head %v + %v", after.Body[0], before.Body[0], after.Dir)
		}
	}
}

// Scenario B: food directly ahead.
func TestEatingFoodGrowsSnake(t *testing.T) {
	g := newTestGame(t, Options{Width: 20, Height: 20, Seed: 222})
	head := g.Head()
	initialLen := len(g.Body())
	placeFood(g, head.Add(1, 0))

	result := g.Step(core.ActionNone)

	if !result.Ate {
		t.Error("StepResult should report food eaten")
	}
	if len(g.Body()) != initialLen+1 {
		t.Errorf("length = %d, expected %d", len(g.Body()), initialLen+1)
	}
	if g.Score() != FoodPoints {
		t.Errorf("score = %d, expected %d", g.Score(), FoodPoints)
	}
	if g.Head() != head.Add(1, 0) {
		t.Errorf("head = %v, expected %v", g.Head(), head.Add(1, 0))
	}

	food, ok := g.Food()
	if !ok {
		t.Fatal("food should be relocated")
	}
	for _, p := range g.Body() {
		if p == food {
			t.Errorf("relocated food %v is inside the snake", food)
		}
	}
}

func TestRepeatedEatingNeverPlacesFoodOnSnake(t *testing.T) {
	g := newTestGame(t, Options{Width: 12, Height: 12, InitialLength: 1, Seed: 99})

	for i := 0; i < 40; i++ {
		setDirToward(g)
		scoreBefore, lenBefore := g.Score(), len(g.Body())
		head := g.Head()
		dx, dy := g.nextDir.Vector()
		placeFood(g, head.Add(dx, dy))

		g.Step(core.ActionNone)
		if g.Status() != core.StatusRunning {
			break
		}

		if g.Score() != scoreBefore+FoodPoints || len(g.Body()) != lenBefore+1 {
			t.Fatalf("eat #%d: score %d len %d, expected %d and %d",
				i, g.Score(), len(g.Body()), scoreBefore+FoodPoints, lenBefore+1)
		}
		food, ok := g.Food()
		if ok && g.occupied(food) {
			t.Fatalf("eat #%d: food %v placed on snake", i, food)
		}
		checkFreeSet(t, g)
	}
}

// setDirToward turns the snake so the next cell ahead is free and in bounds.
func setDirToward(g *Game) {
	for _, d := range []core.Direction{g.direction, core.DirUp, core.DirDown, core.DirLeft, core.DirRight} {
		if d == g.direction.Opposite() {
			continue
		}
		dx, dy := d.Vector()
		next := g.Head().Add(dx, dy)
		if g.bounds.ContainsPoint(next) && !g.occupied(next) {
			g.nextDir = d
			return
		}
	}
}

func checkFreeSet(t *testing.T, g *Game) {
	t.Helper()
	if g.free.len()+len(g.snake) != g.width*g.height {
		t.Fatalf("free %d + snake %d != %d cells", g.free.len(), len(g.snake), g.width*g.height)
	}
	for _, p := range g.snake {
		if g.free.contains(p) {
			t.Fatalf("snake cell %v is marked free", p)
		}
	}
}

func TestNoImmediateReversal(t *testing.T) {
	g := newTestGame(t, Options{Width: 20, Height: 20, Seed: 42})
	placeFood(g, core.Point{X: 0, Y: 0})
	neck := g.Body()[1]

	g.Step(core.ActionLeft)

	if g.Direction() != core.DirRight {
		t.Errorf("direction = %v, reversal should be ignored", g.Direction())
	}
	if g.Head() == neck {
		t.Error("head moved into its own neck")
	}
	if g.Status() != core.StatusRunning {
		t.Errorf("reversal attempt ended the game: %v", g.Status())
	}

	g.Step(core.ActionDown)
	if g.Direction() != core.DirDown {
		t.Errorf("direction = %v, expected down", g.Direction())
	}
}

func TestApplyDirectionComparesWithLastMove(t *testing.T) {
	g := newTestGame(t, Options{Width: 20, Height: 20, Seed: 5})

	// Up then Left while moving right: Left is opposite of the last move.
	g.ApplyDirection(core.DirUp)
	g.ApplyDirection(core.DirLeft)
	if g.nextDir != core.DirUp {
		t.Errorf("nextDir = %v, expected up", g.nextDir)
	}
}

func TestWallCollision(t *testing.T) {
	tests := []struct {
		name string
		head core.Point
		dir  core.Direction
	}{
		{"top", core.Point{X: 3, Y: 0}, core.DirUp},
		{"bottom", core.Point{X: 3, Y: 9}, core.DirDown},
		{"left", core.Point{X: 0, Y: 3}, core.DirLeft},
		{"right", core.Point{X: 9, Y: 3}, core.DirRight},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := newTestGame(t, Options{Width: 10, Height: 10, InitialLength: 1, Seed: 1})
			setSnake(g, []core.Point{tc.head}, tc.dir)
			placeFood(g, core.Point{X: 5, Y: 5})

			g.Step(core.ActionNone)

			if g.Status() != core.StatusOver {
				t.Errorf("status = %v, expected over", g.Status())
			}
			if g.Head() != tc.head {
				t.Errorf("head moved to %v after collision", g.Head())
			}
		})
	}
}

// Scenario C: no mutation after game over.
func TestOverIsTerminal(t *testing.T) {
	g := newTestGame(t, Options{Width: 10, Height: 10, InitialLength: 1, Seed: 1})
	setSnake(g, []core.Point{{X: 9, Y: 5}}, core.DirRight)
	placeFood(g, core.Point{X: 2, Y: 2})

	g.Step(core.ActionNone)
	if g.Status() != core.StatusOver {
		t.Fatalf("status = %v, expected over", g.Status())
	}

	frozen := g.Snapshot()
	for _, a := range []core.Action{core.ActionNone, core.ActionUp, core.ActionPause, core.ActionLeft} {
		g.Step(a)
		g.TogglePause()
		g.Advance()
	}

	if !reflect.DeepEqual(g.Snapshot(), frozen) {
		t.Errorf("state changed after game over:\n%+v\n%+v", g.Snapshot(), frozen)
	}
}

func TestSelfCollision(t *testing.T) {
	g := newTestGame(t, Options{Width: 20, Height: 20, Seed: 111})
	setSnake(g, []core.Point{
		{X: 5, Y: 5}, // Head
		{X: 5, Y: 6},
		{X: 6, Y: 6},
		{X: 6, Y: 5},
		{X: 6, Y: 4},
	}, core.DirUp)
	placeFood(g, core.Point{X: 0, Y: 0})

	// Right would put the head on (6, 5), a body cell
	g.Step(core.ActionRight)

	if g.Status() != core.StatusOver {
		t.Error("game should be over after self collision")
	}
}

func TestMovingIntoVacatedTail(t *testing.T) {
	g := newTestGame(t, Options{Width: 20, Height: 20, Seed: 8})
	// A 2x2 loop: head follows its own tail.
	setSnake(g, []core.Point{
		{X: 5, Y: 5},
		{X: 5, Y: 6},
		{X: 6, Y: 6},
		{X: 6, Y: 5},
	}, core.DirUp)
	placeFood(g, core.Point{X: 0, Y: 0})

	g.Step(core.ActionRight)

	if g.Status() != core.StatusRunning {
		t.Fatalf("moving into the tail cell should be allowed, status = %v", g.Status())
	}
	if g.Head() != (core.Point{X: 6, Y: 5}) {
		t.Errorf("head = %v, expected (6,5)", g.Head())
	}
	checkFreeSet(t, g)
}

func TestEatingIntoTailCellWhenGrowing(t *testing.T) {
	g := newTestGame(t, Options{Width: 20, Height: 20, Seed: 8})
	setSnake(g, []core.Point{
		{X: 5, Y: 5},
		{X: 5, Y: 6},
		{X: 6, Y: 6},
		{X: 6, Y: 5},
		{X: 7, Y: 5},
	}, core.DirUp)
	placeFood(g, core.Point{X: 0, Y: 0})

	// (6,5) is not the tail here, so this is a collision
	g.Step(core.ActionRight)

	if g.Status() != core.StatusOver {
		t.Errorf("status = %v, expected over", g.Status())
	}
}

// Scenario D: pause freezes everything, resume continues unchanged.
func TestPauseFreezesState(t *testing.T) {
	g := newTestGame(t, Options{Width: 20, Height: 20, Seed: 17})
	placeFood(g, core.Point{X: 0, Y: 0})

	g.Step(core.ActionNone)
	g.Step(core.ActionPause)
	if g.Status() != core.StatusPaused {
		t.Fatalf("status = %v, expected paused", g.Status())
	}

	paused := g.Snapshot()
	for _, a := range []core.Action{core.ActionUp, core.ActionNone, core.ActionLeft, core.ActionDown} {
		g.Step(a)
		if !reflect.DeepEqual(g.Snapshot(), paused) {
			t.Fatalf("state changed while paused on %v", a)
		}
	}

	g.Step(core.ActionPause)
	if g.Status() != core.StatusRunning {
		t.Fatalf("status = %v, expected running", g.Status())
	}
	resumed := g.Snapshot()
	if !reflect.DeepEqual(resumed.Body, paused.Body) || resumed.Dir != paused.Dir {
		t.Error("resume should keep position and direction")
	}

	head := g.Head()
	g.Step(core.ActionNone)
	if g.Head() != head.Add(1, 0) {
		t.Errorf("head = %v, expected to keep moving right from %v", g.Head(), head)
	}
}

func TestTogglePause(t *testing.T) {
	g := newTestGame(t, Options{Width: 10, Height: 10, Seed: 1})

	g.TogglePause()
	if g.Status() != core.StatusPaused {
		t.Errorf("status = %v, expected paused", g.Status())
	}
	g.TogglePause()
	if g.Status() != core.StatusRunning {
		t.Errorf("status = %v, expected running", g.Status())
	}
}

func TestStepReportsStatusChange(t *testing.T) {
	g := newTestGame(t, Options{Width: 10, Height: 10, Seed: 1})

	if res := g.Step(core.ActionPause); !res.Changed || res.State.Status != core.StatusPaused {
		t.Errorf("pause step = %+v, expected a change to paused", res)
	}
	if res := g.Step(core.ActionUp); res.Changed {
		t.Errorf("move while paused = %+v, expected no change", res)
	}
}

func TestQuitActionDoesNotAdvance(t *testing.T) {
	g := newTestGame(t, Options{Width: 10, Height: 10, Seed: 1})
	head := g.Head()

	g.Step(core.ActionQuit)

	if g.Head() != head {
		t.Errorf("head moved on quit: %v -> %v", head, g.Head())
	}
}

func TestBoardCleared(t *testing.T) {
	// 3x1 grid, snake of 1 at (1,0): two free cells.
	g := newTestGame(t, Options{Width: 3, Height: 1, InitialLength: 1, Seed: 1})
	setSnake(g, []core.Point{{X: 0, Y: 0}}, core.DirRight)
	g.free.remove(core.Point{X: 2, Y: 0})
	g.snake = append(g.snake, core.Point{X: 2, Y: 0}) // fake tail, keeps one cell free
	placeFood(g, core.Point{X: 1, Y: 0})

	g.Step(core.ActionNone)

	if g.Status() != core.StatusOver || !g.Cleared() {
		t.Errorf("status = %v cleared = %v, expected over and cleared", g.Status(), g.Cleared())
	}
	if _, ok := g.Food(); ok {
		t.Error("no food should remain on a full grid")
	}
	if g.Score() != FoodPoints {
		t.Errorf("score = %d, expected %d", g.Score(), FoodPoints)
	}
}

func TestDeterminism(t *testing.T) {
	opts := Options{Width: 40, Height: 20, Seed: 12345}

	g1 := newTestGame(t, opts)
	g2 := newTestGame(t, opts)

	for i := 0; i < 100; i++ {
		var a core.Action
		switch i {
		case 5:
			a = core.ActionDown
		case 8:
			a = core.ActionLeft
		case 12:
			a = core.ActionUp
		}
		g1.Step(a)
		g2.Step(a)
	}

	if !reflect.DeepEqual(g1.Snapshot(), g2.Snapshot()) {
		t.Errorf("snapshots differ:\n%+v\n%+v", g1.Snapshot(), g2.Snapshot())
	}
}

func TestGridSize(t *testing.T) {
	w, h := GridSize(40, 10)
	if w != 38 || h != 7 {
		t.Errorf("GridSize(40, 10) = (%d, %d), expected (38, 7)", w, h)
	}
	sw, sh := ScreenSize(w, h)
	if sw != 40 || sh != 10 {
		t.Errorf("ScreenSize(%d, %d) = (%d, %d), expected (40, 10)", w, h, sw, sh)
	}
}

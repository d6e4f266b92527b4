package snake

import (
	"math/rand"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// cellSet is the set of grid cells not covered by the snake.
// Cells live in a dense slice; index maps a cell to its slot (-1 when absent),
// so add, remove and random pick are all O(1).
type cellSet struct {
	width  int
	height int
	cells  []core.Point
	index  []int
}

// newCellSet returns a set holding every cell of a width x height grid.
func newCellSet(width, height int) *cellSet {
	s := &cellSet{
		width:  width,
		height: height,
		cells:  make([]core.Point, 0, width*height),
		index:  make([]int, width*height),
	}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			s.index[y*width+x] = len(s.cells)
			s.cells = append(s.cells, core.Point{X: x, Y: y})
		}
	}
	return s
}

func (s *cellSet) key(p core.Point) (int, bool) {
	if p.X < 0 || p.X >= s.width || p.Y < 0 || p.Y >= s.height {
		return 0, false
	}
	return p.Y*s.width + p.X, true
}

func (s *cellSet) contains(p core.Point) bool {
	k, ok := s.key(p)
	return ok && s.index[k] >= 0
}

func (s *cellSet) add(p core.Point) {
	k, ok := s.key(p)
	if !ok || s.index[k] >= 0 {
		return
	}
	s.index[k] = len(s.cells)
	s.cells = append(s.cells, p)
}

// remove swaps the cell with the last slot and truncates.
func (s *cellSet) remove(p core.Point) {
	k, ok := s.key(p)
	if !ok || s.index[k] < 0 {
		return
	}
	i := s.index[k]
	last := len(s.cells) - 1
	moved := s.cells[last]
	s.cells[i] = moved
	mk, _ := s.key(moved)
	s.index[mk] = i
	s.cells = s.cells[:last]
	s.index[k] = -1
}

func (s *cellSet) len() int {
	return len(s.cells)
}

// pick returns a uniformly random member, or false when the set is empty.
func (s *cellSet) pick(rng *rand.Rand) (core.Point, bool) {
	if len(s.cells) == 0 {
		return core.Point{}, false
	}
	return s.cells[rng.Intn(len(s.cells))], true
}

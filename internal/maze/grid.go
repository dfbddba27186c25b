// Package maze implements a stepwise "recursive backtracker" maze carver.
//
// A Grid starts out fully walled. Each call to Step advances the carve by
// exactly one cell visit or one backtrack, so a driver can animate the
// process at whatever cadence it likes. When Step reports StepDone the
// removed walls form a spanning tree of the grid graph: a perfect maze with
// exactly one path between any two cells.
package maze

import (
	"errors"
	"math/rand/v2"
	"strings"

	"github.com/sirupsen/logrus"
)

var Log = logrus.New()

var ErrInvalidDimensions = errors.New("maze: rows and cols must be positive")

// Grid owns the cells being carved, the backtracking stack and the carver's
// position. It is not safe for concurrent use; callers that share a Grid
// across goroutines must serialize access themselves.
type Grid struct {
	rows, cols int
	cells      []Cell
	stack      []int
	current    int
	next       int
	rnd        *rand.Rand
	steps      int
	removed    int
	done       bool
}

// New builds an all-walled, unvisited grid and picks a uniformly random
// starting cell. The grid owns rnd for every random draw it makes, so two
// grids built with identically seeded generators carve identical mazes.
func New(rows, cols int, rnd *rand.Rand) (*Grid, error) {
	if rows < 1 || cols < 1 {
		return nil, ErrInvalidDimensions
	}
	g := &Grid{rows: rows, cols: cols, rnd: rnd}
	g.init()
	return g, nil
}

func (g *Grid) init() {
	g.cells = make([]Cell, g.rows*g.cols)
	for row := 0; row < g.rows; row++ {
		for col := 0; col < g.cols; col++ {
			g.cells[row*g.cols+col] = Cell{
				Row: row, Col: col,
				Top: true, Bottom: true, Left: true, Right: true,
			}
		}
	}
	g.stack = g.stack[:0]
	g.current = g.rnd.IntN(len(g.cells))
	g.next = -1
	g.steps = 0
	g.removed = 0
	g.done = false
}

// Reset rebuilds the grid in place: all walls restored, nothing visited, a
// fresh random starting cell drawn from the owned generator. Equivalent to
// discarding the grid and constructing a new one with the same generator.
func (g *Grid) Reset() {
	g.init()
}

// index maps (row, col) to the flat cell offset, or reports false when the
// coordinates fall outside the grid. Flattening is row*cols + col, which
// stays correct for non-square grids.
func (g *Grid) index(row, col int) (int, bool) {
	if row < 0 || col < 0 || row > g.rows-1 || col > g.cols-1 {
		return -1, false
	}
	return row*g.cols + col, true
}

func (g *Grid) Rows() int { return g.rows }

func (g *Grid) Cols() int { return g.cols }

// Size returns the total number of cells.
func (g *Grid) Size() int { return len(g.cells) }

// Cell returns a copy of the cell at (row, col), or false when the
// coordinates are out of bounds.
func (g *Grid) Cell(row, col int) (Cell, bool) {
	i, ok := g.index(row, col)
	if !ok {
		return Cell{}, false
	}
	return g.cells[i], true
}

// CellAt returns a copy of the cell at the given flat index.
func (g *Grid) CellAt(i int) Cell { return g.cells[i] }

// Current returns the flat index of the cell the carver is sitting on.
func (g *Grid) Current() int { return g.current }

// CurrentCell returns a copy of the cell the carver is sitting on.
func (g *Grid) CurrentCell() Cell { return g.cells[g.current] }

// Next returns the flat index of the neighbor chosen by the most recent
// Step, or -1 when the last step found no unvisited neighbor.
func (g *Grid) Next() int { return g.next }

// Done reports whether the carve has completed, i.e. every cell has been
// visited and the backtracking stack has unwound.
func (g *Grid) Done() bool { return g.done }

// Steps returns the number of effective steps taken so far. Calls made
// after completion do not count.
func (g *Grid) Steps() int { return g.steps }

// WallsRemoved returns the number of wall pairs carved so far. At
// completion this is always rows*cols - 1.
func (g *Grid) WallsRemoved() int { return g.removed }

// String renders the grid as ASCII art. The current cell is marked '*',
// visited cells '.', unvisited cells are blank.
func (g *Grid) String() string {
	var b strings.Builder

	b.WriteString("+" + strings.Repeat("---+", g.cols) + "\n")

	for row := 0; row < g.rows; row++ {
		b.WriteString("|")
		for col := 0; col < g.cols; col++ {
			i := row*g.cols + col
			cell := g.cells[i]

			switch {
			case i == g.current:
				b.WriteString(" * ")
			case cell.Visited:
				b.WriteString(" . ")
			default:
				b.WriteString("   ")
			}

			if cell.Right {
				b.WriteString("|")
			} else {
				b.WriteString(" ")
			}
		}
		b.WriteString("\n")

		b.WriteString("+")
		for col := 0; col < g.cols; col++ {
			if g.cells[row*g.cols+col].Bottom {
				b.WriteString("---+")
			} else {
				b.WriteString("   +")
			}
		}
		b.WriteString("\n")
	}

	return b.String()
}

package maze

import "github.com/sirupsen/logrus"

// StepKind reports what a single call to Step did.
type StepKind int

const (
	// StepCarved means the carver moved into an unvisited neighbor,
	// removing the wall pair between the two cells.
	StepCarved StepKind = iota
	// StepBacktracked means the current cell had no unvisited neighbor and
	// the carver popped one cell off the backtracking stack.
	StepBacktracked
	// StepDone means every cell has been visited and the stack is empty.
	// Further calls to Step keep returning StepDone without changing the
	// grid.
	StepDone
)

func (k StepKind) String() string {
	switch k {
	case StepCarved:
		return "carved"
	case StepBacktracked:
		return "backtracked"
	case StepDone:
		return "done"
	}
	return "invalid"
}

// randomNeighbor returns the flat index of a uniformly chosen unvisited
// 4-neighbor of the current cell, or -1 when there is none. It draws from
// the grid's generator but never mutates cells.
func (g *Grid) randomNeighbor() int {
	cell := g.cells[g.current]

	deltas := [4][2]int{
		{-1, 0}, // above
		{1, 0},  // below
		{0, -1}, // to the left
		{0, 1},  // to the right
	}

	candidates := make([]int, 0, 4)
	for _, d := range deltas {
		if i, ok := g.index(cell.Row+d[0], cell.Col+d[1]); ok && !g.cells[i].Visited {
			candidates = append(candidates, i)
		}
	}

	if len(candidates) == 0 {
		return -1
	}
	return candidates[g.rnd.IntN(len(candidates))]
}

// removeWall clears the wall pair between two 4-adjacent cells. Exactly one
// of the row/col deltas must be ±1 and the other 0; any other input is a
// no-op.
func (g *Grid) removeWall(a, b int) {
	// Copy coordinates before mutating either cell.
	ar, ac := g.cells[a].Row, g.cells[a].Col
	br, bc := g.cells[b].Row, g.cells[b].Col

	dr, dc := ar-br, ac-bc
	if dr*dr+dc*dc != 1 {
		return
	}

	switch dc {
	case 1:
		g.cells[a].Left = false
		g.cells[b].Right = false
	case -1:
		g.cells[a].Right = false
		g.cells[b].Left = false
	}
	switch dr {
	case 1:
		g.cells[a].Top = false
		g.cells[b].Bottom = false
	case -1:
		g.cells[a].Bottom = false
		g.cells[b].Top = false
	}

	g.removed++
}

// Step advances the carve by exactly one unit. It marks the current cell
// visited, then either descends into a random unvisited neighbor (pushing
// the current cell onto the stack and carving the shared wall) or, at a
// dead end, backtracks one level. When the stack is empty and no neighbor
// remains the carve is complete; the grid stays put and Step becomes a
// no-op. Step never blocks and touches at most four neighbors per call.
func (g *Grid) Step() StepKind {
	g.cells[g.current].Visited = true

	g.next = g.randomNeighbor()
	if g.next >= 0 {
		g.stack = append(g.stack, g.current)
		g.removeWall(g.current, g.next)
		g.current = g.next
		g.steps++
		Log.WithFields(logrus.Fields{
			"current": g.current,
			"stack":   len(g.stack),
		}).Trace("carved")
		return StepCarved
	}

	if n := len(g.stack); n > 0 {
		g.current = g.stack[n-1]
		g.stack = g.stack[:n-1]
		g.steps++
		Log.WithFields(logrus.Fields{
			"current": g.current,
			"stack":   len(g.stack),
		}).Trace("backtracked")
		return StepBacktracked
	}

	if !g.done {
		g.done = true
		Log.WithFields(logrus.Fields{
			"steps":         g.steps,
			"walls_removed": g.removed,
		}).Debug("carve complete")
	}
	return StepDone
}

// Run steps until the carve completes and returns the number of steps
// taken. Convenience for drivers that do not animate.
func (g *Grid) Run() int {
	before := g.steps
	for g.Step() != StepDone {
	}
	return g.steps - before
}

package puzzle

/*

Sudoku puzzle solver

The solver is a plain depth-first backtracking search.  Each call
finds the first empty cell in the fixed row-major scan order,
tries the digits 1 through 9 in ascending order, and recurses on
each placement that respects the rules.  A placement whose
subtree comes up dry is retracted before the next digit is tried,
so when the search fails the grid is exactly as it was when the
search started.  The two fixed orders (cell scan and digit trial)
make the search deterministic: a puzzle with many completions
always yields the same one, on every run.

There is no cleverness here: no candidate bookkeeping, no unit
propagation, no heuristic for picking the branch cell.  The
search space of a 9x9 grid doesn't need them, and the recursion
depth is bounded by the number of empty cells, at most 81.

*/

// Solve: fill every empty cell of the grid so that each row,
// column, and tile holds each digit 1-9 exactly once.  Returns
// true if a solution was found, in which case the grid holds the
// solution.  Returns false if the puzzle cannot be completed, in
// which case the grid is unchanged: every tentative placement
// made during the failed search has been undone.  Unsolvability
// is a normal outcome, not an error.
//
// The grid is mutated in place during the search, so it must not
// be shared with another goroutine while Solve runs.  Solve
// assumes the filled cells it is given respect the placement
// rules (see Consistent); given digits are never altered.
func (g *Grid) Solve() bool {
	row, col, ok := g.FindNextEmpty()
	if !ok {
		// no empty cells: the grid is completely filled
		return true
	}
	for digit := 1; digit <= SideLength; digit++ {
		if !g.IsValidPlacement(row, col, digit) {
			continue
		}
		g.Set(row, col, digit)
		if g.Solve() {
			return true
		}
		g.Clear(row, col)
	}
	// every digit hit a dead end; backtrack
	return false
}

package puzzle

/*

Placement rules

*/

// IsValidPlacement: whether digit may be placed at (row, col)
// right now, which is to say no cell in the same row, the same
// column, or the same 3x3 tile currently holds digit.  The query
// has no side effects.  Out-of-range coordinates or digits are
// rejected here with an explicit bounds check rather than left
// to panic, since the answer to "can I place digit 12?" is
// simply no.
func (g *Grid) IsValidPlacement(row, col, digit int) bool {
	if !inBounds(row, col) || !validDigit(digit) {
		return false
	}
	for c := 0; c < SideLength; c++ {
		if g.cells[index(row, c)] == digit {
			return false
		}
	}
	for r := 0; r < SideLength; r++ {
		if g.cells[index(r, col)] == digit {
			return false
		}
	}
	tileRow, tileCol := row-row%TileLength, col-col%TileLength
	for r := tileRow; r < tileRow+TileLength; r++ {
		for c := tileCol; c < tileCol+TileLength; c++ {
			if g.cells[index(r, c)] == digit {
				return false
			}
		}
	}
	return true
}

/*

Whole-grid validation

*/

// Consistent: whether the filled cells of the grid respect the
// Sudoku rules, that is no row, column, or tile contains the
// same digit twice.  Empty cells are ignored, so a consistent
// grid is not necessarily solvable.  The solver assumes its
// input is consistent; loaders use this to establish that.
func (g *Grid) Consistent() bool {
	for i := 0; i < SideLength; i++ {
		if !g.consistentRow(i) || !g.consistentColumn(i) || !g.consistentTile(i) {
			return false
		}
	}
	return true
}

// Solved: whether the grid is completely filled and consistent,
// that is every row, column, and tile holds each digit 1-9
// exactly once.
func (g *Grid) Solved() bool {
	for _, v := range g.cells {
		if v == EmptyCell {
			return false
		}
	}
	return g.Consistent()
}

// FirstConflict: locate the first filled cell (in row-major
// order) whose digit repeats an earlier clue in its row, column,
// or tile.  Returns found == false on a consistent grid.  The
// check lifts each digit out, asks IsValidPlacement, and puts it
// back, so the grid is unchanged on return.
func (g *Grid) FirstConflict() (row, col, digit int, found bool) {
	for i, v := range g.cells {
		if v == EmptyCell {
			continue
		}
		r, c := i/SideLength, i%SideLength
		g.cells[i] = EmptyCell
		ok := g.IsValidPlacement(r, c, v)
		g.cells[i] = v
		if !ok {
			return r, c, v, true
		}
	}
	return 0, 0, 0, false
}

// consistentRow: no repeated digit in the given row.
func (g *Grid) consistentRow(row int) bool {
	var seen [SideLength + 1]bool
	for c := 0; c < SideLength; c++ {
		v := g.cells[index(row, c)]
		if v == EmptyCell {
			continue
		}
		if seen[v] {
			return false
		}
		seen[v] = true
	}
	return true
}

// consistentColumn: no repeated digit in the given column.
func (g *Grid) consistentColumn(col int) bool {
	var seen [SideLength + 1]bool
	for r := 0; r < SideLength; r++ {
		v := g.cells[index(r, col)]
		if v == EmptyCell {
			continue
		}
		if seen[v] {
			return false
		}
		seen[v] = true
	}
	return true
}

// consistentTile: no repeated digit in the given tile.  Tiles
// are numbered 0-8 in row-major order, same as cells.
func (g *Grid) consistentTile(tile int) bool {
	var seen [SideLength + 1]bool
	tileRow, tileCol := (tile/TileLength)*TileLength, (tile%TileLength)*TileLength
	for r := tileRow; r < tileRow+TileLength; r++ {
		for c := tileCol; c < tileCol+TileLength; c++ {
			v := g.cells[index(r, c)]
			if v == EmptyCell {
				continue
			}
			if seen[v] {
				return false
			}
			seen[v] = true
		}
	}
	return true
}

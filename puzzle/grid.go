package puzzle

/*

Grid geometry

*/

// Grid dimensions.  These are fixed: this solver handles the
// standard 9x9 Sudoku geometry with 3x3 tiles, nothing else.
const (
	SideLength = 9                       // cells per row, column, and tile
	TileLength = 3                       // rows and columns per tile
	CellCount  = SideLength * SideLength // cells per grid
	EmptyCell  = 0                       // sentinel for a cell with no digit
)

// A Grid holds the state of a 9x9 Sudoku board: each cell is
// either a digit 1-9 or EmptyCell.  The cells are stored in a
// flat array in row-major order, so the cell at (row, col) lives
// at index row*SideLength + col.  A zero Grid is a valid, fully
// empty puzzle.
//
// The Grid itself enforces nothing: Set and Clear mutate cells
// without validation, so that the solver can place and retract
// tentative digits cheaply.  Callers who need the placement
// rules ask IsValidPlacement first.
type Grid struct {
	cells [CellCount]int
}

// index: map a (row, col) coordinate pair to the flat cell index.
func index(row, col int) int {
	return row*SideLength + col
}

// inBounds: whether a coordinate pair names a cell on the board.
func inBounds(row, col int) bool {
	return row >= 0 && row < SideLength && col >= 0 && col < SideLength
}

// validDigit: whether a value is a placeable digit.
func validDigit(digit int) bool {
	return digit >= 1 && digit <= SideLength
}

/*

Construction

*/

// New creates a Grid from a row-major slice of cell values, where
// EmptyCell marks an empty cell.  The values must be either empty
// (giving a fully empty grid) or exactly CellCount long, and each
// value must be in [0, 9].  New does not check the values against
// the placement rules; use Consistent for that.
func New(values []int) (*Grid, error) {
	g := &Grid{}
	if len(values) == 0 {
		return g, nil
	}
	if len(values) != CellCount {
		return nil, Error{
			Scope:     GridScope,
			Structure: AttributeValueStructure,
			Attribute: GridSizeAttribute,
			Condition: WrongGridSizeCondition,
			Values:    ErrorData{len(values), CellCount},
		}
	}
	for i, v := range values {
		if v < EmptyCell {
			return nil, Error{
				Scope:     CellScope,
				Structure: AttributeValueStructure,
				Attribute: ValuesAttribute,
				Condition: TooSmallCondition,
				Values:    ErrorData{i, v, EmptyCell},
			}
		}
		if v > SideLength {
			return nil, Error{
				Scope:     CellScope,
				Structure: AttributeValueStructure,
				Attribute: ValuesAttribute,
				Condition: TooLargeCondition,
				Values:    ErrorData{i, v, SideLength},
			}
		}
		g.cells[i] = v
	}
	return g, nil
}

/*

Cell access

*/

// Value: the digit at (row, col), or EmptyCell if the cell is
// empty.  The coordinates must be on the board.
func (g *Grid) Value(row, col int) int {
	return g.cells[index(row, col)]
}

// Set: place a digit at (row, col).  No validation is performed;
// placement legality is the caller's business (via
// IsValidPlacement).  The coordinates must be on the board.
func (g *Grid) Set(row, col, digit int) {
	g.cells[index(row, col)] = digit
}

// Clear: empty the cell at (row, col).  Clearing an already
// empty cell is a no-op.  The coordinates must be on the board.
func (g *Grid) Clear(row, col int) {
	g.cells[index(row, col)] = EmptyCell
}

// FindNextEmpty: scan the grid in row-major order (row 0 to 8,
// and within each row column 0 to 8) and return the coordinates
// of the first empty cell.  Returns ok == false if the grid is
// full.  The fixed scan order is what makes the solver's search
// deterministic, so don't get creative here.
func (g *Grid) FindNextEmpty() (row, col int, ok bool) {
	for i, v := range g.cells {
		if v == EmptyCell {
			return i / SideLength, i % SideLength, true
		}
	}
	return 0, 0, false
}

/*

Whole-grid helpers

*/

// Values returns a copy of the grid's cells in row-major order.
func (g *Grid) Values() []int {
	values := make([]int, CellCount)
	copy(values, g.cells[:])
	return values
}

// Copy returns a Grid with the same cell contents.  The copy and
// the original do not share state.
func (g *Grid) Copy() *Grid {
	dup := *g
	return &dup
}

// Empties returns the number of empty cells in the grid.
func (g *Grid) Empties() (count int) {
	for _, v := range g.cells {
		if v == EmptyCell {
			count++
		}
	}
	return
}

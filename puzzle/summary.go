package puzzle

/*

Summaries

*/

// A Summary is the exchange form of a grid: what web clients
// post and receive, and what the storage layer persists.  Values
// holds the 81 cell values in row-major order with EmptyCell for
// empty cells.  Signature and Name are optional on input; the
// signature is derived from the values, and unnamed puzzles are
// fine.  SideLength may be omitted (zero) or 9; other side
// lengths are rejected, since this solver handles only the
// standard geometry.
type Summary struct {
	Signature  string `json:"signature,omitempty"`
	Name       string `json:"name,omitempty"`
	SideLength int    `json:"sideLength,omitempty"`
	Values     []int  `json:"values"`
}

// NewSummary: make the Summary of a grid, with the signature
// filled in from the grid's content.
func NewSummary(name string, g *Grid) *Summary {
	return &Summary{
		Signature:  g.Signature(),
		Name:       name,
		SideLength: SideLength,
		Values:     g.Values(),
	}
}

// Grid builds the grid a Summary describes.  Unlike New, this
// checks the clues against the placement rules, so a grid built
// from a Summary is always consistent and safe to hand to the
// solver.
func (s *Summary) Grid() (*Grid, error) {
	if s == nil || len(s.Values) == 0 {
		return nil, Error{
			Scope:     ArgumentScope,
			Structure: AttributeStructure,
			Attribute: ValuesAttribute,
			Condition: InvalidArgumentCondition,
		}
	}
	if s.SideLength != 0 && s.SideLength != SideLength {
		return nil, Error{
			Scope:     ArgumentScope,
			Structure: AttributeValueStructure,
			Attribute: GridSizeAttribute,
			Condition: GeneralCondition,
			Values:    ErrorData{s.SideLength, "Only 9x9 grids are supported"},
		}
	}
	g, err := New(s.Values)
	if err != nil {
		return nil, err
	}
	if row, col, digit, found := g.FirstConflict(); found {
		return nil, Error{
			Scope:     GridScope,
			Structure: AttributeStructure,
			Attribute: ValuesAttribute,
			Condition: ConflictingClueCondition,
			Values:    ErrorData{digit, row + 1, col + 1},
		}
	}
	return g, nil
}

// kaidoku.go - a command-line Sudoku solver and puzzle library.
// Copyright (C) 2016-2017 Daniel C. Brotsky.
//
// This program is free software; you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation; either version 2 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License along
// with this program; if not, write to the Free Software Foundation, Inc.,
// 51 Franklin Street, Fifth Floor, Boston, MA 02110-1301 USA.
// Licensed under the LGPL v3.  See the LICENSE file for details

package puzzle

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

/*

Puzzle text parsing

*/

// Parse builds a Grid from puzzle text.  The text holds at most
// 9 lines of at most 9 grid characters each; a grid character is
// a digit '1'-'9' for a clue, or '.', '0', or '_' for an empty
// cell.  Lines are whitespace-trimmed before reading, so CRLF
// endings and indentation are tolerated.  Missing characters at
// the end of a line, and missing lines at the end of the text,
// are treated as empty cells.  A typical puzzle looks like:
//
//	53__7____
//	6__195___
//	_98____6_
//	8___6___3
//	4__8_3__1
//	7___2___6
//	_6____28_
//	___419__5
//	____8__79
//
// Parse returns an Error for text with more than 9 lines, a line
// with more than 9 grid characters, a character that is neither
// a digit nor an empty-cell mark, or a clue that repeats a digit
// already present in its row, column, or tile.  Rejecting
// conflicting clues here means the solver is only ever handed a
// consistent grid.
func Parse(text string) (*Grid, error) {
	g := &Grid{}
	scanner := bufio.NewScanner(strings.NewReader(text))
	for row := 0; scanner.Scan(); row++ {
		if row >= SideLength {
			return nil, Error{
				Scope:     GridScope,
				Structure: AttributeStructure,
				Attribute: GridSizeAttribute,
				Condition: TooManyRowsCondition,
				Values:    ErrorData{SideLength},
			}
		}
		col := 0
		for _, c := range strings.TrimSpace(scanner.Text()) {
			if col >= SideLength {
				return nil, Error{
					Scope:     GridScope,
					Structure: AttributeStructure,
					Attribute: GridSizeAttribute,
					Condition: RowTooLongCondition,
					Values:    ErrorData{row + 1, SideLength},
				}
			}
			switch {
			case c == '.' || c == '0' || c == '_':
				// empty cell
			case c >= '1' && c <= '9':
				digit := int(c - '0')
				if !g.IsValidPlacement(row, col, digit) {
					return nil, Error{
						Scope:     GridScope,
						Structure: AttributeStructure,
						Attribute: ValuesAttribute,
						Condition: ConflictingClueCondition,
						Values:    ErrorData{digit, row + 1, col + 1},
					}
				}
				g.Set(row, col, digit)
			default:
				return nil, Error{
					Scope:     GridScope,
					Structure: AttributeStructure,
					Attribute: ValuesAttribute,
					Condition: InvalidCharacterCondition,
					Values:    ErrorData{string(c)},
				}
			}
			col++
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("Failed to scan puzzle text: %v", err)
	}
	return g, nil
}

// Load reads the file at the given path and parses its content
// into a Grid.
func Load(path string) (*Grid, error) {
	text, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("Failed to read file %q: %v", path, err)
	}
	return Parse(string(text))
}

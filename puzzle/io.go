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
	"crypto/sha256"
	"encoding/hex"
	"strconv"

	"github.com/samber/lo"
)

/*

Print forms of grids

*/

const gridSeparator = "+-------+-------+-------+\n"

// mark: the print form of a single cell value.
func mark(v int) string {
	if v == EmptyCell {
		return "_"
	}
	return strconv.Itoa(v)
}

// String gives the console form of a grid: nine rows of digits
// with '_' for empty cells, fenced into 3x3 tiles, like
//
//	+-------+-------+-------+
//	| 5 3 _ | _ 7 _ | _ _ _ |
//	| 6 _ _ | 1 9 5 | _ _ _ |
//	| _ 9 8 | _ _ _ | _ 6 _ |
//	+-------+-------+-------+
//	| ...
//
// The result ends with a newline after the bottom fence.
func (g *Grid) String() (result string) {
	if g == nil {
		return
	}
	for ri, row := range lo.Chunk(g.cells[:], SideLength) {
		if ri%TileLength == 0 {
			result += gridSeparator
		}
		for ci, v := range row {
			if ci%TileLength == 0 {
				result += "|"
			}
			result += " " + mark(v)
			if ci == SideLength-1 {
				result += " |\n"
			} else if ci%TileLength == TileLength-1 {
				result += " "
			}
		}
	}
	result += gridSeparator
	return
}

// Compact gives the canonical one-line form of a grid: the 81
// cell values in row-major order, digits for clues and '.' for
// empty cells.  This is the form the storage layer keys on, so
// two grids with the same cells always have the same Compact
// form.
func (g *Grid) Compact() string {
	var form [CellCount]byte
	for i, v := range g.cells {
		if v == EmptyCell {
			form[i] = '.'
		} else {
			form[i] = byte('0' + v)
		}
	}
	return string(form[:])
}

/*

Signatures

*/

// signatureLength is the number of hex digits kept from the
// content hash.  64 bits is plenty for a library of puzzles.
const signatureLength = 16

// Signature gives the content signature of a grid: the leading
// hex digits of the SHA-256 hash of its Compact form.  Grids
// with the same cell contents have the same signature, so the
// signature serves as the stored puzzle's identity.
func (g *Grid) Signature() string {
	sum := sha256.Sum256([]byte(g.Compact()))
	return hex.EncodeToString(sum[:])[:signatureLength]
}

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

package dbprep

import (
	"strings"
	"testing"

	"github.com/ancientHacker/kaidoku.go/puzzle"
)

// make sure string case invariants are met
func TestSampleData(t *testing.T) {
	for i, signature := range sampleSignatures {
		if signature != strings.ToLower(signature) {
			t.Errorf("Signature %d (%s) contains a non-lowercase letter.", i, signature)
		}
		if len(signature) == 0 {
			t.Errorf("Signature %d is empty.", i)
		}
	}
	for i, name := range sampleNames {
		if name != strings.ToLower(name) {
			t.Errorf("Name %d (%s) contains a non-lowercase letter.", i, name)
		}
	}
}

// make sure the samples are well-formed, solvable puzzles with
// distinct signatures
func TestSamplePuzzles(t *testing.T) {
	seen := make(map[string]int)
	for i, sum := range samplePuzzles {
		if count := len(sum.Values); count != puzzle.CellCount {
			t.Errorf("Sample %d has %d values.", i, count)
		}
		g, err := sum.Grid()
		if err != nil {
			t.Errorf("Sample %d doesn't make a grid: %v", i, err)
			continue
		}
		if !g.Solve() {
			t.Errorf("Sample %d has no solution.", i)
		}
		if j, ok := seen[sampleSignatures[i]]; ok {
			t.Errorf("Samples %d and %d have the same signature.", j, i)
		}
		seen[sampleSignatures[i]] = i
	}
}

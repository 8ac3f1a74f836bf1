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
	"strings"
	"testing"
)

/*

Stringer

*/

func TestGridString(t *testing.T) {
	// check the null case
	s := (*Grid)(nil).String()
	e := ""
	if s != e {
		t.Errorf("Unexpected nil grid string: %q, Expected: %q", s, e)
	}
	// a partially filled grid covers digits and empty marks
	g, err := New(wikiValues)
	if err != nil {
		t.Fatalf("Grid creation failed: %v", err)
	}
	s = g.String()
	e = "+-------+-------+-------+\n" +
		"| 5 3 _ | _ 7 _ | _ _ _ |\n" +
		"| 6 _ _ | 1 9 5 | _ _ _ |\n" +
		"| _ 9 8 | _ _ _ | _ 6 _ |\n" +
		"+-------+-------+-------+\n" +
		"| 8 _ _ | _ 6 _ | _ _ 3 |\n" +
		"| 4 _ _ | 8 _ 3 | _ _ 1 |\n" +
		"| 7 _ _ | _ 2 _ | _ _ 6 |\n" +
		"+-------+-------+-------+\n" +
		"| _ 6 _ | _ _ _ | 2 8 _ |\n" +
		"| _ _ _ | 4 1 9 | _ _ 5 |\n" +
		"| _ _ _ | _ 8 _ | _ 7 9 |\n" +
		"+-------+-------+-------+\n"
	if s != e {
		t.Errorf("Unexpected grid string:\n%vExpected:\n%v", s, e)
	}
	// a complete grid covers the all-digits layout
	g, err = New(wikiSolution)
	if err != nil {
		t.Fatalf("Grid creation failed: %v", err)
	}
	s = g.String()
	e = "+-------+-------+-------+\n" +
		"| 5 3 4 | 6 7 8 | 9 1 2 |\n" +
		"| 6 7 2 | 1 9 5 | 3 4 8 |\n" +
		"| 1 9 8 | 3 4 2 | 5 6 7 |\n" +
		"+-------+-------+-------+\n" +
		"| 8 5 9 | 7 6 1 | 4 2 3 |\n" +
		"| 4 2 6 | 8 5 3 | 7 9 1 |\n" +
		"| 7 1 3 | 9 2 4 | 8 5 6 |\n" +
		"+-------+-------+-------+\n" +
		"| 9 6 1 | 5 3 7 | 2 8 4 |\n" +
		"| 2 8 7 | 4 1 9 | 6 3 5 |\n" +
		"| 3 4 5 | 2 8 6 | 1 7 9 |\n" +
		"+-------+-------+-------+\n"
	if s != e {
		t.Errorf("Unexpected grid string:\n%vExpected:\n%v", s, e)
	}
}

/*

Compact form

*/

func TestCompact(t *testing.T) {
	g, err := New(wikiValues)
	if err != nil {
		t.Fatalf("Grid creation failed: %v", err)
	}
	s := g.Compact()
	e := "53..7...." +
		"6..195..." +
		".98....6." +
		"8...6...3" +
		"4..8.3..1" +
		"7...2...6" +
		".6....28." +
		"...419..5" +
		"....8..79"
	if s != e {
		t.Errorf("Unexpected compact form: %q, Expected: %q", s, e)
	}
	if len(s) != CellCount {
		t.Errorf("Compact form has %d characters, expected %d", len(s), CellCount)
	}
}

/*

Signatures

*/

func TestSignature(t *testing.T) {
	g1, err := New(wikiValues)
	if err != nil {
		t.Fatalf("Grid creation failed: %v", err)
	}
	g2, err := Parse(wikiText)
	if err != nil {
		t.Fatalf("Puzzle text parse failed: %v", err)
	}
	s1, s2 := g1.Signature(), g2.Signature()
	if s1 != s2 {
		t.Errorf("Grids with the same content have signatures %q and %q", s1, s2)
	}
	if s1 != g1.Signature() {
		t.Errorf("Signature of an unchanged grid varies between calls")
	}
	if len(s1) != signatureLength {
		t.Errorf("Signature %q has length %d, expected %d", s1, len(s1), signatureLength)
	}
	if strings.Trim(s1, "0123456789abcdef") != "" {
		t.Errorf("Signature %q is not lowercase hex", s1)
	}
	empty := &Grid{}
	if es := empty.Signature(); es == s1 {
		t.Errorf("Grids with different content share signature %q", es)
	}
	g1.Set(0, 2, 4)
	if ns := g1.Signature(); ns == s1 {
		t.Errorf("Signature unchanged by cell mutation: %q", ns)
	}
}

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

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ancientHacker/kaidoku.go/puzzle"
)

var puzzleText = `53..7....
6..195...
.98....6.
8...6...3
4..8.3..1
7...2...6
.6....28.
...419..5
....8..79
`

// executeCommand: run the solver command with the given
// arguments, capturing its combined output.
func executeCommand(args ...string) (string, error) {
	cmd := newRootCmd()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

// writePuzzleFile: put puzzle text in a scratch file.
func writePuzzleFile(t *testing.T, text string) string {
	path := filepath.Join(t.TempDir(), "puzzle.sudoku")
	if err := os.WriteFile(path, []byte(text), 0644); err != nil {
		t.Fatalf("Failed to write puzzle file: %v", err)
	}
	return path
}

func TestSolveCommand(t *testing.T) {
	// build the expected transcript from the parsed puzzle
	g, err := puzzle.Parse(puzzleText)
	if err != nil {
		t.Fatalf("Failed to parse puzzle: %v", err)
	}
	input := g.String()
	if !g.Solve() {
		t.Fatalf("Failed to solve puzzle")
	}
	expected := "Input:\n" + input + "Solution:\n" + g.String()

	out, err := executeCommand(writePuzzleFile(t, puzzleText))
	if err != nil {
		t.Fatalf("Command failed: %v", err)
	}
	if out != expected {
		t.Errorf("Got output:\n%s\nExpected:\n%s", out, expected)
	}
}

func TestSolveCommandUnsolvable(t *testing.T) {
	// consistent clues that starve the top-left cell of digits
	out, err := executeCommand(writePuzzleFile(t, "_12345678\n9\n"))
	if err == nil {
		t.Fatalf("No error solving unsolvable puzzle; output:\n%s", out)
	}
	pe, ok := err.(puzzle.Error)
	if !ok {
		t.Fatalf("Error has wrong type: %v", err)
	}
	if pe.Condition != puzzle.UnsolvableCondition {
		t.Errorf("Got condition %v, expected %v", pe.Condition, puzzle.UnsolvableCondition)
	}
	if !strings.Contains(out, "Input:") {
		t.Errorf("Output doesn't echo the puzzle:\n%s", out)
	}
	if !strings.Contains(out, "No solution found") {
		t.Errorf("Output doesn't report the failure:\n%s", out)
	}
	if strings.Contains(out, "Solution:") {
		t.Errorf("Unsolvable puzzle printed a solution:\n%s", out)
	}
}

func TestSolveCommandMalformed(t *testing.T) {
	out, err := executeCommand(writePuzzleFile(t, "53x\n"))
	if err == nil {
		t.Fatalf("No error solving malformed puzzle; output:\n%s", out)
	}
	pe, ok := err.(puzzle.Error)
	if !ok {
		t.Fatalf("Error has wrong type: %v", err)
	}
	if pe.Condition != puzzle.InvalidCharacterCondition {
		t.Errorf("Got condition %v, expected %v", pe.Condition, puzzle.InvalidCharacterCondition)
	}
}

func TestSolveCommandMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "no-such-puzzle.sudoku")
	out, err := executeCommand(path)
	if err == nil {
		t.Fatalf("No error for missing file; output:\n%s", out)
	}
	if !strings.Contains(err.Error(), "Failed to read file") {
		t.Errorf("Got unexpected error: %v", err)
	}
}

func TestSolveCommandNoArguments(t *testing.T) {
	if out, err := executeCommand(); err == nil {
		t.Fatalf("No error for missing argument; output:\n%s", out)
	}
}

func TestProfileFlag(t *testing.T) {
	flag := newRootCmd().Flags().Lookup("profile")
	if flag == nil {
		t.Fatalf("No profile flag")
	}
	if flag.DefValue != "false" {
		t.Errorf("Profile flag defaults to %s", flag.DefValue)
	}
}

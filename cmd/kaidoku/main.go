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

// Command-line solver for kaidoku.go puzzles
package main

import (
	"fmt"
	"os"

	"github.com/pkg/profile"
	"github.com/spf13/cobra"

	"github.com/ancientHacker/kaidoku.go/puzzle"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// newRootCmd: build the solver command.  Kept separate from main
// so tests can run commands against captured output.
func newRootCmd() *cobra.Command {
	var profileRun bool
	cmd := &cobra.Command{
		Use:   "kaidoku PUZZLEFILE",
		Short: "Solve a Sudoku puzzle",
		Long: `kaidoku reads a 9x9 Sudoku puzzle from a text file and prints
its solution.

Puzzle files have one line per row.  The digits 1-9 are clues;
'.', '0', and '_' mark empty cells; rows missing from the end of
the file, and cells missing from the end of a row, are empty as
well.`,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if profileRun {
				defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
			}
			return solveFile(cmd, args[0])
		},
	}
	cmd.Flags().BoolVar(&profileRun, "profile", false,
		"write a CPU profile of the solve to the current directory")
	return cmd
}

// solveFile: load, solve, and print the puzzle at path.  An
// unsolvable puzzle is reported on output and returned as an
// error so the process exits with a failure status.
func solveFile(cmd *cobra.Command, path string) error {
	g, err := puzzle.Load(path)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Input:\n%s", g)
	if !g.Solve() {
		fmt.Fprintln(out, "No solution found")
		return puzzle.Error{
			Scope:     puzzle.GridScope,
			Structure: puzzle.ScopeStructure,
			Condition: puzzle.UnsolvableCondition,
		}
	}
	fmt.Fprintf(out, "Solution:\n%s", g)
	return nil
}

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

package storage

import (
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/garyburd/redigo/redis"
	"github.com/jackc/pgx"
	"github.com/samber/lo"

	"github.com/ancientHacker/kaidoku.go/puzzle"
)

/*

library entries

*/

// An Entry represents the stored form of a library puzzle.  It
// is JSON serializable so it can go into the cache as well as
// the database.  Values are kept as 4-byte ints to match the
// database column type.
type Entry struct {
	Signature  string    `json:"signature"`
	Name       string    `json:"name,omitempty"`
	SideLength int32     `json:"sideLength"`
	Values     []int32   `json:"values"`
	Created    time.Time `json:"created"`
}

// NewEntry: make the library entry for a puzzle summary.  The
// summary must describe a well-formed, consistent puzzle.
func NewEntry(summary *puzzle.Summary) (*Entry, error) {
	g, err := summary.Grid()
	if err != nil {
		return nil, err
	}
	return &Entry{
		Signature:  g.Signature(),
		Name:       summary.Name,
		SideLength: puzzle.SideLength,
		Values:     lo.Map(g.Values(), func(v int, _ int) int32 { return int32(v) }),
		Created:    time.Now(),
	}, nil
}

// Summary: the exchange form of a library entry.
func (e *Entry) Summary() *puzzle.Summary {
	return &puzzle.Summary{
		Signature:  e.Signature,
		Name:       e.Name,
		SideLength: int(e.SideLength),
		Values:     lo.Map(e.Values, func(v int32, _ int) int { return int(v) }),
	}
}

// key: compute the cache key for an Entry.
func (e *Entry) key() string {
	return "PZL:" + e.Signature
}

// sorting of entry sequences by puzzle name
type ByName []*Entry

func (es ByName) Len() int           { return len(es) }
func (es ByName) Swap(i, j int)      { es[i], es[j] = es[j], es[i] }
func (es ByName) Less(i, j int) bool { return es[i].Name < es[j].Name }

/*

lookup and insertion

*/

// LookupEntry first checks the cache, then the database, to find
// the library entry with the given signature.  If it loads from
// the database, it caches the result.  Returns whether the entry
// was found; infrastructure failures panic back to package entry
// level.
func LookupEntry(signature string) (*Entry, bool) {
	e := &Entry{Signature: signature}
	if e.cacheLoad() {
		return e, true
	}
	// cache miss, try the database and cache any hit
	if !e.databaseLoad() {
		return nil, false
	}
	e.cacheInsert()
	return e, true
}

// InsertEntry stores the library entry for a puzzle summary in
// both the database and the cache, and notes it as recently
// used.  Inserting a puzzle that is already in the library is
// not an error: the stored entry wins, so a puzzle keeps the
// name it was first stored under.
func InsertEntry(summary *puzzle.Summary) (*Entry, error) {
	e, err := NewEntry(summary)
	if err != nil {
		return nil, err
	}
	if stored, ok := LookupEntry(e.Signature); ok {
		stored.noteRecent()
		return stored, nil
	}
	e.databaseInsert()
	e.cacheInsert()
	e.noteRecent()
	return e, nil
}

// ListEntries returns all the library's entries, sorted by name.
func ListEntries() []*Entry {
	var entries []*Entry
	body := func(tx *pgx.Tx) error {
		rows, err := tx.Query(
			"SELECT puzzleId, name, sideLength, valueList, created FROM puzzles")
		if err != nil {
			return fmt.Errorf("Database error listing puzzles: %v", err)
		}
		defer rows.Close()
		for rows.Next() {
			e := &Entry{}
			err := rows.Scan(&e.Signature, &e.Name, &e.SideLength, &e.Values, &e.Created)
			if err != nil {
				return fmt.Errorf("Database error reading puzzle row: %v", err)
			}
			entries = append(entries, e)
		}
		return rows.Err()
	}
	pgExecute(body)
	sort.Sort(ByName(entries))
	return entries
}

// cacheLoad: load an already cached entry.  Returns whether the
// entry was found in the cache.
func (e *Entry) cacheLoad() bool {
	var bytes []byte
	body := func(tx redis.Conn) (err error) {
		bytes, err = redis.Bytes(tx.Do("GET", e.key()))
		if err == redis.ErrNil {
			return nil
		}
		if err != nil {
			err = fmt.Errorf("Cache failure loading entry %q: %v", e.Signature, err)
		}
		return
	}
	rdExecute(body)
	if len(bytes) == 0 {
		return false
	}
	var se *Entry
	if err := json.Unmarshal(bytes, &se); err != nil {
		panic(fmt.Errorf("Failed to unmarshal entry %q: %v", e.Signature, err))
	}
	if se.Signature != e.Signature {
		panic(fmt.Errorf("Cached entry (signature %q) found for puzzle %q!",
			se.Signature, e.Signature))
	}
	*e = *se
	return true
}

// databaseLoad: load an entry from the database.  Returns
// whether the database has an entry with this signature.
func (e *Entry) databaseLoad() (found bool) {
	body := func(tx *pgx.Tx) error {
		row := tx.QueryRow(
			"SELECT name, sideLength, valueList, created FROM puzzles "+
				"WHERE puzzleId = $1", e.Signature)
		err := row.Scan(&e.Name, &e.SideLength, &e.Values, &e.Created)
		if err == pgx.ErrNoRows {
			return nil
		}
		if err != nil {
			return fmt.Errorf("Failure looking up puzzle %q: %v", e.Signature, err)
		}
		found = true
		return nil
	}
	pgExecute(body)
	return
}

// cacheInsert: insert an entry into the cache.  Replaces any
// existing entry with the same signature.
func (e *Entry) cacheInsert() {
	bytes, err := json.Marshal(e)
	if err != nil {
		panic(fmt.Errorf("Failed to marshal entry %q: %v", e.Signature, err))
	}
	body := func(tx redis.Conn) (err error) {
		_, err = tx.Do("SET", e.key(), bytes)
		if err != nil {
			err = fmt.Errorf("Cache failure saving entry %q: %v", e.Signature, err)
		}
		return
	}
	rdExecute(body)
}

// databaseInsert: insert a new entry into the database.  Panics
// if there is already a saved entry with the same signature.
func (e *Entry) databaseInsert() {
	body := func(tx *pgx.Tx) (err error) {
		_, err = tx.Exec(
			"INSERT INTO puzzles (puzzleId, name, sideLength, valueList, created) "+
				"VALUES ($1, $2, $3, $4, $5)",
			e.Signature, e.Name, e.SideLength, e.Values, e.Created)
		if err != nil {
			err = fmt.Errorf("Database error saving entry %q: %v", e.Signature, err)
		}
		return
	}
	pgExecute(body)
}

/*

solutions

*/

// solutionKey: compute the cache key for a stored solution.
func solutionKey(signature string) string {
	return "SOL:" + signature
}

// LookupSolution first checks the cache, then the database, for
// the stored solution of the puzzle with the given signature.
// If it loads from the database, it caches the result.  Returns
// whether a solution was found.
func LookupSolution(signature string) (*puzzle.Summary, bool) {
	var bytes []byte
	body := func(tx redis.Conn) (err error) {
		bytes, err = redis.Bytes(tx.Do("GET", solutionKey(signature)))
		if err == redis.ErrNil {
			return nil
		}
		if err != nil {
			err = fmt.Errorf("Cache failure loading solution %q: %v", signature, err)
		}
		return
	}
	rdExecute(body)
	if len(bytes) > 0 {
		var solved *puzzle.Summary
		if err := json.Unmarshal(bytes, &solved); err != nil {
			panic(fmt.Errorf("Failed to unmarshal solution %q: %v", signature, err))
		}
		return solved, true
	}
	// cache miss, try the database
	var values []int32
	found := false
	dbBody := func(tx *pgx.Tx) error {
		row := tx.QueryRow(
			"SELECT valueList FROM solutions WHERE puzzleId = $1", signature)
		err := row.Scan(&values)
		if err == pgx.ErrNoRows {
			return nil
		}
		if err != nil {
			return fmt.Errorf("Failure looking up solution %q: %v", signature, err)
		}
		found = true
		return nil
	}
	pgExecute(dbBody)
	if !found {
		return nil, false
	}
	solved := &puzzle.Summary{
		Signature:  signature,
		SideLength: puzzle.SideLength,
		Values:     lo.Map(values, func(v int32, _ int) int { return int(v) }),
	}
	cacheSolution(signature, solved)
	return solved, true
}

// InsertSolution stores the solved form of the puzzle with the
// given signature, in both the database and the cache.  Storing
// a solution that is already stored is a no-op.
func InsertSolution(signature string, solved *puzzle.Summary) {
	body := func(tx *pgx.Tx) error {
		var count int64
		row := tx.QueryRow(
			"SELECT COUNT(*) FROM solutions WHERE puzzleId = $1", signature)
		if err := row.Scan(&count); err != nil {
			return fmt.Errorf("Database error looking for solution %q: %v", signature, err)
		}
		if count > 0 {
			return nil
		}
		values := lo.Map(solved.Values, func(v int, _ int) int32 { return int32(v) })
		_, err := tx.Exec(
			"INSERT INTO solutions (puzzleId, valueList, created) VALUES ($1, $2, $3)",
			signature, values, time.Now())
		if err != nil {
			return fmt.Errorf("Database error saving solution %q: %v", signature, err)
		}
		return nil
	}
	pgExecute(body)
	cacheSolution(signature, solved)
}

// cacheSolution: insert a solution into the cache.
func cacheSolution(signature string, solved *puzzle.Summary) {
	bytes, err := json.Marshal(solved)
	if err != nil {
		panic(fmt.Errorf("Failed to marshal solution %q: %v", signature, err))
	}
	body := func(tx redis.Conn) (err error) {
		_, err = tx.Do("SET", solutionKey(signature), bytes)
		if err != nil {
			err = fmt.Errorf("Cache failure saving solution %q: %v", signature, err)
		}
		return
	}
	rdExecute(body)
}

/*

recency of use

*/

const (
	recentKey    = "RECENT"
	recentLength = 10
)

// noteRecent: move this entry to the head of the recently-used
// list, trimming the list to its maximum length.  The list is
// kept oldest first, so the head is the tail.
func (e *Entry) noteRecent() {
	body := func(tx redis.Conn) (err error) {
		if _, err = tx.Do("LREM", recentKey, 0, e.Signature); err == nil {
			if _, err = tx.Do("RPUSH", recentKey, e.Signature); err == nil {
				_, err = tx.Do("LTRIM", recentKey, -recentLength, -1)
			}
		}
		if err != nil {
			err = fmt.Errorf("Cache failure noting recent use of %q: %v", e.Signature, err)
		}
		return
	}
	rdExecute(body)
}

// RecentSignatures: the signatures of the most recently used
// library entries, newest first.
func RecentSignatures() []string {
	var sigs []string
	body := func(tx redis.Conn) (err error) {
		sigs, err = redis.Strings(tx.Do("LRANGE", recentKey, 0, -1))
		if err != nil {
			err = fmt.Errorf("Cache failure reading recent list: %v", err)
		}
		return
	}
	rdExecute(body)
	for i, j := 0, len(sigs)-1; i < j; i, j = i+1, j-1 {
		sigs[i], sigs[j] = sigs[j], sigs[i]
	}
	return sigs
}

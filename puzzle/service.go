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
	"encoding/json"
	"fmt"
	"net/http"
)

/*

Solve requests

*/

// SolveHandler is a POST handler that reads a JSON-encoded
// Summary from the request body, solves the puzzle it describes,
// and sends the solved Summary as a 200 response.  The solved
// Summary keeps the posted name and carries the signature of the
// posted puzzle (not of the solution), so clients can correlate
// answers with their requests.  The solved Summary is also
// returned to the golang caller.
//
// A body that can't be decoded, a malformed or conflicting grid,
// and an unsolvable puzzle all produce a 400 response carrying
// the JSON form of the Error, which is returned to the caller as
// well.
func SolveHandler(w http.ResponseWriter, r *http.Request) (*Summary, error) {
	summary, e := ReadSummary(w, r)
	if e != nil {
		return nil, e
	}
	g, e := SummaryGrid(summary, w, r)
	if e != nil {
		return nil, e
	}
	signature := g.Signature()
	if !g.Solve() {
		return nil, WriteUnsolvable(w, r)
	}
	solved := NewSummary(summary.Name, g)
	solved.Signature = signature
	return solved, writeJSON(solved, http.StatusOK, w, r)
}

// ReadSummary decodes the JSON-encoded Summary posted in a
// request body.  If the body can't be decoded, the client gets a
// 400 response and the error is returned to the caller.
func ReadSummary(w http.ResponseWriter, r *http.Request) (*Summary, error) {
	dec := json.NewDecoder(r.Body)
	var summary Summary
	if e := dec.Decode(&summary); e != nil {
		return nil, writeError(requestDecodingError, ErrorData{e.Error()}, w, r)
	}
	return &summary, nil
}

// SummaryGrid builds the grid a posted Summary describes.  If
// the Summary is malformed (wrong size, bad values, conflicting
// clues), the client gets a 400 response carrying the Error and
// the error is returned to the caller.
func SummaryGrid(summary *Summary, w http.ResponseWriter, r *http.Request) (*Grid, error) {
	g, e := summary.Grid()
	if e != nil {
		err, ok := e.(Error)
		if !ok {
			return nil, writeError(errorFormatError, ErrorData{"SummaryGrid", e.Error()}, w, r)
		}
		err.Message = err.Error()
		return nil, writeJSON(err, http.StatusBadRequest, w, r)
	}
	return g, nil
}

// WriteSolved sends a solved Summary as a 200 response.
func WriteSolved(solved *Summary, w http.ResponseWriter, r *http.Request) error {
	return writeJSON(solved, http.StatusOK, w, r)
}

// WriteUnsolvable reports an unsolvable puzzle to the client as
// a 400 response carrying the Error, and returns that Error to
// the caller.  Unsolvability is the solver's normal "no" answer,
// but for a solve request it is still a failed request.
func WriteUnsolvable(w http.ResponseWriter, r *http.Request) error {
	err := Error{
		Scope:     GridScope,
		Structure: ScopeStructure,
		Condition: UnsolvableCondition,
	}
	err.Message = err.Error()
	return writeJSON(err, http.StatusBadRequest, w, r)
}

/*

Utilities

*/

type handlerError int

const (
	requestDecodingError handlerError = iota
	responseEncodingError
	notFoundError
	errorFormatError
)

// writeError sends back a server error of the given type, sort
// of like http.Error, but it sends the JSON form of an
// appropriate Error.
func writeError(et handlerError, ed ErrorData,
	w http.ResponseWriter, r *http.Request) error {
	var err Error
	var status int
	switch et {
	case requestDecodingError:
		status = http.StatusBadRequest
		err = Error{
			Scope:     RequestScope,
			Structure: AttributeStructure,
			Attribute: DecodeAttribute,
			Condition: GeneralCondition,
			Values:    ed,
		}
	case responseEncodingError:
		status = http.StatusInternalServerError
		err = Error{
			Scope:     InternalScope,
			Structure: AttributeStructure,
			Attribute: EncodeAttribute,
			Condition: GeneralCondition,
			Values:    ed,
		}
	case notFoundError:
		status = http.StatusNotFound
		err = Error{
			Scope:     RequestScope,
			Structure: AttributeValueStructure,
			Attribute: URLAttribute,
			Condition: GeneralCondition,
			Values:    ed,
		}
	case errorFormatError:
		status = http.StatusInternalServerError
		err = Error{
			Scope:     InternalScope,
			Structure: AttributeStructure,
			Attribute: LocationAttribute,
			Condition: GeneralCondition,
			Values:    ed,
		}
	default:
		status = http.StatusInternalServerError
		err = Error{
			Scope:     InternalScope,
			Structure: AttributeStructure,
			Attribute: LocationAttribute,
			Condition: GeneralCondition,
			Values: ErrorData{
				"writeError",
				fmt.Sprintf("Unknown handler error type (%v)", et),
			},
		}
	}
	err.Message = err.Error()
	return writeJSON(err, status, w, r)
}

// WriteNotFound reports a request for a puzzle that isn't in the
// library as a 404 response carrying an appropriate Error.
func WriteNotFound(w http.ResponseWriter, r *http.Request) error {
	return writeError(notFoundError, ErrorData{r.URL.Path, "No such puzzle"}, w, r)
}

// writeJSON is called by handlers to encode and send the client
// response.  It returns an appropriate error status for the
// handler to return to its caller, as follows:
//
// 1. If writeJSON encounters an encoding error sending the
// response, it will create an Error object describing the
// failure, encode that Error as a 500-series response to the
// client, and return that Error to the handler.
//
// 2. If no encoding error occurs, but the handler is sending an
// Error object as the response to the client, writeJSON will
// return that same Error to the handler.
//
// 3. If no encoding error occurs, and the handler is sending a
// non-Error object as the response to the client, writeJSON will
// return nil to the handler.
func writeJSON(obj interface{}, status int, w http.ResponseWriter, r *http.Request) error {
	err, isErr := obj.(Error)
	bytes, e := json.Marshal(obj)
	if e != nil {
		if isErr && err.Scope == InternalScope && err.Attribute == EncodeAttribute {
			// We just failed to encode an Encoding error.  This
			// should never happen!!  If it did, it almost
			// certainly means that the JSON encoding system is
			// dead, so pseudo-encode the error by hand by
			// returning the Error's summary as a quoted string.
			status = http.StatusInternalServerError // probably was already!
			bytes = []byte(fmt.Sprintf("%q", err.Error()))
		} else {
			// generate, send, and return an encoding error
			return writeError(responseEncodingError, ErrorData{e.Error()}, w, r)
		}
	}
	hs := w.Header()
	hs.Add("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(bytes)
	if isErr {
		return err
	}
	return nil
}

// WriteJSON exposes writeJSON for the server binaries, which
// compose their storage-backed handlers out of the same response
// discipline the package handlers use.
func WriteJSON(obj interface{}, status int, w http.ResponseWriter, r *http.Request) error {
	return writeJSON(obj, status, w, r)
}

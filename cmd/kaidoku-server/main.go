package main

import (
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/samber/lo"
	"github.com/sirupsen/logrus"

	"github.com/ancientHacker/kaidoku.go/puzzle"
	"github.com/ancientHacker/kaidoku.go/storage"
)

var logger = logrus.New()

// logInit - configure the logger from the environment
func logInit() {
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	if level, err := logrus.ParseLevel(os.Getenv("LOG_LEVEL")); err == nil {
		logger.SetLevel(level)
	}
}

func main() {
	logInit()

	withStorage := true
	cacheId, databaseId, err := storage.Connect()
	if err != nil {
		withStorage = false
		logger.WithError(err).Warn("No storage; solving without the puzzle library")
	} else {
		defer storage.Close()
		logger.WithFields(logrus.Fields{
			"cache":    cacheId,
			"database": databaseId,
		}).Info("Connected to storage")
	}

	// Heroku environment port sensing
	port := os.Getenv("PORT")
	if port == "" {
		// running locally in dev mode
		port = "localhost:8080"
	} else {
		// running as a true server
		port = ":" + port
	}

	logger.WithField("address", port).Info("Listening")
	handler := logRequests(recoverPanics(newMux(withStorage)))
	if err := http.ListenAndServe(port, handler); err != nil {
		logger.WithError(err).Fatal("Listener failure")
	}
}

/*

routing

*/

// newMux builds the server's routing table.  Without storage the
// server still solves puzzles, but the library endpoints report
// service unavailable.
func newMux(withStorage bool) *http.ServeMux {
	mux := http.NewServeMux()
	if withStorage {
		mux.HandleFunc("/api/solve", solveWithLibrary)
		mux.HandleFunc("/api/puzzles", puzzleIndex)
		mux.HandleFunc("/api/puzzles/", puzzleDetail)
		mux.HandleFunc("/api/recent", listRecent)
	} else {
		mux.HandleFunc("/api/solve", solveDirect)
		mux.HandleFunc("/api/puzzles", writeLibraryUnavailable)
		mux.HandleFunc("/api/puzzles/", writeLibraryUnavailable)
		mux.HandleFunc("/api/recent", writeLibraryUnavailable)
	}
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		puzzle.WriteNotFound(w, r)
	})
	return mux
}

// logRequests: note every request as it arrives.
func logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger.WithFields(logrus.Fields{
			"method": r.Method,
			"path":   r.URL.Path,
		}).Debug("Handling request")
		next.ServeHTTP(w, r)
	})
}

// recoverPanics: storage failures panic back to entry level;
// convert them into internal error responses.
func recoverPanics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if e := recover(); e != nil {
				logger.WithFields(logrus.Fields{
					"path":  r.URL.Path,
					"panic": e,
				}).Error("Panic during request")
				err := puzzle.Error{
					Scope:     puzzle.InternalScope,
					Structure: puzzle.ScopeStructure,
					Condition: puzzle.GeneralCondition,
				}
				err.Message = fmt.Sprintf("Internal logic error: %v", e)
				puzzle.WriteJSON(err, http.StatusInternalServerError, w, r)
			}
		}()
		next.ServeHTTP(w, r)
	})
}

/*

solve requests

*/

// solveDirect: solve the posted puzzle without the library.
func solveDirect(w http.ResponseWriter, r *http.Request) {
	if r.Method != "POST" {
		writeMethodNotAllowed(w, r)
		return
	}
	solved, err := puzzle.SolveHandler(w, r)
	if err != nil {
		logger.WithError(err).Info("Solve failed")
		return
	}
	logger.WithField("puzzle", solved.Signature).Info("Solved puzzle")
}

// solveWithLibrary: solve the posted puzzle, keeping the library
// entry and its solution up to date.  Solutions are stored
// without names; the response carries the name the client
// posted, the way a direct solve does.
func solveWithLibrary(w http.ResponseWriter, r *http.Request) {
	if r.Method != "POST" {
		writeMethodNotAllowed(w, r)
		return
	}
	sum, err := puzzle.ReadSummary(w, r)
	if err != nil {
		logger.WithError(err).Info("Rejected solve request")
		return
	}
	g, err := puzzle.SummaryGrid(sum, w, r)
	if err != nil {
		logger.WithError(err).Info("Rejected solve request")
		return
	}

	// record the puzzle in the library and mark it recently used
	entry, err := storage.InsertEntry(sum)
	if err != nil {
		panic(fmt.Errorf("Can't happen! Storing a validated puzzle failed: %v", err))
	}
	signature := entry.Signature

	// use the stored solution when there is one
	if solved, ok := storage.LookupSolution(signature); ok {
		logger.WithField("puzzle", signature).Info("Solved from library")
		solved.Name = sum.Name
		puzzle.WriteSolved(solved, w, r)
		return
	}

	if !g.Solve() {
		logger.WithField("puzzle", signature).Info("No solution")
		puzzle.WriteUnsolvable(w, r)
		return
	}
	solved := puzzle.NewSummary("", g)
	solved.Signature = signature
	storage.InsertSolution(signature, solved)
	logger.WithField("puzzle", signature).Info("Solved and stored")
	solved.Name = sum.Name
	puzzle.WriteSolved(solved, w, r)
}

/*

library requests

*/

// puzzleIndex: the library index.  GET lists every entry; POST
// adds a puzzle without solving it.
func puzzleIndex(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case "GET":
		listPuzzles(w, r)
	case "POST":
		insertPuzzle(w, r)
	default:
		writeMethodNotAllowed(w, r)
	}
}

// listPuzzles: return the summaries of every library entry,
// sorted by name.
func listPuzzles(w http.ResponseWriter, r *http.Request) {
	entries := storage.ListEntries()
	sums := lo.Map(entries, func(e *storage.Entry, _ int) *puzzle.Summary {
		return e.Summary()
	})
	puzzle.WriteJSON(sums, http.StatusOK, w, r)
}

// insertPuzzle: validate and store a posted puzzle, returning
// its stored form.  When the puzzle is already in the library
// the stored entry wins, name included.
func insertPuzzle(w http.ResponseWriter, r *http.Request) {
	sum, err := puzzle.ReadSummary(w, r)
	if err != nil {
		logger.WithError(err).Info("Rejected library insert")
		return
	}
	if _, err := puzzle.SummaryGrid(sum, w, r); err != nil {
		logger.WithError(err).Info("Rejected library insert")
		return
	}
	entry, err := storage.InsertEntry(sum)
	if err != nil {
		panic(fmt.Errorf("Can't happen! Storing a validated puzzle failed: %v", err))
	}
	logger.WithField("puzzle", entry.Signature).Info("Stored puzzle")
	puzzle.WriteJSON(entry.Summary(), http.StatusOK, w, r)
}

// puzzleDetail: return one library entry, or its solution.
func puzzleDetail(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		writeMethodNotAllowed(w, r)
		return
	}
	suffix := strings.TrimPrefix(r.URL.Path, "/api/puzzles/")
	parts := strings.Split(suffix, "/")
	switch {
	case len(parts) == 1 && parts[0] != "":
		if e, ok := storage.LookupEntry(parts[0]); ok {
			puzzle.WriteJSON(e.Summary(), http.StatusOK, w, r)
			return
		}
	case len(parts) == 2 && parts[1] == "solution":
		if e, ok := storage.LookupEntry(parts[0]); ok {
			writeSolution(e, w, r)
			return
		}
	}
	puzzle.WriteNotFound(w, r)
}

// writeSolution: respond with a library entry's solution,
// computing and storing it the first time it is wanted.
func writeSolution(e *storage.Entry, w http.ResponseWriter, r *http.Request) {
	if solved, ok := storage.LookupSolution(e.Signature); ok {
		puzzle.WriteJSON(solved, http.StatusOK, w, r)
		return
	}
	g, err := e.Summary().Grid()
	if err != nil {
		panic(fmt.Errorf("Can't happen! Library entry %q doesn't make a grid: %v", e.Signature, err))
	}
	if !g.Solve() {
		logger.WithField("puzzle", e.Signature).Info("No solution")
		puzzle.WriteUnsolvable(w, r)
		return
	}
	solved := puzzle.NewSummary("", g)
	solved.Signature = e.Signature
	storage.InsertSolution(e.Signature, solved)
	logger.WithField("puzzle", e.Signature).Info("Solved and stored")
	puzzle.WriteJSON(solved, http.StatusOK, w, r)
}

// listRecent: return the most recently used puzzle signatures,
// newest first.
func listRecent(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		writeMethodNotAllowed(w, r)
		return
	}
	puzzle.WriteJSON(storage.RecentSignatures(), http.StatusOK, w, r)
}

/*

refusals

*/

// writeMethodNotAllowed: reject a request made with the wrong verb.
func writeMethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	err := puzzle.Error{
		Scope:     puzzle.RequestScope,
		Structure: puzzle.ScopeStructure,
		Condition: puzzle.InvalidArgumentCondition,
	}
	err.Message = fmt.Sprintf("Invalid request: %s of %s not allowed", r.Method, r.URL.Path)
	puzzle.WriteJSON(err, http.StatusMethodNotAllowed, w, r)
}

// writeLibraryUnavailable: report that a library endpoint can't
// be served because storage isn't connected.
func writeLibraryUnavailable(w http.ResponseWriter, r *http.Request) {
	err := puzzle.Error{
		Scope:     puzzle.RequestScope,
		Structure: puzzle.AttributeValueStructure,
		Attribute: puzzle.URLAttribute,
		Condition: puzzle.GeneralCondition,
		Values:    puzzle.ErrorData{r.URL.Path, "The puzzle library is not available"},
	}
	err.Message = err.Error()
	puzzle.WriteJSON(err, http.StatusServiceUnavailable, w, r)
}

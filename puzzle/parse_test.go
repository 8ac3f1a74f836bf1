package puzzle

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

var wikiText = `53__7____
6__195___
_98____6_
8___6___3
4__8_3__1
7___2___6
_6____28_
___419__5
____8__79
`

func TestParse(t *testing.T) {
	g, e := Parse(wikiText)
	if e != nil {
		t.Fatalf("Failed to parse puzzle text: %v", e)
	}
	if !reflect.DeepEqual(g.Values(), wikiValues) {
		t.Errorf("Parsed grid is %v, expected %v", g.Values(), wikiValues)
	}
}

func TestParseEmptyMarks(t *testing.T) {
	// '.', '0', and '_' all mark an empty cell
	dots := strings.ReplaceAll(wikiText, "_", ".")
	zeros := strings.ReplaceAll(wikiText, "_", "0")
	for i, text := range []string{dots, zeros} {
		g, e := Parse(text)
		if e != nil {
			t.Fatalf("case %d: Failed to parse puzzle text: %v", i+1, e)
		}
		if !reflect.DeepEqual(g.Values(), wikiValues) {
			t.Errorf("case %d: Parsed grid is %v, expected %v", i+1, g.Values(), wikiValues)
		}
	}
}

func TestParseShortInput(t *testing.T) {
	// missing characters and missing lines are empty cells
	g, e := Parse("53\n6")
	if e != nil {
		t.Fatalf("Failed to parse short text: %v", e)
	}
	expected := &Grid{}
	expected.Set(0, 0, 5)
	expected.Set(0, 1, 3)
	expected.Set(1, 0, 6)
	if !reflect.DeepEqual(g.Values(), expected.Values()) {
		t.Errorf("Parsed grid is %v, expected %v", g.Values(), expected.Values())
	}

	g, e = Parse("")
	if e != nil {
		t.Fatalf("Failed to parse empty text: %v", e)
	}
	if g.Empties() != CellCount {
		t.Errorf("Empty text gave a grid with %d empty cells, expected %d",
			g.Empties(), CellCount)
	}
}

func TestParseLooseWhitespace(t *testing.T) {
	// CRLF line endings and surrounding blanks are tolerated
	crlf := strings.ReplaceAll(wikiText, "\n", "  \r\n")
	g, e := Parse(crlf)
	if e != nil {
		t.Fatalf("Failed to parse CRLF text: %v", e)
	}
	if !reflect.DeepEqual(g.Values(), wikiValues) {
		t.Errorf("Parsed grid is %v, expected %v", g.Values(), wikiValues)
	}
}

type parseErrorTestcase struct {
	name      string
	text      string
	condition ErrorCondition
}

func TestParseErrors(t *testing.T) {
	testcases := []parseErrorTestcase{
		{"ten lines", strings.Repeat("_\n", 10), TooManyRowsCondition},
		{"ten characters", "1234567891", RowTooLongCondition},
		{"rogue character", "53x", InvalidCharacterCondition},
		{"row conflict", "55", ConflictingClueCondition},
		{"column conflict", "5\n5", ConflictingClueCondition},
		{"tile conflict", "5\n_5", ConflictingClueCondition},
	}
	for _, tc := range testcases {
		g, e := Parse(tc.text)
		if e == nil {
			t.Errorf("Test %s: Successfully parsed: %v", tc.name, g.Values())
			continue
		}
		err, ok := e.(Error)
		if !ok {
			t.Errorf("Test %s: Error has unexpected type: %v", tc.name, e)
			continue
		}
		if err.Condition != tc.condition {
			t.Errorf("Test %s: Condition was %v, expected %v",
				tc.name, err.Condition, tc.condition)
			t.Logf("Test %s Error: %+v", tc.name, err)
		}
	}
}

func TestParseConflictDetails(t *testing.T) {
	_, e := Parse("55")
	err, ok := e.(Error)
	if !ok {
		t.Fatalf("Error has unexpected type: %v", e)
	}
	expected := ErrorData{5, 1, 2}
	if !reflect.DeepEqual(err.Values, expected) {
		t.Errorf("Conflict details are %v, expected %v", err.Values, expected)
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wiki.txt")
	if e := os.WriteFile(path, []byte(wikiText), 0644); e != nil {
		t.Fatalf("Failed to write puzzle file: %v", e)
	}
	g, e := Load(path)
	if e != nil {
		t.Fatalf("Failed to load puzzle file: %v", e)
	}
	if !reflect.DeepEqual(g.Values(), wikiValues) {
		t.Errorf("Loaded grid is %v, expected %v", g.Values(), wikiValues)
	}
}

func TestLoadMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "no-such-puzzle.txt")
	if _, e := Load(path); e == nil {
		t.Errorf("Successfully loaded a missing file")
	}
}

package schedule

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"coursedb/pkg/monitor"
)

// Column positions in the source file.
const (
	colSubject = iota
	colCatalog
	colSection
	colComponent
	colSession
	colUnits
	colTotEnrl
	colCapEnrl
	colInstructor
)

const maxLineSize = 1 << 20

// Columns names the positional fields, used in error messages.
var Columns = [NumFields]string{
	"subject", "catalog", "section", "component", "session",
	"units", "tot_enrl", "cap_enrl", "instructor",
}

// ParseError reports an integer column that did not parse.
// Any ParseError aborts the whole load.
type ParseError struct {
	Line   int
	Column string
	Value  string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: column %s: invalid integer %q", e.Line, e.Column, e.Value)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Load reads a delimited schedule from r into a new Schedule.
// The first line is a header and is discarded. Lines with fewer than
// NumFields fields are skipped. Quoted fields may contain the delimiter,
// but never span lines.
func Load(r io.Reader, delim rune) (*Schedule, *monitor.LoadStats, error) {
	s := New()
	stats := monitor.NewLoadStats()
	if err := loadInto(s, r, delim, stats); err != nil {
		return nil, stats, err
	}
	return s, stats, nil
}

func loadInto(s *Schedule, r io.Reader, delim rune, stats *monitor.LoadStats) error {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	lineNo := 0
	for sc.Scan() {
		lineNo++
		if lineNo == 1 {
			continue // header
		}
		stats.RecordLine()

		rec, err := splitLine(strings.TrimSuffix(sc.Text(), "\r"), delim)
		if err != nil {
			return fmt.Errorf("line %d: %w", lineNo, err)
		}
		if len(rec) < NumFields {
			stats.RecordSkip()
			continue
		}

		it, err := parseItem(rec, lineNo)
		if err != nil {
			return err
		}
		stats.RecordLoad(s.Add(it))
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("read line %d: %w", lineNo+1, err)
	}
	return nil
}

// splitLine parses one physical line. An unterminated quote ends at the end of the line.
func splitLine(line string, delim rune) ([]string, error) {
	cr := csv.NewReader(strings.NewReader(line))
	cr.Comma = delim
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	rec, err := cr.Read()
	if err == io.EOF {
		return nil, nil
	}
	return rec, err
}

func parseItem(rec []string, line int) (Item, error) {
	var ints [3]int
	for i, col := range []int{colUnits, colTotEnrl, colCapEnrl} {
		n, err := strconv.Atoi(strings.TrimSpace(rec[col]))
		if err != nil {
			return Item{}, &ParseError{Line: line, Column: Columns[col], Value: rec[col], Err: err}
		}
		ints[i] = n
	}

	return Item{
		Subject:    rec[colSubject],
		Catalog:    rec[colCatalog],
		Section:    rec[colSection],
		Component:  rec[colComponent],
		Session:    rec[colSession],
		Units:      ints[0],
		TotEnrl:    ints[1],
		CapEnrl:    ints[2],
		Instructor: rec[colInstructor],
	}, nil
}

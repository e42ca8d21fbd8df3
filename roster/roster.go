package roster

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Fixed worksheet layout. Columns are zero-indexed, rows are 1-indexed sheet rows.
const (
	AbsenceColumn   = 2
	GradeColumn     = 3
	GradeCount      = 3
	StatusColumn    = "G"
	SecondaryColumn = "H"
	FirstRow        = 4

	Sessions     = 60
	AbsenceLimit = 15
)

type Kind int

const (
	Empty Kind = iota
	Number
	Text
)

// Cell is a single worksheet value as returned by the visualization endpoint.
type Cell struct {
	Kind   Kind
	Number float64
	Text   string
}

type Row []Cell

// Roster holds the student rows in worksheet order. Row i corresponds to sheet row FirstRow+i.
type Roster []Row

func NumberCell(v float64) Cell {
	return Cell{Kind: Number, Number: v}
}

func TextCell(v string) Cell {
	return Cell{Kind: Text, Text: v}
}

func (c Cell) String() string {
	switch c.Kind {
	case Number:
		return strconv.FormatFloat(c.Number, 'f', -1, 64)

	case Text:
		return c.Text

	default:
		return ""
	}
}

// Cell returns the value at column ix, or an Empty cell if the row is too short.
func (r Row) Cell(ix int) Cell {
	if ix < 0 || ix >= len(r) {
		return Cell{}
	}

	return r[ix]
}

// value converts a cell to a number. Empty cells count as zero.
func (c Cell) value() (float64, bool) {
	switch c.Kind {
	case Empty:
		return 0, true

	case Number:
		return c.Number, true

	case Text:
		s := strings.TrimSpace(c.Text)
		if s == "" {
			return 0, true
		}

		v, err := strconv.ParseFloat(strings.Replace(s, ",", ".", 1), 64)
		if err == nil && !math.IsNaN(v) && !math.IsInf(v, 0) {
			return v, true
		}
	}

	return 0, false
}

func column(ix int) string {
	name := ""
	for n := ix + 1; n > 0; n = (n - 1) / 26 {
		name = string(rune('A'+(n-1)%26)) + name
	}

	return name
}

func cellRef(col string, row int) string {
	return fmt.Sprintf("%s%d", col, row)
}

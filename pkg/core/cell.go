package core

import (
	"math"
	"strconv"
	"strings"
)

// Kind identifies which variant a Cell holds.
type Kind int

const (
	// KindMissing marks an absent value. It is distinct from an empty
	// string and from zero.
	KindMissing Kind = iota
	// KindNumber holds a float64 value.
	KindNumber
	// KindText holds a string value.
	KindText
)

// String returns the kind name as used in inspect output.
func (k Kind) String() string {
	switch k {
	case KindNumber:
		return "number"
	case KindText:
		return "text"
	default:
		return "missing"
	}
}

// Cell is a single table value: a number, a text string, or the missing
// marker. The zero value is the missing marker.
type Cell struct {
	Kind Kind
	Num  float64
	Text string
}

// Missing returns the missing marker.
func Missing() Cell {
	return Cell{Kind: KindMissing}
}

// Number returns a numeric cell.
func Number(v float64) Cell {
	return Cell{Kind: KindNumber, Num: v}
}

// Text returns a text cell.
func Text(s string) Cell {
	return Cell{Kind: KindText, Text: s}
}

// IsMissing reports whether the cell is the missing marker.
func (c Cell) IsMissing() bool {
	return c.Kind == KindMissing
}

// Equal reports full value equality. Two missing cells are equal;
// a missing cell never equals a present one, and Number(0) never
// equals Text("0"). NaN equals NaN, so duplicate detection and table
// comparison agree on NaN-bearing data.
func (c Cell) Equal(o Cell) bool {
	if c.Kind != o.Kind {
		return false
	}
	switch c.Kind {
	case KindNumber:
		return c.Num == o.Num || (math.IsNaN(c.Num) && math.IsNaN(o.Num))
	case KindText:
		return c.Text == o.Text
	default:
		return true
	}
}

// Compare orders two present cells: numbers numerically, text
// byte-wise. Cells of different kinds order numbers before text.
// Missing cells are the caller's concern; Compare treats them as
// smaller than everything.
func (c Cell) Compare(o Cell) int {
	if c.Kind != o.Kind {
		if c.Kind < o.Kind {
			return -1
		}
		return 1
	}
	switch c.Kind {
	case KindNumber:
		switch {
		case c.Num < o.Num:
			return -1
		case c.Num > o.Num:
			return 1
		}
		return 0
	case KindText:
		return strings.Compare(c.Text, o.Text)
	default:
		return 0
	}
}

// String renders the canonical CSV field: empty for missing, shortest
// exact decimal for numbers (no exponent), the raw text otherwise.
func (c Cell) String() string {
	switch c.Kind {
	case KindNumber:
		return strconv.FormatFloat(c.Num, 'f', -1, 64)
	case KindText:
		return c.Text
	default:
		return ""
	}
}

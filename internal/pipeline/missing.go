package pipeline

import (
	"context"

	"github.com/spf13/cast"

	"github.com/tabwell-labs/tabwell/pkg/core"
)

// Policy selects how missing cells are handled.
type Policy string

const (
	// PolicyDrop removes every row containing at least one missing cell.
	PolicyDrop Policy = "drop"
	// PolicyFill replaces every missing cell with one configured value.
	PolicyFill Policy = "fill"
	// PolicyImpute fills numeric columns with their mean and text
	// columns with "Unknown".
	PolicyImpute Policy = "impute"
)

// imputeText is what impute writes into non-numeric columns.
const imputeText = "Unknown"

// ParsePolicy validates a policy name.
func ParsePolicy(s string) (Policy, error) {
	switch Policy(s) {
	case PolicyDrop, PolicyFill, PolicyImpute:
		return Policy(s), nil
	}
	return "", core.NewConfigError("unknown missing-value policy %q (want drop, fill, or impute)", s)
}

// FillCell converts a raw fill value into a cell: a number when the
// whole token parses as one, text otherwise.
func FillCell(raw string) core.Cell {
	if v, err := cast.ToFloat64E(raw); err == nil {
		return core.Number(v)
	}
	return core.Text(raw)
}

// MissingValues is the missing-value handling stage.
type MissingValues struct {
	Policy Policy
	// Fill is the replacement cell for PolicyFill.
	Fill core.Cell
}

func (s *MissingValues) Name() string { return "missing" }

func (s *MissingValues) Apply(_ context.Context, t *core.Table) (*core.Table, error) {
	switch s.Policy {
	case PolicyDrop:
		return s.drop(t), nil
	case PolicyFill:
		return s.fill(t, uniformFills(t, s.Fill)), nil
	case PolicyImpute:
		return s.fill(t, imputeFills(t)), nil
	}
	return nil, core.NewConfigError("unknown missing-value policy %q (want drop, fill, or impute)", string(s.Policy))
}

func (s *MissingValues) drop(t *core.Table) *core.Table {
	out := core.NewTable(t.Columns)
	for _, row := range t.Rows {
		if rowHasMissing(row) {
			continue
		}
		out.Rows = append(out.Rows, row)
	}
	return out
}

// fill replaces missing cells column-wise using the per-column
// replacement values.
func (s *MissingValues) fill(t *core.Table, fills []core.Cell) *core.Table {
	out := core.NewTable(t.Columns)
	for _, row := range t.Rows {
		if !rowHasMissing(row) {
			out.Rows = append(out.Rows, row)
			continue
		}
		filled := make([]core.Cell, len(row))
		for i, cell := range row {
			if cell.IsMissing() {
				filled[i] = fills[i]
			} else {
				filled[i] = cell
			}
		}
		out.Rows = append(out.Rows, filled)
	}
	return out
}

func uniformFills(t *core.Table, fill core.Cell) []core.Cell {
	fills := make([]core.Cell, t.NumCols())
	for i := range fills {
		fills[i] = fill
	}
	return fills
}

// imputeFills computes the per-column replacement: the mean of present
// values for numeric columns, "Unknown" for text and all-missing ones.
func imputeFills(t *core.Table) []core.Cell {
	fills := make([]core.Cell, t.NumCols())
	for col := range t.Columns {
		var sum float64
		var count int
		numeric := false
		for _, row := range t.Rows {
			cell := row[col]
			if cell.Kind == core.KindNumber {
				numeric = true
				sum += cell.Num
				count++
			}
		}
		if numeric && count > 0 {
			fills[col] = core.Number(sum / float64(count))
		} else {
			fills[col] = core.Text(imputeText)
		}
	}
	return fills
}

func rowHasMissing(row []core.Cell) bool {
	for _, cell := range row {
		if cell.IsMissing() {
			return true
		}
	}
	return false
}

package pipeline

import (
	"context"
	"sort"

	"github.com/tabwell-labs/tabwell/pkg/core"
)

// Sort reorders rows by one column using a stable sort. Rows whose
// sort key is missing go after all present values in both directions,
// keeping their relative order.
type Sort struct {
	Column     string
	Descending bool
}

func (s *Sort) Name() string { return "sort" }

func (s *Sort) Apply(_ context.Context, t *core.Table) (*core.Table, error) {
	idx := t.ColumnIndex(s.Column)
	if idx < 0 {
		return nil, core.UnknownColumnError(s.Column, t.Columns)
	}

	rows := make([][]core.Cell, len(t.Rows))
	copy(rows, t.Rows)

	sort.SliceStable(rows, func(i, j int) bool {
		a, b := rows[i][idx], rows[j][idx]
		if a.IsMissing() || b.IsMissing() {
			return !a.IsMissing() && b.IsMissing()
		}
		c := a.Compare(b)
		if s.Descending {
			return c > 0
		}
		return c < 0
	})

	return &core.Table{Columns: t.Columns, Rows: rows}, nil
}

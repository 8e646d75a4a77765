package pipeline

import (
	"context"
	"strconv"
	"strings"

	"golang.org/x/text/cases"

	"github.com/tabwell-labs/tabwell/pkg/core"
)

// Dedupe removes rows that are exact duplicates of an earlier row,
// keeping the first occurrence and the relative order of survivors.
// Two missing cells compare equal.
type Dedupe struct {
	// FoldCase compares text cells under Unicode case folding.
	FoldCase bool
}

func (s *Dedupe) Name() string { return "dedupe" }

func (s *Dedupe) Apply(_ context.Context, t *core.Table) (*core.Table, error) {
	folder := cases.Fold()

	seen := make(map[string]struct{}, t.NumRows())
	out := core.NewTable(t.Columns)
	var b strings.Builder
	for _, row := range t.Rows {
		b.Reset()
		// Each cell is encoded as kind, length, then payload. The
		// length prefix keeps cell boundaries unambiguous no matter
		// what bytes the payload contains, and the kind prefix keeps
		// a missing cell, an empty text cell, and the text "30"
		// versus the number 30 distinct.
		for _, cell := range row {
			v := cell.String()
			if s.FoldCase && cell.Kind == core.KindText {
				v = folder.String(v)
			}
			b.WriteByte('0' + byte(cell.Kind))
			b.WriteString(strconv.Itoa(len(v)))
			b.WriteByte(':')
			b.WriteString(v)
		}
		key := b.String()
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out.Rows = append(out.Rows, row)
	}
	return out, nil
}

// Package pipeline implements the cleaning stages and their sequential
// composition. A Stage is a pure transformation from table to table;
// the Pipeline folds an input table through its stages in order and
// stops at the first error.
package pipeline

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/tabwell-labs/tabwell/pkg/core"
)

// Stage is a single cleaning transformation.
type Stage interface {
	Name() string
	Apply(ctx context.Context, t *core.Table) (*core.Table, error)
}

// StageResult records the row counts around one stage run.
type StageResult struct {
	Name    string `json:"name"`
	RowsIn  int    `json:"rows_in"`
	RowsOut int    `json:"rows_out"`
}

// Pipeline composes a fixed sequence of stages.
type Pipeline struct {
	logger *slog.Logger
	stages []Stage
}

// New creates a pipeline. A nil logger discards output.
func New(logger *slog.Logger, stages ...Stage) *Pipeline {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Pipeline{logger: logger, stages: stages}
}

// Run folds t through the stages in order. On error the error is
// wrapped with the failing stage's name and the partial results up to
// that stage are returned.
func (p *Pipeline) Run(ctx context.Context, t *core.Table) (*core.Table, []StageResult, error) {
	results := make([]StageResult, 0, len(p.stages))
	cur := t
	for _, s := range p.stages {
		if err := ctx.Err(); err != nil {
			return nil, results, err
		}
		in := cur.NumRows()
		next, err := s.Apply(ctx, cur)
		if err != nil {
			return nil, results, fmt.Errorf("%s: %w", s.Name(), err)
		}
		p.logger.Debug("stage complete", "stage", s.Name(), "rows_in", in, "rows_out", next.NumRows())
		results = append(results, StageResult{Name: s.Name(), RowsIn: in, RowsOut: next.NumRows()})
		cur = next
	}
	return cur, results, nil
}

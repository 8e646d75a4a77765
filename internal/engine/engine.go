// Package engine orchestrates one cleaning run: load the input table,
// fold it through the missing-value, dedupe, and sort stages in that
// fixed order, then write the result. The engine holds no state across
// runs; the output file is only produced after every in-memory
// transformation has succeeded.
package engine

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/tabwell-labs/tabwell/internal/loader"
	"github.com/tabwell-labs/tabwell/internal/pipeline"
	"github.com/tabwell-labs/tabwell/internal/writer"
	"github.com/tabwell-labs/tabwell/pkg/core"
)

// Config holds engine configuration for one run.
type Config struct {
	// Input is the path of the CSV file to clean.
	Input string
	// Output is the path the cleaned CSV is written to.
	Output string
	// NAToken is an extra sentinel treated as missing (optional).
	NAToken string
	// Policy is the missing-value policy: drop, fill, or impute.
	// Empty skips missing-value handling.
	Policy string
	// FillValue is the replacement for missing cells under "fill".
	FillValue string
	// Dedupe removes exact duplicate rows when true.
	Dedupe bool
	// FoldCase makes duplicate comparison case-insensitive for text.
	FoldCase bool
	// SortBy names the sort column. Empty skips sorting.
	SortBy string
	// Descending reverses the sort direction.
	Descending bool
	// Logger is the structured logger (optional, uses discard if nil).
	Logger *slog.Logger
}

// Result summarizes a completed run.
type Result struct {
	Columns []string               `json:"columns"`
	RowsIn  int                    `json:"rows_in"`
	RowsOut int                    `json:"rows_out"`
	Stages  []pipeline.StageResult `json:"stages"`
	Elapsed time.Duration          `json:"elapsed"`
}

// Engine executes the cleaning pipeline.
type Engine struct {
	cfg    Config
	logger *slog.Logger
	stages []pipeline.Stage
}

// New creates an engine, validating the configuration so that an
// invalid policy fails before any file is touched.
func New(cfg Config) (*Engine, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	var stages []pipeline.Stage
	if cfg.Policy != "" {
		policy, err := pipeline.ParsePolicy(cfg.Policy)
		if err != nil {
			return nil, err
		}
		stages = append(stages, &pipeline.MissingValues{
			Policy: policy,
			Fill:   pipeline.FillCell(cfg.FillValue),
		})
	}
	if cfg.Dedupe {
		stages = append(stages, &pipeline.Dedupe{FoldCase: cfg.FoldCase})
	}
	if cfg.SortBy != "" {
		stages = append(stages, &pipeline.Sort{Column: cfg.SortBy, Descending: cfg.Descending})
	}

	logger.Debug("engine initialized",
		"input", cfg.Input, "output", cfg.Output, "stages", len(stages))

	return &Engine{cfg: cfg, logger: logger, stages: stages}, nil
}

// Run executes load, the cleaning stages, and the write. Any error
// aborts the run; no output file is created on failure.
func (e *Engine) Run(ctx context.Context) (*Result, error) {
	start := time.Now()

	t, err := loader.Load(e.cfg.Input, loader.Options{NAToken: e.cfg.NAToken})
	if err != nil {
		return nil, fmt.Errorf("load: %w", err)
	}
	e.logger.Debug("loaded input", "rows", t.NumRows(), "columns", t.NumCols())
	rowsIn := t.NumRows()

	p := pipeline.New(e.logger, e.stages...)
	cleaned, stageResults, err := p.Run(ctx, t)
	if err != nil {
		return nil, err
	}

	if err := writer.Write(e.cfg.Output, cleaned, writer.Options{}); err != nil {
		return nil, fmt.Errorf("write: %w", err)
	}
	e.logger.Debug("wrote output", "path", e.cfg.Output, "rows", cleaned.NumRows())

	return &Result{
		Columns: cleaned.Columns,
		RowsIn:  rowsIn,
		RowsOut: cleaned.NumRows(),
		Stages:  stageResults,
		Elapsed: time.Since(start),
	}, nil
}

// Inspect loads the input table and summarizes it without writing
// anything. Used by the inspect command.
func (e *Engine) Inspect(ctx context.Context) (*core.Table, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	t, err := loader.Load(e.cfg.Input, loader.Options{NAToken: e.cfg.NAToken})
	if err != nil {
		return nil, fmt.Errorf("load: %w", err)
	}
	return t, nil
}

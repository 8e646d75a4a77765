package commands

import (
	"context"
	"fmt"
	"path/filepath"
	"strconv"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/tabwell-labs/tabwell/internal/engine"
	"github.com/tabwell-labs/tabwell/pkg/core"
)

// NewCleanCommand creates the clean command.
func NewCleanCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clean",
		Short: "Clean a CSV file: handle missing values, dedupe, sort",
		Long: `Run the cleaning pipeline over a CSV file.

The stages run in a fixed order: missing-value handling, then duplicate
removal, then sorting. The output file is only written once every stage
has succeeded; a failed run leaves no partial output.`,
		Example: `  # Drop rows with gaps, remove duplicates, sort by age
  tabwell clean -i data.csv -o cleaned.csv --sort-by age

  # Fill gaps with 0 instead of dropping, keep duplicates
  tabwell clean -i data.csv -o cleaned.csv --missing fill --fill-value 0 --dedupe=false

  # Fill numeric gaps with the column mean and text gaps with "Unknown"
  tabwell clean -i data.csv -o cleaned.csv --missing impute

  # Re-clean whenever the input file changes
  tabwell clean -i data.csv -o cleaned.csv --watch`,
		RunE: runClean,
	}

	cmd.Flags().StringP("input", "i", "", "Path to the input CSV file")
	cmd.Flags().StringP("output", "o", "", "Path for the cleaned CSV file")
	cmd.Flags().String("missing", "", "Missing-value policy: drop, fill, or impute")
	cmd.Flags().String("fill-value", "", "Replacement value for --missing fill")
	cmd.Flags().String("na-token", "", "Extra token treated as missing (e.g. NA)")
	cmd.Flags().Bool("dedupe", true, "Remove exact duplicate rows")
	cmd.Flags().Bool("fold-case", false, "Compare text case-insensitively when deduping")
	cmd.Flags().StringP("sort-by", "s", "", "Column to sort by")
	cmd.Flags().Bool("descending", false, "Sort in descending order")
	cmd.Flags().Bool("watch", false, "Watch the input file and re-clean on change")

	return cmd
}

func runClean(cmd *cobra.Command, _ []string) error {
	cc, err := NewCommandContext(cmd)
	if err != nil {
		return err
	}

	if cc.Cfg.Input == "" {
		return core.NewConfigError("input path is required (use --input)")
	}
	if cc.Cfg.Output == "" {
		return core.NewConfigError("output path is required (use --output)")
	}

	eng, err := engine.New(engine.Config{
		Input:      cc.Cfg.Input,
		Output:     cc.Cfg.Output,
		NAToken:    cc.Cfg.NAToken,
		Policy:     cc.Cfg.Missing,
		FillValue:  cc.Cfg.FillValue,
		Dedupe:     cc.Cfg.Dedupe,
		FoldCase:   cc.Cfg.FoldCase,
		SortBy:     cc.Cfg.SortBy,
		Descending: cc.Cfg.Descending,
		Logger:     cc.Logger,
	})
	if err != nil {
		return err
	}

	watch, _ := cmd.Flags().GetBool("watch")
	if watch {
		return watchAndClean(cmd.Context(), cc, eng)
	}

	return cleanOnce(cmd.Context(), cc, eng)
}

func cleanOnce(ctx context.Context, cc *CommandContext, eng *engine.Engine) error {
	res, err := eng.Run(ctx)
	if err != nil {
		return err
	}

	cc.Renderer.Textf("Loaded %d rows, %d columns from %s\n", res.RowsIn, len(res.Columns), cc.Cfg.Input)
	if len(res.Stages) > 0 {
		rows := make([][]string, len(res.Stages))
		for i, s := range res.Stages {
			rows[i] = []string{s.Name, strconv.Itoa(s.RowsIn), strconv.Itoa(s.RowsOut)}
		}
		cc.Renderer.Table([]string{"stage", "rows in", "rows out"}, rows)
	}
	cc.Renderer.Textf("Wrote %d rows to %s in %s\n", res.RowsOut, cc.Cfg.Output, res.Elapsed.Round(time.Millisecond))

	return cc.Renderer.JSON(res)
}

// watchAndClean runs the pipeline once, then re-runs it whenever the
// input file changes, until the context is cancelled. A failed run is
// reported and watching continues.
func watchAndClean(ctx context.Context, cc *CommandContext, eng *engine.Engine) error {
	if err := cleanOnce(ctx, cc, eng); err != nil {
		cc.Renderer.Errorf("Error: %v\n", err)
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer w.Close()

	// Watch the directory rather than the file: editors replace files
	// on save, which drops a watch on the file itself.
	if err := w.Add(filepath.Dir(cc.Cfg.Input)); err != nil {
		return fmt.Errorf("failed to watch %s: %w", cc.Cfg.Input, err)
	}

	target := filepath.Clean(cc.Cfg.Input)
	cc.Renderer.Textf("Watching %s (interrupt to stop)\n", cc.Cfg.Input)

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != target {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
				continue
			}
			cc.Logger.Debug("input changed", "event", ev.Op.String())
			if err := cleanOnce(ctx, cc, eng); err != nil {
				cc.Renderer.Errorf("Error: %v\n", err)
			}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			cc.Renderer.Errorf("Watch error: %v\n", err)
		}
	}
}

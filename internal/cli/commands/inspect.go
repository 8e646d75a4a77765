package commands

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/tabwell-labs/tabwell/internal/engine"
	"github.com/tabwell-labs/tabwell/pkg/core"
)

// columnSummary is the per-column slice of an inspect report.
type columnSummary struct {
	Name    string `json:"name"`
	Type    string `json:"type"`
	Missing int    `json:"missing"`
}

type inspectReport struct {
	Path    string          `json:"path"`
	Rows    int             `json:"rows"`
	Columns []columnSummary `json:"columns"`
	Preview [][]string      `json:"preview"`
}

// NewInspectCommand creates the inspect command.
func NewInspectCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect <file>",
		Short: "Summarize a CSV file without cleaning it",
		Long: `Load a CSV file and print its shape, the inferred type of each
column, the number of missing values per column, and a preview of the
first rows. Nothing is written.`,
		Example: `  tabwell inspect data.csv
  tabwell inspect data.csv --rows 3
  tabwell inspect data.csv --format json`,
		Args: cobra.ExactArgs(1),
		RunE: runInspect,
	}

	cmd.Flags().Int("rows", 10, "Number of preview rows")
	cmd.Flags().String("na-token", "", "Extra token treated as missing (e.g. NA)")

	return cmd
}

func runInspect(cmd *cobra.Command, args []string) error {
	cc, err := NewCommandContext(cmd)
	if err != nil {
		return err
	}

	eng, err := engine.New(engine.Config{
		Input:   args[0],
		NAToken: cc.Cfg.NAToken,
		Logger:  cc.Logger,
	})
	if err != nil {
		return err
	}

	tbl, err := eng.Inspect(cmd.Context())
	if err != nil {
		return err
	}

	previewRows, _ := cmd.Flags().GetInt("rows")
	report := summarize(args[0], tbl, previewRows)

	cc.Renderer.Textf("Shape: %d rows x %d columns\n", report.Rows, len(report.Columns))

	colRows := make([][]string, len(report.Columns))
	for i, c := range report.Columns {
		colRows[i] = []string{c.Name, c.Type, strconv.Itoa(c.Missing)}
	}
	cc.Renderer.Table([]string{"column", "type", "missing"}, colRows)

	if len(report.Preview) > 0 {
		cc.Renderer.Textf("\nFirst %d rows:\n", len(report.Preview))
		cc.Renderer.Table(tbl.Columns, report.Preview)
	}

	return cc.Renderer.JSON(report)
}

func summarize(path string, tbl *core.Table, previewRows int) *inspectReport {
	report := &inspectReport{Path: path, Rows: tbl.NumRows()}

	for col, name := range tbl.Columns {
		summary := columnSummary{Name: name, Type: core.KindText.String()}
		numeric := false
		for _, row := range tbl.Rows {
			switch row[col].Kind {
			case core.KindMissing:
				summary.Missing++
			case core.KindNumber:
				numeric = true
			}
		}
		if numeric {
			summary.Type = core.KindNumber.String()
		}
		report.Columns = append(report.Columns, summary)
	}

	if previewRows > tbl.NumRows() {
		previewRows = tbl.NumRows()
	}
	for _, row := range tbl.Rows[:previewRows] {
		fields := make([]string, len(row))
		for i, cell := range row {
			fields[i] = cell.String()
		}
		report.Preview = append(report.Preview, fields)
	}

	return report
}

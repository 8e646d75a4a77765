package commands

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/tabwell-labs/tabwell/internal/writer"
	"github.com/tabwell-labs/tabwell/pkg/core"
)

const defaultSamplePath = "sample_data.csv"

// NewSampleCommand creates the sample command.
func NewSampleCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sample [path]",
		Short: "Write a small demo dataset to try the pipeline on",
		Long: `Create a sample CSV with missing values and a duplicate row, so the
clean and inspect commands can be tried without any data at hand.`,
		Example: `  tabwell sample
  tabwell sample demo.csv
  tabwell clean -i sample_data.csv -o cleaned.csv --sort-by age`,
		Args: cobra.MaximumNArgs(1),
		RunE: runSample,
	}

	cmd.Flags().Bool("force", false, "Overwrite an existing file")

	return cmd
}

func runSample(cmd *cobra.Command, args []string) error {
	cc, err := NewCommandContext(cmd)
	if err != nil {
		return err
	}

	path := defaultSamplePath
	if len(args) == 1 {
		path = args[0]
	}

	force, _ := cmd.Flags().GetBool("force")
	if _, err := os.Stat(path); err == nil && !force {
		return core.NewConfigError("%s already exists (use --force to overwrite)", path)
	}

	tbl := sampleTable()
	if err := writer.Write(path, tbl, writer.Options{}); err != nil {
		return err
	}

	cc.Renderer.Textf("Wrote %d rows to %s\n", tbl.NumRows(), path)
	return cc.Renderer.JSON(map[string]any{"path": path, "rows": tbl.NumRows()})
}

// sampleTable builds the demo dataset: gaps in every column and one
// exact duplicate (the second Bob row).
func sampleTable() *core.Table {
	t := core.NewTable([]string{"name", "age", "city", "salary"})
	rows := [][]core.Cell{
		{core.Text("Alice"), core.Number(25), core.Text("New York"), core.Number(50000)},
		{core.Text("Bob"), core.Number(30), core.Text("Paris"), core.Number(60000)},
		{core.Missing(), core.Number(35), core.Text("London"), core.Number(75000)},
		{core.Text("David"), core.Missing(), core.Text("Tokyo"), core.Number(80000)},
		{core.Text("Eve"), core.Number(28), core.Missing(), core.Number(55000)},
		{core.Text("Bob"), core.Number(30), core.Text("Paris"), core.Number(60000)},
		{core.Text("Frank"), core.Number(45), core.Text("Berlin"), core.Missing()},
	}
	for _, row := range rows {
		_ = t.AppendRow(row)
	}
	return t
}

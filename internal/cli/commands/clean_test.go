package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tabwell-labs/tabwell/internal/cli/config"
	"github.com/tabwell-labs/tabwell/pkg/core"
)

func runCleanCmd(t *testing.T, args ...string) (string, error) {
	t.Helper()
	config.ResetConfig()
	t.Cleanup(config.ResetConfig)

	cmd := NewCleanCommand()
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return buf.String(), err
}

func TestCleanDropDedupeSort(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.csv")
	out := filepath.Join(dir, "out.csv")
	require.NoError(t, os.WriteFile(in, []byte("name,age\nAlice,30\nBob,\nAlice,30\nCara,25\n"), 0644))

	stdout, err := runCleanCmd(t, "-i", in, "-o", out, "--sort-by", "age")
	require.NoError(t, err)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "name,age\nCara,25\nAlice,30\n", string(data))
	assert.Contains(t, stdout, "Wrote 2 rows")
}

func TestCleanFillDescendingKeepDuplicates(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.csv")
	out := filepath.Join(dir, "out.csv")
	require.NoError(t, os.WriteFile(in, []byte("name,age\nAlice,30\nBob,\nAlice,30\nCara,25\n"), 0644))

	_, err := runCleanCmd(t, "-i", in, "-o", out,
		"--missing", "fill", "--fill-value", "0",
		"--dedupe=false", "--sort-by", "age", "--descending")
	require.NoError(t, err)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "name,age\nAlice,30\nAlice,30\nCara,25\nBob,0\n", string(data))
}

func TestCleanRequiresInput(t *testing.T) {
	_, err := runCleanCmd(t, "-o", "out.csv")

	var cfgErr *core.ConfigError
	require.ErrorAs(t, err, &cfgErr)
	assert.Contains(t, err.Error(), "input path")
}

func TestCleanMissingInputFile(t *testing.T) {
	dir := t.TempDir()

	_, err := runCleanCmd(t,
		"-i", filepath.Join(dir, "absent.csv"),
		"-o", filepath.Join(dir, "out.csv"))

	var nf *core.NotFoundError
	require.ErrorAs(t, err, &nf)
}

func TestCleanInvalidPolicy(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.csv")
	require.NoError(t, os.WriteFile(in, []byte("name\nAlice\n"), 0644))

	_, err := runCleanCmd(t, "-i", in, "-o", filepath.Join(dir, "out.csv"),
		"--missing", "zap")

	var cfgErr *core.ConfigError
	require.ErrorAs(t, err, &cfgErr)
	assert.Contains(t, err.Error(), "zap")
}

func TestCleanJSONOutput(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.csv")
	out := filepath.Join(dir, "out.csv")
	require.NoError(t, os.WriteFile(in, []byte("name,age\nAlice,30\nBob,\n"), 0644))

	cmd := NewCleanCommand()
	cmd.Flags().String("format", "", "")
	config.ResetConfig()
	t.Cleanup(config.ResetConfig)

	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{"-i", in, "-o", out, "--format", "json"})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, buf.String(), `"rows_out"`)
	assert.NotContains(t, buf.String(), "Wrote", "prose suppressed in json mode")
}

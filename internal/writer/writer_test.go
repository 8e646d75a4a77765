package writer

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tabwell-labs/tabwell/internal/loader"
	"github.com/tabwell-labs/tabwell/pkg/core"
)

func sampleTable(t *testing.T) *core.Table {
	t.Helper()
	tbl := core.NewTable([]string{"name", "age"})
	require.NoError(t, tbl.AppendRow([]core.Cell{core.Text("Alice"), core.Number(30)}))
	require.NoError(t, tbl.AppendRow([]core.Cell{core.Text("Bob"), core.Missing()}))
	return tbl
}

func TestWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")

	require.NoError(t, Write(path, sampleTable(t), Options{}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "name,age\nAlice,30\nBob,\n", string(data))
}

func TestWriteRoundTrip(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.csv")
	out := filepath.Join(dir, "out.csv")
	require.NoError(t, os.WriteFile(in, []byte("name,age,city\nAlice,30,New York\nBob,,Paris\n,25,\n"), 0644))

	orig, err := loader.Load(in, loader.Options{})
	require.NoError(t, err)
	require.NoError(t, Write(out, orig, Options{}))

	again, err := loader.Load(out, loader.Options{})
	require.NoError(t, err)
	assert.True(t, orig.Equal(again), "load-write-load must be the identity")
}

func TestWriteCanonicalNumbers(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	tbl := core.NewTable([]string{"v"})
	require.NoError(t, tbl.AppendRow([]core.Cell{core.Number(2.50)}))
	require.NoError(t, tbl.AppendRow([]core.Cell{core.Number(75000)}))

	require.NoError(t, Write(path, tbl, Options{}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "v\n2.5\n75000\n", string(data))
}

func TestWriteBadDestination(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing-dir", "out.csv")

	err := Write(path, sampleTable(t), Options{})

	var ioErr *core.IOError
	require.ErrorAs(t, err, &ioErr)
	assert.Equal(t, path, ioErr.Path)
}

func TestWriteLeavesNoPartialFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.csv")

	require.Error(t, Write(filepath.Join(dir, "no-such-dir", "out.csv"), sampleTable(t), Options{}))

	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries, "no temp files left behind")
}

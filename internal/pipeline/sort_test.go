package pipeline

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tabwell-labs/tabwell/pkg/core"
)

func ages(t *testing.T, rows ...core.Cell) *core.Table {
	t.Helper()
	tbl := core.NewTable([]string{"id", "age"})
	for i, age := range rows {
		require.NoError(t, tbl.AppendRow([]core.Cell{core.Number(float64(i)), age}))
	}
	return tbl
}

func agesOut(tbl *core.Table) []int {
	ids := make([]int, tbl.NumRows())
	for i, row := range tbl.Rows {
		ids[i] = int(row[0].Num)
	}
	return ids
}

func TestSortAscending(t *testing.T) {
	tbl := ages(t, core.Number(30), core.Number(25), core.Number(45))

	out, err := (&Sort{Column: "age"}).Apply(context.Background(), tbl)
	require.NoError(t, err)

	assert.Equal(t, []int{1, 0, 2}, agesOut(out))
}

func TestSortDescending(t *testing.T) {
	tbl := ages(t, core.Number(30), core.Number(25), core.Number(45))

	out, err := (&Sort{Column: "age", Descending: true}).Apply(context.Background(), tbl)
	require.NoError(t, err)

	assert.Equal(t, []int{2, 0, 1}, agesOut(out))
}

func TestSortStable(t *testing.T) {
	tbl := ages(t, core.Number(30), core.Number(25), core.Number(30), core.Number(30))

	out, err := (&Sort{Column: "age"}).Apply(context.Background(), tbl)
	require.NoError(t, err)

	assert.Equal(t, []int{1, 0, 2, 3}, agesOut(out), "equal keys keep input order")
}

func TestSortMissingLastBothDirections(t *testing.T) {
	tbl := ages(t, core.Missing(), core.Number(30), core.Number(25), core.Missing())

	asc, err := (&Sort{Column: "age"}).Apply(context.Background(), tbl)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 1, 0, 3}, agesOut(asc), "missing after present, original order among missing")

	desc, err := (&Sort{Column: "age", Descending: true}).Apply(context.Background(), tbl)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 0, 3}, agesOut(desc), "direction does not move missing rows to the front")
}

func TestSortTextColumn(t *testing.T) {
	tbl := core.NewTable([]string{"name"})
	for _, n := range []string{"Cara", "Alice", "Bob"} {
		require.NoError(t, tbl.AppendRow([]core.Cell{core.Text(n)}))
	}

	out, err := (&Sort{Column: "name"}).Apply(context.Background(), tbl)
	require.NoError(t, err)

	assert.True(t, out.Rows[0][0].Equal(core.Text("Alice")))
	assert.True(t, out.Rows[2][0].Equal(core.Text("Cara")))
}

func TestSortUnknownColumn(t *testing.T) {
	tbl := ages(t, core.Number(30))

	_, err := (&Sort{Column: "salary"}).Apply(context.Background(), tbl)

	var cfgErr *core.ConfigError
	require.ErrorAs(t, err, &cfgErr)
	assert.Contains(t, err.Error(), `"salary"`)
	assert.Contains(t, err.Error(), "id, age", "message lists the available columns")
}

func TestSortDoesNotMutateInput(t *testing.T) {
	tbl := ages(t, core.Number(30), core.Number(25))

	_, err := (&Sort{Column: "age"}).Apply(context.Background(), tbl)
	require.NoError(t, err)

	assert.Equal(t, []int{0, 1}, agesOut(tbl), "input row order unchanged")
}

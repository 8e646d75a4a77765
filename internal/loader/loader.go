// Package loader reads delimited text files into core.Table values.
//
// The first line names the columns. Cells that are empty, or that match
// the configured NA token, become the missing marker. Column types are
// inferred after reading: a column whose every present value parses as
// a number is numeric, anything else is text.
package loader

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"

	"github.com/tabwell-labs/tabwell/pkg/core"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Options configures a load.
type Options struct {
	// NAToken is an additional sentinel treated as missing, e.g. "NA".
	// The empty field is always missing regardless of this setting.
	NAToken string
	// Comma is the field delimiter. Zero means ','.
	Comma rune
}

// Load reads the file at path into a table.
//
// It returns *core.NotFoundError when the path does not exist and
// *core.FormatError when a row's field count differs from the header.
func Load(path string, opts Options) (*core.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &core.NotFoundError{Path: path}
		}
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	return Read(f, path, opts)
}

// Read parses CSV from r. The name is used in error messages only.
func Read(r io.Reader, name string, opts Options) (*core.Table, error) {
	br := bufio.NewReader(r)
	if lead, err := br.Peek(len(utf8BOM)); err == nil && bytes.Equal(lead, utf8BOM) {
		_, _ = br.Discard(len(utf8BOM))
	}

	cr := csv.NewReader(br)
	if opts.Comma != 0 {
		cr.Comma = opts.Comma
	}

	header, err := cr.Read()
	if err == io.EOF {
		return nil, &core.FormatError{Path: name, Msg: "empty file, expected a header row"}
	}
	if err != nil {
		return nil, formatErr(name, err)
	}

	// encoding/csv enforces the header's field count on every
	// subsequent record once the first read fixes it.
	var raw [][]string
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, formatErr(name, err)
		}
		raw = append(raw, record)
	}

	return build(header, raw, opts.NAToken), nil
}

// build converts raw string records to typed cells using per-column
// inference over the present values.
func build(header []string, raw [][]string, naToken string) *core.Table {
	numeric := make([]bool, len(header))
	for col := range header {
		numeric[col] = columnIsNumeric(raw, col, naToken)
	}

	t := core.NewTable(header)
	for _, record := range raw {
		row := make([]core.Cell, len(header))
		for col, field := range record {
			row[col] = parseCell(field, naToken, numeric[col])
		}
		_ = t.AppendRow(row)
	}
	return t
}

// columnIsNumeric reports whether every present value in the column
// parses as a float and at least one value is present.
func columnIsNumeric(raw [][]string, col int, naToken string) bool {
	present := false
	for _, record := range raw {
		field := record[col]
		if isMissingField(field, naToken) {
			continue
		}
		if _, err := strconv.ParseFloat(field, 64); err != nil {
			return false
		}
		present = true
	}
	return present
}

func parseCell(field, naToken string, numeric bool) core.Cell {
	if isMissingField(field, naToken) {
		return core.Missing()
	}
	if numeric {
		v, _ := strconv.ParseFloat(field, 64)
		return core.Number(v)
	}
	return core.Text(field)
}

func isMissingField(field, naToken string) bool {
	return field == "" || (naToken != "" && field == naToken)
}

// formatErr maps csv parse errors onto the format error taxonomy,
// preserving the 1-based line number when the parser reports one.
func formatErr(name string, err error) error {
	var pe *csv.ParseError
	if errors.As(err, &pe) {
		msg := pe.Err.Error()
		if errors.Is(pe.Err, csv.ErrFieldCount) {
			msg = "wrong number of fields relative to header"
		}
		return &core.FormatError{Path: name, Line: pe.Line, Msg: msg}
	}
	return &core.FormatError{Path: name, Msg: err.Error()}
}

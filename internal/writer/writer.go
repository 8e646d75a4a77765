// Package writer serializes core.Table values back to delimited text.
//
// Output is written to a temporary file in the destination directory
// and renamed into place, so a failed run never leaves a partial file.
package writer

import (
	"encoding/csv"
	"os"
	"path/filepath"

	"github.com/tabwell-labs/tabwell/pkg/core"
)

// Options configures a write.
type Options struct {
	// Comma is the field delimiter. Zero means ','.
	Comma rune
}

// Write serializes the table to path: header line first, then one line
// per row in table order. Missing cells render as empty fields, numbers
// in canonical decimal form. Failures surface as *core.IOError.
func Write(path string, t *core.Table, opts Options) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return &core.IOError{Path: path, Err: err}
	}
	defer func() {
		// No-op on success, where the temp file is already renamed.
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
	}()

	cw := csv.NewWriter(tmp)
	if opts.Comma != 0 {
		cw.Comma = opts.Comma
	}

	if err := cw.Write(t.Columns); err != nil {
		return &core.IOError{Path: path, Err: err}
	}

	record := make([]string, t.NumCols())
	for _, row := range t.Rows {
		for i, cell := range row {
			record[i] = cell.String()
		}
		if err := cw.Write(record); err != nil {
			return &core.IOError{Path: path, Err: err}
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return &core.IOError{Path: path, Err: err}
	}
	if err := tmp.Sync(); err != nil {
		return &core.IOError{Path: path, Err: err}
	}
	if err := tmp.Close(); err != nil {
		return &core.IOError{Path: path, Err: err}
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return &core.IOError{Path: path, Err: err}
	}
	return nil
}

// Package output renders command results in the selected mode.
// Text mode draws tables with go-pretty, markdown mode emits pipe
// tables, and json mode emits a single JSON document. Auto resolves to
// text with drawn tables on a terminal and plain tab-separated text
// when piped.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"golang.org/x/term"
)

// Mode selects the render format.
type Mode string

const (
	ModeAuto     Mode = "auto"
	ModeText     Mode = "text"
	ModeJSON     Mode = "json"
	ModeMarkdown Mode = "markdown"
)

// ParseMode validates a mode name. Empty means auto.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case "", ModeAuto:
		return ModeAuto, nil
	case ModeText, ModeJSON, ModeMarkdown:
		return Mode(s), nil
	}
	return "", fmt.Errorf("unknown output format %q (want auto, text, markdown, or json)", s)
}

// Renderer writes command output in one mode.
type Renderer struct {
	out    io.Writer
	errOut io.Writer
	mode   Mode
	tty    bool
}

// NewRenderer creates a renderer. Auto mode probes once, at
// construction, whether out itself is a terminal; a buffer or pipe
// gets plain output even when the process's stdout is a TTY.
func NewRenderer(out, errOut io.Writer, mode Mode) *Renderer {
	if mode == "" {
		mode = ModeAuto
	}
	tty := false
	if f, ok := out.(*os.File); ok {
		tty = term.IsTerminal(int(f.Fd()))
	}
	return &Renderer{
		out:    out,
		errOut: errOut,
		mode:   mode,
		tty:    tty,
	}
}

// Textf writes formatted prose. Suppressed in json mode so command
// output stays machine-parseable.
func (r *Renderer) Textf(format string, args ...any) {
	if r.mode == ModeJSON {
		return
	}
	fmt.Fprintf(r.out, format, args...)
}

// Errorf writes to the error stream in every mode.
func (r *Renderer) Errorf(format string, args ...any) {
	fmt.Fprintf(r.errOut, format, args...)
}

// JSON writes v as indented JSON. Only emits in json mode.
func (r *Renderer) JSON(v any) error {
	if r.mode != ModeJSON {
		return nil
	}
	enc := json.NewEncoder(r.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// Table renders a header and rows. Suppressed in json mode; callers
// emit the same data through JSON instead.
func (r *Renderer) Table(header []string, rows [][]string) {
	switch r.mode {
	case ModeJSON:
		return
	case ModeMarkdown:
		r.renderPretty(header, rows, true)
	case ModeText:
		r.renderPretty(header, rows, false)
	default: // auto
		if r.tty {
			r.renderPretty(header, rows, false)
		} else {
			r.renderPlain(header, rows)
		}
	}
}

func (r *Renderer) renderPretty(header []string, rows [][]string, markdown bool) {
	t := table.NewWriter()
	t.SetOutputMirror(r.out)
	t.SetStyle(table.StyleLight)

	hdr := make(table.Row, len(header))
	for i, h := range header {
		hdr[i] = h
	}
	t.AppendHeader(hdr)

	for _, row := range rows {
		tr := make(table.Row, len(row))
		for i, v := range row {
			tr[i] = v
		}
		t.AppendRow(tr)
	}

	if markdown {
		t.RenderMarkdown()
		return
	}
	t.Render()
}

func (r *Renderer) renderPlain(header []string, rows [][]string) {
	fmt.Fprintln(r.out, strings.Join(header, "\t"))
	for _, row := range rows {
		fmt.Fprintln(r.out, strings.Join(row, "\t"))
	}
}

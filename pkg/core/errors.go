package core

import (
	"fmt"
	"strings"
)

// NotFoundError reports a missing input file.
type NotFoundError struct {
	Path string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("input file not found: %s", e.Path)
}

// FormatError reports malformed input, typically a row whose field
// count differs from the header. Line is 1-based.
type FormatError struct {
	Path string
	Line int
	Msg  string
}

func (e *FormatError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s:%d: %s", e.Path, e.Line, e.Msg)
	}
	return fmt.Sprintf("%s: %s", e.Path, e.Msg)
}

// ConfigError reports an invalid option, such as an unknown
// missing-value policy or a sort column not present in the table.
type ConfigError struct {
	Msg string
}

func (e *ConfigError) Error() string {
	return e.Msg
}

// NewConfigError formats a ConfigError.
func NewConfigError(format string, args ...any) *ConfigError {
	return &ConfigError{Msg: fmt.Sprintf(format, args...)}
}

// UnknownColumnError builds the ConfigError for a sort column that does
// not exist, listing the columns that do.
func UnknownColumnError(name string, available []string) *ConfigError {
	return NewConfigError("column %q not found; available columns: %s", name, strings.Join(available, ", "))
}

// IOError reports a failure to create or write the output file.
type IOError struct {
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("cannot write %s: %v", e.Path, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

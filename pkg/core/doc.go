// Package core defines the shared language of the tabwell system.
//
// This package contains:
//   - The tabular data model (Table, Cell)
//   - The error taxonomy (NotFoundError, FormatError, ConfigError, IOError)
//
// The Golden Rule: pkg/core imports ONLY stdlib.
// All other packages depend on core, not the reverse.
package core

package config

import (
	"github.com/tabwell-labs/tabwell/internal/cli/output"
	"github.com/tabwell-labs/tabwell/pkg/core"
)

// Validate checks option values that do not depend on the input table.
// Missing-policy and sort-column validation happen in the engine,
// where the table is known.
func (c *Config) Validate() error {
	if _, err := output.ParseMode(c.Format); err != nil {
		return core.NewConfigError("%v", err)
	}
	return nil
}

// Package main is the entry point for the tabwell CLI.
package main

import (
	"os"

	"github.com/tabwell-labs/tabwell/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}

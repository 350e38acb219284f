// Package main provides the dbscript CLI, an interactive SQL script builder.
package main

import (
	"os"

	"github.com/leapstack-labs/dbscript/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}

// Package main provides the loctab CLI.
package main

import (
	"os"

	"github.com/stridelabs/loctab/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}

// Package main provides the entry point for the taskforge CLI.
package main

import (
	"os"

	"github.com/taskforge/taskforge/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(cli.ExitCode(err))
	}
}

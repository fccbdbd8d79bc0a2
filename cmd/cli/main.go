// Package main is the entry point for the msgctl CLI.
// The CLI is the developer terminal tool for interacting with the msghub API.
package main

import (
	"msghub/cmd/cli/cmd"
	"os"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

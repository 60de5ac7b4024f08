// Copyright (c) 2026 Keymaster Team
// Secret Santa - gift exchange page generator
// This source code is licensed under the MIT license found in the LICENSE file.

// Command-line entrypoint for Secret Santa.
//
// Usage:
//
//	go run . [flags]
//	./secretsanta [flags]
//
// This draws the assignment and writes the pages. See --help for options.
package main

import (
	"os"

	"github.com/toeirei/secretsanta/internal/logging"
	"github.com/toeirei/secretsanta/ui/cli"
)

// main is the entrypoint for the Secret Santa CLI.
func main() {
	if err := cli.Execute(); err != nil {
		logging.Errorf("secretsanta: %v", err)
		os.Exit(1)
	}
}

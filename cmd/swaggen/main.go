// SPDX-FileCopyrightText: 2026 swaggen
// SPDX-License-Identifier: FSL-1.1-MIT

// Package main is the entry point for the swaggen CLI.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/swaggen/swaggen/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.Code)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

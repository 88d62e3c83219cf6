// Package main is the entry point for the panphon CLI.
//
// Usage:
//
//	panphon [flags] <command> [args]
//
// Commands:
//
//	features  - Render the feature vectors of IPA segments
//	segments  - Split words into IPA segments
//	distance  - Compute the feature edit distance between two words
//	search    - Find inventory segments matching a feature notation
//	validate  - Check a feature table file for format errors
package main

import (
	"fmt"
	"os"

	"github.com/armendk/panphon/cmd/panphon/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

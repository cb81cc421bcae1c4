// Package main provides the CLI entrypoint for starfield-miner.
//
// starfield-miner reads xEdit JSON exports of Starfield plugins, resolves
// the records into a graph and mines tabular data from it:
//   - mine: writes delimiter-separated rows for a named miner
//   - inspect: dumps one record looked up by form id or editor id
//   - miners: lists the available miners
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

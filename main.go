// Package main is the entry point for the metametrics CLI tool, which fetches
// melee.gg tournament pairings and computes archetype matchup statistics.
package main

import "github.com/pable/go-meta-metrics/cmd"

func main() {
	cmd.Execute()
}

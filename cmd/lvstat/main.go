// SPDX-License-Identifier: MIT

// Command lvstat evaluates the Pareto distribution from the command line.
//
//	lvstat eval cdf 3 6 12 --shape 2 --scale 3
//	lvstat moments --config pareto.yaml --output table
//	lvstat sample -n 5 --seed 42
package main

import "github.com/katalvlaran/lvstat/cmd/lvstat/commands"

func main() {
	commands.Execute()
}

package main

import (
	"github.com/zhuchkkll-blip/nbClass/cmd"
)

// main is the entry point for the nbclass CLI.
func main() {
	// Execute the root command defined in the cmd package.
	// This handles all command-line parsing, configuration, and execution.
	cmd.Execute()
}

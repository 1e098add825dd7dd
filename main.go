// main is the entrypoint for the brandscope CLI.
package main

import (
	"github.com/brandscope/brandscope/cmd"
	"github.com/brandscope/brandscope/internal/contract"
)

func main() {
	if err := cmd.Execute(); err != nil {
		contract.LogFatal("Command failed", err)
	}
}

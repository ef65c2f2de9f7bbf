package main

import (
	"fmt"

	"github.com/pbrl/climate-rl/experiments"
)

// main entry point to all the experiments
func main() {
	rootCommand := experiments.GetRootCommand()
	if err := rootCommand.Execute(); err != nil {
		fmt.Println(err)
	}
}

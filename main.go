package main

import (
	"os"

	"github.com/gateprep/gatefeed/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

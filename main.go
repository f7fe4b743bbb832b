package main

import (
	"os"

	"github.com/kastheco/swatch/cmd"
)

func main() {
	if err := cmd.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

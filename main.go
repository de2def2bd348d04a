package main

import (
	"os"

	"github.com/ragline/ragline/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

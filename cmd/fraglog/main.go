package main

import (
	"os"

	"github.com/ariel-frischer/fraglog/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}

package main

import (
	"os"

	"github.com/osmtools/phonelint/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}

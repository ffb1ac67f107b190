package main

import (
	"os"

	"github.com/stacklab/realign/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}

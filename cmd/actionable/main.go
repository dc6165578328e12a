package main

import (
	"os"

	"github.com/amirphiladam2/Actionable-sub001/internal/cli"
)

var version = "dev"

func main() {
	if err := cli.Execute(version); err != nil {
		os.Exit(1)
	}
}

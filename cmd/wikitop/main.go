package main

import (
	"os"

	"wikitop/internal/cli"
	"wikitop/internal/output"
)

func main() {
	if err := cli.Execute(); err != nil {
		output.PrintError(err.Error())
		os.Exit(1)
	}
}

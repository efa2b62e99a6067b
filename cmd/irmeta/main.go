package main

import (
	"os"

	"github.com/fatih/color"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

var red = color.New(color.FgRed).SprintfFunc()

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fatal(err)
	}
	os.Exit(0)
}

package main

import (
	"os"

	"github.com/terassyi/kesu/internal/errors"
)

var (
	version   = "dev"
	commit    = "unknown"
	buildDate = "unknown"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		formatter := errors.NewFormatter(os.Stderr, globalCfg.noColor)
		formatter.Print(err)
		os.Exit(1)
	}
}

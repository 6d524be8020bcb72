package main

import (
	"fmt"
	"os"

	"github.com/thenoetrevino/doable/cmd"
	"github.com/thenoetrevino/doable/internal/cli"
)

func main() {
	if err := cmd.Execute(); err != nil {
		// Commands print their own errors; cobra's usage errors are not
		if !cli.IsReported(err) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(cli.ExitUsage)
		}
		os.Exit(cli.ExitCode(err))
	}
}

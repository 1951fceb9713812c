package main

import (
	"os"

	"sdkshell/internal/cli"
	"sdkshell/internal/ui"
)

func main() {
	if err := cli.Execute(); err != nil {
		ui.ErrorMsg("%s", err)
		os.Exit(1)
	}
}

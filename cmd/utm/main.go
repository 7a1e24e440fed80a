package main

import (
	"os"

	"github.com/itsblakeyeon/smart-utm-builder/internal/cli"
)

func main() {
	cmd := cli.NewRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

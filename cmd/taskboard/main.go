package main

import (
	"fmt"
	"os"

	"taskboard/internal/cli"
)

func main() {
	app := cli.NewAppWithDefaults()

	root := cli.NewRootCommand(app)
	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

package main

import (
	"fmt"
	"os"

	"github.com/roach88/shapes/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "shapes:", err)
		os.Exit(cli.GetExitCode(err))
	}
}

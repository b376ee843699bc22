package main

import (
	"context"
	"os"

	"github.com/charmbracelet/fang"

	"github.com/passgauge/passgauge/internal/cmd"
)

func main() {
	if err := fang.Execute(context.Background(), cmd.RootCmd); err != nil {
		os.Exit(1)
	}

	// check encodes the strength bucket in the exit status.
	os.Exit(cmd.ExitCode())
}

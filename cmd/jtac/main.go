// Command jtac parses, formats and checks values with the culture aware
// type managers.
package main

import (
	"context"
	"os"

	"github.com/plblum/jTAC-sub002/cmd/jtac/internal/cli"
)

func main() {
	app := cli.NewApp(os.Stdout, os.Stderr)
	if err := app.CreateRootCommand().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

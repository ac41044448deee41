package main

import (
	"fmt"
	"os"

	"github.com/reshetovitsme/tg-wp-bridge/internal/transport/cli"
)

func main() {
	app := cli.NewApp(cli.DefaultDeps())
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

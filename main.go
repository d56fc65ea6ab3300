package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/thenoetrevino/paso-board/cmd"
	"github.com/thenoetrevino/paso-board/internal/cli"
)

func main() {
	if err := cmd.Execute(); err != nil {
		// Commands report their own failures through the output formatter
		var exitErr *cli.CodedError
		if !errors.As(err, &exitErr) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(cli.ExitCodeFor(err))
	}
}

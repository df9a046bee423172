package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/Azhovan/formatvalidate/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		if !errors.Is(err, cli.ErrInvalidForm) {
			fmt.Fprintln(os.Stderr, "error:", err)
		}
		os.Exit(1)
	}
}

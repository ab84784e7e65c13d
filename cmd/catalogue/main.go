// Command catalogue generates, indexes and queries a website template
// catalogue.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/roach88/catalogue/internal/cli"
)

func main() {
	err := cli.NewRootCommand().Execute()
	if err == nil {
		return
	}

	// Commands report their own failures. Anything else is a flag or
	// argument error from cobra.
	var exitErr *cli.ExitError
	if !errors.As(err, &exitErr) {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(cli.ExitCommandError)
	}
	os.Exit(exitErr.Code)
}

// Command rrun compiles and runs a single Rust source file, or delegates to cargo inside a project.
package main

import (
	"os"

	"github.com/NielsdaWheelz/rrun/internal/cli/cobra"
	"github.com/NielsdaWheelz/rrun/internal/errors"
)

func main() {
	err := cobra.Execute(os.Stdin, os.Stdout, os.Stderr, os.Args[1:])
	if err != nil {
		if cobra.GetGlobalOpts().Verbose {
			errors.PrintWithOptions(os.Stderr, err, errors.PrintOptions{Verbose: true})
		} else {
			errors.Print(os.Stderr, err)
		}
		os.Exit(errors.ExitCode(err))
	}
}

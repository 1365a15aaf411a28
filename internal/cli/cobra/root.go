// Package cobra provides the Cobra-based command line for rrun.
package cobra

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/NielsdaWheelz/rrun/internal/commands"
	"github.com/NielsdaWheelz/rrun/internal/config"
	"github.com/NielsdaWheelz/rrun/internal/errors"
	"github.com/NielsdaWheelz/rrun/internal/exec"
	"github.com/NielsdaWheelz/rrun/internal/fs"
	"github.com/NielsdaWheelz/rrun/internal/paths"
	"github.com/NielsdaWheelz/rrun/internal/version"
)

// GlobalOpts holds options main needs after the command has run.
type GlobalOpts struct {
	Verbose bool
}

var globalOpts GlobalOpts

// GetGlobalOpts returns the parsed global options.
func GetGlobalOpts() GlobalOpts {
	return globalOpts
}

// InvocationArgs is the parsed positional part of an invocation.
type InvocationArgs struct {
	// Input is the optional source file or binary name; empty when absent.
	Input string
	// Trailing holds everything after "--", in order; nil when absent or empty.
	Trailing []string
}

// parseInvocation splits cobra's positional args at the "--" position.
// dash is cmd.ArgsLenAtDash(): -1 when no "--" was given.
func parseInvocation(args []string, dash int) (InvocationArgs, error) {
	before := args
	var after []string
	if dash >= 0 {
		before, after = args[:dash], args[dash:]
	}
	if len(before) > 1 {
		return InvocationArgs{}, errors.NewWithDetails(errors.EUsage,
			fmt.Sprintf("accepts at most 1 input before '--', received %d", len(before)),
			map[string]string{"hint": "forward program arguments after '--', e.g. rrun main -- arg1 arg2"})
	}

	var inv InvocationArgs
	if len(before) == 1 {
		inv.Input = before[0]
	}
	if len(after) > 0 {
		inv.Trailing = append([]string(nil), after...)
	}
	return inv, nil
}

// NewRootCmd creates the root cobra command for rrun.
func NewRootCmd() *cobra.Command {
	var configPath string
	var keep bool
	var dryRun bool

	globalOpts = GlobalOpts{}

	rootCmd := &cobra.Command{
		Use:   "rrun [flags] [input] [-- args...]",
		Short: "Compile and run a single Rust file, or cargo run inside a project",
		Long: `rrun - run Rust code without ceremony

Outside a git work tree, rrun compiles the given source file with rustc into the
temp directory and runs it ("foo" means "foo.rs").
Inside a git work tree it runs "cargo run"; an input selects the binary (--bin).
Arguments after "--" are passed to the program unchanged.

The config file is config.yaml in $RRUN_CONFIG_DIR, $XDG_CONFIG_HOME/rrun or
~/.config/rrun, first match wins; --config names a file directly.

Exit status: 0 when the program succeeded, 1 when the compiler or program failed,
2 when rrun itself could not do what was asked.`,
		Example: `  rrun hello                 # rustc hello.rs, then run it
  rrun hello.rs -- -n 3      # forward "-n 3" to the program
  rrun                       # inside a project: cargo run
  rrun server -- --port 80   # inside a project: cargo run --bin server -- --port 80`,
		Version:       version.FullVersion(),
		SilenceErrors: true, // main prints errors
		SilenceUsage:  true,
		Args: func(cmd *cobra.Command, args []string) error {
			_, err := parseInvocation(args, cmd.ArgsLenAtDash())
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			inv, err := parseInvocation(args, cmd.ArgsLenAtDash())
			if err != nil {
				return err
			}

			cwd, err := os.Getwd()
			if err != nil {
				return errors.Wrap(errors.EInternal, "failed to get working directory", err)
			}
			homeDir, _ := os.UserHomeDir()

			fsys := fs.NewRealFS()
			cfg, err := config.Resolve(fsys, configPath, paths.OSEnv{}, homeDir)
			if err != nil {
				return err
			}

			var cr exec.CommandRunner = exec.NewRealRunner()
			if globalOpts.Verbose {
				cr = exec.NewTracingRunner(cr, cmd.ErrOrStderr())
			}

			opts := commands.RunOpts{
				Input:    inv.Input,
				Trailing: inv.Trailing,
				Config:   cfg,
				Keep:     keep,
				DryRun:   dryRun,
			}
			streams := exec.Streams{
				In:  cmd.InOrStdin(),
				Out: cmd.OutOrStdout(),
				Err: cmd.ErrOrStderr(),
			}
			return commands.Run(context.Background(), cr, fsys, cwd, opts, streams)
		},
	}

	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return errors.Wrap(errors.EUsage, err.Error(), err)
	})

	flags := rootCmd.Flags()
	flags.BoolVar(&globalOpts.Verbose, "verbose", false, "print each spawned command and detailed error context")
	flags.StringVar(&configPath, "config", "", "config file (default: $XDG_CONFIG_HOME/rrun/config.yaml)")
	flags.BoolVar(&keep, "keep", false, "keep the compiled binary, named <stem>-<8 hex>.rrun in the temp directory")
	flags.BoolVar(&dryRun, "dry-run", false, "print the commands that would run, without running them")

	rootCmd.CompletionOptions.DisableDefaultCmd = true

	return rootCmd
}

// Execute runs the root command with the given streams and arguments.
// This is the main entry point from main.go.
func Execute(stdin io.Reader, stdout, stderr io.Writer, args []string) error {
	rootCmd := NewRootCmd()
	rootCmd.SetIn(stdin)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)
	rootCmd.SetArgs(args)
	return rootCmd.Execute()
}

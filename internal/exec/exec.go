// Package exec runs external commands for rrun.
// All subprocess spawning goes through CommandRunner so callers can be tested with fakes.
package exec

import (
	"bytes"
	"context"
	"errors"
	"io"
	osexec "os/exec"
)

// CmdResult is the outcome of a command that was started.
// Stdout and Stderr are empty when the corresponding stream was attached via RunOpts.
type CmdResult struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// Success reports whether the command exited with status 0.
func (r CmdResult) Success() bool {
	return r.ExitCode == 0
}

// RunOpts controls how a command is started.
type RunOpts struct {
	// Dir is the working directory; empty means the current directory.
	Dir string

	// Stdin, Stdout and Stderr connect the child directly to these streams.
	// A nil Stdout or Stderr is captured into CmdResult instead; a nil Stdin reads from the null device.
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// CommandRunner starts external commands.
type CommandRunner interface {
	// Run starts name with args, waits for it to exit and reports its exit code.
	// A non-zero exit is not an error; err is set only when the process could not be started.
	Run(ctx context.Context, name string, args []string, opts RunOpts) (CmdResult, error)

	// LookPath resolves an executable name against PATH.
	LookPath(file string) (string, error)
}

// RealRunner runs commands with os/exec.
type RealRunner struct{}

// NewRealRunner returns a CommandRunner backed by os/exec.
func NewRealRunner() *RealRunner {
	return &RealRunner{}
}

// Run implements CommandRunner.Run.
// The context is only checked before the process starts; a started child is always waited for.
func (r *RealRunner) Run(ctx context.Context, name string, args []string, opts RunOpts) (CmdResult, error) {
	if err := ctx.Err(); err != nil {
		return CmdResult{}, err
	}

	cmd := osexec.Command(name, args...)
	cmd.Dir = opts.Dir

	var stdout, stderr bytes.Buffer
	cmd.Stdin = opts.Stdin
	cmd.Stdout = opts.Stdout
	if cmd.Stdout == nil {
		cmd.Stdout = &stdout
	}
	cmd.Stderr = opts.Stderr
	if cmd.Stderr == nil {
		cmd.Stderr = &stderr
	}

	err := cmd.Run()
	result := CmdResult{Stdout: stdout.String(), Stderr: stderr.String()}
	if err != nil {
		var exitErr *osexec.ExitError
		if errors.As(err, &exitErr) {
			// -1 when the child was killed by a signal
			result.ExitCode = exitErr.ExitCode()
			return result, nil
		}
		return result, err
	}
	return result, nil
}

// LookPath implements CommandRunner.LookPath.
func (r *RealRunner) LookPath(file string) (string, error) {
	return osexec.LookPath(file)
}

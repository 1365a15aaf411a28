package exec

import (
	"context"
	"fmt"
	"io"

	"github.com/kballard/go-shellquote"
)

// TracingRunner prints every command to W before delegating to Inner.
type TracingRunner struct {
	Inner CommandRunner
	W     io.Writer
}

// NewTracingRunner wraps inner so each spawned command is echoed to w as "+ name args...".
func NewTracingRunner(inner CommandRunner, w io.Writer) *TracingRunner {
	return &TracingRunner{Inner: inner, W: w}
}

// Run implements CommandRunner.Run.
func (t *TracingRunner) Run(ctx context.Context, name string, args []string, opts RunOpts) (CmdResult, error) {
	line := "+ " + FormatCommand(name, args)
	if opts.Dir != "" {
		line += "  (in " + opts.Dir + ")"
	}
	_, _ = fmt.Fprintln(t.W, line)
	return t.Inner.Run(ctx, name, args, opts)
}

// LookPath implements CommandRunner.LookPath.
func (t *TracingRunner) LookPath(file string) (string, error) {
	return t.Inner.LookPath(file)
}

// FormatCommand renders a command line with shell quoting where needed.
func FormatCommand(name string, args []string) string {
	return shellquote.Join(append([]string{name}, args...)...)
}

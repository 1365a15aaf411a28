package project

import (
	"context"

	"github.com/NielsdaWheelz/rrun/internal/exec"
)

// Prober reports whether the working directory is inside a project.
type Prober func(ctx context.Context) bool

// GitProber returns a Prober that asks the version-control tool for its top-level directory.
// Only the exit status matters; output is captured and discarded, and a tool that
// cannot be started counts as "not in a project".
func GitProber(cr exec.CommandRunner, vcs, cwd string) Prober {
	return func(ctx context.Context) bool {
		result, err := cr.Run(ctx, vcs, []string{"rev-parse", "--show-toplevel"}, exec.RunOpts{Dir: cwd})
		if err != nil {
			return false
		}
		return result.Success()
	}
}

// Select probes for a project root and picks the run mode.
func Select(ctx context.Context, probe Prober, input, sourceExt string) (Mode, bool) {
	return SelectMode(input, probe(ctx), sourceExt)
}

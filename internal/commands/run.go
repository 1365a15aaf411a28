// Package commands implements the rrun launcher logic.
package commands

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/NielsdaWheelz/rrun/internal/config"
	"github.com/NielsdaWheelz/rrun/internal/errors"
	"github.com/NielsdaWheelz/rrun/internal/exec"
	"github.com/NielsdaWheelz/rrun/internal/fs"
	"github.com/NielsdaWheelz/rrun/internal/project"
)

// RunOpts holds options for a launcher invocation.
type RunOpts struct {
	// Input is the optional positional argument: a source file outside a project,
	// a binary name inside one. Empty means not given.
	Input string

	// Trailing are the arguments after "--", forwarded to the launched program.
	// nil or empty means none were given.
	Trailing []string

	Config config.Config

	// Keep leaves the staged binary in place after the run.
	Keep bool

	// DryRun prints the planned commands instead of running them.
	DryRun bool
}

// Step is one external command of a plan.
type Step struct {
	// Tool names the step in error messages ("rustc", "cargo run", or the staged binary path).
	Tool string
	Name string
	Args []string
	Dir  string
}

// Plan is the ordered list of commands an invocation will run.
type Plan struct {
	Mode  project.Mode
	Steps []Step

	// Staged is the compiled binary path in single-file mode, and StagingDir its directory.
	Staged     string
	StagingDir string
}

// Run executes a launcher invocation in cwd.
// It returns nil when the launched program succeeded, errors.ChildFailed() when
// the compiler or program exited non-zero, and a coded error (exit 2) when the
// invocation could not be performed at all.
func Run(ctx context.Context, cr exec.CommandRunner, fsys fs.FS, cwd string, opts RunOpts, streams exec.Streams) error {
	cfg := opts.Config

	probe := project.GitProber(cr, cfg.VCSTool(), cwd)
	mode, ok := project.Select(ctx, probe, opts.Input, cfg.SourceExtension())
	if !ok {
		return errors.NewWithDetails(errors.ENothingToRun, "nothing to run", map[string]string{
			"cwd":  cwd,
			"hint": "pass a source file, or run inside a project",
		})
	}

	plan, err := BuildPlan(fsys, cwd, mode, opts)
	if err != nil {
		return err
	}

	if opts.DryRun {
		return printPlan(streams, plan)
	}
	return execute(ctx, cr, fsys, plan, opts.Keep, streams)
}

// BuildPlan turns a run mode into concrete commands.
// In single-file mode it checks that the source is a regular file first.
func BuildPlan(fsys fs.FS, cwd string, mode project.Mode, opts RunOpts) (Plan, error) {
	cfg := opts.Config
	plan := Plan{Mode: mode}

	switch mode.Kind {
	case project.SingleFile:
		src := mode.Path
		absSrc := src
		if !filepath.IsAbs(absSrc) {
			absSrc = filepath.Join(cwd, src)
		}
		if !fs.IsRegularFile(fsys, absSrc) {
			return Plan{}, errors.NewWithDetails(errors.ESourceNotFound,
				fmt.Sprintf("'%s' is not a file", src),
				map[string]string{"input": opts.Input, "path": absSrc})
		}

		plan.StagingDir = cfg.StagingDir(fsys.TempDir())
		plan.Staged = StagedBinaryPath(plan.StagingDir, absSrc, cfg.BinaryExtension())

		compiler := cfg.CompilerTool()
		args := append([]string{}, cfg.CompilerArgs...)
		args = append(args, "-o", plan.Staged, src)
		plan.Steps = []Step{
			{Tool: compiler, Name: compiler, Args: args, Dir: cwd},
			{Tool: plan.Staged, Name: plan.Staged, Args: opts.Trailing, Dir: cwd},
		}

	case project.ProjectDefault, project.ProjectNamed:
		tool := cfg.BuildToolName()
		args := append([]string{"run"}, cfg.BuildToolArgs...)
		if mode.Kind == project.ProjectNamed {
			args = append(args, "--bin", mode.Bin)
		}
		if len(opts.Trailing) > 0 {
			args = append(args, "--")
			args = append(args, opts.Trailing...)
		}
		plan.Steps = []Step{{Tool: tool + " run", Name: tool, Args: args, Dir: cwd}}

	default:
		return Plan{}, errors.New(errors.EInternal, "unknown run mode "+mode.String())
	}

	return plan, nil
}

func execute(ctx context.Context, cr exec.CommandRunner, fsys fs.FS, plan Plan, keep bool, streams exec.Streams) error {
	if plan.Staged != "" {
		if err := fsys.MkdirAll(plan.StagingDir, 0o755); err != nil {
			return errors.WrapWithDetails(errors.EInternal, "failed to create staging directory", err,
				map[string]string{"path": plan.StagingDir})
		}
	}
	if plan.Staged != "" && !keep {
		defer func() { _ = fs.RemoveUnder(fsys, plan.Staged, plan.StagingDir) }()
	}

	for _, step := range plan.Steps {
		ok, err := exec.RunInherited(ctx, cr, step.Name, step.Args, step.Dir, streams)
		if err != nil {
			return spawnError(cr, step, err)
		}
		if !ok {
			return errors.ChildFailed()
		}
	}
	return nil
}

func spawnError(cr exec.CommandRunner, step Step, err error) error {
	details := map[string]string{
		"tool":    step.Tool,
		"command": exec.FormatCommand(step.Name, step.Args),
	}
	if !filepath.IsAbs(step.Name) {
		if _, lookErr := cr.LookPath(step.Name); lookErr != nil {
			details["hint"] = fmt.Sprintf("'%s' was not found on PATH", step.Name)
		}
	}
	return errors.WrapWithDetails(errors.EToolSpawnFailed,
		fmt.Sprintf("execute '%s' failed: %v", step.Tool, err), err, details)
}

func printPlan(streams exec.Streams, plan Plan) error {
	if _, err := fmt.Fprintf(streams.Out, "# mode: %s\n", plan.Mode); err != nil {
		return errors.Wrap(errors.EInternal, "failed to write plan", err)
	}
	for _, step := range plan.Steps {
		if _, err := fmt.Fprintln(streams.Out, exec.FormatCommand(step.Name, step.Args)); err != nil {
			return errors.Wrap(errors.EInternal, "failed to write plan", err)
		}
	}
	return nil
}

package exec

import (
	"context"
	"io"
)

// Streams are the standard streams handed to a foreground child.
type Streams struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer
}

// RunInherited runs a command in the foreground with the given streams attached
// and reports whether it exited successfully.
// err is non-nil only when the program could not be spawned.
func RunInherited(ctx context.Context, cr CommandRunner, name string, args []string, dir string, s Streams) (bool, error) {
	result, err := cr.Run(ctx, name, args, RunOpts{
		Dir:    dir,
		Stdin:  s.In,
		Stdout: s.Out,
		Stderr: s.Err,
	})
	if err != nil {
		return false, err
	}
	return result.Success(), nil
}

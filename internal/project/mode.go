// Package project decides how an invocation should be run:
// a standalone source file, or a build-tool run inside a project.
package project

import (
	"fmt"
	"strings"
)

// Kind tags a Mode.
type Kind int

const (
	// SingleFile compiles one source file and runs the result.
	SingleFile Kind = iota + 1
	// ProjectDefault runs the project's default binary.
	ProjectDefault
	// ProjectNamed runs a named binary of the project.
	ProjectNamed
)

func (k Kind) String() string {
	switch k {
	case SingleFile:
		return "single-file"
	case ProjectDefault:
		return "project"
	case ProjectNamed:
		return "project-bin"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Mode is the chosen run mode. Path is set for SingleFile, Bin for ProjectNamed.
type Mode struct {
	Kind Kind
	Path string
	Bin  string
}

func (m Mode) String() string {
	switch m.Kind {
	case SingleFile:
		return "single-file(" + m.Path + ")"
	case ProjectNamed:
		return "project-bin(" + m.Bin + ")"
	default:
		return m.Kind.String()
	}
}

// SelectMode picks the run mode from the optional input and whether a project root exists.
// ok is false when there is nothing to run: no project and no input.
func SelectMode(input string, inProject bool, sourceExt string) (mode Mode, ok bool) {
	if inProject {
		if input != "" {
			return Mode{Kind: ProjectNamed, Bin: input}, true
		}
		return Mode{Kind: ProjectDefault}, true
	}
	if input == "" {
		return Mode{}, false
	}
	return Mode{Kind: SingleFile, Path: NormalizeSource(input, sourceExt)}, true
}

// NormalizeSource appends ext to input unless it already ends with it.
func NormalizeSource(input, ext string) string {
	if strings.HasSuffix(input, ext) {
		return input
	}
	return input + ext
}

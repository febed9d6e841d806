package domain

import "strings"

// OutputMode selects how a child process's streams are handled.
type OutputMode int

const (
	// OutputCaptured buffers stdout and stderr and returns them as text.
	OutputCaptured OutputMode = iota
	// OutputPassthrough connects the child to the operator's terminal streams.
	OutputPassthrough
)

// String returns the mode name.
func (m OutputMode) String() string {
	if m == OutputPassthrough {
		return "passthrough"
	}
	return "captured"
}

// Invocation describes one external process execution.
type Invocation struct {
	// Args is the command vector. With Shell set, Args[0] is the script for sh -c
	// and the remaining elements are bound to $1..$n without word splitting.
	Args     []string
	Mode     OutputMode
	Elevated bool
	Shell    bool
	// Dir is the working directory; empty inherits the installer's.
	Dir string
}

// String renders the invocation for logs.
func (i Invocation) String() string {
	s := strings.Join(i.Args, " ")
	if i.Shell {
		s = "sh -c " + s
	}
	if i.Elevated {
		s = ElevationCommand + " " + s
	}
	return s
}

// ProcessResult is the outcome of one external process. Stdout and Stderr are only
// populated in captured mode.
type ProcessResult struct {
	ExitCode int
	Stdout   string
	Stderr   string
}

// Succeeded reports whether the process exited with status zero.
func (r ProcessResult) Succeeded() bool {
	return r.ExitCode == 0
}

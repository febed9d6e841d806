// Package detector inspects the operator's terminal.
package detector

import (
	"os"

	"golang.org/x/term"
)

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	if f == nil {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// IsCI reports whether the CI environment variable marks a non-interactive run.
func IsCI() bool {
	ci := os.Getenv("CI")
	return ci == "true" || ci == "1"
}

// Interactive reports whether live output should be rendered on a pseudo-terminal:
// both stdin and stdout must be terminals and the run must not be under CI.
func Interactive() bool {
	return IsTerminal(os.Stdin) && IsTerminal(os.Stdout) && !IsCI()
}

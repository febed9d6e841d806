// Package shell provides the os/exec backed process runner.
package shell

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"syscall"
	"time"

	"github.com/creack/pty"
	"go.trai.ch/ouroinstall/internal/adapters/detector"
	"go.trai.ch/ouroinstall/internal/core/domain"
	"go.trai.ch/zerr"
)

// DefaultGracePeriod is how long a cancelled child may take to exit after SIGINT
// before it is killed.
const DefaultGracePeriod = 5 * time.Second

// Runner implements ports.ProcessRunner using os/exec and pty.
type Runner struct {
	stdin       io.Reader
	stdout      io.Writer
	stderr      io.Writer
	usePTY      bool
	elevation   []string
	gracePeriod time.Duration
}

// NewRunner creates a Runner bound to the operator's terminal streams.
// Passthrough commands run on a pseudo-terminal when the session is interactive.
func NewRunner() *Runner {
	return &Runner{
		stdin:       os.Stdin,
		stdout:      os.Stdout,
		stderr:      os.Stderr,
		usePTY:      detector.Interactive(),
		elevation:   []string{domain.ElevationCommand},
		gracePeriod: DefaultGracePeriod,
	}
}

// WithStreams replaces the streams used in passthrough mode.
func (r *Runner) WithStreams(stdin io.Reader, stdout, stderr io.Writer) *Runner {
	r.stdin = stdin
	r.stdout = stdout
	r.stderr = stderr
	return r
}

// WithPTY forces pseudo-terminal use on or off for passthrough commands.
func (r *Runner) WithPTY(enable bool) *Runner {
	r.usePTY = enable
	return r
}

// WithElevation replaces the command prepended to elevated invocations.
func (r *Runner) WithElevation(prefix ...string) *Runner {
	r.elevation = prefix
	return r
}

// WithGracePeriod sets how long a cancelled child may run after SIGINT.
func (r *Runner) WithGracePeriod(d time.Duration) *Runner {
	r.gracePeriod = d
	return r
}

// Run executes inv and waits for it to exit. A non-zero exit is returned as data.
func (r *Runner) Run(ctx context.Context, inv domain.Invocation) (domain.ProcessResult, error) {
	argv := r.commandLine(inv)
	if len(argv) == 0 {
		return domain.ProcessResult{}, nil
	}

	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...) //nolint:gosec // argument vector built by the orchestrator
	cmd.Dir = inv.Dir
	cmd.Cancel = func() error {
		return cmd.Process.Signal(os.Interrupt)
	}
	cmd.WaitDelay = r.gracePeriod

	var stdout, stderr bytes.Buffer
	var err error

	switch {
	case inv.Mode == domain.OutputCaptured:
		cmd.Stdout = &stdout
		cmd.Stderr = &stderr
		err = cmd.Run()
	case r.usePTY && !inv.Elevated:
		// Elevated commands keep the real terminal so a password prompt can be answered.
		err = r.runOnPTY(cmd)
	default:
		cmd.Stdin = r.stdin
		cmd.Stdout = r.stdout
		cmd.Stderr = r.stderr
		err = cmd.Run()
	}

	result := domain.ProcessResult{
		ExitCode: exitCode(cmd, err),
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
	}

	// The child shares the operator's process group, so Ctrl-C can end it before
	// ctx is cancelled.
	if ctx.Err() != nil || interruptedExit(cmd.ProcessState) {
		return result, zerr.With(zerr.Wrap(domain.ErrInterrupted, "command interrupted"), "command", inv.String())
	}

	var exitErr *exec.ExitError
	if err != nil && !errors.As(err, &exitErr) {
		return result, zerr.With(zerr.Wrap(err, domain.ErrProcessStartFailed.Error()), "command", inv.String())
	}

	return result, nil
}

func (r *Runner) runOnPTY(cmd *exec.Cmd) error {
	ptmx, err := pty.Start(cmd)
	if err != nil {
		return zerr.Wrap(err, "failed to start pty")
	}

	ioDone := make(chan struct{})
	go func() {
		defer close(ioDone)
		defer func() { _ = ptmx.Close() }()
		// The pty merges stdout and stderr.
		_, _ = io.Copy(r.stdout, ptmx)
	}()

	err = cmd.Wait()
	<-ioDone
	return err
}

// commandLine builds the final argument vector for inv.
func (r *Runner) commandLine(inv domain.Invocation) []string {
	if len(inv.Args) == 0 {
		return nil
	}

	args := inv.Args
	if inv.Shell {
		// sh -c <script> sh <args...> binds the remaining args to $1..$n unsplit.
		args = append([]string{"sh", "-c", inv.Args[0], "sh"}, inv.Args[1:]...)
	}

	if inv.Elevated && len(r.elevation) > 0 {
		argv := make([]string, 0, len(r.elevation)+len(args))
		argv = append(argv, r.elevation...)
		return append(argv, args...)
	}

	return append([]string(nil), args...)
}

// interruptedExit reports whether the child was ended by SIGINT or SIGTERM, or
// exited with the conventional interrupt status.
func interruptedExit(state *os.ProcessState) bool {
	if state == nil {
		return false
	}
	if ws, ok := state.Sys().(syscall.WaitStatus); ok && ws.Signaled() {
		return ws.Signal() == syscall.SIGINT || ws.Signal() == syscall.SIGTERM
	}
	return state.ExitCode() == domain.ExitInterrupted
}

func exitCode(cmd *exec.Cmd, err error) int {
	if cmd.ProcessState != nil {
		return cmd.ProcessState.ExitCode()
	}
	if err != nil {
		return -1
	}
	return 0
}

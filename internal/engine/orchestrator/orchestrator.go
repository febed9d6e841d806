// Package orchestrator maps installer commands to checked, fail-fast phase sequences.
package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/muesli/termenv"
	"go.trai.ch/ouroinstall/internal/core/domain"
	"go.trai.ch/ouroinstall/internal/core/ports"
	"go.trai.ch/ouroinstall/internal/ui/output"
	"go.trai.ch/ouroinstall/internal/ui/style"
	"go.trai.ch/zerr"
)

// Outcome messages.
const (
	MsgBuilt          = "build complete"
	MsgInstalled      = "installed"
	MsgTestsPassed    = "tests passed"
	MsgRemoved        = "removed"
	MsgNothingFound   = "nothing found"
	MsgCleaned        = "cleaned"
	MsgNothingToClean = "nothing to clean"
)

// Orchestrator drives one command through its phases. It is not safe for concurrent use.
type Orchestrator struct {
	probe       ports.EnvironmentProbe
	runner      ports.ProcessRunner
	buildSystem ports.BuildSystem
	fs          ports.FileSystem
	logger      ports.Logger
	tracer      ports.Tracer

	out   *termenv.Output
	state domain.State
	// detail is operator text (remediation, captured stderr) printed after the failure line.
	detail strings.Builder
}

// New creates a new Orchestrator writing operator reports to stderr.
func New(
	probe ports.EnvironmentProbe,
	runner ports.ProcessRunner,
	buildSystem ports.BuildSystem,
	fs ports.FileSystem,
	logger ports.Logger,
	tracer ports.Tracer,
) *Orchestrator {
	return &Orchestrator{
		probe:       probe,
		runner:      runner,
		buildSystem: buildSystem,
		fs:          fs,
		logger:      logger,
		tracer:      tracer,
		out:         output.New(os.Stderr),
	}
}

// WithOutput redirects remediation text, captured stderr and the install banner to w.
func (o *Orchestrator) WithOutput(w io.Writer) *Orchestrator {
	o.out = output.New(w)
	return o
}

// State returns the current state of the machine.
func (o *Orchestrator) State() domain.State {
	return o.state
}

// Execute runs cmd against cfg and returns its terminal outcome. Every phase failure
// is terminal; nothing is retried or rolled back.
func (o *Orchestrator) Execute(ctx context.Context, cmd domain.Command, cfg domain.BuildConfiguration) domain.CommandOutcome {
	o.state = domain.StateIdle
	o.detail.Reset()

	ctx, span := o.tracer.Start(ctx, cmd.String())
	defer span.End()
	span.SetAttribute("variant", cfg.Variant().String())
	span.SetAttribute("prefix", cfg.InstallPrefix())
	span.SetAttribute("jobs", cfg.JobCount())

	msg, err := o.dispatch(ctx, cmd, cfg)
	o.transition(domain.StateDone)

	switch {
	case err == nil:
		return domain.Succeeded(msg)
	case errors.Is(err, domain.ErrInterrupted) || ctx.Err() != nil:
		span.RecordError(domain.ErrInterrupted)
		o.logger.Warn("interrupted")
		return domain.Interrupted()
	default:
		span.RecordError(err)
		o.logger.Error(err)
		o.flushDetail()
		return domain.Failed(err)
	}
}

func (o *Orchestrator) dispatch(ctx context.Context, cmd domain.Command, cfg domain.BuildConfiguration) (string, error) {
	if cmd.RequiresToolchain() {
		if err := o.phase(ctx, domain.StateChecking, o.check); err != nil {
			return "", err
		}
	}

	switch cmd {
	case domain.CommandBuild:
		if err := o.build(ctx, cfg); err != nil {
			return "", err
		}
		return MsgBuilt, nil
	case domain.CommandInstall:
		if err := o.build(ctx, cfg); err != nil {
			return "", err
		}
		if err := o.phase(ctx, domain.StateInstalling, func(ctx context.Context) error {
			return o.install(ctx, cfg)
		}); err != nil {
			return "", err
		}
		return MsgInstalled, nil
	case domain.CommandTest:
		return o.test(ctx, cfg)
	case domain.CommandUninstall:
		var msg string
		err := o.phase(ctx, domain.StateUninstalling, func(ctx context.Context) error {
			var err error
			msg, err = o.uninstall(ctx, cfg)
			return err
		})
		return msg, err
	case domain.CommandClean:
		var msg string
		err := o.phase(ctx, domain.StateCleaning, func(_ context.Context) error {
			var err error
			msg, err = o.clean(cfg)
			return err
		})
		return msg, err
	default:
		return "", zerr.With(zerr.Wrap(domain.ErrUnknownCommand, "cannot dispatch"), "command", int(cmd))
	}
}

// phase enters state and runs fn inside a span, refusing to start once ctx is cancelled.
func (o *Orchestrator) phase(ctx context.Context, state domain.State, fn func(context.Context) error) error {
	if ctx.Err() != nil {
		return interrupted(state)
	}
	o.transition(state)

	ctx, span := o.tracer.Start(ctx, state.String())
	defer span.End()

	err := fn(ctx)
	if err != nil {
		span.RecordError(err)
	}
	return err
}

func (o *Orchestrator) transition(next domain.State) {
	o.logger.Debug(fmt.Sprintf("state %s -> %s", o.state, next))
	o.state = next
}

// check verifies tools in priority order, failing on the first absent one, then
// evaluates every library so the complete missing set is reported at once.
func (o *Orchestrator) check(ctx context.Context) error {
	o.logger.Info("checking dependencies...")

	for _, req := range domain.RequiredTools() {
		if !o.toolAvailable(req) {
			o.attach(domain.FormatMissingTool(req))
			return zerr.With(zerr.Wrap(domain.ErrMissingTool, req.Label+" not found"), "tool", req.Key)
		}
		o.logger.Debug(req.Label + " found")
	}

	libs := domain.RequiredLibraries()
	var missing []domain.DependencyRequirement
	for _, req := range libs {
		if ctx.Err() != nil {
			return interrupted(domain.StateChecking)
		}
		if !o.probe.IsLibraryAvailable(ctx, req.Key) {
			missing = append(missing, req)
			continue
		}
		o.logger.Debug(req.Label + " found")
	}

	if len(missing) > 0 {
		o.attach(domain.FormatMissingLibraries(missing))
		err := zerr.Wrap(domain.ErrMissingLibrary, fmt.Sprintf("%d of %d libraries missing", len(missing), len(libs)))
		return zerr.With(err, "missing", strings.Join(domain.MissingKeys(missing), ", "))
	}

	o.logger.Info("all dependencies found")
	return nil
}

func (o *Orchestrator) toolAvailable(req domain.DependencyRequirement) bool {
	if req.Key == domain.CompilerKey {
		return o.probe.IsCompilerAvailable()
	}
	return o.probe.IsToolAvailable(req.Key)
}

// build runs Configuring then Building.
func (o *Orchestrator) build(ctx context.Context, cfg domain.BuildConfiguration) error {
	if err := o.phase(ctx, domain.StateConfiguring, func(ctx context.Context) error {
		return o.configure(ctx, cfg)
	}); err != nil {
		return err
	}
	return o.phase(ctx, domain.StateBuilding, func(ctx context.Context) error {
		return o.compile(ctx, cfg)
	})
}

func (o *Orchestrator) configure(ctx context.Context, cfg domain.BuildConfiguration) error {
	inv := o.buildSystem.Configure(cfg)
	o.logger.Info(fmt.Sprintf("configuring %s build...", cfg.Variant()))

	res, err := o.run(ctx, inv)
	if err != nil {
		return err
	}
	if !res.Succeeded() {
		o.attach(res.Stderr)
		return exitFailure(domain.ErrConfigureFailed, inv, res)
	}
	return nil
}

func (o *Orchestrator) compile(ctx context.Context, cfg domain.BuildConfiguration) error {
	inv := o.buildSystem.Build(cfg)
	o.logger.Info(fmt.Sprintf("building (using %d jobs)...", cfg.JobCount()))

	res, err := o.run(ctx, inv)
	if err != nil {
		return err
	}
	if !res.Succeeded() {
		return exitFailure(domain.ErrBuildFailed, inv, res)
	}

	o.logger.Info(MsgBuilt)
	o.reportArtifact(cfg)
	return nil
}

// reportArtifact logs the produced executable as a sanity signal. A missing or
// empty artifact is a warning, not a failure.
func (o *Orchestrator) reportArtifact(cfg domain.BuildConfiguration) {
	path := domain.ArtifactPath(cfg.BuildDir())
	if !o.fs.Exists(path) {
		o.logger.Warn(path + " was not produced")
		return
	}

	size, err := o.fs.Size(path)
	if err != nil {
		o.logger.Warn(fmt.Sprintf("cannot read %s: %v", path, err))
		return
	}
	if size == 0 {
		o.logger.Warn(path + " is empty")
		return
	}

	digest, err := o.fs.Digest(path)
	if err != nil {
		o.logger.Debug(fmt.Sprintf("cannot hash %s: %v", path, err))
		o.logger.Info(fmt.Sprintf("artifact %s (%s)", path, formatSize(size)))
		return
	}
	o.logger.Info(fmt.Sprintf("artifact %s (%s, xxhash %s)", path, formatSize(size), digest))
}

func (o *Orchestrator) install(ctx context.Context, cfg domain.BuildConfiguration) error {
	inv := o.buildSystem.Install(cfg)
	o.logger.Info("installing to " + cfg.InstallPrefix() + "...")

	res, err := o.run(ctx, inv)
	if err != nil {
		return err
	}
	if !res.Succeeded() {
		return exitFailure(domain.ErrInstallFailed, inv, res)
	}

	bin := domain.InstalledBinaryPath(cfg.InstallPrefix())
	if size, err := o.fs.Size(bin); err == nil {
		o.logger.Info(fmt.Sprintf("installed %s (%s)", bin, formatSize(size)))
	} else {
		o.logger.Warn(bin + " not found after install")
	}

	o.banner()
	return nil
}

// test builds first only when the build marker is absent, then runs the test suite.
func (o *Orchestrator) test(ctx context.Context, cfg domain.BuildConfiguration) (string, error) {
	if !o.fs.Exists(domain.BuildMarkerPath(cfg.BuildDir())) {
		o.logger.Info("project not built, building first...")
		if err := o.build(ctx, cfg); err != nil {
			return "", err
		}
	}

	err := o.phase(ctx, domain.StateTesting, func(ctx context.Context) error {
		inv := o.buildSystem.Test(cfg)
		o.logger.Info("running tests...")

		res, err := o.run(ctx, inv)
		if err != nil {
			return err
		}
		if !res.Succeeded() {
			return exitFailure(domain.ErrTestsFailed, inv, res)
		}
		o.logger.Info(MsgTestsPassed)
		return nil
	})
	if err != nil {
		return "", err
	}
	return MsgTestsPassed, nil
}

// uninstall removes every installed file that exists. A failed removal does not stop
// the remaining ones, but fails the command.
func (o *Orchestrator) uninstall(ctx context.Context, cfg domain.BuildConfiguration) (string, error) {
	prefix := cfg.InstallPrefix()
	removed := 0
	var failed []string

	for _, path := range domain.InstalledFiles(prefix) {
		if !o.fs.Exists(path) {
			o.logger.Debug(path + " is not installed")
			continue
		}
		if ctx.Err() != nil {
			return "", interrupted(domain.StateUninstalling)
		}

		o.logger.Info("removing " + path + "...")
		inv := domain.Invocation{
			Args:     []string{"rm", "-f", path},
			Mode:     domain.OutputCaptured,
			Elevated: true,
		}
		res, err := o.run(ctx, inv)
		switch {
		case errors.Is(err, domain.ErrInterrupted):
			return "", err
		case err != nil:
			o.logger.Warn(fmt.Sprintf("failed to remove %s: %v", path, err))
			failed = append(failed, path)
		case !res.Succeeded():
			o.logger.Warn(fmt.Sprintf("failed to remove %s: rm exited with status %d", path, res.ExitCode))
			o.attach(res.Stderr)
			failed = append(failed, path)
		default:
			o.logger.Info("removed " + path)
			removed++
		}
	}

	if len(failed) > 0 {
		err := zerr.Wrap(domain.ErrRemoveFailed, fmt.Sprintf("%d installed file(s) could not be removed", len(failed)))
		return "", zerr.With(err, "paths", strings.Join(failed, ", "))
	}
	if removed == 0 {
		o.logger.Warn("no installed files found under " + prefix)
		return MsgNothingFound, nil
	}
	return MsgRemoved, nil
}

func (o *Orchestrator) clean(cfg domain.BuildConfiguration) (string, error) {
	dir := cfg.BuildDir()
	if !o.fs.Exists(dir) {
		o.logger.Warn(MsgNothingToClean)
		return MsgNothingToClean, nil
	}

	o.logger.Info("removing " + dir + "...")
	if err := o.fs.RemoveAll(dir); err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrCleanFailed.Error()), "path", dir)
	}
	o.logger.Info(MsgCleaned)
	return MsgCleaned, nil
}

func (o *Orchestrator) run(ctx context.Context, inv domain.Invocation) (domain.ProcessResult, error) {
	o.logger.Debug("exec: " + inv.String())
	return o.runner.Run(ctx, inv)
}

func (o *Orchestrator) attach(text string) {
	if text == "" {
		return
	}
	o.detail.WriteString(text)
	if !strings.HasSuffix(text, "\n") {
		o.detail.WriteByte('\n')
	}
}

func (o *Orchestrator) flushDetail() {
	if o.detail.Len() == 0 {
		return
	}
	_, _ = fmt.Fprint(o.out, "\n"+o.detail.String())
	o.detail.Reset()
}

func (o *Orchestrator) banner() {
	rule := strings.Repeat("=", 50)
	success := o.out.String("SUCCESS!").Bold().Foreground(o.out.Color(string(style.Green)))

	_, _ = fmt.Fprintf(o.out, "\n%s\n%s %s\n%s\n\nRun:\n  %s\n\nMan page:\n  man %s\n\n",
		rule, style.Check, success, rule, domain.ArtifactName, domain.ArtifactName)
}

func exitFailure(sentinel error, inv domain.Invocation, res domain.ProcessResult) error {
	name := ""
	if len(inv.Args) > 0 {
		name = inv.Args[0]
	}
	err := zerr.Wrap(sentinel, fmt.Sprintf("%s exited with status %d", name, res.ExitCode))
	err = zerr.With(err, "command", inv.String())
	return zerr.With(err, "exit_code", res.ExitCode)
}

func interrupted(state domain.State) error {
	return zerr.With(zerr.Wrap(domain.ErrInterrupted, "cancelled"), "phase", state.String())
}

func formatSize(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := int64(unit), 0
	for m := n / unit; m >= unit; m /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(n)/float64(div), "KMGTPE"[exp])
}

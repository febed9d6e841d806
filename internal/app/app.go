// Package app implements the application layer for ouroinstall.
package app

import (
	"context"
	"errors"
	"fmt"
	"runtime"

	"go.trai.ch/ouroinstall/internal/build"
	"go.trai.ch/ouroinstall/internal/core/domain"
	"go.trai.ch/ouroinstall/internal/core/ports"
	"go.trai.ch/zerr"
)

// Orchestrator runs one resolved command to completion.
type Orchestrator interface {
	Execute(ctx context.Context, cmd domain.Command, cfg domain.BuildConfiguration) domain.CommandOutcome
}

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	orchestrator Orchestrator
	logger       ports.Logger
	cpuCount     func() int
}

// New creates a new App instance.
func New(loader ports.ConfigLoader, orch Orchestrator, log ports.Logger) *App {
	return &App{
		configLoader: loader,
		orchestrator: orch,
		logger:       log,
		cpuCount:     runtime.NumCPU,
	}
}

// WithCPUCount replaces the host parallelism probe.
// This is primarily used for testing.
func (a *App) WithCPUCount(fn func() int) *App {
	a.cpuCount = fn
	return a
}

// Options holds the operator's flags for one invocation.
type Options struct {
	Debug    bool
	DebugLog bool
	// Prefix overrides the install prefix when non-empty.
	Prefix string
	// Source is the source tree; empty means the working directory.
	Source string
}

// Run resolves the build configuration and executes cmd.
// It returns nil on success, an error wrapping domain.ErrInterrupted when the
// operator cancelled, and an error joined with domain.ErrCommandFailed otherwise.
func (a *App) Run(ctx context.Context, cmd domain.Command, opts Options) error {
	cfg, err := a.Configure(opts)
	if err != nil {
		return err
	}

	a.logger.Info(fmt.Sprintf("ouroinstall %s: %s", build.Version, cmd))
	a.logger.Info("source: " + cfg.SourceDir())
	a.logger.Debug(fmt.Sprintf("variant=%s prefix=%s build_dir=%s jobs=%d",
		cfg.Variant(), cfg.InstallPrefix(), cfg.BuildDir(), cfg.JobCount()))

	outcome := a.orchestrator.Execute(ctx, cmd, cfg)
	switch {
	case outcome.Success:
		return nil
	case outcome.Interrupted:
		return zerr.With(zerr.Wrap(domain.ErrInterrupted, "command cancelled"), "command", cmd.String())
	default:
		return errors.Join(domain.ErrCommandFailed, outcome.Err)
	}
}

// Configure merges flags over the config file over defaults into a BuildConfiguration.
func (a *App) Configure(opts Options) (domain.BuildConfiguration, error) {
	source := opts.Source
	if source == "" {
		source = "."
	}

	settings, err := a.configLoader.Load(source)
	if err != nil {
		return domain.BuildConfiguration{}, zerr.Wrap(err, "failed to load configuration")
	}

	variant, err := resolveVariant(opts, settings)
	if err != nil {
		return domain.BuildConfiguration{}, err
	}

	prefix := opts.Prefix
	if prefix == "" {
		prefix = settings.Prefix
	}

	return domain.NewBuildConfiguration(domain.ConfigurationParams{
		Variant:   variant,
		Prefix:    prefix,
		JobCount:  a.cpuCount(),
		SourceDir: source,
		BuildDir:  settings.BuildDir,
	})
}

func resolveVariant(opts Options, settings domain.Settings) (domain.Variant, error) {
	switch {
	case opts.DebugLog:
		return domain.VariantDebugWithLogging, nil
	case opts.Debug:
		return domain.VariantDebug, nil
	default:
		return domain.ParseVariant(settings.Variant)
	}
}

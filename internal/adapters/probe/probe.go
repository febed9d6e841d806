// Package probe answers toolchain availability questions about the host.
package probe

import (
	"context"
	"os/exec"

	"go.trai.ch/ouroinstall/internal/core/domain"
	"go.trai.ch/ouroinstall/internal/core/ports"
)

// PkgConfig is the executable used for library queries.
const PkgConfig = "pkg-config"

// Probe implements ports.EnvironmentProbe.
type Probe struct {
	runner   ports.ProcessRunner
	lookPath func(string) (string, error)
}

// New creates a Probe that queries libraries through runner.
func New(runner ports.ProcessRunner) *Probe {
	return &Probe{
		runner:   runner,
		lookPath: exec.LookPath,
	}
}

// WithLookPath replaces the search path resolver.
func (p *Probe) WithLookPath(fn func(string) (string, error)) *Probe {
	p.lookPath = fn
	return p
}

// IsToolAvailable reports whether name resolves on PATH.
func (p *Probe) IsToolAvailable(name string) bool {
	_, err := p.lookPath(name)
	return err == nil
}

// IsCompilerAvailable reports whether any accepted C++ compiler resolves on PATH.
func (p *Probe) IsCompilerAvailable() bool {
	for _, candidate := range domain.CompilerCandidates() {
		if p.IsToolAvailable(candidate) {
			return true
		}
	}
	return false
}

// IsLibraryAvailable runs pkg-config --exists for key. Any failure, including
// pkg-config itself being absent, counts as unavailable.
func (p *Probe) IsLibraryAvailable(ctx context.Context, key string) bool {
	res, err := p.runner.Run(ctx, domain.Invocation{
		Args: []string{PkgConfig, "--exists", key},
		Mode: domain.OutputCaptured,
	})
	if err != nil {
		return false
	}
	return res.Succeeded()
}

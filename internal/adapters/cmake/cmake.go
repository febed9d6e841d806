// Package cmake builds the CMake and CTest invocations for the installer.
package cmake

import (
	"strconv"

	"go.trai.ch/ouroinstall/internal/core/domain"
)

const (
	cmakeBin = "cmake"
	ctestBin = "ctest"
)

// BuildSystem implements ports.BuildSystem for CMake projects.
type BuildSystem struct{}

// New returns a CMake BuildSystem.
func New() *BuildSystem {
	return &BuildSystem{}
}

// Configure returns "cmake -S <source> -B <build>" with the variant and prefix definitions.
// The generator's stderr is needed for the failure report, so output is captured.
func (b *BuildSystem) Configure(cfg domain.BuildConfiguration) domain.Invocation {
	args := []string{cmakeBin, "-S", cfg.SourceDir(), "-B", cfg.BuildDir()}
	args = append(args, defines(cfg)...)
	return domain.Invocation{Args: args, Mode: domain.OutputCaptured}
}

// Build returns "cmake --build <build> -j<jobs>".
func (b *BuildSystem) Build(cfg domain.BuildConfiguration) domain.Invocation {
	return domain.Invocation{
		Args: []string{cmakeBin, "--build", cfg.BuildDir(), "-j" + strconv.Itoa(cfg.JobCount())},
		Mode: domain.OutputPassthrough,
	}
}

// Install returns the elevated "cmake --install <build>".
func (b *BuildSystem) Install(cfg domain.BuildConfiguration) domain.Invocation {
	return domain.Invocation{
		Args:     []string{cmakeBin, "--install", cfg.BuildDir()},
		Mode:     domain.OutputPassthrough,
		Elevated: true,
	}
}

// Test returns "ctest --test-dir <build> --output-on-failure".
func (b *BuildSystem) Test(cfg domain.BuildConfiguration) domain.Invocation {
	return domain.Invocation{
		Args: []string{ctestBin, "--test-dir", cfg.BuildDir(), "--output-on-failure"},
		Mode: domain.OutputPassthrough,
	}
}

// defines renders the -D flags: build type, then diagnostic logging, then prefix.
func defines(cfg domain.BuildConfiguration) []string {
	args := []string{"-DCMAKE_BUILD_TYPE=" + cfg.Variant().BuildType()}
	if cfg.Variant().DebugLogging() {
		args = append(args, "-D"+domain.DebugLogDefine+"=ON")
	}
	if prefix, ok := cfg.PrefixOverride(); ok {
		args = append(args, "-DCMAKE_INSTALL_PREFIX="+prefix)
	}
	return args
}

package ports

import "go.trai.ch/ouroinstall/internal/core/domain"

// BuildSystem translates a BuildConfiguration into generator, driver and test-runner
// invocations. Implementations only build argument vectors; they never run anything.
type BuildSystem interface {
	// Configure returns the generator invocation.
	Configure(cfg domain.BuildConfiguration) domain.Invocation

	// Build returns the compile invocation, parallelised over cfg.JobCount().
	Build(cfg domain.BuildConfiguration) domain.Invocation

	// Install returns the elevated install invocation.
	Install(cfg domain.BuildConfiguration) domain.Invocation

	// Test returns the test-runner invocation against the build directory.
	Test(cfg domain.BuildConfiguration) domain.Invocation
}

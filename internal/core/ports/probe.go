package ports

import "context"

// EnvironmentProbe answers read-only questions about the host toolchain.
// A negative answer is data for the caller's policy, never an error of the probe.
//
//go:generate go run go.uber.org/mock/mockgen -source=probe.go -destination=mocks/mock_probe.go -package=mocks
type EnvironmentProbe interface {
	// IsToolAvailable reports whether name resolves on the search path.
	IsToolAvailable(name string) bool

	// IsCompilerAvailable reports whether any C++ compiler candidate resolves on the search path.
	IsCompilerAvailable() bool

	// IsLibraryAvailable reports whether the package-metadata query for key succeeds.
	IsLibraryAvailable(ctx context.Context, key string) bool
}

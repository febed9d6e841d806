package domain

import "go.trai.ch/zerr"

var (
	// ErrMissingTool is returned when a required executable is not found on PATH.
	ErrMissingTool = zerr.New("required tool not found")

	// ErrMissingLibrary is returned when one or more required libraries are not discoverable.
	ErrMissingLibrary = zerr.New("required libraries not found")

	// ErrExternalProcessFailed is returned when an external command exits non-zero.
	ErrExternalProcessFailed = zerr.New("external process failed")

	// ErrProcessStartFailed is returned when an external command cannot be started.
	ErrProcessStartFailed = zerr.New("failed to start process")

	// ErrConfigureFailed is returned when the build-system generator fails.
	ErrConfigureFailed = zerr.Wrap(ErrExternalProcessFailed, "cmake configure failed")

	// ErrBuildFailed is returned when the build driver fails.
	ErrBuildFailed = zerr.Wrap(ErrExternalProcessFailed, "build failed")

	// ErrInstallFailed is returned when the install step fails.
	ErrInstallFailed = zerr.Wrap(ErrExternalProcessFailed, "install failed")

	// ErrTestsFailed is returned when the test runner reports failure.
	ErrTestsFailed = zerr.Wrap(ErrExternalProcessFailed, "tests failed")

	// ErrRemoveFailed is returned when an installed file cannot be removed.
	ErrRemoveFailed = zerr.New("failed to remove installed file")

	// ErrCleanFailed is returned when the build directory cannot be removed.
	ErrCleanFailed = zerr.New("failed to remove build directory")

	// ErrInterrupted is returned when the operator cancels the running command.
	ErrInterrupted = zerr.New("interrupted")

	// ErrCommandFailed is returned by the application layer once a failure has been reported.
	ErrCommandFailed = zerr.New("command failed")

	// ErrUnknownCommand is returned when the requested command is not recognised.
	ErrUnknownCommand = zerr.New("unknown command, expected one of: build, install, clean, uninstall, test")

	// ErrUnknownVariant is returned when a configured build variant is not recognised.
	ErrUnknownVariant = zerr.New("unknown build variant, expected one of: release, debug, debug-log")

	// ErrInvalidPrefix is returned when the install prefix cannot be resolved.
	ErrInvalidPrefix = zerr.New("invalid install prefix")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrPathStatFailed is returned when stating a path fails.
	ErrPathStatFailed = zerr.New("failed to stat path")

	// ErrFileHashFailed is returned when hashing a file fails.
	ErrFileHashFailed = zerr.New("failed to hash file content")
)

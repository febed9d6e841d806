package domain

import "path/filepath"

const (
	// DefaultInstallPrefix is the install location when no prefix is given.
	DefaultInstallPrefix = "/usr/local"

	// BuildDirName is the default build output directory, relative to the source tree.
	BuildDirName = "build"

	// BuildMarkerName is the file whose presence in the build directory marks a completed configure.
	BuildMarkerName = "Makefile"

	// ArtifactName is the name of the produced executable.
	ArtifactName = "ouroboros"

	// ManPageName is the name of the installed manual page.
	ManPageName = "ouroboros.1"

	// ConfigFileName is the optional per-source-tree configuration file.
	ConfigFileName = "ouroinstall.yaml"

	// ElevationCommand is prepended to commands that need elevated privileges.
	ElevationCommand = "sudo"

	// DebugLogDefine is the CMake cache entry that compiles in diagnostic logging.
	DebugLogDefine = "OUROBOROS_DEBUG_LOG"
)

// BuildMarkerPath returns the build marker path inside buildDir.
func BuildMarkerPath(buildDir string) string {
	return filepath.Join(buildDir, BuildMarkerName)
}

// ArtifactPath returns the path of the built executable inside buildDir.
func ArtifactPath(buildDir string) string {
	return filepath.Join(buildDir, ArtifactName)
}

// InstalledBinaryPath returns where the executable lives under prefix.
func InstalledBinaryPath(prefix string) string {
	return filepath.Join(prefix, "bin", ArtifactName)
}

// InstalledManPagePath returns where the manual page lives under prefix.
func InstalledManPagePath(prefix string) string {
	return filepath.Join(prefix, "share", "man", "man1", ManPageName)
}

// InstalledFiles returns every file an install places under prefix, in removal order.
func InstalledFiles(prefix string) []string {
	return []string{
		InstalledBinaryPath(prefix),
		InstalledManPagePath(prefix),
	}
}

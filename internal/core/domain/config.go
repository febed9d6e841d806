package domain

import (
	"path/filepath"
	"strings"

	"go.trai.ch/zerr"
)

// Variant selects how the application is compiled.
type Variant int

const (
	// VariantRelease is an optimized build.
	VariantRelease Variant = iota
	// VariantDebug is a build with debug symbols.
	VariantDebug
	// VariantDebugWithLogging is a debug build with internal diagnostic logging compiled in.
	VariantDebugWithLogging
)

// ParseVariant maps config text to a Variant. Empty text selects VariantRelease.
func ParseVariant(s string) (Variant, error) {
	switch strings.TrimSpace(strings.ToLower(s)) {
	case "", "release":
		return VariantRelease, nil
	case "debug":
		return VariantDebug, nil
	case "debug-log", "debug_log", "debuglog":
		return VariantDebugWithLogging, nil
	default:
		return 0, zerr.With(zerr.Wrap(ErrUnknownVariant, "invalid variant"), "variant", s)
	}
}

// String returns the config spelling of the variant.
func (v Variant) String() string {
	switch v {
	case VariantRelease:
		return "release"
	case VariantDebug:
		return "debug"
	case VariantDebugWithLogging:
		return "debug-log"
	default:
		return "unknown"
	}
}

// BuildType returns the CMake build type for the variant.
func (v Variant) BuildType() string {
	if v == VariantRelease {
		return "Release"
	}
	return "Debug"
}

// DebugLogging reports whether the variant enables diagnostic logging in the artifact.
func (v Variant) DebugLogging() bool {
	return v == VariantDebugWithLogging
}

// BuildConfiguration is the immutable description of one installer invocation.
// It is fully resolved before any external process runs.
type BuildConfiguration struct {
	variant        Variant
	prefixOverride string
	jobCount       int
	sourceDir      string
	buildDir       string
}

// ConfigurationParams holds the raw inputs to NewBuildConfiguration.
type ConfigurationParams struct {
	Variant Variant
	// Prefix overrides DefaultInstallPrefix when non-empty.
	Prefix    string
	JobCount  int
	SourceDir string
	// BuildDir defaults to <SourceDir>/build. Relative paths are joined to SourceDir.
	BuildDir string
}

// NewBuildConfiguration validates params and returns a BuildConfiguration.
func NewBuildConfiguration(p ConfigurationParams) (BuildConfiguration, error) {
	sourceDir := p.SourceDir
	if sourceDir == "" {
		sourceDir = "."
	}
	sourceDir, err := filepath.Abs(sourceDir)
	if err != nil {
		return BuildConfiguration{}, zerr.With(zerr.Wrap(err, "failed to resolve source directory"), "path", p.SourceDir)
	}

	buildDir := p.BuildDir
	switch {
	case buildDir == "":
		buildDir = filepath.Join(sourceDir, BuildDirName)
	case !filepath.IsAbs(buildDir):
		buildDir = filepath.Join(sourceDir, buildDir)
	}

	prefix := p.Prefix
	if prefix != "" {
		prefix, err = filepath.Abs(prefix)
		if err != nil {
			return BuildConfiguration{}, zerr.With(zerr.Wrap(ErrInvalidPrefix, err.Error()), "prefix", p.Prefix)
		}
	}

	jobs := p.JobCount
	if jobs < 1 {
		jobs = 1
	}

	return BuildConfiguration{
		variant:        p.Variant,
		prefixOverride: prefix,
		jobCount:       jobs,
		sourceDir:      sourceDir,
		buildDir:       filepath.Clean(buildDir),
	}, nil
}

// Variant returns the build variant.
func (c BuildConfiguration) Variant() Variant { return c.variant }

// InstallPrefix returns the effective install prefix.
func (c BuildConfiguration) InstallPrefix() string {
	if c.prefixOverride != "" {
		return c.prefixOverride
	}
	return DefaultInstallPrefix
}

// PrefixOverride returns the operator-supplied prefix, if any.
func (c BuildConfiguration) PrefixOverride() (string, bool) {
	return c.prefixOverride, c.prefixOverride != ""
}

// JobCount returns the parallelism requested from the build driver.
func (c BuildConfiguration) JobCount() int { return c.jobCount }

// SourceDir returns the absolute source tree path.
func (c BuildConfiguration) SourceDir() string { return c.sourceDir }

// BuildDir returns the absolute build output directory.
func (c BuildConfiguration) BuildDir() string { return c.buildDir }

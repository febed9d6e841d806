package domain

// RequirementKind tags a DependencyRequirement.
type RequirementKind int

const (
	// KindTool is an executable that must resolve on PATH.
	KindTool RequirementKind = iota
	// KindLibrary is a library that must be discoverable through pkg-config.
	KindLibrary
)

// String returns the kind name.
func (k RequirementKind) String() string {
	if k == KindLibrary {
		return "library"
	}
	return "tool"
}

// Remediation is an install command for one reference platform.
type Remediation struct {
	Platform string
	Command  string
}

// DependencyRequirement is a named external capability the build needs.
type DependencyRequirement struct {
	Kind RequirementKind
	// Key is the executable name or the pkg-config query key.
	Key string
	// Label is the human-friendly name shown to the operator.
	Label string
	// Candidates lists interchangeable executables in priority order.
	// Empty means Key itself is the only candidate.
	Candidates  []string
	Remediation []Remediation
}

// CompilerKey identifies the C++ compiler requirement.
const CompilerKey = "c++"

const (
	platformArch   = "Arch Linux"
	platformDebian = "Debian/Ubuntu"
	platformFedora = "Fedora"
)

// RequiredTools returns the tool requirements in check order.
func RequiredTools() []DependencyRequirement {
	return []DependencyRequirement{
		{
			Kind:  KindTool,
			Key:   "cmake",
			Label: "cmake",
			Remediation: []Remediation{
				{Platform: platformArch, Command: "sudo pacman -S cmake"},
				{Platform: platformDebian, Command: "sudo apt install cmake"},
				{Platform: platformFedora, Command: "sudo dnf install cmake"},
			},
		},
		{
			Kind:       KindTool,
			Key:        CompilerKey,
			Label:      "C++ compiler",
			Candidates: CompilerCandidates(),
			Remediation: []Remediation{
				{Platform: platformArch, Command: "sudo pacman -S gcc"},
				{Platform: platformDebian, Command: "sudo apt install build-essential"},
				{Platform: platformFedora, Command: "sudo dnf install gcc-c++"},
			},
		},
		{
			Kind:  KindTool,
			Key:   "pkg-config",
			Label: "pkg-config",
			Remediation: []Remediation{
				{Platform: platformArch, Command: "sudo pacman -S pkgconf"},
				{Platform: platformDebian, Command: "sudo apt install pkg-config"},
				{Platform: platformFedora, Command: "sudo dnf install pkgconf-pkg-config"},
			},
		},
	}
}

// CompilerCandidates returns the accepted C++ compiler drivers in priority order.
func CompilerCandidates() []string {
	return []string{"g++", "clang++"}
}

// RequiredLibraries returns the library requirements. All are checked on every run.
func RequiredLibraries() []DependencyRequirement {
	libs := []struct{ key, label string }{
		{"libpipewire-0.3", "PipeWire"},
		{"libspa-0.2", "SPA (PipeWire)"},
		{"libmpg123", "mpg123"},
		{"sndfile", "libsndfile"},
		{"vorbisfile", "libvorbis"},
		{"icu-uc", "ICU"},
		{"icu-i18n", "ICU i18n"},
	}
	reqs := make([]DependencyRequirement, 0, len(libs))
	for _, l := range libs {
		reqs = append(reqs, DependencyRequirement{
			Kind:        KindLibrary,
			Key:         l.key,
			Label:       l.label,
			Remediation: LibraryRemediation(),
		})
	}
	return reqs
}

// LibraryRemediation returns the install commands that satisfy every required library.
func LibraryRemediation() []Remediation {
	return []Remediation{
		{
			Platform: platformArch,
			Command:  "sudo pacman -S pipewire mpg123 libsndfile libvorbis icu openssl",
		},
		{
			Platform: platformDebian,
			Command: "sudo apt install libpipewire-0.3-dev libspa-0.2-dev \\\n" +
				"  libmpg123-dev libsndfile1-dev libvorbis-dev \\\n" +
				"  libicu-dev libssl-dev",
		},
		{
			Platform: platformFedora,
			Command: "sudo dnf install pipewire-devel mpg123-devel libsndfile-devel \\\n" +
				"  libvorbis-devel libicu-devel openssl-devel",
		},
	}
}

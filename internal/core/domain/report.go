package domain

import (
	"fmt"
	"strings"
)

// FormatMissingTool renders the operator report for an absent tool.
func FormatMissingTool(req DependencyRequirement) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s not found!\n", req.Label)
	if len(req.Candidates) > 0 {
		fmt.Fprintf(&b, "Looked for: %s\n", strings.Join(req.Candidates, ", "))
	}
	b.WriteString("\nInstall it first:\n")
	for _, r := range req.Remediation {
		fmt.Fprintf(&b, "  %-15s%s\n", r.Platform+":", r.Command)
	}
	return b.String()
}

// FormatMissingLibraries renders the operator report for the complete set of absent libraries.
func FormatMissingLibraries(missing []DependencyRequirement) string {
	var b strings.Builder
	b.WriteString("Missing dependencies!\n\n")
	b.WriteString("The following libraries are required:\n")
	for _, req := range missing {
		fmt.Fprintf(&b, "  - %s (%s)\n", req.Label, req.Key)
	}
	b.WriteString("\nInstall them:\n")
	for _, r := range LibraryRemediation() {
		fmt.Fprintf(&b, "\n  %s:\n", r.Platform)
		for _, line := range strings.Split(r.Command, "\n") {
			fmt.Fprintf(&b, "    %s\n", line)
		}
	}
	return b.String()
}

// MissingKeys returns the keys of reqs, preserving order.
func MissingKeys(reqs []DependencyRequirement) []string {
	keys := make([]string, 0, len(reqs))
	for _, r := range reqs {
		keys = append(keys, r.Key)
	}
	return keys
}

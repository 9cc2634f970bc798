package analyzer

import "fmt"

// Dependency represents a single declared project dependency.
// Identity is the group:artifact pair; the version is carried along for
// compatibility checks but never participates in identity.
type Dependency struct {
	GroupID    string `json:"group_id"`
	ArtifactID string `json:"artifact_id"`
	Version    string `json:"version,omitempty"` // empty when managed by a parent/BOM
}

// Name returns the dependency identity in "group:artifact" form.
// This is the sole map and set key used throughout the analysis.
func (d Dependency) Name() string {
	return fmt.Sprintf("%s:%s", d.GroupID, d.ArtifactID)
}

// String renders the dependency with its version when one is declared.
func (d Dependency) String() string {
	if d.Version == "" {
		return d.Name()
	}
	return fmt.Sprintf("%s:%s", d.Name(), d.Version)
}

// BuildTool is the interface for build-system adapters (Maven, Gradle).
// Implementations never return errors: a manifest that cannot be read or
// parsed degrades to "unknown" / an empty dependency list so the analysis
// can always proceed.
type BuildTool interface {
	// Name identifies the build system, e.g. "Maven" or "Gradle".
	Name() string

	// IsApplicable reports whether this adapter's manifest exists in the
	// project directory.
	IsApplicable() bool

	// CurrentJavaVersion extracts the declared Java version from the
	// manifest, or "unknown" if it cannot be determined.
	CurrentJavaVersion() string

	// Dependencies extracts the declared dependencies from the manifest.
	// Returns an empty slice on failure.
	Dependencies() []Dependency
}

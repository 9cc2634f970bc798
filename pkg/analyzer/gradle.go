package analyzer

import (
	"os"
	"path/filepath"
	"regexp"

	"jvcheck/pkg/logger"
)

// GradleTool reads build.gradle and build.gradle.kts manifests.
// Gradle build scripts are code, not data, so extraction is regex-based and
// best-effort: declarations built up dynamically are invisible to it.
type GradleTool struct {
	projectDir string
	buildFile  string
}

var (
	// sourceCompatibility = "17" / sourceCompatibility = 17 / ... = '1.8'
	gradleSourceCompatRe = regexp.MustCompile(`sourceCompatibility\s*=\s*["']?(\d+)`)
	// JavaVersion.VERSION_17
	gradleJavaVersionRe = regexp.MustCompile(`JavaVersion\.VERSION_(\d+)`)
	// languageVersion = JavaLanguageVersion.of(21)
	gradleToolchainRe = regexp.MustCompile(`languageVersion\s*=\s*JavaLanguageVersion\.of\((\d+)\)`)
	// implementation 'group:artifact:version' and the paren/kts variants
	gradleDependencyRe = regexp.MustCompile(`(?:implementation|api|compile|testImplementation|testCompile)\s*\(?\s*["']([^:'"]+):([^:'"]+)(?::([^'"]+))?["']`)
)

// NewGradleTool creates a Gradle adapter rooted at projectDir. The Kotlin
// DSL script takes precedence when both build files exist.
func NewGradleTool(projectDir string) *GradleTool {
	t := &GradleTool{projectDir: projectDir}
	for _, name := range []string{"build.gradle.kts", "build.gradle"} {
		candidate := filepath.Join(projectDir, name)
		if _, err := os.Stat(candidate); err == nil {
			t.buildFile = candidate
			break
		}
	}
	return t
}

// Name returns "Gradle".
func (t *GradleTool) Name() string { return "Gradle" }

// IsApplicable reports whether a Gradle build script exists in the project
// directory.
func (t *GradleTool) IsApplicable() bool {
	return t.buildFile != ""
}

// CurrentJavaVersion extracts the declared Java version from the build
// script, trying sourceCompatibility, JavaVersion constants, and the
// toolchain language version in that order.
func (t *GradleTool) CurrentJavaVersion() string {
	content, ok := t.readBuildFile()
	if !ok {
		return "unknown"
	}

	for _, re := range []*regexp.Regexp{gradleSourceCompatRe, gradleJavaVersionRe, gradleToolchainRe} {
		if m := re.FindStringSubmatch(content); m != nil {
			return m[1]
		}
	}

	return "unknown"
}

// Dependencies extracts coordinate-style dependency declarations from the
// build script. Declarations without an explicit version (version catalogs,
// BOM-managed entries) yield a Dependency with an empty version.
func (t *GradleTool) Dependencies() []Dependency {
	content, ok := t.readBuildFile()
	if !ok {
		return []Dependency{}
	}

	deps := []Dependency{}
	for _, m := range gradleDependencyRe.FindAllStringSubmatch(content, -1) {
		deps = append(deps, Dependency{
			GroupID:    m[1],
			ArtifactID: m[2],
			Version:    m[3],
		})
	}

	return deps
}

func (t *GradleTool) readBuildFile() (string, bool) {
	if t.buildFile == "" {
		return "", false
	}
	data, err := os.ReadFile(t.buildFile)
	if err != nil {
		logger.Warnf("Gradle: could not read %s: %v", t.buildFile, err)
		return "", false
	}
	return string(data), true
}

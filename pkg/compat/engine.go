package compat

import (
	"fmt"

	"jvcheck/pkg/analyzer"
)

// Issue is a dependency whose declared version is below the known minimum
// for the target Java version.
type Issue struct {
	Dependency     string `json:"dependency"`
	CurrentVersion string `json:"current_version"`
	MinVersion     string `json:"min_version"`
	Severity       string `json:"severity"`
}

// Recommendation suggests a version upgrade for better support on the
// target Java version. Unlike an Issue it never affects the exit code.
type Recommendation struct {
	Dependency         string `json:"dependency"`
	CurrentVersion     string `json:"current_version"`
	RecommendedVersion string `json:"recommended_version"`
	Reason             string `json:"reason"`
}

// AnalysisResult is the complete outcome of one analysis run.
type AnalysisResult struct {
	BuildType           string           `json:"build_type"`
	CurrentVersion      string           `json:"current_version,omitempty"`
	TargetVersion       string           `json:"target_version,omitempty"`
	TotalDependencies   int              `json:"total_dependencies"`
	CompatibilityIssues []Issue          `json:"compatibility_issues"`
	RemovedModules      []string         `json:"removed_modules"`
	Recommendations     []Recommendation `json:"recommendations"`

	// Error is set when no analysis could run at all (no manifest found).
	Error string `json:"error,omitempty"`
}

// HasBlockingIssues reports whether the result should fail the run: either
// analysis never happened or at least one minimum-version issue was found.
// Removed-module warnings and recommendations never block.
func (r *AnalysisResult) HasBlockingIssues() bool {
	return r.Error != "" || len(r.CompatibilityIssues) > 0
}

// checkMinVersions flags dependencies declared below the minimum version
// known to work on the target Java version. Dependencies without a declared
// version are skipped: the version is usually managed by a parent POM or
// BOM, and flagging it would be a false positive.
func checkMinVersions(deps []analyzer.Dependency, target string, kb *KnowledgeBase) []Issue {
	issues := []Issue{}

	rules, ok := kb.Lookup(target)
	if !ok {
		return issues
	}

	for _, dep := range deps {
		minVersion, ok := rules.MinVersions[dep.Name()]
		if !ok {
			continue
		}
		if dep.Version != "" && CompareVersions(dep.Version, minVersion) < 0 {
			issues = append(issues, Issue{
				Dependency:     dep.String(),
				CurrentVersion: dep.Version,
				MinVersion:     minVersion,
				Severity:       "high",
			})
		}
	}

	return issues
}

// checkRemovedModules reports modules the target JDK no longer bundles that
// the project has not declared as explicit dependencies. A module that is
// declared has already been worked around and is not reported.
func checkRemovedModules(deps []analyzer.Dependency, target string, kb *KnowledgeBase) []string {
	removed := []string{}

	rules, ok := kb.Lookup(target)
	if !ok {
		return removed
	}

	declared := make(map[string]bool, len(deps))
	for _, dep := range deps {
		declared[dep.Name()] = true
	}

	for _, module := range rules.RemovedModules {
		if !declared[module] {
			removed = append(removed, module)
		}
	}

	return removed
}

// checkRecommendations suggests upgrades for dependencies below the
// recommended version for the target, including those with no declared
// version at all.
func checkRecommendations(deps []analyzer.Dependency, target string, kb *KnowledgeBase) []Recommendation {
	recs := []Recommendation{}

	rules, ok := kb.Lookup(target)
	if !ok {
		return recs
	}

	for _, dep := range deps {
		recVersion, ok := rules.RecommendedVersions[dep.Name()]
		if !ok {
			continue
		}
		if dep.Version == "" || CompareVersions(dep.Version, recVersion) < 0 {
			current := dep.Version
			if current == "" {
				current = "unknown"
			}
			recs = append(recs, Recommendation{
				Dependency:         dep.Name(),
				CurrentVersion:     current,
				RecommendedVersion: recVersion,
				Reason:             fmt.Sprintf("Better Java %s support", target),
			})
		}
	}

	return recs
}

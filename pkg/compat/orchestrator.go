package compat

import (
	"jvcheck/pkg/analyzer"
	"jvcheck/pkg/logger"
)

// Analyzer coordinates one analysis run: it selects the build-system
// adapter, resolves the effective current Java version, and runs the
// compatibility checks against the knowledge base.
type Analyzer struct {
	projectDir    string
	sourceVersion string
	targetVersion string
	kb            *KnowledgeBase
	ignored       map[string]bool
	tools         []analyzer.BuildTool
}

// Option configures an Analyzer.
type Option func(*Analyzer)

// WithKnowledgeBase replaces the built-in rule table.
func WithKnowledgeBase(kb *KnowledgeBase) Option {
	return func(a *Analyzer) { a.kb = kb }
}

// WithIgnoredPackages excludes dependency identities from the min-version
// and recommendation checks. Ignored dependencies still count toward the
// total and still satisfy the removed-module declaration test.
func WithIgnoredPackages(names []string) Option {
	return func(a *Analyzer) {
		for _, name := range names {
			a.ignored[name] = true
		}
	}
}

// NewAnalyzer creates an analyzer for projectDir. sourceVersion may be empty
// to use the version detected from the manifest; targetVersion is the Java
// version being upgraded to.
func NewAnalyzer(projectDir, sourceVersion, targetVersion string, opts ...Option) *Analyzer {
	a := &Analyzer{
		projectDir:    projectDir,
		sourceVersion: sourceVersion,
		targetVersion: targetVersion,
		kb:            BuiltinKnowledgeBase(),
		ignored:       map[string]bool{},
		tools: []analyzer.BuildTool{
			analyzer.NewMavenTool(projectDir),
			analyzer.NewGradleTool(projectDir),
		},
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Analyze runs the full analysis and always returns a result; when no
// manifest is found the result carries an Error instead of findings.
func (a *Analyzer) Analyze() *AnalysisResult {
	tool := a.selectTool()
	if tool == nil {
		return &AnalysisResult{
			Error:               "No Maven (pom.xml) or Gradle (build.gradle) file found",
			CompatibilityIssues: []Issue{},
			RemovedModules:      []string{},
			Recommendations:     []Recommendation{},
		}
	}
	logger.Debugf("Detected %s project at %s", tool.Name(), a.projectDir)

	currentVersion := a.sourceVersion
	if currentVersion == "" {
		currentVersion = tool.CurrentJavaVersion()
	}
	if currentVersion == "" {
		currentVersion = "unknown"
	}

	deps := tool.Dependencies()
	logger.Debugf("Found %d dependencies", len(deps))

	if _, ok := a.kb.Lookup(a.targetVersion); !ok {
		logger.Debugf("No compatibility rules for target Java %s; report will be empty", a.targetVersion)
	}

	checked := a.withoutIgnored(deps)

	return &AnalysisResult{
		BuildType:           tool.Name(),
		CurrentVersion:      currentVersion,
		TargetVersion:       a.targetVersion,
		TotalDependencies:   len(deps),
		CompatibilityIssues: checkMinVersions(checked, a.targetVersion, a.kb),
		RemovedModules:      checkRemovedModules(deps, a.targetVersion, a.kb),
		Recommendations:     checkRecommendations(checked, a.targetVersion, a.kb),
	}
}

// selectTool returns the first applicable adapter, Maven before Gradle.
func (a *Analyzer) selectTool() analyzer.BuildTool {
	for _, tool := range a.tools {
		if tool.IsApplicable() {
			return tool
		}
	}
	return nil
}

func (a *Analyzer) withoutIgnored(deps []analyzer.Dependency) []analyzer.Dependency {
	if len(a.ignored) == 0 {
		return deps
	}
	kept := make([]analyzer.Dependency, 0, len(deps))
	for _, dep := range deps {
		if a.ignored[dep.Name()] {
			logger.Debugf("Ignoring %s per configuration", dep.Name())
			continue
		}
		kept = append(kept, dep)
	}
	return kept
}

package compat

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"jvcheck/pkg/analyzer"
)

func TestCheckMinVersions_FlagsOutdatedDependency(t *testing.T) {
	kb := &KnowledgeBase{versions: map[string]RuleSet{
		"17": {MinVersions: map[string]string{"com.x:y": "2.0"}},
	}}
	deps := []analyzer.Dependency{
		{GroupID: "com.x", ArtifactID: "y", Version: "1.0"},
	}

	issues := checkMinVersions(deps, "17", kb)
	assert.Len(t, issues, 1)
	assert.Equal(t, "com.x:y:1.0", issues[0].Dependency)
	assert.Equal(t, "1.0", issues[0].CurrentVersion)
	assert.Equal(t, "2.0", issues[0].MinVersion)
	assert.Equal(t, "high", issues[0].Severity)
}

func TestCheckMinVersions_SkipsUndeclaredVersion(t *testing.T) {
	kb := &KnowledgeBase{versions: map[string]RuleSet{
		"17": {MinVersions: map[string]string{"com.x:y": "2.0"}},
	}}
	// Version managed by a parent POM: cannot judge, must not flag.
	deps := []analyzer.Dependency{{GroupID: "com.x", ArtifactID: "y"}}

	assert.Empty(t, checkMinVersions(deps, "17", kb))
}

func TestCheckMinVersions_SatisfiedVersionNotFlagged(t *testing.T) {
	kb := BuiltinKnowledgeBase()
	deps := []analyzer.Dependency{
		{GroupID: "org.springframework", ArtifactID: "spring-core", Version: "6.1.0"},
	}

	assert.Empty(t, checkMinVersions(deps, "21", kb))
}

func TestCheckMinVersions_PreservesDeclarationOrder(t *testing.T) {
	kb := &KnowledgeBase{versions: map[string]RuleSet{
		"17": {MinVersions: map[string]string{
			"com.a:first":  "2.0",
			"com.b:second": "3.0",
		}},
	}}
	deps := []analyzer.Dependency{
		{GroupID: "com.b", ArtifactID: "second", Version: "1.0"},
		{GroupID: "com.a", ArtifactID: "first", Version: "1.0"},
	}

	issues := checkMinVersions(deps, "17", kb)
	assert.Len(t, issues, 2)
	assert.Equal(t, "com.b:second:1.0", issues[0].Dependency)
	assert.Equal(t, "com.a:first:1.0", issues[1].Dependency)
}

func TestCheckRemovedModules_ReportsUndeclaredModules(t *testing.T) {
	kb := BuiltinKnowledgeBase()
	deps := []analyzer.Dependency{
		{GroupID: "org.example", ArtifactID: "app", Version: "1.0.0"},
	}

	removed := checkRemovedModules(deps, "11", kb)
	assert.Contains(t, removed, "javax.xml.bind:jaxb-api")
	assert.Len(t, removed, 4)
}

func TestCheckRemovedModules_DeclaredModuleNotReported(t *testing.T) {
	kb := BuiltinKnowledgeBase()
	// The project already re-added jaxb-api explicitly.
	deps := []analyzer.Dependency{
		{GroupID: "javax.xml.bind", ArtifactID: "jaxb-api", Version: "2.3.1"},
	}

	removed := checkRemovedModules(deps, "11", kb)
	assert.NotContains(t, removed, "javax.xml.bind:jaxb-api")
	assert.Len(t, removed, 3)
}

func TestCheckRecommendations_OutdatedAndUnversioned(t *testing.T) {
	kb := BuiltinKnowledgeBase()
	deps := []analyzer.Dependency{
		{GroupID: "org.springframework.boot", ArtifactID: "spring-boot-starter-parent", Version: "2.5.0"},
		{GroupID: "jakarta.persistence", ArtifactID: "jakarta.persistence-api"},
	}

	recs := checkRecommendations(deps, "17", kb)
	assert.Len(t, recs, 2)

	assert.Equal(t, "org.springframework.boot:spring-boot-starter-parent", recs[0].Dependency)
	assert.Equal(t, "2.5.0", recs[0].CurrentVersion)
	assert.Equal(t, "3.0.0", recs[0].RecommendedVersion)
	assert.Equal(t, "Better Java 17 support", recs[0].Reason)

	assert.Equal(t, "jakarta.persistence:jakarta.persistence-api", recs[1].Dependency)
	assert.Equal(t, "unknown", recs[1].CurrentVersion)
	assert.Equal(t, "3.0.0", recs[1].RecommendedVersion)
}

func TestCheckRecommendations_UpToDateNotRecommended(t *testing.T) {
	kb := BuiltinKnowledgeBase()
	deps := []analyzer.Dependency{
		{GroupID: "org.springframework.boot", ArtifactID: "spring-boot-starter-parent", Version: "3.2.0"},
	}

	assert.Empty(t, checkRecommendations(deps, "21", kb))
}

func TestChecks_UnknownTargetYieldsNoFindings(t *testing.T) {
	kb := BuiltinKnowledgeBase()
	deps := []analyzer.Dependency{
		{GroupID: "org.springframework", ArtifactID: "spring-core", Version: "1.0.0"},
		{GroupID: "javax.xml.bind", ArtifactID: "jaxb-api", Version: "2.3.1"},
	}

	assert.Empty(t, checkMinVersions(deps, "99", kb))
	assert.Empty(t, checkRemovedModules(deps, "99", kb))
	assert.Empty(t, checkRecommendations(deps, "99", kb))
}

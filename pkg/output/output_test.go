package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"jvcheck/pkg/compat"
)

func sampleResult() *compat.AnalysisResult {
	return &compat.AnalysisResult{
		BuildType:         "Maven",
		CurrentVersion:    "11",
		TargetVersion:     "17",
		TotalDependencies: 5,
		CompatibilityIssues: []compat.Issue{
			{
				Dependency:     "org.springframework:spring-core:5.0.0",
				CurrentVersion: "5.0.0",
				MinVersion:     "5.3.0",
				Severity:       "high",
			},
		},
		RemovedModules: []string{"javax.xml.bind:jaxb-api"},
		Recommendations: []compat.Recommendation{
			{
				Dependency:         "jakarta.persistence:jakarta.persistence-api",
				CurrentVersion:     "2.2.3",
				RecommendedVersion: "3.0.0",
				Reason:             "Better Java 17 support",
			},
		},
	}
}

func TestGenerateJSONReport(t *testing.T) {
	data, err := GenerateJSONReport(sampleResult())
	assert.NoError(t, err)

	var decoded map[string]interface{}
	assert.NoError(t, json.Unmarshal(data, &decoded))

	assert.Equal(t, "Maven", decoded["build_type"])
	assert.Equal(t, "11", decoded["current_version"])
	assert.Equal(t, "17", decoded["target_version"])
	assert.Equal(t, float64(5), decoded["total_dependencies"])
	assert.Len(t, decoded["compatibility_issues"], 1)
	assert.Len(t, decoded["removed_modules"], 1)
	assert.Len(t, decoded["recommendations"], 1)
	// No error key on a successful run.
	assert.NotContains(t, decoded, "error")
}

func TestGenerateJSONReport_ErrorResult(t *testing.T) {
	result := &compat.AnalysisResult{Error: "No Maven (pom.xml) or Gradle (build.gradle) file found"}

	data, err := GenerateJSONReport(result)
	assert.NoError(t, err)

	var decoded map[string]interface{}
	assert.NoError(t, json.Unmarshal(data, &decoded))
	assert.Contains(t, decoded, "error")
	assert.Equal(t, "", decoded["build_type"])
}

func TestPrintTextReport(t *testing.T) {
	var buf bytes.Buffer
	PrintTextReport(&buf, sampleResult(), "/tmp/project")
	text := buf.String()

	assert.Contains(t, text, "Java Dependency Analysis Report")
	assert.Contains(t, text, "Maven")
	assert.Contains(t, text, "Found 5 dependencies")
	assert.Contains(t, text, "Compatibility Issues (1)")
	assert.Contains(t, text, "org.springframework:spring-core:5.0.0")
	assert.Contains(t, text, "Current: 5.0.0 | Required: 5.3.0 or higher")
	assert.Contains(t, text, "javax.xml.bind:jaxb-api")
	assert.Contains(t, text, "Add explicit dependencies if your code uses them:")
	assert.Contains(t, text, "Recommendations (1)")
	assert.Contains(t, text, "Summary")
}

func TestPrintTextReport_NoFindings(t *testing.T) {
	result := &compat.AnalysisResult{
		BuildType:           "Gradle",
		CurrentVersion:      "17",
		TargetVersion:       "21",
		CompatibilityIssues: []compat.Issue{},
		RemovedModules:      []string{},
		Recommendations:     []compat.Recommendation{},
	}

	var buf bytes.Buffer
	PrintTextReport(&buf, result, ".")
	text := buf.String()

	assert.Contains(t, text, "No compatibility issues found")
	assert.NotContains(t, text, "Removed JDK Modules")
	assert.NotContains(t, text, "Recommendations (")
}

func TestPrintTextReport_Error(t *testing.T) {
	result := &compat.AnalysisResult{Error: "No Maven (pom.xml) or Gradle (build.gradle) file found"}

	var buf bytes.Buffer
	PrintTextReport(&buf, result, ".")

	assert.Contains(t, buf.String(), "No Maven (pom.xml) or Gradle (build.gradle) file found")
	assert.NotContains(t, buf.String(), "Summary")
}

func TestGenerateSarifReport(t *testing.T) {
	data, err := GenerateSarifReport(sampleResult(), "/tmp/project")
	assert.NoError(t, err)

	var report SarifReport
	assert.NoError(t, json.Unmarshal(data, &report))

	assert.Equal(t, "2.1.0", report.Version)
	assert.Len(t, report.Runs, 1)

	run := report.Runs[0]
	assert.Equal(t, "jvcheck", run.Tool.Driver.Name)
	assert.Len(t, run.Tool.Driver.Rules, 3)
	assert.Len(t, run.Results, 3)

	byRule := map[string]SarifResult{}
	for _, r := range run.Results {
		byRule[r.RuleID] = r
	}

	issue := byRule["min-version-violation"]
	assert.Equal(t, "error", issue.Level)
	assert.True(t, strings.Contains(issue.Message.Text, "5.3.0"))
	assert.Equal(t, "/tmp/project", issue.Locations[0].PhysicalLocation.ArtifactLocation.URI)

	assert.Equal(t, "warning", byRule["removed-jdk-module"].Level)
	assert.Equal(t, "note", byRule["upgrade-recommendation"].Level)

	assert.True(t, run.Invocations[0].ExecutionSuccessful)
}

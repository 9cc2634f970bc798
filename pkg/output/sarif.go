package output

import (
	"encoding/json"
	"fmt"
	"time"

	"jvcheck/pkg/compat"
)

// SARIF format specification: https://docs.oasis-open.org/sarif/sarif/v2.1.0/sarif-v2.1.0.html

// SarifReport represents the top-level SARIF report structure
type SarifReport struct {
	Schema  string     `json:"$schema"`
	Version string     `json:"version"`
	Runs    []SarifRun `json:"runs"`
}

// SarifRun represents a single run of the analysis tool
type SarifRun struct {
	Tool        SarifTool         `json:"tool"`
	Results     []SarifResult     `json:"results"`
	Invocations []SarifInvocation `json:"invocations"`
}

// SarifTool represents the tool that performed the analysis
type SarifTool struct {
	Driver SarifDriver `json:"driver"`
}

// SarifDriver represents the driver of the tool
type SarifDriver struct {
	Name           string      `json:"name"`
	Version        string      `json:"version"`
	InformationURI string      `json:"informationUri"`
	Rules          []SarifRule `json:"rules"`
}

// SarifRule represents a rule that was evaluated during the analysis
type SarifRule struct {
	ID               string            `json:"id"`
	ShortDescription SarifMessage      `json:"shortDescription"`
	FullDescription  SarifMessage      `json:"fullDescription"`
	Help             SarifMessage      `json:"help"`
	Properties       map[string]string `json:"properties,omitempty"`
}

// SarifResult represents a result of the analysis
type SarifResult struct {
	RuleID    string          `json:"ruleId"`
	Level     string          `json:"level"`
	Message   SarifMessage    `json:"message"`
	Locations []SarifLocation `json:"locations"`
}

// SarifMessage represents a message in the SARIF report
type SarifMessage struct {
	Text string `json:"text"`
}

// SarifLocation represents a location in the project
type SarifLocation struct {
	PhysicalLocation SarifPhysicalLocation `json:"physicalLocation"`
}

// SarifPhysicalLocation represents a physical location in the project
type SarifPhysicalLocation struct {
	ArtifactLocation SarifArtifactLocation `json:"artifactLocation"`
}

// SarifArtifactLocation represents the location of an artifact
type SarifArtifactLocation struct {
	URI string `json:"uri"`
}

// SarifInvocation represents an invocation of the tool
type SarifInvocation struct {
	ExecutionSuccessful bool   `json:"executionSuccessful"`
	StartTimeUtc        string `json:"startTimeUtc"`
	EndTimeUtc          string `json:"endTimeUtc"`
}

// GenerateSarifReport converts the analysis result to SARIF format. Each
// min-version issue becomes an error-level result, each missing removed
// module a warning, and each recommendation a note.
func GenerateSarifReport(result *compat.AnalysisResult, projectPath string) ([]byte, error) {
	rules := []SarifRule{
		{
			ID:               "min-version-violation",
			ShortDescription: SarifMessage{Text: "Dependency below minimum version for target Java"},
			FullDescription:  SarifMessage{Text: "The declared version of this dependency is known to be incompatible with the target Java version."},
			Help:             SarifMessage{Text: "Upgrade the dependency to at least the required minimum version before upgrading Java."},
		},
		{
			ID:               "removed-jdk-module",
			ShortDescription: SarifMessage{Text: "JDK module removed at target Java version"},
			FullDescription:  SarifMessage{Text: "The target JDK no longer bundles this module and the project does not declare it as an explicit dependency."},
			Help:             SarifMessage{Text: "Add an explicit dependency for the module if your code uses it."},
		},
		{
			ID:               "upgrade-recommendation",
			ShortDescription: SarifMessage{Text: "Version upgrade recommended for target Java"},
			FullDescription:  SarifMessage{Text: "A newer version of this dependency offers better support for the target Java version."},
			Help:             SarifMessage{Text: "Consider upgrading to the recommended version."},
		},
	}

	location := []SarifLocation{
		{
			PhysicalLocation: SarifPhysicalLocation{
				ArtifactLocation: SarifArtifactLocation{URI: projectPath},
			},
		},
	}

	results := make([]SarifResult, 0,
		len(result.CompatibilityIssues)+len(result.RemovedModules)+len(result.Recommendations))

	for _, issue := range result.CompatibilityIssues {
		results = append(results, SarifResult{
			RuleID: "min-version-violation",
			Level:  "error",
			Message: SarifMessage{
				Text: fmt.Sprintf("%s: current version %s, required %s or higher for Java %s",
					issue.Dependency, issue.CurrentVersion, issue.MinVersion, result.TargetVersion),
			},
			Locations: location,
		})
	}

	for _, module := range result.RemovedModules {
		results = append(results, SarifResult{
			RuleID: "removed-jdk-module",
			Level:  "warning",
			Message: SarifMessage{
				Text: fmt.Sprintf("%s is removed from the JDK in Java %s and is not declared as a dependency",
					module, result.TargetVersion),
			},
			Locations: location,
		})
	}

	for _, rec := range result.Recommendations {
		results = append(results, SarifResult{
			RuleID: "upgrade-recommendation",
			Level:  "note",
			Message: SarifMessage{
				Text: fmt.Sprintf("%s: current version %s, recommended %s (%s)",
					rec.Dependency, rec.CurrentVersion, rec.RecommendedVersion, rec.Reason),
			},
			Locations: location,
		})
	}

	now := time.Now().UTC()
	report := SarifReport{
		Schema:  "https://schemastore.azurewebsites.net/schemas/json/sarif-2.1.0-rtm.5.json",
		Version: "2.1.0",
		Runs: []SarifRun{
			{
				Tool: SarifTool{
					Driver: SarifDriver{
						Name:           "jvcheck",
						Version:        "1.0.0",
						InformationURI: "https://github.com/jvcheck/jvcheck",
						Rules:          rules,
					},
				},
				Results: results,
				Invocations: []SarifInvocation{
					{
						ExecutionSuccessful: result.Error == "",
						StartTimeUtc:        now.Add(-time.Second).Format(time.RFC3339),
						EndTimeUtc:          now.Format(time.RFC3339),
					},
				},
			},
		},
	}

	return json.MarshalIndent(report, "", "  ")
}

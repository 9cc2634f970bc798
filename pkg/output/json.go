package output

import (
	"encoding/json"

	"jvcheck/pkg/compat"
)

// GenerateJSONReport renders the analysis result as an indented JSON document.
func GenerateJSONReport(result *compat.AnalysisResult) ([]byte, error) {
	return json.MarshalIndent(result, "", "  ")
}

package output

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"jvcheck/pkg/compat"
)

var (
	colorCyan   = lipgloss.Color("36")
	colorGreen  = lipgloss.Color("35")
	colorYellow = lipgloss.Color("220")
	colorRed    = lipgloss.Color("167")
	colorDim    = lipgloss.Color("240")

	styleTitle   = lipgloss.NewStyle().Bold(true)
	styleSection = lipgloss.NewStyle().Bold(true)
	styleDim     = lipgloss.NewStyle().Foreground(colorDim)
	styleError   = lipgloss.NewStyle().Foreground(colorRed)
	styleWarning = lipgloss.NewStyle().Foreground(colorYellow)
	styleSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleInfo    = lipgloss.NewStyle().Foreground(colorCyan)

	styleErrorHeader   = lipgloss.NewStyle().Bold(true).Foreground(colorRed)
	styleWarningHeader = lipgloss.NewStyle().Bold(true).Foreground(colorYellow)
	styleInfoHeader    = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
)

const (
	iconIssue   = "✗"
	iconOK      = "✓"
	iconMissing = "!"
	iconArrow   = "→"

	ruleLine = "----------------------------------------------------------------------"
)

// PrintTextReport renders the analysis result as a human-readable report.
func PrintTextReport(w io.Writer, result *compat.AnalysisResult, projectDir string) {
	if result.Error != "" {
		fmt.Fprintln(w, styleError.Render(iconIssue)+" "+result.Error)
		return
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, styleTitle.Render("Java Dependency Analysis Report"))
	fmt.Fprintln(w, ruleLine)
	fmt.Fprintln(w)
	printKeyValue(w, "Project Directory", projectDir)
	printKeyValue(w, "Build Type", styleInfo.Render(result.BuildType))
	printKeyValue(w, "Current Java Version", styleWarning.Render(result.CurrentVersion))
	printKeyValue(w, "Target Java Version", styleSuccess.Render(result.TargetVersion))
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Found %d dependencies\n\n", result.TotalDependencies)

	printIssues(w, result.CompatibilityIssues)
	printRemovedModules(w, result)
	printRecommendations(w, result.Recommendations)
	printSummary(w, result)
}

func printKeyValue(w io.Writer, key, value string) {
	fmt.Fprintf(w, "%s %s\n", styleDim.Render(key+":"), value)
}

func printIssues(w io.Writer, issues []compat.Issue) {
	if len(issues) == 0 {
		fmt.Fprintln(w, styleSuccess.Render(iconOK+" No compatibility issues found"))
		fmt.Fprintln(w)
		return
	}

	fmt.Fprintln(w, styleErrorHeader.Render(fmt.Sprintf("Compatibility Issues (%d)", len(issues))))
	fmt.Fprintln(w, ruleLine)
	for _, issue := range issues {
		fmt.Fprintln(w, styleError.Render(iconIssue)+" "+issue.Dependency)
		fmt.Fprintf(w, "  Current: %s | Required: %s or higher\n", issue.CurrentVersion, issue.MinVersion)
	}
	fmt.Fprintln(w)
}

func printRemovedModules(w io.Writer, result *compat.AnalysisResult) {
	if len(result.RemovedModules) == 0 {
		return
	}

	fmt.Fprintln(w, styleWarningHeader.Render(
		fmt.Sprintf("Missing Dependencies for Removed JDK Modules (%d)", len(result.RemovedModules))))
	fmt.Fprintln(w, ruleLine)
	fmt.Fprintf(w, "Java %s removed these modules from the JDK.\n", result.TargetVersion)
	fmt.Fprintln(w, "Add explicit dependencies if your code uses them:")
	fmt.Fprintln(w)
	for _, module := range result.RemovedModules {
		fmt.Fprintln(w, styleWarning.Render(iconMissing)+" "+module)
	}
	fmt.Fprintln(w)
}

func printRecommendations(w io.Writer, recs []compat.Recommendation) {
	if len(recs) == 0 {
		return
	}

	fmt.Fprintln(w, styleInfoHeader.Render(fmt.Sprintf("Recommendations (%d)", len(recs))))
	fmt.Fprintln(w, ruleLine)
	for _, rec := range recs {
		fmt.Fprintln(w, styleInfo.Render(iconArrow)+" "+rec.Dependency)
		fmt.Fprintf(w, "  Current: %s | Recommended: %s\n", rec.CurrentVersion, rec.RecommendedVersion)
		fmt.Fprintf(w, "  Reason: %s\n", rec.Reason)
	}
	fmt.Fprintln(w)
}

func printSummary(w io.Writer, result *compat.AnalysisResult) {
	fmt.Fprintln(w, styleSection.Render("Summary"))
	fmt.Fprintln(w, ruleLine)
	fmt.Fprintf(w, "Critical Issues: %s\n", styleError.Render(fmt.Sprintf("%d", len(result.CompatibilityIssues))))
	fmt.Fprintf(w, "Missing JDK Module Dependencies: %s\n", styleWarning.Render(fmt.Sprintf("%d", len(result.RemovedModules))))
	fmt.Fprintf(w, "Upgrade Recommendations: %s\n", styleInfo.Render(fmt.Sprintf("%d", len(result.Recommendations))))
	fmt.Fprintln(w)
}

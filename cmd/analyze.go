package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"jvcheck/pkg/compat"
	"jvcheck/pkg/config"
	"jvcheck/pkg/logger"
	"jvcheck/pkg/output"
)

var (
	projectDir    string
	sourceVersion string
	targetVersion string
	format        string // output format: text, json, or sarif
)

// analyzeCmd represents the analyze subcommand
var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze a Java project's upgrade compatibility",
	Long:  "Analyze the project's build manifest and report dependency compatibility issues for the target Java version.",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.FindAndLoadConfig(projectDir)
		if err != nil {
			return err
		}

		opts := []compat.Option{
			compat.WithIgnoredPackages(cfg.IgnorePackages),
		}
		if cfg.RulesFile != "" {
			extra, err := compat.LoadRuleFile(cfg.RulesFile)
			if err != nil {
				return err
			}
			logger.Debugf("Merged extra compatibility rules from %s", cfg.RulesFile)
			opts = append(opts, compat.WithKnowledgeBase(compat.BuiltinKnowledgeBase().Merge(extra)))
		}

		result := compat.NewAnalyzer(projectDir, sourceVersion, targetVersion, opts...).Analyze()

		outputFormat := format
		if outputFormat == "" {
			outputFormat = cfg.Output.Format
		}

		out := os.Stdout
		if cfg.Output.File != "" {
			f, err := os.Create(cfg.Output.File)
			if err != nil {
				return fmt.Errorf("failed to create output file: %w", err)
			}
			defer f.Close()
			out = f
		}

		switch outputFormat {
		case "json":
			doc, err := output.GenerateJSONReport(result)
			if err != nil {
				return fmt.Errorf("failed to marshal report to JSON: %w", err)
			}
			fmt.Fprintln(out, string(doc))
		case "sarif":
			doc, err := output.GenerateSarifReport(result, projectDir)
			if err != nil {
				return fmt.Errorf("failed to marshal report to SARIF: %w", err)
			}
			fmt.Fprintln(out, string(doc))
		default:
			output.PrintTextReport(out, result, projectDir)
		}

		// Blocking issues fail the run; removed-module warnings and
		// recommendations do not.
		if result.HasBlockingIssues() {
			os.Exit(1)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
	analyzeCmd.Flags().StringVarP(&projectDir, "project-dir", "p", ".", "Path to project directory containing pom.xml or build.gradle")
	analyzeCmd.Flags().StringVar(&sourceVersion, "source-version", "", "Current Java version (auto-detected if not specified)")
	analyzeCmd.Flags().StringVar(&targetVersion, "target-version", "", "Target Java version (e.g. 11, 17, 21)")
	analyzeCmd.Flags().StringVarP(&format, "format", "f", "", "Output format: text, json, or sarif (default from config, else text)")
	_ = analyzeCmd.MarkFlagRequired("target-version")
}

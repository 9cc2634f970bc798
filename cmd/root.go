package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"jvcheck/pkg/logger"
)

// Version is set during build using ldflags
var Version = "dev"

var verbose bool

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:     "jvcheck",
	Short:   "Checks Java project dependencies before a Java version upgrade",
	Long:    `jvcheck inspects a Maven or Gradle project's build manifest and cross-references its dependencies against known Java version compatibility rules, reporting blocking issues, removed JDK modules, and upgrade recommendations before you move to a newer Java runtime.`,
	Version: Version,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger.SetVerbose(verbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

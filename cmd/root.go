// Package cmd contains all the CLI commands for the application,
// built using the Cobra library.
package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "github-activities",
	Short: "A CLI tool to track and display GitHub user activities.",
	Long: `github-activities fetches a GitHub user's commits, pull requests,
issues and reviews over a date range, aggregates them by week or month,
and renders summaries as terminal output, JSON, or HTML reports,
including multi-user comparisons.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringP("token", "t", "", "GitHub API token. If not provided, will look for GITHUB_TOKEN or the config file")
	rootCmd.PersistentFlags().StringP("config", "c", "", "Path to config file. Default is 'config/config.json'")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose/debug logging")
}

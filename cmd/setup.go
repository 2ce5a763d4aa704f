package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/naka-gawa/github-activities/internal/config"
	"github.com/spf13/cobra"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Set up configuration for github-activities",
	Long:  `Creates the config file holding the GitHub API token and defaults.`,
	Run: func(cmd *cobra.Command, args []string) {
		token, _ := cmd.Flags().GetString("token")
		configPath, _ := cmd.Flags().GetString("config")
		if configPath == "" {
			configPath = config.DefaultPath
		}

		reader := bufio.NewReader(os.Stdin)

		if _, err := os.Stat(configPath); err == nil {
			fmt.Printf("Config file already exists at %s. Overwrite? [y/N]: ", configPath)
			answer, _ := reader.ReadString('\n')
			if !strings.EqualFold(strings.TrimSpace(answer), "y") {
				fmt.Println("Setup cancelled.")
				return
			}
		}

		if token == "" {
			fmt.Print("Enter your GitHub API token: ")
			entered, _ := reader.ReadString('\n')
			token = strings.TrimSpace(entered)
		}
		if token == "" {
			fatal("Error: no token provided")
		}

		cfg := &config.Config{
			GitHub: config.GitHubConfig{
				APIToken:  token,
				APIURL:    "https://api.github.com",
				UserAgent: "GitHub-Activities-Tracker",
			},
		}
		if err := config.Save(configPath, cfg); err != nil {
			fatal("Error: %v", err)
		}
		fmt.Printf("Configuration saved to %s\n", configPath)
	},
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

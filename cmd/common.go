package cmd

import (
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/naka-gawa/github-activities/internal/config"
	"github.com/naka-gawa/github-activities/internal/domain"
	"github.com/naka-gawa/github-activities/internal/gateway"
	"github.com/naka-gawa/github-activities/internal/usecase"
	"github.com/spf13/cobra"
)

// newLogger builds the command logger. Output is discarded unless the
// persistent --verbose flag is set.
func newLogger(cmd *cobra.Command) *log.Logger {
	verbose, _ := cmd.Flags().GetBool("verbose")
	logger := log.New(io.Discard, "", log.LstdFlags)
	if verbose {
		logger.SetOutput(os.Stderr)
	}
	return logger
}

// newReporter resolves the token from flags/env/config and wires up the
// GitHub gateway behind a Reporter.
func newReporter(cmd *cobra.Command, logger *log.Logger) (*usecase.Reporter, error) {
	configPath, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	flagToken, _ := cmd.Flags().GetString("token")
	token, err := cfg.ResolveToken(flagToken)
	if err != nil {
		return nil, err
	}

	githubGateway, err := gateway.NewGitHubGateway(token, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create GitHub gateway: %w", err)
	}
	return usecase.NewReporter(githubGateway, logger), nil
}

// searchWindow computes the [now-days, now] reporting window.
func searchWindow(days int) (time.Time, time.Time) {
	until := time.Now()
	return until.AddDate(0, 0, -days), until
}

// parsePeriodType validates the --aggregation flag. An empty value means no
// aggregation.
func parsePeriodType(aggregation string) (domain.PeriodType, error) {
	switch aggregation {
	case "":
		return "", nil
	case "week":
		return domain.PeriodWeek, nil
	case "month":
		return domain.PeriodMonth, nil
	}
	return "", fmt.Errorf("invalid --aggregation value %q: must be 'week' or 'month'", aggregation)
}

// parseLanguage validates the --lang flag.
func parseLanguage(lang string) (usecase.Language, error) {
	switch lang {
	case "", "en":
		return usecase.LangEnglish, nil
	case "ja":
		return usecase.LangJapanese, nil
	}
	return "", fmt.Errorf("invalid --lang value %q: must be 'en' or 'ja'", lang)
}

func fatal(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}

package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thinktandem/seocheck/pkg/checker"
	"github.com/thinktandem/seocheck/internal/files/filesystem"
	"github.com/thinktandem/seocheck/internal/files/loader"
	"github.com/thinktandem/seocheck/internal/logging"
	"github.com/thinktandem/seocheck/internal/report"
	"github.com/thinktandem/seocheck/internal/ui"
	"github.com/thinktandem/seocheck/pkg/seocheck"
)

var checkCmd = &cobra.Command{
	Use:   "check <content_path>",
	Short: "Fill in and validate SEO metadata",
	Long: `Check loads every file below content_path, fills in missing SEO metadata
and validates it against the project's seocheck.yaml.

Markdown files contribute their YAML front matter; HTML files contribute the
title, meta and link tags of their head. Files are checked in path order and
the first failure stops the run with exit code 13.

Examples:
  # Check with seocheck.yaml from the current directory
  seocheck check ./src

  # Use a config from elsewhere and print the resolved metadata as JSON
  seocheck check ./src --config ./site --output json

  # Override the canonical base URL
  SEOCHECK_CANONICAL_BASE=https://staging.example.com seocheck check ./src`,
	Args: cobra.ExactArgs(1),
	RunE: runCheck,
}

type checkFlagValues struct {
	configDir     string
	output        string
	canonicalBase string
}

var checkFlags checkFlagValues

func init() {
	rootCmd.AddCommand(checkCmd)

	checkCmd.Flags().StringVarP(&checkFlags.configDir, "config", "c", ".",
		"Directory containing seocheck.yaml (and an optional .env)")
	checkCmd.Flags().StringVarP(&checkFlags.output, "output", "o", string(report.FormatText),
		"Output format for the resolved metadata: text|json|yaml")
	checkCmd.Flags().StringVar(&checkFlags.canonicalBase, "canonical-base", "",
		"Canonical base URL\n"+
			"Precedence: --canonical-base > $SEOCHECK_CANONICAL_BASE > seocheck.yaml")
	_ = checkCmd.RegisterFlagCompletionFunc("output", completeOutputFormats)
}

func completeOutputFormats(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	return []string{string(report.FormatText), string(report.FormatJSON), string(report.FormatYAML)},
		cobra.ShellCompDirectiveNoFileComp
}

func runCheck(cmd *cobra.Command, args []string) error {
	contentPath := args[0]
	verbose := getVerboseFlag(cmd)
	logger := logging.NewWriterLogger(cmd.ErrOrStderr(), verbose)

	format, err := report.ParseFormat(checkFlags.output)
	if err != nil {
		return err
	}

	opts, err := loadProjectConfig(checkFlags.configDir)
	if err != nil {
		return err
	}
	if checkFlags.canonicalBase != "" {
		opts.CanonicalBase = checkFlags.canonicalBase
	}

	contentLoader, err := loader.New(filesystem.NewOSFileSystem(), opts, logger)
	if err != nil {
		return err
	}
	files, err := contentLoader.Load(contentPath)
	if err != nil {
		return err
	}

	var collector report.Collector
	seoChecker, err := checker.New(opts, logger, checker.WithObserver(collector.Observe))
	if err != nil {
		return err
	}

	summary := report.Summary{Loaded: files.Len()}
	checkErr := seoChecker.Process(files)
	summary.Inspected = len(collector.Pages())

	theme := ui.NewTheme(cmd.ErrOrStderr())
	var verr *seocheck.ValidationError
	if errors.As(checkErr, &verr) {
		summary.Failed = verr
		fmt.Fprintln(cmd.ErrOrStderr(), summary.Render(theme))
		return checkErr
	}
	if checkErr != nil {
		return checkErr
	}

	if err := report.Write(cmd.OutOrStdout(), collector.Pages(), format); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	fmt.Fprintln(cmd.ErrOrStderr(), summary.Render(theme))
	return nil
}

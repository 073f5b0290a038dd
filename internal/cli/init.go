package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thinktandem/seocheck/internal/config"
	"github.com/thinktandem/seocheck/internal/tui"
	"github.com/thinktandem/seocheck/internal/tui/wizards"
	"github.com/thinktandem/seocheck/internal/ui"
)

var initCmd = &cobra.Command{
	Use:   "init [project_path]",
	Short: "Write a default seocheck.yaml",
	Long: `Init writes a commented seocheck.yaml into project_path (default: the
current directory). An existing file is never overwritten.

In a terminal, init asks for the canonical base URL, the default Open Graph
image and the Twitter handle. Pass them as flags (or set
SEOCHECK_NON_INTERACTIVE=1) to skip the prompts.

Examples:
  seocheck init                                      # Current directory
  seocheck init ./site                               # Creates ./site if needed
  seocheck init . --canonical-base https://example.com --no-input`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInit,
}

type initFlagValues struct {
	values  config.TemplateValues
	noInput bool
}

var initFlags initFlagValues

func init() {
	rootCmd.AddCommand(initCmd)

	initCmd.Flags().StringVar(&initFlags.values.CanonicalBase, "canonical-base", "",
		"Canonical base URL, e.g. https://example.com")
	initCmd.Flags().StringVar(&initFlags.values.DefaultImage, "default-image", "",
		"Default Open Graph image")
	initCmd.Flags().StringVar(&initFlags.values.TwitterSite, "twitter-site", "",
		"Twitter handle, e.g. @example")
	initCmd.Flags().BoolVar(&initFlags.noInput, "no-input", false,
		"Never prompt; write the defaults plus any values given as flags")
}

func runInit(cmd *cobra.Command, args []string) error {
	targetPath := "."
	if len(args) > 0 {
		targetPath = args[0]
	}

	values := initFlags.values
	if shouldPrompt(values) {
		result, err := wizards.RunInitWizard(values)
		if err != nil {
			return err
		}
		if result.Cancelled {
			fmt.Fprintln(cmd.ErrOrStderr(), "Cancelled; nothing written.")
			return nil
		}
		values = result.Values
	}

	written, err := config.WriteTemplate(targetPath, values)
	if err != nil {
		return fmt.Errorf("failed to initialize project: %w", err)
	}

	theme := ui.NewTheme(cmd.ErrOrStderr())
	fmt.Fprintf(cmd.ErrOrStderr(), "%s Created %s\n", theme.Success(ui.SymbolCheck), written)
	fmt.Fprintln(cmd.ErrOrStderr(), "\nNext steps:")
	if values.CanonicalBase == "" || values.DefaultImage == "" {
		fmt.Fprintln(cmd.ErrOrStderr(), "  Set canonicalBase and ogp.defaultImage in the new file, then run:")
	}
	if targetPath == "." {
		fmt.Fprintln(cmd.ErrOrStderr(), "  seocheck check <content_path>")
	} else {
		fmt.Fprintf(cmd.ErrOrStderr(), "  seocheck check <content_path> --config %s\n", targetPath)
	}
	return nil
}

// shouldPrompt reports whether init asks for values: only in a terminal, and
// only when the user gave none as flags.
func shouldPrompt(values config.TemplateValues) bool {
	if initFlags.noInput || values != (config.TemplateValues{}) {
		return false
	}
	return tui.IsInteractive()
}

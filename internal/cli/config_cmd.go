package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Config prints the options check would use: seocheck.yaml merged over the
built-in defaults, with .env and environment overrides applied.

The output is valid seocheck.yaml. Lengths and values keep their order.

Examples:
  seocheck config
  seocheck config --config ./site > resolved.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

type configFlagValues struct {
	configDir     string
	canonicalBase string
}

var configFlags configFlagValues

func init() {
	rootCmd.AddCommand(configCmd)

	configCmd.Flags().StringVarP(&configFlags.configDir, "config", "c", ".",
		"Directory containing seocheck.yaml (and an optional .env)")
	configCmd.Flags().StringVar(&configFlags.canonicalBase, "canonical-base", "",
		"Canonical base URL, as for check")
}

func runConfig(cmd *cobra.Command, args []string) error {
	opts, err := loadProjectConfig(configFlags.configDir)
	if err != nil {
		return err
	}
	if configFlags.canonicalBase != "" {
		opts.CanonicalBase = configFlags.canonicalBase
	}

	enc := yaml.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent(2)
	if err := enc.Encode(opts); err != nil {
		return fmt.Errorf("failed to encode configuration: %w", err)
	}
	return enc.Close()
}

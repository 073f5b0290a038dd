package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"

	"github.com/thinktandem/seocheck/internal/config"
	"github.com/thinktandem/seocheck/pkg/seocheck"
)

// loadProjectConfig loads .env files and resolves the options for the project
// in configDir. A missing seocheck.yaml is not an error: the defaults apply.
func loadProjectConfig(configDir string) (seocheck.Options, error) {
	projectEnv := filepath.Join(configDir, ".env")
	if _, err := os.Stat(projectEnv); err == nil {
		if err := godotenv.Load(projectEnv); err != nil {
			return seocheck.Options{}, fmt.Errorf("failed to load %s: %w", projectEnv, err)
		}
	}
	_ = godotenv.Load()

	opts, err := config.Resolve(configDir)
	if err != nil {
		return seocheck.Options{}, fmt.Errorf("failed to load %s: %w", seocheck.ConfigFileName, err)
	}
	return opts, nil
}

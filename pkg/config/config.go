// Package config loads the wizard's settings from defaults, the project's
// setup-wizard.yaml, SETUP_WIZARD_ environment variables and command flags.
package config

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Config holds the resolved settings of one run
type Config struct {
	ProjectRoot     string   `koanf:"-"`
	ConfigFile      string   `koanf:"config_file"`
	SelectionFile   string   `koanf:"selection_file"`
	BuilderFile     string   `koanf:"builder_file"`
	RequireNonEmpty bool     `koanf:"require_non_empty"`
	Interactive     bool     `koanf:"interactive"`
	LogLevel        string   `koanf:"log_level"`
	CorePackages    []string `koanf:"core_packages"`
	ExtraIgnores    []string `koanf:"extra_ignores"`
	DryRun          bool     `koanf:"dry_run"`
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.ConfigFile) == "" {
		return fmt.Errorf("config_file is required")
	}
	if strings.TrimSpace(c.SelectionFile) == "" {
		return fmt.Errorf("selection_file is required")
	}
	if strings.TrimSpace(c.BuilderFile) == "" {
		return fmt.Errorf("builder_file is required")
	}

	level := strings.ToLower(c.LogLevel)
	for _, l := range logLevels {
		if l == level {
			return nil
		}
	}
	return fmt.Errorf("unknown log_level %q (expected one of %s)", c.LogLevel, strings.Join(logLevels, ", "))
}

// ConfigPath returns the absolute path of the generated lint configuration
func (c *Config) ConfigPath() string {
	return resolvePathRelativeTo(c.ConfigFile, c.ProjectRoot)
}

// SelectionPath returns the absolute path of the saved selection
func (c *Config) SelectionPath() string {
	return resolvePathRelativeTo(c.SelectionFile, c.ProjectRoot)
}

// BuilderPath returns the absolute path of the generated bundler configuration
func (c *Config) BuilderPath() string {
	return resolvePathRelativeTo(c.BuilderFile, c.ProjectRoot)
}

func resolvePathRelativeTo(path, baseDir string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(baseDir, path)
}

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

// flagKeys maps command flags onto config keys where the names differ
var flagKeys = map[string]string{
	"config":         "config_file",
	"selection-file": "selection_file",
	"builder-file":   "builder_file",
	"allow-empty":    "require_non_empty",
	"no-interactive": "interactive",
	"log-level":      "log_level",
	"core-package":   "core_packages",
	"ignore":         "extra_ignores",
}

// negatedFlags are boolean flags that set the inverse of their config key
var negatedFlags = map[string]bool{
	"allow-empty":    true,
	"no-interactive": true,
}

// Load reads configuration for the project at projectRoot.
// Precedence (highest to lowest): flags > env vars > setup-wizard.yaml > defaults.
// Only flags that were explicitly set override lower layers.
func Load(projectRoot string, flags *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(map[string]interface{}{
		"config_file":       DefaultConfigFile,
		"selection_file":    DefaultSelectionFile,
		"builder_file":      DefaultBuilderFile,
		"require_non_empty": true,
		"interactive":       true,
		"log_level":         DefaultLogLevel,
		"core_packages":     DefaultCorePackages,
		"extra_ignores":     []string{},
		"dry_run":           false,
	}, "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	cfgFile := filepath.Join(projectRoot, ProjectConfigFile)
	if _, err := os.Stat(cfgFile); err == nil {
		if err := k.Load(file.Provider(cfgFile), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("error reading config file %s: %w", cfgFile, err)
		}
	} else if !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to stat config file %s: %w", cfgFile, err)
	}

	// SETUP_WIZARD_LOG_LEVEL -> log_level
	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, interface{}) {
			if !f.Changed {
				return "", nil
			}
			key, ok := flagKeys[f.Name]
			if !ok {
				key = strings.ReplaceAll(f.Name, "-", "_")
			}
			val := posflag.FlagVal(flags, f)
			if negatedFlags[f.Name] {
				if b, isBool := val.(bool); isBool {
					val = !b
				}
			}
			return key, val
		}), nil); err != nil {
			return nil, fmt.Errorf("failed to load flags: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}
	cfg.ProjectRoot = projectRoot
	cfg.LogLevel = strings.ToLower(cfg.LogLevel)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

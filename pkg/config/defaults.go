package config

// File names
const (
	// DefaultConfigFile is the generated lint configuration
	DefaultConfigFile = "eslint.config.js"

	// DefaultSelectionFile stores the last confirmed feature selection
	DefaultSelectionFile = ".elsikora/setup-wizard.yaml"

	// DefaultBuilderFile is the generated bundler configuration
	DefaultBuilderFile = "rollup.config.js"

	// ProjectConfigFile is read from the project root when present
	ProjectConfigFile = "setup-wizard.yaml"
)

// File Permissions
const (
	// PermDirectory is the file permission for directories
	PermDirectory = 0755

	// PermConfigFile is the file permission for generated files
	PermConfigFile = 0644
)

// EnvPrefix prefixes every environment variable the wizard reads
const EnvPrefix = "SETUP_WIZARD_"

// DefaultLogLevel is used when no level is configured
const DefaultLogLevel = "info"

// DefaultCorePackages are installed for every selection
var DefaultCorePackages = []string{"eslint", "@elsikora/eslint-config"}

var logLevels = []string{"debug", "info", "warn", "error"}

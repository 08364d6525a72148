package extension

// Config holds the Poolbook extension configuration.
// Fields can be set programmatically via Option functions or loaded from
// YAML configuration files (under "extensions.poolbook" or "poolbook" keys).
type Config struct {
	// DisableMigrate prevents auto-migration on start.
	DisableMigrate bool `json:"disable_migrate" mapstructure:"disable_migrate" yaml:"disable_migrate"`

	// BasePath is the URL prefix for poolbook routes (default: "/poolbook").
	BasePath string `json:"base_path" mapstructure:"base_path" yaml:"base_path"`

	// MinContribution overrides the minimum recurring contribution, as a
	// decimal string in the asset's smallest unit. Empty keeps the engine
	// default.
	MinContribution string `json:"min_contribution" mapstructure:"min_contribution" yaml:"min_contribution"`

	// RequireConfig requires config to be present in YAML files.
	// If true and no config is found, Register returns an error.
	RequireConfig bool `json:"-" yaml:"-"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		BasePath: "/poolbook",
	}
}

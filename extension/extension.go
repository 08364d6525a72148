// Package extension provides the Forge extension adapter for Poolbook.
//
// It implements the forge.Extension interface to integrate Poolbook
// into a Forge application with automatic dependency discovery,
// DI registration, and lifecycle management.
//
// Configuration can be provided programmatically via Option functions
// or via YAML configuration files under "extensions.poolbook" or "poolbook" keys.
package extension

import (
	"context"
	"errors"

	"github.com/xraph/forge"
	"github.com/xraph/vessel"

	poolbook "github.com/xraph/poolbook"
	"github.com/xraph/poolbook/store"
	"github.com/xraph/poolbook/store/memory"
	"github.com/xraph/poolbook/types"
)

// ExtensionName is the name registered with Forge.
const ExtensionName = "poolbook"

// ExtensionDescription is the human-readable description.
const ExtensionDescription = "Pooled recurring-contribution ledger"

// ExtensionVersion is the semantic version.
const ExtensionVersion = "0.1.0"

// Ensure Extension implements forge.Extension at compile time.
var _ forge.Extension = (*Extension)(nil)

// Extension adapts Poolbook as a Forge extension.
type Extension struct {
	*forge.BaseExtension

	config     Config
	engine     *poolbook.Ledger
	store      store.Store
	engineOpts []poolbook.Option
}

// New creates a new Poolbook Forge extension with the given options.
func New(opts ...Option) *Extension {
	e := &Extension{
		BaseExtension: forge.NewBaseExtension(ExtensionName, ExtensionVersion, ExtensionDescription),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Engine returns the underlying Ledger instance.
// This is nil until Register is called.
func (e *Extension) Engine() *poolbook.Ledger { return e.engine }

// Register implements [forge.Extension]. It loads configuration,
// initializes the poolbook engine, and registers it in the DI container.
func (e *Extension) Register(fapp forge.App) error {
	if err := e.BaseExtension.Register(fapp); err != nil {
		return err
	}

	if err := e.loadConfiguration(); err != nil {
		return err
	}

	// Use memory store if no store was provided programmatically.
	if e.store == nil {
		e.store = memory.New()
	}

	// Build engine options from resolved config.
	opts, err := e.buildEngineOpts()
	if err != nil {
		return err
	}

	eng := poolbook.New(e.store, opts...)
	e.engine = eng

	return vessel.Provide(fapp.Container(), func() (*poolbook.Ledger, error) {
		return e.engine, nil
	})
}

// Start implements [forge.Extension].
func (e *Extension) Start(ctx context.Context) error {
	if e.engine == nil {
		return errors.New("poolbook: extension not initialized")
	}

	if !e.config.DisableMigrate {
		if err := e.engine.Start(ctx); err != nil {
			return err
		}
	}

	e.MarkStarted()
	return nil
}

// Stop implements [forge.Extension].
func (e *Extension) Stop(_ context.Context) error {
	if e.engine != nil {
		if err := e.engine.Stop(); err != nil {
			e.MarkStopped()
			return err
		}
	}
	e.MarkStopped()
	return nil
}

// Health implements [forge.Extension].
func (e *Extension) Health(ctx context.Context) error {
	if e.store == nil {
		return errors.New("poolbook: store not initialized")
	}
	return e.store.Ping(ctx)
}

// buildEngineOpts constructs poolbook.Option values from the resolved config.
func (e *Extension) buildEngineOpts() ([]poolbook.Option, error) {
	opts := make([]poolbook.Option, 0, len(e.engineOpts)+1)

	if e.config.MinContribution != "" {
		min, err := types.ParseAmount(e.config.MinContribution)
		if err != nil {
			return nil, errors.New("poolbook: invalid min_contribution in config")
		}
		opts = append(opts, poolbook.WithMinContribution(min))
	}

	// Append any pass-through engine options.
	opts = append(opts, e.engineOpts...)

	return opts, nil
}

// --- Config Loading (mirrors grove/shield extension pattern) ---

// loadConfiguration loads config from YAML files or programmatic sources.
func (e *Extension) loadConfiguration() error {
	programmaticConfig := e.config

	// Try loading from config file.
	fileConfig, configLoaded := e.tryLoadFromConfigFile()

	if !configLoaded {
		if programmaticConfig.RequireConfig {
			return errors.New("poolbook: configuration is required but not found in config files; " +
				"ensure 'extensions.poolbook' or 'poolbook' key exists in your config")
		}

		// Use programmatic config merged with defaults.
		e.config = e.mergeWithDefaults(programmaticConfig)
	} else {
		// Config loaded from YAML -- merge with programmatic options.
		e.config = e.mergeConfigurations(fileConfig, programmaticConfig)
	}

	e.Logger().Debug("poolbook: configuration loaded",
		forge.F("disable_migrate", e.config.DisableMigrate),
		forge.F("base_path", e.config.BasePath),
		forge.F("min_contribution", e.config.MinContribution),
	)

	return nil
}

// tryLoadFromConfigFile attempts to load config from YAML files.
func (e *Extension) tryLoadFromConfigFile() (Config, bool) {
	cm := e.App().Config()
	var cfg Config

	// Try "extensions.poolbook" first (namespaced pattern).
	if cm.IsSet("extensions.poolbook") {
		if err := cm.Bind("extensions.poolbook", &cfg); err == nil {
			e.Logger().Debug("poolbook: loaded config from file",
				forge.F("key", "extensions.poolbook"),
			)
			return cfg, true
		}
		e.Logger().Warn("poolbook: failed to bind extensions.poolbook config",
			forge.F("error", "bind failed"),
		)
	}

	// Try legacy "poolbook" key.
	if cm.IsSet("poolbook") {
		if err := cm.Bind("poolbook", &cfg); err == nil {
			e.Logger().Debug("poolbook: loaded config from file",
				forge.F("key", "poolbook"),
			)
			return cfg, true
		}
		e.Logger().Warn("poolbook: failed to bind poolbook config",
			forge.F("error", "bind failed"),
		)
	}

	return Config{}, false
}

// mergeWithDefaults fills zero-valued fields with defaults.
func (e *Extension) mergeWithDefaults(cfg Config) Config {
	defaults := DefaultConfig()
	if cfg.BasePath == "" {
		cfg.BasePath = defaults.BasePath
	}
	return cfg
}

// mergeConfigurations merges YAML config with programmatic options.
// YAML config takes precedence for most fields; programmatic bool flags fill gaps.
func (e *Extension) mergeConfigurations(yamlConfig, programmaticConfig Config) Config {
	// Programmatic bool flags override when true.
	if programmaticConfig.DisableMigrate {
		yamlConfig.DisableMigrate = true
	}

	// String fields: YAML takes precedence.
	if yamlConfig.BasePath == "" && programmaticConfig.BasePath != "" {
		yamlConfig.BasePath = programmaticConfig.BasePath
	}
	if yamlConfig.MinContribution == "" && programmaticConfig.MinContribution != "" {
		yamlConfig.MinContribution = programmaticConfig.MinContribution
	}

	// Fill remaining zeros with defaults.
	return e.mergeWithDefaults(yamlConfig)
}

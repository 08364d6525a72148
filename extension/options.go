package extension

import (
	poolbook "github.com/xraph/poolbook"
	"github.com/xraph/poolbook/plugin"
	"github.com/xraph/poolbook/store"
)

// Option configures the Poolbook Forge extension.
type Option func(*Extension)

// WithStore sets the store for the poolbook engine.
func WithStore(s store.Store) Option {
	return func(e *Extension) {
		e.store = s
	}
}

// WithEngineOption passes a poolbook.Option through to the underlying engine.
func WithEngineOption(opt poolbook.Option) Option {
	return func(e *Extension) {
		e.engineOpts = append(e.engineOpts, opt)
	}
}

// WithPlugin registers a poolbook plugin.
func WithPlugin(p plugin.Plugin) Option {
	return func(e *Extension) {
		e.engineOpts = append(e.engineOpts, poolbook.WithPlugin(p))
	}
}

// WithConfig sets the Forge extension configuration.
func WithConfig(cfg Config) Option {
	return func(e *Extension) { e.config = cfg }
}

// WithDisableMigrate prevents auto-migration on start.
func WithDisableMigrate() Option {
	return func(e *Extension) { e.config.DisableMigrate = true }
}

// WithBasePath sets the URL prefix for poolbook routes.
func WithBasePath(path string) Option {
	return func(e *Extension) { e.config.BasePath = path }
}

// WithRequireConfig requires config to be present in YAML files.
// If true and no config is found, Register returns an error.
func WithRequireConfig(require bool) Option {
	return func(e *Extension) { e.config.RequireConfig = require }
}

// WithMinContribution overrides the minimum recurring contribution.
func WithMinContribution(amount string) Option {
	return func(e *Extension) { e.config.MinContribution = amount }
}

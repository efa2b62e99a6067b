package plugin

import (
	"github.com/Masterminds/semver/v3"
	"github.com/rs/zerolog"
)

// Option describes a function used to configure a Runner.
type Option func(*config)

type config struct {
	logger        zerolog.Logger
	hostVersion   *semver.Version
	configuration map[string]any
	failFast      bool
}

func newConfig(opts ...Option) *config {
	cfg := &config{
		logger:        zerolog.Nop(),
		configuration: map[string]any{},
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// WithLogger sets the logger passed to units through the compiler context.
func WithLogger(logger zerolog.Logger) Option {
	return func(cfg *config) {
		cfg.logger = logger
	}
}

// WithHostVersion sets the host compiler version that plugin requirements
// are checked against. Without it, requirements are parsed but not checked.
func WithHostVersion(version *semver.Version) Option {
	return func(cfg *config) {
		cfg.hostVersion = version
	}
}

// WithConfiguration supplies host settings visible to every unit. This option
// is additive; if the same key is supplied multiple times, the last value wins.
func WithConfiguration(values map[string]any) Option {
	return func(cfg *config) {
		for k, v := range values {
			cfg.configuration[k] = v
		}
	}
}

// WithConfigValue supplies a single host setting.
func WithConfigValue(key string, value any) Option {
	return func(cfg *config) {
		cfg.configuration[key] = value
	}
}

// WithFailFast stops a phase after the first unit that reports an error
// diagnostic. By default every unit runs and the errors are aggregated.
func WithFailFast() Option {
	return func(cfg *config) {
		cfg.failFast = true
	}
}

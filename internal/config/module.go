package config

import (
	"go.uber.org/fx"
)

var Module = fx.Options(
	fx.Provide(func() (*Config, error) {
		return New()
	}),
)

// WithCustomConfig replaces the config loaded by Module.
func WithCustomConfig(cfg *Config) fx.Option {
	return fx.Replace(cfg)
}

package providers

import (
	"github.com/Owen-Rose/chefs-suite/framework/config"
	"github.com/Owen-Rose/chefs-suite/framework/container"
	"github.com/Owen-Rose/chefs-suite/framework/logging"
	"github.com/Owen-Rose/chefs-suite/framework/routing"
)

// ── ConfigServiceProvider ─────────────────────────────────────────────────────

// ConfigServiceProvider loads the application configuration from .env and
// binds it into the container as "config".
//
// Bound tokens:
//   - "config" → *config.Config
type ConfigServiceProvider struct {
	container.BaseProvider
	EnvFiles []string
}

func (p *ConfigServiceProvider) Register(app *container.Container) {
	envFiles := p.EnvFiles
	app.Singleton("config", func(*container.Resolver) (any, error) {
		return config.Load(envFiles...), nil
	})
}

// ── LogServiceProvider ────────────────────────────────────────────────────────

// LogServiceProvider binds the structured logger as "logger".
//
// Bound tokens:
//   - "logger" → *zap.Logger
type LogServiceProvider struct {
	container.BaseProvider
}

func (p *LogServiceProvider) Register(app *container.Container) {
	app.Singleton("logger", func(r *container.Resolver) (any, error) {
		cfg, err := container.Resolve[*config.Config](r, "config")
		if err != nil {
			return nil, err
		}
		return logging.New(cfg)
	})
}

// ── RoutingServiceProvider ────────────────────────────────────────────────────

// RoutingServiceProvider registers the HTTP router.
//
// Bound tokens:
//   - "router" → *routing.Router
type RoutingServiceProvider struct {
	container.BaseProvider
}

func (p *RoutingServiceProvider) Register(app *container.Container) {
	app.Singleton("router", func(*container.Resolver) (any, error) {
		return routing.New(), nil
	})
}

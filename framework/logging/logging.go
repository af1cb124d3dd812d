// Package logging builds the application logger. The logger is registered
// in the container as "logger" and shared by services and middleware.
package logging

import (
	"go.uber.org/zap"

	"github.com/Owen-Rose/chefs-suite/framework/config"
)

// New returns a zap logger tuned for the configured environment:
// human-readable development output when APP_DEBUG is on, JSON production
// output otherwise.
func New(cfg *config.Config) (*zap.Logger, error) {
	if cfg.App.Debug {
		return zap.NewDevelopment()
	}
	zc := zap.NewProductionConfig()
	zc.InitialFields = map[string]any{"app": cfg.App.Name, "env": cfg.App.Env}
	return zc.Build()
}

// Nop returns a logger that discards everything. Handy in tests.
func Nop() *zap.Logger { return zap.NewNop() }

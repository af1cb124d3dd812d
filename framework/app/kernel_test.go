package app_test

import (
	"testing"

	"github.com/Owen-Rose/chefs-suite/framework/app"
	"github.com/Owen-Rose/chefs-suite/framework/container"
)

func TestNew_BindsCoreServices(t *testing.T) {
	application := app.New()

	for _, token := range []string{"config", "logger", "router"} {
		if !application.Has(token) {
			t.Errorf("expected core token %q to be bound", token)
		}
	}
}

func TestAccessors(t *testing.T) {
	application := app.New()
	application.Boot()

	if application.Config() == nil {
		t.Error("Config() returned nil")
	}
	if application.Logger() == nil {
		t.Error("Logger() returned nil")
	}
	if application.Router() == nil {
		t.Error("Router() returned nil")
	}
}

func TestConfigIsSingleton(t *testing.T) {
	application := app.New()

	if application.Config() != application.Config() {
		t.Error("Config() should return the same instance")
	}
}

type stubProvider struct {
	container.BaseProvider
	booted bool
}

func (p *stubProvider) Register(c *container.Container) {
	c.Instance("stub.value", "hello")
}

func (p *stubProvider) Boot(_ *container.Container) { p.booted = true }

func TestRegister_UserProvider(t *testing.T) {
	application := app.New()
	p := &stubProvider{}
	application.Register(p)

	got, err := container.Resolve[string](application.Container, "stub.value")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if got != "hello" {
		t.Errorf("got %q", got)
	}

	application.Boot()
	if !p.booted {
		t.Error("provider was not booted")
	}
}

func TestEnvironmentHelpers(t *testing.T) {
	t.Setenv("APP_ENV", "testing")

	application := app.New()
	if !application.IsTesting() {
		t.Errorf("expected testing environment, got %q", application.Environment())
	}
	if application.IsProduction() {
		t.Error("IsProduction should be false")
	}
}

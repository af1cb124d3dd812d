// Package providers wires the application's repositories, services, and
// controllers into the container. The framework's own providers (config,
// log, router) are registered by app.New(); everything domain-specific
// lives here.
package providers

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"github.com/Owen-Rose/chefs-suite/app/handlers"
	"github.com/Owen-Rose/chefs-suite/app/repositories"
	"github.com/Owen-Rose/chefs-suite/app/services"
	"github.com/Owen-Rose/chefs-suite/framework/config"
	"github.com/Owen-Rose/chefs-suite/framework/container"
)

// AppServiceProvider binds the domain layer.
//
// Bound tokens:
//   - "db"                   → *mongo.Database       (mongo driver only)
//   - "recipes.repo"         → repositories.RecipeRepository
//   - "users.repo"           → repositories.UserRepository
//   - "invitations.repo"     → repositories.InvitationRepository
//   - "mailer"               → services.Mailer
//   - "recipes.service"      → *services.RecipeService
//   - "invitations.service"  → *services.InvitationService
//   - "recipes.controller"   → *handlers.RecipeController      (transient)
//   - "invitations.handler"  → *handlers.InvitationHandler     (transient)
type AppServiceProvider struct {
	container.BaseProvider
}

func (p *AppServiceProvider) Register(app *container.Container) {
	app.Singleton("db", func(r *container.Resolver) (any, error) {
		cfg, err := container.Resolve[*config.Config](r, "config")
		if err != nil {
			return nil, err
		}
		return repositories.Connect(context.Background(), cfg.DB)
	})

	app.Singleton("recipes.repo", func(r *container.Resolver) (any, error) {
		db, err := database(r)
		if err != nil {
			return nil, err
		}
		if db == nil {
			return repositories.NewMemoryRecipeRepository(), nil
		}
		return repositories.NewMongoRecipeRepository(db), nil
	})
	app.Singleton("users.repo", func(r *container.Resolver) (any, error) {
		db, err := database(r)
		if err != nil {
			return nil, err
		}
		if db == nil {
			return repositories.NewMemoryUserRepository(), nil
		}
		return repositories.NewMongoUserRepository(db), nil
	})
	app.Singleton("invitations.repo", func(r *container.Resolver) (any, error) {
		db, err := database(r)
		if err != nil {
			return nil, err
		}
		if db == nil {
			return repositories.NewMemoryInvitationRepository(), nil
		}
		return repositories.NewMongoInvitationRepository(db), nil
	})

	app.Singleton("mailer", func(r *container.Resolver) (any, error) {
		cfg, err := container.Resolve[*config.Config](r, "config")
		if err != nil {
			return nil, err
		}
		logger, err := container.Resolve[*zap.Logger](r, "logger")
		if err != nil {
			return nil, err
		}
		return services.NewMailer(cfg.Mail, logger), nil
	})

	// Constructor-style registration: deps resolved by token, in order.
	// A shape mismatch is a programming error caught at registration, not
	// something to surface later as a failed resolve.
	if err := app.Constructor("recipes.service", services.NewRecipeService,
		"recipes.repo", "logger"); err != nil {
		panic(err)
	}

	app.Singleton("invitations.service", func(r *container.Resolver) (any, error) {
		invRepo, err := container.Resolve[repositories.InvitationRepository](r, "invitations.repo")
		if err != nil {
			return nil, err
		}
		userRepo, err := container.Resolve[repositories.UserRepository](r, "users.repo")
		if err != nil {
			return nil, err
		}
		mailer, err := container.Resolve[services.Mailer](r, "mailer")
		if err != nil {
			return nil, err
		}
		cfg, err := container.Resolve[*config.Config](r, "config")
		if err != nil {
			return nil, err
		}
		logger, err := container.Resolve[*zap.Logger](r, "logger")
		if err != nil {
			return nil, err
		}
		return services.NewInvitationService(invRepo, userRepo, mailer, cfg, logger), nil
	})

	// Controllers are transient; one per resolve.
	app.Bind("recipes.controller", func(r *container.Resolver) (any, error) {
		svc, err := container.Resolve[*services.RecipeService](r, "recipes.service")
		if err != nil {
			return nil, err
		}
		users, err := container.Resolve[repositories.UserRepository](r, "users.repo")
		if err != nil {
			return nil, err
		}
		return handlers.NewRecipeController(svc, users), nil
	})
	app.Bind("invitations.handler", func(r *container.Resolver) (any, error) {
		svc, err := container.Resolve[*services.InvitationService](r, "invitations.service")
		if err != nil {
			return nil, err
		}
		users, err := container.Resolve[repositories.UserRepository](r, "users.repo")
		if err != nil {
			return nil, err
		}
		return handlers.NewInvitationHandler(svc, users), nil
	})
}

// database returns the shared *mongo.Database when DB_DRIVER is "mongo",
// or nil for the in-memory driver.
func database(r *container.Resolver) (*mongo.Database, error) {
	cfg, err := container.Resolve[*config.Config](r, "config")
	if err != nil {
		return nil, err
	}
	if cfg.DB.Driver != "mongo" {
		return nil, nil
	}
	return container.Resolve[*mongo.Database](r, "db")
}

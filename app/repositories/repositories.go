// Package repositories defines persistence interfaces for the application's
// documents, with an in-memory driver for tests and local hacking and a
// MongoDB driver for real deployments. Services depend on the interfaces
// only; the provider layer picks the driver from DB_DRIVER.
package repositories

import (
	"context"
	"errors"

	"github.com/Owen-Rose/chefs-suite/app/models"
)

// ErrNotFound is returned when a document does not exist.
var ErrNotFound = errors.New("repositories: not found")

// RecipeRepository persists recipes.
type RecipeRepository interface {
	Create(ctx context.Context, recipe *models.Recipe) error
	FindByID(ctx context.Context, id string) (*models.Recipe, error)
	FindAll(ctx context.Context) ([]*models.Recipe, error)
	Update(ctx context.Context, recipe *models.Recipe) error
	Delete(ctx context.Context, id string) error
}

// UserRepository persists user accounts.
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	FindByID(ctx context.Context, id string) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindAll(ctx context.Context) ([]*models.User, error)
	Delete(ctx context.Context, id string) error
}

// InvitationRepository persists pending invitations.
type InvitationRepository interface {
	Create(ctx context.Context, inv *models.Invitation) error
	FindByToken(ctx context.Context, token string) (*models.Invitation, error)
	FindByEmail(ctx context.Context, email string) (*models.Invitation, error)
	Delete(ctx context.Context, id string) error
}

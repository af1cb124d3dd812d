package services

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/Owen-Rose/chefs-suite/app/models"
	"github.com/Owen-Rose/chefs-suite/app/repositories"
)

// ErrForbidden is returned when the acting user's role does not allow
// the requested operation.
var ErrForbidden = errors.New("services: forbidden")

// RecipeService applies role checks before touching the repository.
// Readers browse; chefs and admins write.
type RecipeService struct {
	recipes repositories.RecipeRepository
	logger  *zap.Logger
}

func NewRecipeService(recipes repositories.RecipeRepository, logger *zap.Logger) *RecipeService {
	return &RecipeService{recipes: recipes, logger: logger}
}

// List returns all recipes visible to the user.
func (s *RecipeService) List(ctx context.Context, actor *models.User) ([]*models.Recipe, error) {
	if !actor.Role.CanReadRecipes() {
		return nil, ErrForbidden
	}
	return s.recipes.FindAll(ctx)
}

// Get returns a single recipe.
func (s *RecipeService) Get(ctx context.Context, actor *models.User, id string) (*models.Recipe, error) {
	if !actor.Role.CanReadRecipes() {
		return nil, ErrForbidden
	}
	return s.recipes.FindByID(ctx, id)
}

// Create stores a new recipe authored by the actor.
func (s *RecipeService) Create(ctx context.Context, actor *models.User, recipe *models.Recipe) error {
	if !actor.Role.CanWriteRecipes() {
		return ErrForbidden
	}
	recipe.AuthorID = actor.ID
	if err := s.recipes.Create(ctx, recipe); err != nil {
		return err
	}
	s.logger.Info("recipe created",
		zap.String("recipe_id", recipe.ID),
		zap.String("author_id", actor.ID),
	)
	return nil
}

// Update replaces an existing recipe. Only the author or an admin may
// modify it; the stored author is authoritative, not the submitted one.
func (s *RecipeService) Update(ctx context.Context, actor *models.User, recipe *models.Recipe) error {
	if !actor.Role.CanWriteRecipes() {
		return ErrForbidden
	}
	stored, err := s.recipes.FindByID(ctx, recipe.ID)
	if err != nil {
		return err
	}
	if !canModify(actor, stored) {
		return ErrForbidden
	}
	recipe.AuthorID = stored.AuthorID
	recipe.Touch()
	return s.recipes.Update(ctx, recipe)
}

// Delete removes a recipe. Only the author or an admin may delete it.
func (s *RecipeService) Delete(ctx context.Context, actor *models.User, id string) error {
	if !actor.Role.CanWriteRecipes() {
		return ErrForbidden
	}
	stored, err := s.recipes.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if !canModify(actor, stored) {
		return ErrForbidden
	}
	if err := s.recipes.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("recipe deleted",
		zap.String("recipe_id", id),
		zap.String("actor_id", actor.ID),
	)
	return nil
}

func canModify(actor *models.User, recipe *models.Recipe) bool {
	return actor.Role == models.RoleAdmin || recipe.AuthorID == actor.ID
}

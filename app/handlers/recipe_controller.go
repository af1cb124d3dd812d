package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/Owen-Rose/chefs-suite/app/models"
	"github.com/Owen-Rose/chefs-suite/app/repositories"
	"github.com/Owen-Rose/chefs-suite/app/services"
	"github.com/Owen-Rose/chefs-suite/framework/app"
	gohttp "github.com/Owen-Rose/chefs-suite/framework/http"
	"github.com/Owen-Rose/chefs-suite/framework/http/validation"
	"github.com/Owen-Rose/chefs-suite/framework/routing"
)

// RecipeController serves /api/v1/recipes as a RESTful resource.
type RecipeController struct {
	app.Controller
	recipes *services.RecipeService
	users   repositories.UserRepository
}

func NewRecipeController(recipes *services.RecipeService, users repositories.UserRepository) *RecipeController {
	return &RecipeController{recipes: recipes, users: users}
}

type recipeInput struct {
	Title       string              `json:"title"`
	Description string              `json:"description"`
	Ingredients []models.Ingredient `json:"ingredients"`
	Steps       []string            `json:"steps"`
	Servings    int                 `json:"servings"`
	Tags        []string            `json:"tags"`
}

// actor authenticates the request. The bearer token is the user's ID.
func (c *RecipeController) actor(r *http.Request) (*models.User, error) {
	token := c.Request(r).BearerToken()
	if token == "" {
		return nil, errors.New("missing bearer token")
	}
	return c.users.FindByID(r.Context(), token)
}

// Index GET /recipes
func (c *RecipeController) Index(w http.ResponseWriter, r *http.Request) {
	res := c.Response(w)
	user, err := c.actor(r)
	if err != nil {
		res.Unauthorized()
		return
	}

	recipes, err := c.recipes.List(r.Context(), user)
	if err != nil {
		c.fail(res, err)
		return
	}
	res.Success(recipes)
}

// Show GET /recipes/{id}
func (c *RecipeController) Show(w http.ResponseWriter, r *http.Request) {
	res := c.Response(w)
	user, err := c.actor(r)
	if err != nil {
		res.Unauthorized()
		return
	}

	recipe, err := c.recipes.Get(r.Context(), user, routing.Param(r, "id"))
	if err != nil {
		c.fail(res, err)
		return
	}
	res.Success(recipe)
}

// Store POST /recipes
func (c *RecipeController) Store(w http.ResponseWriter, r *http.Request) {
	res := c.Response(w)
	user, err := c.actor(r)
	if err != nil {
		res.Unauthorized()
		return
	}

	var input recipeInput
	if err := c.Request(r).Bind(&input); err != nil {
		res.Error(http.StatusBadRequest, "Malformed request body.")
		return
	}
	if v := validateRecipe(input); v.Fails() {
		res.ValidationError(v.Errors())
		return
	}

	recipe := models.NewRecipe(input.Title, user.ID)
	applyInput(recipe, input)

	if err := c.recipes.Create(r.Context(), user, recipe); err != nil {
		c.fail(res, err)
		return
	}
	res.Created(recipe)
}

// Update PUT/PATCH /recipes/{id}
func (c *RecipeController) Update(w http.ResponseWriter, r *http.Request) {
	res := c.Response(w)
	user, err := c.actor(r)
	if err != nil {
		res.Unauthorized()
		return
	}

	recipe, err := c.recipes.Get(r.Context(), user, routing.Param(r, "id"))
	if err != nil {
		c.fail(res, err)
		return
	}

	var input recipeInput
	if err := c.Request(r).Bind(&input); err != nil {
		res.Error(http.StatusBadRequest, "Malformed request body.")
		return
	}
	if v := validateRecipe(input); v.Fails() {
		res.ValidationError(v.Errors())
		return
	}

	recipe.Title = input.Title
	applyInput(recipe, input)

	if err := c.recipes.Update(r.Context(), user, recipe); err != nil {
		c.fail(res, err)
		return
	}
	res.Success(recipe)
}

// Destroy DELETE /recipes/{id}
func (c *RecipeController) Destroy(w http.ResponseWriter, r *http.Request) {
	res := c.Response(w)
	user, err := c.actor(r)
	if err != nil {
		res.Unauthorized()
		return
	}

	if err := c.recipes.Delete(r.Context(), user, routing.Param(r, "id")); err != nil {
		c.fail(res, err)
		return
	}
	res.NoContent()
}

func (c *RecipeController) fail(res *gohttp.Response, err error) {
	switch {
	case errors.Is(err, services.ErrForbidden):
		res.Forbidden()
	case errors.Is(err, repositories.ErrNotFound):
		res.NotFound("Recipe not found.")
	default:
		res.ServerError()
	}
}

func validateRecipe(input recipeInput) *validation.Validator {
	return validation.Make(map[string]string{
		"title":    input.Title,
		"servings": intField(input.Servings),
	}, validation.Rules{
		"title":    "required|min:2|max:120",
		"servings": "sometimes|integer|gte:1",
	})
}

// intField renders n for the validator; zero means "not provided".
func intField(n int) string {
	if n == 0 {
		return ""
	}
	return strconv.Itoa(n)
}

func applyInput(recipe *models.Recipe, input recipeInput) {
	recipe.Description = input.Description
	recipe.Ingredients = input.Ingredients
	recipe.Steps = input.Steps
	recipe.Servings = input.Servings
	recipe.Tags = input.Tags
}

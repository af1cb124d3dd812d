package handlers

import (
	"net/http"

	"github.com/Owen-Rose/chefs-suite/framework/container"
)

// ScopedRecipeController resolves a fresh RecipeController from the
// request-scoped container on every call. Requires the RequestScope
// middleware to be mounted.
type ScopedRecipeController struct{}

func (ScopedRecipeController) resolve(r *http.Request) *RecipeController {
	scope := container.MustFromContext(r.Context())
	return container.MustResolve[*RecipeController](scope, "recipes.controller")
}

func (s ScopedRecipeController) Index(w http.ResponseWriter, r *http.Request) {
	s.resolve(r).Index(w, r)
}

func (s ScopedRecipeController) Store(w http.ResponseWriter, r *http.Request) {
	s.resolve(r).Store(w, r)
}

func (s ScopedRecipeController) Show(w http.ResponseWriter, r *http.Request) {
	s.resolve(r).Show(w, r)
}

func (s ScopedRecipeController) Update(w http.ResponseWriter, r *http.Request) {
	s.resolve(r).Update(w, r)
}

func (s ScopedRecipeController) Destroy(w http.ResponseWriter, r *http.Request) {
	s.resolve(r).Destroy(w, r)
}

// ScopedInvitationHandler mirrors ScopedRecipeController for invitations.
type ScopedInvitationHandler struct{}

func (ScopedInvitationHandler) resolve(r *http.Request) *InvitationHandler {
	scope := container.MustFromContext(r.Context())
	return container.MustResolve[*InvitationHandler](scope, "invitations.handler")
}

func (s ScopedInvitationHandler) Store(w http.ResponseWriter, r *http.Request) {
	s.resolve(r).Store(w, r)
}

func (s ScopedInvitationHandler) Accept(w http.ResponseWriter, r *http.Request) {
	s.resolve(r).Accept(w, r)
}

package handlers

import (
	"errors"
	"net/http"

	"github.com/Owen-Rose/chefs-suite/app/models"
	"github.com/Owen-Rose/chefs-suite/app/repositories"
	"github.com/Owen-Rose/chefs-suite/app/services"
	"github.com/Owen-Rose/chefs-suite/framework/app"
	"github.com/Owen-Rose/chefs-suite/framework/http/validation"
)

// InvitationHandler serves the invite and accept endpoints.
type InvitationHandler struct {
	app.Controller
	invitations *services.InvitationService
	users       repositories.UserRepository
}

func NewInvitationHandler(invitations *services.InvitationService, users repositories.UserRepository) *InvitationHandler {
	return &InvitationHandler{invitations: invitations, users: users}
}

type inviteInput struct {
	Email string `json:"email"`
	Role  string `json:"role"`
}

type acceptInput struct {
	Token string `json:"token"`
	Name  string `json:"name"`
}

// Store POST /invitations
func (h *InvitationHandler) Store(w http.ResponseWriter, r *http.Request) {
	res := h.Response(w)

	token := h.Request(r).BearerToken()
	if token == "" {
		res.Unauthorized()
		return
	}
	actor, err := h.users.FindByID(r.Context(), token)
	if err != nil {
		res.Unauthorized()
		return
	}

	var input inviteInput
	if err := h.Request(r).Bind(&input); err != nil {
		res.Error(http.StatusBadRequest, "Malformed request body.")
		return
	}
	v := validation.Make(map[string]string{
		"email": input.Email,
		"role":  input.Role,
	}, validation.Rules{
		"email": "required|email",
		"role":  "required|in:admin,chef,reader",
	})
	if v.Fails() {
		res.ValidationError(v.Errors())
		return
	}

	inv, err := h.invitations.Invite(r.Context(), actor, input.Email, models.Role(input.Role))
	switch {
	case errors.Is(err, services.ErrForbidden):
		res.Forbidden("Only admins can invite users.")
	case errors.Is(err, services.ErrAlreadyRegistered):
		res.Conflict("That email is already registered or invited.")
	case err != nil:
		res.ServerError()
	default:
		res.Created(inv)
	}
}

// Accept POST /invitations/accept
func (h *InvitationHandler) Accept(w http.ResponseWriter, r *http.Request) {
	res := h.Response(w)

	var input acceptInput
	if err := h.Request(r).Bind(&input); err != nil {
		res.Error(http.StatusBadRequest, "Malformed request body.")
		return
	}
	v := validation.Make(map[string]string{
		"token": input.Token,
		"name":  input.Name,
	}, validation.Rules{
		"token": "required",
		"name":  "required|min:2|max:80",
	})
	if v.Fails() {
		res.ValidationError(v.Errors())
		return
	}

	user, err := h.invitations.Accept(r.Context(), input.Token, input.Name)
	switch {
	case errors.Is(err, services.ErrInvalidToken):
		res.NotFound("Invitation not found.")
	case errors.Is(err, services.ErrInvitationExpired):
		res.Error(http.StatusGone, "This invitation has expired.")
	case err != nil:
		res.ServerError()
	default:
		res.Created(user)
	}
}

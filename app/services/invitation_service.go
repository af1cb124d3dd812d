package services

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/Owen-Rose/chefs-suite/app/models"
	"github.com/Owen-Rose/chefs-suite/app/repositories"
	"github.com/Owen-Rose/chefs-suite/framework/config"
)

var (
	// ErrAlreadyRegistered: the email belongs to an existing user or a
	// pending invitation.
	ErrAlreadyRegistered = errors.New("services: email already registered or invited")

	// ErrInvalidToken: no invitation matches the token.
	ErrInvalidToken = errors.New("services: invalid invitation token")

	// ErrInvitationExpired: the invitation exists but is past its TTL.
	ErrInvitationExpired = errors.New("services: invitation expired")
)

// InvitationService handles the invite → email → accept flow that creates
// new user accounts.
type InvitationService struct {
	invitations repositories.InvitationRepository
	users       repositories.UserRepository
	mailer      Mailer
	cfg         *config.Config
	logger      *zap.Logger
}

func NewInvitationService(
	invitations repositories.InvitationRepository,
	users repositories.UserRepository,
	mailer Mailer,
	cfg *config.Config,
	logger *zap.Logger,
) *InvitationService {
	return &InvitationService{
		invitations: invitations,
		users:       users,
		mailer:      mailer,
		cfg:         cfg,
		logger:      logger,
	}
}

// Invite creates an invitation for email with the given role and sends the
// invitation mail. Only users who can manage accounts may invite.
func (s *InvitationService) Invite(ctx context.Context, actor *models.User, email string, role models.Role) (*models.Invitation, error) {
	if !actor.Role.CanManageUsers() {
		return nil, ErrForbidden
	}

	if _, err := s.users.FindByEmail(ctx, email); err == nil {
		return nil, ErrAlreadyRegistered
	} else if !errors.Is(err, repositories.ErrNotFound) {
		return nil, err
	}
	if existing, err := s.invitations.FindByEmail(ctx, email); err == nil {
		if !existing.Expired() {
			return nil, ErrAlreadyRegistered
		}
		// stale invitation: clear it and re-invite
		if err := s.invitations.Delete(ctx, existing.ID); err != nil {
			return nil, err
		}
	} else if !errors.Is(err, repositories.ErrNotFound) {
		return nil, err
	}

	inv := models.NewInvitation(email, role, actor.ID, s.cfg.Invite.TTL)
	if err := s.invitations.Create(ctx, inv); err != nil {
		return nil, err
	}

	link := fmt.Sprintf("%s/invitations/accept?token=%s", s.cfg.App.URL, inv.Token)
	body := fmt.Sprintf(
		"You have been invited to join %s as %s.\n\nAccept your invitation: %s\n\nThis link expires on %s.",
		s.cfg.App.Name, role, link, inv.ExpiresAt.Format("Jan 2, 2006"),
	)
	if err := s.mailer.Send(ctx, email, "You're invited to "+s.cfg.App.Name, body); err != nil {
		// Roll the invitation back so the admin can retry immediately
		// instead of waiting out the TTL.
		if delErr := s.invitations.Delete(ctx, inv.ID); delErr != nil {
			s.logger.Error("invitation rollback failed",
				zap.String("invitation_id", inv.ID),
				zap.Error(delErr),
			)
		}
		s.logger.Error("invitation mail failed",
			zap.String("email", email),
			zap.Error(err),
		)
		return nil, err
	}

	s.logger.Info("invitation sent",
		zap.String("email", email),
		zap.String("role", string(role)),
		zap.String("inviter_id", actor.ID),
	)
	return inv, nil
}

// Accept redeems an invitation token, creating the user account with the
// invited role. The invitation is consumed.
func (s *InvitationService) Accept(ctx context.Context, token, name string) (*models.User, error) {
	inv, err := s.invitations.FindByToken(ctx, token)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, ErrInvalidToken
	}
	if err != nil {
		return nil, err
	}
	if inv.Expired() {
		return nil, ErrInvitationExpired
	}

	user := models.NewUser(inv.Email, name, inv.Role)
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}
	if err := s.invitations.Delete(ctx, inv.ID); err != nil {
		return nil, err
	}

	s.logger.Info("invitation accepted",
		zap.String("email", user.Email),
		zap.String("user_id", user.ID),
	)
	return user, nil
}

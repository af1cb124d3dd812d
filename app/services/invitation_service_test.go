package services_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/Owen-Rose/chefs-suite/app/models"
	"github.com/Owen-Rose/chefs-suite/app/repositories"
	"github.com/Owen-Rose/chefs-suite/app/services"
	"github.com/Owen-Rose/chefs-suite/framework/config"
	"github.com/Owen-Rose/chefs-suite/framework/logging"
)

// fakeMailer records sent mail.
type fakeMailer struct {
	sent []sentMail
	err  error
}

type sentMail struct {
	to, subject, body string
}

func (m *fakeMailer) Send(_ context.Context, to, subject, body string) error {
	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, sentMail{to, subject, body})
	return nil
}

type invitationFixture struct {
	svc         *services.InvitationService
	invitations *repositories.MemoryInvitationRepository
	users       *repositories.MemoryUserRepository
	mailer      *fakeMailer
}

func newInvitationFixture() *invitationFixture {
	invitations := repositories.NewMemoryInvitationRepository()
	users := repositories.NewMemoryUserRepository()
	mailer := &fakeMailer{}
	cfg := &config.Config{
		App:    config.AppConfig{Name: "ChefsSuite", URL: "http://localhost:8000"},
		Invite: config.InviteConfig{TTL: 7 * 24 * time.Hour},
	}
	return &invitationFixture{
		svc:         services.NewInvitationService(invitations, users, mailer, cfg, logging.Nop()),
		invitations: invitations,
		users:       users,
		mailer:      mailer,
	}
}

func admin() *models.User { return models.NewUser("admin@kitchen.test", "Admin", models.RoleAdmin) }

// ── Invite ───────────────────────────────────────────────────────────────────

func TestInvite_SendsMailWithToken(t *testing.T) {
	f := newInvitationFixture()

	inv, err := f.svc.Invite(context.Background(), admin(), "new@kitchen.test", models.RoleChef)
	if err != nil {
		t.Fatalf("Invite: %v", err)
	}
	if inv.Token == "" {
		t.Fatal("invitation should carry a token")
	}

	if len(f.mailer.sent) != 1 {
		t.Fatalf("expected 1 mail, got %d", len(f.mailer.sent))
	}
	mail := f.mailer.sent[0]
	if mail.to != "new@kitchen.test" {
		t.Errorf("mail.to: got %q", mail.to)
	}
	if !strings.Contains(mail.body, inv.Token) {
		t.Error("mail body should contain the invitation token")
	}
}

func TestInvite_NonAdminForbidden(t *testing.T) {
	f := newInvitationFixture()

	_, err := f.svc.Invite(context.Background(), chef(), "new@kitchen.test", models.RoleReader)
	if !errors.Is(err, services.ErrForbidden) {
		t.Errorf("got %v, want ErrForbidden", err)
	}
	if len(f.mailer.sent) != 0 {
		t.Error("no mail should be sent")
	}
}

func TestInvite_ExistingUserRejected(t *testing.T) {
	f := newInvitationFixture()
	ctx := context.Background()
	_ = f.users.Create(ctx, models.NewUser("taken@kitchen.test", "Taken", models.RoleReader))

	_, err := f.svc.Invite(ctx, admin(), "taken@kitchen.test", models.RoleChef)
	if !errors.Is(err, services.ErrAlreadyRegistered) {
		t.Errorf("got %v, want ErrAlreadyRegistered", err)
	}
}

func TestInvite_PendingInvitationRejected(t *testing.T) {
	f := newInvitationFixture()
	ctx := context.Background()

	if _, err := f.svc.Invite(ctx, admin(), "new@kitchen.test", models.RoleChef); err != nil {
		t.Fatalf("first Invite: %v", err)
	}
	_, err := f.svc.Invite(ctx, admin(), "new@kitchen.test", models.RoleChef)
	if !errors.Is(err, services.ErrAlreadyRegistered) {
		t.Errorf("got %v, want ErrAlreadyRegistered", err)
	}
}

func TestInvite_ExpiredInvitationReplaced(t *testing.T) {
	f := newInvitationFixture()
	ctx := context.Background()

	stale := models.NewInvitation("new@kitchen.test", models.RoleChef, "admin-1", -time.Hour)
	_ = f.invitations.Create(ctx, stale)

	inv, err := f.svc.Invite(ctx, admin(), "new@kitchen.test", models.RoleChef)
	if err != nil {
		t.Fatalf("Invite: %v", err)
	}
	if inv.ID == stale.ID {
		t.Error("expected a fresh invitation")
	}
	if _, err := f.invitations.FindByToken(ctx, stale.Token); !errors.Is(err, repositories.ErrNotFound) {
		t.Error("stale invitation should be removed")
	}
}

func TestInvite_MailFailurePropagates(t *testing.T) {
	f := newInvitationFixture()
	f.mailer.err = errors.New("smtp down")

	_, err := f.svc.Invite(context.Background(), admin(), "new@kitchen.test", models.RoleChef)
	if err == nil {
		t.Error("expected mail error to propagate")
	}
}

func TestInvite_MailFailureLeavesNoPendingInvitation(t *testing.T) {
	f := newInvitationFixture()
	ctx := context.Background()

	f.mailer.err = errors.New("smtp down")
	if _, err := f.svc.Invite(ctx, admin(), "new@kitchen.test", models.RoleChef); err == nil {
		t.Fatal("expected mail error")
	}
	if _, err := f.invitations.FindByEmail(ctx, "new@kitchen.test"); !errors.Is(err, repositories.ErrNotFound) {
		t.Errorf("got %v, want ErrNotFound — failed sends must not leave an invitation behind", err)
	}

	// The mailer recovers and the admin retries at once.
	f.mailer.err = nil
	inv, err := f.svc.Invite(ctx, admin(), "new@kitchen.test", models.RoleChef)
	if err != nil {
		t.Fatalf("retry after mail failure: %v", err)
	}
	if inv == nil || inv.Token == "" {
		t.Error("retry should produce a fresh invitation")
	}
}

// ── Accept ───────────────────────────────────────────────────────────────────

func TestAccept_CreatesUserWithInvitedRole(t *testing.T) {
	f := newInvitationFixture()
	ctx := context.Background()

	inv, err := f.svc.Invite(ctx, admin(), "new@kitchen.test", models.RoleChef)
	if err != nil {
		t.Fatalf("Invite: %v", err)
	}

	user, err := f.svc.Accept(ctx, inv.Token, "New Chef")
	if err != nil {
		t.Fatalf("Accept: %v", err)
	}
	if user.Email != "new@kitchen.test" || user.Role != models.RoleChef || user.Name != "New Chef" {
		t.Errorf("got %+v", user)
	}

	if _, err := f.users.FindByEmail(ctx, "new@kitchen.test"); err != nil {
		t.Errorf("user not persisted: %v", err)
	}
	// invitation is consumed
	if _, err := f.svc.Accept(ctx, inv.Token, "Again"); !errors.Is(err, services.ErrInvalidToken) {
		t.Errorf("second accept: got %v, want ErrInvalidToken", err)
	}
}

func TestAccept_UnknownToken(t *testing.T) {
	f := newInvitationFixture()

	_, err := f.svc.Accept(context.Background(), "bogus", "Nobody")
	if !errors.Is(err, services.ErrInvalidToken) {
		t.Errorf("got %v, want ErrInvalidToken", err)
	}
}

func TestAccept_ExpiredToken(t *testing.T) {
	f := newInvitationFixture()
	ctx := context.Background()

	inv := models.NewInvitation("late@kitchen.test", models.RoleReader, "admin-1", -time.Minute)
	_ = f.invitations.Create(ctx, inv)

	_, err := f.svc.Accept(ctx, inv.Token, "Latecomer")
	if !errors.Is(err, services.ErrInvitationExpired) {
		t.Errorf("got %v, want ErrInvitationExpired", err)
	}
}

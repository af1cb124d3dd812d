package models

import (
	"time"

	"github.com/google/uuid"
)

// Invitation is a pending offer to join the workspace with a given role.
// The token travels in the invitation email; accepting it creates a User.
type Invitation struct {
	ID        string    `bson:"_id" json:"id"`
	Email     string    `bson:"email" json:"email"`
	Role      Role      `bson:"role" json:"role"`
	Token     string    `bson:"token" json:"-"`
	InviterID string    `bson:"inviter_id" json:"inviter_id"`
	ExpiresAt time.Time `bson:"expires_at" json:"expires_at"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}

// NewInvitation creates an invitation valid for ttl from now.
func NewInvitation(email string, role Role, inviterID string, ttl time.Duration) *Invitation {
	now := time.Now().UTC()
	return &Invitation{
		ID:        uuid.NewString(),
		Email:     email,
		Role:      role,
		Token:     uuid.NewString(),
		InviterID: inviterID,
		ExpiresAt: now.Add(ttl),
		CreatedAt: now,
	}
}

// Expired reports whether the invitation is past its expiry.
func (i *Invitation) Expired() bool {
	return time.Now().UTC().After(i.ExpiresAt)
}

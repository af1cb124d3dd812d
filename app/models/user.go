package models

import (
	"time"

	"github.com/google/uuid"
)

// Role controls what a user may do with recipes.
type Role string

const (
	RoleAdmin  Role = "admin"
	RoleChef   Role = "chef"
	RoleReader Role = "reader"
)

// Valid reports whether r is a known role.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleChef, RoleReader:
		return true
	}
	return false
}

// CanManageUsers: only admins invite and manage accounts.
func (r Role) CanManageUsers() bool { return r == RoleAdmin }

// CanWriteRecipes: admins and chefs create, update, delete.
func (r Role) CanWriteRecipes() bool { return r == RoleAdmin || r == RoleChef }

// CanReadRecipes: every role can browse.
func (r Role) CanReadRecipes() bool { return r.Valid() }

// User is an account in the kitchen workspace.
type User struct {
	ID        string    `bson:"_id" json:"id"`
	Email     string    `bson:"email" json:"email"`
	Name      string    `bson:"name" json:"name"`
	Role      Role      `bson:"role" json:"role"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

// NewUser creates a user with a fresh ID and timestamps.
func NewUser(email, name string, role Role) *User {
	now := time.Now().UTC()
	return &User{
		ID:        uuid.NewString(),
		Email:     email,
		Name:      name,
		Role:      role,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

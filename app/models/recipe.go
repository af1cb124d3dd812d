package models

import (
	"time"

	"github.com/google/uuid"
)

// Ingredient is one line of a recipe's ingredient list.
type Ingredient struct {
	Name     string `bson:"name" json:"name"`
	Quantity string `bson:"quantity" json:"quantity"`
	Unit     string `bson:"unit,omitempty" json:"unit,omitempty"`
}

// Recipe is the core document of the application.
type Recipe struct {
	ID          string       `bson:"_id" json:"id"`
	Title       string       `bson:"title" json:"title"`
	Description string       `bson:"description,omitempty" json:"description,omitempty"`
	Ingredients []Ingredient `bson:"ingredients" json:"ingredients"`
	Steps       []string     `bson:"steps" json:"steps"`
	Servings    int          `bson:"servings" json:"servings"`
	Tags        []string     `bson:"tags,omitempty" json:"tags,omitempty"`
	AuthorID    string       `bson:"author_id" json:"author_id"`
	CreatedAt   time.Time    `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time    `bson:"updated_at" json:"updated_at"`
}

// NewRecipe creates a recipe with a fresh ID and timestamps.
func NewRecipe(title, authorID string) *Recipe {
	now := time.Now().UTC()
	return &Recipe{
		ID:        uuid.NewString(),
		Title:     title,
		AuthorID:  authorID,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Touch bumps UpdatedAt; call before persisting a modification.
func (r *Recipe) Touch() {
	r.UpdatedAt = time.Now().UTC()
}

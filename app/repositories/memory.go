package repositories

import (
	"context"
	"sync"

	"github.com/Owen-Rose/chefs-suite/app/models"
)

// ── Recipes ──────────────────────────────────────────────────────────────────

// MemoryRecipeRepository keeps recipes in a map. Safe for concurrent use.
type MemoryRecipeRepository struct {
	mu      sync.RWMutex
	recipes map[string]models.Recipe
}

func NewMemoryRecipeRepository() *MemoryRecipeRepository {
	return &MemoryRecipeRepository{recipes: make(map[string]models.Recipe)}
}

func (r *MemoryRecipeRepository) Create(_ context.Context, recipe *models.Recipe) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.recipes[recipe.ID] = *recipe
	return nil
}

func (r *MemoryRecipeRepository) FindByID(_ context.Context, id string) (*models.Recipe, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	recipe, ok := r.recipes[id]
	if !ok {
		return nil, ErrNotFound
	}
	// copy so callers can't mutate the store
	return &recipe, nil
}

func (r *MemoryRecipeRepository) FindAll(_ context.Context) ([]*models.Recipe, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*models.Recipe, 0, len(r.recipes))
	for _, recipe := range r.recipes {
		rec := recipe
		out = append(out, &rec)
	}
	return out, nil
}

func (r *MemoryRecipeRepository) Update(_ context.Context, recipe *models.Recipe) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.recipes[recipe.ID]; !ok {
		return ErrNotFound
	}
	r.recipes[recipe.ID] = *recipe
	return nil
}

func (r *MemoryRecipeRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.recipes[id]; !ok {
		return ErrNotFound
	}
	delete(r.recipes, id)
	return nil
}

// ── Users ────────────────────────────────────────────────────────────────────

type MemoryUserRepository struct {
	mu    sync.RWMutex
	users map[string]models.User
}

func NewMemoryUserRepository() *MemoryUserRepository {
	return &MemoryUserRepository{users: make(map[string]models.User)}
}

func (r *MemoryUserRepository) Create(_ context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users[user.ID] = *user
	return nil
}

func (r *MemoryUserRepository) FindByID(_ context.Context, id string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	user, ok := r.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &user, nil
}

func (r *MemoryUserRepository) FindByEmail(_ context.Context, email string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, user := range r.users {
		if user.Email == email {
			u := user
			return &u, nil
		}
	}
	return nil, ErrNotFound
}

func (r *MemoryUserRepository) FindAll(_ context.Context) ([]*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*models.User, 0, len(r.users))
	for _, user := range r.users {
		u := user
		out = append(out, &u)
	}
	return out, nil
}

func (r *MemoryUserRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[id]; !ok {
		return ErrNotFound
	}
	delete(r.users, id)
	return nil
}

// ── Invitations ──────────────────────────────────────────────────────────────

type MemoryInvitationRepository struct {
	mu          sync.RWMutex
	invitations map[string]models.Invitation
}

func NewMemoryInvitationRepository() *MemoryInvitationRepository {
	return &MemoryInvitationRepository{invitations: make(map[string]models.Invitation)}
}

func (r *MemoryInvitationRepository) Create(_ context.Context, inv *models.Invitation) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.invitations[inv.ID] = *inv
	return nil
}

func (r *MemoryInvitationRepository) FindByToken(_ context.Context, token string) (*models.Invitation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, inv := range r.invitations {
		if inv.Token == token {
			i := inv
			return &i, nil
		}
	}
	return nil, ErrNotFound
}

func (r *MemoryInvitationRepository) FindByEmail(_ context.Context, email string) (*models.Invitation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, inv := range r.invitations {
		if inv.Email == email {
			i := inv
			return &i, nil
		}
	}
	return nil, ErrNotFound
}

func (r *MemoryInvitationRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.invitations[id]; !ok {
		return ErrNotFound
	}
	delete(r.invitations, id)
	return nil
}

package profiles

import (
	"context"
	"sync"

	"github.com/mmisoft/ecom/internal/client/models"
)

// MemoryRepository is a map-backed Repository used when no document store is
// configured. Profiles live for the lifetime of the process.
type MemoryRepository struct {
	mu    sync.RWMutex
	users map[string]models.User
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{users: make(map[string]models.User)}
}

func (r *MemoryRepository) Get(ctx context.Context, id string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	return &user, nil
}

func (r *MemoryRepository) Save(ctx context.Context, user models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.users[user.ID] = user
	return nil
}

func (r *MemoryRepository) Update(ctx context.Context, user models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.users[user.ID]
	if !ok {
		stored = models.User{ID: user.ID, Email: user.Email, CreatedAt: user.CreatedAt}
	}
	stored.Username = user.Username
	stored.PhoneNumber = user.PhoneNumber
	stored.IsVerified = user.IsVerified
	r.users[user.ID] = stored
	return nil
}

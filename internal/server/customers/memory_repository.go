package customers

import (
	"context"
	"strings"
	"sync"

	"github.com/dmitrijs2005/clientdesk/internal/common"
)

// InMemoryRepository keeps customers in insertion order. It is used when no
// database is configured and in tests.
type InMemoryRepository struct {
	mu    sync.RWMutex
	items []Customer
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{}
}

func (r *InMemoryRepository) List(ctx context.Context) ([]Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Customer, len(r.items))
	copy(out, r.items)
	return out, nil
}

func (r *InMemoryRepository) Get(ctx context.Context, id string) (*Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i := r.index(id)
	if i < 0 {
		return nil, common.ErrNotFound
	}
	c := r.items[i]
	return &c, nil
}

func (r *InMemoryRepository) Create(ctx context.Context, c *Customer) (*Customer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.emailTaken(c.Email, "") {
		return nil, common.ErrAlreadyExists
	}
	r.items = append(r.items, *c)
	return c, nil
}

func (r *InMemoryRepository) Update(ctx context.Context, c *Customer) (*Customer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.index(c.ID)
	if i < 0 {
		return nil, common.ErrNotFound
	}
	if r.emailTaken(c.Email, c.ID) {
		return nil, common.ErrAlreadyExists
	}
	updated := *c
	updated.CreatedAt = r.items[i].CreatedAt
	r.items[i] = updated
	return &updated, nil
}

func (r *InMemoryRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.index(id)
	if i < 0 {
		return common.ErrNotFound
	}
	r.items = append(r.items[:i], r.items[i+1:]...)
	return nil
}

func (r *InMemoryRepository) index(id string) int {
	for i := range r.items {
		if r.items[i].ID == id {
			return i
		}
	}
	return -1
}

// emailTaken matches case-insensitively, like the lower(email) index.
func (r *InMemoryRepository) emailTaken(email, exceptID string) bool {
	for _, it := range r.items {
		if it.ID != exceptID && strings.EqualFold(it.Email, email) {
			return true
		}
	}
	return false
}

package repository

import (
	"context"
	"sync"
	"time"

	"github.com/Didine-06/travel-agency-sub000/internal/domain"
)

// MemoryResourceRepository implements ResourceRepository in memory. The dev
// server uses it when no database is configured; tests use it directly.
type MemoryResourceRepository[T any] struct {
	id func(*T) string

	mu    sync.RWMutex
	items map[string]*T
	order []string
}

// NewMemoryResourceRepository creates an in-memory repository keyed by the
// given id extractor.
func NewMemoryResourceRepository[T any](id func(*T) string) *MemoryResourceRepository[T] {
	return &MemoryResourceRepository[T]{
		id:    id,
		items: make(map[string]*T),
	}
}

func (r *MemoryResourceRepository[T]) List(ctx context.Context) ([]T, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]T, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, *r.items[id])
	}
	return out, nil
}

func (r *MemoryResourceRepository[T]) GetByID(ctx context.Context, id string) (*T, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	item, ok := r.items[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *item
	return &cp, nil
}

func (r *MemoryResourceRepository[T]) Create(ctx context.Context, item *T) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	id := r.id(item)
	if _, exists := r.items[id]; exists {
		return domain.ErrAlreadyExists
	}
	cp := *item
	r.items[id] = &cp
	r.order = append(r.order, id)
	return nil
}

func (r *MemoryResourceRepository[T]) Update(ctx context.Context, item *T) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	id := r.id(item)
	if _, exists := r.items[id]; !exists {
		return domain.ErrNotFound
	}
	cp := *item
	r.items[id] = &cp
	return nil
}

func (r *MemoryResourceRepository[T]) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.items[id]; !exists {
		return domain.ErrNotFound
	}
	r.removeLocked(id)
	return nil
}

// DeleteMany deletes every given id in one call. Unknown ids are skipped so
// a bulk delete is not all-or-nothing.
func (r *MemoryResourceRepository[T]) DeleteMany(ctx context.Context, ids []string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, id := range ids {
		if _, exists := r.items[id]; exists {
			r.removeLocked(id)
		}
	}
	return nil
}

func (r *MemoryResourceRepository[T]) removeLocked(id string) {
	delete(r.items, id)
	for i, existing := range r.order {
		if existing == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
}

// MemoryUserRepository implements UserRepository in memory.
type MemoryUserRepository struct {
	mu         sync.RWMutex
	users      map[string]*domain.User
	emailIndex map[string]*domain.User
}

// NewMemoryUserRepository creates an in-memory user repository.
func NewMemoryUserRepository() *MemoryUserRepository {
	return &MemoryUserRepository{
		users:      make(map[string]*domain.User),
		emailIndex: make(map[string]*domain.User),
	}
}

func (r *MemoryUserRepository) Create(ctx context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.emailIndex[user.Email]; exists {
		return domain.ErrAlreadyExists
	}
	cp := *user
	r.users[user.ID] = &cp
	r.emailIndex[user.Email] = &cp
	return nil
}

func (r *MemoryUserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	user, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	cp := *user
	return &cp, nil
}

func (r *MemoryUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	user, ok := r.emailIndex[email]
	if !ok {
		return nil, nil
	}
	cp := *user
	return &cp, nil
}

func (r *MemoryUserRepository) Update(ctx context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.users[user.ID]; !exists {
		return domain.ErrNotFound
	}
	cp := *user
	r.users[user.ID] = &cp
	r.emailIndex[user.Email] = &cp
	return nil
}

func (r *MemoryUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, exists := r.emailIndex[email]
	return exists, nil
}

// MemorySessionRepository tracks revoked tokens in memory.
type MemorySessionRepository struct {
	mu      sync.Mutex
	revoked map[string]time.Time
}

// NewMemorySessionRepository creates an in-memory revocation list.
func NewMemorySessionRepository() *MemorySessionRepository {
	return &MemorySessionRepository{revoked: make(map[string]time.Time)}
}

func (r *MemorySessionRepository) Revoke(ctx context.Context, tokenString string, ttl time.Duration) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.revoked[tokenString] = time.Now().Add(ttl)
	return nil
}

func (r *MemorySessionRepository) IsRevoked(ctx context.Context, tokenString string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	until, ok := r.revoked[tokenString]
	if !ok {
		return false, nil
	}
	if time.Now().After(until) {
		delete(r.revoked, tokenString)
		return false, nil
	}
	return true, nil
}

package repository

import (
	"context"
	"time"

	"github.com/Didine-06/travel-agency-sub000/internal/domain"
)

// UserRepository persists user accounts
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}

// SessionRepository tracks revoked access tokens so logout takes effect
// before the token expires
type SessionRepository interface {
	Revoke(ctx context.Context, tokenString string, ttl time.Duration) error
	IsRevoked(ctx context.Context, tokenString string) (bool, error)
}

// ResourceRepository is the CRUD surface shared by every resource type
type ResourceRepository[T any] interface {
	List(ctx context.Context) ([]T, error)
	GetByID(ctx context.Context, id string) (*T, error)
	Create(ctx context.Context, item *T) error
	Update(ctx context.Context, item *T) error
	Delete(ctx context.Context, id string) error
	DeleteMany(ctx context.Context, ids []string) error
}

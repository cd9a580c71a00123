// internal/domain/user/store.go
package user

import (
	"context"
	"errors"
	"time"
)

// Sentinel errors returned by the user workflow.
var (
	ErrNotFound           = errors.New("user not found")
	ErrEmailTaken         = errors.New("user with this email already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// Store is the persistence boundary for user records.
type Store interface {
	Create(ctx context.Context, u *User) error
	FindByID(ctx context.Context, id uint) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	UpdateLastLogin(ctx context.Context, id uint, at time.Time) error
}

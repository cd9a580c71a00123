// internal/infrastructure/database/postgres/user_store.go
package postgres

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/arcadiareads/bookstore-backend/internal/domain/user"
)

// UserStore is the gorm-backed user store
type UserStore struct {
	db *DB
}

// NewUserStore creates a new user store
func NewUserStore(db *DB) *UserStore {
	return &UserStore{db: db}
}

// Create inserts a new user
func (s *UserStore) Create(ctx context.Context, u *user.User) error {
	err := s.db.WithContext(ctx).Create(u).Error
	if isUniqueViolation(err) {
		return user.ErrEmailTaken
	}
	return err
}

// FindByID retrieves a user by ID
func (s *UserStore) FindByID(ctx context.Context, id uint) (*user.User, error) {
	var u user.User
	if err := s.db.WithContext(ctx).First(&u, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, user.ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

// FindByEmail retrieves a user by email, case-insensitively
func (s *UserStore) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	var u user.User
	err := s.db.WithContext(ctx).
		Where("email = ?", strings.ToLower(strings.TrimSpace(email))).
		First(&u).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, user.ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

// UpdateLastLogin stamps the user's last login time
func (s *UserStore) UpdateLastLogin(ctx context.Context, id uint, at time.Time) error {
	return s.db.WithContext(ctx).Model(&user.User{}).
		Where("id = ?", id).
		Update("last_login_at", at).Error
}

// DisplayName returns the user's display name
func (s *UserStore) DisplayName(ctx context.Context, userID uint) (string, error) {
	u, err := s.FindByID(ctx, userID)
	if err != nil {
		return "", err
	}
	return u.Name, nil
}

// IsAdmin reports whether the user exists, is active and holds the admin role
func (s *UserStore) IsAdmin(ctx context.Context, userID uint) (bool, error) {
	u, err := s.FindByID(ctx, userID)
	if err != nil {
		return false, err
	}
	return u.IsActive && u.IsAdmin(), nil
}

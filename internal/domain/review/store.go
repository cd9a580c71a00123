// internal/domain/review/store.go
package review

import (
	"context"
	"errors"
)

var (
	// ErrNotFound is returned when a review does not exist
	ErrNotFound = errors.New("review not found")
	// ErrForbidden is returned when the caller is not allowed to moderate
	ErrForbidden = errors.New("forbidden")
)

// ListFilter narrows review listings
type ListFilter struct {
	BookID *uint
	UserID *uint
	Status *ReviewStatus
	Page   int
	Limit  int
}

// Store persists reviews
type Store interface {
	Create(ctx context.Context, r *Review) error
	FindByID(ctx context.Context, id uint) (*Review, error)
	List(ctx context.Context, f ListFilter) ([]Review, int64, error)
	SetStatus(ctx context.Context, id uint, status ReviewStatus) error
	Summarize(ctx context.Context, bookID uint) (*Summary, error)
}

// BookDirectory exposes the catalog lookups the review workflow needs
type BookDirectory interface {
	ApprovedBookExists(ctx context.Context, bookID uint) (bool, error)
}

// UserDirectory answers identity questions about users
type UserDirectory interface {
	IsAdmin(ctx context.Context, userID uint) (bool, error)
	DisplayName(ctx context.Context, userID uint) (string, error)
}
